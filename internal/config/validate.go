package config

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"

	"github.com/conn-castle/botw-saveconv/internal/logging"
	"github.com/conn-castle/botw-saveconv/internal/messages"
)

// Validate checks c for values the pipeline cannot use. source names the
// config origin in error messages.
func (c Config) Validate(source string) error {
	if c.Jobs < 0 {
		return invalid(messages.ConfigJobsNegativeFmt, source, c.Jobs)
	}
	switch c.Scope {
	case ScopeInput, ScopeWorkingDir:
	default:
		return invalid(messages.ConfigScopeInvalidFmt, source, c.Scope)
	}
	switch c.Prompt {
	case PromptLine, PromptForm:
	default:
		return invalid(messages.ConfigPromptInvalidFmt, source, c.Prompt)
	}
	if strings.TrimSpace(c.Pattern) == "" {
		return invalid(messages.ConfigPatternRequiredFmt, source)
	}
	if _, err := glob.Compile(c.Pattern, '/'); err != nil {
		return invalid(messages.ConfigPatternInvalidFmt, source, c.Pattern, err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return invalid(messages.ConfigLogLevelInvalidFmt, source, c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json":
	default:
		return invalid(messages.ConfigLogFormatInvalidFmt, source, c.LogFormat)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

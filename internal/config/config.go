// Package config loads saveconv settings from config.toml.
package config

// Scope selects the directory save discovery walks.
type Scope string

const (
	// ScopeInput walks INPUTDIR only.
	ScopeInput Scope = "input"
	// ScopeWorkingDir walks the process working directory.
	ScopeWorkingDir Scope = "cwd"
)

// PromptMode selects the confirmation prompt style.
type PromptMode string

const (
	// PromptLine reads a single line from stdin.
	PromptLine PromptMode = "line"
	// PromptForm renders a huh confirm form when the terminal allows it.
	PromptForm PromptMode = "form"
)

// DefaultPattern matches save files at any depth below the discovery root.
const DefaultPattern = "**/*.sav"

// Config is the full saveconv configuration.
type Config struct {
	// Jobs caps concurrently running conversions; 0 means no cap.
	Jobs      int        `toml:"jobs"`
	Scope     Scope      `toml:"scope"`
	Pattern   string     `toml:"pattern"`
	Prompt    PromptMode `toml:"prompt"`
	Strict    bool       `toml:"strict"`
	Lock      bool       `toml:"lock"`
	LogLevel  string     `toml:"log_level"`
	LogFormat string     `toml:"log_format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Jobs:      0,
		Scope:     ScopeInput,
		Pattern:   DefaultPattern,
		Prompt:    PromptLine,
		Strict:    false,
		Lock:      true,
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

package messages

// Config messages for configuration loading and validation.
const (
	// ConfigReadFmt formats config read failures.
	ConfigReadFmt             = "read config %s: %w"
	ConfigInvalidFmt          = "invalid config %s: %w"
	ConfigResolveDirFmt       = "resolve user config dir: %w"
	ConfigExpandPathFmt       = "expand config path %s: %w"
	ConfigJobsNegativeFmt     = "%s: jobs must be 0 (no limit) or a positive number, got %d"
	ConfigScopeInvalidFmt     = "%s: scope must be one of input, cwd, got %q"
	ConfigPromptInvalidFmt    = "%s: prompt must be one of line, form, got %q"
	ConfigPatternInvalidFmt   = "%s: pattern %q: %v"
	ConfigPatternRequiredFmt  = "%s: pattern is required"
	ConfigLogLevelInvalidFmt  = "%s: log_level must be one of debug, info, warn, error, got %q"
	ConfigLogFormatInvalidFmt = "%s: log_format must be one of text, json, got %q"
	ConfigValidationFailed    = "config validation failed"
	ConfigLoadedFmt           = "loaded config from %s"
	ConfigFlagsSource         = "command line"
)

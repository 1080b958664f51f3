package messages

// CLI messages for the saveconv command.
const (
	// RootUse is the CLI usage line.
	RootUse = "saveconv [flags] INPUTDIR"
	// RootShort is the short description for the root command.
	RootShort       = "Convert BOTW saves from WiiU <-> Switch"
	RootLong        = RootShort + ".\n\nConverts every save file below INPUTDIR in place. INPUTDIR is the save directory containing option.sav; its platform decides the conversion direction.\n\nThe built-in converter reverses the byte order of every 32-bit word. Fields stored as raw byte strings are swapped too, so back up your saves and check them in game before deleting the backup."
	RootVersionFlag = "Print version and exit"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	FlagNoConfirm = "Disables the backup prompt"
	FlagJobs      = "Maximum number of files converted at once (0 = no limit)"
	FlagScope     = "Where to look for save files: input (INPUTDIR) or cwd (working directory)"
	FlagStrict    = "Exit with an error when any file fails to convert"
	FlagConfig    = "Path to a config.toml (default: user config dir)"
	FlagVerbose   = "Enable debug logging on stderr"

	// ErrorLineFmt formats the top-level error line.
	ErrorLineFmt = "Error: %v\n"

	// PromptConfirmFmt is the line prompt shown before converting.
	PromptConfirmFmt   = "This will convert your BOTW save from %s -> %s.\nMake sure you made a backup first.\nPress Y to continue, or any other key to abort.\n"
	PromptFormTitleFmt = "Convert your BOTW save from %s -> %s?"
	PromptFormBackup   = "Make sure you made a backup first."
	PromptFormYes      = "Convert"
	PromptFormNo       = "Abort"
	PromptNotAnswered  = "confirmation prompt failed: %w"
)

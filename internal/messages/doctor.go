package messages

// Doctor messages for the doctor command.
const (
	// DoctorUse is the doctor command usage line.
	DoctorUse   = "doctor INPUTDIR"
	DoctorShort = "Check a save directory without converting anything"

	DoctorHealthCheckFmt = "🏥 Checking BOTW saves in %s...\n"

	DoctorCheckNameDetection = "Detection"
	DoctorCheckNameConfig    = "Config"
	DoctorCheckNameSaves     = "Saves"
	DoctorCheckNameFile      = "File"

	DoctorDetectedFmt            = "%s save detected (converts to %s)"
	DoctorNoDetectionFile        = "No option.sav in the save directory"
	DoctorNoDetectionRecommend   = "Point INPUTDIR at the folder that holds option.sav (one level above the numbered slot folders)."
	DoctorDetectionFailedFmt     = "Cannot detect platform: %v"
	DoctorDetectionFailRecommend = "Make sure option.sav is an unmodified BOTW save and is readable."

	DoctorConfigDefaults      = "No config file; using defaults"
	DoctorConfigLoadedFmt     = "Configuration loaded from %s"
	DoctorConfigLoadFailedFmt = "Failed to load configuration: %v"
	DoctorConfigLoadRecommend = "Fix or remove the config file, or pass --config with a valid path."

	DoctorSavesFoundFmt      = "%d save files match %q under %s"
	DoctorNoSavesFmt         = "No files match %q under %s"
	DoctorNoSavesRecommend   = "Check --scope and the pattern setting; with --scope cwd, run from the save directory."
	DoctorInvalidPatternFmt  = "Invalid save pattern: %v"
	DoctorFileEmptyFmt       = "%s is empty"
	DoctorFileUnalignedFmt   = "%s has size %d, not a multiple of 4"
	DoctorFileSizeRecommend  = "This file will fail to convert; restore it from your backup."
	DoctorFileNotWritableFmt = "%s is not writable: %v"
	DoctorFileWriteRecommend = "Fix the file permissions before converting."
	DoctorFileStatFailedFmt  = "Cannot stat %s: %v"

	DoctorFailureSummary = "❌ Some checks failed. Please address the items above before converting."
	DoctorWarnSummary    = "⚠️  Ready to convert, but some files will be skipped."
	DoctorSuccessSummary = "✅ All systems go. Ready to convert."

	DoctorStatusOKLabel        = "[OK]  "
	DoctorStatusWarnLabel      = "[WARN]"
	DoctorStatusFailLabel      = "[FAIL]"
	DoctorResultLineFmt        = "%s %-10s %s\n"
	DoctorRecommendationPrefix = "       💡 "
	DoctorRecommendationIndent = "         "
)

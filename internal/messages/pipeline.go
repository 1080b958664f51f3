package messages

// Pipeline messages printed while detecting, confirming, and converting.
const (
	// PipelineNoDetectionFile is printed when INPUTDIR has no option.sav.
	PipelineNoDetectionFile = "That directory doesn't contain an option.sav file\n"
	PipelineAborted         = "Aborted."
	PipelineStartingFmt     = "Starting %s -> %s conversion...\n\n"
	PipelineProcessedFmt    = "Processed %s\n"
	PipelineFailedFmt       = "Failed %s: %v\n"
	PipelineCompleted       = "Converted successfully!"
	PipelineCompletedFailed = "%d of %d files could not be converted"

	PipelineInputDirRequired  = "input directory is required"
	PipelineDetectorRequired  = "platform detector is required"
	PipelineConverterRequired = "save converter is required"
	PipelinePrompterRequired  = "confirmation prompter is required"

	// DetectOpenFmt formats detection file open failures.
	DetectOpenFmt             = "open %s: %v"
	DetectClassifyFmt         = "detect platform of %s: %w"
	DetectNoFile              = "detection file not found"
	DetectInvalidResult       = "detector returned an unknown platform for %s"
	ConfirmInvalidPlatformFmt = "cannot confirm conversion between %s and %s"

	// DiscoverInvalidPatternFmt formats glob compile failures.
	DiscoverInvalidPatternFmt = "invalid save pattern %q: %w"

	// ConvertFileErrFmt formats per-file failures.
	ConvertFileErrFmt        = "%s %s: %v"
	ConvertUndisplayablePath = "couldn't determine file name"
	ConvertPanicFmt          = "converter panicked: %v"
	ConvertFailures          = "one or more save files failed to convert"

	// LockOpenFmt formats lock acquisition failures.
	LockHeld       = "file is locked by another process"
	LockTimeoutFmt = "timed out after %s waiting for file lock"

	// SaveFileShortHeader formats truncated detection headers.
	SaveFileShortHeader  = "header is shorter than 4 bytes"
	SaveFileAmbiguousFmt = "cannot tell byte order from header %08x"
	SaveFileEmpty        = "file is empty"
	SaveFileUnalignedFmt = "size %d is not a multiple of 4"
	SaveFileErrFmt       = "%s: %s"
	SaveFileReadFmt      = "read %s: %w"
	SaveFileWriteFmt     = "write %s: %w"
	SaveFileSeekFmt      = "seek %s: %w"
)

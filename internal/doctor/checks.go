package doctor

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/conn-castle/botw-saveconv/internal/detect"
	"github.com/conn-castle/botw-saveconv/internal/discover"
	"github.com/conn-castle/botw-saveconv/internal/messages"
	"github.com/conn-castle/botw-saveconv/internal/platform"
)

const wordSize = 4

var (
	statFunc   = os.Stat
	accessFunc = unix.Access
)

// CheckDetection reports the platform of dir/option.sav. The returned
// platform is Unknown unless the result is OK.
func CheckDetection(sys detect.System, dir string, d detect.Detector) (Result, platform.Platform) {
	from, err := detect.Detect(sys, dir, d)
	switch {
	case errors.Is(err, detect.ErrNoDetectionFile):
		return Result{
			CheckName:      messages.DoctorCheckNameDetection,
			Status:         StatusFail,
			Message:        messages.DoctorNoDetectionFile,
			Recommendation: messages.DoctorNoDetectionRecommend,
		}, platform.Unknown
	case err != nil:
		return Result{
			CheckName:      messages.DoctorCheckNameDetection,
			Status:         StatusFail,
			Message:        fmt.Sprintf(messages.DoctorDetectionFailedFmt, err),
			Recommendation: messages.DoctorDetectionFailRecommend,
		}, platform.Unknown
	}
	return Result{
		CheckName: messages.DoctorCheckNameDetection,
		Status:    StatusOK,
		Message:   fmt.Sprintf(messages.DoctorDetectedFmt, from, from.Destination()),
	}, from
}

// CheckConfig reports how configuration was resolved. source is the file the
// config came from, or "" for built-in defaults.
func CheckConfig(source string, loadErr error) Result {
	if loadErr != nil {
		return Result{
			CheckName:      messages.DoctorCheckNameConfig,
			Status:         StatusFail,
			Message:        fmt.Sprintf(messages.DoctorConfigLoadFailedFmt, loadErr),
			Recommendation: messages.DoctorConfigLoadRecommend,
		}
	}
	if source == "" {
		return Result{CheckName: messages.DoctorCheckNameConfig, Status: StatusOK, Message: messages.DoctorConfigDefaults}
	}
	return Result{
		CheckName: messages.DoctorCheckNameConfig,
		Status:    StatusOK,
		Message:   fmt.Sprintf(messages.DoctorConfigLoadedFmt, source),
	}
}

// CheckSaves discovers the files a conversion would touch and flags the ones
// that would fail: empty or unaligned sizes warn, unwritable files fail.
func CheckSaves(sys discover.System, root string, pattern string) []Result {
	paths, err := discover.Discover(sys, root, pattern)
	if err != nil {
		return []Result{{
			CheckName: messages.DoctorCheckNameSaves,
			Status:    StatusFail,
			Message:   fmt.Sprintf(messages.DoctorInvalidPatternFmt, err),
		}}
	}

	var files []Result
	count := 0
	for path := range paths {
		count++
		if r, ok := checkFile(path); !ok {
			files = append(files, r)
		}
	}

	summary := Result{
		CheckName: messages.DoctorCheckNameSaves,
		Status:    StatusOK,
		Message:   fmt.Sprintf(messages.DoctorSavesFoundFmt, count, pattern, root),
	}
	if count == 0 {
		summary.Status = StatusWarn
		summary.Message = fmt.Sprintf(messages.DoctorNoSavesFmt, pattern, root)
		summary.Recommendation = messages.DoctorNoSavesRecommend
	}
	return append([]Result{summary}, files...)
}

// checkFile returns a non-OK result for path, or false when path is fine.
func checkFile(path string) (Result, bool) {
	info, err := statFunc(path)
	if err != nil {
		return Result{
			CheckName: messages.DoctorCheckNameFile,
			Status:    StatusWarn,
			Message:   fmt.Sprintf(messages.DoctorFileStatFailedFmt, path, err),
		}, false
	}
	if err := accessFunc(path, unix.W_OK); err != nil {
		return Result{
			CheckName:      messages.DoctorCheckNameFile,
			Status:         StatusFail,
			Message:        fmt.Sprintf(messages.DoctorFileNotWritableFmt, path, err),
			Recommendation: messages.DoctorFileWriteRecommend,
		}, false
	}
	size := info.Size()
	switch {
	case size == 0:
		return Result{
			CheckName:      messages.DoctorCheckNameFile,
			Status:         StatusWarn,
			Message:        fmt.Sprintf(messages.DoctorFileEmptyFmt, path),
			Recommendation: messages.DoctorFileSizeRecommend,
		}, false
	case size%wordSize != 0:
		return Result{
			CheckName:      messages.DoctorCheckNameFile,
			Status:         StatusWarn,
			Message:        fmt.Sprintf(messages.DoctorFileUnalignedFmt, path, size),
			Recommendation: messages.DoctorFileSizeRecommend,
		}, false
	}
	return Result{}, true
}

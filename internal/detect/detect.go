// Package detect determines which platform a save directory belongs to by
// classifying its option.sav file.
package detect

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/conn-castle/botw-saveconv/internal/messages"
	"github.com/conn-castle/botw-saveconv/internal/platform"
)

// FileName is the detection file expected directly inside the save directory.
const FileName = "option.sav"

// ErrNoDetectionFile reports that the save directory has no option.sav.
// Callers treat it as "nothing to do" rather than a failure.
var ErrNoDetectionFile = errors.New(messages.DetectNoFile)

// Detector classifies the contents of a detection file.
type Detector interface {
	Detect(r io.Reader) (platform.Platform, error)
}

// System abstracts the filesystem operations needed for detection.
type System interface {
	Stat(name string) (os.FileInfo, error)
	Open(name string) (io.ReadCloser, error)
}

// RealSystem implements System using the OS filesystem.
type RealSystem struct{}

// Stat returns a FileInfo describing the named file.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// Open opens the named file read-only.
func (RealSystem) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

// IOError reports a detection file that exists but cannot be read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf(messages.DetectOpenFmt, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Path returns the detection file path for dir.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// Detect opens dir/option.sav read-only and asks d to classify it.
// It returns ErrNoDetectionFile when the file does not exist, *IOError when it
// cannot be opened or read, and the detector's error (wrapped) when the
// contents cannot be classified.
func Detect(sys System, dir string, d Detector) (platform.Platform, error) {
	path := Path(dir)
	if _, err := sys.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return platform.Unknown, ErrNoDetectionFile
		}
		return platform.Unknown, &IOError{Path: path, Err: err}
	}

	file, err := sys.Open(path)
	if err != nil {
		return platform.Unknown, &IOError{Path: path, Err: err}
	}
	defer func() { _ = file.Close() }()

	detected, err := d.Detect(file)
	if err != nil {
		return platform.Unknown, fmt.Errorf(messages.DetectClassifyFmt, path, err)
	}
	if !detected.Valid() {
		return platform.Unknown, fmt.Errorf(messages.DetectInvalidResult, path)
	}
	return detected, nil
}

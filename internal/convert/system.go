package convert

import (
	"io"
	"os"
)

// File is an open save file owned by a single conversion unit.
type File interface {
	io.ReadWriteSeeker
	io.Closer
	Fd() uintptr
}

// System abstracts opening save files so tests can inject failures.
type System interface {
	OpenReadWrite(name string) (File, error)
}

// RealSystem implements System using the OS filesystem.
type RealSystem struct{}

// OpenReadWrite opens name for reading and writing without creating it.
func (RealSystem) OpenReadWrite(name string) (File, error) {
	return os.OpenFile(name, os.O_RDWR, 0)
}

// Converter rewrites one open save file in place. path identifies the file
// for the collaborator's own diagnostics.
type Converter interface {
	Convert(rw io.ReadWriteSeeker, path string) error
}

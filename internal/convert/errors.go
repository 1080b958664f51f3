package convert

import (
	"errors"
	"fmt"

	"github.com/conn-castle/botw-saveconv/internal/messages"
)

// Op names the step of a conversion unit that failed.
type Op string

const (
	OpOpen    Op = "open"
	OpLock    Op = "lock"
	OpConvert Op = "convert"
	OpClose   Op = "close"
	OpDisplay Op = "display"
)

var (
	// ErrUndisplayablePath reports a path whose short form cannot be rendered.
	ErrUndisplayablePath = errors.New(messages.ConvertUndisplayablePath)
	// ErrConversionFailures is returned by PolicyFailOnError when any unit failed.
	ErrConversionFailures = errors.New(messages.ConvertFailures)
)

// FileError is the failure recorded for a single conversion unit.
type FileError struct {
	Path string
	Op   Op
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf(messages.ConvertFileErrFmt, e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

package savefile

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/conn-castle/botw-saveconv/internal/messages"
	"github.com/conn-castle/botw-saveconv/internal/platform"
)

const (
	wordSize = 4
	// maxHeaderVersion bounds the leading version word in native byte order.
	maxHeaderVersion = 0xffff
)

// FormatError reports save contents the collaborator cannot classify or convert.
type FormatError struct {
	Path   string
	Reason string
}

func (e *FormatError) Error() string {
	if e.Path == "" {
		return e.Reason
	}
	return fmt.Sprintf(messages.SaveFileErrFmt, e.Path, e.Reason)
}

// Detector classifies option.sav headers.
type Detector struct{}

// Detect reads the first word of r and returns the platform whose byte order
// decodes it as a small version number.
func (Detector) Detect(r io.Reader) (platform.Platform, error) {
	var header [wordSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return platform.Unknown, &FormatError{Reason: messages.SaveFileShortHeader}
		}
		return platform.Unknown, err
	}
	return classify(header)
}

func classify(header [wordSize]byte) (platform.Platform, error) {
	big := binary.BigEndian.Uint32(header[:])
	little := binary.LittleEndian.Uint32(header[:])
	bigOK := big != 0 && big <= maxHeaderVersion
	littleOK := little != 0 && little <= maxHeaderVersion
	switch {
	case bigOK && !littleOK:
		return platform.WiiU, nil
	case littleOK && !bigOK:
		return platform.Switch, nil
	}
	return platform.Unknown, &FormatError{Reason: fmt.Sprintf(messages.SaveFileAmbiguousFmt, big)}
}

// Converter rewrites a save file into the opposite platform's byte order.
type Converter struct{}

// Convert swaps the byte order of every 32-bit word in rw. path is used only
// for error reporting.
func (Converter) Convert(rw io.ReadWriteSeeker, path string) error {
	if _, err := rw.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf(messages.SaveFileSeekFmt, path, err)
	}
	data, err := io.ReadAll(rw)
	if err != nil {
		return fmt.Errorf(messages.SaveFileReadFmt, path, err)
	}
	if len(data) == 0 {
		return &FormatError{Path: path, Reason: messages.SaveFileEmpty}
	}
	if len(data)%wordSize != 0 {
		return &FormatError{Path: path, Reason: fmt.Sprintf(messages.SaveFileUnalignedFmt, len(data))}
	}
	SwapWords(data)
	if _, err := rw.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf(messages.SaveFileSeekFmt, path, err)
	}
	if _, err := rw.Write(data); err != nil {
		return fmt.Errorf(messages.SaveFileWriteFmt, path, err)
	}
	return nil
}

// SwapWords reverses each complete 32-bit word of data in place. A trailing
// partial word is left untouched.
func SwapWords(data []byte) {
	for i := 0; i+wordSize <= len(data); i += wordSize {
		data[i], data[i+1], data[i+2], data[i+3] = data[i+3], data[i+2], data[i+1], data[i]
	}
}

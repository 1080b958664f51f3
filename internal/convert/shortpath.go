package convert

import (
	"path/filepath"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// ShortPath renders path as "parent/file", or just "file" when path has no
// named, valid UTF-8 parent. It fails when the file name itself cannot be
// displayed.
func ShortPath(path string) (string, error) {
	if path == "" {
		return "", ErrUndisplayablePath
	}
	clean := filepath.Clean(path)
	name := filepath.Base(clean)
	if !namedComponent(name) || !utf8.ValidString(name) {
		return "", ErrUndisplayablePath
	}

	dir := filepath.Dir(clean)
	parent := filepath.Base(dir)
	if !namedComponent(parent) || !utf8.ValidString(parent) {
		return norm.NFC.String(name), nil
	}
	return norm.NFC.String(parent + "/" + name), nil
}

func namedComponent(s string) bool {
	switch s {
	case "", ".", "..", string(filepath.Separator):
		return false
	}
	return true
}

// Package terminal provides terminal detection utilities.
package terminal

import (
	"io"

	"golang.org/x/term"
)

type fdHolder interface {
	Fd() uintptr
}

var isTerminalFn = term.IsTerminal

// IsInteractive reports whether in and out are both attached to a terminal.
// Readers and writers that are not backed by a file descriptor (buffers in
// tests, pipes wrapped by cobra) are never interactive.
func IsInteractive(in io.Reader, out io.Writer) bool {
	inFile, ok := in.(fdHolder)
	if !ok {
		return false
	}
	outFile, ok := out.(fdHolder)
	if !ok {
		return false
	}
	return isTerminalFn(int(inFile.Fd())) && isTerminalFn(int(outFile.Fd()))
}

// Package confirm implements the gate that asks the user before any save file
// is rewritten.
package confirm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/conn-castle/botw-saveconv/internal/messages"
	"github.com/conn-castle/botw-saveconv/internal/platform"
)

// Request describes the conversion awaiting confirmation.
type Request struct {
	From platform.Platform
	To   platform.Platform
}

// Prompter asks the user to approve a conversion.
type Prompter interface {
	Confirm(req Request) (bool, error)
}

// Confirm returns true immediately when autoConfirm is set, without touching p.
// Otherwise it blocks on p. A false result means the user declined.
func Confirm(p Prompter, from, to platform.Platform, autoConfirm bool) (bool, error) {
	if autoConfirm {
		return true, nil
	}
	if !from.Valid() || !to.Valid() || from == to {
		return false, fmt.Errorf(messages.ConfirmInvalidPlatformFmt, from, to)
	}
	return p.Confirm(Request{From: from, To: to})
}

// LinePrompter prints the conversion notice and reads exactly one line.
type LinePrompter struct {
	In  io.Reader
	Out io.Writer
}

// Confirm accepts only "y" or "Y" (surrounding whitespace ignored). Empty
// input and EOF decline.
func (p LinePrompter) Confirm(req Request) (bool, error) {
	if _, err := fmt.Fprintf(p.Out, messages.PromptConfirmFmt, req.From, req.To); err != nil {
		return false, err
	}
	line, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf(messages.PromptNotAnswered, err)
	}
	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}

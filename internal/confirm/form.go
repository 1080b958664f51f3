package confirm

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/conn-castle/botw-saveconv/internal/messages"
	"github.com/conn-castle/botw-saveconv/internal/terminal"
)

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// FormPrompter renders a huh confirm form. When in/out are not an
// interactive terminal it delegates to the line prompter.
type FormPrompter struct {
	In  io.Reader
	Out io.Writer

	isTerminal func() bool
}

// NewFormPrompter creates a FormPrompter bound to in and out.
func NewFormPrompter(in io.Reader, out io.Writer) *FormPrompter {
	return &FormPrompter{In: in, Out: out}
}

func (p *FormPrompter) interactive() bool {
	if p.isTerminal != nil {
		return p.isTerminal()
	}
	return terminal.IsInteractive(p.In, p.Out)
}

// Confirm shows a yes/no form defaulting to no. Escape or Ctrl+C declines.
func (p *FormPrompter) Confirm(req Request) (bool, error) {
	if !p.interactive() {
		return LinePrompter{In: p.In, Out: p.Out}.Confirm(req)
	}

	accepted := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf(messages.PromptFormTitleFmt, req.From, req.To)).
				Description(messages.PromptFormBackup).
				Affirmative(messages.PromptFormYes).
				Negative(messages.PromptFormNo).
				Value(&accepted),
		),
	)
	form.WithProgramOptions(
		tea.WithInput(p.In),
		tea.WithOutput(p.Out),
	)

	err := runFormFunc(form)
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf(messages.PromptNotAnswered, err)
	}
	return accepted, nil
}

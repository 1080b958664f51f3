package convert

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/conn-castle/botw-saveconv/internal/messages"
)

// Summary splits outcomes into successes and failures, each in outcome order.
type Summary struct {
	Succeeded []Outcome
	Failed    []Outcome
}

// Total returns the number of dispatched units.
func (s Summary) Total() int {
	return len(s.Succeeded) + len(s.Failed)
}

// Aggregate partitions outcomes by result.
func Aggregate(outcomes []Outcome) Summary {
	var s Summary
	for _, o := range outcomes {
		if o.OK() {
			s.Succeeded = append(s.Succeeded, o)
		} else {
			s.Failed = append(s.Failed, o)
		}
	}
	return s
}

// Report prints one "Processed" line per success to out, one "Failed" line
// per failure to errOut, and then the completion message to out. The
// completion message is printed even when some units failed.
func Report(out io.Writer, errOut io.Writer, s Summary) error {
	for _, o := range s.Succeeded {
		if _, err := fmt.Fprintf(out, messages.PipelineProcessedFmt, o.Display); err != nil {
			return err
		}
	}
	warnColor := color.New(color.FgYellow)
	for _, o := range s.Failed {
		if _, err := warnColor.Fprintf(errOut, messages.PipelineFailedFmt, o.Path, unwrapFileError(o.Err)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return err
	}
	if len(s.Failed) > 0 {
		if _, err := warnColor.Fprintln(errOut, fmt.Sprintf(messages.PipelineCompletedFailed, len(s.Failed), s.Total())); err != nil {
			return err
		}
	}
	_, err := color.New(color.FgGreen).Fprintln(out, messages.PipelineCompleted)
	return err
}

// unwrapFileError drops the path prefix a FileError would repeat.
func unwrapFileError(err error) error {
	var fe *FileError
	if errors.As(err, &fe) {
		return fmt.Errorf("%s: %w", fe.Op, fe.Err)
	}
	return err
}

// ExitPolicy decides whether per-file failures fail the whole run.
type ExitPolicy int

const (
	// PolicyIgnoreFailures completes successfully regardless of failed units.
	PolicyIgnoreFailures ExitPolicy = iota
	// PolicyFailOnError returns ErrConversionFailures when any unit failed.
	PolicyFailOnError
)

// Err applies the policy to s.
func (p ExitPolicy) Err(s Summary) error {
	if p == PolicyFailOnError && len(s.Failed) > 0 {
		return fmt.Errorf("%w (%d of %d)", ErrConversionFailures, len(s.Failed), s.Total())
	}
	return nil
}

// Package pipeline wires detection, confirmation, discovery, dispatch, and
// reporting into a single conversion run.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/conn-castle/botw-saveconv/internal/config"
	"github.com/conn-castle/botw-saveconv/internal/confirm"
	"github.com/conn-castle/botw-saveconv/internal/convert"
	"github.com/conn-castle/botw-saveconv/internal/detect"
	"github.com/conn-castle/botw-saveconv/internal/discover"
	"github.com/conn-castle/botw-saveconv/internal/logging"
	"github.com/conn-castle/botw-saveconv/internal/messages"
	"github.com/conn-castle/botw-saveconv/internal/platform"
)

// Status is how a run ended when it returned no error.
type Status int

const (
	// StatusCompleted means every discovered file was dispatched and reported.
	StatusCompleted Status = iota
	// StatusNoDetectionFile means INPUTDIR had no option.sav; nothing was touched.
	StatusNoDetectionFile
	// StatusAborted means the user declined the confirmation prompt.
	StatusAborted
)

var getwd = os.Getwd

// Options are the per-run inputs.
type Options struct {
	InputDir  string
	NoConfirm bool
	Config    config.Config
	// WorkDir is the discovery root for config.ScopeWorkingDir. Empty means
	// the process working directory.
	WorkDir string
}

// Deps are the collaborators a run talks to. Nil systems, loggers, and
// writers fall back to the real filesystem, a discarding logger, and
// io.Discard.
type Deps struct {
	Detector       detect.Detector
	Converter      convert.Converter
	Prompter       confirm.Prompter
	DetectSystem   detect.System
	DiscoverSystem discover.System
	ConvertSystem  convert.System
	Logger         *slog.Logger
	Out            io.Writer
	ErrOut         io.Writer
}

// Result describes a finished run.
type Result struct {
	Status  Status
	From    platform.Platform
	To      platform.Platform
	Summary convert.Summary
}

// Run executes one conversion. Detection and confirmation finish before any
// file is discovered. Per-file failures never fail the run unless the
// configured policy says so; the summary still lists them.
func Run(ctx context.Context, opts Options, deps Deps) (Result, error) {
	if err := deps.validate(opts); err != nil {
		return Result{}, err
	}
	deps = deps.withDefaults()
	log := deps.Logger

	from, err := detect.Detect(deps.DetectSystem, opts.InputDir, deps.Detector)
	if errors.Is(err, detect.ErrNoDetectionFile) {
		log.DebugContext(ctx, "no detection file", "path", detect.Path(opts.InputDir))
		if _, werr := fmt.Fprint(deps.Out, messages.PipelineNoDetectionFile); werr != nil {
			return Result{}, werr
		}
		return Result{Status: StatusNoDetectionFile}, nil
	}
	if err != nil {
		return Result{}, err
	}
	to := from.Destination()
	log.DebugContext(ctx, "detected platform", "from", from, "to", to)

	ok, err := confirm.Confirm(deps.Prompter, from, to, opts.NoConfirm)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		if _, werr := fmt.Fprintln(deps.Out, messages.PipelineAborted); werr != nil {
			return Result{}, werr
		}
		return Result{Status: StatusAborted, From: from, To: to}, nil
	}
	if !opts.NoConfirm {
		if _, werr := fmt.Fprintln(deps.Out); werr != nil {
			return Result{}, werr
		}
	}
	if _, werr := fmt.Fprintf(deps.Out, messages.PipelineStartingFmt, from, to); werr != nil {
		return Result{}, werr
	}

	root, err := discoveryRoot(opts)
	if err != nil {
		return Result{}, err
	}
	log.DebugContext(ctx, "discovering saves", "root", root, "pattern", opts.Config.Pattern)
	paths, err := discover.Discover(deps.DiscoverSystem, root, opts.Config.Pattern)
	if err != nil {
		return Result{}, err
	}

	dispatcher := &convert.Dispatcher{
		Converter: deps.Converter,
		System:    deps.ConvertSystem,
		Jobs:      opts.Config.Jobs,
		Lock:      opts.Config.Lock,
		Logger:    log,
	}
	summary := convert.Aggregate(dispatcher.Dispatch(ctx, paths))
	log.DebugContext(ctx, "conversion finished",
		"succeeded", len(summary.Succeeded),
		"failed", len(summary.Failed),
	)
	result := Result{Status: StatusCompleted, From: from, To: to, Summary: summary}
	if err := convert.Report(deps.Out, deps.ErrOut, summary); err != nil {
		return result, err
	}
	return result, exitPolicy(opts.Config).Err(summary)
}

func (d Deps) validate(opts Options) error {
	switch {
	case opts.InputDir == "":
		return errors.New(messages.PipelineInputDirRequired)
	case d.Detector == nil:
		return errors.New(messages.PipelineDetectorRequired)
	case d.Converter == nil:
		return errors.New(messages.PipelineConverterRequired)
	case d.Prompter == nil && !opts.NoConfirm:
		return errors.New(messages.PipelinePrompterRequired)
	}
	return nil
}

func (d Deps) withDefaults() Deps {
	if d.DetectSystem == nil {
		d.DetectSystem = detect.RealSystem{}
	}
	if d.DiscoverSystem == nil {
		d.DiscoverSystem = discover.RealSystem{}
	}
	if d.ConvertSystem == nil {
		d.ConvertSystem = convert.RealSystem{}
	}
	d.Logger = logging.OrNop(d.Logger)
	if d.Out == nil {
		d.Out = io.Discard
	}
	if d.ErrOut == nil {
		d.ErrOut = io.Discard
	}
	return d
}

func discoveryRoot(opts Options) (string, error) {
	if opts.Config.Scope != config.ScopeWorkingDir {
		return opts.InputDir, nil
	}
	if opts.WorkDir != "" {
		return opts.WorkDir, nil
	}
	return getwd()
}

func exitPolicy(cfg config.Config) convert.ExitPolicy {
	if cfg.Strict {
		return convert.PolicyFailOnError
	}
	return convert.PolicyIgnoreFailures
}

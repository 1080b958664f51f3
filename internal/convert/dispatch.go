package convert

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/conn-castle/botw-saveconv/internal/fsutil"
	"github.com/conn-castle/botw-saveconv/internal/logging"
	"github.com/conn-castle/botw-saveconv/internal/messages"
)

// Outcome is the terminal result of one conversion unit. Err is nil on
// success, in which case Display holds the short path to report.
type Outcome struct {
	// Index is the dispatch position, equal to the discovery position.
	Index   int
	Path    string
	Display string
	Err     error
}

// OK reports whether the unit succeeded.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Dispatcher launches one conversion unit per discovered path.
type Dispatcher struct {
	Converter Converter
	System    System
	// Jobs caps concurrently running units. Zero or negative means every
	// discovered file is dispatched at once.
	Jobs int
	// Lock takes an exclusive advisory lock on each file before converting.
	Lock   bool
	Logger *slog.Logger
}

var lockFile = fsutil.LockExclusive
var unlockFile = fsutil.Unlock

// Dispatch consumes paths in order, starting a unit for each, and blocks
// until every unit has finished. The returned outcomes are in dispatch
// order. Dispatch does not observe ctx cancellation: once started, every
// unit runs to completion.
func (d *Dispatcher) Dispatch(ctx context.Context, paths iter.Seq[string]) []Outcome {
	log := logging.OrNop(d.Logger)

	var g errgroup.Group
	limit := d.Jobs
	if limit <= 0 {
		limit = -1
	}
	g.SetLimit(limit)

	var pending []*Outcome
	for path := range paths {
		o := &Outcome{Index: len(pending), Path: path}
		pending = append(pending, o)
		log.DebugContext(ctx, "dispatch", "index", o.Index, "path", path)
		g.Go(func() error {
			d.runUnit(ctx, log, o)
			return nil
		})
	}
	_ = g.Wait()

	outcomes := make([]Outcome, len(pending))
	for i, o := range pending {
		outcomes[i] = *o
	}
	return outcomes
}

// runUnit fills o. It never panics: a panicking converter fails only o.
func (d *Dispatcher) runUnit(ctx context.Context, log *slog.Logger, o *Outcome) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			o.Err = &FileError{Path: o.Path, Op: OpConvert, Err: fmt.Errorf(messages.ConvertPanicFmt, r)}
		}
		log.DebugContext(ctx, "unit finished",
			"index", o.Index,
			"path", o.Path,
			"ok", o.Err == nil,
			"elapsed", time.Since(start),
		)
	}()

	if err := d.convertFile(o.Path); err != nil {
		o.Err = err
		return
	}
	display, err := ShortPath(o.Path)
	if err != nil {
		o.Err = &FileError{Path: o.Path, Op: OpDisplay, Err: err}
		return
	}
	o.Display = display
}

func (d *Dispatcher) convertFile(path string) (err error) {
	sys := d.System
	if sys == nil {
		sys = RealSystem{}
	}
	file, err := sys.OpenReadWrite(path)
	if err != nil {
		return &FileError{Path: path, Op: OpOpen, Err: err}
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = &FileError{Path: path, Op: OpClose, Err: closeErr}
		}
	}()

	if d.Lock {
		if err := lockFile(file.Fd()); err != nil {
			return &FileError{Path: path, Op: OpLock, Err: err}
		}
		defer func() { _ = unlockFile(file.Fd()) }()
	}

	if err := d.Converter.Convert(file, path); err != nil {
		return &FileError{Path: path, Op: OpConvert, Err: err}
	}
	return nil
}

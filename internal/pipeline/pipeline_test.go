package pipeline

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/botw-saveconv/internal/config"
	"github.com/conn-castle/botw-saveconv/internal/confirm"
	"github.com/conn-castle/botw-saveconv/internal/convert"
	"github.com/conn-castle/botw-saveconv/internal/detect"
	"github.com/conn-castle/botw-saveconv/internal/discover"
	"github.com/conn-castle/botw-saveconv/internal/platform"
	"github.com/conn-castle/botw-saveconv/internal/savefile"
	"github.com/conn-castle/botw-saveconv/internal/testutil"
)

func init() {
	color.NoColor = true
}

type countingConverter struct {
	calls atomic.Int32
	fail  map[string]error
	inner convert.Converter
}

func (c *countingConverter) Convert(rw io.ReadWriteSeeker, path string) error {
	c.calls.Add(1)
	for suffix, err := range c.fail {
		if strings.HasSuffix(path, suffix) {
			return err
		}
	}
	if c.inner != nil {
		return c.inner.Convert(rw, path)
	}
	return nil
}

type countingWalker struct {
	calls atomic.Int32
}

func (w *countingWalker) WalkDir(root string, fn fs.WalkDirFunc) error {
	w.calls.Add(1)
	return discover.RealSystem{}.WalkDir(root, fn)
}

type scriptedPrompter struct {
	answer bool
	err    error
	calls  int
}

func (p *scriptedPrompter) Confirm(confirm.Request) (bool, error) {
	p.calls++
	return p.answer, p.err
}

func baseDeps(out, errOut *bytes.Buffer) (Deps, *countingConverter, *countingWalker) {
	conv := &countingConverter{inner: savefile.Converter{}}
	walker := &countingWalker{}
	return Deps{
		Detector:       savefile.Detector{},
		Converter:      conv,
		DiscoverSystem: walker,
		Out:            out,
		ErrOut:         errOut,
	}, conv, walker
}

func TestRunNoDetectionFile(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteSave(t, dir, "0/game_data.sav", []byte{1, 2, 3, 4})
	var out, errOut bytes.Buffer
	deps, conv, walker := baseDeps(&out, &errOut)
	prompter := &scriptedPrompter{answer: true}
	deps.Prompter = prompter

	res, err := Run(context.Background(), Options{InputDir: dir, Config: config.Default()}, deps)
	require.NoError(t, err)
	assert.Equal(t, StatusNoDetectionFile, res.Status)
	assert.Equal(t, "That directory doesn't contain an option.sav file\n", out.String())
	assert.Zero(t, prompter.calls)
	assert.Zero(t, walker.calls.Load())
	assert.Zero(t, conv.calls.Load())
}

func TestRunDeclined(t *testing.T) {
	for _, input := range []string{"n\n", "\n", "", "yes\n", "  x  \n"} {
		t.Run(strings.TrimSpace(input), func(t *testing.T) {
			dir := t.TempDir()
			testutil.WriteOptionSav(t, dir, platform.WiiU)
			var out, errOut bytes.Buffer
			deps, conv, walker := baseDeps(&out, &errOut)
			deps.Prompter = confirm.LinePrompter{In: strings.NewReader(input), Out: &out}

			res, err := Run(context.Background(), Options{InputDir: dir, Config: config.Default()}, deps)
			require.NoError(t, err)
			assert.Equal(t, StatusAborted, res.Status)
			assert.True(t, strings.HasSuffix(out.String(), "Aborted.\n"))
			assert.Zero(t, walker.calls.Load())
			assert.Zero(t, conv.calls.Load())
		})
	}
}

func TestRunConfirmedConvertsEverything(t *testing.T) {
	dir := t.TempDir()
	option := testutil.WriteOptionSav(t, dir, platform.WiiU, 0xaa, 0xbb, 0xcc, 0xdd)
	game := testutil.WriteSave(t, dir, "0/game_data.sav", []byte{1, 2, 3, 4, 5, 6, 7, 8})
	testutil.WriteSave(t, dir, "0/notes.txt", []byte("skip"))

	var out, errOut bytes.Buffer
	deps, conv, _ := baseDeps(&out, &errOut)
	deps.Prompter = confirm.LinePrompter{In: strings.NewReader(" Y \n"), Out: &out}

	res, err := Run(context.Background(), Options{InputDir: dir, Config: config.Default()}, deps)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, res.Status)
	assert.Equal(t, platform.WiiU, res.From)
	assert.Equal(t, platform.Switch, res.To)
	assert.Len(t, res.Summary.Succeeded, 2)
	assert.Equal(t, int32(2), conv.calls.Load())

	got := out.String()
	assert.Contains(t, got, "This will convert your BOTW save from WiiU -> Switch.\n")
	assert.Contains(t, got, "\n\nStarting WiiU -> Switch conversion...\n\n")
	assert.Equal(t, 2, strings.Count(got, "Processed "))
	assert.Contains(t, got, "Processed 0/game_data.sav\n")
	assert.True(t, strings.HasSuffix(got, "\nConverted successfully!\n"))
	assert.Equal(t, 1, strings.Count(got, "Converted successfully!"))
	assert.Empty(t, errOut.String())

	assert.Equal(t, []byte{0x71, 0x04, 0x00, 0x00, 0xdd, 0xcc, 0xbb, 0xaa}, testutil.ReadFile(t, option))
	assert.Equal(t, []byte{4, 3, 2, 1, 8, 7, 6, 5}, testutil.ReadFile(t, game))
}

func TestRunNoConfirmSkipsPromptAndBlankLine(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteOptionSav(t, dir, platform.Switch)
	var out, errOut bytes.Buffer
	deps, _, _ := baseDeps(&out, &errOut)

	res, err := Run(context.Background(), Options{InputDir: dir, NoConfirm: true, Config: config.Default()}, deps)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, res.Status)
	assert.True(t, strings.HasPrefix(out.String(), "Starting Switch -> WiiU conversion...\n\n"))
}

func TestRunIsolatesFailures(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteOptionSav(t, dir, platform.WiiU)
	testutil.WriteSave(t, dir, "0/caption.sav", []byte{1, 2, 3, 4})
	testutil.WriteSave(t, dir, "0/game_data.sav", []byte{1, 2, 3, 4})
	testutil.WriteSave(t, dir, "1/game_data.sav", []byte{1, 2, 3})

	var out, errOut bytes.Buffer
	deps, _, _ := baseDeps(&out, &errOut)

	res, err := Run(context.Background(), Options{InputDir: dir, NoConfirm: true, Config: config.Default()}, deps)
	require.NoError(t, err)
	assert.Len(t, res.Summary.Succeeded, 3)
	require.Len(t, res.Summary.Failed, 1)
	var fe *savefile.FormatError
	assert.ErrorAs(t, res.Summary.Failed[0].Err, &fe)
	assert.Equal(t, 3, strings.Count(out.String(), "Processed "))
	assert.Contains(t, errOut.String(), "Failed ")
	assert.Contains(t, out.String(), "Converted successfully!")
}

func TestRunStrictFailsOnAnyFailure(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteOptionSav(t, dir, platform.WiiU)
	testutil.WriteSave(t, dir, "0/game_data.sav", []byte{1, 2, 3, 4})

	var out, errOut bytes.Buffer
	deps, conv, _ := baseDeps(&out, &errOut)
	conv.fail = map[string]error{"game_data.sav": errors.New("checksum")}
	cfg := config.Default()
	cfg.Strict = true

	res, err := Run(context.Background(), Options{InputDir: dir, NoConfirm: true, Config: cfg}, deps)
	require.ErrorIs(t, err, convert.ErrConversionFailures)
	assert.Equal(t, StatusCompleted, res.Status)
	assert.Len(t, res.Summary.Succeeded, 1)
}

func TestRunWorkingDirScope(t *testing.T) {
	input := t.TempDir()
	work := t.TempDir()
	testutil.WriteOptionSav(t, input, platform.WiiU)
	elsewhere := testutil.WriteSave(t, work, "slot/game_data.sav", []byte{1, 2, 3, 4})

	cfg := config.Default()
	cfg.Scope = config.ScopeWorkingDir

	var out, errOut bytes.Buffer
	deps, _, _ := baseDeps(&out, &errOut)
	res, err := Run(context.Background(), Options{InputDir: input, NoConfirm: true, Config: cfg, WorkDir: work}, deps)
	require.NoError(t, err)
	require.Len(t, res.Summary.Succeeded, 1)
	assert.Equal(t, elsewhere, res.Summary.Succeeded[0].Path)

	orig := getwd
	t.Cleanup(func() { getwd = orig })
	getwd = func() (string, error) { return "", errors.New("no cwd") }
	_, err = Run(context.Background(), Options{InputDir: input, NoConfirm: true, Config: cfg}, deps)
	require.ErrorContains(t, err, "no cwd")
}

func TestRunDetectionErrorsAreFatal(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteSave(t, dir, "option.sav", []byte{0, 0})
	var out, errOut bytes.Buffer
	deps, conv, walker := baseDeps(&out, &errOut)

	_, err := Run(context.Background(), Options{InputDir: dir, NoConfirm: true, Config: config.Default()}, deps)
	var fe *savefile.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Zero(t, walker.calls.Load())
	assert.Zero(t, conv.calls.Load())
}

func TestRunPromptError(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteOptionSav(t, dir, platform.WiiU)
	var out, errOut bytes.Buffer
	deps, conv, _ := baseDeps(&out, &errOut)
	deps.Prompter = &scriptedPrompter{err: errors.New("tty gone")}

	_, err := Run(context.Background(), Options{InputDir: dir, Config: config.Default()}, deps)
	require.ErrorContains(t, err, "tty gone")
	assert.Zero(t, conv.calls.Load())
}

func TestRunInvalidPattern(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteOptionSav(t, dir, platform.WiiU)
	cfg := config.Default()
	cfg.Pattern = "[*.sav"
	var out, errOut bytes.Buffer
	deps, _, _ := baseDeps(&out, &errOut)

	_, err := Run(context.Background(), Options{InputDir: dir, NoConfirm: true, Config: cfg}, deps)
	require.Error(t, err)
}

func TestRunRequiresCollaborators(t *testing.T) {
	opts := Options{InputDir: "x", Config: config.Default()}
	full := Deps{Detector: savefile.Detector{}, Converter: savefile.Converter{}, Prompter: &scriptedPrompter{}}

	_, err := Run(context.Background(), Options{Config: config.Default()}, full)
	assert.Error(t, err)

	missingDetector := full
	missingDetector.Detector = nil
	_, err = Run(context.Background(), opts, missingDetector)
	assert.Error(t, err)

	missingConverter := full
	missingConverter.Converter = nil
	_, err = Run(context.Background(), opts, missingConverter)
	assert.Error(t, err)

	missingPrompter := full
	missingPrompter.Prompter = nil
	_, err = Run(context.Background(), opts, missingPrompter)
	assert.Error(t, err)

	opts.NoConfirm = true
	opts.InputDir = t.TempDir()
	res, err := Run(context.Background(), opts, missingPrompter)
	require.NoError(t, err)
	assert.Equal(t, StatusNoDetectionFile, res.Status)
}

func TestRunDetectIOError(t *testing.T) {
	deps := Deps{
		Detector:     savefile.Detector{},
		Converter:    savefile.Converter{},
		DetectSystem: failingStat{},
	}
	_, err := Run(context.Background(), Options{InputDir: "in", NoConfirm: true, Config: config.Default()}, deps)
	var ioErr *detect.IOError
	require.ErrorAs(t, err, &ioErr)
}

type failingStat struct{ detect.RealSystem }

func (failingStat) Stat(string) (fs.FileInfo, error) { return nil, fs.ErrPermission }

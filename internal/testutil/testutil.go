package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/conn-castle/botw-saveconv/internal/platform"
)

// OptionSavName is the detection file name written by WriteOptionSav.
const OptionSavName = "option.sav"

var (
	// WiiUHeader is a big-endian option.sav header for version 0x471.
	WiiUHeader = []byte{0x00, 0x00, 0x04, 0x71}
	// SwitchHeader is the little-endian form of WiiUHeader.
	SwitchHeader = []byte{0x71, 0x04, 0x00, 0x00}
)

// WriteSave writes data to dir/rel, creating parent directories.
// t is the active test; rel is a slash-separated path relative to dir.
func WriteSave(t *testing.T, dir string, rel string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write save: %v", err)
	}
	return path
}

// WriteOptionSav writes an option.sav in dir whose header identifies p.
// Extra words are appended after the header so the file converts cleanly.
func WriteOptionSav(t *testing.T, dir string, p platform.Platform, extra ...byte) string {
	t.Helper()
	var header []byte
	switch p {
	case platform.WiiU:
		header = WiiUHeader
	case platform.Switch:
		header = SwitchHeader
	default:
		t.Fatalf("no header for platform %s", p)
	}
	data := append(append([]byte{}, header...), extra...)
	return WriteSave(t, dir, OptionSavName, data)
}

// ReadFile returns the contents of path or fails the test.
func ReadFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return data
}

// WithWorkingDir runs fn with dir as the current working directory and restores the previous directory.
// t is the active test; dir is the temporary working directory for fn.
func WithWorkingDir(t *testing.T, dir string, fn func()) {
	t.Helper()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer func() {
		if err := os.Chdir(cwd); err != nil {
			t.Fatalf("restore chdir: %v", err)
		}
	}()
	fn()
}

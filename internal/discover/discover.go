// Package discover enumerates save files below a root directory.
package discover

import (
	"fmt"
	"io/fs"
	"iter"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/gobwas/glob"

	"github.com/conn-castle/botw-saveconv/internal/messages"
)

// System abstracts the directory walk so tests can inject failures.
type System interface {
	WalkDir(root string, fn fs.WalkDirFunc) error
}

// RealSystem implements System using the OS filesystem.
type RealSystem struct{}

// WalkDir walks the file tree rooted at root.
func (RealSystem) WalkDir(root string, fn fs.WalkDirFunc) error {
	return filepath.WalkDir(root, fn)
}

// Matcher reports whether a slash-separated path relative to the walk root
// is a save file.
type Matcher struct {
	globs []glob.Glob
}

// CompilePattern compiles a glob such as "**/*.sav". A leading "**/" also
// matches files directly in the root, so "**/*.sav" matches "option.sav".
func CompilePattern(pattern string) (*Matcher, error) {
	patterns := []string{pattern}
	if rest, ok := strings.CutPrefix(pattern, "**/"); ok && rest != "" {
		patterns = append(patterns, rest)
	}
	m := &Matcher{}
	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf(messages.DiscoverInvalidPatternFmt, pattern, err)
		}
		m.globs = append(m.globs, g)
	}
	return m, nil
}

// Match reports whether rel matches any compiled pattern.
func (m *Matcher) Match(rel string) bool {
	for _, g := range m.globs {
		if g.Match(rel) {
			return true
		}
	}
	return false
}

// Discover returns a lazy sequence of files under root matching pattern, in
// lexical walk order. The walk runs as the sequence is consumed; stopping
// early stops the walk. Entries that fail during the walk are skipped:
// unreadable directories are pruned and the walk continues.
//
// The sequence is single-use: only the first range walks the tree, and any
// later range yields nothing.
func Discover(sys System, root string, pattern string) (iter.Seq[string], error) {
	matcher, err := CompilePattern(pattern)
	if err != nil {
		return nil, err
	}
	var consumed atomic.Bool
	return func(yield func(string) bool) {
		if consumed.Swap(true) {
			return
		}
		_ = sys.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if d != nil && d.IsDir() && path != root {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				return nil
			}
			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				return nil
			}
			if !matcher.Match(filepath.ToSlash(rel)) {
				return nil
			}
			if !yield(path) {
				return fs.SkipAll
			}
			return nil
		})
	}, nil
}

// Collect drains seq into a slice.
func Collect(seq iter.Seq[string]) []string {
	var paths []string
	for path := range seq {
		paths = append(paths, path)
	}
	return paths
}

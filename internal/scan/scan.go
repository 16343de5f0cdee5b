// Package scan enumerates the files a data path provides.
//
// A data path provides every regular file beneath its directory, identified by
// its path relative to that directory. Relative paths are normalized to
// forward slashes so comparisons across data paths are separator-independent.
package scan

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/openmw-tools/modcheck/internal/fsops"
)

// FileSet is the set of slash-normalized relative file paths under a data path.
type FileSet map[string]struct{}

// Contains reports whether the set provides the given relative path.
func (s FileSet) Contains(rel string) bool {
	_, ok := s[rel]
	return ok
}

// Sorted returns the relative paths in lexical order.
func (s FileSet) Sorted() []string {
	paths := make([]string, 0, len(s))
	for p := range s {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Scanner walks data path directories and produces their FileSets.
// Results are cached per directory, so a data path that appears multiple
// times in one analysis run is only walked once.
type Scanner struct {
	fs    fsops.FS
	cache map[string]FileSet
}

// NewScanner creates a Scanner reading through the given filesystem.
func NewScanner(filesystem fsops.FS) *Scanner {
	return &Scanner{
		fs:    filesystem,
		cache: make(map[string]FileSet),
	}
}

// Scan returns the FileSet of the directory at dir. Symlinks and other
// non-regular entries are excluded. Returns an error if the directory does
// not exist or cannot be listed.
func (s *Scanner) Scan(dir string) (FileSet, error) {
	key := filepath.Clean(dir)
	if cached, ok := s.cache[key]; ok {
		return cached, nil
	}

	set := make(FileSet)
	err := s.fs.WalkDir(key, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(key, path)
		if err != nil {
			return fmt.Errorf("failed to relativize %s: %w", path, err)
		}
		set[filepath.ToSlash(rel)] = struct{}{}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cannot scan data path %s: %w", dir, err)
	}

	s.cache[key] = set
	return set, nil
}

// Package config reads the OpenMW load-order configuration.
//
// The engine config (openmw.cfg) is a line-oriented file in which each
// data=<path> directive registers a directory of game content. Directive order
// is the load order: later data paths win when two paths provide a file at the
// same relative location. Everything else in the file (comments, content=
// lines, settings) is irrelevant here and skipped.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// dataDirective is the config key that registers a data path.
const dataDirective = "data="

// ErrNoDataPaths indicates the config file contained no data path directives.
var ErrNoDataPaths = errors.New("no data paths found")

// DataPath is one data= entry from the config, in load-order position.
// Position is 1-based; a higher position wins overrides.
type DataPath struct {
	// Position is the 1-based position in the load order.
	Position int `json:"position"`

	// Dir is the directory the entry points at, unquoted.
	Dir string `json:"dir"`
}

// LoadOrder is the ordered sequence of data paths as declared in the config.
// Duplicate directories are kept as-is; order is everything.
type LoadOrder []DataPath

// IndexOf returns the load-order position of the first entry whose directory
// matches dir (after cleaning both), or 0 if no entry matches.
func (lo LoadOrder) IndexOf(dir string) int {
	cleaned := filepath.Clean(dir)
	for _, dp := range lo {
		if filepath.Clean(dp.Dir) == cleaned {
			return dp.Position
		}
	}
	return 0
}

// Contains reports whether dir appears anywhere in the load order.
func (lo LoadOrder) Contains(dir string) bool {
	return lo.IndexOf(dir) != 0
}

// Parse reads the config file at path and returns its load order.
// Returns a wrapped os.ErrNotExist if the file is missing and ErrNoDataPaths
// if no data path directives were recognized.
func Parse(path string) (LoadOrder, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	order, err := ParseReader(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return order, nil
}

// ParseReader parses config content from r. See Parse.
func ParseReader(r io.Reader) (LoadOrder, error) {
	var order LoadOrder

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, dataDirective) {
			continue
		}
		// The base game's "Data Files" entry is engine content, not a mod.
		if strings.Contains(strings.ToLower(line), "data files") {
			continue
		}

		dir := unquote(strings.TrimSpace(line[len(dataDirective):]))
		if dir == "" {
			continue
		}

		order = append(order, DataPath{
			Position: len(order) + 1,
			Dir:      dir,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if len(order) == 0 {
		return nil, ErrNoDataPaths
	}
	return order, nil
}

// unquote strips the surrounding double quotes from a data path value and
// resolves the engine's &-escapes inside quoted values (&& for a literal
// ampersand, &" for a literal quote).
func unquote(value string) string {
	if len(value) < 2 || value[0] != '"' {
		return value
	}

	var b strings.Builder
	escaped := false
	for _, r := range value[1:] {
		if escaped {
			b.WriteRune(r)
			escaped = false
			continue
		}
		switch r {
		case '&':
			escaped = true
		case '"':
			return b.String()
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DefaultPath returns the default location of openmw.cfg for the current
// user, following the engine's per-platform config directory. The
// MODCHECK_CONFIG environment variable overrides it.
func DefaultPath() (string, error) {
	if path := os.Getenv("MODCHECK_CONFIG"); path != "" {
		return path, nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "openmw", "openmw.cfg"), nil
}

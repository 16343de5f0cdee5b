package analyze

import (
	"time"

	"github.com/openmw-tools/modcheck/internal/config"
)

// CheckRequest represents a request to check mods for overrides.
type CheckRequest struct {
	// ConfigPath is the path to the load-order config file.
	ConfigPath string

	// BaseModDir is the central directory containing all mod subdirectories.
	BaseModDir string

	// ModDirName restricts the check to a single mod's subdirectory name.
	// Empty means all-mods mode.
	ModDirName string

	// CompareContent additionally hashes overridden files and marks overrides
	// whose winning file is byte-identical.
	CompareContent bool
}

// FileStatus is the override outcome for one file of a checked mod.
type FileStatus struct {
	// Path is the file's relative path within the mod, slash-separated.
	Path string `json:"path"`

	// Overridden indicates a later data path provides the same relative path.
	Overridden bool `json:"overridden"`

	// WinnerDir is the data path of the final provider (empty if not overridden).
	WinnerDir string `json:"winner_dir,omitempty"`

	// WinnerPosition is the load-order position of the final provider.
	WinnerPosition int `json:"winner_position,omitempty"`

	// Identical indicates the winning file has byte-identical content.
	// Only set when content comparison was requested.
	Identical bool `json:"identical,omitempty"`
}

// ModReport is the override analysis result for one mod.
type ModReport struct {
	// Mod is the mod's directory name under the base mod directory.
	Mod string `json:"mod"`

	// DataPath is the mod's resolved data path.
	DataPath string `json:"data_path"`

	// Position is the mod's load-order position (first occurrence).
	Position int `json:"position"`

	// Files lists every file of the mod with its override status, in
	// lexical order.
	Files []FileStatus `json:"files"`

	// Remaining counts the files no later data path overrides.
	Remaining int `json:"remaining"`

	// TotallyOverridden indicates every file of the mod is overridden.
	TotallyOverridden bool `json:"totally_overridden"`

	// OverriddenBy lists the later data paths that override at least one
	// file of this mod, in load order.
	OverriddenBy []string `json:"overridden_by,omitempty"`
}

// CheckResult represents the outcome of a check run.
type CheckResult struct {
	// ConfigPath is the config file the load order was read from.
	ConfigPath string `json:"config_path"`

	// LoadOrder is the parsed load order.
	LoadOrder config.LoadOrder `json:"load_order"`

	// Reports holds one report per checked mod, in discovery order.
	Reports []ModReport `json:"reports"`

	// Warnings lists non-fatal problems hit during the run, such as a later
	// data path that could not be scanned.
	Warnings []string `json:"warnings,omitempty"`

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration `json:"elapsed"`
}

// Package analyze determines which files of a mod are overridden by data
// paths loaded after it.
//
// The analyzer is the orchestration layer between the CLI and the lower-level
// pieces: it parses the load order, scans data path file trees, and applies
// the engine's resolution rule — when two data paths provide a file at the
// same relative path, the one loaded later wins.
package analyze

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/openmw-tools/modcheck/internal/clock"
	"github.com/openmw-tools/modcheck/internal/config"
	"github.com/openmw-tools/modcheck/internal/fsops"
	"github.com/openmw-tools/modcheck/internal/hash"
	"github.com/openmw-tools/modcheck/internal/scan"
)

// Analyzer runs override checks. It is the main API surface called by the CLI.
type Analyzer struct {
	fs     fsops.FS
	hasher hash.Hasher
	clock  clock.Clock
}

// New creates a new Analyzer with the given dependencies.
func New(filesystem fsops.FS, hasher hash.Hasher, clk clock.Clock) *Analyzer {
	return &Analyzer{
		fs:     filesystem,
		hasher: hasher,
		clock:  clk,
	}
}

// Check runs an override check. With ModDirName set it checks that single
// mod; otherwise it checks every directory under the base mod directory that
// appears in the load order.
//
// A later data path that cannot be scanned is reported as a warning and
// treated as providing no files, so one bad entry does not abort the run.
// The target mod's own directory being unreadable is fatal.
func (a *Analyzer) Check(ctx context.Context, req *CheckRequest) (*CheckResult, error) {
	start := a.clock.Now()

	order, err := config.Parse(req.ConfigPath)
	if err != nil {
		return nil, err
	}

	base := filepath.Clean(req.BaseModDir)
	info, err := a.fs.Stat(base)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", req.BaseModDir, ErrBaseDirNotFound)
	}

	result := &CheckResult{
		ConfigPath: req.ConfigPath,
		LoadOrder:  order,
	}
	scanner := scan.NewScanner(a.fs)

	if req.ModDirName != "" {
		if err := a.fs.ValidateIdentifier(req.ModDirName); err != nil {
			return nil, err
		}
		report, err := a.checkMod(req.ModDirName, base, order, scanner, req.CompareContent, result)
		if err != nil {
			return nil, err
		}
		result.Reports = append(result.Reports, *report)
	} else {
		entries, err := a.fs.ReadDir(base)
		if err != nil {
			return nil, fmt.Errorf("failed to list base mod directory: %w", err)
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			// Directories not in the load order are not loaded by the
			// engine, so there is nothing to report for them.
			if !order.Contains(filepath.Join(base, entry.Name())) {
				continue
			}
			report, err := a.checkMod(entry.Name(), base, order, scanner, req.CompareContent, result)
			if err != nil {
				return nil, err
			}
			result.Reports = append(result.Reports, *report)
		}
	}

	result.Elapsed = a.clock.Now().Sub(start)
	return result, nil
}

// laterEntry pairs a data path loaded after the target with its file set.
type laterEntry struct {
	dp  config.DataPath
	set scan.FileSet
}

// checkMod analyzes a single mod against every data path loaded after it.
// Non-fatal scan failures are appended to result.Warnings.
func (a *Analyzer) checkMod(mod, base string, order config.LoadOrder, scanner *scan.Scanner, compareContent bool, result *CheckResult) (*ModReport, error) {
	target := filepath.Join(base, mod)
	info, err := a.fs.Stat(target)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", target, ErrModDirNotFound)
	}

	position := order.IndexOf(target)
	if position == 0 {
		return nil, fmt.Errorf("mod %q is not in the load order: %w", mod, ErrModDirNotFound)
	}

	files, err := scanner.Scan(target)
	if err != nil {
		return nil, err
	}

	targetClean := filepath.Clean(target)
	var laters []laterEntry
	for _, dp := range order {
		if dp.Position <= position {
			continue
		}
		// A duplicate entry for the target itself cannot override it.
		if filepath.Clean(dp.Dir) == targetClean {
			continue
		}
		set, err := scanner.Scan(dp.Dir)
		if err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("skipping data path #%d: %v", dp.Position, err))
			continue
		}
		laters = append(laters, laterEntry{dp: dp, set: set})
	}

	report := &ModReport{
		Mod:      mod,
		DataPath: target,
		Position: position,
	}

	for _, rel := range files.Sorted() {
		status := FileStatus{Path: rel}
		for _, later := range laters {
			if later.set.Contains(rel) {
				// Last provider in load order wins.
				status.Overridden = true
				status.WinnerDir = later.dp.Dir
				status.WinnerPosition = later.dp.Position
			}
		}
		if status.Overridden {
			if compareContent {
				status.Identical = a.sameContent(target, status.WinnerDir, rel, result)
			}
		} else {
			report.Remaining++
		}
		report.Files = append(report.Files, status)
	}
	report.TotallyOverridden = len(report.Files) > 0 && report.Remaining == 0

	for _, later := range laters {
		for rel := range files {
			if later.set.Contains(rel) {
				report.OverriddenBy = append(report.OverriddenBy, later.dp.Dir)
				break
			}
		}
	}

	return report, nil
}

// sameContent reports whether the target's file and the winner's file have
// identical content. Hash failures become warnings, never fatal errors.
func (a *Analyzer) sameContent(targetDir, winnerDir, rel string, result *CheckResult) bool {
	relNative := filepath.FromSlash(rel)

	targetHash, err := a.hasher.HashFile(filepath.Join(targetDir, relNative))
	if err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("cannot hash %s in %s: %v", rel, targetDir, err))
		return false
	}
	winnerHash, err := a.hasher.HashFile(filepath.Join(winnerDir, relNative))
	if err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("cannot hash %s in %s: %v", rel, winnerDir, err))
		return false
	}
	return targetHash == winnerHash
}

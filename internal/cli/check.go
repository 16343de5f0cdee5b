package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/openmw-tools/modcheck/internal/analyze"
)

var (
	checkBaseModDir string
	checkConfigFile string
	checkModDir     string
	checkIdentical  bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check mods for load-order overrides",
	Long: `Scan mod directories to determine whether a mod's files are overridden by
data paths later in the load order. Checks all found mods by default; use
--mod-dir-name to check a single one.

A later data path that cannot be read is skipped with a warning and treated
as providing no files.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configFile, err := resolveConfigFile(checkConfigFile)
		if err != nil {
			return err
		}

		ctx := context.Background()
		req := &analyze.CheckRequest{
			ConfigPath:     configFile,
			BaseModDir:     checkBaseModDir,
			ModDirName:     checkModDir,
			CompareContent: checkIdentical,
		}

		result, err := newAnalyzer().Check(ctx, req)
		if err != nil {
			return err
		}

		for _, warning := range result.Warnings {
			PrintWarning(warning)
		}

		if jsonOutput {
			return outputJSON(result)
		}

		formatCheckOutput(result)
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVarP(&checkBaseModDir, "base-mod-dir", "D", "", "Base directory containing all mod subdirectories (required)")
	checkCmd.Flags().StringVarP(&checkConfigFile, "config-file", "f", "", "Path to openmw.cfg (default: the user's standard config location)")
	checkCmd.Flags().StringVarP(&checkModDir, "mod-dir-name", "m", "", "Directory name of a single mod to check")
	checkCmd.Flags().BoolVar(&checkIdentical, "identical", false, "Mark overrides whose winning file is byte-identical")
	_ = checkCmd.MarkFlagRequired("base-mod-dir")
}

// formatCheckOutput formats the check result for display.
func formatCheckOutput(result *analyze.CheckResult) {
	if verbose {
		PrintInfo(fmt.Sprintf("Load order: %s from %s",
			PrintCount(len(result.LoadOrder), "data path", "data paths"), result.ConfigPath))
	}

	if len(result.Reports) == 0 {
		PrintEmptyState("no mods from the load order found under the base mod directory")
		return
	}

	for i := range result.Reports {
		formatModReport(&result.Reports[i])
	}

	if verbose {
		PrintInfo(fmt.Sprintf("\nScan took %s", result.Elapsed.Round(time.Millisecond)))
	}
}

// formatModReport prints one mod's file-by-file override report.
func formatModReport(report *analyze.ModReport) {
	PrintSection(fmt.Sprintf("%s  (load order #%d)", report.Mod, report.Position))

	if len(report.Files) == 0 {
		PrintEmptyState("mod has no files")
		return
	}

	width := 0
	for _, f := range report.Files {
		if len(f.Path) > width {
			width = len(f.Path)
		}
	}

	for _, f := range report.Files {
		fmt.Printf("  %-*s  ", width, f.Path)
		if f.Overridden {
			note := fmt.Sprintf("overridden by %s", f.WinnerDir)
			if f.Identical {
				note += " (identical)"
			}
			_, _ = dimColor.Println(note)
		} else {
			_, _ = successColor.Println("remaining")
		}
	}

	if report.TotallyOverridden {
		PrintWarning(fmt.Sprintf("mod %q is totally overridden by: %s",
			report.Mod, strings.Join(report.OverriddenBy, ", ")))
		PrintInfo(fmt.Sprintf("  0 of %s remaining", PrintCount(len(report.Files), "file", "files")))
		return
	}
	PrintSuccess(fmt.Sprintf("%d of %s remaining",
		report.Remaining, PrintCount(len(report.Files), "file", "files")))
}

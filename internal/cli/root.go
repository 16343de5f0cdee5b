package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	jsonOutput bool
	verbose    bool
)

// rootCmd is the root command for modcheck.
var rootCmd = &cobra.Command{
	Use:     "modcheck",
	Version: "dev",
	Short:   "Load-order override checker for OpenMW mods",
	Long: `modcheck inspects an OpenMW load order and a central mod directory to report
which files of a mod are overridden (shadowed) by data paths loaded later,
and which files actually take effect in game.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print scan detail and timing")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the modcheck version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(os.Stdout, rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(pathsCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

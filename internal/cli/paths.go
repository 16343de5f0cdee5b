package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openmw-tools/modcheck/internal/config"
)

var pathsConfigFile string

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Print the parsed load order",
	Long:  `Display the data paths declared in the config file, in load order.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configFile, err := resolveConfigFile(pathsConfigFile)
		if err != nil {
			return err
		}

		order, err := config.Parse(configFile)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(order)
		}

		for _, dp := range order {
			fmt.Printf("#%d\t%s\n", dp.Position, dp.Dir)
		}
		return nil
	},
}

func init() {
	pathsCmd.Flags().StringVarP(&pathsConfigFile, "config-file", "f", "", "Path to openmw.cfg (default: the user's standard config location)")
}

// cmd/benchit/config_init.go
package benchit

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwiater/benchit/benchmark"
	"github.com/mwiater/benchit/config"
)

var initForce bool

// configInitCmd implements 'config init', which writes the default settings
// to a new file.
var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default settings to a file",
	Long:  `The 'init' subcommand writes the default settings to path (benchit.yaml by default). The format follows the file extension. Existing files are kept unless --force is given.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "benchit.yaml"
		if len(args) == 1 {
			path = args[0]
		}
		if err := config.Write(path, benchmark.DefaultSettings(), initForce); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing file")
}

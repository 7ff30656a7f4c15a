// cmd/benchit/harness.go
package benchit

import (
	"github.com/spf13/cobra"
)

// harnessCmd groups the commands that repeat complete measurements.
var harnessCmd = &cobra.Command{
	Use:   "harness",
	Short: "Group commands for repeated measurement suites",
	Long:  `The 'harness' command groups subcommands that measure workloads several times and summarize the spread of the results. It performs no action on its own.`,
}

func init() {
	rootCmd.AddCommand(harnessCmd)
}

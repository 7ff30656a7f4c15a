// cmd/benchit/list_workloads.go
package benchit

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwiater/benchit/workloads"
)

// listWorkloadsCmd implements 'list workloads', which prints every workload
// that 'run' and 'tui' can measure.
var listWorkloadsCmd = &cobra.Command{
	Use:   "workloads",
	Short: "List the workloads that can be measured",
	Long:  `The 'workloads' subcommand lists every built-in workload with a short description.`,
	Run: func(cmd *cobra.Command, args []string) {
		all := workloads.All()
		rows := make([]commandInfo, len(all))
		for i, w := range all {
			rows[i] = commandInfo{path: w.Name, description: w.Description}
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Workloads:")
		printColumns(cmd.OutOrStdout(), rows)
	},
}

func init() {
	listCmd.AddCommand(listWorkloadsCmd)
}

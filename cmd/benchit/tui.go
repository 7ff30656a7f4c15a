// cmd/benchit/tui.go
package benchit

import (
	"github.com/spf13/cobra"

	"github.com/mwiater/benchit/cli"
)

var startGUI = cli.StartGUI

var tuiSettings settingsFlags

// tuiCmd represents the 'tui' command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Pick and measure workloads interactively",
	Long:  `The 'tui' command starts a terminal UI that lists the workloads, measures the selected one and shows the results of the session. Engine diagnostics are written to debug.log.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := tuiSettings.resolve(cmd)
		if err != nil {
			return err
		}
		params, err := tuiSettings.params()
		if err != nil {
			return err
		}
		return startGUI(cli.Options{Settings: settings, Params: params})
	},
}

// init adds the tui command to the root command.
func init() {
	rootCmd.AddCommand(tuiCmd)
	tuiSettings.register(tuiCmd)
}

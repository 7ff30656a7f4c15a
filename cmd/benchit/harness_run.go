// cmd/benchit/harness_run.go
package benchit

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/mwiater/benchit/harness"
)

var (
	harnessSettings settingsFlags
	harnessTrials   int
	harnessJSON     bool
)

// harnessRunCmd implements 'harness run', which measures every workload
// --trials times and reports percentiles of the averages.
var harnessRunCmd = &cobra.Command{
	Use:   "run [workload...]",
	Short: "Measure workloads several times and summarize the averages",
	Long: `The 'run' subcommand performs --trials complete measurements per workload, each on
a fresh instance, and prints the p50, p95, mean and standard deviation of the
averages. Without arguments it measures sort, sqrt and sleep.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := harnessSettings.resolve(cmd)
		if err != nil {
			return err
		}
		params, err := harnessSettings.params()
		if err != nil {
			return err
		}
		names := args
		if len(names) == 0 {
			names = defaultWorkloads
		}

		res, err := harness.RunSuite(cmd.Context(), harness.SuiteConfig{
			Workloads: names,
			Trials:    harnessTrials,
			Settings:  settings,
			Params:    params,
		}, newLogger(cmd.ErrOrStderr(), settings.Verbosity))
		if err != nil {
			return err
		}

		if harnessJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}
		return harness.WriteSummary(cmd.OutOrStdout(), res)
	},
}

func init() {
	harnessCmd.AddCommand(harnessRunCmd)
	harnessSettings.register(harnessRunCmd)
	harnessRunCmd.Flags().IntVar(&harnessTrials, "trials", harness.DefaultTrials, "complete measurements per workload")
	harnessRunCmd.Flags().BoolVar(&harnessJSON, "json", false, "print every trial and the summaries as JSON")
}

// cmd/benchit/run.go
package benchit

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwiater/benchit/benchmark"
	"github.com/mwiater/benchit/metrics"
	"github.com/mwiater/benchit/report"
	"github.com/mwiater/benchit/workloads"
)

// defaultWorkloads are measured when run is called without arguments. The
// sequence workload is left out because it fails by design once its script
// runs out.
var defaultWorkloads = []string{"sort", "sqrt", "sleep"}

var (
	runSettings     settingsFlags
	runJSON         bool
	metricsTextfile string
)

// runCmd implements 'run', which measures one or more workloads and prints
// the results as a table or as JSON.
var runCmd = &cobra.Command{
	Use:   "run [workload...]",
	Short: "Measure workloads and report the results",
	Long: `The 'run' command measures each named workload with the loaded settings and
prints one row per workload. Without arguments it measures sort, sqrt and sleep.
A failing workload aborts the run with its error.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		names := args
		if len(names) == 0 {
			names = defaultWorkloads
		}
		// Resolve every name before spending time on measurements.
		selected := make([]workloads.Workload, 0, len(names))
		for _, name := range names {
			w, err := workloads.Lookup(name)
			if err != nil {
				return err
			}
			selected = append(selected, w)
		}

		settings, err := runSettings.resolve(cmd)
		if err != nil {
			return err
		}
		params, err := runSettings.params()
		if err != nil {
			return err
		}
		logger := newLogger(cmd.ErrOrStderr(), settings.Verbosity)
		m := metrics.New()

		entries := make([]report.Entry, 0, len(selected))
		for _, w := range selected {
			inst := w.Instantiate(params)
			b := benchmark.New(settings, benchmark.WithLogger(logger.With("workload", w.Name)))
			res, err := b.Measure(inst.Action, inst.Init)
			if err != nil {
				return fmt.Errorf("%s: %w", w.Name, err)
			}
			if err := inst.Check(); err != nil {
				return err
			}
			logger.Debug("measured", "workload", w.Name, "replications", res.NbReplications, "spikes", res.NbSpikes)
			m.Observe(w.Name, res)
			entries = append(entries, report.Entry{Name: w.Name, Settings: settings, Results: res})
		}

		if runJSON {
			err = report.GenerateJSON(cmd.OutOrStdout(), entries)
		} else {
			err = report.Generate(cmd.OutOrStdout(), entries)
		}
		if err != nil {
			return err
		}

		if metricsTextfile != "" {
			if err := m.WriteTextfile(metricsTextfile); err != nil {
				return fmt.Errorf("write metrics: %w", err)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runSettings.register(runCmd)
	runCmd.Flags().BoolVar(&runJSON, "json", false, "print the results as JSON")
	runCmd.Flags().StringVar(&metricsTextfile, "metrics-textfile", "", "also write the results as Prometheus metrics to this file")
}

package benchit

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/benchit/benchmark"
	"github.com/mwiater/benchit/config"
	"github.com/mwiater/benchit/timefmt"
	"github.com/mwiater/benchit/workloads"
)

// settingsFlags override single settings of the loaded configuration.
type settingsFlags struct {
	minReplications      int
	maxReplications      int
	minExecutionTime     string
	spikeDetection       bool
	spikeDetectionFactor float64
	warmUpRuns           int

	size  int
	pause string
	seed  uint64
}

func (f *settingsFlags) register(cmd *cobra.Command) {
	def := benchmark.DefaultSettings()
	fs := cmd.Flags()
	fs.IntVar(&f.minReplications, "min-replications", def.MinReplications, "minimum number of timed samples")
	fs.IntVar(&f.maxReplications, "max-replications", def.MaxReplications, "maximum number of timed samples and spike reruns")
	fs.StringVar(&f.minExecutionTime, "min-execution-time", timefmt.Format(def.MinExecutionTime), "minimum accumulated measurement time (HH:MM:SS.fff or 1s)")
	fs.BoolVar(&f.spikeDetection, "spike-detection", def.SpikeDetection, "rerun the slowest sample while it is a spike")
	fs.Float64Var(&f.spikeDetectionFactor, "spike-detection-factor", def.SpikeDetectionFactor, "relative distance above the fastest sample that counts as a spike")
	fs.IntVar(&f.warmUpRuns, "warm-up-runs", def.WarmUpRuns, "untimed runs before measuring")

	fs.IntVar(&f.size, "size", workloads.DefaultSize, "number of elements sorted by the sort workload")
	fs.StringVar(&f.pause, "pause", timefmt.Format(workloads.DefaultPause), "pause of the sleep and sqrt workloads")
	fs.Uint64Var(&f.seed, "seed", 0, "seed of the random input of sort (0 picks one)")
}

// resolve loads the configuration file and applies the flags the user set.
func (f *settingsFlags) resolve(cmd *cobra.Command) (benchmark.Settings, error) {
	s, err := config.Load(viper.GetString("config"))
	if err != nil {
		return benchmark.Settings{}, err
	}

	fs := cmd.Flags()
	if fs.Changed("min-replications") {
		s.MinReplications = f.minReplications
	}
	if fs.Changed("max-replications") {
		s.MaxReplications = f.maxReplications
	}
	if fs.Changed("min-execution-time") {
		d, err := timefmt.ParseLenient(f.minExecutionTime)
		if err != nil {
			return benchmark.Settings{}, fmt.Errorf("--min-execution-time: %w", err)
		}
		s.MinExecutionTime = d
	}
	if fs.Changed("spike-detection") {
		s.SpikeDetection = f.spikeDetection
	}
	if fs.Changed("spike-detection-factor") {
		s.SpikeDetectionFactor = f.spikeDetectionFactor
	}
	if fs.Changed("warm-up-runs") {
		s.WarmUpRuns = f.warmUpRuns
	}
	if verbose > 0 {
		s.Verbosity = verbose
	}

	if err := config.Validate(s); err != nil {
		return benchmark.Settings{}, err
	}
	if s.Verbosity >= 2 {
		pp.Fprintln(cmd.ErrOrStderr(), s)
	}
	return s, nil
}

func (f *settingsFlags) params() (workloads.Params, error) {
	pause, err := timefmt.ParseLenient(f.pause)
	if err != nil {
		return workloads.Params{}, fmt.Errorf("--pause: %w", err)
	}
	return workloads.Params{Size: f.size, Pause: pause, Seed: f.seed}, nil
}

// newLogger returns the text logger used for engine diagnostics. Debug
// records are enabled from verbosity 2 on.
func newLogger(w io.Writer, verbosity int) *slog.Logger {
	level := slog.LevelInfo
	if verbosity >= 2 {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

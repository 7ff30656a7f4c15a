// harness/runner.go
// Package: harness
package harness

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mwiater/benchit/benchmark"
	"github.com/mwiater/benchit/timefmt"
	"github.com/mwiater/benchit/workloads"
)

// DefaultTrials is used when SuiteConfig.Trials is not positive.
const DefaultTrials = 5

// RunSuite is the single exported entrypoint.
// Provide a fully-populated SuiteConfig, and it returns detailed results.
// The context is checked between trials; a failing trial aborts the suite.
func RunSuite(ctx context.Context, cfg SuiteConfig, logger *slog.Logger) (SuiteResult, error) {
	if len(cfg.Workloads) == 0 {
		return SuiteResult{}, errors.New("at least one workload is required")
	}
	if cfg.Trials <= 0 {
		cfg.Trials = DefaultTrials
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	selected := make([]workloads.Workload, 0, len(cfg.Workloads))
	for _, name := range cfg.Workloads {
		w, err := workloads.Lookup(name)
		if err != nil {
			return SuiteResult{}, err
		}
		selected = append(selected, w)
	}

	var all []TrialResult
	for _, w := range selected {
		wl := logger.With("workload", w.Name)
		for i := 0; i < cfg.Trials; i++ {
			if err := ctx.Err(); err != nil {
				return SuiteResult{}, err
			}
			tr, err := runTrial(w, i, cfg, wl)
			if err != nil {
				return SuiteResult{}, fmt.Errorf("%s trial %d: %w", w.Name, i+1, err)
			}
			wl.Debug("trial", "index", i+1, "average", timefmt.Format(tr.Results.AverageTime))
			all = append(all, tr)
		}
	}

	return buildSuiteResult(cfg, all), nil
}

func runTrial(w workloads.Workload, index int, cfg SuiteConfig, logger *slog.Logger) (TrialResult, error) {
	inst := w.Instantiate(cfg.Params)
	res, err := benchmark.New(cfg.Settings, benchmark.WithLogger(logger)).Measure(inst.Action, inst.Init)
	if err != nil {
		return TrialResult{}, err
	}
	if err := inst.Check(); err != nil {
		return TrialResult{}, err
	}
	return newTrialResult(w.Name, index, res), nil
}

func newTrialResult(workload string, index int, res benchmark.Results) TrialResult {
	return TrialResult{
		Workload:     workload,
		Trial:        index + 1,
		Results:      res,
		Average:      timefmt.Duration(res.AverageTime),
		Shortest:     timefmt.Duration(res.ShortestTime),
		Longest:      timefmt.Duration(res.LongestTime),
		Replications: res.NbReplications,
		Spikes:       res.NbSpikes,
	}
}

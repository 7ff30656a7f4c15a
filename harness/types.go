// harness/types.go
// Package: harness
package harness

import (
	"time"

	"github.com/mwiater/benchit/benchmark"
	"github.com/mwiater/benchit/timefmt"
	"github.com/mwiater/benchit/workloads"
)

// SuiteConfig configures the entire run.
type SuiteConfig struct {
	// Workloads to measure, by name.
	Workloads []string `json:"workloads"`

	// Number of complete measurements per workload.
	Trials int `json:"trials"`

	// Settings of every measurement.
	Settings benchmark.Settings `json:"settings"`

	// Params tune the workload instances. A fresh instance is built per trial.
	Params workloads.Params `json:"-"`
}

// TrialResult captures the outcome of one complete measurement.
type TrialResult struct {
	Workload string            `json:"workload"`
	Trial    int               `json:"trial"`
	Results  benchmark.Results `json:"-"`

	Average      timefmt.Duration `json:"average_time"`
	Shortest     timefmt.Duration `json:"shortest_time"`
	Longest      timefmt.Duration `json:"longest_time"`
	Replications int              `json:"nb_replications"`
	Spikes       int              `json:"nb_spikes"`
}

// WorkloadSummary aggregates the trials of one workload.
type WorkloadSummary struct {
	Workload string `json:"workload"`
	Trials   int    `json:"trials"`

	// p50/p95 of the per-trial averages
	AverageP50 timefmt.Duration `json:"average_p50"`
	AverageP95 timefmt.Duration `json:"average_p95"`

	// Mean +/- std of the per-trial averages
	AverageMean timefmt.Duration `json:"average_mean"`
	AverageStd  timefmt.Duration `json:"average_std"`

	// Spikes rerun over all trials
	Spikes int `json:"nb_spikes"`
}

// SuiteResult is the top-level artifact returned by RunSuite.
type SuiteResult struct {
	Config          SuiteConfig       `json:"config"`
	Trials          []TrialResult     `json:"trials"`
	WorkloadReports []WorkloadSummary `json:"workload_reports"`
	GeneratedAt     time.Time         `json:"generated_at"`
}

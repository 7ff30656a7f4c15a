package benchmark

import (
	"errors"
	"fmt"
	"time"
)

// Default values for Settings.
const (
	DefaultMinReplications      = 3
	DefaultMaxReplications      = 100000
	DefaultMinExecutionTime     = time.Second
	DefaultSpikeDetection       = true
	DefaultSpikeDetectionFactor = 0.1
	DefaultWarmUpRuns           = 2
	DefaultVerbosity            = 0
)

// Settings controls how many times an action is repeated and how outliers are
// handled. The zero value is not useful; start from DefaultSettings.
type Settings struct {
	// MinReplications is the minimum number of timed samples. It should not
	// be lower than 3, otherwise spikes are hard to detect.
	MinReplications int `json:"min_replications"`

	// MaxReplications caps the timed samples of the measurement phase and
	// the number of spike reruns.
	MaxReplications int `json:"max_replications"`

	// MinExecutionTime is the minimum accumulated time of the measurement phase.
	MinExecutionTime time.Duration `json:"min_execution_time"`

	// SpikeDetection enables rerunning of outliers.
	SpikeDetection bool `json:"spike_detection"`

	// SpikeDetectionFactor is the relative distance above the fastest sample
	// at which the slowest sample counts as a spike.
	SpikeDetectionFactor float64 `json:"spike_detection_factor"`

	// WarmUpRuns are executed before measuring and then discarded.
	WarmUpRuns int `json:"warm_up_runs"`

	// Verbosity 1 or higher logs every sample.
	Verbosity int `json:"verbosity"`
}

// DefaultSettings returns the settings used when nothing else is configured.
func DefaultSettings() Settings {
	return Settings{
		MinReplications:      DefaultMinReplications,
		MaxReplications:      DefaultMaxReplications,
		MinExecutionTime:     DefaultMinExecutionTime,
		SpikeDetection:       DefaultSpikeDetection,
		SpikeDetectionFactor: DefaultSpikeDetectionFactor,
		WarmUpRuns:           DefaultWarmUpRuns,
		Verbosity:            DefaultVerbosity,
	}
}

// Validate reports every field that holds an unusable value.
func (s Settings) Validate() error {
	var errs []error
	if s.MinReplications < 0 {
		errs = append(errs, fmt.Errorf("min_replications must not be negative, got: %d", s.MinReplications))
	}
	if s.MaxReplications < 0 {
		errs = append(errs, fmt.Errorf("max_replications must not be negative, got: %d", s.MaxReplications))
	}
	if s.MinExecutionTime < 0 {
		errs = append(errs, fmt.Errorf("min_execution_time must not be negative, got: %v", s.MinExecutionTime))
	}
	if s.SpikeDetectionFactor < 0 {
		errs = append(errs, fmt.Errorf("spike_detection_factor must not be negative, got: %g", s.SpikeDetectionFactor))
	}
	if s.WarmUpRuns < 0 {
		errs = append(errs, fmt.Errorf("warm_up_runs must not be negative, got: %d", s.WarmUpRuns))
	}
	if s.Verbosity < 0 {
		errs = append(errs, fmt.Errorf("verbosity must not be negative, got: %d", s.Verbosity))
	}
	return errors.Join(errs...)
}

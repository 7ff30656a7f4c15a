// Package benchmark measures the execution time of a function by repeating
// it until the average is stable.
//
// Fast functions are repeated until MinExecutionTime has accumulated, slow
// ones at least MinReplications times. The accumulated time is divided by the
// number of repetitions. With spike detection enabled, the slowest sample is
// replaced by a fresh run for as long as it lies more than
// SpikeDetectionFactor above the fastest sample.
package benchmark

import (
	"log/slog"
	"time"

	"github.com/mwiater/benchit/timefmt"
)

// Action is a unit of work whose execution time is measured. A non-nil error
// aborts the measurement.
type Action func() error

// Func adapts a function that cannot fail to an Action.
func Func(fn func()) Action {
	if fn == nil {
		return nil
	}
	return func() error {
		fn()
		return nil
	}
}

func noop() error { return nil }

// Option customizes a Benchmark.
type Option func(*Benchmark)

// WithLogger sets the logger used for per-sample diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Benchmark) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithClock replaces the system clock, mainly for tests.
func WithClock(clock Clock) Option {
	return func(b *Benchmark) {
		if clock != nil {
			b.clock = clock
		}
	}
}

// Benchmark runs measurements with a fixed set of Settings. A Benchmark must
// not be used by several goroutines at once.
type Benchmark struct {
	settings Settings
	clock    Clock
	logger   *slog.Logger
}

// New returns a Benchmark for the given settings.
func New(settings Settings, opts ...Option) *Benchmark {
	b := &Benchmark{
		settings: settings,
		clock:    systemClock{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Settings returns a copy of the settings in use.
func (b *Benchmark) Settings() Settings { return b.settings }

// MeasureFunc is Measure for functions that cannot fail.
func (b *Benchmark) MeasureFunc(action, init func()) (Results, error) {
	return b.Measure(Func(action), Func(init))
}

// Measure determines the average execution time of action. init, if not nil,
// runs before every execution of action (warm-up runs included) and is not
// timed. It typically restores state that action consumes.
//
// Spike reruns share the MaxReplications budget with the measurement phase.
// Once the measurement phase has used it up no rerun happens, so the result
// may still contain a spike while NbSpikes is 0.
//
// The first error returned by action or init ends the measurement, and that
// error is returned unchanged.
func (b *Benchmark) Measure(action, init Action) (Results, error) {
	if init == nil {
		init = noop
	}
	s := b.settings

	for i := range s.WarmUpRuns {
		d, err := b.sample(action, init)
		if err != nil {
			return Results{}, err
		}
		b.logSample("warm-up", i+1, d)
	}

	var (
		res   Results
		total time.Duration
		times samples
	)
	for {
		d, err := b.sample(action, init)
		if err != nil {
			return Results{}, err
		}
		res.NbReplications++
		b.logSample("measure", res.NbReplications, d)
		times.insert(d)
		total += d

		if !((total < s.MinExecutionTime || res.NbReplications < s.MinReplications) &&
			res.NbReplications <= s.MaxReplications) {
			break
		}
	}

	if s.SpikeDetection {
		limit := 1 + s.SpikeDetectionFactor
		// Reruns share the MaxReplications ceiling with the measurement phase.
		for float64(times.max()) > float64(times.min())*limit &&
			res.NbReplications+res.NbSpikes <= s.MaxReplications {
			res.NbSpikes++
			d, err := b.sample(action, init)
			if err != nil {
				return Results{}, err
			}
			b.logSample("rerun", res.NbSpikes, d)
			total -= times.popMax()
			times.insert(d)
			total += d
		}
	}

	res.AverageTime = total / time.Duration(times.len())
	res.ShortestTime = times.min()
	res.LongestTime = times.max()
	return res, nil
}

func (b *Benchmark) sample(action, init Action) (time.Duration, error) {
	if err := init(); err != nil {
		return 0, err
	}
	return b.measureOnce(action)
}

func (b *Benchmark) logSample(phase string, index int, d time.Duration) {
	if b.settings.Verbosity < 1 {
		return
	}
	b.logger.Info("sample",
		slog.String("phase", phase),
		slog.Int("index", index),
		slog.String("elapsed", timefmt.Format(d)),
	)
}

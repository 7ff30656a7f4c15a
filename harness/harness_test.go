package harness

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwiater/benchit/benchmark"
	"github.com/mwiater/benchit/workloads"
)

func quickConfig(names ...string) SuiteConfig {
	s := benchmark.DefaultSettings()
	s.MinExecutionTime = 0
	s.WarmUpRuns = 0
	s.SpikeDetection = false
	return SuiteConfig{
		Workloads: names,
		Trials:    3,
		Settings:  s,
		Params:    workloads.Params{Pause: time.Microsecond, Size: 100},
	}
}

func TestQuantile(t *testing.T) {
	ds := []time.Duration{40, 10, 30, 20}
	assert.Equal(t, time.Duration(10), quantile(ds, 0))
	assert.Equal(t, time.Duration(40), quantile(ds, 1))
	assert.Equal(t, time.Duration(25), quantile(ds, 0.5))
	assert.Equal(t, time.Duration(33), quantile(ds, 0.75)) // 30 + 10*0.25, rounded
	assert.Equal(t, []time.Duration{40, 10, 30, 20}, ds, "input must not be reordered")
	assert.Zero(t, quantile(nil, 0.5))
}

func TestMeanStd(t *testing.T) {
	mean, std := meanStd([]time.Duration{2, 4, 4, 4, 5, 5, 7, 9})
	assert.Equal(t, time.Duration(5), mean)
	assert.Equal(t, time.Duration(2), std)

	mean, std = meanStd(nil)
	assert.Zero(t, mean)
	assert.Zero(t, std)
}

func TestSummarize(t *testing.T) {
	trials := []TrialResult{
		newTrialResult("b", 0, benchmark.Results{AverageTime: 100, NbSpikes: 1}),
		newTrialResult("a", 0, benchmark.Results{AverageTime: 10}),
		newTrialResult("b", 1, benchmark.Results{AverageTime: 300, NbSpikes: 2}),
	}
	got := summarize(trials)
	require.Len(t, got, 2)

	assert.Equal(t, "b", got[0].Workload, "first seen order")
	assert.Equal(t, 2, got[0].Trials)
	assert.Equal(t, 3, got[0].Spikes)
	assert.Equal(t, time.Duration(200), got[0].AverageP50.Std())
	assert.Equal(t, time.Duration(200), got[0].AverageMean.Std())
	assert.Equal(t, time.Duration(100), got[0].AverageStd.Std())

	assert.Equal(t, "a", got[1].Workload)
	assert.Equal(t, time.Duration(10), got[1].AverageP95.Std())
}

func TestRunSuite(t *testing.T) {
	res, err := RunSuite(context.Background(), quickConfig("sqrt", "sleep"), nil)
	require.NoError(t, err)

	require.Len(t, res.Trials, 6)
	assert.Equal(t, "sqrt", res.Trials[0].Workload)
	assert.Equal(t, 1, res.Trials[0].Trial)
	assert.Equal(t, 3, res.Trials[2].Trial)
	assert.Equal(t, "sleep", res.Trials[3].Workload)
	for _, tr := range res.Trials {
		assert.Equal(t, 3, tr.Replications)
	}

	require.Len(t, res.WorkloadReports, 2)
	assert.Equal(t, 3, res.WorkloadReports[0].Trials)
	assert.False(t, res.GeneratedAt.IsZero())

	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, res))
	assert.Contains(t, buf.String(), "Average p50")
	assert.Contains(t, buf.String(), "sqrt")
}

func TestRunSuite_DefaultTrials(t *testing.T) {
	cfg := quickConfig("sleep")
	cfg.Trials = 0
	res, err := RunSuite(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.Len(t, res.Trials, DefaultTrials)
	assert.Equal(t, DefaultTrials, res.Config.Trials)
}

func TestRunSuite_Errors(t *testing.T) {
	_, err := RunSuite(context.Background(), quickConfig(), nil)
	assert.ErrorContains(t, err, "at least one workload")

	_, err = RunSuite(context.Background(), quickConfig("nope"), nil)
	assert.ErrorContains(t, err, "unknown workload")

	cfg := quickConfig("sequence")
	cfg.Params.Script = []time.Duration{time.Microsecond}
	_, err = RunSuite(context.Background(), cfg, nil)
	assert.ErrorIs(t, err, workloads.ErrScriptExhausted)
	assert.ErrorContains(t, err, "sequence trial 1")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = RunSuite(ctx, quickConfig("sleep"), nil)
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
}

package workloads

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwiater/benchit/benchmark"
)

func quickSettings() benchmark.Settings {
	s := benchmark.DefaultSettings()
	s.MinExecutionTime = 0
	s.WarmUpRuns = 1
	s.SpikeDetection = false
	return s
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		w, err := Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, name, w.Name)
		assert.NotEmpty(t, w.Description)
	}

	_, err := Lookup("nope")
	assert.ErrorContains(t, err, "unknown workload")
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	all[0].Name = "changed"
	assert.NotEqual(t, "changed", All()[0].Name)
}

func TestSortIsRestoredBeforeEveryRun(t *testing.T) {
	w, err := Lookup("sort")
	require.NoError(t, err)
	inst := w.Instantiate(Params{Size: 2000, Seed: 42})

	require.NoError(t, inst.Init())
	assert.Error(t, inst.Check(), "fresh random input should not be sorted")

	res, err := benchmark.New(quickSettings()).Measure(inst.Action, inst.Init)
	require.NoError(t, err)
	assert.Equal(t, 3, res.NbReplications)
	assert.NoError(t, inst.Check())
}

func TestSqrt(t *testing.T) {
	w, err := Lookup("sqrt")
	require.NoError(t, err)
	inst := w.Instantiate(Params{Pause: time.Microsecond})

	_, err = benchmark.New(quickSettings()).Measure(inst.Action, inst.Init)
	require.NoError(t, err)
	assert.NoError(t, inst.Check())
}

func TestSleep(t *testing.T) {
	w, err := Lookup("sleep")
	require.NoError(t, err)
	inst := w.Instantiate(Params{Pause: 2 * time.Millisecond})

	res, err := benchmark.New(quickSettings()).Measure(inst.Action, inst.Init)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.ShortestTime, 2*time.Millisecond)
}

func TestSequenceFailsWhenExhausted(t *testing.T) {
	w, err := Lookup("sequence")
	require.NoError(t, err)
	inst := w.Instantiate(Params{Script: []time.Duration{time.Millisecond, time.Millisecond}})

	_, err = benchmark.New(quickSettings()).Measure(inst.Action, inst.Init)
	assert.True(t, errors.Is(err, ErrScriptExhausted), "got %v", err)
}

func TestParamsDefaults(t *testing.T) {
	p := Params{}.withDefaults()
	assert.Equal(t, DefaultSize, p.Size)
	assert.Equal(t, DefaultPause, p.Pause)
	assert.Equal(t, DefaultScript, p.Script)
	assert.NotZero(t, p.Seed)
}

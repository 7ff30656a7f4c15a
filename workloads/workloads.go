// Package workloads provides ready-made actions for trying out the benchmark
// engine from the command line.
package workloads

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"sort"
	"time"

	"github.com/mwiater/benchit/benchmark"
)

// ErrScriptExhausted is returned by the sequence workload once every scripted
// pause has been consumed.
var ErrScriptExhausted = errors.New("end of time list reached")

// Params tunes a workload instance. Zero fields fall back to the defaults
// below.
type Params struct {
	// Size is the number of elements processed by sort.
	Size int
	// Pause is the sleep of the sleep and sqrt workloads.
	Pause time.Duration
	// Script lists the pauses of the sequence workload, one per call.
	Script []time.Duration
	// Seed makes the random input of sort reproducible.
	Seed uint64
}

// Defaults for Params.
const (
	DefaultSize  = 100000
	DefaultPause = 10 * time.Millisecond
)

// DefaultScript is the sequence workload's script when none is given.
var DefaultScript = []time.Duration{
	130 * time.Millisecond,
	120 * time.Millisecond,
	110 * time.Millisecond,
	150 * time.Millisecond,
	100 * time.Millisecond,
	90 * time.Millisecond,
}

func (p Params) withDefaults() Params {
	if p.Size <= 0 {
		p.Size = DefaultSize
	}
	if p.Pause <= 0 {
		p.Pause = DefaultPause
	}
	if len(p.Script) == 0 {
		p.Script = DefaultScript
	}
	if p.Seed == 0 {
		p.Seed = uint64(time.Now().UnixNano())
	}
	return p
}

// Instance is a prepared action with its reset routine. Check verifies the
// state left behind by the last run.
type Instance struct {
	Action benchmark.Action
	Init   benchmark.Action
	Check  func() error
}

// Workload is a named action factory.
type Workload struct {
	Name        string
	Description string
	New         func(Params) Instance
}

var registry = []Workload{
	{
		Name:        "sort",
		Description: "Sorts a slice of random integers, restored before every run",
		New:         newSort,
	},
	{
		Name:        "sqrt",
		Description: "Takes the square root of 9 and pauses",
		New:         newSqrt,
	},
	{
		Name:        "sleep",
		Description: "Sleeps for a fixed pause",
		New:         newSleep,
	},
	{
		Name:        "sequence",
		Description: "Sleeps a scripted list of pauses and fails when it runs out",
		New:         newSequence,
	},
}

// All returns every workload in display order.
func All() []Workload { return slices.Clone(registry) }

// Names returns the names of all workloads.
func Names() []string {
	names := make([]string, len(registry))
	for i, w := range registry {
		names[i] = w.Name
	}
	return names
}

// Lookup finds a workload by name.
func Lookup(name string) (Workload, error) {
	for _, w := range registry {
		if w.Name == name {
			return w, nil
		}
	}
	return Workload{}, fmt.Errorf("unknown workload %q (available: %v)", name, Names())
}

// Instantiate applies the defaults to p and builds an instance of w.
func (w Workload) Instantiate(p Params) Instance {
	return w.New(p.withDefaults())
}

func newSort(p Params) Instance {
	rng := rand.New(rand.NewPCG(p.Seed, p.Seed>>1|1))
	pristine := make([]int, p.Size)
	for i := range pristine {
		pristine[i] = 1 + rng.IntN(100000)
	}
	v := make([]int, p.Size)

	return Instance{
		Action: benchmark.Func(func() { sort.Ints(v) }),
		Init:   benchmark.Func(func() { copy(v, pristine) }),
		Check: func() error {
			if !sort.IntsAreSorted(v) {
				return errors.New("sort: slice is not sorted")
			}
			return nil
		},
	}
}

func newSqrt(p Params) Instance {
	x := 0.0
	return Instance{
		Action: benchmark.Func(func() {
			x = math.Sqrt(x)
			time.Sleep(p.Pause)
		}),
		Init: benchmark.Func(func() { x = 9.0 }),
		Check: func() error {
			if x != 3.0 {
				return fmt.Errorf("sqrt: got %v, want 3", x)
			}
			return nil
		},
	}
}

func newSleep(p Params) Instance {
	return Instance{
		Action: benchmark.Func(func() { time.Sleep(p.Pause) }),
		Check:  func() error { return nil },
	}
}

func newSequence(p Params) Instance {
	next := 0
	return Instance{
		Action: func() error {
			if next == len(p.Script) {
				return ErrScriptExhausted
			}
			time.Sleep(p.Script[next])
			next++
			return nil
		},
		Check: func() error { return nil },
	}
}

// harness/metrics.go
// Package: harness
package harness

import (
	"math"
	"slices"
	"time"
)

// quantile returns the q-quantile (0..1) of ds with linear interpolation
// between the closest ranks. ds is not modified.
func quantile(ds []time.Duration, q float64) time.Duration {
	if len(ds) == 0 {
		return 0
	}
	cp := slices.Clone(ds)
	slices.Sort(cp)
	if q <= 0 {
		return cp[0]
	}
	if q >= 1 {
		return cp[len(cp)-1]
	}
	pos := q * float64(len(cp)-1)
	l := int(math.Floor(pos))
	r := int(math.Ceil(pos))
	if l == r {
		return cp[l]
	}
	frac := pos - float64(l)
	return cp[l] + time.Duration(math.Round(float64(cp[r]-cp[l])*frac))
}

// meanStd returns the mean and the population standard deviation of ds.
func meanStd(ds []time.Duration) (mean, std time.Duration) {
	n := float64(len(ds))
	if n == 0 {
		return 0, 0
	}
	var sum float64
	for _, d := range ds {
		sum += float64(d)
	}
	m := sum / n
	var varsum float64
	for _, d := range ds {
		diff := float64(d) - m
		varsum += diff * diff
	}
	return time.Duration(math.Round(m)), time.Duration(math.Round(math.Sqrt(varsum / n)))
}

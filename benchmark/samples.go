package benchmark

import (
	"slices"
	"time"
)

// samples is an ordered multiset of durations. Equal durations are kept.
type samples struct {
	sorted []time.Duration
}

func (s *samples) insert(d time.Duration) {
	i, _ := slices.BinarySearch(s.sorted, d)
	s.sorted = slices.Insert(s.sorted, i, d)
}

func (s *samples) len() int { return len(s.sorted) }

func (s *samples) min() time.Duration { return s.sorted[0] }

func (s *samples) max() time.Duration { return s.sorted[len(s.sorted)-1] }

// popMax removes and returns the largest sample.
func (s *samples) popMax() time.Duration {
	last := len(s.sorted) - 1
	d := s.sorted[last]
	s.sorted = s.sorted[:last]
	return d
}

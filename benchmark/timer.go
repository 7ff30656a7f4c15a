package benchmark

import "time"

// Clock supplies the instants the timer subtracts. Readings from time.Now
// carry the monotonic clock, so wall clock adjustments do not skew samples.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// measureOnce times exactly one invocation of action. An error or panic from
// the action is passed through as is.
func (b *Benchmark) measureOnce(action Action) (time.Duration, error) {
	start := b.clock.Now()
	if err := action(); err != nil {
		return 0, err
	}
	return b.clock.Now().Sub(start), nil
}

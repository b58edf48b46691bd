package engine

import (
	"math"
	"time"
)

// Clock returns the current instant. time.Now carries a monotonic reading,
// so differences between two samples are immune to wall-clock jumps.
type Clock func() time.Time

// measure samples clock immediately around fn and returns the elapsed time.
// fn's error always wins; ErrClockUnavailable is returned when the span
// cannot be expressed (negative or saturated by time.Time.Sub).
func measure(clock Clock, fn func() error) (time.Duration, error) {
	start := clock()
	err := fn()
	end := clock()
	if err != nil {
		return 0, err
	}

	elapsed := end.Sub(start)
	if elapsed < 0 || elapsed == time.Duration(math.MaxInt64) {
		return 0, ErrClockUnavailable
	}
	return elapsed, nil
}

// Package ticks provides the millisecond clock that paces the game loops.
// Clock values wrap around on the target hardware, so callers must compare
// timestamps with Diff instead of subtracting them directly.
package ticks

import "time"

// Clock returns a monotonic millisecond timestamp.
type Clock interface {
	NowMS() uint32
}

// Diff returns a-b in milliseconds. The signed conversion keeps the result
// correct across a counter wraparound as long as the two timestamps are less
// than ~24 days apart.
func Diff(a, b uint32) int32 {
	return int32(a - b)
}

type systemClock struct {
	start time.Time
}

// System returns a Clock backed by the runtime's monotonic clock.
func System() Clock {
	return &systemClock{start: time.Now()}
}

func (c *systemClock) NowMS() uint32 {
	return uint32(time.Since(c.start).Milliseconds())
}

// Manual is a hand-driven Clock for deterministic tests.
type Manual struct {
	ms uint32
}

func (m *Manual) NowMS() uint32 { return m.ms }

// Advance moves the clock forward by d milliseconds.
func (m *Manual) Advance(d uint32) { m.ms += d }

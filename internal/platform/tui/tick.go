// Package tui drives the Snake game on a raw-mode terminal. It owns the
// terminal adapter, the diff renderer and the cooperative game loop.
package tui

import (
	"time"
)

// Clock supplies monotonic time and sleeping to the game loop.
type Clock interface {
	// NowMs returns milliseconds since an arbitrary fixed point.
	NowMs() uint64
	SleepMs(ms uint32)
}

// SystemClock is a Clock on the process monotonic clock.
type SystemClock struct {
	start time.Time
}

// NewSystemClock creates a clock starting at zero now.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// NowMs returns milliseconds elapsed since the clock was created.
func (c *SystemClock) NowMs() uint64 {
	return uint64(time.Since(c.start).Milliseconds())
}

// SleepMs blocks for the given number of milliseconds.
func (c *SystemClock) SleepMs(ms uint32) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}

package control

import "sync/atomic"

// TimeBase is a free-running tick counter shared between the tick handler and
// one edge-capture channel. It has no upper bound of its own; EdgeCapture
// resets it after every completed measurement, long before a 64-bit counter
// could wrap at any plausible pulse rate.
type TimeBase struct {
	ticks atomic.Uint64
}

// Advance increments the counter by one tick. Called from the tick source.
func (t *TimeBase) Advance() {
	t.ticks.Add(1)
}

// Ticks returns the current count. Safe to call concurrently with Advance.
func (t *TimeBase) Ticks() uint64 {
	return t.ticks.Load()
}

// TakeTicks returns the current count and resets it to zero in one step.
// An Advance racing the swap is absorbed into whichever side wins; the
// measurement error is bounded by one tick.
func (t *TimeBase) TakeTicks() uint64 {
	return t.ticks.Swap(0)
}

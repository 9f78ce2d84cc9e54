package control

import (
	"sync/atomic"

	"github.com/bft-labs/bikeabs/internal/domain"
)

// captureState tracks which transition the channel is armed for.
type captureState uint8

const (
	waitingForRise captureState = iota
	waitingForFall
)

// EdgeCapture measures the width of sensor pulses on one wheel, in ticks of
// the channel's TimeBase. Width is rising edge to the next falling edge of
// the same pulse — high time, not full period.
//
// OnEdge must only ever be called from the wheel's own edge source: the state
// machine fields are unsynchronized by design, relying on the per-source
// non-reentrancy the sink contract guarantees. The published sample crosses
// into the comparator's goroutine and is therefore an atomic pointer to an
// immutable measurement; nil means no fresh measurement since the last
// consumption.
type EdgeCapture struct {
	tb        *TimeBase
	state     captureState
	startMark uint64

	sample atomic.Pointer[domain.PulseWidth]
}

// NewEdgeCapture creates a capture channel over the given time base.
func NewEdgeCapture(tb *TimeBase) *EdgeCapture {
	return &EdgeCapture{tb: tb}
}

// OnEdge handles one sensor transition. level is the logic level reported
// with the event, never an assumption of alternation.
//
// A second rising edge while already armed re-records the start mark. A
// falling edge while disarmed is dropped: with no start mark there is no
// width to derive. Either way a glitch costs at most one measurement and the
// classifier self-corrects on the next valid pair.
func (c *EdgeCapture) OnEdge(level bool) {
	if level {
		c.startMark = c.tb.Ticks()
		c.state = waitingForFall
		return
	}

	if c.state != waitingForFall {
		return
	}

	width := c.tb.TakeTicks() - c.startMark
	c.sample.Store(&domain.PulseWidth{Ticks: width})
	c.state = waitingForRise
}

// HasSample reports whether a fresh, unconsumed measurement is available.
func (c *EdgeCapture) HasSample() bool {
	return c.sample.Load() != nil
}

// TakeSample consumes the pending measurement, resetting the cell so the
// same measurement can never be classified twice. Returns false when no
// fresh measurement is available.
func (c *EdgeCapture) TakeSample() (domain.PulseWidth, bool) {
	p := c.sample.Swap(nil)
	if p == nil {
		return domain.PulseWidth{}, false
	}
	return *p, true
}

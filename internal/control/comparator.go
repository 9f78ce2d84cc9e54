package control

import (
	"sync/atomic"

	"github.com/bft-labs/bikeabs/internal/domain"
)

// Comparator classifies the signed front−rear pulse-width difference against
// the fixed threshold. Its classification is the only state in the core that
// persists across control cycles: whenever either wheel has produced no fresh
// measurement since the last evaluation, the previous decision stands. A
// stationary bike emits no pulses at all, and braking still proceeds using
// the last known relationship between the wheels.
type Comparator struct {
	front *EdgeCapture
	rear  *EdgeCapture

	threshold int64
	class     atomic.Int32
}

// NewComparator creates a comparator over the two capture channels with the
// fixed tick threshold.
func NewComparator(front, rear *EdgeCapture) *Comparator {
	return &Comparator{
		front:     front,
		rear:      rear,
		threshold: domain.DiffThresholdTicks,
	}
}

// Classification returns the currently held classification. Safe from any
// goroutine.
func (c *Comparator) Classification() domain.Classification {
	return domain.Classification(c.class.Load())
}

// Evaluate runs one classification step. It consumes a measurement from each
// wheel only when both are fresh, so a lone measurement waits for its partner
// instead of being thrown away, and a classification is never computed from
// reused data.
//
// Called once per control cycle from the lever handler, and only from there.
func (c *Comparator) Evaluate() domain.Classification {
	if !c.front.HasSample() || !c.rear.HasSample() {
		return c.Classification()
	}

	// Both fresh: consume exactly once. Only this method consumes, so the
	// samples cannot vanish between the checks above and the takes; a
	// concurrent publish merely swaps in an even newer measurement.
	front, _ := c.front.TakeSample()
	rear, _ := c.rear.TakeSample()

	difference := int64(front.Ticks) - int64(rear.Ticks)

	class := domain.Balanced
	switch {
	case difference > c.threshold:
		class = domain.FrontSlower
	case difference < -c.threshold:
		class = domain.RearSlower
	}

	c.class.Store(int32(class))
	return class
}

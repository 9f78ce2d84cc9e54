package control

import "github.com/bft-labs/bikeabs/internal/domain"

// Controller turns a lever sample and the comparator's decision into
// per-wheel brake intensities.
type Controller struct {
	comparator *Comparator
}

// NewController creates a controller bound to the given comparator.
func NewController(comparator *Comparator) *Controller {
	return &Controller{comparator: comparator}
}

// Command computes both wheel intensities for one lever sample. It refreshes
// the classification exactly once, synchronized with command generation: the
// reference behavior couples the two on purpose so a cycle never mixes an
// old decision with a new one.
//
// The slower wheel's brake is released entirely until the wheel speeds
// re-converge; the other wheel keeps the lever-commanded baseline.
func (ct *Controller) Command(reading uint8) (front, rear domain.Intensity, class domain.Classification) {
	class = ct.comparator.Evaluate()

	baseline := domain.Baseline(reading)
	front, rear = baseline, baseline

	switch class {
	case domain.FrontSlower:
		front = 0
	case domain.RearSlower:
		rear = 0
	}
	return front, rear, class
}

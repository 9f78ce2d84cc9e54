package ports

import "github.com/bft-labs/bikeabs/internal/domain"

// DutyCycleWriter drives the two brake servo channels. The core writes both
// channels once per control cycle, unconditionally; there is no feedback
// read-back. Errors are logged by the core and otherwise ignored, since the
// control loop is self-correcting on the next cycle.
type DutyCycleWriter interface {
	// Write sets one wheel's duty-cycle compare value.
	Write(wheel domain.Wheel, command domain.Command) error
}

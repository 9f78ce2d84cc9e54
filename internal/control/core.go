package control

import (
	"github.com/bft-labs/bikeabs/internal/domain"
	"github.com/bft-labs/bikeabs/internal/ports"
)

// Cycle is a snapshot of one completed control cycle, handed to the
// observer after both actuator channels have been written.
type Cycle struct {
	Lever          uint8
	Classification domain.Classification
	Front          domain.Command
	Rear           domain.Command
}

// Core wires the whole pipeline together and owns the five shared state
// cells: two tick counters, two pulse-width samples and the classification.
// It implements the event sinks; sources deliver tick, edge and lever events
// to it from independent goroutines.
type Core struct {
	frontTime *TimeBase
	rearTime  *TimeBase
	front     *EdgeCapture
	rear      *EdgeCapture

	comparator *Comparator
	controller *Controller

	actuator ports.DutyCycleWriter
	logger   ports.Logger

	// observer, when set, sees every completed cycle. Set before events
	// start flowing; it is read from the lever handler without a lock.
	observer func(Cycle)
}

// NewCore creates a control core writing to the given actuator.
func NewCore(actuator ports.DutyCycleWriter, logger ports.Logger) *Core {
	frontTime := &TimeBase{}
	rearTime := &TimeBase{}
	front := NewEdgeCapture(frontTime)
	rear := NewEdgeCapture(rearTime)
	comparator := NewComparator(front, rear)

	return &Core{
		frontTime:  frontTime,
		rearTime:   rearTime,
		front:      front,
		rear:       rear,
		comparator: comparator,
		controller: NewController(comparator),
		actuator:   actuator,
		logger:     logger,
	}
}

// SetObserver registers a per-cycle observer. Must be called before any
// lever sample is delivered.
func (c *Core) SetObserver(fn func(Cycle)) {
	c.observer = fn
}

// Classification returns the comparator's current decision.
func (c *Core) Classification() domain.Classification {
	return c.comparator.Classification()
}

// OnTick advances both wheel channels' time bases, exactly as the firmware's
// single timer interrupt incremented both counters.
func (c *Core) OnTick() {
	c.frontTime.Advance()
	c.rearTime.Advance()
}

// OnEdge routes a sensor transition to the matching capture channel.
func (c *Core) OnEdge(wheel domain.Wheel, level bool) {
	switch wheel {
	case domain.WheelFront:
		c.front.OnEdge(level)
	case domain.WheelRear:
		c.rear.OnEdge(level)
	}
}

// OnLeverSample runs one full control cycle: refresh the classification,
// derive both intensities from the lever position, and write both actuator
// channels unconditionally.
func (c *Core) OnLeverSample(reading uint8) {
	previous := c.comparator.Classification()

	front, rear, class := c.controller.Command(reading)
	frontCmd := front.Command()
	rearCmd := rear.Command()

	if err := c.actuator.Write(domain.WheelFront, frontCmd); err != nil {
		c.logger.Error("actuator write failed",
			ports.String("wheel", domain.WheelFront.String()),
			ports.Err(err),
		)
	}
	if err := c.actuator.Write(domain.WheelRear, rearCmd); err != nil {
		c.logger.Error("actuator write failed",
			ports.String("wheel", domain.WheelRear.String()),
			ports.Err(err),
		)
	}

	if class != previous {
		c.logger.Debug("classification changed",
			ports.String("from", previous.String()),
			ports.String("to", class.String()),
		)
	}

	if c.observer != nil {
		c.observer(Cycle{
			Lever:          reading,
			Classification: class,
			Front:          frontCmd,
			Rear:           rearCmd,
		})
	}
}

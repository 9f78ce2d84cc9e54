package abs

import (
	"time"

	"github.com/bft-labs/bikeabs/internal/domain"
)

// Classification is the per-cycle wheel lock decision.
type Classification = domain.Classification

// Classification values.
const (
	Balanced    = domain.Balanced
	FrontSlower = domain.FrontSlower
	RearSlower  = domain.RearSlower
)

// Command is an actuator duty-cycle command.
type Command = domain.Command

// Wheel identifies one of the two wheels.
type Wheel = domain.Wheel

// Wheel values.
const (
	WheelFront = domain.WheelFront
	WheelRear  = domain.WheelRear
)

// StateChangeEvent describes a lifecycle transition.
type StateChangeEvent struct {
	Previous string
	Current  string
	Reason   string
}

// CycleEvent describes one completed control cycle: the lever sample that
// triggered it, the decision that was applied and the commands written.
type CycleEvent struct {
	At             time.Time
	Lever          uint8
	Classification Classification
	Front          Command
	Rear           Command
}

// EventHandler receives controller events. Handlers are called from the
// controller's own goroutines and must not block.
type EventHandler interface {
	// OnStateChange is called on every lifecycle transition.
	OnStateChange(e StateChangeEvent)

	// OnCycle is called after every completed control cycle.
	OnCycle(e CycleEvent)

	// OnClassificationChange is called when the decision differs from the
	// previous cycle's.
	OnClassificationChange(previous, current Classification)
}

// BaseEventHandler provides no-op implementations of all EventHandler
// methods. Embed it to implement only the events of interest.
type BaseEventHandler struct{}

func (BaseEventHandler) OnStateChange(StateChangeEvent)             {}
func (BaseEventHandler) OnCycle(CycleEvent)                         {}
func (BaseEventHandler) OnClassificationChange(_, _ Classification) {}

var _ EventHandler = BaseEventHandler{}

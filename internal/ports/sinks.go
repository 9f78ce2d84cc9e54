package ports

import "github.com/bft-labs/bikeabs/internal/domain"

// The sink interfaces model the firmware's interrupt service routines: each
// method is invoked by its source when the corresponding event fires, runs to
// completion without blocking, and must never be re-entered concurrently for
// the same source. Different sinks may be invoked concurrently with each
// other.

// TickSink receives the periodic time-base event. One call advances the
// shared tick counters by exactly one tick.
type TickSink interface {
	OnTick()
}

// EdgeSink receives wheel sensor edge transitions. level is the logic level
// of the sensor line at the moment of the event; it distinguishes rising
// (true) from falling (false) and must come from the event itself, since
// glitching hardware can deliver two same-direction transitions in a row.
type EdgeSink interface {
	OnEdge(wheel domain.Wheel, level bool)
}

// LeverSink receives brake lever position samples in [0, 255]. Each sample
// drives one full comparator + controller + actuator cycle.
type LeverSink interface {
	OnLeverSample(reading uint8)
}

package domain

// PulseWidth is one wheel sensor measurement: the elapsed time-base ticks
// between a rising edge and the following falling edge of the same pulse.
// It deliberately measures high time, not full period; the numeric threshold
// below is calibrated for that convention.
//
// A shorter pulse means the slot in the sensor disc passed faster, so a
// smaller width means a faster wheel.
type PulseWidth struct {
	// Ticks is the width in time-base ticks (one tick = TickInterval).
	Ticks uint64
}

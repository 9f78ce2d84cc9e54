package domain

import "time"

// Fixed calibration constants of the control core. These are properties of
// the sensor discs, the lever wiring and the brake servos, not tunables.
const (
	// TickInterval is the period of the free-running time base. Pulse widths
	// are measured in multiples of it.
	TickInterval = 10 * time.Microsecond

	// DiffThresholdTicks is the minimum front−rear pulse-width difference, in
	// ticks, required to classify one wheel as slower than the other.
	DiffThresholdTicks = 50

	// LeverMidpoint is the inversion constant applied to lever readings:
	// baseline intensity = LeverMidpoint − reading, clamped. A fully
	// depressed lever (reading near 0) yields intensity near the midpoint; a
	// released lever (reading near 255) clamps to zero.
	LeverMidpoint = 128

	// MaxIntensity is the upper bound of the brake intensity domain, in
	// intensity units. The lever reading domain (0–255) is wider; the
	// mismatch is resolved by clamping, not rescaling.
	MaxIntensity = 235

	// CommandBase is the actuator compare value for zero intensity, i.e. the
	// servo's neutral position, in compare-value units of the 20 ms output
	// period.
	CommandBase = 1000

	// CommandScale converts intensity units to compare-value units.
	CommandScale = 16
)

// Actuator command range implied by the constants above.
const (
	CommandMin Command = CommandBase
	CommandMax Command = CommandBase + MaxIntensity*CommandScale
)

// Intensity is a brake intensity in [0, MaxIntensity], derived from a lever
// reading by inversion and clamping.
type Intensity int

// Command is a 16-bit actuator duty-cycle compare value in
// [CommandMin, CommandMax].
type Command uint16

// ClampIntensity clamps v to the valid intensity range. Out-of-range values
// are never rejected, only clamped to the nearest boundary.
func ClampIntensity(v int) Intensity {
	if v < 0 {
		return 0
	}
	if v > MaxIntensity {
		return MaxIntensity
	}
	return Intensity(v)
}

// Baseline computes the brake intensity commanded by a raw lever reading:
// clamp(LeverMidpoint − reading, 0, MaxIntensity).
func Baseline(reading uint8) Intensity {
	return ClampIntensity(LeverMidpoint - int(reading))
}

// Command scales the intensity into the actuator's compare-value domain.
func (i Intensity) Command() Command {
	return Command(CommandBase + int(i)*CommandScale)
}

package domain

// Classification is the persisted determination of which wheel, if any, is
// rotating detectably slower than the other. It is the only entity in the
// core with cross-cycle memory: it changes only when both wheels report a
// fresh pulse-width measurement in the same evaluation and holds its previous
// value otherwise, which keeps braking sensible on a stationary bike.
type Classification int32

const (
	// Balanced means the pulse-width difference is within the threshold.
	Balanced Classification = iota

	// FrontSlower means the front wheel's pulses are wider than the rear's
	// by more than the threshold (wider pulse = slower rotation).
	FrontSlower

	// RearSlower is the symmetric case for the rear wheel.
	RearSlower
)

// String returns a human-readable representation of the classification.
func (c Classification) String() string {
	switch c {
	case Balanced:
		return "balanced"
	case FrontSlower:
		return "front-slower"
	case RearSlower:
		return "rear-slower"
	default:
		return "unknown"
	}
}

// SlowerWheel returns the wheel this classification marks as slower.
// The second return value is false for Balanced.
func (c Classification) SlowerWheel() (Wheel, bool) {
	switch c {
	case FrontSlower:
		return WheelFront, true
	case RearSlower:
		return WheelRear, true
	default:
		return WheelFront, false
	}
}

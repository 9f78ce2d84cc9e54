package domain

// Wheel identifies one of the two independently braked wheels.
type Wheel int

const (
	WheelFront Wheel = iota
	WheelRear
)

// String returns a human-readable representation of the wheel.
func (w Wheel) String() string {
	switch w {
	case WheelFront:
		return "front"
	case WheelRear:
		return "rear"
	default:
		return "unknown"
	}
}

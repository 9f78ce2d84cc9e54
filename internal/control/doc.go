// Package control implements the real-time measurement-and-decision pipeline
// of the anti-lock braking core.
//
// The pipeline mirrors the interrupt structure of the original firmware:
//
//   - [TimeBase]: a free-running tick counter per wheel channel, advanced by
//     the periodic tick event
//   - [EdgeCapture]: per-wheel pulse-width capture driven by sensor edge
//     events against the channel's TimeBase
//   - [Comparator]: the differential-speed classifier with hysteresis and a
//     hold-last-decision policy
//   - [Controller]: lever position + classification → clamped per-wheel
//     brake intensities
//   - [Core]: the orchestrating object that owns all shared state cells and
//     implements the event sinks
//
// # Concurrency
//
// The handlers cross goroutine boundaries the way the firmware's ISRs cross
// interrupt contexts. Every shared cell is a single machine word accessed
// atomically: tick counters are atomic integers, a pulse-width sample is an
// atomic pointer to an immutable measurement (nil = no fresh measurement),
// and the classification is an atomic enum. No handler takes a lock, blocks,
// or sleeps.
package control

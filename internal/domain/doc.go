// Package domain contains the core domain entities and value objects for the
// anti-lock braking core.
//
// This package represents the innermost layer of the Clean Architecture. It
// has no dependencies on infrastructure concerns (file system, logging,
// timers) and contains only pure values and business rules.
//
// # Entities
//
//   - [Wheel]: Identifies the front or rear brake channel
//   - [PulseWidth]: One wheel sensor measurement in time-base ticks
//   - [Classification]: The persisted slower-wheel determination
//   - [Intensity]: A clamped brake intensity derived from the lever
//   - [Command]: An actuator duty-cycle compare value
//
// # Design Principles
//
// Domain entities are:
//   - Immutable after construction (where practical)
//   - Free of infrastructure dependencies
//   - Focused on business rules and invariants
//   - Testable without mocks or external systems
package domain

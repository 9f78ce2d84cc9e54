// Package ports defines the interfaces (ports) that connect the control core
// to infrastructure adapters.
//
// In Clean Architecture / Hexagonal Architecture, ports are the boundaries
// between the application core and the outside world. They define what the
// core needs from external systems without specifying how those needs are
// fulfilled.
//
// # Port Interfaces
//
//   - [TickSink], [EdgeSink], [LeverSink]: The core's event handlers, driven
//     by interrupt-style sources
//   - [TickSource], [EdgeSource], [LeverSource]: Event producers (hardware,
//     simulation, or trace replay)
//   - [DutyCycleWriter]: The actuator output channels
//   - [Logger]: Structured logging abstraction
//
// # Usage
//
// The control core (internal/control) implements the sinks and depends only
// on these interfaces for its outputs. Infrastructure adapters
// (internal/adapters) implement the sources and the actuator writer.
//
// This separation enables:
//   - Testing the control pipeline with recorded or synthetic events
//   - Swapping the simulated rig for real hardware without touching the core
//   - Clear boundaries and dependency direction
package ports

package abs

import "github.com/bft-labs/bikeabs/internal/ports"

// Option configures the controller at construction time.
type Option func(*options)

type options struct {
	logger         Logger
	actuator       ports.DutyCycleWriter
	tickSource     ports.TickSource
	frontSource    ports.EdgeSource
	rearSource     ports.EdgeSource
	leverSource    ports.LeverSource
	handlers       []EventHandler
	plugins        []Plugin
	externalInputs bool
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithActuator sets the duty-cycle writer that receives brake commands.
// Defaults to an in-memory recorder whose state Status() reports.
func WithActuator(actuator ports.DutyCycleWriter) Option {
	return func(o *options) {
		o.actuator = actuator
	}
}

// WithTickSource replaces the default fixed-interval tick source.
func WithTickSource(src ports.TickSource) Option {
	return func(o *options) {
		o.tickSource = src
	}
}

// WithEdgeSources replaces the simulated wheel signal generators.
func WithEdgeSources(front, rear ports.EdgeSource) Option {
	return func(o *options) {
		o.frontSource = front
		o.rearSource = rear
	}
}

// WithLeverSource replaces the simulated lever.
func WithLeverSource(src ports.LeverSource) Option {
	return func(o *options) {
		o.leverSource = src
	}
}

// WithEventHandler registers an event handler. Multiple handlers may be
// registered; each event fans out to all of them in registration order.
func WithEventHandler(h EventHandler) Option {
	return func(o *options) {
		o.handlers = append(o.handlers, h)
	}
}

// WithPlugin registers a plugin. A plugin that also implements EventHandler
// is subscribed to events automatically.
func WithPlugin(p Plugin) Option {
	return func(o *options) {
		o.plugins = append(o.plugins, p)
		if h, ok := p.(EventHandler); ok {
			o.handlers = append(o.handlers, h)
		}
	}
}

// WithExternalInputs disables the simulated wheel and lever sources. Sensor
// events are then expected from plugins or from direct calls to the
// controller's sinks. The tick source still runs; the time base needs it.
func WithExternalInputs() Option {
	return func(o *options) {
		o.externalInputs = true
	}
}

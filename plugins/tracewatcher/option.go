package tracewatcher

import "github.com/bft-labs/bikeabs/pkg/abs"

// WithTraceReplay returns an abs Option that replays a recorded sensor
// trace into the controller. Usually combined with abs.WithExternalInputs
// so the simulated sensors do not compete with the trace.
//
// Usage:
//
//	a, err := abs.New(cfg,
//	    abs.WithExternalInputs(),
//	    tracewatcher.WithTraceReplay(tracewatcher.Config{Path: "ride.jsonl"}),
//	)
func WithTraceReplay(cfg Config) abs.Option {
	plugin := New(cfg)
	return abs.WithPlugin(plugin)
}

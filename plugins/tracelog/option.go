package tracelog

import "github.com/bft-labs/bikeabs/pkg/abs"

// WithTraceLog returns an abs Option that enables per-cycle trace logging
// to the given file.
//
// Usage:
//
//	a, err := abs.New(cfg,
//	    tracelog.WithTraceLog(tracelog.Config{Path: "trace.jsonl"}),
//	)
func WithTraceLog(cfg Config) abs.Option {
	plugin := New(cfg)
	return abs.WithPlugin(plugin)
}

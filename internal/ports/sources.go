package ports

import "context"

// Sources deliver events to the core's sinks at their own cadence. Run blocks
// until ctx is done or the source is exhausted, invoking the sink for every
// event; the caller supervises each source on its own goroutine. A source
// must invoke its sink sequentially, never concurrently with itself.

// TickSource drives TickSink at a fixed interval.
type TickSource interface {
	Run(ctx context.Context, sink TickSink) error
}

// EdgeSource delivers sensor edge transitions for one or both wheels.
type EdgeSource interface {
	Run(ctx context.Context, sink EdgeSink) error
}

// LeverSource delivers lever position samples at the sampling cadence.
type LeverSource interface {
	Run(ctx context.Context, sink LeverSink) error
}

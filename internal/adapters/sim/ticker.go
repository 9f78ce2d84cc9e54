package sim

import (
	"context"
	"time"

	"github.com/bft-labs/bikeabs/internal/ports"
)

// TickSource pumps the core's time base at a fixed interval. The real
// firmware ticks every 10 µs; on a host OS a coarser interval is usually
// chosen and pulse durations scaled to match.
type TickSource struct {
	interval time.Duration
}

// NewTickSource creates a tick source with the given interval.
func NewTickSource(interval time.Duration) *TickSource {
	return &TickSource{interval: interval}
}

// Run delivers ticks until ctx is done.
func (s *TickSource) Run(ctx context.Context, sink ports.TickSink) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			sink.OnTick()
		}
	}
}

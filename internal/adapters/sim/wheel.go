package sim

import (
	"context"
	"time"

	"github.com/bft-labs/bikeabs/internal/domain"
	"github.com/bft-labs/bikeabs/internal/ports"
)

// Wheel emits the square wave of one photo-interrupter sensor: a rising edge
// at the start of each pulse, a falling edge after the pulse width, then low
// until the next period. A slower wheel is simulated with a wider pulse.
type Wheel struct {
	wheel  domain.Wheel
	pulse  time.Duration
	period time.Duration
}

// NewWheel creates a wheel signal generator. period must exceed pulse.
func NewWheel(wheel domain.Wheel, pulse, period time.Duration) *Wheel {
	return &Wheel{wheel: wheel, pulse: pulse, period: period}
}

// Run emits edge pairs until ctx is done.
func (w *Wheel) Run(ctx context.Context, sink ports.EdgeSink) error {
	for {
		sink.OnEdge(w.wheel, true)
		if err := sleep(ctx, w.pulse); err != nil {
			return err
		}
		sink.OnEdge(w.wheel, false)
		if err := sleep(ctx, w.period-w.pulse); err != nil {
			return err
		}
	}
}

// sleep waits for d or until ctx is done, whichever comes first.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

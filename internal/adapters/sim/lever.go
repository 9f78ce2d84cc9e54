package sim

import (
	"context"
	"time"

	"github.com/bft-labs/bikeabs/internal/ports"
)

// Lever samples a brake lever position at a fixed cadence. The position is
// either a constant reading or a profile function of elapsed time, letting
// tests and the CLI script braking maneuvers.
type Lever struct {
	interval time.Duration
	profile  func(elapsed time.Duration) uint8
}

// NewLever creates a lever source with a constant reading.
func NewLever(interval time.Duration, reading uint8) *Lever {
	return &Lever{
		interval: interval,
		profile:  func(time.Duration) uint8 { return reading },
	}
}

// NewLeverProfile creates a lever source driven by a time-based profile.
func NewLeverProfile(interval time.Duration, profile func(elapsed time.Duration) uint8) *Lever {
	return &Lever{interval: interval, profile: profile}
}

// Run delivers lever samples until ctx is done.
func (l *Lever) Run(ctx context.Context, sink ports.LeverSink) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			sink.OnLeverSample(l.profile(time.Since(start)))
		}
	}
}

package abs

import (
	"fmt"
	"time"

	"github.com/bft-labs/bikeabs/internal/domain"
)

// Config holds the configuration for the braking controller.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config struct {
	// TickInterval is the resolution of the internal time base. The
	// firmware this models ticks every 10 µs; on a host OS a coarser
	// interval keeps the tick goroutine honest.
	TickInterval time.Duration

	// LeverInterval is the cadence at which the lever is sampled. Each
	// sample drives one full control cycle.
	LeverInterval time.Duration

	// LeverReading is the constant lever position used by the simulated
	// lever. 0 is full squeeze, 255 fully released, 128 the midpoint.
	LeverReading uint8

	// FrontPulse and FrontPeriod shape the simulated front wheel signal:
	// the sensor is high for FrontPulse out of every FrontPeriod.
	FrontPulse  time.Duration
	FrontPeriod time.Duration

	// RearPulse and RearPeriod shape the simulated rear wheel signal.
	RearPulse  time.Duration
	RearPeriod time.Duration

	// Duration bounds the run; zero means run until Stop is called.
	Duration time.Duration

	// Once stops the controller after the first completed control cycle.
	// Useful for smoke tests and one-shot inspection of the rig.
	Once bool
}

// DefaultConfig returns a Config with sensible default values: a 1 ms time
// base, a 10 ms lever cadence, both wheels turning at the same rate and the
// lever at full squeeze.
func DefaultConfig() Config {
	return Config{
		TickInterval:  time.Millisecond,
		LeverInterval: 10 * time.Millisecond,
		LeverReading:  0,
		FrontPulse:    60 * time.Millisecond,
		FrontPeriod:   200 * time.Millisecond,
		RearPulse:     60 * time.Millisecond,
		RearPeriod:    200 * time.Millisecond,
	}
}

// SetDefaults fills zero-valued fields from DefaultConfig. LeverReading and
// Duration are left alone since zero is meaningful for both.
func (c *Config) SetDefaults() {
	def := DefaultConfig()
	if c.TickInterval == 0 {
		c.TickInterval = def.TickInterval
	}
	if c.LeverInterval == 0 {
		c.LeverInterval = def.LeverInterval
	}
	if c.FrontPulse == 0 {
		c.FrontPulse = def.FrontPulse
	}
	if c.FrontPeriod == 0 {
		c.FrontPeriod = def.FrontPeriod
	}
	if c.RearPulse == 0 {
		c.RearPulse = def.RearPulse
	}
	if c.RearPeriod == 0 {
		c.RearPeriod = def.RearPeriod
	}
}

// Validate checks the configuration for consistency. All errors wrap
// ErrInvalidConfig.
func (c Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval must be positive, got %v", domain.ErrInvalidConfig, c.TickInterval)
	}
	if c.LeverInterval <= 0 {
		return fmt.Errorf("%w: lever interval must be positive, got %v", domain.ErrInvalidConfig, c.LeverInterval)
	}
	if c.FrontPulse <= 0 || c.RearPulse <= 0 {
		return fmt.Errorf("%w: pulse widths must be positive", domain.ErrInvalidConfig)
	}
	if c.FrontPeriod <= c.FrontPulse {
		return fmt.Errorf("%w: front period %v must exceed front pulse %v", domain.ErrInvalidConfig, c.FrontPeriod, c.FrontPulse)
	}
	if c.RearPeriod <= c.RearPulse {
		return fmt.Errorf("%w: rear period %v must exceed rear pulse %v", domain.ErrInvalidConfig, c.RearPeriod, c.RearPulse)
	}
	if c.Duration < 0 {
		return fmt.Errorf("%w: duration must not be negative, got %v", domain.ErrInvalidConfig, c.Duration)
	}
	return nil
}

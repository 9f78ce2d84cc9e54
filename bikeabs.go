// Package bikeabs provides an anti-lock braking controller for two-wheel
// vehicles.
//
// Example usage:
//
//	cfg := bikeabs.DefaultConfig()
//	cfg.Duration = 10 * time.Second
//	a, err := bikeabs.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := a.Start(context.Background()); err != nil {
//	    log.Fatal(err)
//	}
//	defer a.Stop(context.Background())
package bikeabs

import "github.com/bft-labs/bikeabs/pkg/abs"

// Config holds the configuration for the braking controller.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config = abs.Config

// ABS is the anti-lock braking controller.
type ABS = abs.ABS

// Option configures the controller at construction time.
type Option = abs.Option

// Classification is the per-cycle wheel lock decision.
type Classification = abs.Classification

// New creates a controller from the configuration and options.
func New(cfg Config, opts ...Option) (*ABS, error) {
	return abs.New(cfg, opts...)
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return abs.DefaultConfig()
}

// Package cliconfig holds the CLI-facing configuration for bikeabs and the
// file/env/flag layering that fills it. Precedence is flags over
// environment over config file over defaults.
package cliconfig

import (
	"fmt"
	"strconv"
	"time"
)

// Config holds CLI configuration for bikeabs.
type Config struct {
	TickInterval  time.Duration
	LeverInterval time.Duration
	LeverReading  int

	FrontPulse  time.Duration
	FrontPeriod time.Duration
	RearPulse   time.Duration
	RearPeriod  time.Duration

	Duration time.Duration

	TraceOut string
	Replay   string
	Once     bool
	Verbose  bool
}

// DefaultConfig returns a Config with default values: both wheels turning at
// the same rate, lever fully squeezed, no trace output.
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

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive")
	}
	if c.LeverInterval <= 0 {
		return fmt.Errorf("lever interval must be positive")
	}
	if c.LeverReading < 0 || c.LeverReading > 255 {
		return fmt.Errorf("lever reading must be in [0, 255], got %d", c.LeverReading)
	}
	if c.FrontPulse <= 0 || c.RearPulse <= 0 {
		return fmt.Errorf("pulse widths must be positive")
	}
	if c.FrontPeriod <= c.FrontPulse {
		return fmt.Errorf("front period must exceed front pulse")
	}
	if c.RearPeriod <= c.RearPulse {
		return fmt.Errorf("rear period must exceed rear pulse")
	}
	if c.Duration < 0 {
		return fmt.Errorf("duration must not be negative")
	}
	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value from a pointer if not nil and flag not changed.
// A pointer source keeps zero distinguishable from absent; the lever reading
// is zero at full squeeze.
func (s *configSetter) setInt(flag string, value *int, dst *int) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = i
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}

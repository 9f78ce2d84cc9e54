package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (BIKEABS_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	if err := s.setDuration("tick", os.Getenv("BIKEABS_TICK_INTERVAL"), &cfg.TickInterval); err != nil {
		return err
	}
	if err := s.setDuration("lever-interval", os.Getenv("BIKEABS_LEVER_INTERVAL"), &cfg.LeverInterval); err != nil {
		return err
	}
	if err := s.setDuration("front-pulse", os.Getenv("BIKEABS_FRONT_PULSE"), &cfg.FrontPulse); err != nil {
		return err
	}
	if err := s.setDuration("front-period", os.Getenv("BIKEABS_FRONT_PERIOD"), &cfg.FrontPeriod); err != nil {
		return err
	}
	if err := s.setDuration("rear-pulse", os.Getenv("BIKEABS_REAR_PULSE"), &cfg.RearPulse); err != nil {
		return err
	}
	if err := s.setDuration("rear-period", os.Getenv("BIKEABS_REAR_PERIOD"), &cfg.RearPeriod); err != nil {
		return err
	}
	if err := s.setDuration("duration", os.Getenv("BIKEABS_DURATION"), &cfg.Duration); err != nil {
		return err
	}

	if err := s.setIntFromString("lever", os.Getenv("BIKEABS_LEVER_READING"), &cfg.LeverReading); err != nil {
		return err
	}

	s.setString("trace-out", os.Getenv("BIKEABS_TRACE_OUT"), &cfg.TraceOut)
	s.setString("replay", os.Getenv("BIKEABS_REPLAY"), &cfg.Replay)
	s.setBoolFromString("once", os.Getenv("BIKEABS_ONCE"), &cfg.Once)
	s.setBoolFromString("verbose", os.Getenv("BIKEABS_VERBOSE"), &cfg.Verbose)

	return nil
}

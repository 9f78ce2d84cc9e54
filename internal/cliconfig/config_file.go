package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	TickInterval  string `toml:"tick_interval"`
	LeverInterval string `toml:"lever_interval"`
	LeverReading  *int   `toml:"lever_reading"`
	FrontPulse    string `toml:"front_pulse"`
	FrontPeriod   string `toml:"front_period"`
	RearPulse     string `toml:"rear_pulse"`
	RearPeriod    string `toml:"rear_period"`
	Duration      string `toml:"duration"`
	TraceOut      string `toml:"trace_out"`
	Replay        string `toml:"replay"`
	Once          *bool  `toml:"once"`
	Verbose       *bool  `toml:"verbose"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.bikeabs/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".bikeabs", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	if err := s.setDuration("tick", fc.TickInterval, &cfg.TickInterval); err != nil {
		return err
	}
	if err := s.setDuration("lever-interval", fc.LeverInterval, &cfg.LeverInterval); err != nil {
		return err
	}
	if err := s.setDuration("front-pulse", fc.FrontPulse, &cfg.FrontPulse); err != nil {
		return err
	}
	if err := s.setDuration("front-period", fc.FrontPeriod, &cfg.FrontPeriod); err != nil {
		return err
	}
	if err := s.setDuration("rear-pulse", fc.RearPulse, &cfg.RearPulse); err != nil {
		return err
	}
	if err := s.setDuration("rear-period", fc.RearPeriod, &cfg.RearPeriod); err != nil {
		return err
	}
	if err := s.setDuration("duration", fc.Duration, &cfg.Duration); err != nil {
		return err
	}

	s.setInt("lever", fc.LeverReading, &cfg.LeverReading)
	s.setString("trace-out", fc.TraceOut, &cfg.TraceOut)
	s.setString("replay", fc.Replay, &cfg.Replay)
	s.setBool("once", fc.Once, &cfg.Once)
	s.setBool("verbose", fc.Verbose, &cfg.Verbose)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

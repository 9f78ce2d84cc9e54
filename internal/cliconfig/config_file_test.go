package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestApplyFileConfig(t *testing.T) {
	lever := 200
	verbose := true
	fc := FileConfig{
		TickInterval: "2ms",
		FrontPulse:   "80ms",
		FrontPeriod:  "250ms",
		LeverReading: &lever,
		TraceOut:     "/tmp/trace.jsonl",
		Verbose:      &verbose,
	}

	cfg := DefaultConfig()
	if err := ApplyFileConfig(&cfg, fc, map[string]bool{}); err != nil {
		t.Fatalf("ApplyFileConfig() error = %v", err)
	}

	if cfg.TickInterval != 2*time.Millisecond {
		t.Errorf("TickInterval = %v, want 2ms", cfg.TickInterval)
	}
	if cfg.FrontPulse != 80*time.Millisecond {
		t.Errorf("FrontPulse = %v, want 80ms", cfg.FrontPulse)
	}
	if cfg.LeverReading != 200 {
		t.Errorf("LeverReading = %d, want 200", cfg.LeverReading)
	}
	if cfg.TraceOut != "/tmp/trace.jsonl" {
		t.Errorf("TraceOut = %s, want /tmp/trace.jsonl", cfg.TraceOut)
	}
	if !cfg.Verbose {
		t.Error("Verbose = false, want true")
	}
	// Untouched fields keep their defaults.
	if cfg.RearPulse != 60*time.Millisecond {
		t.Errorf("RearPulse = %v, want default 60ms", cfg.RearPulse)
	}
}

func TestApplyFileConfig_RespectsChangedFlags(t *testing.T) {
	lever := 200
	fc := FileConfig{
		TickInterval: "2ms",
		LeverReading: &lever,
	}

	cfg := DefaultConfig()
	cfg.TickInterval = 5 * time.Millisecond
	cfg.LeverReading = 17

	changed := map[string]bool{"tick": true, "lever": true}
	if err := ApplyFileConfig(&cfg, fc, changed); err != nil {
		t.Fatalf("ApplyFileConfig() error = %v", err)
	}

	if cfg.TickInterval != 5*time.Millisecond {
		t.Errorf("TickInterval = %v, want flag value 5ms", cfg.TickInterval)
	}
	if cfg.LeverReading != 17 {
		t.Errorf("LeverReading = %d, want flag value 17", cfg.LeverReading)
	}
}

func TestApplyFileConfig_ZeroLeverReading(t *testing.T) {
	lever := 0
	fc := FileConfig{LeverReading: &lever}

	cfg := DefaultConfig()
	cfg.LeverReading = 99

	if err := ApplyFileConfig(&cfg, fc, map[string]bool{}); err != nil {
		t.Fatalf("ApplyFileConfig() error = %v", err)
	}
	if cfg.LeverReading != 0 {
		t.Errorf("LeverReading = %d, want 0 (explicit zero applies)", cfg.LeverReading)
	}
}

func TestApplyFileConfig_InvalidDuration(t *testing.T) {
	fc := FileConfig{Duration: "not-a-duration"}

	cfg := DefaultConfig()
	if err := ApplyFileConfig(&cfg, fc, map[string]bool{}); err == nil {
		t.Error("ApplyFileConfig() = nil, want parse error")
	}
}

func TestLoadFileConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
tick_interval = "2ms"
lever_reading = 128
front_pulse = "80ms"
verbose = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig() error = %v", err)
	}

	if fc.TickInterval != "2ms" {
		t.Errorf("TickInterval = %s, want 2ms", fc.TickInterval)
	}
	if fc.LeverReading == nil || *fc.LeverReading != 128 {
		t.Errorf("LeverReading = %v, want 128", fc.LeverReading)
	}
	if fc.Verbose == nil || !*fc.Verbose {
		t.Errorf("Verbose = %v, want true", fc.Verbose)
	}
	if fc.Replay != "" {
		t.Errorf("Replay = %s, want empty", fc.Replay)
	}
}

func TestLoadFileConfig_MissingFile(t *testing.T) {
	if _, err := LoadFileConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("LoadFileConfig() = nil, want error")
	}
}

func TestLoadFileConfig_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("tick_interval = ["), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := LoadFileConfig(path); err == nil {
		t.Error("LoadFileConfig() = nil, want error")
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "present")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	if !FileExists(path) {
		t.Error("FileExists() = false for existing file")
	}
	if FileExists(filepath.Join(dir, "absent")) {
		t.Error("FileExists() = true for missing file")
	}
}

// Package tracelog provides per-cycle telemetry for bikeabs. When enabled,
// every completed control cycle is appended as one JSON line to a trace
// file, suitable for offline analysis of braking behavior.
package tracelog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/bft-labs/bikeabs/pkg/abs"
)

// Record is the shape of one trace line.
type Record struct {
	At             time.Time `json:"at"`
	Lever          uint8     `json:"lever"`
	Classification string    `json:"classification"`
	Front          int       `json:"front"`
	Rear           int       `json:"rear"`
}

// Config holds configuration options for the trace log plugin.
type Config struct {
	// Path is the trace file to append to. Required.
	Path string
}

// Plugin appends one JSON line per control cycle to the trace file.
type Plugin struct {
	abs.BaseEventHandler

	mu     sync.Mutex
	path   string
	file   *os.File
	enc    *json.Encoder
	logger abs.Logger
}

// New creates a trace log plugin writing to cfg.Path.
func New(cfg Config) *Plugin {
	return &Plugin{path: cfg.Path}
}

// Name returns the plugin identifier.
func (p *Plugin) Name() string {
	return "tracelog"
}

// Initialize opens the trace file for appending.
func (p *Plugin) Initialize(_ context.Context, cfg abs.PluginConfig) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.logger = cfg.Logger
	if p.path == "" {
		return fmt.Errorf("tracelog: path is required")
	}

	f, err := os.OpenFile(p.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("tracelog: open %s: %w", p.path, err)
	}
	p.file = f
	p.enc = json.NewEncoder(f)
	return nil
}

// Shutdown closes the trace file.
func (p *Plugin) Shutdown(context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.file == nil {
		return nil
	}
	err := p.file.Close()
	p.file = nil
	p.enc = nil
	return err
}

// OnCycle appends the cycle to the trace file.
func (p *Plugin) OnCycle(e abs.CycleEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.enc == nil {
		return
	}
	rec := Record{
		At:             e.At,
		Lever:          e.Lever,
		Classification: e.Classification.String(),
		Front:          int(e.Front),
		Rear:           int(e.Rear),
	}
	if err := p.enc.Encode(rec); err != nil && p.logger != nil {
		p.logger.Error("trace write failed")
	}
}

// Ensure Plugin implements abs.Plugin.
var _ abs.Plugin = (*Plugin)(nil)

// Package tracewatcher replays a recorded sensor trace into bikeabs. When
// enabled, it reads a JSONL trace file and feeds each edge and lever event
// to the controller, then follows the file for appended events the way a
// log tailer would. Pair it with abs.WithExternalInputs to drive the
// controller entirely from a trace.
package tracewatcher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/bikeabs/pkg/abs"
)

// Event is the shape of one trace line. Kind is "edge" or "lever"; edge
// events carry Wheel ("front" or "rear") and Level, lever events carry
// Reading.
type Event struct {
	Kind    string `json:"kind"`
	Wheel   string `json:"wheel,omitempty"`
	Level   bool   `json:"level,omitempty"`
	Reading uint8  `json:"reading,omitempty"`
}

// Config holds configuration options for the trace watcher plugin.
type Config struct {
	// Path is the trace file to replay and follow. Required.
	Path string
}

// Plugin replays sensor events from a trace file.
type Plugin struct {
	mu sync.Mutex

	path    string
	edges   interface{ OnEdge(abs.Wheel, bool) }
	lever   interface{ OnLeverSample(uint8) }
	logger  abs.Logger
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	offset  int64
	pending []byte
}

// New creates a trace watcher plugin reading from cfg.Path.
func New(cfg Config) *Plugin {
	return &Plugin{path: cfg.Path}
}

// Name returns the plugin identifier.
func (p *Plugin) Name() string {
	return "tracewatcher"
}

// Initialize replays the existing trace content and starts following the
// file for appended events.
func (p *Plugin) Initialize(ctx context.Context, cfg abs.PluginConfig) error {
	p.mu.Lock()
	p.edges = cfg.EdgeSink
	p.lever = cfg.LeverSink
	p.logger = cfg.Logger
	p.mu.Unlock()

	if p.path == "" {
		return fmt.Errorf("tracewatcher: path is required")
	}
	if _, err := os.Stat(p.path); err != nil {
		return fmt.Errorf("tracewatcher: stat %s: %w", p.path, err)
	}

	// Replay what is already there before the watcher starts, so a
	// pre-recorded trace plays deterministically.
	p.drain()

	watchCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	p.wg.Add(1)
	go p.watchLoop(watchCtx)

	return nil
}

// Shutdown stops following the trace file.
func (p *Plugin) Shutdown(ctx context.Context) error {
	if p.cancel != nil {
		p.cancel()
	}
	p.wg.Wait()
	return nil
}

// watchLoop follows the trace file for appended events.
func (p *Plugin) watchLoop(ctx context.Context) {
	defer p.wg.Done()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		p.logger.Error("trace watcher: failed to create watcher")
		return
	}
	defer watcher.Close()

	// Watch the directory; editors and recorders replace files.
	if err := watcher.Add(filepath.Dir(p.path)); err != nil {
		p.logger.Error("trace watcher: failed to watch directory")
		return
	}

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Name != p.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			p.drain()

		case _, ok := <-watcher.Errors:
			if !ok {
				return
			}
			p.logger.Error("trace watcher: watcher error")
		}
	}
}

// drain reads new bytes from the trace file and replays every complete
// line. A trailing partial line is kept for the next drain.
func (p *Plugin) drain() {
	p.mu.Lock()
	defer p.mu.Unlock()

	f, err := os.Open(p.path)
	if err != nil {
		p.logger.Error("trace watcher: open failed")
		return
	}
	defer f.Close()

	if _, err := f.Seek(p.offset, io.SeekStart); err != nil {
		p.logger.Error("trace watcher: seek failed")
		return
	}
	data, err := io.ReadAll(f)
	if err != nil {
		p.logger.Error("trace watcher: read failed")
		return
	}
	p.offset += int64(len(data))
	p.pending = append(p.pending, data...)

	for {
		idx := bytes.IndexByte(p.pending, '\n')
		if idx < 0 {
			return
		}
		line := bytes.TrimSpace(p.pending[:idx])
		p.pending = p.pending[idx+1:]
		if len(line) == 0 {
			continue
		}
		if err := p.replayLine(line); err != nil {
			p.logger.Warn("trace watcher: skipping bad line")
		}
	}
}

// replayLine parses one trace line and injects it into the controller.
func (p *Plugin) replayLine(line []byte) error {
	var e Event
	if err := json.Unmarshal(line, &e); err != nil {
		return fmt.Errorf("parse event: %w", err)
	}
	return p.apply(e)
}

func (p *Plugin) apply(e Event) error {
	switch e.Kind {
	case "edge":
		var wheel abs.Wheel
		switch e.Wheel {
		case "front":
			wheel = abs.WheelFront
		case "rear":
			wheel = abs.WheelRear
		default:
			return fmt.Errorf("unknown wheel %q", e.Wheel)
		}
		p.edges.OnEdge(wheel, e.Level)
		return nil

	case "lever":
		p.lever.OnLeverSample(e.Reading)
		return nil

	default:
		return fmt.Errorf("unknown event kind %q", e.Kind)
	}
}

// Ensure Plugin implements abs.Plugin.
var _ abs.Plugin = (*Plugin)(nil)

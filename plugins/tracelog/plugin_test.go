package tracelog

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bft-labs/bikeabs/pkg/abs"
	"github.com/bft-labs/bikeabs/pkg/log"
)

func TestPlugin_WritesOneLinePerCycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.jsonl")
	p := New(Config{Path: path})

	cfg := abs.PluginConfig{Logger: log.NewNoopLogger()}
	if err := p.Initialize(context.Background(), cfg); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	p.OnCycle(abs.CycleEvent{
		At:             time.Now(),
		Lever:          0,
		Classification: abs.FrontSlower,
		Front:          1000,
		Rear:           3048,
	})
	p.OnCycle(abs.CycleEvent{
		At:             time.Now(),
		Lever:          128,
		Classification: abs.Balanced,
		Front:          1000,
		Rear:           1000,
	})

	if err := p.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open trace: %v", err)
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var rec Record
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			t.Fatalf("parse line %d: %v", len(records), err)
		}
		records = append(records, rec)
	}

	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Classification != "front-slower" || records[0].Rear != 3048 {
		t.Errorf("record 0 = %+v, want front-slower with rear 3048", records[0])
	}
	if records[1].Lever != 128 {
		t.Errorf("record 1 lever = %d, want 128", records[1].Lever)
	}
}

func TestPlugin_RequiresPath(t *testing.T) {
	p := New(Config{})

	err := p.Initialize(context.Background(), abs.PluginConfig{Logger: log.NewNoopLogger()})
	if err == nil {
		t.Error("Initialize() = nil, want error for missing path")
	}
}

func TestPlugin_CycleAfterShutdownIsDropped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.jsonl")
	p := New(Config{Path: path})

	if err := p.Initialize(context.Background(), abs.PluginConfig{Logger: log.NewNoopLogger()}); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if err := p.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	// Must not panic or resurrect the file handle.
	p.OnCycle(abs.CycleEvent{At: time.Now()})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read trace: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("trace has %d bytes after shutdown, want 0", len(data))
	}
}

package abs

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/bft-labs/bikeabs/internal/domain"
	"github.com/bft-labs/bikeabs/internal/ports"
)

// blockingTickSource parks until the context is done, so tests can drive
// the time base by hand without a real ticker racing them.
type blockingTickSource struct{}

func (blockingTickSource) Run(ctx context.Context, _ ports.TickSink) error {
	<-ctx.Done()
	return ctx.Err()
}

// newIdleABS creates a controller with no simulated inputs and no real tick
// source. Tests feed the core directly.
func newIdleABS(t *testing.T, opts ...Option) *ABS {
	t.Helper()
	opts = append(opts, WithExternalInputs(), WithTickSource(blockingTickSource{}))
	a, err := New(DefaultConfig(), opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return a
}

// drive plays one control cycle into the core: both wheels pulse, then the
// lever is sampled.
func drive(a *ABS, frontWidth, rearWidth uint64, lever uint8) {
	pulse := func(wheel domain.Wheel, width uint64) {
		a.core.OnEdge(wheel, true)
		for i := uint64(0); i < width; i++ {
			a.core.OnTick()
		}
		a.core.OnEdge(wheel, false)
	}
	pulse(domain.WheelFront, frontWidth)
	pulse(domain.WheelRear, rearWidth)
	a.core.OnLeverSample(lever)
}

func TestDefaultConfig_Validates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestConfig_Validate_Errors(t *testing.T) {
	valid := DefaultConfig()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero tick interval", func(c *Config) { c.TickInterval = 0 }},
		{"negative lever interval", func(c *Config) { c.LeverInterval = -time.Second }},
		{"zero front pulse", func(c *Config) { c.FrontPulse = 0 }},
		{"front period not above pulse", func(c *Config) { c.FrontPeriod = c.FrontPulse }},
		{"rear period not above pulse", func(c *Config) { c.RearPeriod = c.RearPulse }},
		{"negative duration", func(c *Config) { c.Duration = -time.Second }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			if !errors.Is(err, domain.ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfig_SetDefaults_FillsZeroFields(t *testing.T) {
	var cfg Config
	cfg.SetDefaults()

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() after SetDefaults = %v, want nil", err)
	}
	if cfg.LeverReading != 0 {
		t.Errorf("LeverReading = %d, want 0 (full squeeze kept)", cfg.LeverReading)
	}
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FrontPeriod = cfg.FrontPulse / 2

	if _, err := New(cfg); !errors.Is(err, domain.ErrInvalidConfig) {
		t.Errorf("New() error = %v, want ErrInvalidConfig", err)
	}
}

func TestABS_StartStop(t *testing.T) {
	a := newIdleABS(t)

	if got := a.State(); got != "Stopped" {
		t.Errorf("initial State() = %s, want Stopped", got)
	}

	if err := a.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if got := a.State(); got != "Running" {
		t.Errorf("State() after Start = %s, want Running", got)
	}

	if err := a.Start(context.Background()); err != domain.ErrAlreadyRunning {
		t.Errorf("second Start() = %v, want ErrAlreadyRunning", err)
	}

	if err := a.Stop(context.Background()); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
	if got := a.State(); got != "Stopped" {
		t.Errorf("State() after Stop = %s, want Stopped", got)
	}

	if err := a.Stop(context.Background()); err != domain.ErrNotRunning {
		t.Errorf("second Stop() = %v, want ErrNotRunning", err)
	}
}

func TestABS_StatusReflectsCycles(t *testing.T) {
	a := newIdleABS(t)

	if err := a.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer a.Stop(context.Background())

	// Front wheel dragging, lever fully squeezed.
	drive(a, 200, 60, 0)

	s := a.Status()
	if s.Classification != FrontSlower {
		t.Errorf("Classification = %v, want FrontSlower", s.Classification)
	}
	if s.Front != domain.CommandMin {
		t.Errorf("Front = %d, want %d (released)", s.Front, domain.CommandMin)
	}
	if want := domain.Command(domain.CommandBase + 128*domain.CommandScale); s.Rear != want {
		t.Errorf("Rear = %d, want %d", s.Rear, want)
	}
	if s.Cycles != 1 {
		t.Errorf("Cycles = %d, want 1", s.Cycles)
	}
}

// recordingHandler collects every event it sees.
type recordingHandler struct {
	BaseEventHandler
	mu           sync.Mutex
	stateChanges []StateChangeEvent
	cycles       []CycleEvent
	classChanges [][2]Classification
}

func (h *recordingHandler) OnStateChange(e StateChangeEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stateChanges = append(h.stateChanges, e)
}

func (h *recordingHandler) OnCycle(e CycleEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cycles = append(h.cycles, e)
}

func (h *recordingHandler) OnClassificationChange(previous, current Classification) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.classChanges = append(h.classChanges, [2]Classification{previous, current})
}

func TestABS_EventFanOut(t *testing.T) {
	handler := &recordingHandler{}
	a := newIdleABS(t, WithEventHandler(handler))

	if err := a.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	drive(a, 90, 90, 0)   // balanced
	drive(a, 200, 60, 0)  // front locks
	drive(a, 200, 60, 40) // still locked, lighter lever

	if err := a.Stop(context.Background()); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}

	handler.mu.Lock()
	defer handler.mu.Unlock()

	if len(handler.cycles) != 3 {
		t.Fatalf("got %d cycle events, want 3", len(handler.cycles))
	}
	if handler.cycles[1].Classification != FrontSlower {
		t.Errorf("cycle 1 classification = %v, want FrontSlower", handler.cycles[1].Classification)
	}
	if handler.cycles[2].Lever != 40 {
		t.Errorf("cycle 2 lever = %d, want 40", handler.cycles[2].Lever)
	}

	if len(handler.classChanges) != 1 {
		t.Fatalf("got %d classification changes, want 1", len(handler.classChanges))
	}
	if handler.classChanges[0] != [2]Classification{Balanced, FrontSlower} {
		t.Errorf("classification change = %v, want Balanced->FrontSlower", handler.classChanges[0])
	}

	// Starting, Running, Stopping, Stopped.
	if len(handler.stateChanges) != 4 {
		t.Fatalf("got %d state changes, want 4", len(handler.stateChanges))
	}
	if last := handler.stateChanges[3]; last.Current != "Stopped" {
		t.Errorf("final state change = %s, want Stopped", last.Current)
	}
}

// fakePlugin records its lifecycle calls.
type fakePlugin struct {
	name     string
	initErr  error
	mu       sync.Mutex
	calls    *[]string
	gotSinks bool
}

func (p *fakePlugin) Name() string { return p.name }

func (p *fakePlugin) Initialize(_ context.Context, cfg PluginConfig) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	*p.calls = append(*p.calls, "init "+p.name)
	p.gotSinks = cfg.EdgeSink != nil && cfg.LeverSink != nil && cfg.Logger != nil
	return p.initErr
}

func (p *fakePlugin) Shutdown(context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	*p.calls = append(*p.calls, "stop "+p.name)
	return nil
}

func TestABS_PluginLifecycleOrder(t *testing.T) {
	var calls []string
	first := &fakePlugin{name: "first", calls: &calls}
	second := &fakePlugin{name: "second", calls: &calls}

	a := newIdleABS(t, WithPlugin(first), WithPlugin(second))

	if err := a.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := a.Stop(context.Background()); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}

	want := []string{"init first", "init second", "stop second", "stop first"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call %d = %s, want %s", i, calls[i], want[i])
		}
	}
	if !first.gotSinks {
		t.Error("plugin did not receive sinks and logger")
	}
}

func TestABS_PluginInitFailureCrashes(t *testing.T) {
	var calls []string
	bad := &fakePlugin{name: "bad", calls: &calls, initErr: fmt.Errorf("no disk")}

	a := newIdleABS(t, WithPlugin(bad))

	err := a.Start(context.Background())
	if err == nil {
		t.Fatal("Start() = nil, want error")
	}
	if got := a.State(); got != "Crashed" {
		t.Errorf("State() = %s, want Crashed", got)
	}
}

func TestABS_OnceStopsAfterFirstCycle(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Once = true

	a, err := New(cfg, WithExternalInputs(), WithTickSource(blockingTickSource{}))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := a.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	drive(a, 90, 90, 0)

	deadline := time.Now().Add(2 * time.Second)
	for a.State() != "Stopped" {
		if time.Now().After(deadline) {
			t.Fatalf("controller still %s after deadline", a.State())
		}
		time.Sleep(5 * time.Millisecond)
	}

	if got := a.Status().Cycles; got != 1 {
		t.Errorf("Cycles = %d, want 1", got)
	}
}

func TestABS_DurationStopsRun(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Duration = 30 * time.Millisecond

	a, err := New(cfg, WithExternalInputs(), WithTickSource(blockingTickSource{}))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := a.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for a.State() != "Stopped" {
		if time.Now().After(deadline) {
			t.Fatalf("controller still %s after deadline", a.State())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

package abs

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/bft-labs/bikeabs/internal/adapters/sim"
	"github.com/bft-labs/bikeabs/internal/app"
	"github.com/bft-labs/bikeabs/internal/control"
	"github.com/bft-labs/bikeabs/internal/domain"
	"github.com/bft-labs/bikeabs/internal/ports"
	"github.com/bft-labs/bikeabs/pkg/log"
)

// ABS is the anti-lock braking controller. Construct it with New, then
// Start and Stop it; Status reports the current decision and commands.
type ABS struct {
	cfg       Config
	logger    Logger
	core      *control.Core
	recorder  *sim.Recorder
	lifecycle *app.Lifecycle
	handlers  []EventHandler
	plugins   []Plugin

	tickSource     ports.TickSource
	frontSource    ports.EdgeSource
	rearSource     ports.EdgeSource
	leverSource    ports.LeverSource
	externalInputs bool

	cycles    atomic.Uint64
	lastClass atomic.Int32
}

// Status is a point-in-time snapshot of the controller.
type Status struct {
	// State is the lifecycle state name.
	State string

	// Classification is the current wheel lock decision.
	Classification Classification

	// Front and Rear are the latest commands written, when the default
	// recording actuator is in use. Zero until the first cycle completes.
	Front Command
	Rear  Command

	// Cycles is the number of control cycles completed.
	Cycles uint64
}

// New creates a controller from the configuration and options. The config
// is defaulted and validated; a nil-safe logger and a recording actuator
// are installed unless options replace them.
func New(cfg Config, opts ...Option) (*ABS, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.logger == nil {
		o.logger = log.NewNoopLogger()
	}

	a := &ABS{
		cfg:            cfg,
		logger:         o.logger,
		handlers:       o.handlers,
		plugins:        o.plugins,
		externalInputs: o.externalInputs,
	}

	actuator := o.actuator
	if actuator == nil {
		a.recorder = sim.NewRecorder()
		actuator = a.recorder
	}

	a.core = control.NewCore(actuator, o.logger)
	a.core.SetObserver(a.emitCycle)
	a.lifecycle = app.NewLifecycle(o.logger, lifecycleEmitter{a})

	a.tickSource = o.tickSource
	if a.tickSource == nil {
		a.tickSource = sim.NewTickSource(cfg.TickInterval)
	}
	a.frontSource = o.frontSource
	if a.frontSource == nil {
		a.frontSource = sim.NewWheel(domain.WheelFront, cfg.FrontPulse, cfg.FrontPeriod)
	}
	a.rearSource = o.rearSource
	if a.rearSource == nil {
		a.rearSource = sim.NewWheel(domain.WheelRear, cfg.RearPulse, cfg.RearPeriod)
	}
	a.leverSource = o.leverSource
	if a.leverSource == nil {
		a.leverSource = sim.NewLever(cfg.LeverInterval, cfg.LeverReading)
	}

	return a, nil
}

// Start brings the controller up: plugins are initialized, then the signal
// sources start feeding the core. It returns once the controller is
// running; use Stop or cfg.Duration to bring it down.
func (a *ABS) Start(ctx context.Context) error {
	if !a.lifecycle.CanStart() {
		return domain.ErrAlreadyRunning
	}
	if err := a.lifecycle.TransitionTo(app.StateStarting, "start requested"); err != nil {
		return err
	}

	// The run is scoped to the caller's context, bounded by cfg.Duration
	// when one is set.
	var runCtx context.Context
	var cancel context.CancelFunc
	if a.cfg.Duration > 0 {
		runCtx, cancel = context.WithTimeout(ctx, a.cfg.Duration)
	} else {
		runCtx, cancel = context.WithCancel(ctx)
	}
	a.lifecycle.SetCancel(cancel)

	pluginCfg := a.pluginConfig()
	for _, p := range a.plugins {
		if err := p.Initialize(runCtx, pluginCfg); err != nil {
			cancel()
			_ = a.lifecycle.TransitionTo(app.StateCrashed, "plugin initialization failed")
			return fmt.Errorf("initialize plugin %s: %w", p.Name(), err)
		}
	}

	a.startWorker(runCtx, "tick", func(ctx context.Context) error {
		return a.tickSource.Run(ctx, a.core)
	})
	if !a.externalInputs {
		a.startWorker(runCtx, "front wheel", func(ctx context.Context) error {
			return a.frontSource.Run(ctx, a.core)
		})
		a.startWorker(runCtx, "rear wheel", func(ctx context.Context) error {
			return a.rearSource.Run(ctx, a.core)
		})
		a.startWorker(runCtx, "lever", func(ctx context.Context) error {
			return a.leverSource.Run(ctx, a.core)
		})
	}

	// Winds the controller down when the run context expires, whether
	// from cfg.Duration or a source failure. A concurrent explicit Stop
	// wins the Stopping transition; the loser backs off.
	go func() {
		<-runCtx.Done()
		_ = a.stop(context.Background(), "run context done")
	}()

	return a.lifecycle.TransitionTo(app.StateRunning, "all workers started")
}

// Stop winds the controller down: the signal sources are cancelled, workers
// joined and plugins shut down in reverse registration order.
func (a *ABS) Stop(ctx context.Context) error {
	return a.stop(ctx, "stop requested")
}

// Wait blocks until the controller has stopped. Useful with cfg.Duration.
func (a *ABS) Wait() {
	a.lifecycle.Wait()
}

// State returns the lifecycle state name.
func (a *ABS) State() string {
	return a.lifecycle.State().String()
}

// Status returns a snapshot of the controller. Front and Rear are only
// populated when the default recording actuator is in use.
func (a *ABS) Status() Status {
	s := Status{
		State:          a.lifecycle.State().String(),
		Classification: a.core.Classification(),
		Cycles:         a.cycles.Load(),
	}
	if a.recorder != nil {
		if c, ok := a.recorder.Command(domain.WheelFront); ok {
			s.Front = c
		}
		if c, ok := a.recorder.Command(domain.WheelRear); ok {
			s.Rear = c
		}
	}
	return s
}

func (a *ABS) stop(ctx context.Context, reason string) error {
	if !a.lifecycle.CanStop() {
		return domain.ErrNotRunning
	}
	if err := a.lifecycle.TransitionTo(app.StateStopping, reason); err != nil {
		return err
	}

	a.lifecycle.Cancel()
	waitErr := a.lifecycle.WaitWithTimeout(app.ShutdownTimeout)

	for i := len(a.plugins) - 1; i >= 0; i-- {
		p := a.plugins[i]
		if err := p.Shutdown(ctx); err != nil {
			a.logger.Error("plugin shutdown failed",
				log.String("plugin", p.Name()),
				log.Err(err),
			)
		}
	}

	if waitErr != nil {
		_ = a.lifecycle.TransitionTo(app.StateCrashed, "shutdown timeout")
		return waitErr
	}
	return a.lifecycle.TransitionTo(app.StateStopped, "all workers stopped")
}

func (a *ABS) startWorker(ctx context.Context, name string, run func(context.Context) error) {
	a.lifecycle.AddWorker()
	go func() {
		defer a.lifecycle.WorkerDone()
		err := run(ctx)
		if err != nil && ctx.Err() == nil {
			a.logger.Error("worker failed",
				log.String("worker", name),
				log.Err(err),
			)
			// Take the whole rig down; half a sensor suite is worse
			// than none.
			a.lifecycle.Cancel()
		}
	}()
}

func (a *ABS) pluginConfig() PluginConfig {
	return PluginConfig{
		EdgeSink:  a.core,
		LeverSink: a.core,
		Logger:    a.logger,
	}
}

// emitCycle fans a completed cycle out to the registered handlers. It runs
// on the lever sampling goroutine.
func (a *ABS) emitCycle(c control.Cycle) {
	count := a.cycles.Add(1)

	previous := domain.Classification(a.lastClass.Swap(int32(c.Classification)))
	event := CycleEvent{
		At:             time.Now(),
		Lever:          c.Lever,
		Classification: c.Classification,
		Front:          c.Front,
		Rear:           c.Rear,
	}
	for _, h := range a.handlers {
		h.OnCycle(event)
		if previous != c.Classification {
			h.OnClassificationChange(previous, c.Classification)
		}
	}

	if a.cfg.Once && count == 1 {
		// The run-context monitor performs the actual stop.
		a.lifecycle.Cancel()
	}
}

// lifecycleEmitter adapts the ABS handler fan-out to app.EventEmitter.
type lifecycleEmitter struct {
	a *ABS
}

func (e lifecycleEmitter) OnStateChange(previous, current app.State, reason string) {
	event := StateChangeEvent{
		Previous: previous.String(),
		Current:  current.String(),
		Reason:   reason,
	}
	for _, h := range e.a.handlers {
		h.OnStateChange(event)
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	logAdapter "github.com/bft-labs/bikeabs/pkg/log"

	"github.com/bft-labs/bikeabs/internal/cliconfig"
	"github.com/bft-labs/bikeabs/internal/domain"
	"github.com/bft-labs/bikeabs/pkg/abs"
	"github.com/bft-labs/bikeabs/plugins/tracelog"
	"github.com/bft-labs/bikeabs/plugins/tracewatcher"
)

const helpDescription = `
Run an anti-lock braking controller for a two-wheel vehicle.

The controller compares pulse widths from the two wheel sensors; when one
wheel drags far enough behind the other its brake is released for the rest
of the cycle while the lever keeps commanding the healthy wheel.

By default the controller runs against a simulated rig. Record rides with
--trace-out and play them back with --replay; configure via file, env, or
flags.
`

var exampleUsage = strings.TrimSpace(`
  bikeabs --duration 10s --lever 0
  bikeabs --front-pulse 120ms --rear-pulse 60ms --trace-out ride.jsonl
  bikeabs --replay ride.jsonl --duration 30s
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:     "bikeabs",
		Short:   "Anti-lock braking controller for two-wheel vehicles",
		Long:    strings.TrimSpace(helpDescription),
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load config file first (default $HOME/.bikeabs/config.toml),
			// then env, then flag overrides.
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			if cfg.Verbose {
				log = log.Level(zerolog.DebugLevel)
			} else {
				log = log.Level(zerolog.InfoLevel)
			}
			log.Info().Interface("config", cfg).Msg("configuration")

			libCfg := abs.Config{
				TickInterval:  cfg.TickInterval,
				LeverInterval: cfg.LeverInterval,
				LeverReading:  uint8(cfg.LeverReading),
				FrontPulse:    cfg.FrontPulse,
				FrontPeriod:   cfg.FrontPeriod,
				RearPulse:     cfg.RearPulse,
				RearPeriod:    cfg.RearPeriod,
				Duration:      cfg.Duration,
				Once:          cfg.Once,
			}

			opts := []abs.Option{
				abs.WithLogger(logAdapter.NewZerologAdapterWithLogger(log)),
			}
			if cfg.TraceOut != "" {
				opts = append(opts, tracelog.WithTraceLog(tracelog.Config{Path: cfg.TraceOut}))
			}
			if cfg.Replay != "" {
				// Replayed traces drive the controller instead of the
				// simulated sensors.
				opts = append(opts,
					abs.WithExternalInputs(),
					tracewatcher.WithTraceReplay(tracewatcher.Config{Path: cfg.Replay}),
				)
			}

			a, err := abs.New(libCfg, opts...)
			if err != nil {
				return fmt.Errorf("create controller: %w", err)
			}

			// Setup signal handling for graceful shutdown
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			if err := a.Start(ctx); err != nil {
				return fmt.Errorf("start controller: %w", err)
			}

			// Detect completion for bounded runs.
			doneCh := make(chan struct{})
			go func() {
				ticker := time.NewTicker(100 * time.Millisecond)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						state := a.State()
						if state == "Stopped" || state == "Crashed" {
							close(doneCh)
							return
						}
					}
				}
			}()

			select {
			case <-sigCh:
				log.Info().Msg("received signal, stopping...")
			case <-doneCh:
				if a.State() == "Crashed" {
					log.Error().Msg("controller crashed")
				}
			}

			if err := a.Stop(context.Background()); err != nil && !errors.Is(err, domain.ErrNotRunning) {
				return fmt.Errorf("stop controller: %w", err)
			}

			status := a.Status()
			log.Info().
				Uint64("cycles", status.Cycles).
				Str("classification", status.Classification.String()).
				Int("front", int(status.Front)).
				Int("rear", int(status.Rear)).
				Msg("final status")
			return nil
		},
	}

	// Flags
	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.bikeabs/config.toml)")
	root.Flags().DurationVar(&cfg.TickInterval, "tick", cfg.TickInterval, "time base resolution")
	root.Flags().DurationVar(&cfg.LeverInterval, "lever-interval", cfg.LeverInterval, "lever sampling cadence")
	root.Flags().IntVar(&cfg.LeverReading, "lever", cfg.LeverReading, "lever position (0 full squeeze, 255 released)")

	root.Flags().DurationVar(&cfg.FrontPulse, "front-pulse", cfg.FrontPulse, "front sensor pulse width")
	root.Flags().DurationVar(&cfg.FrontPeriod, "front-period", cfg.FrontPeriod, "front sensor period")
	root.Flags().DurationVar(&cfg.RearPulse, "rear-pulse", cfg.RearPulse, "rear sensor pulse width")
	root.Flags().DurationVar(&cfg.RearPeriod, "rear-period", cfg.RearPeriod, "rear sensor period")

	root.Flags().DurationVar(&cfg.Duration, "duration", cfg.Duration, "run duration (0 runs until interrupted)")
	root.Flags().StringVar(&cfg.TraceOut, "trace-out", cfg.TraceOut, "append per-cycle telemetry to this JSONL file")
	root.Flags().StringVar(&cfg.Replay, "replay", cfg.Replay, "replay sensor events from this JSONL trace")
	root.Flags().BoolVar(&cfg.Once, "once", cfg.Once, "stop after the first completed control cycle")
	root.Flags().BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable debug logging")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("bikeabs failed")
		os.Exit(1)
	}
}

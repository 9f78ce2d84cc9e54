package abs

import (
	"context"

	"github.com/bft-labs/bikeabs/internal/ports"
	"github.com/bft-labs/bikeabs/pkg/log"
)

// Logger is the logging interface the controller and its plugins use.
type Logger = log.Logger

// PluginConfig is passed to each plugin during initialization. It exposes
// the controller's input sinks so plugins can inject sensor events, and the
// configured logger.
type PluginConfig struct {
	// EdgeSink accepts wheel sensor edges.
	EdgeSink ports.EdgeSink

	// LeverSink accepts lever samples.
	LeverSink ports.LeverSink

	// Logger is the controller's logger.
	Logger Logger
}

// Plugin extends the controller with optional functionality. Plugins are
// initialized in registration order during Start and shut down in reverse
// order during Stop.
type Plugin interface {
	// Name returns the plugin identifier.
	Name() string

	// Initialize sets up the plugin. The context is cancelled when the
	// controller stops.
	Initialize(ctx context.Context, cfg PluginConfig) error

	// Shutdown releases the plugin's resources.
	Shutdown(ctx context.Context) error
}

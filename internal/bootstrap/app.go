// Package bootstrap handles application initialization and lifecycle management
// for the sales-agent service.
package bootstrap

import (
	"context"
	"fmt"

	infralogger "github.com/jonesrussell/north-cloud/sales-agent/infrastructure/logger"
	"github.com/jonesrussell/north-cloud/sales-agent/infrastructure/profiling"
)

// Start initializes the service and serves until ctx is cancelled or a
// termination signal arrives.
func Start(ctx context.Context, o Overrides) error {
	// Phase 1: Load config and create logger
	cfg, err := LoadConfig(o)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := CreateLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Phase 2: Profiling side channels (if enabled)
	if pprofServer := profiling.StartPprofServer(log); pprofServer != nil {
		defer func() { _ = pprofServer.Close() }()
	}

	profiler, err := profiling.StartPyroscope(profiling.PyroscopeOptions{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		Environment: cfg.App.Environment,
	}, log)
	if err != nil {
		log.Warn("Continuous profiling unavailable", infralogger.Error(err))
	}
	defer func() { _ = profiler.Stop() }()

	log.Info("Starting Sales Agent API",
		infralogger.String("name", cfg.App.Name),
		infralogger.String("environment", cfg.App.Environment),
		infralogger.String("address", cfg.Server.Address()),
		infralogger.Bool("debug", cfg.App.Debug),
	)

	// Phase 3: Setup and run HTTP server
	server, err := SetupHTTPServer(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to setup HTTP server: %w", err)
	}

	if runErr := server.RunWithGracefulShutdown(ctx); runErr != nil {
		log.Error("Server error", infralogger.Error(runErr))
		return fmt.Errorf("server error: %w", runErr)
	}

	log.Info("Sales Agent API stopped")
	return nil
}

package profiling

import (
	"fmt"
	"os"
	"runtime"

	"github.com/grafana/pyroscope-go"
	"github.com/jonesrussell/north-cloud/sales-agent/infrastructure/logger"
)

const defaultPyroscopeServer = "http://pyroscope:4040"

// PyroscopeOptions identifies the profiled application.
type PyroscopeOptions struct {
	ServiceName string
	Version     string
	Environment string
}

// PyroscopeProfiler wraps a running Pyroscope profiler.
type PyroscopeProfiler struct {
	profiler *pyroscope.Profiler
}

// StartPyroscope starts continuous profiling when
// ENABLE_CONTINUOUS_PROFILING=true, sending to PYROSCOPE_SERVER_URL
// (default http://pyroscope:4040). It returns (nil, nil) when disabled.
func StartPyroscope(opts PyroscopeOptions, log logger.Logger) (*PyroscopeProfiler, error) {
	if os.Getenv("ENABLE_CONTINUOUS_PROFILING") != enabledEnvValue {
		return nil, nil
	}

	serverURL := os.Getenv("PYROSCOPE_SERVER_URL")
	if serverURL == "" {
		serverURL = defaultPyroscopeServer
	}

	cfg := pyroscope.Config{
		ApplicationName: "north-cloud." + opts.ServiceName,
		ServerAddress:   serverURL,
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocObjects,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileInuseObjects,
			pyroscope.ProfileInuseSpace,
			pyroscope.ProfileGoroutines,
		},
		Tags: map[string]string{
			"environment": opts.Environment,
			"version":     opts.Version,
			"hostname":    hostname(),
			"go_version":  runtime.Version(),
		},
	}

	profiler, err := pyroscope.Start(cfg)
	if err != nil {
		return nil, fmt.Errorf("start pyroscope profiler: %w", err)
	}

	log.Info("Pyroscope continuous profiling started",
		logger.String("application", cfg.ApplicationName),
		logger.String("server", serverURL),
		logger.String("environment", opts.Environment),
	)

	return &PyroscopeProfiler{profiler: profiler}, nil
}

// Stop flushes and stops the profiler. Safe on a nil receiver.
func (p *PyroscopeProfiler) Stop() error {
	if p == nil || p.profiler == nil {
		return nil
	}
	return p.profiler.Stop()
}

func hostname() string {
	name, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return name
}

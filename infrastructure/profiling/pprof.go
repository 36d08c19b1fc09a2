// Package profiling starts optional profiling side channels: a localhost
// pprof server and Pyroscope continuous profiling.
package profiling

import (
	"errors"
	"net"
	"net/http"
	"net/http/pprof"
	"os"
	"time"

	"github.com/jonesrussell/north-cloud/sales-agent/infrastructure/logger"
)

const (
	defaultPprofPort       = "6060"
	pprofReadHeaderTimeout = 5 * time.Second
	enabledEnvValue        = "true"
)

// StartPprofServer serves the pprof endpoints on localhost:$PPROF_PORT
// (default 6060) when ENABLE_PROFILING=true. It returns immediately; the
// returned server is nil when profiling is disabled.
func StartPprofServer(log logger.Logger) *http.Server {
	if os.Getenv("ENABLE_PROFILING") != enabledEnvValue {
		return nil
	}

	port := os.Getenv("PPROF_PORT")
	if port == "" {
		port = defaultPprofPort
	}

	// localhost only; never expose profiles on the public interface.
	srv := &http.Server{
		Addr:              net.JoinHostPort("localhost", port),
		Handler:           pprofMux(),
		ReadHeaderTimeout: pprofReadHeaderTimeout,
	}

	go func() {
		log.Info("Starting pprof server",
			logger.String("address", srv.Addr),
			logger.String("profiles", "http://"+srv.Addr+"/debug/pprof/"),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Warn("pprof server stopped", logger.Error(err))
		}
	}()

	return srv
}

func pprofMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	return mux
}

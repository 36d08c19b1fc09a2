package bootstrap

import (
	"context"

	infragin "github.com/jonesrussell/north-cloud/sales-agent/infrastructure/gin"
	infralogger "github.com/jonesrussell/north-cloud/sales-agent/infrastructure/logger"
	"github.com/jonesrussell/north-cloud/sales-agent/internal/api"
	"github.com/jonesrussell/north-cloud/sales-agent/internal/config"
)

// SetupHTTPServer creates and configures the HTTP server.
func SetupHTTPServer(ctx context.Context, cfg *config.Config, log infralogger.Logger) (*infragin.Server, error) {
	if cfg.CORS.Permissive() {
		log.Warn("CORS allows any origin with credentials; restrict cors.allowed_origins before production",
			infralogger.Strings("allowed_origins", cfg.CORS.AllowedOrigins),
		)
	}
	return api.NewServer(ctx, cfg, log)
}

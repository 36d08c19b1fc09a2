// Package api assembles the sales-agent HTTP server.
package api

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	infragin "github.com/jonesrussell/north-cloud/sales-agent/infrastructure/gin"
	infralogger "github.com/jonesrussell/north-cloud/sales-agent/infrastructure/logger"
	"github.com/jonesrussell/north-cloud/sales-agent/infrastructure/metrics"
	"github.com/jonesrussell/north-cloud/sales-agent/internal/config"
	"github.com/jonesrussell/north-cloud/sales-agent/internal/docs"
)

// Description is the product blurb published in the OpenAPI document.
const Description = "AI-powered conversational life insurance sales agent"

const metricsNamespace = "sales_agent"

// DocsInfo derives the OpenAPI metadata from the settings.
func DocsInfo(cfg *config.Config) docs.Info {
	return docs.Info{
		Title:       cfg.App.Name,
		Version:     cfg.App.Version,
		Description: Description,
	}
}

// NewServer creates the HTTP server with every route mounted.
func NewServer(ctx context.Context, cfg *config.Config, log infralogger.Logger) (*infragin.Server, error) {
	docsHandler, err := docs.NewHandler(ctx, DocsInfo(cfg))
	if err != nil {
		return nil, fmt.Errorf("build api docs: %w", err)
	}

	httpMetrics := metrics.NewHTTPMetrics(metricsNamespace)

	return infragin.NewServerBuilder(cfg.App.Name, cfg.Server.Port).
		WithLogger(log).
		WithHost(cfg.Server.Host).
		WithDebug(cfg.App.Debug).
		WithVersion(cfg.App.Version).
		WithCORS(corsConfig(cfg.CORS)).
		WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.IdleTimeout).
		WithShutdownTimeout(cfg.Server.ShutdownTimeout).
		WithMiddleware(httpMetrics.Middleware()).
		WithRoutes(func(router *gin.Engine) {
			SetupRoutes(router, cfg, docsHandler, httpMetrics)
		}).
		Build(), nil
}

func corsConfig(cors config.CORSConfig) infragin.CORSConfig {
	return infragin.CORSConfig{
		Enabled:          true,
		AllowedOrigins:   cors.AllowedOrigins,
		AllowedMethods:   cors.AllowedMethods,
		AllowedHeaders:   cors.AllowedHeaders,
		AllowCredentials: cors.CredentialsAllowed(),
	}
}

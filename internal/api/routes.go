package api

import (
	"github.com/gin-gonic/gin"
	infragin "github.com/jonesrussell/north-cloud/sales-agent/infrastructure/gin"
	"github.com/jonesrussell/north-cloud/sales-agent/infrastructure/metrics"
	"github.com/jonesrussell/north-cloud/sales-agent/internal/config"
	"github.com/jonesrussell/north-cloud/sales-agent/internal/docs"
	"github.com/jonesrussell/north-cloud/sales-agent/internal/handler"
)

// SetupRoutes configures all routes.
func SetupRoutes(router *gin.Engine, cfg *config.Config, docsHandler *docs.Handler, httpMetrics *metrics.HTTPMetrics) {
	rootHandler := handler.NewRootHandler(cfg.App.Version)
	healthHandler := handler.NewHealthHandler(cfg.App.Version, cfg.App.Environment)

	router.GET("/", rootHandler.Root)
	infragin.RegisterHealthRoutes(router, healthHandler.HealthCheck)

	// Both spellings are registered so /api is served in place instead of
	// through gin's trailing-slash redirect, which bypasses the middleware chain.
	v := router.Group("/api")
	v.GET("", handler.APIRoot)
	v.GET("/", handler.APIRoot)

	router.GET("/metrics", gin.WrapH(httpMetrics.Handler()))
	docsHandler.Register(router)
}

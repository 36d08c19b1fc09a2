package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusHealthy is the only status the liveness endpoint reports.
const StatusHealthy = "healthy"

// HealthHandler handles health check requests.
type HealthHandler struct {
	version     string
	environment string
}

// NewHealthHandler creates a HealthHandler that reports the given version and environment.
func NewHealthHandler(version, environment string) *HealthHandler {
	return &HealthHandler{version: version, environment: environment}
}

// HealthCheck always reports healthy; nothing downstream is probed.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      StatusHealthy,
		"version":     h.version,
		"environment": h.environment,
	})
}

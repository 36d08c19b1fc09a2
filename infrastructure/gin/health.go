package gin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jonesrussell/north-cloud/sales-agent/infrastructure/monitoring"
)

// RegisterHealthRoutes adds the health endpoints to router:
//   - GET /health         the service-specific handler
//   - HEAD /health        200 with no body, for load balancers
//   - GET /health/memory  runtime memory statistics
func RegisterHealthRoutes(router gin.IRoutes, health gin.HandlerFunc) {
	router.GET("/health", health)
	router.HEAD("/health", headHealthHandler)
	router.GET("/health/memory", memoryHealthHandler)
}

func headHealthHandler(c *gin.Context) {
	c.Status(http.StatusOK)
}

func memoryHealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, monitoring.ReadMemoryHealth())
}

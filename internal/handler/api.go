package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIVersion is reported by GET /api/. It is fixed and independent of app.version.
const APIVersion = "1.0.0"

// APIRoot serves GET /api/ and GET /api.
func APIRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": Message,
		"version": APIVersion,
	})
}

// Package handler contains the HTTP handlers of the sales-agent API.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Message is the greeting returned by the root and API root endpoints.
const Message = "AI Life Insurance Sales Agent API"

// DocsPath is where the interactive API documentation is served.
const DocsPath = "/docs"

// RootHandler serves GET /.
type RootHandler struct {
	version string
}

// NewRootHandler creates a RootHandler reporting the configured version.
func NewRootHandler(version string) *RootHandler {
	return &RootHandler{version: version}
}

// Root returns the greeting, the configured version and the docs path.
func (h *RootHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": Message,
		"version": h.version,
		"docs":    DocsPath,
	})
}

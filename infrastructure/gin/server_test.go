package gin_test

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	ginpkg "github.com/gin-gonic/gin"
	infragin "github.com/jonesrussell/north-cloud/sales-agent/infrastructure/gin"
	"github.com/jonesrussell/north-cloud/sales-agent/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, port int) *infragin.Server {
	t.Helper()

	return infragin.NewServerBuilder("test-service", port).
		WithLogger(logger.NewNop()).
		WithHost("127.0.0.1").
		WithShutdownTimeout(time.Second).
		WithRoutes(func(r *ginpkg.Engine) {
			infragin.RegisterHealthRoutes(r, func(c *ginpkg.Context) {
				c.JSON(http.StatusOK, ginpkg.H{"status": "healthy"})
			})
			r.GET("/ping", func(c *ginpkg.Context) { c.String(http.StatusOK, "pong") })
		}).
		Build()
}

func TestServer_NotFoundIsJSON(t *testing.T) {
	t.Parallel()

	srv := newServer(t, 0)

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nonexistent", http.NoBody))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Not Found"}`, w.Body.String())
}

func TestServer_MethodNotAllowedIsJSON(t *testing.T) {
	t.Parallel()

	srv := newServer(t, 0)

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/ping", http.NoBody))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.JSONEq(t, `{"detail":"Method Not Allowed"}`, w.Body.String())
}

func TestServer_HealthRoutes(t *testing.T) {
	t.Parallel()

	srv := newServer(t, 0)

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodHead, "/health", http.NoBody))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())

	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/memory", http.NoBody))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "heap_alloc_mb")
}

func TestServer_StartFailsWhenPortInUse(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	port := ln.Addr().(*net.TCPAddr).Port
	srv := newServer(t, port)

	err = srv.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), strconv.Itoa(port))
}

func TestServer_RunWithGracefulShutdown_StopsOnCancel(t *testing.T) {
	t.Parallel()

	srv := newServer(t, 0)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- srv.RunWithGracefulShutdown(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("RunWithGracefulShutdown did not return after context cancellation")
	}
}

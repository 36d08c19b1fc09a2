package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	infraconfig "github.com/jonesrussell/north-cloud/sales-agent/infrastructure/config"
	infralogger "github.com/jonesrussell/north-cloud/sales-agent/infrastructure/logger"
	"github.com/jonesrussell/north-cloud/sales-agent/internal/api"
	"github.com/jonesrussell/north-cloud/sales-agent/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOrigin = "https://agent.example.com"

func testConfig(version string) *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        config.DefaultAppName,
			Version:     version,
			Environment: "test",
		},
		Server: infraconfig.ServerConfig{
			Host:            "127.0.0.1",
			Port:            8000,
			ReadTimeout:     time.Second,
			WriteTimeout:    time.Second,
			IdleTimeout:     time.Second,
			ShutdownTimeout: time.Second,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"*"},
			AllowedHeaders: []string{"*"},
		},
	}
}

func newHandler(t *testing.T, version string) http.Handler {
	t.Helper()

	srv, err := api.NewServer(context.Background(), testConfig(version), infralogger.NewNop())
	require.NoError(t, err)
	return srv.Router()
}

func do(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func getJSON(t *testing.T, h http.Handler, path string) map[string]any {
	t.Helper()

	w := do(h, httptest.NewRequest(http.MethodGet, path, http.NoBody))
	require.Equal(t, http.StatusOK, w.Code, path)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRoot(t *testing.T) {
	body := getJSON(t, newHandler(t, "0.1.0"), "/")

	assert.Equal(t, map[string]any{
		"message": "AI Life Insurance Sales Agent API",
		"version": "0.1.0",
		"docs":    "/docs",
	}, body)
}

func TestHealth(t *testing.T) {
	h := newHandler(t, "0.1.0")

	body := getJSON(t, h, "/health")
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "0.1.0", body["version"])
	assert.Equal(t, "test", body["environment"])

	w := do(h, httptest.NewRequest(http.MethodHead, "/health", http.NoBody))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestAPIRoot(t *testing.T) {
	body := getJSON(t, newHandler(t, "0.1.0"), "/api/")

	assert.Equal(t, "AI Life Insurance Sales Agent API", body["message"])
	assert.Equal(t, "1.0.0", body["version"])
}

func TestAPIRoot_WithoutTrailingSlashRunsMiddleware(t *testing.T) {
	h := newHandler(t, "0.1.0")

	req := httptest.NewRequest(http.MethodGet, "/api", http.NoBody)
	req.Header.Set("Origin", testOrigin)
	w := do(h, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Location"))
	assert.Equal(t, testOrigin, w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "1.0.0", body["version"])

	m := do(h, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
	assert.Contains(t, m.Body.String(), `sales_agent_http_requests_total{method="GET",route="/api",status="200"} 1`)
}

func TestVersionOnlyAffectsRootAndHealth(t *testing.T) {
	h := newHandler(t, "9.9.9")

	assert.Equal(t, "9.9.9", getJSON(t, h, "/")["version"])
	assert.Equal(t, "9.9.9", getJSON(t, h, "/health")["version"])
	assert.Equal(t, "1.0.0", getJSON(t, h, "/api/")["version"])
}

func TestNotFound(t *testing.T) {
	w := do(newHandler(t, "0.1.0"), httptest.NewRequest(http.MethodGet, "/nonexistent", http.NoBody))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Not Found"}`, w.Body.String())
}

func TestMethodNotAllowed(t *testing.T) {
	w := do(newHandler(t, "0.1.0"), httptest.NewRequest(http.MethodPost, "/health", http.NoBody))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.JSONEq(t, `{"detail":"Method Not Allowed"}`, w.Body.String())
}

func TestCORSPreflight_AllPaths(t *testing.T) {
	h := newHandler(t, "0.1.0")

	for _, path := range []string{"/", "/health", "/api", "/api/", "/docs", "/nonexistent"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, path, http.NoBody)
			req.Header.Set("Origin", testOrigin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			req.Header.Set("Access-Control-Request-Headers", "X-Custom, Content-Type")

			w := do(h, req)

			assert.Equal(t, http.StatusNoContent, w.Code)
			assert.Equal(t, testOrigin, w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
			assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
			assert.Equal(t, "X-Custom, Content-Type", w.Header().Get("Access-Control-Allow-Headers"))
		})
	}
}

func TestCORSSimpleRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", http.NoBody)
	req.Header.Set("Origin", testOrigin)

	w := do(newHandler(t, "0.1.0"), req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, testOrigin, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestOpenAPIDocument(t *testing.T) {
	body := getJSON(t, newHandler(t, "0.4.2"), "/openapi.json")

	info, ok := body["info"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "AI Life Insurance Sales Agent API", info["title"])
	assert.Equal(t, "0.4.2", info["version"])
	assert.Equal(t, api.Description, info["description"])

	paths, ok := body["paths"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, paths, "/")
	assert.Contains(t, paths, "/health")
	assert.Contains(t, paths, "/api/")
}

func TestDocsPages(t *testing.T) {
	h := newHandler(t, "0.1.0")

	for _, path := range []string{"/docs", "/redoc"} {
		w := do(h, httptest.NewRequest(http.MethodGet, path, http.NoBody))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html", path)
	}
}

func TestMetrics(t *testing.T) {
	h := newHandler(t, "0.1.0")

	do(h, httptest.NewRequest(http.MethodGet, "/", http.NoBody))
	do(h, httptest.NewRequest(http.MethodGet, "/missing", http.NoBody))

	w := do(h, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
	require.Equal(t, http.StatusOK, w.Code)

	out := w.Body.String()
	assert.Contains(t, out, `sales_agent_http_requests_total{method="GET",route="/",status="200"} 1`)
	assert.Contains(t, out, `sales_agent_http_requests_total{method="GET",route="unmatched",status="404"} 1`)
	assert.Contains(t, out, "sales_agent_http_request_duration_seconds")
}

func TestDocsInfo(t *testing.T) {
	info := api.DocsInfo(testConfig("3.0.0"))

	assert.Equal(t, config.DefaultAppName, info.Title)
	assert.Equal(t, "3.0.0", info.Version)
	assert.Equal(t, api.Description, info.Description)
}

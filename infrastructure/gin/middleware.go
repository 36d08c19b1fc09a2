package gin

import (
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jonesrussell/north-cloud/sales-agent/infrastructure/logger"
)

const (
	// RequestIDHeader carries the request ID in both directions.
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey is the gin context key holding the request ID.
	RequestIDKey = "request_id"

	maxRequestIDLength = 128
)

// LoggerMiddleware logs one structured line per request.
func LoggerMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		fields := []logger.Field{
			logger.String("method", c.Request.Method),
			logger.String("path", path),
			logger.Int("status", c.Writer.Status()),
			logger.Duration("duration", time.Since(start)),
			logger.String("client_ip", c.ClientIP()),
		}
		if query != "" {
			fields = append(fields, logger.String("query", query))
		}
		if id := c.GetString(RequestIDKey); id != "" {
			fields = append(fields, logger.String(RequestIDKey, id))
		}
		if !strings.HasPrefix(path, "/health") {
			fields = append(fields, logger.String("user_agent", c.Request.UserAgent()))
		}

		if len(c.Errors) > 0 {
			fields = append(fields, logger.Strings("errors", c.Errors.Errors()))
			log.Error("HTTP request with errors", fields...)
			return
		}
		log.Info("HTTP request", fields...)
	}
}

// CORSMiddleware applies the cross-origin policy in cfg through gin-contrib/cors.
//
// Requests without an Origin header pass through untouched. Preflights are
// answered with 204 and never reach the route handlers; a disallowed origin
// gets 403. When credentials are allowed together with any origin, the
// request origin is echoed back instead of "*", since browsers reject a
// wildcard origin on credentialed responses. A "*" header list mirrors the
// headers the preflight asks for.
func CORSMiddleware(cfg CORSConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) { c.Next() }
	}
	cfg.SetDefaults()

	allowAnyOrigin := cfg.AllowsAnyOrigin()
	mirrorHeaders := slices.Contains(cfg.AllowedHeaders, Wildcard)
	policy := cors.New(corsPolicy(cfg, allowAnyOrigin, mirrorHeaders))

	return func(c *gin.Context) {
		if mirrorHeaders && isPreflight(c.Request) {
			origin := c.GetHeader("Origin")
			requested := c.GetHeader("Access-Control-Request-Headers")
			if requested != "" && (allowAnyOrigin || slices.Contains(cfg.AllowedOrigins, origin)) {
				c.Header("Access-Control-Allow-Headers", requested)
			}
		}
		policy(c)
	}
}

func corsPolicy(cfg CORSConfig, allowAnyOrigin, mirrorHeaders bool) cors.Config {
	policy := cors.Config{
		AllowMethods:     cfg.AllowedMethods,
		ExposeHeaders:    cfg.ExposedHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	if slices.Contains(policy.AllowMethods, Wildcard) {
		policy.AllowMethods = AllMethods()
	}
	// Left empty when mirroring so the library does not overwrite the echo.
	if !mirrorHeaders {
		policy.AllowHeaders = cfg.AllowedHeaders
	}

	switch {
	case allowAnyOrigin && cfg.AllowCredentials:
		policy.AllowOriginFunc = func(string) bool { return true }
	case allowAnyOrigin:
		policy.AllowAllOrigins = true
	default:
		policy.AllowOrigins = cfg.AllowedOrigins
	}
	return policy
}

func isPreflight(r *http.Request) bool {
	return r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != ""
}

// RecoveryMiddleware turns a panic into a logged 500 response.
func RecoveryMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error("Panic recovered",
					logger.Any("error", err),
					logger.String("path", c.Request.URL.Path),
					logger.String("method", c.Request.Method),
					logger.String("client_ip", c.ClientIP()),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error":   "Internal server error",
					"code":    "INTERNAL_ERROR",
					"message": "An unexpected error occurred",
				})
			}
		}()

		c.Next()
	}
}

// RequestIDLoggerMiddleware assigns every request an ID and stores a logger
// carrying that ID in the request context.
//
// An inbound X-Request-ID is kept unless it is longer than 128 bytes, in
// which case a fresh ID is generated.
func RequestIDLoggerMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = newRequestID()
		}

		c.Set(RequestIDKey, requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)

		scoped := log.With(logger.String(RequestIDKey, requestID))
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), scoped))

		c.Next()
	}
}

// newRequestID returns 32 lowercase hex characters from a random UUID.
func newRequestID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Package gin provides the HTTP server plumbing for the sales-agent service:
// engine construction, the standard middleware chain, health and probe
// routes, and lifecycle management with graceful shutdown.
package gin

import (
	"slices"
	"time"
)

// Default timeout values for HTTP server configuration.
const (
	DefaultReadTimeout     = 30 * time.Second
	DefaultWriteTimeout    = 60 * time.Second
	DefaultIdleTimeout     = 120 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
	DefaultCORSMaxAge      = 10 * time.Minute
)

// Wildcard matches any origin, method or header in CORSConfig lists.
const Wildcard = "*"

// Config holds the HTTP server configuration.
type Config struct {
	// Host is the interface to bind. Empty binds all interfaces.
	Host string

	// Port is the port number to listen on.
	Port int

	// Debug enables Gin debug mode.
	Debug bool

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	CORS CORSConfig

	// ServiceName and ServiceVersion are attached to startup logs.
	ServiceName    string
	ServiceVersion string
}

// CORSConfig holds the CORS middleware configuration.
type CORSConfig struct {
	// Enabled determines whether CORS middleware is applied.
	Enabled bool

	// AllowedOrigins lists origins a cross-domain request can be executed from.
	// "*" allows every origin.
	AllowedOrigins []string

	// AllowedMethods lists methods the client may use. "*" allows all standard methods.
	AllowedMethods []string

	// AllowedHeaders lists request headers the client may send. "*" mirrors
	// whatever the preflight asks for.
	AllowedHeaders []string

	// ExposedHeaders lists response headers readable by the browser.
	ExposedHeaders []string

	// AllowCredentials indicates whether the request can include user credentials.
	AllowCredentials bool

	// MaxAge indicates how long the results of a preflight request can be cached.
	MaxAge time.Duration
}

// SetDefaults applies default values to the config where values are not set.
func (c *Config) SetDefaults() {
	if c.ReadTimeout == 0 {
		c.ReadTimeout = DefaultReadTimeout
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = DefaultWriteTimeout
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = DefaultIdleTimeout
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = DefaultShutdownTimeout
	}
	c.CORS.SetDefaults()
}

// AllMethods is the method list sent when AllowedMethods contains "*".
func AllMethods() []string {
	return []string{"DELETE", "GET", "HEAD", "OPTIONS", "PATCH", "POST", "PUT"}
}

// DefaultAllowedHeaders returns the header list used when none is configured.
func DefaultAllowedHeaders() []string {
	return []string{
		"Origin",
		"Content-Type",
		"Content-Length",
		"Accept",
		"Accept-Encoding",
		"Authorization",
		"Cache-Control",
		"X-Requested-With",
		"X-Request-ID",
	}
}

// SetDefaults applies default values to the CORS config where values are not set.
func (c *CORSConfig) SetDefaults() {
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{Wildcard}
	}
	if len(c.AllowedMethods) == 0 {
		c.AllowedMethods = AllMethods()
	}
	if len(c.AllowedHeaders) == 0 {
		c.AllowedHeaders = DefaultAllowedHeaders()
	}
	if c.MaxAge == 0 {
		c.MaxAge = DefaultCORSMaxAge
	}
}

// AllowsAnyOrigin reports whether every origin is accepted.
func (c *CORSConfig) AllowsAnyOrigin() bool {
	return slices.Contains(c.AllowedOrigins, Wildcard)
}

// NewConfig creates a new Config with CORS enabled and defaults applied.
func NewConfig(serviceName string, port int) *Config {
	cfg := &Config{
		Port:        port,
		ServiceName: serviceName,
		CORS:        CORSConfig{Enabled: true},
	}
	cfg.SetDefaults()
	return cfg
}

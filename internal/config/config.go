// Package config holds the sales-agent settings record and its loader.
package config

import (
	"slices"
	"strings"

	infraconfig "github.com/jonesrussell/north-cloud/sales-agent/infrastructure/config"
)

// Default configuration values.
const (
	DefaultAppName     = "AI Life Insurance Sales Agent API"
	DefaultAppVersion  = "0.1.0"
	DefaultEnvironment = "development"

	defaultHost = "0.0.0.0"
	defaultPort = 8000

	wildcard = "*"
)

// Config holds the application configuration.
type Config struct {
	App     AppConfig                 `yaml:"app"`
	Server  infraconfig.ServerConfig  `yaml:"server"`
	CORS    CORSConfig                `yaml:"cors"`
	Logging infraconfig.LoggingConfig `yaml:"logging"`
}

// AppConfig is the process-wide settings record echoed by the handlers.
type AppConfig struct {
	Name        string `env:"APP_NAME"    yaml:"name"`
	Version     string `env:"APP_VERSION" yaml:"version"`
	Environment string `env:"ENVIRONMENT" yaml:"environment"`
	Debug       bool   `env:"APP_DEBUG"   yaml:"debug"`
}

// CORSConfig holds the cross-origin policy. The defaults allow everything,
// credentials included.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   yaml:"allowed_origins"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   yaml:"allowed_methods"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   yaml:"allowed_headers"`
	AllowCredentials *bool    `yaml:"allow_credentials"`
}

// CredentialsAllowed reports the effective allow_credentials value.
func (c *CORSConfig) CredentialsAllowed() bool {
	return c.AllowCredentials == nil || *c.AllowCredentials
}

// Permissive reports whether any origin is accepted together with credentials.
func (c *CORSConfig) Permissive() bool {
	return slices.Contains(c.AllowedOrigins, wildcard) && c.CredentialsAllowed()
}

// Load loads configuration from the specified path. The file is optional.
func Load(path string) (*Config, error) {
	return infraconfig.LoadWithDefaults[Config](path, setDefaults)
}

func setDefaults(cfg *Config) {
	setAppDefaults(&cfg.App)
	setServerDefaults(&cfg.Server)
	setCORSDefaults(&cfg.CORS)
	cfg.Logging.SetDefaults()
}

func setAppDefaults(app *AppConfig) {
	if app.Name == "" {
		app.Name = DefaultAppName
	}
	if app.Version == "" {
		app.Version = DefaultAppVersion
	}
	if app.Environment == "" {
		app.Environment = DefaultEnvironment
	}
}

func setServerDefaults(srv *infraconfig.ServerConfig) {
	if srv.Host == "" {
		srv.Host = defaultHost
	}
	if srv.Port == 0 {
		srv.Port = defaultPort
	}
	srv.SetDefaults()
}

func setCORSDefaults(cors *CORSConfig) {
	if len(cors.AllowedOrigins) == 0 {
		cors.AllowedOrigins = []string{wildcard}
	}
	if len(cors.AllowedMethods) == 0 {
		cors.AllowedMethods = []string{wildcard}
	}
	if len(cors.AllowedHeaders) == 0 {
		cors.AllowedHeaders = []string{wildcard}
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := infraconfig.ValidateRequired("app.name", c.App.Name); err != nil {
		return err
	}
	if err := infraconfig.ValidateRequired("app.version", c.App.Version); err != nil {
		return err
	}
	if err := infraconfig.ValidateRequired("app.environment", c.App.Environment); err != nil {
		return err
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.CORS.Validate(); err != nil {
		return err
	}
	return c.Logging.Validate()
}

// Validate checks that every allowed origin is "*" or carries an http(s) scheme.
func (c *CORSConfig) Validate() error {
	for _, origin := range c.AllowedOrigins {
		if origin == wildcard || strings.HasPrefix(origin, "http://") || strings.HasPrefix(origin, "https://") {
			continue
		}
		return &infraconfig.ValidationError{
			Field:   "cors.allowed_origins",
			Message: "origin " + origin + " must be \"*\" or start with http:// or https://",
		}
	}
	return nil
}

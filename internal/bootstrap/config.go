package bootstrap

import (
	"fmt"

	infralogger "github.com/jonesrussell/north-cloud/sales-agent/infrastructure/logger"
	"github.com/jonesrussell/north-cloud/sales-agent/internal/config"
)

const serviceName = "sales-agent"

// Overrides are command-line values applied on top of the config file and
// environment. Zero values leave the loaded setting alone.
type Overrides struct {
	ConfigPath string
	Host       string
	Port       int
	Debug      *bool
}

func (o Overrides) apply(cfg *config.Config) {
	if o.Host != "" {
		cfg.Server.Host = o.Host
	}
	if o.Port != 0 {
		cfg.Server.Port = o.Port
	}
	if o.Debug != nil {
		cfg.App.Debug = *o.Debug
	}
}

// LoadConfig loads, overrides and validates configuration.
func LoadConfig(o Overrides) (*config.Config, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	o.apply(cfg)
	if validationErr := cfg.Validate(); validationErr != nil {
		return nil, fmt.Errorf("validate config: %w", validationErr)
	}
	return cfg, nil
}

// CreateLogger creates a logger instance from configuration.
func CreateLogger(cfg *config.Config) (infralogger.Logger, error) {
	log, err := infralogger.New(infralogger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Development: cfg.App.Debug,
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log.With(
		infralogger.String("service", serviceName),
		infralogger.String("version", cfg.App.Version),
	), nil
}

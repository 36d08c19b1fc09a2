package config

import (
	"fmt"
	"time"
)

// ValidationError reports an invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateRequired checks that a string field is not empty.
func ValidateRequired(field, value string) error {
	if value == "" {
		return &ValidationError{Field: field, Message: "is required"}
	}
	return nil
}

// ValidatePort checks that port is within 1-65535.
func ValidatePort(field string, port int) error {
	if port < 1 || port > 65535 {
		return &ValidationError{Field: field, Message: "must be between 1 and 65535"}
	}
	return nil
}

// ValidatePositiveDuration checks that d is greater than zero.
func ValidatePositiveDuration(field string, d time.Duration) error {
	if d <= 0 {
		return &ValidationError{Field: field, Message: "must be positive"}
	}
	return nil
}

// ValidateLogLevel checks if a log level is valid.
func ValidateLogLevel(level string) error {
	switch level {
	case "debug", "info", "warn", "warning", "error", "fatal":
		return nil
	default:
		return &ValidationError{Field: "logging.level", Message: "must be one of: debug, info, warn, error, fatal"}
	}
}

// ValidateLogFormat checks if a log format is valid.
func ValidateLogFormat(format string) error {
	switch format {
	case "json", "console":
		return nil
	default:
		return &ValidationError{Field: "logging.format", Message: "must be one of: json, console"}
	}
}

// Validate checks the server listener settings.
func (c *ServerConfig) Validate() error {
	if err := ValidatePort("server.port", c.Port); err != nil {
		return err
	}
	return ValidatePositiveDuration("server.shutdown_timeout", c.ShutdownTimeout)
}

// Validate checks the logging settings.
func (c *LoggingConfig) Validate() error {
	if err := ValidateLogLevel(c.Level); err != nil {
		return err
	}
	return ValidateLogFormat(c.Format)
}

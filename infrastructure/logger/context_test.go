package logger_test

import (
	"context"
	"testing"

	"github.com/jonesrussell/north-cloud/sales-agent/infrastructure/logger"
)

func TestWithContext_FromContext_RoundTrip(t *testing.T) {
	t.Parallel()

	l := mustTestLogger(t)
	ctx := logger.WithContext(context.Background(), l)

	if got := logger.FromContext(ctx); got != l {
		t.Errorf("FromContext returned %v, want the stored logger %v", got, l)
	}
}

func TestFromContext_NoLogger_ReturnsSingletonFallback(t *testing.T) {
	t.Parallel()

	a := logger.FromContext(context.Background())
	b := logger.FromContext(context.Background())

	if a == nil {
		t.Fatal("FromContext on empty context returned nil, want fallback logger")
	}
	if a != b {
		t.Error("FromContext returned different fallback instances, want one shared instance")
	}

	// Must not panic even though debug/info are filtered.
	a.Debug("debug message")
	a.Warn("warn message", logger.String("key", "value"))
}

func TestWithContext_EnrichedLoggerIsDistinct(t *testing.T) {
	t.Parallel()

	base := mustTestLogger(t)
	enriched := base.With(logger.String("request_id", "abc-123"))
	ctx := logger.WithContext(context.Background(), enriched)

	got := logger.FromContext(ctx)
	if got != enriched {
		t.Error("FromContext did not return the enriched logger")
	}
	if got == base {
		t.Error("With() returned the base logger, want a new instance")
	}
}

func TestNew_ConsoleFormat(t *testing.T) {
	t.Parallel()

	l, err := logger.New(logger.Config{
		Level:       "debug",
		Format:      logger.FormatConsole,
		OutputPaths: []string{"stderr"},
	})
	if err != nil {
		t.Fatalf("New() with console format returned error: %v", err)
	}
	l.Debug("console output")
}

func mustTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	l, err := logger.New(logger.Config{
		Level:       "warn",
		OutputPaths: []string{"stderr"},
	})
	if err != nil {
		t.Fatalf("failed to create test logger: %v", err)
	}
	return l
}

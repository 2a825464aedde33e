package logging

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
)

type loggerKey struct{}

// New builds the service logger. Development logs at debug with colored
// console output; production stays at info without color.
func New(appName, env string) zerolog.Logger {
	level := zerolog.InfoLevel
	var out = zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339Nano,
		NoColor:    env == "production",
	}
	if env != "production" {
		level = zerolog.DebugLevel
	}
	return zerolog.New(out).Level(level).With().
		Timestamp().
		Str("app", appName).
		Str("env", env).
		Logger()
}

// IntoContext injects a logger into context for downstream use.
func IntoContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the request-scoped logger, or a no-op logger when none
// was injected.
func FromContext(ctx context.Context) zerolog.Logger {
	if ctx == nil {
		return zerolog.Nop()
	}
	if logger, ok := ctx.Value(loggerKey{}).(zerolog.Logger); ok {
		return logger
	}
	return zerolog.Nop()
}

package logger

import (
	"log/slog"
	"os"
	"strings"

	"github.com/alkime/creatoros/internal/config"
)

// ServiceName is attached to every log record.
const ServiceName = "creatoros"

// SetupLogger configures structured logging based on environment.
func SetupLogger(cfg *config.Config) *slog.Logger {
	//nolint:exhaustruct // Using default values for other HandlerOptions fields
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: Level(cfg),
	})

	logger := slog.New(handler).With("service", ServiceName)

	// Set as default logger
	slog.SetDefault(logger)

	return logger
}

// Level picks the log level: debug in development, otherwise LOG_LEVEL.
func Level(cfg *config.Config) slog.Level {
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	if cfg.Env == config.EnvDevelopment {
		return slog.LevelDebug
	}

	return slog.LevelInfo
}

// Package logger configures the process-wide slog logger.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// New builds a logger from the WATCHGRASS_ENV / WATCHGRASS_LOG_LEVEL
// environment variables: JSON output at info level in production,
// human-readable text at debug level otherwise.
func New() *slog.Logger {
	level := slog.LevelDebug
	switch strings.ToLower(os.Getenv("WATCHGRASS_LOG_LEVEL")) {
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var handler slog.Handler
	if os.Getenv("WATCHGRASS_ENV") == "production" {
		if level == slog.LevelDebug {
			level = slog.LevelInfo
		}
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}
	return slog.New(handler)
}

package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

var logger *slog.Logger

// Config holds logger configuration
type Config struct {
	Level  string // DEBUG, INFO, WARN, ERROR
	Format string // json, text
	Output io.Writer
}

// Init builds the global logger and installs it as the slog default
func Init(cfg Config) *slog.Logger {
	var level slog.Level
	switch strings.ToUpper(cfg.Level) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	logger = slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// Get returns the global logger
func Get() *slog.Logger {
	if logger == nil {
		// Default fallback if not initialized
		Init(Config{Level: "WARN", Format: "text"})
	}
	return logger
}

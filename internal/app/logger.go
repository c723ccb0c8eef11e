package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mybayani/emergency-backend/internal/config"
)

const appName = "emergency-backend"

// NewLogger builds the process logger from cfg, writes to stderr and installs
// it as the slog default. Every record carries the app name and build version.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

// NewAuditLogger returns the JSON logger for the call audit stream. It logs at
// info level regardless of LOG_LEVEL so audit lines are never filtered out.
func NewAuditLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, nil)).With(slog.String("stream", "call-audit"))
}

// newLogger uses a text handler with source locations for format "text" and
// JSON for anything else.
func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	text := strings.EqualFold(strings.TrimSpace(cfg.Format), "text")
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: text,
	}

	var handler slog.Handler
	if text {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler).With(
		slog.String("app", appName),
		slog.String("version", Version),
	)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

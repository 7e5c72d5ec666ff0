// Package logger builds the slog.Logger shared by the upsell services with
// configurable level, output format (text or JSON) and base attributes.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New creates a *slog.Logger configured with the given level and format,
// writing to stderr. attrs are attached to every record.
func New(level, format string, attrs ...slog.Attr) *slog.Logger {
	return NewWithWriter(os.Stderr, level, format, attrs...)
}

// NewWithWriter creates a *slog.Logger writing to w.
// Format "json" selects the JSON handler; anything else is text. Debug
// level also records the source location.
func NewWithWriter(w io.Writer, level, format string, attrs ...slog.Attr) *slog.Logger {
	lvl := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug,
	}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	if len(attrs) > 0 {
		handler = handler.WithAttrs(attrs)
	}

	return slog.New(handler)
}

// Component returns l scoped to a named subsystem.
func Component(l *slog.Logger, name string) *slog.Logger {
	return l.With(slog.String("component", name))
}

// ParseLevel converts a level string to slog.Level, ignoring case.
// Recognized values: "debug", "warn"/"warning", "error". Everything else
// returns LevelInfo.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

type Logger interface {
	Info(msg string, keyvals ...interface{})

	Warn(msg string, keyvals ...interface{})

	Error(msg string, keyvals ...interface{})

	Debug(msg string, keyvals ...interface{})
}

// New returns a JSON logger on stderr at the given level ("debug", "info", "warn", "error")
func New(level string) Logger {
	return newWithWriter(os.Stderr, level)
}

func newWithWriter(w io.Writer, level string) Logger {
	opts := &slog.HandlerOptions{
		Level:     ParseLevel(level),
		AddSource: true, // include file + line number
	}
	handler := slog.NewJSONHandler(w, opts)
	return slog.New(handler)
}

// ParseLevel maps a level name to a slog level, unknown names map to info
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

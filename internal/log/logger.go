package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// LoggerConfiguration selects the level and sink of a logger. A nil Writer
// means stderr.
type LoggerConfiguration struct {
	LogLevel slog.Level
	Writer   io.Writer
}

// NewLogger builds a structured JSON logger for the given writer sink. The
// game owns stdout while it runs, so callers normally pass a log file.
func NewLogger(config *LoggerConfiguration) *slog.Logger {
	if config.Writer == nil {
		config.Writer = os.Stderr
	}

	return slog.New(slog.NewJSONHandler(config.Writer, &slog.HandlerOptions{
		Level:     config.LogLevel,
		AddSource: true,
	}))
}

// ParseLevel maps debug, info, warn and error (case-insensitive) to a
// slog.Level. Anything else is info.
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

// SetDefault installs logger as the process-wide default used by G and the
// component loggers.
func SetDefault(logger *slog.Logger) {
	slog.SetDefault(logger)
}

// G returns the process-wide logger.
func G() *slog.Logger {
	return slog.Default()
}

// Game returns a logger scoped to the game loop.
func Game() *slog.Logger {
	return slog.With("component", "game")
}

// Server returns a logger scoped to the SSH server.
func Server() *slog.Logger {
	return slog.With("component", "server")
}

// TUI returns a logger scoped to the launcher.
func TUI() *slog.Logger {
	return slog.With("component", "launcher")
}

// Package logging provides structured logging for go-timelimit.
//
// Lifecycle events go through slog; user-facing diagnostics (usage
// errors, "not found" messages) are printed by the CLI layer and do
// not pass through here.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// NewLogger creates a structured logger writing to stderr, so log
// output never interleaves with the child's stdout.
// Format should be "text" or "json". Verbose forces debug level.
func NewLogger(format, level string, verbose bool) *slog.Logger {
	logLevel := parseLevel(level)
	if verbose {
		logLevel = slog.LevelDebug
	}
	return NewLoggerWithWriter(os.Stderr, format, logLevel)
}

// NewLoggerWithWriter creates a logger that writes to a custom
// writer. Useful for testing.
func NewLoggerWithWriter(w io.Writer, format string, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
		// Source location helps when debugging the launcher itself.
		AddSource: level == slog.LevelDebug,
	}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		// A launcher shares its terminal with the child; text is
		// the friendlier default.
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// SetDefault sets the default logger for the slog package.
func SetDefault(logger *slog.Logger) {
	slog.SetDefault(logger)
}

// parseLevel converts a string level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

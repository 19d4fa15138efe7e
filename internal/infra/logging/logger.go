// Package logging builds the structured logger used across taskmaster.
// Records are rendered by charmbracelet/log behind a log/slog front end.
package logging

import (
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// Prefix labels every log line.
const Prefix = "taskmaster"

// New creates a logger writing human-readable lines to w.
// Records below level are dropped.
func New(w io.Writer, level slog.Level) *slog.Logger {
	handler := log.NewWithOptions(w, log.Options{
		Level:           log.Level(level),
		Formatter:       log.TextFormatter,
		Prefix:          Prefix,
		ReportTimestamp: level <= slog.LevelDebug,
		TimeFormat:      "15:04:05",
	})
	return slog.New(handler)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Output is an io.Writer whose destination can be replaced while loggers
// built on it are in use. It is safe for concurrent use.
type Output struct {
	w  io.Writer
	mu sync.Mutex
}

// NewOutput creates an Output writing to w.
func NewOutput(w io.Writer) *Output {
	return &Output{w: w}
}

// Write writes p to the current destination.
func (o *Output) Write(p []byte) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.w.Write(p)
}

// Swap replaces the destination and returns the previous one.
func (o *Output) Swap(w io.Writer) io.Writer {
	o.mu.Lock()
	defer o.mu.Unlock()
	prev := o.w
	o.w = w
	return prev
}

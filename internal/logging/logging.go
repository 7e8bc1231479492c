// Package logging provides the leveled diagnostic logger used by todo.
// Diagnostics go to stderr and stay quiet unless debug is enabled.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// EnvDebug enables debug logging when set to any non-empty value.
const EnvDebug = "TODO_DEBUG"

// DebugEnabled returns true if debug mode is enabled via TODO_DEBUG.
func DebugEnabled() bool {
	return os.Getenv(EnvDebug) != ""
}

// New returns a text logger writing to w. Debug records are emitted only when
// debug is true; otherwise only warnings and errors are.
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return New(io.Discard, false)
}

// Package logging sets up the basiclog command's own diagnostics. Records
// requested by the user go through pkg/basiclog; this is only for the tool
// reporting on itself.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/crimson-sun/basiclog/internal/level"
)

// New returns a slog logger on w. JSON output is used when records are
// printed to stdout so diagnostics stay machine-separable from them.
func New(w io.Writer, recordsOnStdout bool, lvl slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	if recordsOnStdout {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// Init installs a stderr diagnostics logger as the slog default.
func Init(recordsOnStdout bool, lvl slog.Level) {
	slog.SetDefault(New(os.Stderr, recordsOnStdout, lvl))
}

// ParseLevel converts a severity name to a slog.Level.
// Unknown strings default to LevelWarn, matching the record threshold default.
func ParseLevel(s string) slog.Level {
	sev, _ := level.Parse(s)
	return SlogLevel(sev)
}

// SlogLevel maps a record severity onto the nearest slog level.
func SlogLevel(s level.Severity) slog.Level {
	switch {
	case s <= level.Error:
		return slog.LevelError
	case s == level.Warn:
		return slog.LevelWarn
	case s == level.Info:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

package level

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Severity is the urgency of a log message. Lower values are more urgent.
type Severity int

// Ranks are fixed. New levels must take unused values so existing ones never move.
const (
	Error Severity = 1
	Warn  Severity = 2
	Info  Severity = 3
	Debug Severity = 4
)

// Default is the threshold a logger starts with.
const Default = Warn

// UnknownLabel is printed for severities outside the known set.
const UnknownLabel = "UNKNOWN"

// String returns the display label for s.
func (s Severity) String() string {
	switch s {
	case Error:
		return "ERROR"
	case Warn:
		return "WARN"
	case Info:
		return "INFO"
	case Debug:
		return "DEBUG"
	default:
		return UnknownLabel
	}
}

// ShouldEmit reports whether a message at requested passes a logger
// configured with threshold. Unknown values compare by rank like any other.
func ShouldEmit(threshold, requested Severity) bool {
	return threshold >= requested
}

// Parse converts a label ("error", "WARN", "warning", "info", "debug") or a
// numeric rank to a Severity. The second result is false for anything else.
func Parse(s string) (Severity, bool) {
	switch cases.Upper(language.Und).String(strings.TrimSpace(s)) {
	case "ERROR", "1":
		return Error, true
	case "WARN", "WARNING", "2":
		return Warn, true
	case "INFO", "3":
		return Info, true
	case "DEBUG", "4":
		return Debug, true
	default:
		return Default, false
	}
}

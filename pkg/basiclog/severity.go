package basiclog

import "github.com/crimson-sun/basiclog/internal/level"

// Severity is the urgency of a record. Lower ranks are more urgent.
type Severity = level.Severity

const (
	LevelError Severity = level.Error
	LevelWarn  Severity = level.Warn
	LevelInfo  Severity = level.Info
	LevelDebug Severity = level.Debug
)

// ParseLevel converts "error", "warn", "info" or "debug" (any case) to a
// Severity. Unknown strings yield LevelWarn and false.
func ParseLevel(s string) (Severity, bool) {
	return level.Parse(s)
}

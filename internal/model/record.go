package model

import (
	"time"

	"github.com/crimson-sun/basiclog/internal/level"
)

// Record is one log call after filtering and rendering. It lives only until
// the active output has written it.
type Record struct {
	Timestamp time.Time
	Severity  level.Severity
	Message   string
}

package basiclog

import (
	"io"
	"os"
	"time"

	"github.com/crimson-sun/basiclog/internal/clock"
	"github.com/crimson-sun/basiclog/internal/level"
)

type options struct {
	level  Severity
	clock  clock.Clock
	writer io.Writer
}

// Option configures a Logger.
type Option func(*options)

// WithLevel sets the initial threshold. Default: LevelWarn.
func WithLevel(s Severity) Option {
	return func(o *options) {
		o.level = s
	}
}

// WithClock sets the time source used to stamp records. Default: time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.clock = now
		}
	}
}

// WithWriter redirects a console logger. File loggers ignore it.
// Default: os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.writer = w
		}
	}
}

func defaultOptions() options {
	return options{
		level:  level.Default,
		clock:  clock.System,
		writer: os.Stdout,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

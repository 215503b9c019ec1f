package basiclog

import (
	"sync/atomic"

	"github.com/crimson-sun/basiclog/internal/clock"
	"github.com/crimson-sun/basiclog/internal/level"
	"github.com/crimson-sun/basiclog/internal/model"
	"github.com/crimson-sun/basiclog/internal/output"
	"github.com/crimson-sun/basiclog/internal/output/file"
	"github.com/crimson-sun/basiclog/internal/output/stdout"
	"github.com/crimson-sun/basiclog/internal/render"
)

// fallbackPrefix starts the ERROR record that replaces an unrenderable message.
const fallbackPrefix = "formatting log message string - "

// Logger filters records by severity and writes the survivors to one output.
// The output is fixed at construction.
type Logger struct {
	threshold atomic.Int64
	out       output.Output
	now       clock.Clock
	path      string
}

func newLogger(out output.Output, path string, o options) *Logger {
	l := &Logger{out: out, now: o.clock, path: path}
	l.threshold.Store(int64(o.level))
	return l
}

// NewConsole creates a Logger that prints to standard output.
func NewConsole(opts ...Option) *Logger {
	o := buildOptions(opts)
	return newLogger(stdout.NewWriter(o.writer), "", o)
}

// NewText creates a Logger writing "[timestamp] LEVEL: message" lines to path.
// The file is created, or truncated, before NewText returns.
func NewText(path string, opts ...Option) (*Logger, error) {
	return newFileLogger(path, output.Text, opts)
}

// NewCSV creates a Logger writing "timestamp,LEVEL,message" lines to path.
func NewCSV(path string, opts ...Option) (*Logger, error) {
	return newFileLogger(path, output.CSV, opts)
}

// NewHTML creates a Logger writing one <div> per record to path.
func NewHTML(path string, opts ...Option) (*Logger, error) {
	return newFileLogger(path, output.HTML, opts)
}

func newFileLogger(path string, format output.Format, opts []Option) (*Logger, error) {
	out, err := file.New(path, format)
	if err != nil {
		return nil, err
	}
	return newLogger(out, path, buildOptions(opts)), nil
}

// Level returns the current threshold.
func (l *Logger) Level() Severity {
	return Severity(l.threshold.Load())
}

// SetLevel changes the threshold. Values outside the named levels are kept
// and compared by rank.
func (l *Logger) SetLevel(s Severity) {
	l.threshold.Store(int64(s))
}

// Path returns the destination file, or "" for a console logger.
func (l *Logger) Path() string {
	return l.path
}

// Log renders template with args and writes the record if sev passes the
// threshold. Errors come only from the destination.
func (l *Logger) Log(sev Severity, template string, args ...any) error {
	threshold := l.Level()
	if !level.ShouldEmit(threshold, sev) {
		return nil
	}
	msg, err := render.Render(template, args...)
	if err != nil {
		if !level.ShouldEmit(threshold, level.Error) {
			return nil
		}
		return l.emit(level.Error, fallbackPrefix+template)
	}
	return l.emit(sev, msg)
}

func (l *Logger) emit(sev Severity, msg string) error {
	return output.Write(l.out, model.Record{
		Timestamp: l.now(),
		Severity:  sev,
		Message:   msg,
	})
}

// Error logs at LevelError.
func (l *Logger) Error(template string, args ...any) error {
	return l.Log(LevelError, template, args...)
}

// Warn logs at LevelWarn.
func (l *Logger) Warn(template string, args ...any) error {
	return l.Log(LevelWarn, template, args...)
}

// Info logs at LevelInfo.
func (l *Logger) Info(template string, args ...any) error {
	return l.Log(LevelInfo, template, args...)
}

// Debug logs at LevelDebug.
func (l *Logger) Debug(template string, args ...any) error {
	return l.Log(LevelDebug, template, args...)
}

// Reset clears the destination: file loggers delete their file, console
// loggers do nothing.
func (l *Logger) Reset() error {
	return l.out.Reset()
}

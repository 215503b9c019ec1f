package output

import (
	"github.com/crimson-sun/basiclog/internal/clock"
	"github.com/crimson-sun/basiclog/internal/model"
)

// Output is a record destination. RenderLine encodes one record in the
// destination's format, Append writes an encoded line, and Reset clears
// whatever the destination has accumulated.
type Output interface {
	RenderLine(timestamp, label, message string) string
	Append(line string) error
	Reset() error
}

// Write renders rec through o and appends the result.
func Write(o Output, rec model.Record) error {
	line := o.RenderLine(clock.Format(rec.Timestamp), rec.Severity.String(), rec.Message)
	return o.Append(line)
}

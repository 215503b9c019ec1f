package stdout

import (
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"

	"github.com/crimson-sun/basiclog/internal/output"
)

// Output prints console-formatted records, one per line.
type Output struct {
	mu sync.Mutex
	w  io.Writer
}

// New creates a console Output on os.Stdout.
func New() *Output {
	return NewWriter(os.Stdout)
}

// NewWriter creates a console Output on w.
func NewWriter(w io.Writer) *Output {
	return &Output{w: w}
}

func (o *Output) RenderLine(timestamp, label, message string) string {
	return output.Console.RenderLine(timestamp, label, message)
}

// Append writes line followed by a newline.
func (o *Output) Append(line string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, err := io.WriteString(o.w, line+"\n"); err != nil {
		return errors.Wrap(err, "stdout output")
	}
	return nil
}

// Reset does nothing; the console keeps no state.
func (o *Output) Reset() error {
	return nil
}

package file

import (
	"io"
	"io/fs"
	"os"
	"sync"

	"github.com/pkg/errors"

	"github.com/crimson-sun/basiclog/internal/output"
)

// Output appends formatted records to a file. Each append opens the file,
// takes an exclusive advisory lock, writes one line and releases the lock,
// so several processes may share a destination without tearing lines.
type Output struct {
	mu     sync.Mutex
	path   string
	format output.Format
}

// New creates (or truncates) the file at path and returns an Output that
// encodes records with format. The parent directory must already exist.
func New(path string, format output.Format) (*Output, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "file output: create %s", path)
	}
	if err := f.Close(); err != nil {
		return nil, errors.Wrapf(err, "file output: close %s", path)
	}
	return &Output{path: path, format: format}, nil
}

// Path returns the destination file.
func (o *Output) Path() string {
	return o.path
}

func (o *Output) RenderLine(timestamp, label, message string) string {
	return o.format.RenderLine(timestamp, label, message)
}

// Append writes line to the end of the file under an exclusive lock.
// A file removed by Reset is created again.
func (o *Output) Append(line string) (err error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	f, err := os.OpenFile(o.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return errors.Wrapf(err, "file output: open %s", o.path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "file output: close %s", o.path)
		}
	}()

	if err := lock(f); err != nil {
		return errors.Wrapf(err, "file output: lock %s", o.path)
	}
	defer func() {
		if uerr := unlock(f); uerr != nil && err == nil {
			err = errors.Wrapf(uerr, "file output: unlock %s", o.path)
		}
	}()

	if _, err := io.WriteString(f, line); err != nil {
		return errors.Wrapf(err, "file output: write %s", o.path)
	}
	return nil
}

// Reset deletes the file. A missing file is not an error.
func (o *Output) Reset() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := os.Remove(o.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Wrapf(err, "file output: remove %s", o.path)
	}
	return nil
}

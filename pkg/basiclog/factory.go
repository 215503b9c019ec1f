package basiclog

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/crimson-sun/basiclog/internal/output"
)

// Kind names a destination format for Create.
type Kind string

const (
	KindConsole Kind = "console"
	KindText    Kind = "text"
	KindCSV     Kind = "csv"
	KindHTML    Kind = "html"
)

// DefaultPath is used by Create when no path is given. The format's
// extension is appended to it.
const DefaultPath = "logs/basic_log"

// ParseKind maps a kind name (any case) to a Kind. Unknown names map to
// KindConsole.
func ParseKind(s string) Kind {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case KindText, KindCSV, KindHTML:
		return k
	default:
		return KindConsole
	}
}

func (k Kind) format() output.Format {
	switch k {
	case KindText:
		return output.Text
	case KindCSV:
		return output.CSV
	case KindHTML:
		return output.HTML
	default:
		return output.Console
	}
}

// Create builds a Logger of the given kind. For file kinds, path is the
// destination without extension (DefaultPath when empty); the extension
// .txt, .csv or .html is appended and missing parent directories are
// created. Unknown kinds, and KindConsole, ignore path and print to stdout.
func Create(kind Kind, path string, opts ...Option) (*Logger, error) {
	format := kind.format()
	if format == output.Console {
		return NewConsole(opts...), nil
	}
	if path == "" {
		path = DefaultPath
	}
	path += format.Extension()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrapf(err, "basiclog: create directory for %s", path)
	}
	return newFileLogger(path, format, opts)
}

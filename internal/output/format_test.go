package output

import (
	"testing"
	"time"

	"github.com/crimson-sun/basiclog/internal/clock"
	"github.com/crimson-sun/basiclog/internal/level"
	"github.com/crimson-sun/basiclog/internal/model"
)

const ts = "2024-01-01 00:00:00"

func TestRenderLine(t *testing.T) {
	tests := []struct {
		format Format
		label  string
		msg    string
		want   string
	}{
		{Console, "WARN", "x", "[2024-01-01 00:00:00] WARN: x"},
		{Text, "WARN", "x", "[2024-01-01 00:00:00] WARN: x\n"},
		{CSV, "WARN", "x", "2024-01-01 00:00:00,WARN,x\n"},
		{HTML, "WARN", "x", `<div class="warn"><span class="level">WARN</span><span class="datetime">2024-01-01 00:00:00</span><span class="message">x</span></div>` + "\n"},
		{HTML, "UNKNOWN", "y", `<div class="unknown"><span class="level">UNKNOWN</span><span class="datetime">2024-01-01 00:00:00</span><span class="message">y</span></div>` + "\n"},
		{Format(42), "ERROR", "z", "[2024-01-01 00:00:00] ERROR: z"},
	}
	for _, tt := range tests {
		if got := tt.format.RenderLine(ts, tt.label, tt.msg); got != tt.want {
			t.Errorf("%v.RenderLine = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestExtension(t *testing.T) {
	tests := map[Format]string{Console: "", Text: ".txt", CSV: ".csv", HTML: ".html"}
	for f, want := range tests {
		if got := f.Extension(); got != want {
			t.Errorf("%v.Extension() = %q, want %q", f, got, want)
		}
	}
}

// recorder captures appended lines.
type recorder struct {
	Format
	lines []string
}

func (r *recorder) Append(line string) error {
	r.lines = append(r.lines, line)
	return nil
}

func (r *recorder) Reset() error { return nil }

func TestWriteRendersRecord(t *testing.T) {
	r := &recorder{Format: CSV}
	when := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	err := Write(r, model.Record{Timestamp: when, Severity: level.Info, Message: "hello"})
	if err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if len(r.lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(r.lines))
	}
	want := clock.Format(when) + ",INFO,hello\n"
	if r.lines[0] != want {
		t.Errorf("line = %q, want %q", r.lines[0], want)
	}
}

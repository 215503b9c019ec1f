package output

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Format selects how a record is encoded. The set is closed.
type Format int

const (
	Console Format = iota
	Text
	CSV
	HTML
)

// RenderLine encodes a record. Every format except Console ends the line
// with a newline; the console writer adds its own.
func (f Format) RenderLine(timestamp, label, message string) string {
	var b strings.Builder
	b.Grow(len(timestamp) + len(label) + len(message) + 16)
	switch f {
	case Text:
		writeBracketed(&b, timestamp, label, message)
		b.WriteByte('\n')
	case CSV:
		b.WriteString(timestamp)
		b.WriteByte(',')
		b.WriteString(label)
		b.WriteByte(',')
		b.WriteString(message)
		b.WriteByte('\n')
	case HTML:
		b.WriteString(`<div class="`)
		b.WriteString(cases.Lower(language.Und).String(label))
		b.WriteString(`"><span class="level">`)
		b.WriteString(label)
		b.WriteString(`</span><span class="datetime">`)
		b.WriteString(timestamp)
		b.WriteString(`</span><span class="message">`)
		b.WriteString(message)
		b.WriteString("</span></div>\n")
	default:
		writeBracketed(&b, timestamp, label, message)
	}
	return b.String()
}

func writeBracketed(b *strings.Builder, timestamp, label, message string) {
	b.WriteByte('[')
	b.WriteString(timestamp)
	b.WriteString("] ")
	b.WriteString(label)
	b.WriteString(": ")
	b.WriteString(message)
}

// Extension is the file suffix the factory appends for f.
func (f Format) Extension() string {
	switch f {
	case Text:
		return ".txt"
	case CSV:
		return ".csv"
	case HTML:
		return ".html"
	default:
		return ""
	}
}

func (f Format) String() string {
	switch f {
	case Text:
		return "text"
	case CSV:
		return "csv"
	case HTML:
		return "html"
	default:
		return "console"
	}
}

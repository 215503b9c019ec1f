// Package clock produces the timestamps written in front of every record.
package clock

import "time"

// Layout is the record timestamp format: YYYY-MM-DD HH:MM:SS, 24-hour, local time.
// Log parsers match on it literally.
const Layout = "2006-01-02 15:04:05"

// Clock returns the current instant. Tests substitute a fixed one.
type Clock func() time.Time

// System reads the process clock.
var System Clock = time.Now

// Format renders t in the record layout using the local time zone.
func Format(t time.Time) string {
	return t.Local().Format(Layout)
}

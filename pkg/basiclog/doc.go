// Package basiclog provides a leveled logger that writes to the console or to
// a plain-text, CSV, or HTML file.
//
// Quick start:
//
//	l, err := basiclog.Create(basiclog.KindHTML, "logs/reports/main-log")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	l.SetLevel(basiclog.LevelInfo)
//	l.Info("%d jobs queued for %s", 3, "nightly")
//
// A message passes when the logger's threshold rank is at least the
// message's rank (ERROR=1, WARN=2, INFO=3, DEBUG=4); the default threshold is
// WARN. Templates use fmt verbs. A template that does not fit its arguments
// is never an error for the caller: an ERROR record reading
// "formatting log message string - <template>" is written in its place.
//
// Loggers are safe for concurrent use, and file loggers in separate
// processes may share one destination file.
package basiclog

// Command basiclog writes records through a basiclog logger built from
// environment configuration.
//
//	basiclog [flags] <severity> <template> [args...]
//	basiclog [flags] <severity> -        one record per stdin line
//	basiclog [flags] reset               delete the destination file
//
// File destinations are truncated when the logger is created, so each run
// starts a fresh file.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/crimson-sun/basiclog/internal/config"
	"github.com/crimson-sun/basiclog/internal/logging"
	"github.com/crimson-sun/basiclog/pkg/basiclog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "basiclog: %v\n", err)
		os.Exit(1)
	}

	flag.StringVar(&cfg.Output.Kind, "kind", cfg.Output.Kind, "destination: console, text, csv or html")
	flag.StringVar(&cfg.Output.Path, "path", cfg.Output.Path, "destination path without extension")
	flag.StringVar(&cfg.Output.Level, "level", cfg.Output.Level, "threshold: error, warn, info or debug")
	flag.Usage = usage
	flag.Parse()

	kind := basiclog.ParseKind(cfg.Output.Kind)
	logging.Init(kind == basiclog.KindConsole, logging.ParseLevel(cfg.Diagnostics.Level))

	if err := run(cfg, kind, flag.Args()); err != nil {
		slog.Error("basiclog failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, kind basiclog.Kind, args []string) error {
	if len(args) == 0 {
		usage()
		return errors.New("missing severity")
	}

	threshold, ok := basiclog.ParseLevel(cfg.Output.Level)
	if !ok {
		slog.Warn("unknown threshold, using default", "level", cfg.Output.Level, "default", threshold)
	}
	l, err := basiclog.Create(kind, cfg.Output.Path, basiclog.WithLevel(threshold))
	if err != nil {
		return err
	}
	slog.Debug("logger ready", "kind", kind, "path", l.Path(), "threshold", l.Level())

	if args[0] == "reset" {
		return l.Reset()
	}

	sev, ok := basiclog.ParseLevel(args[0])
	if !ok {
		return errors.Errorf("unknown severity %q", args[0])
	}
	if len(args) < 2 {
		return errors.New("missing message template")
	}

	if args[1] == "-" {
		sc := bufio.NewScanner(os.Stdin)
		n := 0
		for sc.Scan() {
			if err := l.Log(sev, "%s", sc.Text()); err != nil {
				return err
			}
			n++
		}
		if err := sc.Err(); err != nil {
			return errors.Wrap(err, "read stdin")
		}
		slog.Debug("stdin drained", "records", n)
		return nil
	}

	return l.Log(sev, args[1], parseArgs(args[2:])...)
}

// parseArgs turns command-line words into integers or floats where they
// parse as such, so numeric verbs in the template can consume them.
func parseArgs(words []string) []any {
	out := make([]any, len(words))
	for i, w := range words {
		if n, err := strconv.ParseInt(w, 10, 64); err == nil {
			out[i] = n
		} else if f, err := strconv.ParseFloat(w, 64); err == nil {
			out[i] = f
		} else {
			out[i] = w
		}
	}
	return out
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: basiclog [flags] <severity> <template> [args...]\n")
	fmt.Fprintf(os.Stderr, "       basiclog [flags] <severity> -\n")
	fmt.Fprintf(os.Stderr, "       basiclog [flags] reset\n\n")
	flag.PrintDefaults()
}

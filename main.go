// Released under an MIT license. See LICENSE.

/*
Hsnb interprets notebook snippets written in a lazy, dynamically typed
subset of Haskell. Each snippet is evaluated in a session whose bindings
persist from one snippet to the next:

	hs> my_func x y = x * y
	hs> my_func 2 7
	%text 14

A snippet that defines z_display or z_main, and otherwise evaluates to
nothing, shows the value of that binding. IO actions write to stdout.

Notebooks are files whose paragraphs are separated by lines containing
only %hs. Each paragraph is interpreted in order.

Hsnb is released under an MIT-style license.
*/
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"github.com/michaelmacinnis/hsnb/internal/engine"
	"github.com/michaelmacinnis/hsnb/internal/script"
	"github.com/michaelmacinnis/hsnb/internal/system/config"
	"github.com/michaelmacinnis/hsnb/internal/system/options"
	"github.com/michaelmacinnis/hsnb/internal/ui"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	opts, err := options.Parse(argv)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return 2 //nolint:gomnd
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return 1
	}

	logging(cfg.Log, opts.Debug)

	label := script.DefaultLabel
	if opts.File != "" {
		label = opts.File
	}

	s := script.New(script.Config{
		Label:      label,
		MaxDepth:   cfg.Interpreter.MaxDepth,
		ParseCache: cfg.Interpreter.ParseCache,
	})

	e := engine.New(s)
	if err := e.Open(); err != nil {
		logrus.WithError(err).Error("session not opened")

		return 1
	}

	defer func() {
		if err := e.Close(); err != nil {
			logrus.WithError(err).Warn("session not closed")
		}
	}()

	colored := cfg.REPL.Color && isatty.IsTerminal(os.Stderr.Fd())
	p := ui.NewPrinter(os.Stdout, os.Stderr, colored)

	switch {
	case opts.Interactive:
		err = ui.Run(e, s.Names, cfg.REPL, p)
	case opts.Command != "":
		err = ui.Command(e, opts.Command, p)
	case opts.File != "":
		err = batch(e, opts.File, p)
	default:
		err = ui.Batch(e, "<stdin>", os.Stdin, p)
	}

	if err != nil {
		logrus.WithError(err).Debug("finished with errors")

		return 1
	}

	return 0
}

func batch(e *engine.T, path string, p *ui.Printer) error {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return err
	}
	defer f.Close()

	return ui.Batch(e, path, f, p)
}

func logging(cfg config.Log, debug bool) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		logrus.WithError(err).Warn("using default log level")

		level = logrus.WarnLevel
	}

	if debug {
		level = logrus.DebugLevel
	}

	logrus.SetLevel(level)
}

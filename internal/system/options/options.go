// Released under an MIT license. See LICENSE.

// Package options parses hsnb's command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is reported by -v.
const Version = "hsnb 0.1.0"

//nolint:gochecknoglobals
var usage = `hsnb

Usage:
  hsnb [-d] [-C CONFIG] FILE
  hsnb [-d] [-C CONFIG] -c SNIPPET
  hsnb [-d] [-C CONFIG] [-s]
  hsnb -h
  hsnb -v

Arguments:
  FILE       Path to a notebook. Paragraphs are separated by lines
             containing only %hs.

Options:
  -c, --command=SNIPPET  Interpret the specified snippet.
  -C, --config=CONFIG    Read settings from CONFIG (TOML or YAML).
  -d, --debug            Log debugging information.
  -s, --stdin            Read paragraphs from stdin.
  -h, --help             Display this help.
  -v, --version          Print hsnb version.

If hsnb's stdin is a TTY, and hsnb was invoked with no file or snippet,
an interactive prompt is started. Otherwise, stdin is read as a notebook.
`

// T (options) holds the parsed command line.
type T struct {
	Command     string
	Config      string
	Debug       bool
	File        string
	Interactive bool
}

// Parse parses argv. Argv does not include the program name.
func Parse(argv []string) (*T, error) {
	parser := &docopt.Parser{
		HelpHandler:   docopt.PrintHelpAndExit,
		OptionsFirst:  false,
		SkipHelpFlags: false,
	}

	opts, err := parser.ParseArgs(usage, argv, Version)
	if err != nil {
		return nil, err
	}

	o := &T{}

	o.Command, _ = opts.String("--command")
	o.Config, _ = opts.String("--config")
	o.Debug, _ = opts.Bool("--debug")
	o.File, _ = opts.String("FILE")

	stdin, _ := opts.Bool("--stdin")

	if o.File == "" && o.Command == "" && !stdin {
		o.Interactive = isatty.IsTerminal(os.Stdin.Fd())
	}

	return o, nil
}

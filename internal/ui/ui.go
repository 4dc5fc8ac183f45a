// Released under an MIT license. See LICENSE.

// Package ui provides hsnb's command-line interfaces: an interactive
// prompt and a batch runner for notebooks.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/michaelmacinnis/hsnb/internal/reader"
	"github.com/michaelmacinnis/hsnb/internal/system/cache"
	"github.com/michaelmacinnis/hsnb/internal/system/config"
	"github.com/michaelmacinnis/hsnb/internal/system/history"
	"github.com/michaelmacinnis/hsnb/internal/type/result"
)

// Interactive prompt commands.
const (
	BlockEnd   = ":}"
	BlockStart = ":{"
	Quit       = ":quit"
)

// Interpreter is the interface for things that interpret snippets.
type Interpreter interface {
	Interpret(text string, out io.Writer) *result.T
}

// ParagraphError is a failed notebook paragraph.
type ParagraphError struct {
	Name string
	Line int
	Msg  string
}

func (e *ParagraphError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Name, e.Line, e.Msg)
}

// Printer writes results. Errors are written in red if color is enabled.
type Printer struct {
	err io.Writer
	out io.Writer
	red *color.Color
}

// NewPrinter creates a Printer writing payloads to out and errors to err.
func NewPrinter(out, err io.Writer, colored bool) *Printer {
	red := color.New(color.FgRed)
	if colored {
		red.EnableColor()
	} else {
		red.DisableColor()
	}

	return &Printer{err: err, out: out, red: red}
}

// Print writes r.
func (p *Printer) Print(r *result.T) {
	if r.Code() == result.Error {
		p.red.Fprintln(p.err, r.Message())

		return
	}

	if s := r.String(); s != "" {
		fmt.Fprintln(p.out, s)
	}
}

// Batch interprets each paragraph of the notebook read from r in order.
// Every paragraph is interpreted even if an earlier one fails. The
// returned error lists each failure.
func Batch(i Interpreter, name string, r io.Reader, p *Printer) error {
	var errs *multierror.Error

	nb := reader.New(name, r)

	for para, ok := nb.Next(); ok; para, ok = nb.Next() {
		logrus.WithFields(logrus.Fields{
			"file": name,
			"line": para.Line,
		}).Debug("interpreting paragraph")

		res := i.Interpret(para.Text, p.out)
		p.Print(res)

		if res.Code() == result.Error {
			errs = multierror.Append(errs, &ParagraphError{
				Name: name,
				Line: para.Line,
				Msg:  res.Message(),
			})
		}
	}

	if err := nb.Err(); err != nil {
		errs = multierror.Append(errs, err)
	}

	return errs.ErrorOrNil()
}

// Command interprets a single snippet.
func Command(i Interpreter, text string, p *Printer) error {
	res := i.Interpret(text, p.out)
	p.Print(res)

	if res.Code() == result.Error {
		return errors.New(res.Message())
	}

	return nil
}

// Run starts the interactive prompt. After each snippet the names used
// for completion are refreshed from names.
func Run(i Interpreter, names func() []string, cfg config.REPL, p *Printer) error {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(complete)

	if cfg.History != "" {
		if err := history.Load(cfg.History, cli.ReadHistory); err != nil {
			logrus.WithError(err).Warn("history not loaded")
		}

		defer func() {
			if err := history.Save(cfg.History, cli.WriteHistory); err != nil {
				logrus.WithError(err).Warn("history not saved")
			}
		}()
	}

	cache.Populate(names())

	s := &snippet{}

	for {
		prompt := cfg.Prompt
		if s.open {
			prompt = strings.Repeat(" ", len(prompt))
		}

		line, err := cli.Prompt(prompt)

		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted):
			s.reset()

			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(p.out)

			return nil
		default:
			return errors.Wrap(err, "error reading prompt")
		}

		if strings.TrimSpace(line) != "" {
			cli.AppendHistory(line)
		}

		text, quit := s.add(line)
		if quit {
			return nil
		}

		if text == "" {
			continue
		}

		p.Print(i.Interpret(text, p.out))

		cache.Populate(names())
	}
}

// complete completes the word ending at pos in line with a bound name.
func complete(line string, pos int) (head string, completions []string, tail string) {
	start := pos
	for start > 0 && identifier(line[start-1]) {
		start--
	}

	word := line[start:pos]
	if word == "" {
		return line[:pos], nil, line[pos:]
	}

	return line[:start], cache.Complete(word), line[pos:]
}

func identifier(c byte) bool {
	return c == '_' || c == '\'' || c == '.' ||
		('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// snippet accumulates the lines of a multi-line block.
type snippet struct {
	lines []string
	open  bool
}

// add adds line and returns the text that is ready to interpret, if any.
func (s *snippet) add(line string) (text string, quit bool) {
	trimmed := strings.TrimSpace(line)

	if !s.open {
		switch trimmed {
		case BlockStart:
			s.open = true

			return "", false
		case Quit, ":q":
			return "", true
		}

		return line, false
	}

	if trimmed == BlockEnd {
		text = strings.Join(s.lines, "\n")
		s.reset()

		return text, false
	}

	s.lines = append(s.lines, line)

	return "", false
}

func (s *snippet) reset() {
	s.lines = nil
	s.open = false
}

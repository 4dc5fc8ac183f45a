// Released under an MIT license. See LICENSE.

// Package reader splits a notebook into the paragraphs that are
// interpreted one at a time.
package reader

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Directive is the line that starts a new paragraph.
const Directive = "%hs"

// Paragraph is a snippet and the line it starts on.
type Paragraph struct {
	Line int
	Text string
}

// T (reader) reads paragraphs from a notebook.
type T struct {
	err     error
	line    int
	name    string
	scanner *bufio.Scanner
}

type reader = T

// New creates a new reader for r. Name is used in error messages.
func New(name string, r io.Reader) *T {
	return &reader{
		name:    name,
		scanner: bufio.NewScanner(r),
	}
}

// Err returns the first error encountered while reading.
func (r *reader) Err() error {
	return r.err
}

// Next returns the next paragraph that is not blank. It returns false at
// the end of the notebook or on error.
func (r *reader) Next() (*Paragraph, bool) {
	for {
		p, more := r.paragraph()
		if strings.TrimSpace(p.Text) != "" {
			return p, true
		}

		if !more {
			return nil, false
		}
	}
}

func (r *reader) paragraph() (*Paragraph, bool) {
	p := &Paragraph{Line: r.line + 1}
	lines := []string{}

	for r.scanner.Scan() {
		r.line++

		line := r.scanner.Text()
		if strings.TrimRight(line, " \t\r") == Directive {
			p.Text = strings.Join(lines, "\n")

			return p, true
		}

		if len(lines) == 0 && strings.TrimSpace(line) == "" {
			p.Line = r.line + 1

			continue
		}

		lines = append(lines, line)
	}

	if err := r.scanner.Err(); err != nil {
		r.err = errors.Wrapf(err, "error reading %s", r.name)
	}

	p.Text = strings.Join(lines, "\n")

	return p, false
}

// Released under an MIT license. See LICENSE.

package lexer

import (
	"testing"

	"github.com/michaelmacinnis/hsnb/internal/reader/token"
)

func TestComments(t *testing.T) {
	h := setup(t, "Comments")

	h.scan("-- line\n{- block {- nested -} -}\nx --> y",
		h.first(token.Ident, "x", 3, 1),
		h.other(token.Op, "-->", 3, 3),
		h.other(token.Ident, "y", 3, 7),
		h.other(token.EOF, "", 3, 8),
	)
}

func TestIdentifiers(t *testing.T) {
	h := setup(t, "Identifiers")

	h.scan("z_main x' Just",
		h.first(token.Ident, "z_main", 1, 1),
		h.other(token.Ident, "x'", 1, 8),
		h.other(token.ConID, "Just", 1, 11),
		h.other(token.EOF, "", 1, 15),
	)
}

func TestKeywords(t *testing.T) {
	h := setup(t, "Keywords")

	h.scan("let x = 1 in x",
		h.first(token.Keyword, "let", 1, 1),
		h.other(token.Ident, "x", 1, 5),
		h.other(token.Reserved, "=", 1, 7),
		h.other(token.Int, "1", 1, 9),
		h.other(token.Keyword, "in", 1, 11),
		h.other(token.Ident, "x", 1, 14),
		h.other(token.EOF, "", 1, 15),
	)
}

func TestLayout(t *testing.T) {
	h := setup(t, "Layout")

	h.scan("do\n  print 1\n  x",
		h.first(token.Keyword, "do", 1, 1),
		h.first(token.Ident, "print", 2, 3),
		h.other(token.Int, "1", 2, 9),
		h.first(token.Ident, "x", 3, 3),
		h.other(token.EOF, "", 3, 4),
	)
}

func TestLiterals(t *testing.T) {
	h := setup(t, "Literals")

	h.scan(`"a\tb" '\n' 'x'`,
		h.first(token.String, "a\tb", 1, 1),
		h.other(token.Char, "\n", 1, 8),
		h.other(token.Char, "x", 1, 13),
		h.other(token.EOF, "", 1, 16),
	)
}

func TestNumbers(t *testing.T) {
	h := setup(t, "Numbers")

	h.scan("1 2.5 1e3 [1..3]",
		h.first(token.Int, "1", 1, 1),
		h.other(token.Float, "2.5", 1, 3),
		h.other(token.Float, "1e3", 1, 7),
		h.other('[', "[", 1, 11),
		h.other(token.Int, "1", 1, 12),
		h.other(token.Reserved, "..", 1, 13),
		h.other(token.Int, "3", 1, 15),
		h.other(']', "]", 1, 16),
		h.other(token.EOF, "", 1, 17),
	)
}

func TestOperators(t *testing.T) {
	h := setup(t, "Operators")

	h.scan("x:xs ++ `div` \\ ->",
		h.first(token.Ident, "x", 1, 1),
		h.other(token.Op, ":", 1, 2),
		h.other(token.Ident, "xs", 1, 3),
		h.other(token.Op, "++", 1, 6),
		h.other('`', "`", 1, 9),
		h.other(token.Ident, "div", 1, 10),
		h.other('`', "`", 1, 13),
		h.other(token.Reserved, "\\", 1, 15),
		h.other(token.Reserved, "->", 1, 17),
		h.other(token.EOF, "", 1, 19),
	)
}

func TestUnterminatedString(t *testing.T) {
	h := setup(t, "UnterminatedString")

	ts := New(h.name, "x = \"abc").Tokens()

	last := ts[len(ts)-1]
	if !last.Is(token.Error) {
		t.Fatalf("Expected an error; got %v", last)
	}
}

type expected struct {
	class token.Class
	first bool
	value string
	line  int
	char  int
}

type harness struct {
	name string
	t    *testing.T
}

func setup(t *testing.T, name string) *harness {
	t.Helper()

	return &harness{name: name, t: t}
}

func (h *harness) first(c token.Class, v string, line, char int) expected {
	return expected{class: c, first: true, value: v, line: line, char: char}
}

func (h *harness) other(c token.Class, v string, line, char int) expected {
	return expected{class: c, value: v, line: line, char: char}
}

func (h *harness) scan(s string, tokens ...expected) {
	h.t.Helper()

	actual := New(h.name, s).Tokens()

	if len(actual) != len(tokens) {
		h.t.Fatalf("%s: expected %d tokens; got %d: %v", h.name, len(tokens), len(actual), actual)
	}

	for i, e := range tokens {
		a := actual[i]

		switch {
		case a.Class() != e.class:
			h.t.Fatalf("%s: token %d: expected class %v; got %v", h.name, i, e.class, a.Class())
		case a.Value() != e.value:
			h.t.Fatalf("%s: token %d: expected %q; got %q", h.name, i, e.value, a.Value())
		case a.First() != e.first:
			h.t.Fatalf("%s: token %d (%q): expected first=%v", h.name, i, e.value, e.first)
		case a.Source().Line != e.line || a.Source().Char != e.char:
			h.t.Fatalf("%s: token %d (%q): expected %d:%d; got %s",
				h.name, i, e.value, e.line, e.char, a.Source())
		case a.Source().Name != h.name:
			h.t.Fatalf("%s: token %d: expected label %q; got %q", h.name, i, h.name, a.Source().Name)
		}
	}
}

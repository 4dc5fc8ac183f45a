// Released under an MIT license. See LICENSE.

// Package token is shared by the lexer and parser.
package token

import (
	"strconv"
	"unicode"

	"github.com/michaelmacinnis/hsnb/internal/type/loc"
)

// Class is a token's type.
type Class rune

// T (token) is a lexical item returned by the scanner.
type T struct {
	class  Class
	first  bool
	source *loc.T
	value  string
}

type token = T

// Token classes. Punctuation uses the rune itself as its class.
const (
	Error Class = iota

	Char Class = unicode.MaxRune + iota
	ConID
	EOF
	Float
	Ident
	Int
	Keyword
	Op
	Reserved
	String
)

// New creates a new token.
func New(class Class, value string, source *loc.T) *token {
	return &token{
		class:  class,
		source: source,
		value:  value,
	}
}

// String returns a string representation of Class. Useful for debugging.
func (c *Class) String() string {
	switch *c {
	case Error:
		return "Error"
	case Char:
		return "Char"
	case ConID:
		return "ConID"
	case EOF:
		return "EOF"
	case Float:
		return "Float"
	case Ident:
		return "Ident"
	case Int:
		return "Int"
	case Keyword:
		return "Keyword"
	case Op:
		return "Op"
	case Reserved:
		return "Reserved"
	case String:
		return "String"
	}

	return strconv.QuoteRune(rune(*c))
}

// Class returns the token's class.
func (t *token) Class() Class {
	if t == nil {
		return EOF
	}

	return t.class
}

// First returns true if t is the first token on its line.
func (t *token) First() bool {
	return t != nil && t.first
}

// Is returns true if the token t is any of the classes in cs.
func (t *token) Is(cs ...Class) bool {
	if t == nil {
		return false
	}

	for _, c := range cs {
		if t.class == c {
			return true
		}
	}

	return false
}

// IsWord returns true if t is of class c and has the value v.
// Useful for keywords, operators, and reserved operators.
func (t *token) IsWord(c Class, v string) bool {
	return t.Is(c) && t.value == v
}

// MarkFirst flags t as the first token on its line.
func (t *token) MarkFirst() {
	t.first = true
}

// Source returns the source location for this token.
func (t *token) Source() *loc.T {
	return t.source
}

// String returns the token's string representation. Useful for debugging.
func (t *token) String() string {
	return strconv.Quote(t.value) + "(" +
		t.class.String() + "," +
		t.source.String() + ")"
}

// Value returns the token's string value.
func (t *token) Value() string {
	return t.value
}

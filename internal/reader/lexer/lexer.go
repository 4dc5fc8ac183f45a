// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for notebook snippets.
//
// The lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
//
// Newlines are not emitted. Instead each token records its column and
// whether it is the first token on its line so that the parser can apply
// the layout rule.
package lexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/hsnb/internal/reader/token"
	"github.com/michaelmacinnis/hsnb/internal/type/loc"
)

// T holds the state of the scanner.
type T struct {
	bytes string // Buffer being scanned.
	first int    // Index of the current token's first byte.
	fresh bool   // No token has been emitted on the current line.
	index int    // Index of the current byte.
	line  int    // Line of the current byte.
	runes int    // Column of the current byte.
	state action // Current action.

	source loc.T

	tokens []*token.T
}

// New creates a new T for text. Label can be a file name or other identifier.
func New(label, text string) *T {
	return &T{
		bytes: text,
		fresh: true,
		line:  1,
		runes: 1,
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
		state: skipWhitespace,
	}
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil once the EOF or Error token
// has been returned.
func (l *T) Token() *token.T {
	for len(l.tokens) == 0 {
		if l.state == nil {
			return nil
		}

		l.state = l.state(l)
	}

	t := l.tokens[0]
	l.tokens = l.tokens[1:]

	return t
}

// Tokens scans the entire buffer. The last token is always EOF or Error.
func (l *T) Tokens() []*token.T {
	var ts []*token.T

	for t := l.Token(); t != nil; t = l.Token() {
		ts = append(ts, t)
	}

	return ts
}

type action func(*T) action

const eof = -1

//nolint:gochecknoglobals
var keywords = map[string]bool{
	"case":     true,
	"class":    true,
	"data":     true,
	"deriving": true,
	"do":       true,
	"else":     true,
	"if":       true,
	"import":   true,
	"in":       true,
	"infix":    true,
	"infixl":   true,
	"infixr":   true,
	"instance": true,
	"let":      true,
	"module":   true,
	"newtype":  true,
	"of":       true,
	"then":     true,
	"type":     true,
	"where":    true,
}

//nolint:gochecknoglobals
var reserved = map[string]bool{
	"..": true,
	"::": true,
	"=":  true,
	"\\": true,
	"|":  true,
	"<-": true,
	"->": true,
	"@":  true,
	"~":  true,
	"=>": true,
}

func (l *T) accept(r rune, w int) {
	if r == '\n' {
		l.line++
		l.runes = 1
		l.fresh = true
	} else {
		l.runes++
	}

	l.index += w
}

func (l *T) at(prefix string) bool {
	return strings.HasPrefix(l.bytes[l.index:], prefix)
}

func (l *T) emit(c token.Class, v string) {
	source := l.source

	t := token.New(c, v, &source)
	if l.fresh {
		t.MarkFirst()
		l.fresh = false
	}

	l.tokens = append(l.tokens, t)
	l.skip()
}

func (l *T) errorf(format string, args ...interface{}) action {
	l.emit(token.Error, fmt.Sprintf(format, args...))

	return nil
}

func (l *T) next() rune {
	r, w := l.peek()
	l.accept(r, w)

	return r
}

func (l *T) peek() (rune, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return r, w
}

func (l *T) skip() {
	l.source.Char = l.runes
	l.source.Line = l.line
	l.first = l.index
}

// A line comment is two or more dashes not followed by another symbol.
func (l *T) startsLineComment() bool {
	j := l.index
	for j < len(l.bytes) && l.bytes[j] == '-' {
		j++
	}

	if j-l.index < 2 { //nolint:gomnd
		return false
	}

	if j == len(l.bytes) {
		return true
	}

	r, _ := utf8.DecodeRuneInString(l.bytes[j:])

	return !isSymbol(r)
}

func isIdent(r rune) bool {
	return r == '_' || r == '\'' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isSymbol(r rune) bool {
	return r >= 0 && strings.ContainsRune("!#$%&*+./<=>?@\\^|-~:", r)
}

// T states.

func scanBlockComment(l *T) action {
	depth := 0

	for {
		switch {
		case l.at("{-"):
			depth++
			l.accept('{', 1)
			l.accept('-', 1)
		case l.at("-}"):
			depth--
			l.accept('-', 1)
			l.accept('}', 1)

			if depth == 0 {
				l.skip()

				return skipWhitespace
			}
		default:
			if l.next() == eof {
				return l.errorf("unterminated block comment")
			}
		}
	}
}

func scanChar(l *T) action {
	for {
		switch l.next() {
		case '\\':
			l.next()
		case '\'':
			text := l.Text()

			s, err := adapted.ActualBytes(text[1 : len(text)-1])
			if err != nil || utf8.RuneCountInString(s) != 1 {
				return l.errorf("invalid character literal %s", text)
			}

			l.emit(token.Char, s)

			return skipWhitespace
		case '\n', eof:
			return l.errorf("unterminated character literal")
		}
	}
}

func scanIdentifier(l *T) action {
	for {
		r, w := l.peek()
		if !isIdent(r) {
			break
		}

		l.accept(r, w)
	}

	s := l.Text()

	switch {
	case keywords[s]:
		l.emit(token.Keyword, s)
	case unicode.IsUpper([]rune(s)[0]):
		l.emit(token.ConID, s)
	default:
		l.emit(token.Ident, s)
	}

	return skipWhitespace
}

func scanLineComment(l *T) action {
	for {
		r, w := l.peek()
		if r == '\n' || r == eof {
			l.skip()

			return skipWhitespace
		}

		l.accept(r, w)
	}
}

func scanNumber(l *T) action {
	digits := func() int {
		n := 0

		for {
			r, w := l.peek()
			if !unicode.IsDigit(r) {
				return n
			}

			l.accept(r, w)
			n++
		}
	}

	digits()

	class := token.Int

	if l.at(".") && len(l.bytes) > l.index+1 && unicode.IsDigit(rune(l.bytes[l.index+1])) {
		l.accept('.', 1)
		digits()

		class = token.Float
	}

	if l.at("e") || l.at("E") {
		mark, runes := l.index, l.runes

		l.accept('e', 1)

		if l.at("+") || l.at("-") {
			l.accept('+', 1)
		}

		if digits() > 0 {
			class = token.Float
		} else {
			l.index, l.runes = mark, runes
		}
	}

	l.emit(class, l.Text())

	return skipWhitespace
}

func scanOperator(l *T) action {
	for {
		r, w := l.peek()
		if !isSymbol(r) {
			break
		}

		l.accept(r, w)
	}

	s := l.Text()
	if reserved[s] {
		l.emit(token.Reserved, s)
	} else {
		l.emit(token.Op, s)
	}

	return skipWhitespace
}

func scanString(l *T) action {
	for {
		switch l.next() {
		case '\\':
			l.next()
		case '"':
			text := l.Text()

			s, err := adapted.ActualBytes(text[1 : len(text)-1])
			if err != nil {
				return l.errorf("invalid string literal %s: %v", text, err)
			}

			l.emit(token.String, s)

			return skipWhitespace
		case '\n', eof:
			return l.errorf("unterminated string literal")
		}
	}
}

func skipWhitespace(l *T) action {
	for {
		r, w := l.peek()
		if r == eof || !unicode.IsSpace(r) {
			break
		}

		l.accept(r, w)
	}

	l.skip()

	r, w := l.peek()

	switch {
	case r == eof:
		l.emit(token.EOF, "")

		return nil
	case r == '-' && l.startsLineComment():
		return scanLineComment
	case l.at("{-"):
		return scanBlockComment
	case unicode.IsDigit(r):
		return scanNumber
	case r == '_' || unicode.IsLetter(r):
		return scanIdentifier
	case r == '"':
		l.accept(r, w)

		return scanString
	case r == '\'':
		l.accept(r, w)

		return scanChar
	case strings.ContainsRune("()[],;`{}", r):
		l.accept(r, w)
		l.emit(token.Class(r), l.Text())

		return skipWhitespace
	case isSymbol(r):
		return scanOperator
	}

	l.accept(r, w)

	return l.errorf("unexpected character %q", r)
}

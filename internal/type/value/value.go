// Released under an MIT license. See LICENSE.

// Package value provides the runtime values manipulated by the script engine.
package value

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// T (value) is a runtime value. Show returns the value's source-like
// representation and may force deferred parts of the value.
type T interface {
	Show() string
}

// Lazy is a value whose evaluation has been deferred.
type Lazy interface {
	T
	Force() T
}

// Func is a function value.
type Func interface {
	T
	Apply(arg T) T
}

// Error is a runtime error raised while evaluating or forcing a value.
type Error struct {
	Msg string
}

func (e *Error) Error() string {
	return e.Msg
}

// Errorf raises a runtime error.
func Errorf(format string, args ...interface{}) {
	panic(&Error{Msg: fmt.Sprintf(format, args...)})
}

// Force evaluates v until it is no longer lazy.
func Force(v T) T {
	for {
		l, ok := v.(Lazy)
		if !ok {
			return v
		}

		v = l.Force()
	}
}

// Scalars.

// Bool is a boolean.
type Bool bool

// Show returns True or False.
func (b Bool) Show() string {
	if b {
		return "True"
	}

	return "False"
}

// Char is a character.
type Char rune

// Show returns the quoted character.
func (c Char) Show() string {
	return strconv.QuoteRune(rune(c))
}

// Double is a double precision floating point number.
type Double float64

// Show returns the number, always with a decimal point or exponent.
func (d Double) Show() string {
	f := float64(d)

	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.IsNaN(f):
		return "NaN"
	}

	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.ContainsAny(s, ".") {
		return s
	}

	if i := strings.IndexByte(s, 'e'); i >= 0 {
		return s[:i] + ".0" + s[i:]
	}

	return s + ".0"
}

// Int is a machine integer.
type Int int64

// Show returns the integer in decimal.
func (i Int) Show() string {
	return strconv.FormatInt(int64(i), 10)
}

// Str is a string.
type Str string

// Show returns the quoted string.
func (s Str) Show() string {
	return strconv.Quote(string(s))
}

// Unit is the value ().
type Unit struct{}

// Show returns ().
func (Unit) Show() string {
	return "()"
}

// Structured values.

// Con is a constructor applied to its arguments.
type Con struct {
	Name string
	Args []T
}

// Nothing is the empty Maybe.
var Nothing = &Con{Name: "Nothing"} //nolint:gochecknoglobals

// Just wraps v in a Maybe.
func Just(v T) *Con {
	return &Con{Name: "Just", Args: []T{v}}
}

// Show returns the constructor followed by its arguments.
func (c *Con) Show() string {
	if len(c.Args) == 0 {
		return c.Name
	}

	parts := []string{c.Name}
	for _, a := range c.Args {
		parts = append(parts, showArg(a))
	}

	return strings.Join(parts, " ")
}

func showArg(v T) string {
	s := Force(v).Show()

	switch a := Force(v).(type) {
	case *Con:
		if len(a.Args) > 0 {
			return "(" + s + ")"
		}
	case Int, Double:
		if strings.HasPrefix(s, "-") {
			return "(" + s + ")"
		}
	}

	return s
}

// Tuple is a tuple of two or more values.
type Tuple []T

// Show returns the elements separated by commas in parentheses.
func (t Tuple) Show() string {
	parts := make([]string, len(t))
	for i, v := range t {
		parts[i] = Force(v).Show()
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

// Cons is a non-empty list. Tail is a list, possibly lazy.
type Cons struct {
	Head T
	Tail T
}

type empty struct{}

// Nil is the empty list.
var Nil T = empty{} //nolint:gochecknoglobals

func (empty) Show() string {
	return "[]"
}

// Show returns the elements separated by commas in brackets.
// The whole list is forced.
func (c *Cons) Show() string {
	var b strings.Builder

	b.WriteByte('[')

	var v T = c
	for first := true; ; first = false {
		h, t, ok := Uncons(v)
		if !ok {
			break
		}

		if !first {
			b.WriteString(", ")
		}

		b.WriteString(Force(h).Show())

		v = t
	}

	b.WriteByte(']')

	return b.String()
}

// Action is an IO action. Run performs the action writing any output to w.
type Action struct {
	Run func(w io.Writer) T
}

// Show returns a placeholder. Actions cannot be shown.
func (a *Action) Show() string {
	return "<IO>"
}

// Return wraps v in an action that does nothing.
func Return(v T) *Action {
	return &Action{Run: func(io.Writer) T { return v }}
}

// Helpers.

// Display returns the string of a Str or Char without quotes and the
// shown value for everything else.
func Display(v T) string {
	switch v := Force(v).(type) {
	case Str:
		return string(v)
	case Char:
		return string(rune(v))
	default:
		return v.Show()
	}
}

// FromSlice builds a list from vs.
func FromSlice(vs []T) T {
	l := Nil
	for i := len(vs) - 1; i >= 0; i-- {
		l = &Cons{Head: vs[i], Tail: l}
	}

	return l
}

// ToSlice forces the spine of list v and returns its elements.
func ToSlice(v T) []T {
	vs := []T{}

	for {
		h, t, ok := Uncons(v)
		if !ok {
			return vs
		}

		vs = append(vs, h)
		v = t
	}
}

// Uncons splits a non-empty list or string into its head and tail.
// It returns false for an empty list or string.
func Uncons(v T) (head, tail T, ok bool) {
	switch l := Force(v).(type) {
	case *Cons:
		return l.Head, l.Tail, true
	case empty:
		return nil, nil, false
	case Str:
		if l == "" {
			return nil, nil, false
		}

		r := []rune(string(l))

		return Char(r[0]), Str(string(r[1:])), true
	default:
		Errorf("expected a list, found %s", TypeName(l))
	}

	return nil, nil, false
}

// TypeName returns a short description of v's type for error messages.
func TypeName(v T) string {
	switch v := v.(type) {
	case Bool:
		return "Bool"
	case Char:
		return "Char"
	case Double:
		return "Double"
	case Int:
		return "Int"
	case Str:
		return "String"
	case Unit:
		return "()"
	case *Con:
		return v.Name
	case Tuple:
		return "tuple"
	case *Cons, empty:
		return "list"
	case *Action:
		return "IO action"
	case Func:
		return "function"
	}

	return fmt.Sprintf("%T", v)
}

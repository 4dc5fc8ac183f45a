// Released under an MIT license. See LICENSE.

package value

import (
	"strings"
)

// Compare orders a and b returning -1, 0 or 1. Values of different
// types are only comparable when both are numbers or both are sequences
// of characters.
func Compare(a, b T) int {
	a, b = Force(a), Force(b)

	switch x := a.(type) {
	case Int:
		switch y := b.(type) {
		case Int:
			return cmp(x < y, x > y)
		case Double:
			return cmp(Double(x) < y, Double(x) > y)
		}
	case Double:
		switch y := b.(type) {
		case Int:
			return cmp(x < Double(y), x > Double(y))
		case Double:
			return cmp(x < y, x > y)
		}
	case Char:
		if y, ok := b.(Char); ok {
			return cmp(x < y, x > y)
		}
	case Bool:
		if y, ok := b.(Bool); ok {
			return cmp(!bool(x) && bool(y), bool(x) && !bool(y))
		}
	case Unit:
		if _, ok := b.(Unit); ok {
			return 0
		}
	case Str:
		if y, ok := b.(Str); ok {
			return strings.Compare(string(x), string(y))
		}

		return compareLists(a, b)
	case Tuple:
		if y, ok := b.(Tuple); ok && len(x) == len(y) {
			for i := range x {
				if c := Compare(x[i], y[i]); c != 0 {
					return c
				}
			}

			return 0
		}
	case *Con:
		if y, ok := b.(*Con); ok {
			return compareCons(x, y)
		}
	case *Cons, empty:
		return compareLists(a, b)
	}

	Errorf("cannot compare %s with %s", TypeName(a), TypeName(b))

	return 0
}

// Equal returns true if a and b are equal.
func Equal(a, b T) bool {
	return Compare(a, b) == 0
}

func cmp(less, greater bool) int {
	switch {
	case less:
		return -1
	case greater:
		return 1
	}

	return 0
}

func compareCons(x, y *Con) int {
	// Nothing < Just, otherwise constructors compare by name.
	if x.Name != y.Name {
		if x.Name == "Nothing" {
			return -1
		}

		if y.Name == "Nothing" {
			return 1
		}

		return strings.Compare(x.Name, y.Name)
	}

	for i := range x.Args {
		if i >= len(y.Args) {
			return 1
		}

		if c := Compare(x.Args[i], y.Args[i]); c != 0 {
			return c
		}
	}

	return cmp(len(x.Args) < len(y.Args), false)
}

func compareLists(a, b T) int {
	for {
		ah, at, aok := Uncons(a)
		bh, bt, bok := Uncons(b)

		switch {
		case !aok && !bok:
			return 0
		case !aok:
			return -1
		case !bok:
			return 1
		}

		if c := Compare(ah, bh); c != 0 {
			return c
		}

		a, b = at, bt
	}
}

// Released under an MIT license. See LICENSE.

package script

import (
	"math"
	"strings"
	"unicode"

	"github.com/michaelmacinnis/hsnb/internal/type/env"
	"github.com/michaelmacinnis/hsnb/internal/type/value"
)

type bindings struct {
	*env.T
}

func (b bindings) def(name string, arity int, fn func(args []value.T) value.T) {
	b.Define(name, &builtin{name: name, arity: arity, fn: fn})
}

// prelude creates the env holding the standard functions. Each group of
// functions is bound by its own function.
func prelude() *env.T {
	b := bindings{env.New(nil)}

	bindCore(b)
	bindArithmetic(b)
	bindLists(b)
	bindStrings(b)
	bindIO(b)

	return b.T
}

// Conversions used by builtins. Each forces its argument.

func truth(v value.T) bool {
	v = value.Force(v)

	b, ok := v.(value.Bool)
	if !ok {
		value.Errorf("expected Bool, found %s", value.TypeName(v))
	}

	return bool(b)
}

func char(v value.T) rune {
	v = value.Force(v)

	c, ok := v.(value.Char)
	if !ok {
		value.Errorf("expected Char, found %s", value.TypeName(v))
	}

	return rune(c)
}

func integer(v value.T) int64 {
	v = value.Force(v)

	i, ok := v.(value.Int)
	if !ok {
		value.Errorf("expected Int, found %s", value.TypeName(v))
	}

	return int64(i)
}

func double(v value.T) float64 {
	switch n := value.Force(v).(type) {
	case value.Int:
		return float64(n)
	case value.Double:
		return float64(n)
	}

	value.Errorf("expected a number, found %s", value.TypeName(value.Force(v)))

	return 0
}

// text returns the contents of a Str or a list of characters.
func text(v value.T) string {
	if s, ok := value.Force(v).(value.Str); ok {
		return string(s)
	}

	var b strings.Builder
	for _, c := range value.ToSlice(v) {
		b.WriteRune(char(c))
	}

	return b.String()
}

func sign(v value.T) int {
	return value.Compare(v, value.Int(0))
}

func constructor(name string) value.T {
	switch name {
	case "True":
		return value.Bool(true)
	case "False":
		return value.Bool(false)
	case "Nothing":
		return value.Nothing
	case "Just":
		return &builtin{name: name, arity: 1, fn: func(args []value.T) value.T {
			return value.Just(args[0])
		}}
	case "LT", "EQ", "GT":
		return &value.Con{Name: name}
	}

	value.Errorf("unknown constructor %s", name)

	return nil
}

func bindCore(b bindings) {
	b.Define("otherwise", value.Bool(true))

	b.def("(,)", 2, func(args []value.T) value.T {
		return value.Tuple{args[0], args[1]}
	})
	b.def("$", 2, func(args []value.T) value.T {
		return apply(args[0], args[1])
	})
	b.def("$!", 2, func(args []value.T) value.T {
		return apply(args[0], value.Force(args[1]))
	})
	b.def(".", 3, func(args []value.T) value.T { //nolint:gomnd
		return apply(args[0], lazy(func() value.T {
			return apply(args[1], args[2])
		}))
	})
	b.def("&&", 2, func(args []value.T) value.T {
		return value.Bool(truth(args[0]) && truth(args[1]))
	})
	b.def("||", 2, func(args []value.T) value.T {
		return value.Bool(truth(args[0]) || truth(args[1]))
	})
	b.def("not", 1, func(args []value.T) value.T {
		return value.Bool(!truth(args[0]))
	})
	b.def("==", 2, func(args []value.T) value.T {
		return value.Bool(value.Equal(args[0], args[1]))
	})
	b.def("/=", 2, func(args []value.T) value.T {
		return value.Bool(!value.Equal(args[0], args[1]))
	})
	b.def("<", 2, func(args []value.T) value.T {
		return value.Bool(value.Compare(args[0], args[1]) < 0)
	})
	b.def("<=", 2, func(args []value.T) value.T {
		return value.Bool(value.Compare(args[0], args[1]) <= 0)
	})
	b.def(">", 2, func(args []value.T) value.T {
		return value.Bool(value.Compare(args[0], args[1]) > 0)
	})
	b.def(">=", 2, func(args []value.T) value.T {
		return value.Bool(value.Compare(args[0], args[1]) >= 0)
	})
	b.def("compare", 2, func(args []value.T) value.T {
		return &value.Con{Name: [...]string{"LT", "EQ", "GT"}[value.Compare(args[0], args[1])+1]}
	})
	b.def("min", 2, func(args []value.T) value.T {
		if value.Compare(args[0], args[1]) <= 0 {
			return value.Force(args[0])
		}

		return value.Force(args[1])
	})
	b.def("max", 2, func(args []value.T) value.T {
		if value.Compare(args[0], args[1]) >= 0 {
			return value.Force(args[0])
		}

		return value.Force(args[1])
	})
	b.def("id", 1, func(args []value.T) value.T {
		return value.Force(args[0])
	})
	b.def("const", 2, func(args []value.T) value.T {
		return value.Force(args[0])
	})
	b.def("flip", 3, func(args []value.T) value.T { //nolint:gomnd
		return apply(args[0], args[2], args[1])
	})
	b.def("seq", 2, func(args []value.T) value.T {
		value.Force(args[0])

		return value.Force(args[1])
	})
	b.def("fst", 1, func(args []value.T) value.T {
		return value.Force(pair(args[0])[0])
	})
	b.def("snd", 1, func(args []value.T) value.T {
		return value.Force(pair(args[0])[1])
	})
	b.def("error", 1, func(args []value.T) value.T {
		value.Errorf("%s", text(args[0]))

		return nil
	})
	b.Define("undefined", lazy(func() value.T {
		value.Errorf("Prelude.undefined")

		return nil
	}))
	b.def("show", 1, func(args []value.T) value.T {
		return value.Str(value.Force(args[0]).Show())
	})
	b.def("display", 1, func(args []value.T) value.T {
		return value.Str(value.Display(args[0]))
	})
	b.def("maybe", 3, func(args []value.T) value.T { //nolint:gomnd
		c := maybe(args[2])
		if c.Name == "Nothing" {
			return value.Force(args[0])
		}

		return apply(args[1], c.Args[0])
	})
	b.def("fromMaybe", 2, func(args []value.T) value.T {
		c := maybe(args[1])
		if c.Name == "Nothing" {
			return value.Force(args[0])
		}

		return value.Force(c.Args[0])
	})
	b.def("isJust", 1, func(args []value.T) value.T {
		return value.Bool(maybe(args[0]).Name == "Just")
	})
	b.def("isNothing", 1, func(args []value.T) value.T {
		return value.Bool(maybe(args[0]).Name == "Nothing")
	})
}

func pair(v value.T) value.Tuple {
	v = value.Force(v)

	t, ok := v.(value.Tuple)
	if !ok || len(t) != 2 { //nolint:gomnd
		value.Errorf("expected a pair, found %s", value.TypeName(v))
	}

	return t
}

func maybe(v value.T) *value.Con {
	v = value.Force(v)

	c, ok := v.(*value.Con)
	if !ok || (c.Name != "Just" && c.Name != "Nothing") {
		value.Errorf("expected Maybe, found %s", value.TypeName(v))
	}

	return c
}

// arith applies a binary arithmetic operator. Ints stay Ints unless
// mixed with a Double.
func arith(op string, a, b value.T) value.T {
	a, b = value.Force(a), value.Force(b)

	x, xok := a.(value.Int)
	y, yok := b.(value.Int)

	if xok && yok {
		switch op {
		case "+":
			return x + y
		case "-":
			return x - y
		case "*":
			return x * y
		}
	}

	f, g := double(a), double(b)

	switch op {
	case "+":
		return value.Double(f + g)
	case "-":
		return value.Double(f - g)
	case "*":
		return value.Double(f * g)
	case "/":
		return value.Double(f / g)
	}

	value.Errorf("unknown operator %s", op)

	return nil
}

func divide(op string, a, b value.T) value.T {
	x, y := integer(a), integer(b)
	if y == 0 {
		value.Errorf("divide by zero")
	}

	q, r := x/y, x%y

	switch op {
	case "quot":
		return value.Int(q)
	case "rem":
		return value.Int(r)
	case "div":
		if r != 0 && (r < 0) != (y < 0) {
			q--
		}

		return value.Int(q)
	case "mod":
		if r != 0 && (r < 0) != (y < 0) {
			r += y
		}

		return value.Int(r)
	}

	value.Errorf("unknown operator %s", op)

	return nil
}

func bindArithmetic(b bindings) {
	for _, op := range []string{"+", "-", "*", "/"} {
		op := op

		b.def(op, 2, func(args []value.T) value.T {
			return arith(op, args[0], args[1])
		})
	}

	for _, op := range []string{"div", "mod", "quot", "rem"} {
		op := op

		b.def(op, 2, func(args []value.T) value.T {
			return divide(op, args[0], args[1])
		})
	}

	b.def("^", 2, func(args []value.T) value.T {
		n := integer(args[1])
		if n < 0 {
			value.Errorf("negative exponent")
		}

		base := value.Force(args[0])
		if i, ok := base.(value.Int); ok {
			r := value.Int(1)
			for ; n > 0; n-- {
				r *= i
			}

			return r
		}

		return value.Double(math.Pow(double(base), float64(n)))
	})
	b.def("**", 2, func(args []value.T) value.T {
		return value.Double(math.Pow(double(args[0]), double(args[1])))
	})
	b.def("negate", 1, func(args []value.T) value.T {
		return arith("-", value.Int(0), args[0])
	})
	b.def("abs", 1, func(args []value.T) value.T {
		if sign(args[0]) < 0 {
			return arith("-", value.Int(0), args[0])
		}

		return value.Force(args[0])
	})
	b.def("signum", 1, func(args []value.T) value.T {
		return value.Int(sign(args[0]))
	})
	b.def("even", 1, func(args []value.T) value.T {
		return value.Bool(integer(args[0])%2 == 0)
	})
	b.def("odd", 1, func(args []value.T) value.T {
		return value.Bool(integer(args[0])%2 != 0)
	})
	b.def("gcd", 2, func(args []value.T) value.T {
		return value.Int(gcd(integer(args[0]), integer(args[1])))
	})
	b.def("lcm", 2, func(args []value.T) value.T {
		x, y := integer(args[0]), integer(args[1])
		if x == 0 || y == 0 {
			return value.Int(0)
		}

		l := x / gcd(x, y) * y
		if l < 0 {
			l = -l
		}

		return value.Int(l)
	})
	b.def("succ", 1, func(args []value.T) value.T {
		return step(args[0], 1)
	})
	b.def("pred", 1, func(args []value.T) value.T {
		return step(args[0], -1)
	})

	for _, name := range []string{"fromIntegral", "toInteger", "fromInteger", "toDouble"} {
		name := name

		b.def(name, 1, func(args []value.T) value.T {
			if name == "toDouble" {
				return value.Double(double(args[0]))
			}

			return value.Force(args[0])
		})
	}

	rounding := map[string]func(float64) float64{
		"ceiling":  math.Ceil,
		"floor":    math.Floor,
		"round":    math.RoundToEven,
		"truncate": math.Trunc,
	}
	for name, fn := range rounding {
		fn := fn

		b.def(name, 1, func(args []value.T) value.T {
			return value.Int(int64(fn(double(args[0]))))
		})
	}

	b.def("sqrt", 1, func(args []value.T) value.T {
		return value.Double(math.Sqrt(double(args[0])))
	})
	b.Define("pi", value.Double(math.Pi))
}

func gcd(x, y int64) int64 {
	if x < 0 {
		x = -x
	}

	if y < 0 {
		y = -y
	}

	for y != 0 {
		x, y = y, x%y
	}

	return x
}

func step(v value.T, n int64) value.T {
	switch x := value.Force(v).(type) {
	case value.Char:
		return value.Char(rune(int64(x) + n))
	case value.Int:
		return x + value.Int(n)
	}

	return arith("+", v, value.Int(n))
}

func bindStrings(b bindings) {
	b.def("packed", 1, func(args []value.T) value.T {
		return value.Str(text(args[0]))
	})
	b.def("unpacked", 1, func(args []value.T) value.T {
		return chars(text(args[0]))
	})
	b.def("ord", 1, func(args []value.T) value.T {
		return value.Int(char(args[0]))
	})
	b.def("chr", 1, func(args []value.T) value.T {
		return value.Char(rune(integer(args[0])))
	})

	mapping := map[string]func(rune) rune{
		"toUpper": unicode.ToUpper,
		"toLower": unicode.ToLower,
	}
	for name, fn := range mapping {
		fn := fn

		b.def(name, 1, func(args []value.T) value.T {
			if s, ok := value.Force(args[0]).(value.Str); ok {
				return value.Str(strings.Map(fn, string(s)))
			}

			return value.Char(fn(char(args[0])))
		})
	}

	predicates := map[string]func(rune) bool{
		"isDigit": unicode.IsDigit,
		"isLower": unicode.IsLower,
		"isSpace": unicode.IsSpace,
		"isUpper": unicode.IsUpper,
		"isAlpha": unicode.IsLetter,
	}
	for name, fn := range predicates {
		fn := fn

		b.def(name, 1, func(args []value.T) value.T {
			return value.Bool(fn(char(args[0])))
		})
	}

	b.def("lines", 1, func(args []value.T) value.T {
		s := text(args[0])
		if s == "" {
			return value.Nil
		}

		return strs(strings.Split(strings.TrimSuffix(s, "\n"), "\n"))
	})
	b.def("unlines", 1, func(args []value.T) value.T {
		var sb strings.Builder
		for _, l := range value.ToSlice(args[0]) {
			sb.WriteString(text(l))
			sb.WriteByte('\n')
		}

		return value.Str(sb.String())
	})
	b.def("words", 1, func(args []value.T) value.T {
		return strs(strings.Fields(text(args[0])))
	})
	b.def("unwords", 1, func(args []value.T) value.T {
		ws := []string{}
		for _, w := range value.ToSlice(args[0]) {
			ws = append(ws, text(w))
		}

		return value.Str(strings.Join(ws, " "))
	})
}

func chars(s string) value.T {
	vs := []value.T{}
	for _, r := range s {
		vs = append(vs, value.Char(r))
	}

	return value.FromSlice(vs)
}

func strs(ss []string) value.T {
	vs := make([]value.T, len(ss))
	for i, s := range ss {
		vs[i] = value.Str(s)
	}

	return value.FromSlice(vs)
}

// Released under an MIT license. See LICENSE.

package script

import (
	"sort"

	"github.com/michaelmacinnis/hsnb/internal/type/value"
)

// List functions produce their results lazily where Haskell's do.

func cons(h, t value.T) value.T {
	return &value.Cons{Head: h, Tail: t}
}

func appendLists(a, b value.T) value.T {
	return lazy(func() value.T {
		h, t, ok := value.Uncons(a)
		if !ok {
			return value.Force(b)
		}

		return cons(h, appendLists(t, b))
	})
}

func mapList(f, l value.T) value.T {
	return lazy(func() value.T {
		h, t, ok := value.Uncons(l)
		if !ok {
			return value.Nil
		}

		return cons(lazy(func() value.T { return apply(f, h) }), mapList(f, t))
	})
}

func filterList(p, l value.T) value.T {
	return lazy(func() value.T {
		for {
			h, t, ok := value.Uncons(l)
			if !ok {
				return value.Nil
			}

			if truth(apply(p, h)) {
				return cons(h, filterList(p, t))
			}

			l = t
		}
	})
}

func foldr(f, z, l value.T) value.T {
	return lazy(func() value.T {
		h, t, ok := value.Uncons(l)
		if !ok {
			return value.Force(z)
		}

		return apply(f, h, foldr(f, z, t))
	})
}

func foldl(f, z, l value.T) value.T {
	acc := z

	for {
		h, t, ok := value.Uncons(l)
		if !ok {
			return value.Force(acc)
		}

		acc = value.Force(apply(f, acc, h))
		l = t
	}
}

func take(n int64, l value.T) value.T {
	return lazy(func() value.T {
		if n <= 0 {
			return value.Nil
		}

		h, t, ok := value.Uncons(l)
		if !ok {
			return value.Nil
		}

		return cons(h, take(n-1, t))
	})
}

func drop(n int64, l value.T) value.T {
	for ; n > 0; n-- {
		_, t, ok := value.Uncons(l)
		if !ok {
			return value.Nil
		}

		l = t
	}

	return value.Force(l)
}

func takeWhile(p, l value.T) value.T {
	return lazy(func() value.T {
		h, t, ok := value.Uncons(l)
		if !ok || !truth(apply(p, h)) {
			return value.Nil
		}

		return cons(h, takeWhile(p, t))
	})
}

func dropWhile(p, l value.T) value.T {
	for {
		h, t, ok := value.Uncons(l)
		if !ok || !truth(apply(p, h)) {
			return value.Force(l)
		}

		l = t
	}
}

func zipWith(f, a, b value.T) value.T {
	return lazy(func() value.T {
		ah, at, aok := value.Uncons(a)
		if !aok {
			return value.Nil
		}

		bh, bt, bok := value.Uncons(b)
		if !bok {
			return value.Nil
		}

		return cons(lazy(func() value.T { return apply(f, ah, bh) }), zipWith(f, at, bt))
	})
}

func iterate(f, x value.T) value.T {
	return lazy(func() value.T {
		return cons(x, iterate(f, lazy(func() value.T { return apply(f, x) })))
	})
}

func repeat(x value.T) value.T {
	var l *value.Cons

	l = &value.Cons{Head: x}
	l.Tail = l

	return l
}

func concat(ls value.T) value.T {
	return lazy(func() value.T {
		for {
			h, t, ok := value.Uncons(ls)
			if !ok {
				return value.Nil
			}

			if _, _, ok := value.Uncons(h); ok {
				return value.Force(appendLists(h, concat(t)))
			}

			ls = t
		}
	})
}

func exists(p, l value.T) bool {
	for {
		h, t, ok := value.Uncons(l)
		if !ok {
			return false
		}

		if truth(apply(p, h)) {
			return true
		}

		l = t
	}
}

func elem(x, l value.T) bool {
	for {
		h, t, ok := value.Uncons(l)
		if !ok {
			return false
		}

		if value.Equal(x, h) {
			return true
		}

		l = t
	}
}

func extreme(name string, l value.T, want int) value.T {
	vs := value.ToSlice(l)
	if len(vs) == 0 {
		value.Errorf("%s: empty list", name)
	}

	best := vs[0]
	for _, v := range vs[1:] {
		if value.Compare(v, best) == want {
			best = v
		}
	}

	return value.Force(best)
}

func nonEmpty(name string, l value.T) (head, tail value.T) {
	h, t, ok := value.Uncons(l)
	if !ok {
		value.Errorf("%s: empty list", name)
	}

	return h, t
}

func bindLists(b bindings) {
	b.def(":", 2, func(args []value.T) value.T {
		return cons(args[0], args[1])
	})
	b.def("++", 2, func(args []value.T) value.T {
		if x, ok := value.Force(args[0]).(value.Str); ok {
			if y, ok := value.Force(args[1]).(value.Str); ok {
				return x + y
			}
		}

		return value.Force(appendLists(args[0], args[1]))
	})
	b.def("!!", 2, func(args []value.T) value.T {
		n := integer(args[1])
		if n < 0 {
			value.Errorf("!!: negative index")
		}

		h, _, ok := value.Uncons(drop(n, args[0]))
		if !ok {
			value.Errorf("!!: index too large")
		}

		return value.Force(h)
	})
	b.def("map", 2, func(args []value.T) value.T {
		return value.Force(mapList(args[0], args[1]))
	})
	b.def("filter", 2, func(args []value.T) value.T {
		return value.Force(filterList(args[0], args[1]))
	})
	b.def("foldr", 3, func(args []value.T) value.T { //nolint:gomnd
		return value.Force(foldr(args[0], args[1], args[2]))
	})
	b.def("foldl", 3, func(args []value.T) value.T { //nolint:gomnd
		return foldl(args[0], args[1], args[2])
	})
	b.def("foldr1", 2, func(args []value.T) value.T {
		vs := value.ToSlice(args[1])
		if len(vs) == 0 {
			value.Errorf("foldr1: empty list")
		}

		acc := vs[len(vs)-1]
		for i := len(vs) - 2; i >= 0; i-- {
			acc = apply(args[0], vs[i], acc)
		}

		return value.Force(acc)
	})
	b.def("foldl1", 2, func(args []value.T) value.T {
		h, t := nonEmpty("foldl1", args[1])

		return foldl(args[0], h, t)
	})
	b.def("sum", 1, func(args []value.T) value.T {
		return foldl(arithmetic("+"), value.Int(0), args[0])
	})
	b.def("product", 1, func(args []value.T) value.T {
		return foldl(arithmetic("*"), value.Int(1), args[0])
	})
	b.def("length", 1, func(args []value.T) value.T {
		if s, ok := value.Force(args[0]).(value.Str); ok {
			return value.Int(len([]rune(string(s))))
		}

		return value.Int(len(value.ToSlice(args[0])))
	})
	b.def("head", 1, func(args []value.T) value.T {
		h, _ := nonEmpty("head", args[0])

		return value.Force(h)
	})
	b.def("tail", 1, func(args []value.T) value.T {
		_, t := nonEmpty("tail", args[0])

		return value.Force(t)
	})
	b.def("last", 1, func(args []value.T) value.T {
		vs := value.ToSlice(args[0])
		if len(vs) == 0 {
			value.Errorf("last: empty list")
		}

		return value.Force(vs[len(vs)-1])
	})
	b.def("init", 1, func(args []value.T) value.T {
		vs := value.ToSlice(args[0])
		if len(vs) == 0 {
			value.Errorf("init: empty list")
		}

		return value.FromSlice(vs[:len(vs)-1])
	})
	b.def("null", 1, func(args []value.T) value.T {
		_, _, ok := value.Uncons(args[0])

		return value.Bool(!ok)
	})
	b.def("reverse", 1, func(args []value.T) value.T {
		vs := value.ToSlice(args[0])
		for i, j := 0, len(vs)-1; i < j; i, j = i+1, j-1 {
			vs[i], vs[j] = vs[j], vs[i]
		}

		return value.FromSlice(vs)
	})
	b.def("take", 2, func(args []value.T) value.T {
		return value.Force(take(integer(args[0]), args[1]))
	})
	b.def("drop", 2, func(args []value.T) value.T {
		return drop(integer(args[0]), args[1])
	})
	b.def("splitAt", 2, func(args []value.T) value.T {
		n := integer(args[0])

		return value.Tuple{take(n, args[1]), lazy(func() value.T { return drop(n, args[1]) })}
	})
	b.def("takeWhile", 2, func(args []value.T) value.T {
		return value.Force(takeWhile(args[0], args[1]))
	})
	b.def("dropWhile", 2, func(args []value.T) value.T {
		return dropWhile(args[0], args[1])
	})
	b.def("span", 2, func(args []value.T) value.T {
		return value.Tuple{
			takeWhile(args[0], args[1]),
			lazy(func() value.T { return dropWhile(args[0], args[1]) }),
		}
	})
	b.def("elem", 2, func(args []value.T) value.T {
		return value.Bool(elem(args[0], args[1]))
	})
	b.def("notElem", 2, func(args []value.T) value.T {
		return value.Bool(!elem(args[0], args[1]))
	})
	b.def("zip", 2, func(args []value.T) value.T {
		return value.Force(zipWith(b.builtin("(,)"), args[0], args[1]))
	})
	b.def("zipWith", 3, func(args []value.T) value.T { //nolint:gomnd
		return value.Force(zipWith(args[0], args[1], args[2]))
	})
	b.def("unzip", 1, func(args []value.T) value.T {
		var as, bs []value.T

		for _, p := range value.ToSlice(args[0]) {
			t := pair(p)
			as = append(as, t[0])
			bs = append(bs, t[1])
		}

		return value.Tuple{value.FromSlice(as), value.FromSlice(bs)}
	})
	b.def("concat", 1, func(args []value.T) value.T {
		return value.Force(concat(args[0]))
	})
	b.def("concatMap", 2, func(args []value.T) value.T {
		return value.Force(concat(mapList(args[0], args[1])))
	})
	b.def("replicate", 2, func(args []value.T) value.T {
		return value.Force(take(integer(args[0]), repeat(args[1])))
	})
	b.def("iterate", 2, func(args []value.T) value.T {
		return value.Force(iterate(args[0], args[1]))
	})
	b.def("repeat", 1, func(args []value.T) value.T {
		return repeat(args[0])
	})
	b.def("cycle", 1, func(args []value.T) value.T {
		if _, _, ok := value.Uncons(args[0]); !ok {
			value.Errorf("cycle: empty list")
		}

		var l value.T

		l = appendLists(args[0], lazy(func() value.T { return value.Force(l) }))

		return value.Force(l)
	})
	b.def("and", 1, func(args []value.T) value.T {
		return value.Bool(!exists(b.builtin("not"), args[0]))
	})
	b.def("or", 1, func(args []value.T) value.T {
		return value.Bool(exists(b.builtin("id"), args[0]))
	})
	b.def("any", 2, func(args []value.T) value.T {
		return value.Bool(exists(args[0], args[1]))
	})
	b.def("all", 2, func(args []value.T) value.T {
		p := args[0]

		return value.Bool(!exists(unary(func(v value.T) value.T {
			return value.Bool(!truth(apply(p, v)))
		}), args[1]))
	})
	b.def("maximum", 1, func(args []value.T) value.T {
		return extreme("maximum", args[0], 1)
	})
	b.def("minimum", 1, func(args []value.T) value.T {
		return extreme("minimum", args[0], -1)
	})
	b.def("lookup", 2, func(args []value.T) value.T {
		for _, p := range value.ToSlice(args[1]) {
			t := pair(p)
			if value.Equal(args[0], t[0]) {
				return value.Just(t[1])
			}
		}

		return value.Nothing
	})
	b.def("sort", 1, func(args []value.T) value.T {
		vs := value.ToSlice(args[0])
		sort.SliceStable(vs, func(i, j int) bool {
			return value.Compare(vs[i], vs[j]) < 0
		})

		return value.FromSlice(vs)
	})
	b.def("nub", 1, func(args []value.T) value.T {
		seen := []value.T{}
		for _, v := range value.ToSlice(args[0]) {
			if !elem(v, value.FromSlice(seen)) {
				seen = append(seen, v)
			}
		}

		return value.FromSlice(seen)
	})
}

func arithmetic(op string) value.T {
	return &builtin{name: op, arity: 2, fn: func(args []value.T) value.T { //nolint:gomnd
		return arith(op, args[0], args[1])
	}}
}

func (b bindings) builtin(name string) value.T {
	v, ok := b.Lookup(name)
	if !ok {
		value.Errorf("can't resolve '%s'", name)
	}

	return v
}

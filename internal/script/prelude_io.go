// Released under an MIT license. See LICENSE.

package script

import (
	"io"

	"github.com/michaelmacinnis/hsnb/internal/type/value"
)

func output(s string, w io.Writer) {
	if _, err := io.WriteString(w, s); err != nil {
		value.Errorf("write failed: %v", err)
	}
}

func writer(f func(args []value.T) string) func(args []value.T) value.T {
	return func(args []value.T) value.T {
		return &value.Action{Run: func(w io.Writer) value.T {
			output(f(args), w)

			return value.Unit{}
		}}
	}
}

// each runs f for every element of l, discarding the results.
func each(f, l value.T) value.T {
	return &value.Action{Run: func(w io.Writer) value.T {
		for {
			h, t, ok := value.Uncons(l)
			if !ok {
				return value.Unit{}
			}

			run(apply(f, h), w)

			l = t
		}
	}}
}

func bindIO(b bindings) {
	b.def("print", 1, writer(func(args []value.T) string {
		return value.Display(args[0])
	}))
	b.def("println", 1, writer(func(args []value.T) string {
		return value.Display(args[0]) + "\n"
	}))
	b.def("putStr", 1, writer(func(args []value.T) string {
		return text(args[0])
	}))
	b.def("putStrLn", 1, writer(func(args []value.T) string {
		return text(args[0]) + "\n"
	}))
	b.def("putChar", 1, writer(func(args []value.T) string {
		return string(char(args[0]))
	}))

	for _, name := range []string{"return", "pure"} {
		b.def(name, 1, func(args []value.T) value.T {
			return value.Return(args[0])
		})
	}

	b.def(">>", 2, func(args []value.T) value.T {
		return &value.Action{Run: func(w io.Writer) value.T {
			run(args[0], w)

			return run(args[1], w)
		}}
	})
	b.def(">>=", 2, func(args []value.T) value.T {
		return &value.Action{Run: func(w io.Writer) value.T {
			return run(apply(args[1], run(args[0], w)), w)
		}}
	})
	b.def("=<<", 2, func(args []value.T) value.T {
		return &value.Action{Run: func(w io.Writer) value.T {
			return run(apply(args[0], run(args[1], w)), w)
		}}
	})
	b.def("mapM_", 2, func(args []value.T) value.T {
		return each(args[0], args[1])
	})
	b.def("forM_", 2, func(args []value.T) value.T {
		return each(args[1], args[0])
	})
	b.def("sequence_", 1, func(args []value.T) value.T {
		return each(b.builtin("id"), args[0])
	})
	b.def("when", 2, func(args []value.T) value.T {
		if truth(args[0]) {
			return value.Force(args[1])
		}

		return value.Return(value.Unit{})
	})
	b.def("unless", 2, func(args []value.T) value.T {
		if !truth(args[0]) {
			return value.Force(args[1])
		}

		return value.Return(value.Unit{})
	})
}

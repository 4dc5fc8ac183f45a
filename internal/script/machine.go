// Released under an MIT license. See LICENSE.

package script

import (
	"io"

	"github.com/michaelmacinnis/hsnb/internal/reader/ast"
	"github.com/michaelmacinnis/hsnb/internal/type/env"
	"github.com/michaelmacinnis/hsnb/internal/type/loc"
	"github.com/michaelmacinnis/hsnb/internal/type/value"
)

// machine evaluates syntax trees.
type machine struct {
	depth    int
	maxDepth int
}

// call applies the closure c to a full set of arguments.
func (m *machine) call(c *closure, args []value.T) value.T {
	for _, clause := range c.clauses {
		scope := env.New(c.scope)

		if !m.matchAll(clause.Params, args, scope) {
			continue
		}

		if v, ok := m.rhs(clause.Rhs, scope); ok {
			return v
		}
	}

	value.Errorf("%s: non-exhaustive patterns in function %s", c.clauses[0].Pos(), c.name)

	return nil
}

// define binds each declaration in ds in scope. Bodies may refer to any
// name in scope so mutually recursive definitions work.
func (m *machine) define(ds []*ast.Decl, scope *env.T) {
	for _, d := range ds {
		d := d

		if d.Arity() > 0 {
			scope.Define(d.Name, &closure{
				m:       m,
				name:    d.Name,
				clauses: d.Clauses,
				scope:   scope,
			})

			continue
		}

		clause := d.Clauses[len(d.Clauses)-1]

		scope.Define(d.Name, lazy(func() value.T {
			v, ok := m.rhs(clause.Rhs, env.New(scope))
			if !ok {
				value.Errorf("%s: non-exhaustive guards in %s", clause.Pos(), d.Name)
			}

			return v
		}))
	}
}

// delay returns a value for e without evaluating it, if possible.
func (m *machine) delay(e ast.Expr, scope *env.T) value.T {
	switch e := e.(type) {
	case *ast.Lit:
		return literal(e.Value)
	case *ast.Var:
		if v, ok := scope.Lookup(e.Name); ok {
			return v
		}
	case *ast.Lambda:
		return m.eval(e, scope)
	}

	return &thunk{m: m, expr: e, scope: scope}
}

// eval evaluates e in scope to weak head normal form.
func (m *machine) eval(e ast.Expr, scope *env.T) value.T {
	m.depth++
	defer func() {
		m.depth--
	}()

	if m.maxDepth > 0 && m.depth > m.maxDepth {
		value.Errorf("%s: stack overflow", e.Pos())
	}

	switch e := e.(type) {
	case *ast.App:
		return apply(m.eval(e.Fun, scope), m.delay(e.Arg, scope))
	case *ast.Case:
		return m.match(e, scope)
	case *ast.Comprehension:
		return m.comprehend(e, e.Quals, scope, value.Nil)
	case *ast.Con:
		return constructor(e.Name)
	case *ast.Do:
		return m.do(e.Stmts, scope)
	case *ast.If:
		if truth(m.eval(e.Cond, scope)) {
			return m.eval(e.Then, scope)
		}

		return m.eval(e.Else, scope)
	case *ast.Lambda:
		return &closure{
			m:       m,
			name:    "lambda",
			clauses: []*ast.Clause{{Node: e.Node, Params: e.Params, Rhs: &ast.Rhs{Body: e.Body}}},
			scope:   scope,
		}
	case *ast.Let:
		inner := env.New(scope)
		m.define(e.Decls, inner)

		return m.eval(e.Body, inner)
	case *ast.List:
		vs := make([]value.T, len(e.Elems))
		for i, elem := range e.Elems {
			vs[i] = m.delay(elem, scope)
		}

		return value.FromSlice(vs)
	case *ast.Lit:
		return literal(e.Value)
	case *ast.Range:
		return m.enumerate(e, scope)
	case *ast.Section:
		op := m.lookup(e.Op, e.Pos(), scope)
		if e.Left != nil {
			return apply(op, m.delay(e.Left, scope))
		}

		right := m.delay(e.Right, scope)

		return unary(func(left value.T) value.T {
			return apply(op, left, right)
		})
	case *ast.Tuple:
		t := make(value.Tuple, len(e.Elems))
		for i, elem := range e.Elems {
			t[i] = m.delay(elem, scope)
		}

		return t
	case *ast.Unit:
		return value.Unit{}
	case *ast.Var:
		return value.Force(m.lookup(e.Name, e.Pos(), scope))
	}

	value.Errorf("%s: cannot evaluate %T", e.Pos(), e)

	return nil
}

func (m *machine) lookup(name string, pos *loc.T, scope *env.T) value.T {
	v, ok := scope.Lookup(name)
	if !ok {
		value.Errorf("%s: can't resolve '%s'", pos, name)
	}

	return v
}

// match evaluates a case expression.
func (m *machine) match(e *ast.Case, scope *env.T) value.T {
	v := m.delay(e.Scrutinee, scope)

	for _, alt := range e.Alts {
		inner := env.New(scope)

		if !m.bind(alt.Pat, v, inner) {
			continue
		}

		if r, ok := m.rhs(alt.Rhs, inner); ok {
			return r
		}
	}

	value.Errorf("%s: non-exhaustive patterns in case", e.Pos())

	return nil
}

// rhs evaluates a right-hand side. It returns false if no guard is true.
func (m *machine) rhs(r *ast.Rhs, scope *env.T) (value.T, bool) {
	if len(r.Where) > 0 {
		scope = env.New(scope)
		m.define(r.Where, scope)
	}

	if r.Body != nil {
		return m.eval(r.Body, scope), true
	}

	for _, g := range r.Guards {
		if truth(m.eval(g.Cond, scope)) {
			return m.eval(g.Body, scope), true
		}
	}

	return nil, false
}

// comprehend builds the list for the qualifiers quals lazily, followed by rest.
func (m *machine) comprehend(c *ast.Comprehension, quals []ast.Stmt, scope *env.T, rest value.T) value.T {
	if len(quals) == 0 {
		return &value.Cons{Head: m.delay(c.Body, scope), Tail: rest}
	}

	switch q := quals[0].(type) {
	case *ast.Bind:
		var walk func(l value.T) value.T

		walk = func(l value.T) value.T {
			return lazy(func() value.T {
				h, t, ok := value.Uncons(l)
				if !ok {
					return rest
				}

				inner := env.New(scope)
				if !m.bind(q.Pat, h, inner) {
					return walk(t)
				}

				return m.comprehend(c, quals[1:], inner, walk(t))
			})
		}

		return walk(m.delay(q.Expr, scope))
	case *ast.LetStmt:
		inner := env.New(scope)
		m.define(q.Decls, inner)

		return m.comprehend(c, quals[1:], inner, rest)
	case *ast.ExprStmt:
		if truth(m.eval(q.Expr, scope)) {
			return m.comprehend(c, quals[1:], scope, rest)
		}

		return rest
	}

	value.Errorf("%s: unexpected qualifier", quals[0].Pos())

	return nil
}

// do builds the action for a do block.
func (m *machine) do(stmts []ast.Stmt, scope *env.T) value.T {
	return &value.Action{Run: func(w io.Writer) value.T {
		inner := scope

		var result value.T = value.Unit{}

		for i, stmt := range stmts {
			switch s := stmt.(type) {
			case *ast.Bind:
				v := run(m.eval(s.Expr, inner), w)

				inner = env.New(inner)
				if !m.bind(s.Pat, v, inner) {
					value.Errorf("%s: pattern match failure in do expression", s.Pos())
				}
			case *ast.LetStmt:
				inner = env.New(inner)
				m.define(s.Decls, inner)

				if i == len(stmts)-1 {
					value.Errorf("%s: the last statement in a do block must be an expression", s.Pos())
				}
			case *ast.ExprStmt:
				result = run(m.eval(s.Expr, inner), w)
			}
		}

		return result
	}}
}

// enumerate builds an arithmetic sequence lazily.
func (m *machine) enumerate(r *ast.Range, scope *env.T) value.T {
	from := m.eval(r.From, scope)

	var next, to value.T

	if r.Then != nil {
		next = m.eval(r.Then, scope)
	}

	if r.To != nil {
		to = m.eval(r.To, scope)
	}

	_, chars := from.(value.Char)
	if chars {
		from = code(from)

		if next != nil {
			next = code(next)
		}

		if to != nil {
			to = code(to)
		}
	}

	var step value.T = value.Int(1)
	if next != nil {
		step = arith("-", next, from)
	}

	if chars {
		return mapChars(sequence(from, step, to))
	}

	return sequence(from, step, to)
}

func code(v value.T) value.T {
	return value.Int(rune(char(v)))
}

func sequence(from, step, to value.T) value.T {
	return lazy(func() value.T {
		if to != nil {
			c := value.Compare(from, to)
			if (sign(step) >= 0 && c > 0) || (sign(step) < 0 && c < 0) {
				return value.Nil
			}
		}

		return &value.Cons{Head: from, Tail: sequence(arith("+", from, step), step, to)}
	})
}

func mapChars(l value.T) value.T {
	return lazy(func() value.T {
		h, t, ok := value.Uncons(l)
		if !ok {
			return value.Nil
		}

		return &value.Cons{Head: value.Char(rune(integer(h))), Tail: mapChars(t)}
	})
}

func literal(v interface{}) value.T {
	switch v := v.(type) {
	case int64:
		return value.Int(v)
	case float64:
		return value.Double(v)
	case rune:
		return value.Char(v)
	case string:
		return value.Str(v)
	}

	value.Errorf("unexpected literal %v", v)

	return nil
}

// run performs the action v, writing any output to w.
func run(v value.T, w io.Writer) value.T {
	v = value.Force(v)

	a, ok := v.(*value.Action)
	if !ok {
		value.Errorf("expected an IO action, found %s", value.TypeName(v))
	}

	return a.Run(w)
}

// Released under an MIT license. See LICENSE.

package script

import (
	"github.com/michaelmacinnis/hsnb/internal/reader/ast"
	"github.com/michaelmacinnis/hsnb/internal/type/env"
	"github.com/michaelmacinnis/hsnb/internal/type/value"
)

const (
	pending = iota
	running
	done
)

// thunk is an expression whose evaluation is deferred until needed.
// The result is remembered.
type thunk struct {
	m     *machine
	expr  ast.Expr
	scope *env.T
	state int
	value value.T
}

func (t *thunk) Force() value.T {
	switch t.state {
	case done:
		return t.value
	case running:
		value.Errorf("%s: <<loop>>", t.expr.Pos())
	}

	t.state = running

	defer func() {
		if t.state == running {
			t.state = pending
		}
	}()

	t.value = t.m.eval(t.expr, t.scope)
	t.state = done
	t.expr = nil
	t.scope = nil

	return t.value
}

func (t *thunk) Show() string {
	return value.Force(t).Show()
}

// deferred is a Go computation whose evaluation is deferred until needed.
type deferred struct {
	fn    func() value.T
	state int
	value value.T
}

func lazy(fn func() value.T) value.T {
	return &deferred{fn: fn}
}

func (d *deferred) Force() value.T {
	switch d.state {
	case done:
		return d.value
	case running:
		value.Errorf("<<loop>>")
	}

	d.state = running

	defer func() {
		if d.state == running {
			d.state = pending
		}
	}()

	d.value = d.fn()
	d.state = done
	d.fn = nil

	return d.value
}

func (d *deferred) Show() string {
	return value.Force(d).Show()
}

// closure is a function defined by clauses and the scope they close over.
type closure struct {
	m       *machine
	name    string
	clauses []*ast.Clause
	scope   *env.T
	args    []value.T
}

func (c *closure) Apply(arg value.T) value.T {
	args := make([]value.T, len(c.args), len(c.args)+1)
	copy(args, c.args)
	args = append(args, arg)

	if len(args) < len(c.clauses[0].Params) {
		partial := *c
		partial.args = args

		return &partial
	}

	return c.m.call(c, args)
}

func (c *closure) Show() string {
	return "<function>"
}

// builtin is a function implemented in Go. Arguments are passed lazily.
type builtin struct {
	name  string
	arity int
	args  []value.T
	fn    func(args []value.T) value.T
}

func (b *builtin) Apply(arg value.T) value.T {
	args := make([]value.T, len(b.args), len(b.args)+1)
	copy(args, b.args)
	args = append(args, arg)

	if len(args) < b.arity {
		partial := *b
		partial.args = args

		return &partial
	}

	return b.fn(args)
}

func (b *builtin) Show() string {
	return "<function>"
}

// unary adapts a Go function of one argument.
type unary func(value.T) value.T

func (u unary) Apply(arg value.T) value.T {
	return u(arg)
}

func (u unary) Show() string {
	return "<function>"
}

// apply applies f to args in turn and forces the result.
func apply(f value.T, args ...value.T) value.T {
	for _, a := range args {
		f = function(f).Apply(a)
	}

	return value.Force(f)
}

func function(v value.T) value.Func {
	v = value.Force(v)

	f, ok := v.(value.Func)
	if !ok {
		value.Errorf("%s is not a function", value.TypeName(v))
	}

	return f
}

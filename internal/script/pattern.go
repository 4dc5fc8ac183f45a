// Released under an MIT license. See LICENSE.

package script

import (
	"github.com/michaelmacinnis/hsnb/internal/reader/ast"
	"github.com/michaelmacinnis/hsnb/internal/type/env"
	"github.com/michaelmacinnis/hsnb/internal/type/value"
)

// bind matches v against p, defining any variables in scope.
// Only the parts of v that p inspects are forced.
func (m *machine) bind(p ast.Pattern, v value.T, scope *env.T) bool {
	switch p := p.(type) {
	case *ast.PVar:
		scope.Define(p.Name, v)

		return true
	case *ast.PWild:
		return true
	case *ast.PAs:
		scope.Define(p.Name, v)

		return m.bind(p.Pat, v, scope)
	case *ast.PLit:
		return value.Equal(literal(p.Value), v)
	case *ast.PTuple:
		t, ok := value.Force(v).(value.Tuple)
		if !ok || len(t) != len(p.Elems) {
			return false
		}

		return m.matchAll(p.Elems, t, scope)
	case *ast.PList:
		for _, elem := range p.Elems {
			h, t, ok := value.Uncons(v)
			if !ok || !m.bind(elem, h, scope) {
				return false
			}

			v = t
		}

		_, _, ok := value.Uncons(v)

		return !ok
	case *ast.PCons:
		h, t, ok := value.Uncons(v)

		return ok && m.bind(p.Head, h, scope) && m.bind(p.Tail, t, scope)
	case *ast.PCon:
		return m.bindCon(p, value.Force(v), scope)
	}

	value.Errorf("%s: unsupported pattern %T", p.Pos(), p)

	return false
}

func (m *machine) bindCon(p *ast.PCon, v value.T, scope *env.T) bool {
	switch p.Name {
	case "True", "False":
		b, ok := v.(value.Bool)

		return ok && bool(b) == (p.Name == "True")
	case "()":
		_, ok := v.(value.Unit)

		return ok
	}

	c, ok := v.(*value.Con)
	if !ok || c.Name != p.Name || len(c.Args) != len(p.Args) {
		return false
	}

	return m.matchAll(p.Args, c.Args, scope)
}

func (m *machine) matchAll(ps []ast.Pattern, vs []value.T, scope *env.T) bool {
	for i, p := range ps {
		if !m.bind(p, vs[i], scope) {
			return false
		}
	}

	return true
}

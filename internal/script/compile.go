// Released under an MIT license. See LICENSE.

package script

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/michaelmacinnis/hsnb/internal/reader/ast"
	"github.com/michaelmacinnis/hsnb/internal/type/env"
	"github.com/michaelmacinnis/hsnb/internal/type/loc"
)

var constructors = map[string]bool{ //nolint:gochecknoglobals
	"()":      true,
	"EQ":      true,
	"False":   true,
	"GT":      true,
	"Just":    true,
	"LT":      true,
	"Nothing": true,
	"True":    true,
}

// CompileError is a name that cannot be resolved or a constructor that
// does not exist.
type CompileError struct {
	Source *loc.T
	Msg    string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s: %s", e.Source, e.Msg)
}

// scope is the set of names visible at a point in a program.
type scope struct {
	names    map[string]bool
	previous *scope
}

func (s *scope) nested() *scope {
	return &scope{names: map[string]bool{}, previous: s}
}

func (s *scope) has(name string) bool {
	for ; s != nil; s = s.previous {
		if s.names[name] {
			return true
		}
	}

	return false
}

type resolver struct {
	errs    *multierror.Error
	globals *env.T
}

// check reports every unresolved name and unknown constructor in prog.
// Names may refer to the session's globals or to anything prog declares.
func check(prog *ast.Program, globals *env.T) error {
	r := &resolver{
		errs:    &multierror.Error{ErrorFormat: lines},
		globals: globals,
	}

	top := (&scope{}).nested()
	for _, d := range prog.Decls {
		top.names[d.Name] = true
	}

	for _, d := range prog.Decls {
		r.decl(d, top)
	}

	for _, e := range prog.Exprs {
		r.expr(e, top)
	}

	return r.errs.ErrorOrNil()
}

func lines(errs []error) string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}

	return strings.Join(msgs, "\n")
}

func (r *resolver) fail(pos *loc.T, format string, args ...interface{}) {
	r.errs = multierror.Append(r.errs, &CompileError{Source: pos, Msg: fmt.Sprintf(format, args...)})
}

func (r *resolver) decls(ds []*ast.Decl, s *scope) *scope {
	s = s.nested()
	for _, d := range ds {
		s.names[d.Name] = true
	}

	for _, d := range ds {
		r.decl(d, s)
	}

	return s
}

func (r *resolver) decl(d *ast.Decl, s *scope) {
	for _, c := range d.Clauses {
		inner := s.nested()
		for _, p := range c.Params {
			r.pattern(p, inner)
		}

		r.rhs(c.Rhs, inner)
	}
}

func (r *resolver) rhs(rhs *ast.Rhs, s *scope) {
	if len(rhs.Where) > 0 {
		s = r.decls(rhs.Where, s)
	}

	if rhs.Body != nil {
		r.expr(rhs.Body, s)
	}

	for _, g := range rhs.Guards {
		r.expr(g.Cond, s)
		r.expr(g.Body, s)
	}
}

//nolint:cyclop
func (r *resolver) expr(e ast.Expr, s *scope) {
	switch e := e.(type) {
	case *ast.App:
		r.expr(e.Fun, s)
		r.expr(e.Arg, s)
	case *ast.Case:
		r.expr(e.Scrutinee, s)

		for _, alt := range e.Alts {
			inner := s.nested()
			r.pattern(alt.Pat, inner)
			r.rhs(alt.Rhs, inner)
		}
	case *ast.Comprehension:
		r.expr(e.Body, r.stmts(e.Quals, s))
	case *ast.Con:
		if !constructors[e.Name] {
			r.fail(e.Pos(), "unknown constructor '%s'", e.Name)
		}
	case *ast.Do:
		r.stmts(e.Stmts, s)
	case *ast.If:
		r.expr(e.Cond, s)
		r.expr(e.Then, s)
		r.expr(e.Else, s)
	case *ast.Lambda:
		inner := s.nested()
		for _, p := range e.Params {
			r.pattern(p, inner)
		}

		r.expr(e.Body, inner)
	case *ast.Let:
		r.expr(e.Body, r.decls(e.Decls, s))
	case *ast.List:
		r.exprs(e.Elems, s)
	case *ast.Range:
		r.exprs([]ast.Expr{e.From, e.Then, e.To}, s)
	case *ast.Section:
		r.name(e.Op, e.Pos(), s)
		r.exprs([]ast.Expr{e.Left, e.Right}, s)
	case *ast.Tuple:
		r.exprs(e.Elems, s)
	case *ast.Var:
		r.name(e.Name, e.Pos(), s)
	}
}

func (r *resolver) exprs(es []ast.Expr, s *scope) {
	for _, e := range es {
		if e != nil {
			r.expr(e, s)
		}
	}
}

func (r *resolver) name(name string, pos *loc.T, s *scope) {
	if s.has(name) {
		return
	}

	if _, ok := r.globals.Lookup(name); ok {
		return
	}

	r.fail(pos, "can't resolve '%s'", name)
}

func (r *resolver) pattern(p ast.Pattern, s *scope) {
	switch p := p.(type) {
	case *ast.PAs:
		s.names[p.Name] = true
		r.pattern(p.Pat, s)
	case *ast.PCon:
		if !constructors[p.Name] {
			r.fail(p.Pos(), "unknown constructor '%s'", p.Name)
		}

		for _, a := range p.Args {
			r.pattern(a, s)
		}
	case *ast.PCons:
		r.pattern(p.Head, s)
		r.pattern(p.Tail, s)
	case *ast.PList:
		for _, elem := range p.Elems {
			r.pattern(elem, s)
		}
	case *ast.PTuple:
		for _, elem := range p.Elems {
			r.pattern(elem, s)
		}
	case *ast.PVar:
		s.names[p.Name] = true
	}
}

// stmts checks a sequence of statements, each of which may bind names
// for the statements that follow. It returns the final scope.
func (r *resolver) stmts(ss []ast.Stmt, s *scope) *scope {
	for _, stmt := range ss {
		switch stmt := stmt.(type) {
		case *ast.Bind:
			r.expr(stmt.Expr, s)

			s = s.nested()
			r.pattern(stmt.Pat, s)
		case *ast.LetStmt:
			s = r.decls(stmt.Decls, s)
		case *ast.ExprStmt:
			r.expr(stmt.Expr, s)
		}
	}

	return s
}

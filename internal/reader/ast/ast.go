// Released under an MIT license. See LICENSE.

// Package ast defines the syntax tree produced by the parser.
package ast

import (
	"github.com/michaelmacinnis/hsnb/internal/type/loc"
)

// Node carries the source location shared by every syntax tree node.
type Node struct {
	Source *loc.T
}

// Pos returns the location of the node in the source text.
func (n *Node) Pos() *loc.T {
	return n.Source
}

// Expr is an expression.
type Expr interface {
	Pos() *loc.T
}

// Pattern is a pattern in a function clause, lambda, case alternative,
// generator or bind statement.
type Pattern interface {
	Pos() *loc.T
}

// Stmt is a statement in a do block or a qualifier in a list comprehension.
type Stmt interface {
	Pos() *loc.T
}

// Program is a parsed snippet.
type Program struct {
	Module  string // Non-empty if the snippet starts with a module header.
	Imports []*Import
	Decls   []*Decl
	Exprs   []Expr
}

// Import names a module whose bindings should become visible.
type Import struct {
	Node
	Name string
}

// Decl binds Name to a function or value defined by one or more clauses.
type Decl struct {
	Node
	Name    string
	Clauses []*Clause
}

// Arity returns the number of parameters taken by the decl's clauses.
func (d *Decl) Arity() int {
	return len(d.Clauses[0].Params)
}

// Clause is a single equation of a definition.
type Clause struct {
	Node
	Params []Pattern
	Rhs    *Rhs
}

// Rhs is a right-hand side. Either Body is set or Guards is non-empty.
type Rhs struct {
	Body   Expr
	Guards []*Guard
	Where  []*Decl
}

// Guard is a single guarded alternative.
type Guard struct {
	Node
	Cond Expr
	Body Expr
}

// Expressions.

// App applies Fun to Arg.
type App struct {
	Node
	Fun Expr
	Arg Expr
}

// Case matches Scrutinee against Alts in order.
type Case struct {
	Node
	Scrutinee Expr
	Alts      []*Alt
}

// Alt is a case alternative.
type Alt struct {
	Node
	Pat Pattern
	Rhs *Rhs
}

// Comprehension is a list comprehension.
type Comprehension struct {
	Node
	Body  Expr
	Quals []Stmt
}

// Con is a constructor reference.
type Con struct {
	Node
	Name string
}

// Do is a do block.
type Do struct {
	Node
	Stmts []Stmt
}

// If is a conditional expression.
type If struct {
	Node
	Cond Expr
	Then Expr
	Else Expr
}

// Lambda is an anonymous function.
type Lambda struct {
	Node
	Params []Pattern
	Body   Expr
}

// Let binds Decls in Body.
type Let struct {
	Node
	Decls []*Decl
	Body  Expr
}

// List is a list literal.
type List struct {
	Node
	Elems []Expr
}

// Lit is a literal. Value is an int64, float64, rune or string.
type Lit struct {
	Node
	Value interface{}
}

// Range is an arithmetic sequence. Then and To may be nil.
type Range struct {
	Node
	From Expr
	Then Expr
	To   Expr
}

// Section is an operator section. Exactly one of Left and Right is set.
type Section struct {
	Node
	Op    string
	Left  Expr
	Right Expr
}

// Tuple is a tuple literal with two or more elements.
type Tuple struct {
	Node
	Elems []Expr
}

// Unit is the unit value ().
type Unit struct {
	Node
}

// Var is a variable reference.
type Var struct {
	Node
	Name string
}

// Statements.

// Bind runs Expr and matches its result against Pat.
// In a comprehension it is a generator.
type Bind struct {
	Node
	Pat  Pattern
	Expr Expr
}

// LetStmt introduces local bindings for the statements that follow.
type LetStmt struct {
	Node
	Decls []*Decl
}

// ExprStmt is an action in a do block or a guard in a comprehension.
type ExprStmt struct {
	Node
	Expr Expr
}

// Patterns.

// PAs binds Name to the value matched by Pat.
type PAs struct {
	Node
	Name string
	Pat  Pattern
}

// PCon matches a constructor and its arguments.
type PCon struct {
	Node
	Name string
	Args []Pattern
}

// PCons matches a non-empty list.
type PCons struct {
	Node
	Head Pattern
	Tail Pattern
}

// PList matches a list of exactly len(Elems) elements.
type PList struct {
	Node
	Elems []Pattern
}

// PLit matches a literal.
type PLit struct {
	Node
	Value interface{}
}

// PTuple matches a tuple.
type PTuple struct {
	Node
	Elems []Pattern
}

// PVar binds Name.
type PVar struct {
	Node
	Name string
}

// PWild matches anything.
type PWild struct {
	Node
}

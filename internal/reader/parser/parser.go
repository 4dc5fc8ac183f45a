// Released under an MIT license. See LICENSE.

// Package parser provides a layout-sensitive recursive descent parser for
// notebook snippets.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/michaelmacinnis/hsnb/internal/reader/ast"
	"github.com/michaelmacinnis/hsnb/internal/reader/lexer"
	"github.com/michaelmacinnis/hsnb/internal/reader/token"
	"github.com/michaelmacinnis/hsnb/internal/type/loc"
)

// Error is a syntax error.
type Error struct {
	Source *loc.T
	Msg    string
}

func (e *Error) Error() string {
	return e.Source.String() + ": syntax error: " + e.Msg
}

// T holds the state of the parser.
type T struct {
	index  int        // Position of the lookahead token.
	layout []int      // Columns of the enclosing layout blocks.
	tokens []*token.T // Tokens ending with EOF or Error.
}

// New creates a new parser for the tokens ts.
func New(ts []*token.T) *T {
	return &T{tokens: ts}
}

// Parse scans and parses text. Label is used in error locations.
func Parse(label, text string) (*ast.Program, error) {
	return New(lexer.New(label, text).Tokens()).Program()
}

// Program parses a complete snippet.
func (p *T) Program() (prog *ast.Program, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		e, ok := r.(*Error)
		if !ok {
			panic(r)
		}

		prog = nil
		err = e
	}()

	prog = &ast.Program{}

	if p.peek().IsWord(token.Keyword, "module") {
		p.advance()

		prog.Module = p.qualifiedName()

		p.expectWord(token.Keyword, "where")
	}

	p.block(func() {
		p.topItem(prog)
	})

	if t := p.peek(); !t.Is(token.EOF) {
		p.unexpected(t)
	}

	prog.Decls = group(prog.Decls)

	return prog, nil
}

func (p *T) advance() *token.T {
	t := p.peek()
	if p.index < len(p.tokens)-1 {
		p.index++
	}

	return t
}

func (p *T) expect(c token.Class) *token.T {
	t := p.peek()
	if !t.Is(c) {
		p.fail(t, "expected "+c.String()+", found "+describe(t))
	}

	return p.advance()
}

func (p *T) expectWord(c token.Class, v string) *token.T {
	t := p.peek()
	if !t.IsWord(c, v) {
		p.fail(t, "expected '"+v+"', found "+describe(t))
	}

	return p.advance()
}

func (p *T) fail(t *token.T, msg string) {
	panic(&Error{Source: t.Source(), Msg: msg})
}

func (p *T) peek() *token.T {
	return p.peekAt(p.index)
}

func (p *T) peekAt(i int) *token.T {
	if i >= len(p.tokens) {
		i = len(p.tokens) - 1
	}

	if i < 0 {
		return nil
	}

	t := p.tokens[i]
	if t.Is(token.Error) {
		p.fail(t, t.Value())
	}

	return t
}

func (p *T) unexpected(t *token.T) {
	p.fail(t, "unexpected "+describe(t))
}

func describe(t *token.T) string {
	switch t.Class() {
	case token.EOF:
		return "end of input"
	case token.String:
		return strconv.Quote(t.Value())
	}

	return "'" + t.Value() + "'"
}

// Layout.

func (p *T) indent() int {
	if len(p.layout) == 0 {
		return 0
	}

	return p.layout[len(p.layout)-1]
}

// boundary returns true if the lookahead token cannot continue the current
// layout item.
func (p *T) boundary() bool {
	return p.boundaryAt(p.index)
}

func (p *T) boundaryAt(i int) bool {
	t := p.peekAt(i)

	return t.Is(token.EOF) || (t.First() && t.Source().Char <= p.indent())
}

func (p *T) closesBlock(col int) bool {
	t := p.peek()

	switch {
	case t.Is(token.EOF, ')', ']', ',', '}'):
		return true
	case t.First() && t.Source().Char < col:
		return true
	case t.Is(token.Keyword):
		switch t.Value() {
		case "in", "then", "else", "of":
			return true
		}
	}

	return false
}

// block parses a sequence of items laid out in a column or explicitly
// enclosed in braces and separated by semicolons.
func (p *T) block(item func()) {
	if p.peek().Is('{') {
		p.advance()

		saved := p.layout
		p.layout = append(p.layout, 0)

		for !p.peek().Is('}') {
			item()

			if !p.peek().Is(';') {
				break
			}

			p.advance()
		}

		p.layout = saved

		p.expect('}')

		return
	}

	t := p.peek()
	if t.Is(token.EOF) || (t.First() && t.Source().Char < p.indent()) {
		return
	}

	col := t.Source().Char

	p.layout = append(p.layout, col)
	defer func() {
		p.layout = p.layout[:len(p.layout)-1]
	}()

	for {
		for p.peek().Is(';') {
			p.advance()
		}

		if p.closesBlock(col) {
			return
		}

		item()

		t = p.peek()

		switch {
		case t.Is(';'):
			continue
		case t.Is(token.EOF):
			return
		case t.First() && t.Source().Char == col:
			continue
		}

		return
	}
}

// itemEnd returns true if the token at i ends the current layout item.
func (p *T) itemEnd(i int) bool {
	return p.boundaryAt(i) || p.peekAt(i).Is(';')
}

// scan looks ahead from the current token, skipping bracketed groups,
// until stop returns true or the current item ends. It returns the
// token that satisfied stop or nil.
func (p *T) scan(stop func(*token.T) bool) *token.T {
	depth := 0

	for i := p.index; ; i++ {
		t := p.peekAt(i)

		if t.Is(token.EOF) || (depth == 0 && i > p.index && p.itemEnd(i)) {
			return nil
		}

		switch {
		case t.Is('(', '[', '{'):
			depth++
		case t.Is(')', ']', '}'):
			if depth == 0 {
				return nil
			}
			depth--
		case depth == 0 && stop(t):
			return t
		}
	}
}

// Top level.

func (p *T) topItem(prog *ast.Program) {
	t := p.peek()

	if t.Is(token.Keyword) {
		switch t.Value() {
		case "import":
			p.advance()

			prog.Imports = append(prog.Imports, &ast.Import{
				Node: ast.Node{Source: t.Source()},
				Name: p.qualifiedName(),
			})

			p.skipItem()

			return
		case "module":
			p.fail(t, "module header must be the first declaration")
		case "class", "data", "deriving", "infix", "infixl", "infixr",
			"instance", "newtype", "type":
			p.fail(t, "'"+t.Value()+"' declarations are not supported")
		}
	}

	switch p.classify() {
	case itemDecl:
		prog.Decls = append(prog.Decls, p.decl())
	case itemSignature:
		p.skipItem()
	default:
		prog.Exprs = append(prog.Exprs, p.expr())
	}
}

type itemKind int

const (
	itemExpr itemKind = iota
	itemDecl
	itemSignature
)

// classify decides if the current item is a declaration, a type signature,
// or an expression by looking for '=', '|' or '::' after tokens that could
// form the left-hand side of a declaration.
func (p *T) classify() itemKind {
	kind := itemExpr
	names := true

	p.scan(func(t *token.T) bool {
		switch t.Class() {
		case token.Reserved:
			switch t.Value() {
			case "=", "|":
				kind = itemDecl
			case "::":
				if names {
					kind = itemSignature
				}
			case "@", "~":
				names = false

				return false
			}

			return true
		case token.Keyword:
			return true
		case token.Ident:
		case ',':
		default:
			names = false
		}

		return false
	})

	return kind
}

func (p *T) qualifiedName() string {
	parts := []string{}

	for {
		t := p.peek()
		if !t.Is(token.Ident, token.ConID) {
			p.fail(t, "expected module name, found "+describe(t))
		}

		parts = append(parts, p.advance().Value())

		if !p.peek().IsWord(token.Op, ".") || p.boundary() {
			break
		}

		p.advance()
	}

	return strings.Join(parts, ".")
}

// skipItem discards the remainder of the current item.
func (p *T) skipItem() {
	depth := 0

	for {
		t := p.peek()
		if t.Is(token.EOF) || (depth == 0 && (p.boundary() || t.Is(';'))) {
			return
		}

		switch {
		case t.Is('(', '[', '{'):
			depth++
		case t.Is(')', ']', '}'):
			if depth == 0 {
				return
			}
			depth--
		}

		p.advance()
	}
}

// skipType discards a type annotation.
func (p *T) skipType() {
	depth := 0

	for {
		t := p.peek()
		if t.Is(token.EOF) || (depth == 0 && (p.boundary() || t.Is(';', ',', ')', ']', '}'))) {
			return
		}

		if t.Is(token.Keyword) && depth == 0 {
			return
		}

		switch {
		case t.Is('(', '[', '{'):
			depth++
		case t.Is(')', ']', '}'):
			depth--
		}

		p.advance()
	}
}

// Declarations.

func (p *T) decl() *ast.Decl {
	t := p.peek()

	var name string

	var params []ast.Pattern

	switch {
	case t.Is(token.Ident) && !p.peekAt(p.index+1).Is(token.Op):
		name = p.advance().Value()
		params = p.apats()
	case t.Is('(') && p.peekAt(p.index+1).Is(token.Op) && p.peekAt(p.index+2).Is(')'):
		p.advance()
		name = p.advance().Value()
		p.advance()
		params = p.apats()
	default:
		if !startsPattern(t) {
			p.unexpected(t)
		}

		left := p.apat()

		op := p.peek()
		if !op.Is(token.Op) || op.Value() == ":" {
			p.unexpected(t)
		}

		p.advance()

		name = op.Value()
		params = []ast.Pattern{left, p.apat()}
	}

	if name == "_" {
		p.unexpected(t)
	}

	return &ast.Decl{
		Node: ast.Node{Source: t.Source()},
		Name: name,
		Clauses: []*ast.Clause{{
			Node:   ast.Node{Source: t.Source()},
			Params: params,
			Rhs:    p.rhs("="),
		}},
	}
}

// decls parses a block of local declarations.
func (p *T) decls() []*ast.Decl {
	ds := []*ast.Decl{}

	p.block(func() {
		switch p.classify() {
		case itemDecl:
			ds = append(ds, p.decl())
		case itemSignature:
			p.skipItem()
		default:
			p.fail(p.peek(), "expected declaration, found "+describe(p.peek()))
		}
	})

	return group(ds)
}

// group merges adjacent clauses of the same definition.
func group(ds []*ast.Decl) []*ast.Decl {
	grouped := []*ast.Decl{}

	for _, d := range ds {
		n := len(grouped)
		if n > 0 && grouped[n-1].Name == d.Name && grouped[n-1].Arity() == d.Arity() && d.Arity() > 0 {
			grouped[n-1].Clauses = append(grouped[n-1].Clauses, d.Clauses...)

			continue
		}

		grouped = append(grouped, d)
	}

	return grouped
}

func (p *T) rhs(sep string) *ast.Rhs {
	r := &ast.Rhs{}

	if p.peek().IsWord(token.Reserved, "|") {
		for p.peek().IsWord(token.Reserved, "|") && !p.boundary() {
			t := p.advance()
			cond := p.expr()
			p.expectWord(token.Reserved, sep)

			r.Guards = append(r.Guards, &ast.Guard{
				Node: ast.Node{Source: t.Source()},
				Cond: cond,
				Body: p.expr(),
			})
		}
	} else {
		p.expectWord(token.Reserved, sep)

		r.Body = p.expr()
	}

	if p.peek().IsWord(token.Keyword, "where") && !p.boundary() {
		p.advance()

		r.Where = p.decls()
	}

	return r
}

// Expressions.

//nolint:gochecknoglobals
var fixities = map[string]struct {
	prec  int
	assoc byte
}{
	".":       {9, 'r'},
	"!!":      {9, 'l'},
	"^":       {8, 'r'},
	"**":      {8, 'r'},
	"*":       {7, 'l'},
	"/":       {7, 'l'},
	"div":     {7, 'l'},
	"mod":     {7, 'l'},
	"rem":     {7, 'l'},
	"quot":    {7, 'l'},
	"+":       {6, 'l'},
	"-":       {6, 'l'},
	":":       {5, 'r'},
	"++":      {5, 'r'},
	"==":      {4, 'n'},
	"/=":      {4, 'n'},
	"<":       {4, 'n'},
	"<=":      {4, 'n'},
	">":       {4, 'n'},
	">=":      {4, 'n'},
	"elem":    {4, 'n'},
	"notElem": {4, 'n'},
	"&&":      {3, 'r'},
	"||":      {2, 'r'},
	">>":      {1, 'l'},
	">>=":     {1, 'l'},
	"$":       {0, 'r'},
	"$!":      {0, 'r'},
	"seq":     {0, 'r'},
}

const negationPrecedence = 6

func fixity(op string) (int, byte) {
	if f, ok := fixities[op]; ok {
		return f.prec, f.assoc
	}

	return 9, 'l' //nolint:gomnd
}

func (p *T) expr() ast.Expr {
	e, _ := p.infix(false)

	if p.peek().IsWord(token.Reserved, "::") && !p.boundary() {
		p.advance()
		p.skipType()
	}

	return e
}

type operator struct {
	name   string
	source *loc.T
}

// infix parses a sequence of operands separated by operators and resolves
// it using Haskell's fixities. If section is true a trailing operator
// before ')' is allowed and returned.
func (p *T) infix(section bool) (ast.Expr, *operator) {
	var negated *loc.T

	if t := p.peek(); t.IsWord(token.Op, "-") {
		negated = p.advance().Source()
	}

	operands := []ast.Expr{p.lexp()}
	operators := []*operator{}

	for !p.boundary() {
		op := p.operator()
		if op == nil {
			break
		}

		if section && p.peek().Is(')') {
			return p.resolve(negated, operands, operators), op
		}

		operators = append(operators, op)
		operands = append(operands, p.lexp())
	}

	return p.resolve(negated, operands, operators), nil
}

func (p *T) operator() *operator {
	t := p.peek()

	switch {
	case t.Is(token.Op):
		p.advance()

		return &operator{name: t.Value(), source: t.Source()}
	case t.Is('`'):
		n := p.peekAt(p.index + 1)
		if !n.Is(token.Ident, token.ConID) || !p.peekAt(p.index+2).Is('`') {
			p.unexpected(t)
		}

		p.advance()
		p.advance()
		p.advance()

		return &operator{name: n.Value(), source: n.Source()}
	}

	return nil
}

func (p *T) resolve(negated *loc.T, operands []ast.Expr, operators []*operator) ast.Expr {
	if negated != nil {
		i := 0
		for i < len(operators) {
			if prec, _ := fixity(operators[i].name); prec <= negationPrecedence {
				break
			}
			i++
		}

		e := reduce(operands[:i+1], operators[:i])
		e = apply(&ast.Var{Node: ast.Node{Source: negated}, Name: "negate"}, e)

		operands = append([]ast.Expr{e}, operands[i+1:]...)
		operators = operators[i:]
	}

	return reduce(operands, operators)
}

// reduce applies the shunting-yard algorithm to operands and operators.
func reduce(operands []ast.Expr, operators []*operator) ast.Expr {
	out := []ast.Expr{operands[0]}
	stack := []*operator{}

	pop := func() {
		op := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := len(out)
		l, r := out[n-2], out[n-1]
		out = append(out[:n-2], binary(op, l, r))
	}

	for i, op := range operators {
		prec, assoc := fixity(op.name)

		for len(stack) > 0 {
			top, _ := fixity(stack[len(stack)-1].name)
			if top > prec || (top == prec && assoc != 'r') {
				pop()

				continue
			}

			break
		}

		stack = append(stack, op)
		out = append(out, operands[i+1])
	}

	for len(stack) > 0 {
		pop()
	}

	return out[0]
}

func apply(f, a ast.Expr) ast.Expr {
	return &ast.App{Node: ast.Node{Source: f.Pos()}, Fun: f, Arg: a}
}

func binary(op *operator, l, r ast.Expr) ast.Expr {
	return apply(apply(&ast.Var{Node: ast.Node{Source: op.source}, Name: op.name}, l), r)
}

func (p *T) lexp() ast.Expr {
	t := p.peek()
	node := ast.Node{Source: t.Source()}

	switch {
	case t.IsWord(token.Reserved, "\\"):
		p.advance()

		params := p.apats()
		if len(params) == 0 {
			p.unexpected(p.peek())
		}

		p.expectWord(token.Reserved, "->")

		return &ast.Lambda{Node: node, Params: params, Body: p.expr()}
	case t.IsWord(token.Keyword, "case"):
		p.advance()

		e := &ast.Case{Node: node, Scrutinee: p.expr()}

		p.expectWord(token.Keyword, "of")

		p.block(func() {
			pt := p.peek()
			pat := p.pattern()
			e.Alts = append(e.Alts, &ast.Alt{
				Node: ast.Node{Source: pt.Source()},
				Pat:  pat,
				Rhs:  p.rhs("->"),
			})
		})

		return e
	case t.IsWord(token.Keyword, "do"):
		p.advance()

		e := &ast.Do{Node: node}

		p.block(func() {
			e.Stmts = append(e.Stmts, p.stmt(false))
		})

		if len(e.Stmts) == 0 {
			p.fail(t, "empty do block")
		}

		return e
	case t.IsWord(token.Keyword, "if"):
		p.advance()

		e := &ast.If{Node: node, Cond: p.expr()}

		p.expectWord(token.Keyword, "then")
		e.Then = p.expr()

		p.expectWord(token.Keyword, "else")
		e.Else = p.expr()

		return e
	case t.IsWord(token.Keyword, "let"):
		p.advance()

		e := &ast.Let{Node: node, Decls: p.decls()}

		p.expectWord(token.Keyword, "in")
		e.Body = p.expr()

		return e
	}

	return p.fexp()
}

func (p *T) fexp() ast.Expr {
	e := p.aexp()

	for !p.boundary() && startsAtom(p.peek()) {
		e = apply(e, p.aexp())
	}

	return e
}

func startsAtom(t *token.T) bool {
	return t.Is(token.Char, token.ConID, token.Float, token.Ident,
		token.Int, token.String, '(', '[')
}

func (p *T) aexp() ast.Expr {
	t := p.peek()
	node := ast.Node{Source: t.Source()}

	switch t.Class() {
	case token.Ident:
		p.advance()

		return &ast.Var{Node: node, Name: t.Value()}
	case token.ConID:
		p.advance()

		return &ast.Con{Node: node, Name: t.Value()}
	case token.Char, token.Float, token.Int, token.String:
		p.advance()

		return &ast.Lit{Node: node, Value: p.literal(t)}
	case '(':
		return p.paren()
	case '[':
		return p.list()
	}

	p.unexpected(t)

	return nil
}

func (p *T) literal(t *token.T) interface{} {
	switch t.Class() {
	case token.Char:
		return []rune(t.Value())[0]
	case token.Float:
		f, err := strconv.ParseFloat(t.Value(), 64)
		if err != nil {
			p.fail(t, "invalid number "+t.Value())
		}

		return f
	case token.Int:
		i, err := strconv.ParseInt(t.Value(), 10, 64)
		if err != nil {
			p.fail(t, "invalid number "+t.Value())
		}

		return i
	}

	return t.Value()
}

func (p *T) paren() ast.Expr {
	open := p.expect('(')
	node := ast.Node{Source: open.Source()}

	// Parentheses suspend layout.
	saved := p.layout
	p.layout = append(p.layout, 0)

	defer func() {
		p.layout = saved
	}()

	t := p.peek()

	switch {
	case t.Is(')'):
		p.advance()

		return &ast.Unit{Node: node}
	case t.Is(',') && p.peekAt(p.index+1).Is(')'):
		p.advance()
		p.advance()

		return &ast.Var{Node: node, Name: "(,)"}
	case t.Is(token.Op) && p.peekAt(p.index+1).Is(')'):
		p.advance()
		p.advance()

		return &ast.Var{Node: node, Name: t.Value()}
	case t.Is('`') || (t.Is(token.Op) && t.Value() != "-"):
		op := p.operator()
		right := p.expr()

		p.expect(')')

		return &ast.Section{Node: node, Op: op.name, Right: right}
	}

	e, op := p.infix(true)
	if op != nil {
		p.expect(')')

		return &ast.Section{Node: node, Op: op.name, Left: e}
	}

	if p.peek().IsWord(token.Reserved, "::") {
		p.advance()
		p.skipType()
	}

	if p.peek().Is(',') {
		elems := []ast.Expr{e}

		for p.peek().Is(',') {
			p.advance()
			elems = append(elems, p.expr())
		}

		p.expect(')')

		return &ast.Tuple{Node: node, Elems: elems}
	}

	p.expect(')')

	return e
}

func (p *T) list() ast.Expr {
	open := p.expect('[')
	node := ast.Node{Source: open.Source()}

	saved := p.layout
	p.layout = append(p.layout, 0)

	defer func() {
		p.layout = saved
	}()

	if p.peek().Is(']') {
		p.advance()

		return &ast.List{Node: node}
	}

	first := p.expr()

	switch t := p.peek(); {
	case t.IsWord(token.Reserved, ".."):
		p.advance()

		r := &ast.Range{Node: node, From: first}
		if !p.peek().Is(']') {
			r.To = p.expr()
		}

		p.expect(']')

		return r
	case t.IsWord(token.Reserved, "|"):
		p.advance()

		c := &ast.Comprehension{Node: node, Body: first}

		for {
			c.Quals = append(c.Quals, p.stmt(true))

			if !p.peek().Is(',') {
				break
			}

			p.advance()
		}

		p.expect(']')

		return c
	}

	elems := []ast.Expr{first}

	for p.peek().Is(',') {
		p.advance()
		elems = append(elems, p.expr())

		if len(elems) == 2 && p.peek().IsWord(token.Reserved, "..") { //nolint:gomnd
			p.advance()

			r := &ast.Range{Node: node, From: elems[0], Then: elems[1]}
			if !p.peek().Is(']') {
				r.To = p.expr()
			}

			p.expect(']')

			return r
		}
	}

	p.expect(']')

	return &ast.List{Node: node, Elems: elems}
}

// stmt parses a do statement or, if qualifier is true, a list
// comprehension qualifier.
func (p *T) stmt(qualifier bool) ast.Stmt {
	t := p.peek()
	node := ast.Node{Source: t.Source()}

	if t.IsWord(token.Keyword, "let") {
		p.advance()

		ds := p.decls()

		if p.peek().IsWord(token.Keyword, "in") {
			p.advance()

			return &ast.ExprStmt{Node: node, Expr: &ast.Let{Node: node, Decls: ds, Body: p.expr()}}
		}

		return &ast.LetStmt{Node: node, Decls: ds}
	}

	arrow := p.scan(func(t *token.T) bool {
		if qualifier && t.Is(',') {
			return true
		}

		return t.IsWord(token.Reserved, "<-") || t.Is(token.Keyword)
	})

	if arrow.IsWord(token.Reserved, "<-") {
		pat := p.pattern()

		p.expectWord(token.Reserved, "<-")

		return &ast.Bind{Node: node, Pat: pat, Expr: p.expr()}
	}

	return &ast.ExprStmt{Node: node, Expr: p.expr()}
}

// Patterns.

func startsPattern(t *token.T) bool {
	return t.Is(token.Char, token.ConID, token.Float, token.Ident,
		token.Int, token.String, '(', '[')
}

func (p *T) apats() []ast.Pattern {
	ps := []ast.Pattern{}

	for startsPattern(p.peek()) && !p.boundary() {
		ps = append(ps, p.apat())
	}

	return ps
}

func (p *T) pattern() ast.Pattern {
	t := p.peek()
	node := ast.Node{Source: t.Source()}

	var head ast.Pattern

	switch {
	case t.Is(token.ConID):
		p.advance()

		c := &ast.PCon{Node: node, Name: t.Value()}
		for startsPattern(p.peek()) && !p.boundary() {
			c.Args = append(c.Args, p.apat())
		}

		head = c
	case t.IsWord(token.Op, "-"):
		p.advance()

		n := p.peek()
		if !n.Is(token.Int, token.Float) {
			p.unexpected(n)
		}

		p.advance()

		switch v := p.literal(n).(type) {
		case int64:
			head = &ast.PLit{Node: node, Value: -v}
		case float64:
			head = &ast.PLit{Node: node, Value: -v}
		}
	default:
		head = p.apat()
	}

	if p.peek().IsWord(token.Op, ":") {
		p.advance()

		return &ast.PCons{Node: node, Head: head, Tail: p.pattern()}
	}

	return head
}

func (p *T) apat() ast.Pattern {
	t := p.peek()
	node := ast.Node{Source: t.Source()}

	switch t.Class() {
	case token.Ident:
		p.advance()

		if t.Value() == "_" {
			return &ast.PWild{Node: node}
		}

		if p.peek().IsWord(token.Reserved, "@") {
			p.advance()

			return &ast.PAs{Node: node, Name: t.Value(), Pat: p.apat()}
		}

		return &ast.PVar{Node: node, Name: t.Value()}
	case token.ConID:
		p.advance()

		return &ast.PCon{Node: node, Name: t.Value()}
	case token.Char, token.Float, token.Int, token.String:
		p.advance()

		return &ast.PLit{Node: node, Value: p.literal(t)}
	case '(':
		p.advance()

		if p.peek().Is(')') {
			p.advance()

			return &ast.PCon{Node: node, Name: "()"}
		}

		elems := []ast.Pattern{p.pattern()}
		for p.peek().Is(',') {
			p.advance()
			elems = append(elems, p.pattern())
		}

		p.expect(')')

		if len(elems) == 1 {
			return elems[0]
		}

		return &ast.PTuple{Node: node, Elems: elems}
	case '[':
		p.advance()

		l := &ast.PList{Node: node}

		if !p.peek().Is(']') {
			l.Elems = append(l.Elems, p.pattern())
			for p.peek().Is(',') {
				p.advance()
				l.Elems = append(l.Elems, p.pattern())
			}
		}

		p.expect(']')

		return l
	}

	p.fail(t, fmt.Sprintf("unexpected %s in pattern", describe(t)))

	return nil
}

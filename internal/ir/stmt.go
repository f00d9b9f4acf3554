// Package ir defines the validated internal representation produced by
// semantic analysis. Every expression node carries its final, resolved
// type; statements reference declared entities by their symbol ID.
package ir

import (
	"lumen/internal/source"
	"lumen/internal/symbols"
)

// Program is an ordered sequence of validated statements.
type Program struct {
	Stmts []Stmt
}

// Stmt is a validated statement node.
type Stmt interface {
	stmtNode()
	Span() source.Span
}

type stmt struct {
	span source.Span
}

func (s stmt) stmtNode()         {}
func (s stmt) Span() source.Span { return s.span }

// Print writes the operand's value to the program's output.
type Print struct {
	stmt
	Value Expr
}

func NewPrint(sp source.Span, value Expr) *Print {
	return &Print{stmt: stmt{span: sp}, Value: value}
}

// VarDecl binds a new variable or constant entity to its initializer.
type VarDecl struct {
	stmt
	Sym  symbols.SymID
	Init Expr
}

func NewVarDecl(sp source.Span, sym symbols.SymID, init Expr) *VarDecl {
	return &VarDecl{stmt: stmt{span: sp}, Sym: sym, Init: init}
}

// Assign stores Value into the entity named by Sym.
type Assign struct {
	stmt
	Sym   symbols.SymID
	Value Expr
}

func NewAssign(sp source.Span, sym symbols.SymID, value Expr) *Assign {
	return &Assign{stmt: stmt{span: sp}, Sym: sym, Value: value}
}

// CallStmt evaluates a call for its effect, discarding the result.
type CallStmt struct {
	stmt
	Call *Call
}

func NewCallStmt(sp source.Span, call *Call) *CallStmt {
	return &CallStmt{stmt: stmt{span: sp}, Call: call}
}

// Pass does nothing.
type Pass struct {
	stmt
}

func NewPass(sp source.Span) *Pass { return &Pass{stmt: stmt{span: sp}} }

// Break exits the innermost enclosing loop.
type Break struct {
	stmt
}

func NewBreak(sp source.Span) *Break { return &Break{stmt: stmt{span: sp}} }

// Return exits the enclosing function. Value is nil for void functions.
type Return struct {
	stmt
	Value Expr
}

func NewReturn(sp source.Span, value Expr) *Return {
	return &Return{stmt: stmt{span: sp}, Value: value}
}

// While repeats Body while Cond holds.
type While struct {
	stmt
	Cond Expr
	Body []Stmt
}

func NewWhile(sp source.Span, cond Expr, body []Stmt) *While {
	return &While{stmt: stmt{span: sp}, Cond: cond, Body: body}
}

// ForRange binds Sym to each integer in [From, To) inside Body.
type ForRange struct {
	stmt
	Sym  symbols.SymID
	From Expr
	To   Expr
	Body []Stmt
}

func NewForRange(sp source.Span, sym symbols.SymID, from, to Expr, body []Stmt) *ForRange {
	return &ForRange{stmt: stmt{span: sp}, Sym: sym, From: from, To: to, Body: body}
}

// ForIn binds Sym to each element of Iter inside Body.
type ForIn struct {
	stmt
	Sym  symbols.SymID
	Iter Expr
	Body []Stmt
}

func NewForIn(sp source.Span, sym symbols.SymID, iter Expr, body []Stmt) *ForIn {
	return &ForIn{stmt: stmt{span: sp}, Sym: sym, Iter: iter, Body: body}
}

// If selects Then or Else on Cond. An else-if chain appears as a single
// nested If statement in Else.
type If struct {
	stmt
	Cond Expr
	Then []Stmt
	Else []Stmt
}

func NewIf(sp source.Span, cond Expr, then, els []Stmt) *If {
	return &If{stmt: stmt{span: sp}, Cond: cond, Then: then, Else: els}
}

// Try runs Body; on failure (or after Timeout, when present) control
// transfers to Catch with CatchParams bound.
type Try struct {
	stmt
	Body        []Stmt
	Timeout     Expr // nil for plain try/catch
	CatchParams []symbols.SymID
	Catch       []Stmt
}

func NewTry(sp source.Span, body []Stmt, timeout Expr, catchParams []symbols.SymID, catch []Stmt) *Try {
	return &Try{stmt: stmt{span: sp}, Body: body, Timeout: timeout, CatchParams: catchParams, Catch: catch}
}

// FnDecl introduces a function entity; Params are the parameter entities
// bound in the body scope.
type FnDecl struct {
	stmt
	Sym    symbols.SymID
	Params []symbols.SymID
	Body   []Stmt
}

func NewFnDecl(sp source.Span, sym symbols.SymID, params []symbols.SymID, body []Stmt) *FnDecl {
	return &FnDecl{stmt: stmt{span: sp}, Sym: sym, Params: params, Body: body}
}

package ir

import (
	"lumen/internal/source"
	"lumen/internal/symbols"
	"lumen/internal/types"
)

// Expr is a validated expression node with a fixed, final type.
type Expr interface {
	exprNode()
	Type() types.TypeID
	Span() source.Span
}

// expr carries the metadata every expression node shares. Nodes are built
// through the New* constructors, so a type is assigned exactly once.
type expr struct {
	typ  types.TypeID
	span source.Span
}

func (e expr) exprNode()          {}
func (e expr) Type() types.TypeID { return e.typ }
func (e expr) Span() source.Span  { return e.span }

// BinaryOp enumerates binary operators.
type BinaryOp uint8

const (
	OpInvalid BinaryOp = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpPow
	OpLt
	OpLe
	OpGt
	OpGe
	OpEq
	OpNe
	OpAnd
	OpOr
)

// UnaryOp enumerates unary operators.
type UnaryOp uint8

const (
	OpUnaryInvalid UnaryOp = iota
	OpNeg                  // -x
	OpNot                  // !x
	OpSome                 // some x, wraps into optional
)

// Binary applies Op to two operands of agreed types.
type Binary struct {
	expr
	Op  BinaryOp
	LHS Expr
	RHS Expr
}

func NewBinary(t types.TypeID, sp source.Span, op BinaryOp, lhs, rhs Expr) *Binary {
	return &Binary{expr: expr{typ: t, span: sp}, Op: op, LHS: lhs, RHS: rhs}
}

// Unary applies Op to one operand.
type Unary struct {
	expr
	Op      UnaryOp
	Operand Expr
}

func NewUnary(t types.TypeID, sp source.Span, op UnaryOp, operand Expr) *Unary {
	return &Unary{expr: expr{typ: t, span: sp}, Op: op, Operand: operand}
}

// UnwrapDefault is `optional ?? default`: the default substitutes when
// the optional is empty. The result keeps the optional's type.
type UnwrapDefault struct {
	expr
	Optional Expr
	Default  Expr
}

func NewUnwrapDefault(t types.TypeID, sp source.Span, optional, def Expr) *UnwrapDefault {
	return &UnwrapDefault{expr: expr{typ: t, span: sp}, Optional: optional, Default: def}
}

// Index reads an array element.
type Index struct {
	expr
	Base  Expr
	Index Expr
}

func NewIndex(t types.TypeID, sp source.Span, base, index Expr) *Index {
	return &Index{expr: expr{typ: t, span: sp}, Base: base, Index: index}
}

// LitKind tags literal payloads.
type LitKind uint8

const (
	LitInt LitKind = iota + 1
	LitFloat
	LitString
	LitBool
)

// Literal is a constant of one of the primitive types.
type Literal struct {
	expr
	Kind   LitKind
	Int    int64
	Float  float64
	String string
	Bool   bool
}

func NewIntLit(t types.TypeID, sp source.Span, v int64) *Literal {
	return &Literal{expr: expr{typ: t, span: sp}, Kind: LitInt, Int: v}
}

func NewFloatLit(t types.TypeID, sp source.Span, v float64) *Literal {
	return &Literal{expr: expr{typ: t, span: sp}, Kind: LitFloat, Float: v}
}

func NewStringLit(t types.TypeID, sp source.Span, v string) *Literal {
	return &Literal{expr: expr{typ: t, span: sp}, Kind: LitString, String: v}
}

func NewBoolLit(t types.TypeID, sp source.Span, v bool) *Literal {
	return &Literal{expr: expr{typ: t, span: sp}, Kind: LitBool, Bool: v}
}

// VarRef resolves an identifier to the entity visible at its use site.
type VarRef struct {
	expr
	Sym symbols.SymID
}

func NewVarRef(t types.TypeID, sp source.Span, sym symbols.SymID) *VarRef {
	return &VarRef{expr: expr{typ: t, span: sp}, Sym: sym}
}

// ArrayLit builds an array; all elements share the element type.
type ArrayLit struct {
	expr
	Elems []Expr
}

func NewArrayLit(t types.TypeID, sp source.Span, elems []Expr) *ArrayLit {
	return &ArrayLit{expr: expr{typ: t, span: sp}, Elems: elems}
}

// DictEntry is one key/value pair of a dict literal.
type DictEntry struct {
	Key   Expr
	Value Expr
}

// DictLit builds a dictionary.
type DictLit struct {
	expr
	Entries []DictEntry
}

func NewDictLit(t types.TypeID, sp source.Span, entries []DictEntry) *DictLit {
	return &DictLit{expr: expr{typ: t, span: sp}, Entries: entries}
}

// Call invokes the function entity Sym with validated arguments.
type Call struct {
	expr
	Sym  symbols.SymID
	Args []Expr
}

func NewCall(t types.TypeID, sp source.Span, sym symbols.SymID, args []Expr) *Call {
	return &Call{expr: expr{typ: t, span: sp}, Sym: sym, Args: args}
}

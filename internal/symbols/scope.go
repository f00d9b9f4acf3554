package symbols

import (
	"lumen/internal/source"
)

// ScopeKind enumerates supported scope categories.
type ScopeKind uint8

const (
	ScopeInvalid  ScopeKind = iota
	ScopeRoot               // root, pre-seeded with the stdlib table
	ScopeBlock              // generic block (if branch, try block, ...)
	ScopeLoop               // while / for body
	ScopeFunction           // function body
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeRoot:
		return "root"
	case ScopeBlock:
		return "block"
	case ScopeLoop:
		return "loop"
	case ScopeFunction:
		return "function"
	default:
		return "invalid"
	}
}

// Scope models one lexical binding environment in a parent-linked chain.
// InLoop and Fn are inherited through nested block scopes, so "inside a
// loop" and "enclosing function" are answered without walking the chain.
type Scope struct {
	Kind   ScopeKind
	Parent ScopeID
	Span   source.Span
	InLoop bool
	Fn     SymID // enclosing function entity, NoSymID at top level
	Names  map[source.StringID]SymID
	Order  []SymID
}

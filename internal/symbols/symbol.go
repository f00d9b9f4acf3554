package symbols

import (
	"lumen/internal/source"
	"lumen/internal/types"
)

// SymbolKind classifies the semantic meaning of a symbol.
type SymbolKind uint8

const (
	SymbolInvalid SymbolKind = iota
	SymbolVar
	SymbolFn
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolVar:
		return "variable"
	case SymbolFn:
		return "function"
	default:
		return "invalid"
	}
}

// SymbolFlags encode misc attributes for quick checks.
type SymbolFlags uint8

const (
	// SymbolFlagReadOnly marks const bindings, loop variables, and
	// function entities.
	SymbolFlagReadOnly SymbolFlags = 1 << iota
	// SymbolFlagBuiltin marks standard-library entities seeded into the
	// root scope.
	SymbolFlagBuiltin
)

// Symbol describes a named entity bound in exactly one scope.
//
// Function symbols follow declare-then-finalize: the symbol is bound with
// Type == types.NoTypeID so the body can reference it (self-recursion),
// and the signature is frozen exactly once via Finalize before the body
// is analyzed.
type Symbol struct {
	Name   source.StringID
	Kind   SymbolKind
	Scope  ScopeID
	Span   source.Span
	Flags  SymbolFlags
	Type   types.TypeID
	Params []SymID // function parameters, in order
}

// ReadOnly reports whether the entity rejects assignment.
func (s *Symbol) ReadOnly() bool {
	return s.Flags&SymbolFlagReadOnly != 0
}

// Finalize freezes the symbol's type. Finalizing twice, or with an
// invalid type, is a programming error.
func (s *Symbol) Finalize(t types.TypeID) {
	if t == types.NoTypeID {
		panic("symbols: finalize with invalid type")
	}
	if s.Type != types.NoTypeID {
		panic("symbols: type already finalized")
	}
	s.Type = t
}

package symbols

import (
	"fmt"

	"fortio.org/safecast"

	"lumen/internal/source"
)

// Scopes stores all allocated scopes in a compact slice-based arena.
type Scopes struct {
	data []Scope
}

// NewScopes creates an arena with an optional capacity hint.
func NewScopes(capacity uint32) *Scopes {
	if capacity == 0 {
		capacity = 16
	}
	return &Scopes{
		data: make([]Scope, 1, capacity+1), // index 0 reserved for NoScopeID
	}
}

// New allocates a scope and returns its ID. Loop scopes set InLoop;
// function scopes reset it and install fn as the enclosing function;
// everything else inherits both from the parent.
func (s *Scopes) New(kind ScopeKind, parent ScopeID, fn SymID, span source.Span) ScopeID {
	value, err := safecast.Conv[uint32](len(s.data))
	if err != nil {
		panic(fmt.Errorf("scopes arena overflow: %w", err))
	}
	id := ScopeID(value)

	scope := Scope{
		Kind:   kind,
		Parent: parent,
		Span:   span,
		Names:  make(map[source.StringID]SymID),
	}
	if p := s.Get(parent); p != nil {
		scope.InLoop = p.InLoop
		scope.Fn = p.Fn
	}
	switch kind {
	case ScopeLoop:
		scope.InLoop = true
	case ScopeFunction:
		scope.InLoop = false
		scope.Fn = fn
	}

	s.data = append(s.data, scope)
	return id
}

// Get returns the scope pointer or nil if ID is invalid.
func (s *Scopes) Get(id ScopeID) *Scope {
	if !id.IsValid() || int(id) >= len(s.data) {
		return nil
	}
	return &s.data[id]
}

// Len reports total number of scopes excluding the sentinel.
func (s *Scopes) Len() int { return len(s.data) - 1 }

// Syms stores declared symbols in a compact arena.
type Syms struct {
	data []Symbol
}

// NewSyms creates a symbol arena with an optional capacity hint.
func NewSyms(capacity uint32) *Syms {
	if capacity == 0 {
		capacity = 32
	}
	return &Syms{
		data: make([]Symbol, 1, capacity+1), // index 0 reserved for NoSymID
	}
}

// New allocates a symbol in the arena and returns its ID.
func (s *Syms) New(sym *Symbol) SymID {
	if sym == nil {
		panic("symbols.New: nil symbol")
	}
	value, err := safecast.Conv[uint32](len(s.data))
	if err != nil {
		panic(fmt.Errorf("symbols arena overflow: %w", err))
	}
	id := SymID(value)
	s.data = append(s.data, *sym)
	return id
}

// Get returns a symbol pointer or nil for invalid ID.
func (s *Syms) Get(id SymID) *Symbol {
	if !id.IsValid() || int(id) >= len(s.data) {
		return nil
	}
	return &s.data[id]
}

// Len reports number of stored symbols excluding the sentinel.
func (s *Syms) Len() int { return len(s.data) - 1 }

package symbols

import (
	"fmt"

	"fortio.org/safecast"

	"lumen/internal/source"
	"lumen/internal/types"
)

// Hints provide optional capacity suggestions for the symbol table arenas.
type Hints struct{ Scopes, Symbols uint }

// Table aggregates the scope and symbol arenas plus the shared string
// interner. One table serves one analysis run.
type Table struct {
	Scopes  *Scopes
	Syms    *Syms
	Strings *source.Interner
	root    ScopeID
}

// NewTable builds a fresh table with optional capacity hints.
// If strings is nil, a fresh interner is allocated.
func NewTable(h Hints, strings *source.Interner) *Table {
	scopeCap, err := safecast.Conv[uint32](h.Scopes)
	if err != nil {
		panic(fmt.Errorf("scope capacity overflow: %w", err))
	}
	symCap, err := safecast.Conv[uint32](h.Symbols)
	if err != nil {
		panic(fmt.Errorf("symbol capacity overflow: %w", err))
	}
	if strings == nil {
		strings = source.NewInterner()
	}
	t := &Table{
		Scopes:  NewScopes(scopeCap),
		Syms:    NewSyms(symCap),
		Strings: strings,
	}
	t.root = t.Scopes.New(ScopeRoot, NoScopeID, NoSymID, source.Span{})
	return t
}

// Root returns the pre-created root scope.
func (t *Table) Root() ScopeID { return t.root }

// Declare binds sym into scope and returns its ID. Collision checking
// against the local scope is the caller's responsibility (LookupLocal).
func (t *Table) Declare(scope ScopeID, sym Symbol) SymID {
	sc := t.Scopes.Get(scope)
	if sc == nil {
		panic("symbols: declare into invalid scope")
	}
	sym.Scope = scope
	id := t.Syms.New(&sym)
	sc.Names[sym.Name] = id
	sc.Order = append(sc.Order, id)
	return id
}

// LookupLocal consults only the given scope's own name table.
func (t *Table) LookupLocal(scope ScopeID, name source.StringID) (SymID, bool) {
	sc := t.Scopes.Get(scope)
	if sc == nil {
		return NoSymID, false
	}
	id, ok := sc.Names[name]
	return id, ok
}

// Lookup walks from scope outward through parent links until the name is
// found or the chain is exhausted.
func (t *Table) Lookup(scope ScopeID, name source.StringID) (SymID, bool) {
	for cur := scope; cur.IsValid(); {
		sc := t.Scopes.Get(cur)
		if sc == nil {
			break
		}
		if id, ok := sc.Names[name]; ok {
			return id, true
		}
		cur = sc.Parent
	}
	return NoSymID, false
}

// SeedRoot merges a read-only name→type table (the standard library
// collaborator) into the root scope. Seeding happens once, before
// traversal begins.
func (t *Table) SeedRoot(entries []PreludeEntry) {
	for _, e := range entries {
		kind := e.Kind
		if kind == SymbolInvalid {
			kind = SymbolVar
		}
		t.Declare(t.root, Symbol{
			Name:  t.Strings.Intern(e.Name),
			Kind:  kind,
			Flags: SymbolFlagReadOnly | SymbolFlagBuiltin,
			Type:  e.Type,
		})
	}
}

// PreludeEntry is one standard-library entity to seed into the root scope.
type PreludeEntry struct {
	Name string
	Kind SymbolKind
	Type types.TypeID
}

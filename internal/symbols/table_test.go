package symbols

import (
	"testing"

	"lumen/internal/source"
	"lumen/internal/types"
)

func TestDeclareAndLookup(t *testing.T) {
	tbl := NewTable(Hints{}, nil)
	name := tbl.Strings.Intern("x")

	id := tbl.Declare(tbl.Root(), Symbol{Name: name, Kind: SymbolVar})
	if !id.IsValid() {
		t.Fatalf("invalid sym id")
	}

	got, ok := tbl.Lookup(tbl.Root(), name)
	if !ok || got != id {
		t.Fatalf("lookup: %v %v", got, ok)
	}
	if _, ok := tbl.Lookup(tbl.Root(), tbl.Strings.Intern("y")); ok {
		t.Fatalf("unknown name must not resolve")
	}
}

func TestLookupLocalStopsAtScope(t *testing.T) {
	tbl := NewTable(Hints{}, nil)
	name := tbl.Strings.Intern("x")
	tbl.Declare(tbl.Root(), Symbol{Name: name, Kind: SymbolVar})

	inner := tbl.Scopes.New(ScopeBlock, tbl.Root(), NoSymID, source.Span{})
	if _, ok := tbl.LookupLocal(inner, name); ok {
		t.Fatalf("local lookup must not consult the parent")
	}
	if _, ok := tbl.Lookup(inner, name); !ok {
		t.Fatalf("chain lookup must find the outer binding")
	}
}

func TestShadowing(t *testing.T) {
	tbl := NewTable(Hints{}, nil)
	name := tbl.Strings.Intern("x")

	outer := tbl.Declare(tbl.Root(), Symbol{Name: name, Kind: SymbolVar})
	inner := tbl.Scopes.New(ScopeBlock, tbl.Root(), NoSymID, source.Span{})
	shadow := tbl.Declare(inner, Symbol{Name: name, Kind: SymbolVar})

	if got, _ := tbl.Lookup(inner, name); got != shadow {
		t.Fatalf("inner lookup must see the shadow, got %v", got)
	}
	if got, _ := tbl.Lookup(tbl.Root(), name); got != outer {
		t.Fatalf("outer lookup must still see the original, got %v", got)
	}
}

func TestScopeInheritance(t *testing.T) {
	tbl := NewTable(Hints{}, nil)
	fn := tbl.Declare(tbl.Root(), Symbol{Name: tbl.Strings.Intern("f"), Kind: SymbolFn})

	fnScope := tbl.Scopes.New(ScopeFunction, tbl.Root(), fn, source.Span{})
	loop := tbl.Scopes.New(ScopeLoop, fnScope, NoSymID, source.Span{})
	block := tbl.Scopes.New(ScopeBlock, loop, NoSymID, source.Span{})

	if sc := tbl.Scopes.Get(fnScope); sc.InLoop || sc.Fn != fn {
		t.Fatalf("function scope: %+v", sc)
	}
	if sc := tbl.Scopes.Get(loop); !sc.InLoop || sc.Fn != fn {
		t.Fatalf("loop scope: %+v", sc)
	}
	// Blocks inherit both flags without walking the chain.
	if sc := tbl.Scopes.Get(block); !sc.InLoop || sc.Fn != fn {
		t.Fatalf("block scope: %+v", sc)
	}

	// A nested function resets the loop flag.
	inner := tbl.Scopes.New(ScopeFunction, block, fn, source.Span{})
	if sc := tbl.Scopes.Get(inner); sc.InLoop {
		t.Fatalf("nested function must not inherit InLoop")
	}
}

func TestFinalize(t *testing.T) {
	tbl := NewTable(Hints{}, nil)
	in := types.NewInterner()
	sig := in.Fn([]types.TypeID{in.Builtins().Int}, in.Builtins().Void)

	id := tbl.Declare(tbl.Root(), Symbol{Name: tbl.Strings.Intern("f"), Kind: SymbolFn})
	sym := tbl.Syms.Get(id)
	if sym.Type != types.NoTypeID {
		t.Fatalf("fresh function must be unfinalized")
	}
	sym.Finalize(sig)
	if sym.Type != sig {
		t.Fatalf("type not frozen")
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("double finalize must panic")
		}
	}()
	sym.Finalize(sig)
}

func TestSeedRoot(t *testing.T) {
	tbl := NewTable(Hints{}, nil)
	in := types.NewInterner()
	b := in.Builtins()
	tbl.SeedRoot([]PreludeEntry{
		{Name: "len", Kind: SymbolFn, Type: in.Fn([]types.TypeID{b.Any}, b.Int)},
	})

	id, ok := tbl.Lookup(tbl.Root(), tbl.Strings.Intern("len"))
	if !ok {
		t.Fatalf("seeded entry not found")
	}
	sym := tbl.Syms.Get(id)
	if !sym.ReadOnly() || sym.Flags&SymbolFlagBuiltin == 0 {
		t.Fatalf("seeded entry flags: %b", sym.Flags)
	}
	if sym.Kind != SymbolFn {
		t.Fatalf("seeded entry kind: %v", sym.Kind)
	}
}

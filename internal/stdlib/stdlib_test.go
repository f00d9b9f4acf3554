package stdlib

import (
	"testing"

	"lumen/internal/symbols"
	"lumen/internal/types"
)

func TestEntries(t *testing.T) {
	in := types.NewInterner()
	b := in.Builtins()
	entries := Entries(in)

	byName := make(map[string]symbols.PreludeEntry, len(entries))
	for _, e := range entries {
		if e.Kind != symbols.SymbolFn {
			t.Fatalf("%s: prelude entries are functions", e.Name)
		}
		if _, ok := in.FnInfo(e.Type); !ok {
			t.Fatalf("%s: type %s is not a function", e.Name, in.Format(e.Type))
		}
		byName[e.Name] = e
	}

	if got := byName["len"].Type; got != in.Fn([]types.TypeID{b.Any}, b.Int) {
		t.Fatalf("len: %s", in.Format(got))
	}
	if got := byName["pow"].Type; got != in.Fn([]types.TypeID{b.Float, b.Float}, b.Float) {
		t.Fatalf("pow: %s", in.Format(got))
	}
	if got := byName["clock"].Type; got != in.Fn(nil, b.Float) {
		t.Fatalf("clock: %s", in.Format(got))
	}
}

func TestMerge(t *testing.T) {
	in := types.NewInterner()
	extra := symbols.PreludeEntry{
		Name: "emit",
		Kind: symbols.SymbolFn,
		Type: in.Fn([]types.TypeID{in.Builtins().String}, in.Builtins().Void),
	}

	merged := Merge(in, []symbols.PreludeEntry{extra})
	if len(merged) != len(Entries(in))+1 {
		t.Fatalf("merged length: %d", len(merged))
	}
	if merged[len(merged)-1].Name != "emit" {
		t.Fatalf("custom entries follow the defaults")
	}

	if got := Merge(in, nil); len(got) != len(Entries(in)) {
		t.Fatalf("nil custom must return the defaults")
	}
}

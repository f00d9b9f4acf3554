// Package stdlib supplies the read-only standard-library entity table
// merged into the root scope before analysis starts. The analyzer only
// needs names and types here; the implementations live in the backend.
package stdlib

import (
	"lumen/internal/symbols"
	"lumen/internal/types"
)

// Entries returns the default prelude for the given interner.
func Entries(in *types.Interner) []symbols.PreludeEntry {
	b := in.Builtins()
	fn := func(result types.TypeID, params ...types.TypeID) types.TypeID {
		return in.Fn(params, result)
	}
	return []symbols.PreludeEntry{
		{Name: "len", Kind: symbols.SymbolFn, Type: fn(b.Int, b.Any)},
		{Name: "str", Kind: symbols.SymbolFn, Type: fn(b.String, b.Any)},
		{Name: "abs", Kind: symbols.SymbolFn, Type: fn(b.Float, b.Float)},
		{Name: "floor", Kind: symbols.SymbolFn, Type: fn(b.Int, b.Float)},
		{Name: "ceil", Kind: symbols.SymbolFn, Type: fn(b.Int, b.Float)},
		{Name: "sqrt", Kind: symbols.SymbolFn, Type: fn(b.Float, b.Float)},
		{Name: "pow", Kind: symbols.SymbolFn, Type: fn(b.Float, b.Float, b.Float)},
		{Name: "clock", Kind: symbols.SymbolFn, Type: fn(b.Float)},
		{Name: "input", Kind: symbols.SymbolFn, Type: fn(b.String)},
		{Name: "random", Kind: symbols.SymbolFn, Type: fn(b.Float)},
	}
}

// Merge combines the default prelude with embedder-provided entries.
func Merge(in *types.Interner, custom []symbols.PreludeEntry) []symbols.PreludeEntry {
	defaults := Entries(in)
	if len(custom) == 0 {
		return defaults
	}
	result := make([]symbols.PreludeEntry, 0, len(defaults)+len(custom))
	result = append(result, defaults...)
	result = append(result, custom...)
	return result
}

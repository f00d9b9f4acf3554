// Package sema turns a CST produced by the external parsing front-end
// into a validated, typed IR. Analysis is fail-fast: every rule asserts
// through one diagnostics gate, and the first violation aborts the pass
// with a single located error.
package sema

import (
	"lumen/internal/cst"
	"lumen/internal/diag"
	"lumen/internal/ir"
	"lumen/internal/source"
	"lumen/internal/stdlib"
	"lumen/internal/symbols"
	"lumen/internal/types"
)

// Options configure one analysis run.
type Options struct {
	// FileSet resolves spans to line/column positions. Optional; a fresh
	// set is allocated when nil.
	FileSet *source.FileSet
	// Types is a shared type interner. Optional.
	Types *types.Interner
	// Prelude extends the default standard-library table seeded into the
	// root scope.
	Prelude []symbols.PreludeEntry
}

// Result carries the validated program plus the tables the analysis
// built, for callers that want to inspect entities or types.
type Result struct {
	Program *ir.Program
	Table   *symbols.Table
	Types   *types.Interner
}

// Analyze validates the program rooted at root. It returns either a
// fully validated IR or the first violation as a *diag.Error; there is
// no partial result.
func Analyze(root *cst.Node, opts Options) (res *Result, err error) {
	fset := opts.FileSet
	if fset == nil {
		fset = source.NewFileSet()
	}
	in := opts.Types
	if in == nil {
		in = types.NewInterner()
	}
	table := symbols.NewTable(symbols.Hints{}, nil)
	table.SeedRoot(stdlib.Merge(in, opts.Prelude))

	a := &analyzer{
		fset:  fset,
		types: in,
		table: table,
		scope: table.Root(),
	}

	defer func() {
		if r := recover(); r != nil {
			if de, ok := r.(*diag.Error); ok {
				res, err = nil, de
				return
			}
			panic(r)
		}
	}()

	a.expect(root != nil && root.Kind == cst.KindProgram, diag.UnknownCode, source.Span{},
		"analysis input is not a program")

	prog := &ir.Program{Stmts: make([]ir.Stmt, 0, len(root.Children))}
	for i := range root.Children {
		prog.Stmts = append(prog.Stmts, a.stmt(&root.Children[i]))
	}
	return &Result{Program: prog, Table: table, Types: in}, nil
}

// analyzer is the tree-walking builder. The current scope cursor is the
// only mutable traversal state; it is pushed and popped in strict stack
// discipline via enter's restore closure.
type analyzer struct {
	fset  *source.FileSet
	types *types.Interner
	table *symbols.Table
	scope symbols.ScopeID
}

// expect is the diagnostics gate: every semantic rule is one call into
// it. On a failed condition it raises the single located error for this
// run and unwinds the whole analysis.
func (a *analyzer) expect(cond bool, code diag.Code, span source.Span, format string, args ...any) {
	if cond {
		return
	}
	panic(diag.Errorf(a.fset, code, span, format, args...))
}

// enter opens a child scope and returns the closure that restores the
// parent. Callers defer it so every exit path pops exactly once.
func (a *analyzer) enter(kind symbols.ScopeKind, fn symbols.SymID, span source.Span) func() {
	parent := a.scope
	a.scope = a.table.Scopes.New(kind, parent, fn, span)
	return func() { a.scope = parent }
}

func (a *analyzer) currentScope() *symbols.Scope {
	return a.table.Scopes.Get(a.scope)
}

// declare binds a new entity into the current scope, rejecting local
// collisions. Shadowing an outer name is permitted.
func (a *analyzer) declare(sym symbols.Symbol, span source.Span) symbols.SymID {
	name := a.table.Strings.MustLookup(sym.Name)
	_, exists := a.table.LookupLocal(a.scope, sym.Name)
	a.expect(!exists, diag.SemaDuplicateDeclaration, span,
		"'%s' is already declared in this scope", name)
	return a.table.Declare(a.scope, sym)
}

// resolve walks the scope chain for name; an unresolved name is an error.
func (a *analyzer) resolve(name string, span source.Span) (symbols.SymID, *symbols.Symbol) {
	id, ok := a.table.Lookup(a.scope, a.table.Strings.Intern(name))
	a.expect(ok, diag.SemaUndeclaredIdentifier, span, "undeclared identifier '%s'", name)
	return id, a.table.Syms.Get(id)
}

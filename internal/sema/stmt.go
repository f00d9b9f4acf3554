package sema

import (
	"lumen/internal/cst"
	"lumen/internal/diag"
	"lumen/internal/ir"
	"lumen/internal/symbols"
	"lumen/internal/types"
)

// stmt maps one statement production to a validated IR node.
func (a *analyzer) stmt(n *cst.Node) ir.Stmt {
	switch n.Kind {
	case cst.KindStmtPrint:
		return ir.NewPrint(n.Span, a.expr(&n.Children[0]))
	case cst.KindStmtVarDecl:
		return a.varDecl(n, false)
	case cst.KindStmtConst:
		return a.varDecl(n, true)
	case cst.KindStmtAssign:
		return a.assign(n)
	case cst.KindStmtCall:
		call, ok := a.expr(&n.Children[0]).(*ir.Call)
		a.expect(ok, diag.SemaNotCallable, n.Span, "expression statement must be a call")
		return ir.NewCallStmt(n.Span, call)
	case cst.KindStmtPass:
		return ir.NewPass(n.Span)
	case cst.KindStmtBreak:
		sc := a.currentScope()
		a.expect(sc != nil && sc.InLoop, diag.SemaIllegalBreak, n.Span, "break outside of a loop")
		return ir.NewBreak(n.Span)
	case cst.KindStmtReturn:
		return a.ret(n)
	case cst.KindStmtWhile:
		return a.while(n)
	case cst.KindStmtForRange:
		return a.forRange(n)
	case cst.KindStmtForIn:
		return a.forIn(n)
	case cst.KindStmtIf:
		return a.ifStmt(n)
	case cst.KindStmtTry:
		return a.try(n)
	case cst.KindStmtFnDecl:
		return a.fnDecl(n)
	default:
		a.expect(false, diag.UnknownCode, n.Span, "unexpected %s node in statement position", n.Kind)
		return nil
	}
}

// block analyzes the statements of a block node. Scope transitions are
// the caller's concern: the caller has already entered the scope the
// block's bindings belong to.
func (a *analyzer) block(n *cst.Node) []ir.Stmt {
	out := make([]ir.Stmt, 0, len(n.Children))
	for i := range n.Children {
		out = append(out, a.stmt(&n.Children[i]))
	}
	return out
}

// varDecl handles var and const declarations. The initializer is
// analyzed first, then the declared type; the initializer must be
// assignable to the declared type.
func (a *analyzer) varDecl(n *cst.Node, readOnly bool) ir.Stmt {
	ident, typeNode, initNode := &n.Children[0], &n.Children[1], &n.Children[2]

	init := a.expr(initNode)
	declared := a.typeOf(typeNode)

	a.expect(a.types.Assignable(declared, init.Type()), diag.SemaNotAssignable, initNode.Span,
		"cannot initialize %s with a value of type %s",
		a.types.Format(declared), a.types.Format(init.Type()))

	flags := symbols.SymbolFlags(0)
	if readOnly {
		flags |= symbols.SymbolFlagReadOnly
	}
	sym := a.declare(symbols.Symbol{
		Name:  a.table.Strings.Intern(ident.Text),
		Kind:  symbols.SymbolVar,
		Span:  ident.Span,
		Flags: flags,
		Type:  declared,
	}, ident.Span)
	return ir.NewVarDecl(n.Span, sym, init)
}

func (a *analyzer) assign(n *cst.Node) ir.Stmt {
	ident, valueNode := &n.Children[0], &n.Children[1]
	id, sym := a.resolve(ident.Text, ident.Span)
	a.expect(!sym.ReadOnly(), diag.SemaReadOnlyViolation, ident.Span,
		"cannot assign to read-only '%s'", ident.Text)

	value := a.expr(valueNode)
	a.expect(a.types.Assignable(sym.Type, value.Type()), diag.SemaNotAssignable, valueNode.Span,
		"cannot assign %s to '%s' of type %s",
		a.types.Format(value.Type()), ident.Text, a.types.Format(sym.Type))
	return ir.NewAssign(n.Span, id, value)
}

func (a *analyzer) ret(n *cst.Node) ir.Stmt {
	sc := a.currentScope()
	a.expect(sc != nil && sc.Fn.IsValid(), diag.SemaIllegalReturn, n.Span,
		"return outside of a function")

	fn := a.table.Syms.Get(sc.Fn)
	info, ok := a.types.FnInfo(fn.Type)
	a.expect(ok, diag.SemaIllegalReturn, n.Span, "enclosing function has no signature")

	if a.types.Kind(info.Result) == types.KindVoid {
		a.expect(len(n.Children) == 0, diag.SemaIllegalReturn, n.Span,
			"void function cannot return a value")
		return ir.NewReturn(n.Span, nil)
	}

	a.expect(len(n.Children) == 1, diag.SemaIllegalReturn, n.Span,
		"function returning %s requires a return value", a.types.Format(info.Result))
	value := a.expr(&n.Children[0])
	a.expect(a.types.Assignable(info.Result, value.Type()), diag.SemaNotAssignable, value.Span(),
		"cannot return %s from a function returning %s",
		a.types.Format(value.Type()), a.types.Format(info.Result))
	return ir.NewReturn(n.Span, value)
}

func (a *analyzer) while(n *cst.Node) ir.Stmt {
	condNode, bodyNode := &n.Children[0], &n.Children[1]
	cond := a.expr(condNode)
	a.expect(a.types.Kind(cond.Type()) == types.KindBool, diag.SemaNotBoolean, condNode.Span,
		"while condition must be bool, got %s", a.types.Format(cond.Type()))

	leave := a.enter(symbols.ScopeLoop, symbols.NoSymID, bodyNode.Span)
	defer leave()
	return ir.NewWhile(n.Span, cond, a.block(bodyNode))
}

func (a *analyzer) forRange(n *cst.Node) ir.Stmt {
	ident, fromNode, toNode, bodyNode := &n.Children[0], &n.Children[1], &n.Children[2], &n.Children[3]

	from := a.expr(fromNode)
	a.expect(a.types.Kind(from.Type()) == types.KindInt, diag.SemaNotInteger, fromNode.Span,
		"range bound must be int, got %s", a.types.Format(from.Type()))
	to := a.expr(toNode)
	a.expect(a.types.Kind(to.Type()) == types.KindInt, diag.SemaNotInteger, toNode.Span,
		"range bound must be int, got %s", a.types.Format(to.Type()))

	leave := a.enter(symbols.ScopeLoop, symbols.NoSymID, bodyNode.Span)
	defer leave()
	sym := a.declare(symbols.Symbol{
		Name:  a.table.Strings.Intern(ident.Text),
		Kind:  symbols.SymbolVar,
		Span:  ident.Span,
		Flags: symbols.SymbolFlagReadOnly,
		Type:  a.types.Builtins().Int,
	}, ident.Span)
	return ir.NewForRange(n.Span, sym, from, to, a.block(bodyNode))
}

// forIn binds the loop variable to the iterable's element type: arrays
// yield their element, strings yield string, dicts yield their key type.
func (a *analyzer) forIn(n *cst.Node) ir.Stmt {
	ident, iterNode, bodyNode := &n.Children[0], &n.Children[1], &n.Children[2]

	iter := a.expr(iterNode)
	tt, _ := a.types.Lookup(iter.Type())
	var elem types.TypeID
	switch tt.Kind {
	case types.KindArray:
		elem = tt.Elem
	case types.KindString:
		elem = a.types.Builtins().String
	case types.KindDict:
		elem = tt.Key
	default:
		a.expect(false, diag.SemaNotIterable, iterNode.Span,
			"cannot iterate over %s", a.types.Format(iter.Type()))
	}

	leave := a.enter(symbols.ScopeLoop, symbols.NoSymID, bodyNode.Span)
	defer leave()
	sym := a.declare(symbols.Symbol{
		Name:  a.table.Strings.Intern(ident.Text),
		Kind:  symbols.SymbolVar,
		Span:  ident.Span,
		Flags: symbols.SymbolFlagReadOnly,
		Type:  elem,
	}, ident.Span)
	return ir.NewForIn(n.Span, sym, iter, a.block(bodyNode))
}

// ifStmt analyzes a conditional. An else-if chain arrives as a nested if
// node in the alternate position and recurses through stmt.
func (a *analyzer) ifStmt(n *cst.Node) ir.Stmt {
	condNode, thenNode := &n.Children[0], &n.Children[1]
	cond := a.expr(condNode)
	a.expect(a.types.Kind(cond.Type()) == types.KindBool, diag.SemaNotBoolean, condNode.Span,
		"if condition must be bool, got %s", a.types.Format(cond.Type()))

	var then []ir.Stmt
	func() {
		leave := a.enter(symbols.ScopeBlock, symbols.NoSymID, thenNode.Span)
		defer leave()
		then = a.block(thenNode)
	}()

	var els []ir.Stmt
	if len(n.Children) > 2 {
		elseNode := &n.Children[2]
		leave := a.enter(symbols.ScopeBlock, symbols.NoSymID, elseNode.Span)
		defer leave()
		if elseNode.Kind == cst.KindStmtIf {
			els = []ir.Stmt{a.stmt(elseNode)}
		} else {
			els = a.block(elseNode)
		}
	}
	return ir.NewIf(n.Span, cond, then, els)
}

// try analyzes try/catch and try/timeout/catch. Every block gets its own
// child scope; catch parameters are local to the catch scope.
func (a *analyzer) try(n *cst.Node) ir.Stmt {
	bodyNode := &n.Children[0]
	var timeoutNode, catchNode *cst.Node
	if len(n.Children) == 3 {
		timeoutNode, catchNode = &n.Children[1], &n.Children[2]
	} else {
		catchNode = &n.Children[1]
	}

	var timeout ir.Expr
	if timeoutNode != nil {
		timeout = a.expr(timeoutNode)
	}

	var body []ir.Stmt
	func() {
		leave := a.enter(symbols.ScopeBlock, symbols.NoSymID, bodyNode.Span)
		defer leave()
		body = a.block(bodyNode)
	}()

	paramsNode, catchBody := &catchNode.Children[0], &catchNode.Children[1]
	leave := a.enter(symbols.ScopeBlock, symbols.NoSymID, catchNode.Span)
	defer leave()
	params := a.declareParams(paramsNode)
	return ir.NewTry(n.Span, body, timeout, params, a.block(catchBody))
}

// fnDecl implements declare-then-finalize: the function entity is bound
// in the enclosing scope before its body is analyzed (so the body can
// call it), and its signature is frozen as soon as the parameter and
// return types are known.
func (a *analyzer) fnDecl(n *cst.Node) ir.Stmt {
	ident, paramsNode, retNode, bodyNode := &n.Children[0], &n.Children[1], &n.Children[2], &n.Children[3]

	id := a.declare(symbols.Symbol{
		Name:  a.table.Strings.Intern(ident.Text),
		Kind:  symbols.SymbolFn,
		Span:  ident.Span,
		Flags: symbols.SymbolFlagReadOnly,
	}, ident.Span)

	paramTypes := make([]types.TypeID, 0, len(paramsNode.Children))
	for i := range paramsNode.Children {
		paramTypes = append(paramTypes, a.typeOf(&paramsNode.Children[i].Children[1]))
	}
	ret := a.typeOf(retNode)
	a.table.Syms.Get(id).Finalize(a.types.Fn(paramTypes, ret))

	leave := a.enter(symbols.ScopeFunction, id, bodyNode.Span)
	defer leave()
	params := a.declareParams(paramsNode)
	a.table.Syms.Get(id).Params = params
	return ir.NewFnDecl(n.Span, id, params, a.block(bodyNode))
}

// declareParams binds a parameter list into the current scope.
func (a *analyzer) declareParams(paramsNode *cst.Node) []symbols.SymID {
	params := make([]symbols.SymID, 0, len(paramsNode.Children))
	for i := range paramsNode.Children {
		p := &paramsNode.Children[i]
		ident, typeNode := &p.Children[0], &p.Children[1]
		params = append(params, a.declare(symbols.Symbol{
			Name: a.table.Strings.Intern(ident.Text),
			Kind: symbols.SymbolVar,
			Span: ident.Span,
			Type: a.typeOf(typeNode),
		}, ident.Span))
	}
	return params
}

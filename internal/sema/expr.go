package sema

import (
	"strconv"

	"golang.org/x/text/unicode/norm"

	"lumen/internal/cst"
	"lumen/internal/diag"
	"lumen/internal/ir"
	"lumen/internal/types"
)

// expr maps one expression production to a validated IR node carrying
// its final type.
func (a *analyzer) expr(n *cst.Node) ir.Expr {
	switch n.Kind {
	case cst.KindExprBinary:
		return a.binary(n)
	case cst.KindExprUnary:
		return a.unary(n)
	case cst.KindExprUnwrap:
		return a.unwrap(n)
	case cst.KindExprIndex:
		return a.index(n)
	case cst.KindExprCall:
		return a.call(n)
	case cst.KindExprIdent:
		id, sym := a.resolve(n.Text, n.Span)
		return ir.NewVarRef(sym.Type, n.Span, id)
	case cst.KindExprInt:
		v, err := strconv.ParseInt(n.Text, 10, 64)
		a.expect(err == nil, diag.SemaTypeMismatch, n.Span, "invalid integer literal %q", n.Text)
		return ir.NewIntLit(a.types.Builtins().Int, n.Span, v)
	case cst.KindExprFloat:
		v, err := strconv.ParseFloat(n.Text, 64)
		a.expect(err == nil, diag.SemaTypeMismatch, n.Span, "invalid float literal %q", n.Text)
		return ir.NewFloatLit(a.types.Builtins().Float, n.Span, v)
	case cst.KindExprString:
		return ir.NewStringLit(a.types.Builtins().String, n.Span, norm.NFC.String(n.Text))
	case cst.KindExprBool:
		return ir.NewBoolLit(a.types.Builtins().Bool, n.Span, n.Text == "true")
	case cst.KindExprArray:
		return a.arrayLit(n)
	case cst.KindExprDict:
		return a.dictLit(n)
	default:
		a.expect(false, diag.UnknownCode, n.Span, "unexpected %s node in expression position", n.Kind)
		return nil
	}
}

var binaryOps = map[string]ir.BinaryOp{
	"+":  ir.OpAdd,
	"-":  ir.OpSub,
	"*":  ir.OpMul,
	"/":  ir.OpDiv,
	"^":  ir.OpPow,
	"<":  ir.OpLt,
	"<=": ir.OpLe,
	">":  ir.OpGt,
	">=": ir.OpGe,
	"==": ir.OpEq,
	"!=": ir.OpNe,
	"&&": ir.OpAnd,
	"||": ir.OpOr,
}

func (a *analyzer) binary(n *cst.Node) ir.Expr {
	op, ok := binaryOps[n.Text]
	a.expect(ok, diag.UnknownCode, n.Span, "unknown binary operator %q", n.Text)

	lhs := a.expr(&n.Children[0])
	rhs := a.expr(&n.Children[1])
	lt, rt := lhs.Type(), rhs.Type()
	b := a.types.Builtins()

	var result types.TypeID
	switch op {
	case ir.OpAdd:
		// + also concatenates strings
		a.expect(a.types.IsNumeric(lt) || a.types.Kind(lt) == types.KindString,
			diag.SemaNotNumeric, lhs.Span(),
			"operator %q requires numeric or string operands, got %s", n.Text, a.types.Format(lt))
		a.expect(a.types.Equal(lt, rt), diag.SemaOperandTypeMismatch, n.Span,
			"operands of %q must match: %s vs %s", n.Text, a.types.Format(lt), a.types.Format(rt))
		result = lt
	case ir.OpSub, ir.OpMul, ir.OpDiv, ir.OpPow:
		a.expect(a.types.IsNumeric(lt), diag.SemaNotNumeric, lhs.Span(),
			"operator %q requires numeric operands, got %s", n.Text, a.types.Format(lt))
		a.expect(a.types.IsNumeric(rt), diag.SemaNotNumeric, rhs.Span(),
			"operator %q requires numeric operands, got %s", n.Text, a.types.Format(rt))
		a.expect(a.types.Equal(lt, rt), diag.SemaOperandTypeMismatch, n.Span,
			"operands of %q must match: %s vs %s", n.Text, a.types.Format(lt), a.types.Format(rt))
		result = lt
	case ir.OpLt, ir.OpLe, ir.OpGt, ir.OpGe:
		a.expect(a.types.IsComparable(lt), diag.SemaNotNumeric, lhs.Span(),
			"operator %q requires numeric or string operands, got %s", n.Text, a.types.Format(lt))
		a.expect(a.types.Equal(lt, rt), diag.SemaOperandTypeMismatch, n.Span,
			"operands of %q must match: %s vs %s", n.Text, a.types.Format(lt), a.types.Format(rt))
		result = b.Bool
	case ir.OpEq, ir.OpNe:
		a.expect(a.types.Equal(lt, rt), diag.SemaOperandTypeMismatch, n.Span,
			"operands of %q must match: %s vs %s", n.Text, a.types.Format(lt), a.types.Format(rt))
		result = b.Bool
	case ir.OpAnd, ir.OpOr:
		a.expect(a.types.Kind(lt) == types.KindBool, diag.SemaNotBoolean, lhs.Span(),
			"operator %q requires bool operands, got %s", n.Text, a.types.Format(lt))
		a.expect(a.types.Kind(rt) == types.KindBool, diag.SemaNotBoolean, rhs.Span(),
			"operator %q requires bool operands, got %s", n.Text, a.types.Format(rt))
		result = b.Bool
	}
	return ir.NewBinary(result, n.Span, op, lhs, rhs)
}

func (a *analyzer) unary(n *cst.Node) ir.Expr {
	operand := a.expr(&n.Children[0])
	t := operand.Type()
	switch n.Text {
	case "-":
		a.expect(a.types.IsNumeric(t), diag.SemaNotNumeric, operand.Span(),
			"unary '-' requires a numeric operand, got %s", a.types.Format(t))
		return ir.NewUnary(t, n.Span, ir.OpNeg, operand)
	case "!":
		a.expect(a.types.Kind(t) == types.KindBool, diag.SemaNotBoolean, operand.Span(),
			"unary '!' requires a bool operand, got %s", a.types.Format(t))
		return ir.NewUnary(a.types.Builtins().Bool, n.Span, ir.OpNot, operand)
	case "some":
		return ir.NewUnary(a.types.Optional(t), n.Span, ir.OpSome, operand)
	default:
		a.expect(false, diag.UnknownCode, n.Span, "unknown unary operator %q", n.Text)
		return nil
	}
}

// unwrap is the default-else operator: left must be optional, right must
// be assignable to its base, and the result keeps the optional type.
func (a *analyzer) unwrap(n *cst.Node) ir.Expr {
	optional := a.expr(&n.Children[0])
	def := a.expr(&n.Children[1])

	tt, _ := a.types.Lookup(optional.Type())
	a.expect(tt.Kind == types.KindOptional, diag.SemaNotOptional, optional.Span(),
		"left operand of '??' must be optional, got %s", a.types.Format(optional.Type()))
	a.expect(a.types.Assignable(tt.Elem, def.Type()), diag.SemaNotAssignable, def.Span(),
		"default value of type %s does not fit optional base %s",
		a.types.Format(def.Type()), a.types.Format(tt.Elem))
	return ir.NewUnwrapDefault(optional.Type(), n.Span, optional, def)
}

func (a *analyzer) index(n *cst.Node) ir.Expr {
	base := a.expr(&n.Children[0])
	idx := a.expr(&n.Children[1])

	tt, _ := a.types.Lookup(base.Type())
	a.expect(tt.Kind == types.KindArray, diag.SemaNotArray, base.Span(),
		"indexing requires an array, got %s", a.types.Format(base.Type()))
	a.expect(a.types.Kind(idx.Type()) == types.KindInt, diag.SemaNotInteger, idx.Span(),
		"array index must be int, got %s", a.types.Format(idx.Type()))
	return ir.NewIndex(tt.Elem, n.Span, base, idx)
}

// call validates callee, arity, and per-argument assignability in order.
// Any function-typed entity is callable: declared functions, but also
// variables and parameters holding function values.
func (a *analyzer) call(n *cst.Node) ir.Expr {
	callee := &n.Children[0]
	id, sym := a.resolve(callee.Text, callee.Span)

	info, callable := a.types.FnInfo(sym.Type)
	a.expect(callable, diag.SemaNotCallable, callee.Span,
		"'%s' is not callable", callee.Text)

	argNodes := n.Children[1:]
	a.expect(len(argNodes) == len(info.Params), diag.SemaArgumentCountMismatch, n.Span,
		"'%s' expects %d argument(s), %d passed", callee.Text, len(info.Params), len(argNodes))

	args := make([]ir.Expr, 0, len(argNodes))
	for i := range argNodes {
		arg := a.expr(&argNodes[i])
		a.expect(a.types.Assignable(info.Params[i], arg.Type()), diag.SemaNotAssignable, arg.Span(),
			"argument %d of '%s': cannot use %s as %s",
			i+1, callee.Text, a.types.Format(arg.Type()), a.types.Format(info.Params[i]))
		args = append(args, arg)
	}
	return ir.NewCall(info.Result, n.Span, id, args)
}

// arrayLit types an array literal from its first element; the empty
// literal gets the distinguished empty-array type and defers its
// element type to context.
func (a *analyzer) arrayLit(n *cst.Node) ir.Expr {
	if len(n.Children) == 0 {
		return ir.NewArrayLit(a.types.EmptyArray(), n.Span, nil)
	}

	elems := make([]ir.Expr, 0, len(n.Children))
	first := a.expr(&n.Children[0])
	elems = append(elems, first)
	for i := 1; i < len(n.Children); i++ {
		elem := a.expr(&n.Children[i])
		a.expect(a.types.Equal(first.Type(), elem.Type()), diag.SemaTypeMismatch, elem.Span(),
			"array element %d is %s, want %s",
			i+1, a.types.Format(elem.Type()), a.types.Format(first.Type()))
		elems = append(elems, elem)
	}
	return ir.NewArrayLit(a.types.Array(first.Type()), n.Span, elems)
}

// dictLit pairs key and value expressions per binding. The dict type
// comes from the first binding; no cross-binding uniformity is enforced
// at this layer.
func (a *analyzer) dictLit(n *cst.Node) ir.Expr {
	b := a.types.Builtins()
	if len(n.Children) == 0 {
		return ir.NewDictLit(a.types.Dict(b.Any, b.Any), n.Span, nil)
	}

	entries := make([]ir.DictEntry, 0, len(n.Children))
	for i := range n.Children {
		pair := &n.Children[i]
		entries = append(entries, ir.DictEntry{
			Key:   a.expr(&pair.Children[0]),
			Value: a.expr(&pair.Children[1]),
		})
	}
	t := a.types.Dict(entries[0].Key.Type(), entries[0].Value.Type())
	return ir.NewDictLit(t, n.Span, entries)
}

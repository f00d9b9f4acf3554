package sema

import (
	"lumen/internal/cst"
	"lumen/internal/diag"
	"lumen/internal/types"
)

// typeOf maps type syntax to the corresponding type descriptor.
// Primitive keywords resolve to the canonical singletons; composite
// syntax maps directly onto the composite constructors.
func (a *analyzer) typeOf(n *cst.Node) types.TypeID {
	b := a.types.Builtins()
	switch n.Kind {
	case cst.KindTypeName:
		switch n.Text {
		case "int":
			return b.Int
		case "float":
			return b.Float
		case "string":
			return b.String
		case "bool":
			return b.Bool
		case "void":
			return b.Void
		case "any":
			return b.Any
		}
		a.expect(false, diag.SemaTypeMismatch, n.Span, "unknown type name '%s'", n.Text)
		return types.NoTypeID
	case cst.KindTypeOptional:
		return a.types.Optional(a.typeOf(&n.Children[0]))
	case cst.KindTypeArray:
		return a.types.Array(a.typeOf(&n.Children[0]))
	case cst.KindTypeDict:
		return a.types.Dict(a.typeOf(&n.Children[0]), a.typeOf(&n.Children[1]))
	case cst.KindTypeFn:
		last := len(n.Children) - 1
		params := make([]types.TypeID, 0, last)
		for i := 0; i < last; i++ {
			params = append(params, a.typeOf(&n.Children[i]))
		}
		return a.types.Fn(params, a.typeOf(&n.Children[last]))
	default:
		a.expect(false, diag.SemaTypeMismatch, n.Span, "unexpected %s node in type position", n.Kind)
		return types.NoTypeID
	}
}

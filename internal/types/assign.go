package types

// Equal reports structural equivalence. Descriptors are interned, so two
// types are equivalent exactly when their IDs match.
func (in *Interner) Equal(a, b TypeID) bool {
	return a != NoTypeID && a == b
}

// Assignable reports whether a value of type src may substitute for a
// location of type dst. This is the single compatibility rule used at
// declarations, assignments, call arguments, and returns.
//
//   - anything is assignable to any;
//   - equivalent types are assignable;
//   - the empty array literal's type is assignable to every array type,
//     deferring the element type to context;
//   - function types are assignable with contravariant parameters and a
//     covariant result: the source may accept broader parameters and
//     return a narrower result.
func (in *Interner) Assignable(dst, src TypeID) bool {
	if dst == NoTypeID || src == NoTypeID {
		return false
	}
	dt, ok := in.Lookup(dst)
	if !ok {
		return false
	}
	if dt.Kind == KindAny {
		return true
	}
	if dst == src {
		return true
	}
	st, ok := in.Lookup(src)
	if !ok {
		return false
	}

	if dt.Kind == KindArray && st.Kind == KindArray {
		return st.Elem == NoTypeID
	}

	if dt.Kind == KindFn && st.Kind == KindFn {
		dstFn, okDst := in.FnInfo(dst)
		srcFn, okSrc := in.FnInfo(src)
		if !okDst || !okSrc {
			return false
		}
		if len(dstFn.Params) != len(srcFn.Params) {
			return false
		}
		for i := range dstFn.Params {
			if !in.Assignable(srcFn.Params[i], dstFn.Params[i]) {
				return false
			}
		}
		return in.Assignable(dstFn.Result, srcFn.Result)
	}

	return false
}

// IsNumeric reports whether id is int or float.
func (in *Interner) IsNumeric(id TypeID) bool {
	k := in.Kind(id)
	return k == KindInt || k == KindFloat
}

// IsComparable reports whether id is ordered by < <= > >=.
func (in *Interner) IsComparable(id TypeID) bool {
	return in.IsNumeric(id) || in.Kind(id) == KindString
}

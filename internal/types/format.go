package types

import "strings"

// Format renders a type for diagnostics: int, float, string, bool, void,
// any, T?, [T], [K: V], (P1, P2) -> R.
func (in *Interner) Format(id TypeID) string {
	tt, ok := in.Lookup(id)
	if !ok {
		return "<unknown>"
	}
	switch tt.Kind {
	case KindInt, KindFloat, KindString, KindBool, KindVoid, KindAny:
		return tt.Kind.String()
	case KindOptional:
		return in.Format(tt.Elem) + "?"
	case KindArray:
		if tt.Elem == NoTypeID {
			return "[]"
		}
		return "[" + in.Format(tt.Elem) + "]"
	case KindDict:
		return "[" + in.Format(tt.Key) + ": " + in.Format(tt.Elem) + "]"
	case KindFn:
		info, ok := in.FnInfo(id)
		if !ok {
			return "<fn>"
		}
		var b strings.Builder
		b.WriteByte('(')
		for i, p := range info.Params {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(in.Format(p))
		}
		b.WriteString(") -> ")
		b.WriteString(in.Format(info.Result))
		return b.String()
	default:
		return "<invalid>"
	}
}

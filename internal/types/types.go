package types

import "fmt"

// TypeID uniquely identifies a type inside the interner.
type TypeID uint32

// NoTypeID marks the absence of a type. A function entity carries NoTypeID
// between its declaration and the moment its signature is finalized.
const NoTypeID TypeID = 0

// Kind enumerates all supported kinds of types.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt
	KindFloat
	KindString
	KindBool
	KindVoid
	KindAny
	KindOptional
	KindArray
	KindDict
	KindFn
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindVoid:
		return "void"
	case KindAny:
		return "any"
	case KindOptional:
		return "optional"
	case KindArray:
		return "array"
	case KindDict:
		return "dict"
	case KindFn:
		return "fn"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Type is a compact descriptor for any supported type. Composite types
// reference their parts by TypeID; function signatures live in a side
// table addressed by Payload.
type Type struct {
	Kind    Kind
	Elem    TypeID // optional/array base, dict value
	Key     TypeID // dict key
	Payload uint32 // fn signature slot
}

// MakeOptional describes T?.
func MakeOptional(base TypeID) Type {
	return Type{Kind: KindOptional, Elem: base}
}

// MakeArray describes [T].
func MakeArray(elem TypeID) Type {
	return Type{Kind: KindArray, Elem: elem}
}

// MakeDict describes [K: V].
func MakeDict(key, value TypeID) Type {
	return Type{Kind: KindDict, Key: key, Elem: value}
}

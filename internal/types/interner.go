package types

import (
	"fmt"

	"fortio.org/safecast"
)

// Builtins stores TypeIDs for the canonical primitive singletons.
type Builtins struct {
	Invalid TypeID
	Int     TypeID
	Float   TypeID
	String  TypeID
	Bool    TypeID
	Void    TypeID
	Any     TypeID
}

// Interner provides stable TypeIDs by hashing structural descriptors.
// Interning canonicalizes structure: two composite types are equivalent
// exactly when they intern to the same ID.
type Interner struct {
	types    []Type
	index    map[typeKey]TypeID
	builtins Builtins
	fns      []FnInfo
}

// NewInterner constructs an interner seeded with the built-in primitives.
func NewInterner() *Interner {
	in := &Interner{
		index: make(map[typeKey]TypeID, 32),
	}
	in.builtins.Invalid = in.internRaw(Type{Kind: KindInvalid})
	in.builtins.Int = in.Intern(Type{Kind: KindInt})
	in.builtins.Float = in.Intern(Type{Kind: KindFloat})
	in.builtins.String = in.Intern(Type{Kind: KindString})
	in.builtins.Bool = in.Intern(Type{Kind: KindBool})
	in.builtins.Void = in.Intern(Type{Kind: KindVoid})
	in.builtins.Any = in.Intern(Type{Kind: KindAny})
	return in
}

// Builtins returns TypeIDs for primitive types.
func (in *Interner) Builtins() Builtins {
	return in.builtins
}

// Intern ensures the provided descriptor has a stable TypeID.
func (in *Interner) Intern(t Type) TypeID {
	if t.Kind == KindInvalid {
		return NoTypeID
	}
	key := typeKey(t)
	if id, ok := in.index[key]; ok {
		return id
	}
	return in.internRaw(t)
}

// internRaw adds the descriptor to the storage without consulting the map.
func (in *Interner) internRaw(t Type) TypeID {
	lenTypes, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("len(types) overflow: %w", err))
	}
	id := TypeID(lenTypes)
	in.types = append(in.types, t)
	in.index[typeKey(t)] = id
	return id
}

// Optional interns T? for the given base.
func (in *Interner) Optional(base TypeID) TypeID {
	return in.Intern(MakeOptional(base))
}

// Array interns [T] for the given element.
func (in *Interner) Array(elem TypeID) TypeID {
	return in.Intern(MakeArray(elem))
}

// EmptyArray interns the type of the empty array literal. Its element
// slot stays unset, so it is distinct from every written array type and
// defers the element to context through Assignable.
func (in *Interner) EmptyArray() TypeID {
	return in.Intern(Type{Kind: KindArray})
}

// Dict interns [K: V].
func (in *Interner) Dict(key, value TypeID) TypeID {
	return in.Intern(MakeDict(key, value))
}

// Lookup returns the descriptor for a TypeID.
func (in *Interner) Lookup(id TypeID) (Type, bool) {
	if id == NoTypeID || int(id) >= len(in.types) {
		return Type{}, false
	}
	return in.types[id], true
}

// MustLookup panics when id is invalid.
func (in *Interner) MustLookup(id TypeID) Type {
	tt, ok := in.Lookup(id)
	if !ok {
		panic("types: invalid TypeID")
	}
	return tt
}

// Kind returns the kind for id, KindInvalid for unknown IDs.
func (in *Interner) Kind(id TypeID) Kind {
	tt, ok := in.Lookup(id)
	if !ok {
		return KindInvalid
	}
	return tt.Kind
}

type typeKey struct {
	Kind    Kind
	Elem    TypeID
	Key     TypeID
	Payload uint32
}

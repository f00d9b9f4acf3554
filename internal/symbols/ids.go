package symbols

// ScopeID identifies a scope inside the scope arena.
type ScopeID uint32

// SymID identifies a symbol inside the symbol arena.
type SymID uint32

const (
	NoScopeID ScopeID = 0
	NoSymID   SymID   = 0
)

func (id ScopeID) IsValid() bool { return id != NoScopeID }

func (id SymID) IsValid() bool { return id != NoSymID }

package region

import (
	"sync"

	"github.com/modern-go/reflect2"
)

// Class tells whether storage for a type has to be constructed before use.
type Class uint8

const (
	// NeedsConstruction types are zeroed and initialized on allocation.
	NeedsConstruction Class = iota
	// Trivial types are handed out as raw buffer contents.
	Trivial
)

func (c Class) String() string {
	switch c {
	case Trivial:
		return "trivial"
	case NeedsConstruction:
		return "needs-construction"
	}
	return "unknown"
}

// Initializer is implemented by element types that establish invariants
// beyond their zero value, e.g. a record holding a nested view.
type Initializer interface {
	Init()
}

// classes maps the runtime type of *T to the Class of T.
var classes sync.Map

func init() {
	RegisterTrivial[bool]()
	RegisterTrivial[int8]()
	RegisterTrivial[uint8]()
	RegisterTrivial[int16]()
	RegisterTrivial[uint16]()
	RegisterTrivial[int32]()
	RegisterTrivial[uint32]()
	RegisterTrivial[int64]()
	RegisterTrivial[uint64]()
	RegisterTrivial[int]()
	RegisterTrivial[uint]()
	RegisterTrivial[float32]()
	RegisterTrivial[float64]()
}

// RegisterTrivial marks T as trivial: Alloc will skip construction for it.
// Types are matched by identity, so a named type such as
//
//	type UserID int32
//
// needs its own registration.
func RegisterTrivial[T any]() {
	classes.Store(typeKey[T](), Trivial)
}

// Classify returns the Class of T. Unregistered types need construction.
func Classify[T any]() Class {
	if c, ok := classes.Load(typeKey[T]()); ok {
		return c.(Class)
	}
	return NeedsConstruction
}

// IsTrivial reports whether Alloc skips construction for T.
func IsTrivial[T any]() bool {
	return Classify[T]() == Trivial
}

func typeKey[T any]() uintptr {
	return reflect2.RTypeOf((*T)(nil))
}

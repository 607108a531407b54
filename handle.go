package cown

import (
	"unsafe"
	"weak"
)

// cownID is the stable, hashable identity of a cown: the address of its
// backing resourceCell, type-erased via unsafe.Pointer so that cowns of
// different payload types can share one scheduler-side set. It is equal
// across every Cown handle cloned from the same origin, and stable for the
// cell's lifetime, per spec.
type cownID struct {
	ptr uintptr
}

// Cown is a shared-ownership handle to a resourceCell[T]. Duplicating a
// handle (via Clone) produces another handle to the same cell, carrying the
// same identity - it does not grant the duplicate any concurrent access; the
// scheduler still admits at most one behavior naming this cown at a time.
//
// The zero value of Cown is not usable; obtain one via Create or NewCown.
type Cown[T any] struct {
	rt   *Runtime
	cell *resourceCell[T]
	id   cownID
}

// Create registers a new cown, owning v, against the default process-wide
// Runtime. See NewCown to create one against an explicit, independently
// drainable Runtime.
func Create[T any](v T) *Cown[T] {
	return NewCown(defaultRuntime(), v)
}

// NewCown registers a new cown, owning v, against rt.
func NewCown[T any](rt *Runtime, v T) *Cown[T] {
	cell := newResourceCell(v)
	id := cownID{ptr: uintptr(unsafe.Pointer(cell))}

	c := &Cown[T]{rt: rt, cell: cell, id: id}

	// weak.Make, rather than a strong reference, is what lets rt.idle's
	// entry for id become collectible once every Cown handle naming it
	// (including c, below) is unreachable - see signal's scavenge pass.
	alive := weak.Make(cell)
	rt.register(id, func() bool { return alive.Value() != nil })

	return c
}

// Clone returns another handle to the same underlying cown. The clone
// carries the same identity as the original, and the two are
// interchangeable for the purpose of naming a required cown in a behavior -
// submitting a behavior that (directly or via clones) names the same
// underlying cown twice is rejected as an aliasing submission.
func (c *Cown[T]) Clone() *Cown[T] {
	return &Cown[T]{rt: c.rt, cell: c.cell, id: c.id}
}

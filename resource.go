package cown

// resourceCell owns exactly one T, for the lifetime of the cell. It offers a
// single primitive, get, which yields a mutable alias to the value.
//
// resourceCell does not enforce exclusivity itself - that obligation rests
// entirely on the caller, which must hold the scheduler's exclusivity grant
// for this cell's id (i.e. be running inside the body of a behavior whose
// required set names it) before calling get. This is the module's one
// unsafe-adjacent trusted boundary: nothing about the Go type system stops a
// second goroutine from calling get concurrently, and nothing needs to,
// because the admission algorithm in scheduler.go is the sole synchronizer,
// and is the entire trusted-compute-base for the invariant that at most one
// behavior ever holds a given cell's alias at a time.
type resourceCell[T any] struct {
	v T
}

func newResourceCell[T any](v T) *resourceCell[T] {
	return &resourceCell[T]{v: v}
}

// get returns a mutable alias of the owned value. The returned pointer must
// not be retained past the return of the behavior body that was granted
// exclusive access to this cell.
func (c *resourceCell[T]) get() *T {
	return &c.v
}

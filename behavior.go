package cown

import "fmt"

// behavior pairs a required set of cown identities with the erased thunk
// that runs once every one of them is idle. Construction validates that
// required names no identity twice - admitting such a behavior would
// require granting two exclusive aliases to the same cell at once, which
// would violate the module's core invariant.
type behavior struct {
	required []cownID
	body     func()
	// seq is assigned by Runtime.submit, in submission order; used only for
	// diagnostics (structured log fields), never for dispatch decisions.
	seq uint64
}

// newBehavior constructs a behavior, panicking with an AliasingError if
// required contains a duplicate identity. The check happens here, at
// construction, strictly before the behavior is ever enqueued - per spec,
// aliasing is detected at submission time, not at dispatch or run time.
func newBehavior(required []cownID, body func()) *behavior {
	if len(required) > 1 {
		seen := make(map[cownID]struct{}, len(required))
		for _, id := range required {
			if _, ok := seen[id]; ok {
				panic(&AliasingError{Count: len(required)})
			}
			seen[id] = struct{}{}
		}
	}
	return &behavior{required: required, body: body}
}

// requiredSubsetOf reports whether every identity in b.required is present
// (and, per the dangling-cown policy, still alive) in idle.
func (b *behavior) requiredSubsetOf(idle map[cownID]func() bool) bool {
	for _, id := range b.required {
		alive, ok := idle[id]
		if !ok || !alive() {
			return false
		}
	}
	return true
}

func (id cownID) String() string {
	return fmt.Sprintf("cown(%#x)", id.ptr)
}

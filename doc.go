// Package cown implements the "cown" (concurrent owner) and behavior
// concurrency model: mutable resources are wrapped in a Cown, and touched
// only by submitting a behavior - a function paired with the set of cowns
// it requires. The runtime dispatches a behavior only once every cown it
// named is idle, guarantees no two behaviors with overlapping requirements
// ever run concurrently, and never blocks a calling goroutine waiting for a
// cown to become available.
//
// There is no Lock, no Wait, no Signal in the public surface. The only
// blocking operation is Drain, used by a host to wait for quiescence before
// exit.
//
//	c := cown.Create(1)
//	cown.When1(c, func(v *int) { *v++ })
//	cown.When1(c, func(v *int) { fmt.Println(*v) })
//	cown.Drain(context.Background())
//
// See also [github.com/joeycumines/go-microbatch], for a higher-level,
// batching-oriented concurrency primitive, and
// [github.com/joeycumines/go-catrate], for a comparable single-package,
// mutex-guarded design this module's internals are modeled on.
package cown

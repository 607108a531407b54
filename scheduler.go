package cown

import (
	"context"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

// Runtime holds the scheduler state shared by every cown and behavior
// registered against it: the idle set, the pending queue, and the bookkeeping
// needed to drain. Most programs never construct one directly - Create and
// When0 use the process-wide default returned by defaultRuntime, and
// When1..When12 use the Runtime their first cown was created against.
//
// A Runtime's zero value is not usable; obtain one via NewRuntime.
type Runtime struct {
	cfg runtimeConfig

	mu       sync.Mutex
	poisoned atomic.Bool

	// idle holds, for every cown currently available to be claimed, its
	// liveness probe. The admission algorithm consults presence in this map
	// and the probe's result; absence means either dispatched-and-held by
	// some in-flight behavior, or collected and scavenged by signal. A
	// collected cown's entry stays here until the next signal removes it.
	idle map[cownID]func() bool

	// liveness retains every registered cown's probe for the lifetime of the
	// Runtime, independent of whether the cown is currently idle or held -
	// release needs it to restore an entry to idle without the caller having
	// to thread the probe back through a behavior's required list.
	liveness map[cownID]func() bool

	pending []*behavior

	// workers holds one channel per in-flight behavior, in dispatch order;
	// Drain joins them head-first. A worker sends exactly one value (nil on
	// clean completion, a non-nil *PanicError otherwise) then closes it.
	workers []chan *PanicError

	seq uint64
}

// NewRuntime constructs an independent Runtime. Independent Runtimes never
// share cowns, and draining one has no effect on any other - see
// defaultRuntime for the process-wide singleton most programs use instead.
func NewRuntime(opts ...RuntimeOption) *Runtime {
	return &Runtime{
		cfg:      newRuntimeConfig(opts),
		idle:     make(map[cownID]func() bool),
		liveness: make(map[cownID]func() bool),
	}
}

var defaultRuntimeOnce = sync.OnceValue(func() *Runtime {
	return NewRuntime()
})

// defaultRuntime returns the process-wide Runtime used by Create and When0.
// It is initialized lazily, on first use.
func defaultRuntime() *Runtime {
	return defaultRuntimeOnce()
}

// locked runs fn with rt.mu held, after checking - and, on a panic escaping
// fn, setting - the poison flag. Every mutation of idle, liveness and pending,
// and every append to workers, happens inside a locked call (Drain takes
// rt.mu directly to pop joined workers); nothing reachable from fn ever
// invokes user-supplied code (a behavior body), so in normal operation fn
// never panics and the poison flag is never set.
func (rt *Runtime) locked(fn func()) {
	if rt.poisoned.Load() {
		panic(&SchedulerLockPoisonedError{})
	}
	rt.mu.Lock()
	defer rt.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			rt.poisoned.Store(true)
			panic(&SchedulerLockPoisonedError{Cause: r})
		}
	}()
	fn()
}

// register adds a newly created cown to the idle set. It never calls signal:
// a cown nobody has submitted a behavior against yet cannot unblock any
// pending behavior, since a behavior can only name cowns whose handles
// already exist, and so were registered before it was submitted.
func (rt *Runtime) register(id cownID, alive func() bool) {
	rt.locked(func() {
		rt.liveness[id] = alive
		rt.idle[id] = alive
	})
}

// submit enqueues b and runs one admission pass. b.required must already be
// duplicate-free; newBehavior enforces that at construction.
func (rt *Runtime) submit(b *behavior) {
	rt.locked(func() {
		rt.seq++
		b.seq = rt.seq
		rt.pending = append(rt.pending, b)
	})
	rt.signal()
}

// release returns ids to the idle set and runs one admission pass. It is
// called exactly once per dispatched behavior, by that behavior's worker,
// regardless of whether the behavior's body panicked.
func (rt *Runtime) release(ids []cownID, seq uint64) {
	rt.locked(func() {
		for _, id := range ids {
			if alive, ok := rt.liveness[id]; ok {
				rt.idle[id] = alive
			}
		}
	})
	rt.cfg.sink.release(ids, seq)
	rt.signal()
}

// signal runs a single admission pass: scavenge any idle entries whose cown
// has become unreachable, then scan pending head-to-tail for the first
// behavior whose entire required set is idle, dispatch it, and return. It
// does not loop - a behavior left waiting this pass will be reconsidered on
// the next signal, which every submit and release (and nothing else)
// triggers.
func (rt *Runtime) signal() {
	rt.locked(func() {
		for id, alive := range rt.idle {
			if !alive() {
				delete(rt.idle, id)
				delete(rt.liveness, id)
			}
		}

		for i, b := range rt.pending {
			if !b.requiredSubsetOf(rt.idle) {
				continue
			}

			rt.pending = append(rt.pending[:i:i], rt.pending[i+1:]...)
			for _, id := range b.required {
				delete(rt.idle, id)
			}

			done := make(chan *PanicError, 1)
			rt.workers = append(rt.workers, done)
			rt.cfg.sink.dispatch(b.required, b.seq)
			rt.cfg.spawn(func() { rt.runWorker(b, done) })
			return
		}
	})
}

// runWorker runs a dispatched behavior's body, guaranteeing release of its
// cowns - and reporting to done - whether or not the body panics.
func (rt *Runtime) runWorker(b *behavior, done chan<- *PanicError) {
	var caught *PanicError
	defer func() {
		if caught != nil {
			rt.cfg.sink.workerPanic(b.required, b.seq, caught)
		}
		rt.release(b.required, b.seq)

		done <- caught
		close(done)
	}()
	defer func() {
		if r := recover(); r != nil {
			caught = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()
	b.body()
}

// Drain blocks until every behavior submitted so far - and every behavior
// those transitively submit before finishing - has completed. It is the only
// blocking call in the package's surface, and is meant to be called once, by
// the host program, when it is ready to exit.
//
// If ctx is cancelled before drain completes, Drain returns ctx.Err(); the
// Runtime's in-flight and pending work is unaffected; a later Drain call
// picks up where this one left off. If any behavior panicked since the last
// successful Drain, Drain instead re-raises the first such panic, wrapped in
// a *PanicError, once every worker has been joined (or, if ctx is cancelled
// after that panic's worker was joined, in place of returning ctx.Err()) -
// failures here are process-fatal aborts, not a return-value channel, per
// the aliasing and lock-poisoning errors above.
func (rt *Runtime) Drain(ctx context.Context) error {
	var firstPanic *PanicError

	for {
		rt.mu.Lock()
		if len(rt.workers) == 0 {
			rt.mu.Unlock()
			break
		}
		done := rt.workers[0]
		remaining := len(rt.workers) - 1
		rt.mu.Unlock()

		rt.cfg.sink.drainProgress(remaining)

		select {
		case <-ctx.Done():
			if firstPanic != nil {
				panic(firstPanic)
			}
			return ctx.Err()
		case pe := <-done:
			rt.mu.Lock()
			rt.workers = rt.workers[1:]
			rt.mu.Unlock()
			if pe != nil && firstPanic == nil {
				firstPanic = pe
			}
		}
	}

	if firstPanic != nil {
		panic(firstPanic)
	}
	return nil
}

// Drain drains the process-wide default Runtime. See Runtime.Drain.
func Drain(ctx context.Context) error {
	return defaultRuntime().Drain(ctx)
}

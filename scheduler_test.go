package cown

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuntime_submitAndDrain(t *testing.T) {
	defer checkNumGoroutines(time.Second * 3)(t)

	rt := NewRuntime()
	c := NewCown(rt, 0)

	Submit1(rt, c, func(v *int) { *v = 7 })

	require.NoError(t, rt.Drain(context.Background()))
	Submit1(rt, c, func(v *int) { assert.Equal(t, 7, *v) })
	require.NoError(t, rt.Drain(context.Background()))
}

func TestRuntime_overlappingBehaviorsNeverConcurrent(t *testing.T) {
	defer checkNumGoroutines(time.Second * 3)(t)

	rt := NewRuntime()
	c := NewCown(rt, 0)

	var inFlight atomic.Int32
	var sawOverlap atomic.Bool
	body := func(v *int) {
		if inFlight.Add(1) > 1 {
			sawOverlap.Store(true)
		}
		defer inFlight.Add(-1)
		time.Sleep(time.Millisecond)
		*v++
	}

	const n = 50
	for range n {
		Submit1(rt, c, body)
	}

	require.NoError(t, rt.Drain(context.Background()))
	assert.False(t, sawOverlap.Load())

	var final int
	Submit1(rt, c, func(v *int) { final = *v })
	require.NoError(t, rt.Drain(context.Background()))
	assert.Equal(t, n, final)
}

func TestRuntime_disjointBehaviorsRunConcurrently(t *testing.T) {
	defer checkNumGoroutines(time.Second * 3)(t)

	rt := NewRuntime()
	a := NewCown(rt, 0)
	b := NewCown(rt, 0)

	started := make(chan struct{}, 2)
	release := make(chan struct{})

	hold := func(*int) {
		started <- struct{}{}
		<-release
	}
	Submit1(rt, a, hold)
	Submit1(rt, b, hold)

	<-started
	<-started // both dispatched without waiting on one another

	close(release)
	require.NoError(t, rt.Drain(context.Background()))
}

func TestRuntime_laterUnblockedBehaviorSkipsAheadOfBlockedOne(t *testing.T) {
	defer checkNumGoroutines(time.Second * 3)(t)

	rt := NewRuntime()
	held := NewCown(rt, 0)

	block := make(chan struct{})
	Submit1(rt, held, func(*int) { <-block })

	// B1 needs `held`, currently dispatched and unavailable.
	var b1Ran atomic.Bool
	Submit1(rt, held, func(*int) { b1Ran.Store(true) })

	// B2 needs nothing, and must not wait behind B1.
	b2Done := make(chan struct{})
	Submit0(rt, func() { close(b2Done) })

	select {
	case <-b2Done:
	case <-time.After(time.Second):
		t.Fatal("zero-requirement behavior should not wait behind a blocked one ahead of it")
	}

	assert.False(t, b1Ran.Load())
	close(block)
	require.NoError(t, rt.Drain(context.Background()))
	assert.True(t, b1Ran.Load())
}

func TestRuntime_Drain_propagatesWorkerPanic(t *testing.T) {
	defer checkNumGoroutines(time.Second * 3)(t)

	rt := NewRuntime()
	Submit0(rt, func() { panic("boom") })

	defer func() {
		r := recover()
		require.NotNil(t, r)
		pe, ok := r.(*PanicError)
		require.True(t, ok, "expected *PanicError, got %T", r)
		assert.Equal(t, "boom", pe.Value)
		assert.Contains(t, pe.Error(), "boom")
	}()
	_ = rt.Drain(context.Background())
	t.Fatal("Drain should have panicked")
}

func TestRuntime_Drain_ctxCancel(t *testing.T) {
	rt := NewRuntime()
	release := make(chan struct{})
	Submit0(rt, func() { <-release })
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := rt.Drain(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRuntime_panicDoesNotLeakTheCown(t *testing.T) {
	defer checkNumGoroutines(time.Second * 3)(t)

	rt := NewRuntime()
	c := NewCown(rt, 0)

	Submit1(rt, c, func(*int) { panic("first") })

	var ran atomic.Bool
	Submit1(rt, c, func(v *int) { ran.Store(true) })

	func() {
		defer func() { recover() }()
		_ = rt.Drain(context.Background())
	}()
	assert.True(t, ran.Load(), "cown must be released even though the behavior holding it panicked")
}

func TestDefaultRuntime_isProcessWideSingleton(t *testing.T) {
	assert.Same(t, defaultRuntime(), defaultRuntime())
}

func TestRuntime_workerSpawner_observesEveryDispatchAndOrder(t *testing.T) {
	defer checkNumGoroutines(time.Second * 3)(t)

	var mu sync.Mutex
	var spawnOrder []int
	spawn := func(f func()) {
		// spawn must itself be asynchronous - see withWorkerSpawner's doc
		// comment - since it is called while the Runtime's lock is held.
		go f()
	}

	rt := NewRuntime(withWorkerSpawner(func(f func()) { spawn(f) }))
	c := NewCown(rt, 0)

	const n = 5
	var ran sync.WaitGroup
	ran.Add(n)
	for i := range n {
		i := i
		Submit1(rt, c, func(*int) {
			mu.Lock()
			spawnOrder = append(spawnOrder, i)
			mu.Unlock()
			ran.Done()
		})
	}

	require.NoError(t, rt.Drain(context.Background()))
	ran.Wait()

	// every behavior named the same (single) cown, so FIFO admission means
	// the behaviors, each started through the custom spawner, ran in
	// submission order.
	require.Len(t, spawnOrder, n)
	for i, got := range spawnOrder {
		assert.Equal(t, i, got)
	}
}

package cown

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScenario_diningPhilosophers is spec scenario S4: five forks, a table
// with five seats, five philosophers each eating ten meals (incrementing
// their two adjacent forks) before giving up their seat. The last
// philosopher to leave totals the forks. Every fork must end at exactly 20:
// two adjacent philosophers, ten meals each.
func TestScenario_diningPhilosophers(t *testing.T) {
	const n = 5
	const meals = 10

	rt := NewRuntime()
	forks := make([]*Cown[int], n)
	for i := range forks {
		forks[i] = NewCown(rt, 0)
	}
	seats := NewCown(rt, n)

	var totals [n]int
	var totalsReady sync.WaitGroup
	totalsReady.Add(1)

	var philosopher func(i, hunger int)
	philosopher = func(i, hunger int) {
		left, right := forks[i], forks[(i+1)%n]
		Submit2(rt, left, right, func(a, b *int) {
			*a++
			*b++
			hunger--
			if hunger == 0 {
				Submit1(rt, seats, func(remaining *int) {
					*remaining--
					if *remaining == 0 {
						Submit5(rt, forks[0], forks[1], forks[2], forks[3], forks[4],
							func(f0, f1, f2, f3, f4 *int) {
								totals = [n]int{*f0, *f1, *f2, *f3, *f4}
								totalsReady.Done()
							})
					}
				})
			} else {
				philosopher(i, hunger)
			}
		})
	}

	for i := 0; i < n; i++ {
		philosopher(i, meals)
	}

	require.NoError(t, rt.Drain(context.Background()))
	totalsReady.Wait()

	for i, total := range totals {
		assert.Equalf(t, 2*meals, total, "fork %d", i)
	}
}

// TestScenario_fanOutFanIn is spec scenario S5: N independent cowns are each
// set to their own index, then one behavior requiring all of them sums
// them. The sum must equal N(N-1)/2.
func TestScenario_fanOutFanIn(t *testing.T) {
	const n = 8

	rt := NewRuntime()
	cowns := make([]*Cown[int], n)
	for i := range cowns {
		cowns[i] = NewCown(rt, 0)
	}
	for i, c := range cowns {
		i := i
		Submit1(rt, c, func(v *int) { *v = i })
	}

	var sum int
	Submit8(rt, cowns[0], cowns[1], cowns[2], cowns[3], cowns[4], cowns[5], cowns[6], cowns[7],
		func(v0, v1, v2, v3, v4, v5, v6, v7 *int) {
			sum = *v0 + *v1 + *v2 + *v3 + *v4 + *v5 + *v6 + *v7
		})

	require.NoError(t, rt.Drain(context.Background()))
	assert.Equal(t, n*(n-1)/2, sum)
}

// TestScenario_submissionFromWithinABehavior is spec scenario S6: a
// behavior B submits B', naming the same required cown, from inside its own
// body. B' must run after B releases, and B's worker must not block
// submitting it.
func TestScenario_submissionFromWithinABehavior(t *testing.T) {
	rt := NewRuntime()
	c := NewCown(rt, 0)

	var bRan, bPrimeRan atomic.Bool
	Submit1(rt, c, func(v *int) {
		bRan.Store(true)
		*v = 1
		Submit1(rt, c, func(v *int) {
			require.True(t, bRan.Load())
			bPrimeRan.Store(true)
			*v = 2
		})
	})

	require.NoError(t, rt.Drain(context.Background()))
	assert.True(t, bRan.Load())
	assert.True(t, bPrimeRan.Load())

	var final int
	Submit1(rt, c, func(v *int) { final = *v })
	require.NoError(t, rt.Drain(context.Background()))
	assert.Equal(t, 2, final)
}

// Command diners runs the dining-philosophers scenario against go-cown:
// five forks, a table with five seats, and five philosophers who each eat
// ten meals before giving up their seat. It is a client of the package's
// public surface, not part of the package itself.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joeycumines/go-cown"
	"github.com/joeycumines/izerolog"
	"github.com/joeycumines/logiface"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	numPhilosophers = 5
	mealsPerSeat    = 10
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "diners:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	logger := izerolog.L.New(
		izerolog.L.WithZerolog(zerolog.New(os.Stderr).With().Timestamp().Logger()),
		izerolog.L.WithLevel(logiface.LevelInformational),
	)
	rt := cown.NewRuntime(cown.WithLogger(logger))

	forks := make([]*cown.Cown[int], numPhilosophers)
	for i := range forks {
		forks[i] = cown.NewCown(rt, 0)
	}
	seats := cown.NewCown(rt, numPhilosophers)

	g, _ := errgroup.WithContext(ctx)
	for i := 0; i < numPhilosophers; i++ {
		i := i
		g.Go(func() error {
			philosopher(rt, forks, seats, i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return rt.Drain(ctx)
}

// philosopher submits its meals and, once full, its seat-release - all
// asynchronously, via Submit2 and Submit1. It never blocks waiting on a
// cown itself; only the final Drain in run does that.
func philosopher(rt *cown.Runtime, forks []*cown.Cown[int], seats *cown.Cown[int], i int) {
	left, right := forks[i], forks[(i+1)%numPhilosophers]
	hunger := mealsPerSeat

	var eat func(a, b *int)
	eat = func(a, b *int) {
		*a++
		*b++
		hunger--
		if hunger == 0 {
			cown.Submit1(rt, seats, leaveTable(rt, forks))
		} else {
			cown.Submit2(rt, left, right, eat)
		}
	}
	cown.Submit2(rt, left, right, eat)
}

// leaveTable decrements the remaining seat count; the philosopher who
// brings it to zero submits the behavior that prints every fork's tally.
func leaveTable(rt *cown.Runtime, forks []*cown.Cown[int]) func(*int) {
	return func(remaining *int) {
		*remaining--
		if *remaining == 0 {
			cown.Submit5(rt, forks[0], forks[1], forks[2], forks[3], forks[4], printForks)
		}
	}
}

func printForks(f0, f1, f2, f3, f4 *int) {
	for i, f := range []*int{f0, f1, f2, f3, f4} {
		fmt.Printf("fork %d: %d\n", i, *f)
	}
}

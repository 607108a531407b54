package cown

import (
	"runtime"
	"testing"
	"time"
)

// checkNumGoroutines returns a deferrable check that the goroutine count has
// returned to (at most) its value at call time, within d - grounded on the
// leak-detection idiom used throughout this package's teacher, though this
// package has no access to that helper's original definition and so
// reimplements it.
func checkNumGoroutines(d time.Duration) func(t *testing.T) {
	before := runtime.NumGoroutine()
	return func(t *testing.T) {
		t.Helper()
		deadline := time.Now().Add(d)
		for {
			if after := runtime.NumGoroutine(); after <= before {
				return
			}
			if time.Now().After(deadline) {
				t.Errorf("goroutine leak: had %d, now have %d", before, runtime.NumGoroutine())
				return
			}
			time.Sleep(time.Millisecond * 10)
		}
	}
}

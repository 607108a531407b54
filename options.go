package cown

// RuntimeOption configures a Runtime constructed via NewRuntime. The zero
// value of every option's corresponding field is a safe, fully-functional
// default - mirroring microbatch.BatcherConfig's "nil config is fine"
// contract.
type RuntimeOption func(*runtimeConfig)

type runtimeConfig struct {
	sink eventSink
	// spawn starts the goroutine that runs a dispatched behavior's body. It
	// is a test seam only (akin to catrate's timeNow/timeNewTicker
	// var-function hooks), letting tests observe or serialize dispatch
	// without changing scheduler.go's production code path.
	spawn func(func())
}

func newRuntimeConfig(opts []RuntimeOption) runtimeConfig {
	c := runtimeConfig{
		sink:  noopSink{},
		spawn: func(f func()) { go f() },
	}
	for _, o := range opts {
		o(&c)
	}
	return c
}

// withWorkerSpawner overrides how the Runtime starts the goroutine for a
// dispatched behavior. Unexported: it exists for tests that need to observe
// every worker goroutine's lifecycle (e.g. to assert dispatch order or hunt
// for leaks), not as public API surface.
//
// signal calls spawn while rt.mu is held (scheduler.go), so spawn must
// itself start the behavior asynchronously - a spawner that runs f
// synchronously deadlocks the first time f touches the Runtime again (e.g.
// via release, which every worker does on completion).
func withWorkerSpawner(spawn func(func())) RuntimeOption {
	return func(c *runtimeConfig) {
		if spawn != nil {
			c.spawn = spawn
		}
	}
}

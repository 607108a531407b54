package cown

import (
	"fmt"
	"strings"

	"github.com/joeycumines/logiface"
)

// eventSink receives the scheduler's structured events. It exists so that
// Runtime, a concrete (non-generic) type, can hold a reference to a
// logiface.Logger[E] for an arbitrary backend event type E without itself
// becoming generic - the same shape logiface-zerolog and its sibling
// backend adapters use to bridge a generic Logger into a concrete API.
type eventSink interface {
	dispatch(ids []cownID, seq uint64)
	release(ids []cownID, seq uint64)
	drainProgress(remaining int)
	workerPanic(ids []cownID, seq uint64, err *PanicError)
}

// noopSink is the default eventSink, used when no logger is configured. It
// mirrors logiface's own documented nil-safe behavior: a Runtime that never
// calls WithLogger pays no logging overhead beyond this interface dispatch.
type noopSink struct{}

func (noopSink) dispatch(ids []cownID, seq uint64)                    {}
func (noopSink) release(ids []cownID, seq uint64)                     {}
func (noopSink) drainProgress(remaining int)                          {}
func (noopSink) workerPanic(ids []cownID, seq uint64, err *PanicError) {}

// logifaceSink adapts a *logiface.Logger[E], for an arbitrary backend event
// type E, into an eventSink.
type logifaceSink[E logiface.Event] struct {
	l *logiface.Logger[E]
}

func (s *logifaceSink[E]) dispatch(ids []cownID, seq uint64) {
	s.l.Debug().
		Field(`seq`, seq).
		Field(`cowns`, idsString(ids)).
		Log(`behavior dispatched`)
}

func (s *logifaceSink[E]) release(ids []cownID, seq uint64) {
	s.l.Debug().
		Field(`seq`, seq).
		Field(`cowns`, idsString(ids)).
		Log(`behavior released`)
}

func (s *logifaceSink[E]) drainProgress(remaining int) {
	s.l.Debug().
		Field(`remaining`, remaining).
		Log(`drain progress`)
}

func (s *logifaceSink[E]) workerPanic(ids []cownID, seq uint64, err *PanicError) {
	s.l.Err().
		Field(`seq`, seq).
		Field(`cowns`, idsString(ids)).
		Err(err).
		Log(`behavior panicked`)
}

func idsString(ids []cownID) string {
	var b strings.Builder
	for i, id := range ids {
		if i != 0 {
			b.WriteByte(',')
		}
		b.WriteString(id.String())
	}
	return b.String()
}

// WithLogger configures the Runtime to emit structured events - dispatch,
// release, drain progress, and worker panics - via l. The backend event
// type E is free to vary per call site (e.g. *izerolog.Event), per
// logiface's generic design; see also github.com/joeycumines/izerolog for a
// ready-made github.com/rs/zerolog backed implementation.
func WithLogger[E logiface.Event](l *logiface.Logger[E]) RuntimeOption {
	return func(c *runtimeConfig) {
		if l == nil {
			c.sink = noopSink{}
			return
		}
		c.sink = &logifaceSink[E]{l: l}
	}
}

var _ fmt.Stringer = cownID{}

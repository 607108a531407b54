package cown

// This file is the variadic-arity façade over Runtime.submit: one SubmitN
// per arity, for N from 0 to 12, plus a WhenN convenience wrapper. When0 runs
// against the process-wide default Runtime; When1..When12 run against the
// Runtime their first cown was created against. Go has no variadic generics, so
// - short of code generation, which nothing in this shape of API uses
// elsewhere in the ecosystem either - each arity is spelled out by hand, the
// same way the system this module implements enumerates its tuple sizes.
//
// Every SubmitN does the same three things: collect the N cowns' identities,
// wrap fn so it runs against their cells' current values, and hand the
// result to rt.submit. The wrapped fn always runs with exclusive access to
// every T*'s value - no two behaviors sharing a required cown ever run it
// concurrently - which is what lets it take plain *T rather than anything
// synchronized.

// Submit0 submits a behavior that requires no cowns. It becomes eligible for
// dispatch immediately.
func Submit0(rt *Runtime, fn func()) {
	rt.submit(newBehavior(nil, fn))
}

// When0 submits fn against the default Runtime. See Submit0.
func When0(fn func()) {
	Submit0(defaultRuntime(), fn)
}

func Submit1[T0 any](rt *Runtime, c0 *Cown[T0], fn func(*T0)) {
	rt.submit(newBehavior(
		[]cownID{c0.id},
		func() { fn(c0.cell.get()) },
	))
}

func When1[T0 any](c0 *Cown[T0], fn func(*T0)) {
	Submit1(c0.rt, c0, fn)
}

func Submit2[T0, T1 any](rt *Runtime, c0 *Cown[T0], c1 *Cown[T1], fn func(*T0, *T1)) {
	rt.submit(newBehavior(
		[]cownID{c0.id, c1.id},
		func() { fn(c0.cell.get(), c1.cell.get()) },
	))
}

func When2[T0, T1 any](c0 *Cown[T0], c1 *Cown[T1], fn func(*T0, *T1)) {
	Submit2(c0.rt, c0, c1, fn)
}

func Submit3[T0, T1, T2 any](rt *Runtime, c0 *Cown[T0], c1 *Cown[T1], c2 *Cown[T2], fn func(*T0, *T1, *T2)) {
	rt.submit(newBehavior(
		[]cownID{c0.id, c1.id, c2.id},
		func() { fn(c0.cell.get(), c1.cell.get(), c2.cell.get()) },
	))
}

func When3[T0, T1, T2 any](c0 *Cown[T0], c1 *Cown[T1], c2 *Cown[T2], fn func(*T0, *T1, *T2)) {
	Submit3(c0.rt, c0, c1, c2, fn)
}

func Submit4[T0, T1, T2, T3 any](rt *Runtime, c0 *Cown[T0], c1 *Cown[T1], c2 *Cown[T2], c3 *Cown[T3], fn func(*T0, *T1, *T2, *T3)) {
	rt.submit(newBehavior(
		[]cownID{c0.id, c1.id, c2.id, c3.id},
		func() { fn(c0.cell.get(), c1.cell.get(), c2.cell.get(), c3.cell.get()) },
	))
}

func When4[T0, T1, T2, T3 any](c0 *Cown[T0], c1 *Cown[T1], c2 *Cown[T2], c3 *Cown[T3], fn func(*T0, *T1, *T2, *T3)) {
	Submit4(c0.rt, c0, c1, c2, c3, fn)
}

func Submit5[T0, T1, T2, T3, T4 any](rt *Runtime, c0 *Cown[T0], c1 *Cown[T1], c2 *Cown[T2], c3 *Cown[T3], c4 *Cown[T4], fn func(*T0, *T1, *T2, *T3, *T4)) {
	rt.submit(newBehavior(
		[]cownID{c0.id, c1.id, c2.id, c3.id, c4.id},
		func() { fn(c0.cell.get(), c1.cell.get(), c2.cell.get(), c3.cell.get(), c4.cell.get()) },
	))
}

func When5[T0, T1, T2, T3, T4 any](c0 *Cown[T0], c1 *Cown[T1], c2 *Cown[T2], c3 *Cown[T3], c4 *Cown[T4], fn func(*T0, *T1, *T2, *T3, *T4)) {
	Submit5(c0.rt, c0, c1, c2, c3, c4, fn)
}

func Submit6[T0, T1, T2, T3, T4, T5 any](rt *Runtime, c0 *Cown[T0], c1 *Cown[T1], c2 *Cown[T2], c3 *Cown[T3], c4 *Cown[T4], c5 *Cown[T5], fn func(*T0, *T1, *T2, *T3, *T4, *T5)) {
	rt.submit(newBehavior(
		[]cownID{c0.id, c1.id, c2.id, c3.id, c4.id, c5.id},
		func() { fn(c0.cell.get(), c1.cell.get(), c2.cell.get(), c3.cell.get(), c4.cell.get(), c5.cell.get()) },
	))
}

func When6[T0, T1, T2, T3, T4, T5 any](c0 *Cown[T0], c1 *Cown[T1], c2 *Cown[T2], c3 *Cown[T3], c4 *Cown[T4], c5 *Cown[T5], fn func(*T0, *T1, *T2, *T3, *T4, *T5)) {
	Submit6(c0.rt, c0, c1, c2, c3, c4, c5, fn)
}

func Submit7[T0, T1, T2, T3, T4, T5, T6 any](rt *Runtime, c0 *Cown[T0], c1 *Cown[T1], c2 *Cown[T2], c3 *Cown[T3], c4 *Cown[T4], c5 *Cown[T5], c6 *Cown[T6], fn func(*T0, *T1, *T2, *T3, *T4, *T5, *T6)) {
	rt.submit(newBehavior(
		[]cownID{c0.id, c1.id, c2.id, c3.id, c4.id, c5.id, c6.id},
		func() { fn(c0.cell.get(), c1.cell.get(), c2.cell.get(), c3.cell.get(), c4.cell.get(), c5.cell.get(), c6.cell.get()) },
	))
}

func When7[T0, T1, T2, T3, T4, T5, T6 any](c0 *Cown[T0], c1 *Cown[T1], c2 *Cown[T2], c3 *Cown[T3], c4 *Cown[T4], c5 *Cown[T5], c6 *Cown[T6], fn func(*T0, *T1, *T2, *T3, *T4, *T5, *T6)) {
	Submit7(c0.rt, c0, c1, c2, c3, c4, c5, c6, fn)
}

func Submit8[T0, T1, T2, T3, T4, T5, T6, T7 any](rt *Runtime, c0 *Cown[T0], c1 *Cown[T1], c2 *Cown[T2], c3 *Cown[T3], c4 *Cown[T4], c5 *Cown[T5], c6 *Cown[T6], c7 *Cown[T7], fn func(*T0, *T1, *T2, *T3, *T4, *T5, *T6, *T7)) {
	rt.submit(newBehavior(
		[]cownID{c0.id, c1.id, c2.id, c3.id, c4.id, c5.id, c6.id, c7.id},
		func() {
			fn(c0.cell.get(), c1.cell.get(), c2.cell.get(), c3.cell.get(), c4.cell.get(), c5.cell.get(), c6.cell.get(), c7.cell.get())
		},
	))
}

func When8[T0, T1, T2, T3, T4, T5, T6, T7 any](c0 *Cown[T0], c1 *Cown[T1], c2 *Cown[T2], c3 *Cown[T3], c4 *Cown[T4], c5 *Cown[T5], c6 *Cown[T6], c7 *Cown[T7], fn func(*T0, *T1, *T2, *T3, *T4, *T5, *T6, *T7)) {
	Submit8(c0.rt, c0, c1, c2, c3, c4, c5, c6, c7, fn)
}

func Submit9[T0, T1, T2, T3, T4, T5, T6, T7, T8 any](rt *Runtime, c0 *Cown[T0], c1 *Cown[T1], c2 *Cown[T2], c3 *Cown[T3], c4 *Cown[T4], c5 *Cown[T5], c6 *Cown[T6], c7 *Cown[T7], c8 *Cown[T8], fn func(*T0, *T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8)) {
	rt.submit(newBehavior(
		[]cownID{c0.id, c1.id, c2.id, c3.id, c4.id, c5.id, c6.id, c7.id, c8.id},
		func() {
			fn(c0.cell.get(), c1.cell.get(), c2.cell.get(), c3.cell.get(), c4.cell.get(), c5.cell.get(), c6.cell.get(), c7.cell.get(), c8.cell.get())
		},
	))
}

func When9[T0, T1, T2, T3, T4, T5, T6, T7, T8 any](c0 *Cown[T0], c1 *Cown[T1], c2 *Cown[T2], c3 *Cown[T3], c4 *Cown[T4], c5 *Cown[T5], c6 *Cown[T6], c7 *Cown[T7], c8 *Cown[T8], fn func(*T0, *T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8)) {
	Submit9(c0.rt, c0, c1, c2, c3, c4, c5, c6, c7, c8, fn)
}

func Submit10[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9 any](rt *Runtime, c0 *Cown[T0], c1 *Cown[T1], c2 *Cown[T2], c3 *Cown[T3], c4 *Cown[T4], c5 *Cown[T5], c6 *Cown[T6], c7 *Cown[T7], c8 *Cown[T8], c9 *Cown[T9], fn func(*T0, *T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8, *T9)) {
	rt.submit(newBehavior(
		[]cownID{c0.id, c1.id, c2.id, c3.id, c4.id, c5.id, c6.id, c7.id, c8.id, c9.id},
		func() {
			fn(c0.cell.get(), c1.cell.get(), c2.cell.get(), c3.cell.get(), c4.cell.get(), c5.cell.get(), c6.cell.get(), c7.cell.get(), c8.cell.get(), c9.cell.get())
		},
	))
}

func When10[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9 any](c0 *Cown[T0], c1 *Cown[T1], c2 *Cown[T2], c3 *Cown[T3], c4 *Cown[T4], c5 *Cown[T5], c6 *Cown[T6], c7 *Cown[T7], c8 *Cown[T8], c9 *Cown[T9], fn func(*T0, *T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8, *T9)) {
	Submit10(c0.rt, c0, c1, c2, c3, c4, c5, c6, c7, c8, c9, fn)
}

func Submit11[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10 any](rt *Runtime, c0 *Cown[T0], c1 *Cown[T1], c2 *Cown[T2], c3 *Cown[T3], c4 *Cown[T4], c5 *Cown[T5], c6 *Cown[T6], c7 *Cown[T7], c8 *Cown[T8], c9 *Cown[T9], c10 *Cown[T10], fn func(*T0, *T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8, *T9, *T10)) {
	rt.submit(newBehavior(
		[]cownID{c0.id, c1.id, c2.id, c3.id, c4.id, c5.id, c6.id, c7.id, c8.id, c9.id, c10.id},
		func() {
			fn(c0.cell.get(), c1.cell.get(), c2.cell.get(), c3.cell.get(), c4.cell.get(), c5.cell.get(), c6.cell.get(), c7.cell.get(), c8.cell.get(), c9.cell.get(), c10.cell.get())
		},
	))
}

func When11[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10 any](c0 *Cown[T0], c1 *Cown[T1], c2 *Cown[T2], c3 *Cown[T3], c4 *Cown[T4], c5 *Cown[T5], c6 *Cown[T6], c7 *Cown[T7], c8 *Cown[T8], c9 *Cown[T9], c10 *Cown[T10], fn func(*T0, *T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8, *T9, *T10)) {
	Submit11(c0.rt, c0, c1, c2, c3, c4, c5, c6, c7, c8, c9, c10, fn)
}

func Submit12[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11 any](rt *Runtime, c0 *Cown[T0], c1 *Cown[T1], c2 *Cown[T2], c3 *Cown[T3], c4 *Cown[T4], c5 *Cown[T5], c6 *Cown[T6], c7 *Cown[T7], c8 *Cown[T8], c9 *Cown[T9], c10 *Cown[T10], c11 *Cown[T11], fn func(*T0, *T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8, *T9, *T10, *T11)) {
	rt.submit(newBehavior(
		[]cownID{c0.id, c1.id, c2.id, c3.id, c4.id, c5.id, c6.id, c7.id, c8.id, c9.id, c10.id, c11.id},
		func() {
			fn(c0.cell.get(), c1.cell.get(), c2.cell.get(), c3.cell.get(), c4.cell.get(), c5.cell.get(), c6.cell.get(), c7.cell.get(), c8.cell.get(), c9.cell.get(), c10.cell.get(), c11.cell.get())
		},
	))
}

func When12[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11 any](c0 *Cown[T0], c1 *Cown[T1], c2 *Cown[T2], c3 *Cown[T3], c4 *Cown[T4], c5 *Cown[T5], c6 *Cown[T6], c7 *Cown[T7], c8 *Cown[T8], c9 *Cown[T9], c10 *Cown[T10], c11 *Cown[T11], fn func(*T0, *T1, *T2, *T3, *T4, *T5, *T6, *T7, *T8, *T9, *T10, *T11)) {
	Submit12(c0.rt, c0, c1, c2, c3, c4, c5, c6, c7, c8, c9, c10, c11, fn)
}

package cown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCown_distinctIdentities(t *testing.T) {
	rt := NewRuntime()
	a := NewCown(rt, 1)
	b := NewCown(rt, 2)
	assert.NotEqual(t, a.id, b.id)
}

func TestCown_Clone_sharesIdentity(t *testing.T) {
	rt := NewRuntime()
	a := NewCown(rt, "x")
	clone := a.Clone()
	assert.Equal(t, a.id, clone.id)
	assert.Same(t, a.cell, clone.cell)

	assert.Panics(t, func() {
		newBehavior([]cownID{a.id, clone.id}, func() {})
	}, "a clone names the same underlying cown, so pairing it with its origin is an aliasing submission")
}

func TestCreate_usesDefaultRuntime(t *testing.T) {
	c := Create(42)
	assert.Same(t, defaultRuntime(), c.rt)
}

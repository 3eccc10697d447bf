// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake ring implementation for testing ring consumers.

package fake

import (
	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/ring"
)

// Ring wraps the real engine with operation accounting and optional
// failure injection, so consumers can test their full-ring and
// empty-ring handling without crafting exact occupancy.
type Ring[T any] struct {
	*ring.Ring[T]

	Pushes int
	Pops   int

	// FailPushes makes every push report capacity exhaustion.
	FailPushes bool
	// FailPops makes every pop report an empty ring.
	FailPops bool
}

// Compile-time contract check.
var _ api.Ring[any] = (*Ring[any])(nil)

// NewRing creates a fake ring with its own storage of the given
// capacity. Unlike the engine proper, the fake allocates; it is a
// test double, not a zero-copy primitive.
func NewRing[T any](capacity int) *Ring[T] {
	return &Ring[T]{Ring: ring.New(make([]T, capacity))}
}

// PushBack counts the attempt and honours FailPushes.
func (f *Ring[T]) PushBack() (api.Handle, bool) {
	f.Pushes++
	if f.FailPushes {
		return 0, false
	}
	return f.Ring.PushBack()
}

// PushFront counts the attempt and honours FailPushes.
func (f *Ring[T]) PushFront() (api.Handle, bool) {
	f.Pushes++
	if f.FailPushes {
		return 0, false
	}
	return f.Ring.PushFront()
}

// PopBack counts the attempt and honours FailPops.
func (f *Ring[T]) PopBack() (api.Handle, bool) {
	f.Pops++
	if f.FailPops {
		return 0, false
	}
	return f.Ring.PopBack()
}

// PopFront counts the attempt and honours FailPops.
func (f *Ring[T]) PopFront() (api.Handle, bool) {
	f.Pops++
	if f.FailPops {
		return 0, false
	}
	return f.Ring.PopFront()
}

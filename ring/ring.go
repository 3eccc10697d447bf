// File: ring/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Core ring state and end operations. The ring tracks which slots of
// the caller's storage are occupied and in what order; it never reads
// or writes slot contents.

package ring

import (
	"github.com/momentics/hioload-ring/api"
)

// Ring is a fixed-capacity circular index over caller-owned storage.
//
// The zero value is a capacity-0 ring: always empty and always full.
// A single logical owner is assumed; see api.Ring for the full
// contract.
type Ring[T any] struct {
	storage []T
	start   int // physical index of logical position 0; meaningful when used > 0
	used    int // occupied slot count, 0 <= used <= len(storage)
}

// Compile-time contract check.
var _ api.Ring[any] = (*Ring[any])(nil)

// New binds a ring to storage. Capacity is len(storage), fixed for
// the ring's lifetime. The storage must outlive the ring; the ring
// never allocates, resizes, or copies it.
func New[T any](storage []T) *Ring[T] {
	return &Ring[T]{storage: storage}
}

// index maps logical position n to a physical slot without modulo.
// Valid only for n in [0, used] (n == used names the slot after the
// back, used by the region reports).
func (r *Ring[T]) index(n int) int {
	untilEnd := len(r.storage) - r.start
	if n >= untilEnd {
		return n - untilEnd
	}
	return r.start + n
}

// nth returns the handle at logical position n.
func (r *Ring[T]) nth(n int) api.Handle {
	return api.Handle(r.index(n))
}

// At dereferences a handle into storage. The handle must come from
// this ring.
func (r *Ring[T]) At(h api.Handle) *T {
	return &r.storage[h]
}

// Len returns the number of occupied slots.
func (r *Ring[T]) Len() int { return r.used }

// Cap returns the fixed slot capacity.
func (r *Ring[T]) Cap() int { return len(r.storage) }

// Free returns the number of unoccupied slots.
func (r *Ring[T]) Free() int { return len(r.storage) - r.used }

// Front returns a handle to the logically-first element, ok==false
// if the ring is empty.
func (r *Ring[T]) Front() (api.Handle, bool) {
	if r.used == 0 {
		return 0, false
	}
	return r.nth(0), true
}

// Back returns a handle to the logically-last element, ok==false if
// the ring is empty.
func (r *Ring[T]) Back() (api.Handle, bool) {
	if r.used == 0 {
		return 0, false
	}
	return r.nth(r.used - 1), true
}

// PushBack reserves the slot after the current back, ok==false if the
// ring is full. The engine leaves the slot content untouched; the
// caller writes through At afterwards.
func (r *Ring[T]) PushBack() (api.Handle, bool) {
	if r.used == len(r.storage) {
		return 0, false
	}
	r.used++
	return r.nth(r.used - 1), true
}

// PopBack releases the back slot and returns its handle, ok==false if
// the ring is empty. The handle still addresses the physical slot but
// the slot is no longer active; iterators holding it are invalid.
func (r *Ring[T]) PopBack() (api.Handle, bool) {
	if r.used == 0 {
		return 0, false
	}
	r.used--
	return r.nth(r.used), true
}

// PushFront reserves the slot before the current front, ok==false if
// the ring is full.
func (r *Ring[T]) PushFront() (api.Handle, bool) {
	if r.used == len(r.storage) {
		return 0, false
	}
	if r.start != 0 {
		r.start--
	} else {
		r.start = len(r.storage) - 1
	}
	r.used++
	return r.nth(0), true
}

// PopFront releases the front slot and returns its handle, ok==false
// if the ring is empty.
func (r *Ring[T]) PopFront() (api.Handle, bool) {
	if r.used == 0 {
		return 0, false
	}
	old := r.nth(0)
	r.used--
	r.start++
	if r.start == len(r.storage) {
		r.start = 0
	}
	return old, true
}

// Reset drops all elements. Storage is left untouched.
func (r *Ring[T]) Reset() {
	r.start = 0
	r.used = 0
}

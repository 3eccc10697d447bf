// Package ring
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Zero-copy generic ring buffer backed by a user-supplied slice.
// The package performs only state management; memory management is
// the responsibility of the user. Conceptually it offers iterators
// and bulk region views into a circular buffer.
//
// Occupancy is derived from two counters (start, used) over the
// fixed storage; no per-slot state exists. Every operation is O(1)
// and allocation-free.
//
// Intended usage:
//
//	storage := make([]T, n) // or any caller-owned slice
//	r := ring.New(storage)
//
//	h, ok := r.PushBack()
//	if ok {
//		*r.At(h) = element
//	}
//
//	for h, ok := r.Front(); ok; h, ok = r.Next(h) {
//		process(*r.At(h))
//	}
//
// For bulk transfer the engine reports free and occupied space as at
// most two contiguous regions, suitable for vectored I/O. The
// regions are not marked used/consumed automatically; the caller
// commits the transferred count explicitly:
//
//	first, second := r.Avail()
//	n := fill(first, second)
//	r.CommitWrite(n)
package ring

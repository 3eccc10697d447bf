// File: ring/regions.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bulk region reporting and the explicit commit protocol.
//
// A logically contiguous range of slots occupies at most two physical
// runs of the backing array. Used and Avail expose those runs as
// sub-slices of storage so callers can move many elements with
// vectored I/O and zero copies. The engine never learns of a transfer
// by itself; the caller commits the moved count afterwards.

package ring

// Used reports the occupied slots as up to two sub-slices of storage,
// in logical order: first is logically earlier. On an empty ring
// first is a valid zero-length slice anchored at the start slot, so
// callers can always form (possibly empty) ranges without
// special-casing.
func (r *Ring[T]) Used() (first, second []T) {
	if end := r.start + r.used; end <= len(r.storage) {
		return r.storage[r.start:end], r.storage[:0]
	}
	return r.storage[r.start:], r.storage[:r.start+r.used-len(r.storage)]
}

// Avail reports the free slots as up to two sub-slices of storage, in
// allocation order: first must be exhausted before second is written.
// On a full ring both regions are valid zero-length slices.
func (r *Ring[T]) Avail() (first, second []T) {
	free := len(r.storage) - r.used
	from := r.index(r.used) // slot right after the back
	if end := from + free; end <= len(r.storage) {
		return r.storage[from:end], r.storage[:0]
	}
	return r.storage[from:], r.storage[:from+free-len(r.storage)]
}

// CommitWrite marks n slots of the most recent Avail report as
// occupied. n must not exceed Free(); a bad count is rejected without
// mutation.
func (r *Ring[T]) CommitWrite(n int) error {
	if n < 0 || n > len(r.storage)-r.used {
		return errCommitRange(n, len(r.storage)-r.used)
	}
	r.used += n
	return nil
}

// CommitRead marks n slots of the most recent Used report as
// consumed, advancing the front past them. Equivalent to n PopFront
// calls. n must not exceed Len().
func (r *Ring[T]) CommitRead(n int) error {
	if n < 0 || n > r.used {
		return errCommitRange(n, r.used)
	}
	r.start += n
	if r.start >= len(r.storage) {
		r.start -= len(r.storage)
	}
	r.used -= n
	return nil
}

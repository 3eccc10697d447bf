// Package api
// Author: momentics <momentics@gmail.com>
//
// Contract for the zero-copy ring index engine.
//
// A Ring manages only positional bookkeeping over caller-supplied
// storage: it never allocates, never copies element payloads, and
// never owns memory. Slot contents are opaque to the engine.

package api

// Handle identifies a physical slot inside ring storage.
//
// A handle stays valid only while the slot it names remains logically
// occupied and only until the next pop on the same ring. Popping a
// slot invalidates handles to it; passing a stale handle to Next or
// Prev is undefined behaviour, matching the raw-iterator contract
// this engine exposes.
type Handle int

// Ring is the positional bookkeeping contract over fixed storage.
//
// All operations run in O(1) with no hidden I/O. A Ring instance has
// a single logical owner; concurrent mutation without external
// synchronization is a caller error, not a reported failure.
type Ring[T any] interface {
	// Front returns a handle to the logically-first element,
	// ok==false if the ring is empty.
	Front() (Handle, bool)
	// Back returns a handle to the logically-last element,
	// ok==false if the ring is empty.
	Back() (Handle, bool)

	// PushBack reserves the slot after the current back and returns
	// its handle; ok==false if the ring is full. The slot content is
	// whatever the storage held; the caller writes it afterwards.
	PushBack() (Handle, bool)
	// PushFront reserves the slot before the current front.
	PushFront() (Handle, bool)
	// PopBack releases the back slot and returns its handle;
	// ok==false if the ring is empty. The returned handle still
	// addresses the physical slot but the slot is no longer active.
	PopBack() (Handle, bool)
	// PopFront releases the front slot and returns its handle.
	PopFront() (Handle, bool)

	// Next returns the handle one logical position after h,
	// ok==false at the back boundary. h must name an active slot.
	Next(h Handle) (Handle, bool)
	// Prev returns the handle one logical position before h,
	// ok==false at the front boundary. h must name an active slot.
	Prev(h Handle) (Handle, bool)

	// At dereferences a handle into storage.
	At(h Handle) *T

	// Used reports the occupied slots as up to two storage
	// sub-slices in logical order (first is logically earlier).
	// Regions are valid, possibly empty, never-nil first slices.
	Used() (first, second []T)
	// Avail reports the free slots as up to two storage sub-slices
	// in allocation order (first is filled first).
	Avail() (first, second []T)

	// CommitWrite marks n slots of the Avail report as occupied.
	// The engine never inspects slot contents; this explicit commit
	// is the price of zero-copy bulk transfer.
	CommitWrite(n int) error
	// CommitRead marks n slots of the Used report as consumed,
	// equivalent to n PopFront calls.
	CommitRead(n int) error

	// Len returns the number of occupied slots.
	Len() int
	// Cap returns the fixed slot capacity.
	Cap() int
	// Free returns Cap() - Len().
	Free() int

	// Reset drops all elements without touching storage.
	Reset()
}

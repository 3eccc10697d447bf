// Package api
// Author: momentics
//
// Contract for the resizable flat byte buffer that commonly backs
// byte-oriented rings and vectored transfers.
//
// A FlatBuffer tracks (data, size, capacity) over one contiguous
// region. It has no positional or circular logic; growth is the only
// service it provides beyond plain byte storage.

package api

// FlatBuffer describes a flat byte buffer with optional growth.
//
// Fixed buffers report growth requests as failure without mutating
// state. All results are booleans in the success/failure sense; there
// are no partial outcomes.
type FlatBuffer interface {
	// EnsureCapacity grows the buffer (if necessary) so that
	// Cap() >= n.
	EnsureCapacity(n int) bool

	// EnsureRemaining grows the buffer (if necessary) so that
	// Len() + n <= Cap().
	EnsureRemaining(n int) bool

	// Append copies data after the current content, growing first
	// when allowed. data must not overlap the buffer's own region.
	Append(data []byte) bool

	// Trim shrinks the buffer to the minimum capacity
	// (Cap() == Len()).
	Trim() bool

	// CopyFrom replaces the content with a deep copy of in's
	// content, growing the capacity if necessary. The regions must
	// not overlap.
	CopyFrom(in FlatBuffer) bool

	// Bytes returns the usable content range.
	Bytes() []byte
	// Len returns the content size.
	Len() int
	// Cap returns the total capacity of the backing region.
	Cap() int
}

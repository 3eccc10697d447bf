// File: flatbuf/flatbuf.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package flatbuf wraps flat byte buffers for I/O-style filling.
//
// A Buf tracks content size and capacity over one contiguous region
// and optionally grows it on demand. Buffers constructed over
// caller-owned storage are fixed: any operation that needs more
// capacity fails without mutating state, mirroring the behaviour of
// a buffer with no growth strategy. Buf has no positional or
// circular logic; byte rings commonly borrow their storage from one.
package flatbuf

import (
	"github.com/momentics/hioload-ring/api"
)

const maxInt = int(^uint(0) >> 1)

// Buf is a flat byte buffer. The usable content is data[:Len()]; the
// backing region spans Cap() bytes.
type Buf struct {
	data      []byte // len is the content size, cap the capacity
	resizable bool
}

// Compile-time contract check.
var _ api.FlatBuffer = (*Buf)(nil)

// New returns an empty buffer that grows on demand.
func New() *Buf {
	return &Buf{resizable: true}
}

// Wrap overlays a fixed buffer on b, with content == b. The wrapped
// region is caller-owned and never reallocated.
func Wrap(b []byte) *Buf {
	return &Buf{data: b[:len(b):len(b)]}
}

// WrapOut overlays a fixed output buffer on b: empty content,
// capacity len(b).
func WrapOut(b []byte) *Buf {
	return &Buf{data: b[:0:len(b)]}
}

// Bytes returns the content range. The slice aliases the buffer's
// region and is invalidated by any growing operation.
func (b *Buf) Bytes() []byte { return b.data }

// Len returns the content size.
func (b *Buf) Len() int { return len(b.data) }

// Cap returns the capacity of the backing region.
func (b *Buf) Cap() int { return cap(b.data) }

// EnsureCapacity grows the backing region (if necessary) so that
// Cap() >= n. Fixed buffers fail instead of growing.
func (b *Buf) EnsureCapacity(n int) bool {
	if n <= cap(b.data) {
		return true
	}
	if !b.resizable {
		return false
	}
	grown := make([]byte, len(b.data), n)
	copy(grown, b.data)
	b.data = grown
	return true
}

// EnsureRemaining grows the backing region (if necessary) so that
// Len() + n <= Cap(). Guards against size overflow.
func (b *Buf) EnsureRemaining(n int) bool {
	if cap(b.data)-len(b.data) >= n {
		return true
	}
	if n > maxInt-len(b.data) {
		return false
	}
	return b.EnsureCapacity(len(b.data) + n)
}

// Append copies data after the current content, growing first when
// allowed. data must not overlap the buffer's own region.
func (b *Buf) Append(data []byte) bool {
	if !b.EnsureRemaining(len(data)) {
		return false
	}
	b.data = append(b.data, data...)
	return true
}

// Trim shrinks the backing region to the content size. Fixed buffers
// fail unless already minimal.
func (b *Buf) Trim() bool {
	if len(b.data) == cap(b.data) {
		return true
	}
	if !b.resizable {
		return false
	}
	trimmed := make([]byte, len(b.data))
	copy(trimmed, b.data)
	b.data = trimmed
	return true
}

// CopyFrom replaces the content with a deep copy of in's content,
// growing if necessary. The regions must not overlap.
func (b *Buf) CopyFrom(in api.FlatBuffer) bool {
	if !b.EnsureCapacity(in.Len()) {
		return false
	}
	b.data = b.data[:in.Len()]
	copy(b.data, in.Bytes())
	return true
}

// DeepCopy copies src's content into dst, growing dst if necessary.
func DeepCopy(dst, src *Buf) bool {
	return dst.CopyFrom(src)
}

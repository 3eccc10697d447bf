// File: ringio/vectored_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fallback for platforms without readv/writev support. Use Fill and
// Drain instead.

//go:build !linux

package ringio

import (
	"github.com/momentics/hioload-ring/api"
)

// Readv is unavailable on this platform.
func (b *Ring) Readv(fd int) (int, error) {
	return 0, api.ErrNotSupported
}

// Writev is unavailable on this platform.
func (b *Ring) Writev(fd int) (int, error) {
	return 0, api.ErrNotSupported
}

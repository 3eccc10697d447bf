// File: ringio/vectored_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Vectored transfers between a ring and a file descriptor. One
// syscall moves both physical runs of a wrapped range.

//go:build linux

package ringio

import (
	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-ring/api"
)

// Readv fills the free regions from fd with a single readv(2) and
// commits the byte count. Returns api.ErrRingFull when no free space
// exists.
func (b *Ring) Readv(fd int) (int, error) {
	first, second := b.Avail()
	iov := b.iov[:0]
	if len(first) > 0 {
		iov = append(iov, first)
	}
	if len(second) > 0 {
		iov = append(iov, second)
	}
	if len(iov) == 0 {
		return 0, api.ErrRingFull
	}
	n, err := unix.Readv(fd, iov)
	if n > 0 {
		if cerr := b.CommitWrite(n); cerr != nil {
			return n, cerr
		}
	}
	return n, err
}

// Writev drains the occupied regions to fd with a single writev(2)
// and commits the byte count. Returns api.ErrRingEmpty when no
// content exists.
func (b *Ring) Writev(fd int) (int, error) {
	first, second := b.Used()
	iov := b.iov[:0]
	if len(first) > 0 {
		iov = append(iov, first)
	}
	if len(second) > 0 {
		iov = append(iov, second)
	}
	if len(iov) == 0 {
		return 0, api.ErrRingEmpty
	}
	n, err := unix.Writev(fd, iov)
	if n > 0 {
		if cerr := b.CommitRead(n); cerr != nil {
			return n, cerr
		}
	}
	return n, err
}

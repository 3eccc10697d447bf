// File: ringio/ringio.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ringio

import (
	"io"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/ring"
)

// Ring is a byte ring with bulk I/O bridges. It embeds the generic
// engine, so all positional operations remain available.
type Ring struct {
	*ring.Ring[byte]

	// iov is scratch for the vectored calls, keeping them
	// allocation-free.
	iov [2][]byte
}

// New binds a byte ring to caller-owned storage.
func New(storage []byte) *Ring {
	return &Ring{Ring: ring.New(storage)}
}

// Fill reads from src into the free regions, first region first, and
// commits the bytes read. At most two Read calls are issued. Returns
// api.ErrRingFull when no free space exists.
func (b *Ring) Fill(src io.Reader) (int, error) {
	first, second := b.Avail()
	if len(first) == 0 && len(second) == 0 {
		return 0, api.ErrRingFull
	}
	total, err := src.Read(first)
	if err == nil && total == len(first) && len(second) > 0 {
		var n int
		n, err = src.Read(second)
		total += n
	}
	if total > 0 {
		if cerr := b.CommitWrite(total); cerr != nil {
			return total, cerr
		}
	}
	return total, err
}

// Drain writes the occupied regions to dst in logical order and
// commits the bytes written. At most two Write calls are issued.
// Returns api.ErrRingEmpty when no content exists.
func (b *Ring) Drain(dst io.Writer) (int, error) {
	first, second := b.Used()
	if len(first) == 0 && len(second) == 0 {
		return 0, api.ErrRingEmpty
	}
	total, err := dst.Write(first)
	if err == nil && total == len(first) && len(second) > 0 {
		var n int
		n, err = dst.Write(second)
		total += n
	}
	if total > 0 {
		if cerr := b.CommitRead(total); cerr != nil {
			return total, cerr
		}
	}
	return total, err
}

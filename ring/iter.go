// File: ring/iter.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Handle stepping. Next and Prev recompute the handle's logical
// position from the current start, so a traversal is only valid while
// no push or pop happens between steps; restarting requires a fresh
// Front or Back.

package ring

import (
	"github.com/momentics/hioload-ring/api"
)

// logical returns the logical position of a physical handle.
func (r *Ring[T]) logical(h api.Handle) int {
	pos := int(h) - r.start
	if pos < 0 {
		pos += len(r.storage)
	}
	return pos
}

// Next returns the handle one position after h, ok==false if h is the
// back. h must name an active slot (a handle between Front and Back
// under the current occupancy); otherwise the behaviour is undefined.
func (r *Ring[T]) Next(h api.Handle) (api.Handle, bool) {
	pos := r.logical(h)
	if pos == r.used-1 {
		return 0, false
	}
	return r.nth(pos + 1), true
}

// Prev returns the handle one position before h, ok==false if h is
// the front. The same active-slot precondition as Next applies.
func (r *Ring[T]) Prev(h api.Handle) (api.Handle, bool) {
	pos := r.logical(h)
	if pos == 0 {
		return 0, false
	}
	return r.nth(pos - 1), true
}

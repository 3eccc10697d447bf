// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error values for the hioload-ring library.

package api

import "fmt"

// Common errors used across the library.
var (
	// ErrRingFull is reported when no free slot exists. State is
	// left unchanged; the caller may retry after removing elements.
	ErrRingFull = fmt.Errorf("ring is full")
	// ErrRingEmpty is reported when no occupied slot exists.
	ErrRingEmpty = fmt.Errorf("ring is empty")
	// ErrCommitRange is reported when a commit count exceeds the
	// region it commits against.
	ErrCommitRange = fmt.Errorf("commit count out of range")
	// ErrNotSupported is reported by platform-specific operations
	// on platforms that lack them.
	ErrNotSupported = fmt.Errorf("operation not supported")
)

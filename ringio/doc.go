// Package ringio
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Byte-oriented adapter over the ring engine for zero-copy I/O.
//
// The engine's dual-region reports map directly onto scatter/gather
// I/O: the free space becomes the iovec for a vectored read, the
// occupied space the iovec for a vectored write, and the transferred
// byte count is committed back to the ring. On Linux the Readv and
// Writev methods drive golang.org/x/sys/unix; the portable Fill and
// Drain bridges serve any io.Reader/io.Writer with the same
// two-region, no-intermediate-copy discipline.
package ringio

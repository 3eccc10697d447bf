// File: ringio/vectored_linux_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

//go:build linux

package ringio_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/ringio"
)

func TestReadvWritevPipe(t *testing.T) {
	pr, pw, err := os.Pipe()
	require.NoError(t, err)
	defer pr.Close()
	defer pw.Close()
	qr, qw, err := os.Pipe()
	require.NoError(t, err)
	defer qr.Close()
	defer qw.Close()

	b := ringio.New(make([]byte, 8))
	// Shift start so both the readv and the writev use two iovecs.
	_, err = b.Fill(strings.NewReader("xxxxxx"))
	require.NoError(t, err)
	require.NoError(t, b.CommitRead(6))

	payload := []byte("ABCDEFG")
	_, err = pw.Write(payload)
	require.NoError(t, err)

	n, err := b.Readv(int(pr.Fd()))
	require.NoError(t, err)
	require.Equal(t, len(payload), n)
	require.Equal(t, len(payload), b.Len())

	n, err = b.Writev(int(qw.Fd()))
	require.NoError(t, err)
	require.Equal(t, len(payload), n)
	assert.Equal(t, 0, b.Len())

	got := make([]byte, len(payload))
	_, err = qr.Read(got)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestWritevEmpty(t *testing.T) {
	_, pw, err := os.Pipe()
	require.NoError(t, err)
	defer pw.Close()

	b := ringio.New(make([]byte, 4))
	_, err = b.Writev(int(pw.Fd()))
	assert.ErrorIs(t, err, api.ErrRingEmpty)
}

func TestReadvFull(t *testing.T) {
	pr, pw, err := os.Pipe()
	require.NoError(t, err)
	defer pr.Close()
	defer pw.Close()

	b := ringio.New(make([]byte, 2))
	_, err = b.Fill(strings.NewReader("ab"))
	require.NoError(t, err)

	_, err = b.Readv(int(pr.Fd()))
	assert.ErrorIs(t, err, api.ErrRingFull)
}

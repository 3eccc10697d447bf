// File: flatbuf/flatbuf_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package flatbuf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-ring/flatbuf"
)

func TestWrapReflectsContent(t *testing.T) {
	t.Parallel()
	b := flatbuf.Wrap([]byte("Hello World!"))
	assert.Equal(t, 12, b.Len())
	assert.Equal(t, 12, b.Cap())
	assert.Equal(t, "Hello World!", string(b.Bytes()))
}

func TestDeepCopyAndAppend(t *testing.T) {
	t.Parallel()
	src := flatbuf.Wrap([]byte("Hello World!"))
	dst := flatbuf.New()

	require.True(t, flatbuf.DeepCopy(dst, src))
	require.Equal(t, src.Len(), dst.Len())
	assert.Equal(t, src.Bytes(), dst.Bytes())

	require.True(t, dst.Append([]byte(" again")))
	assert.Equal(t, "Hello World! again", string(dst.Bytes()))

	// Copying back into the smaller fixed buffer must fail without
	// mutating it.
	assert.False(t, src.CopyFrom(dst))
	assert.Equal(t, "Hello World!", string(src.Bytes()))
}

func TestFixedBufferCannotGrow(t *testing.T) {
	t.Parallel()
	b := flatbuf.WrapOut(make([]byte, 4))
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 4, b.Cap())

	require.True(t, b.Append([]byte("abcd")))
	assert.False(t, b.Append([]byte("e")))
	assert.Equal(t, "abcd", string(b.Bytes()))

	assert.True(t, b.EnsureCapacity(4))
	assert.False(t, b.EnsureCapacity(5))
	assert.False(t, b.EnsureRemaining(1))
}

func TestWrapOutDoesNotLeakIntoBacking(t *testing.T) {
	t.Parallel()
	backing := make([]byte, 4)
	b := flatbuf.Wrap(backing[:2])
	// Appending must not spill into backing[2:]; the wrap is fixed
	// at its own length.
	assert.False(t, b.Append([]byte("x")))
	assert.Equal(t, []byte{0, 0}, backing[2:4])
}

func TestResizableGrowth(t *testing.T) {
	t.Parallel()
	b := flatbuf.New()
	assert.True(t, b.EnsureRemaining(100))
	assert.GreaterOrEqual(t, b.Cap(), 100)
	assert.Equal(t, 0, b.Len())

	require.True(t, b.Append([]byte("data")))
	require.True(t, b.Trim())
	assert.Equal(t, 4, b.Cap())
	assert.Equal(t, "data", string(b.Bytes()))
}

func TestEnsureRemainingOverflowGuard(t *testing.T) {
	t.Parallel()
	b := flatbuf.New()
	require.True(t, b.Append([]byte("x")))
	maxInt := int(^uint(0) >> 1)
	assert.False(t, b.EnsureRemaining(maxInt))
}

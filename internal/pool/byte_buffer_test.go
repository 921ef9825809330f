package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_Basics(t *testing.T) {
	bb := NewByteBuffer(128)
	require.Equal(t, 0, bb.Len())
	require.Equal(t, 128, bb.Cap())

	bb.B = append(bb.B, "hello"...)
	require.Equal(t, 5, bb.Len())
	require.Equal(t, "hello", bb.String())
	require.Equal(t, []byte("hello"), bb.Bytes())
}

func TestByteBuffer_ResetKeepsCapacity(t *testing.T) {
	bb := NewByteBuffer(64)
	bb.B = append(bb.B, make([]byte, 50)...)
	capBefore := bb.Cap()

	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.Equal(t, capBefore, bb.Cap())
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("no-op with spare capacity", func(t *testing.T) {
		bb := NewByteBuffer(64)
		capBefore := bb.Cap()
		bb.Grow(32)
		require.Equal(t, capBefore, bb.Cap())
	})

	t.Run("grows preserving content", func(t *testing.T) {
		bb := NewByteBuffer(8)
		bb.B = append(bb.B, "12345678"...)
		bb.Grow(1024)
		require.GreaterOrEqual(t, bb.Cap()-bb.Len(), 1024)
		require.Equal(t, "12345678", bb.String())
	})

	t.Run("large request grows by at least the request", func(t *testing.T) {
		bb := NewByteBuffer(8)
		huge := 5 * LineBufferDefaultSize
		bb.Grow(huge)
		require.GreaterOrEqual(t, bb.Cap(), huge)
	})
}

package pool

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(4)
	require.Equal(t, 0, bb.Len())
	require.Equal(t, 4, bb.Cap())

	n, err := bb.Write([]byte("cpu."))
	require.NoError(t, err)
	require.Equal(t, 4, n)

	_, err = bb.Write([]byte("usage"))
	require.NoError(t, err)
	require.Equal(t, "cpu.usage", string(bb.Bytes()))

	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.GreaterOrEqual(t, bb.Cap(), 9)
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("Sufficient capacity", func(t *testing.T) {
		bb := NewByteBuffer(100)
		bb.Grow(50)
		require.Equal(t, 100, bb.Cap())
	})

	t.Run("Small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(10)
		_, _ = bb.Write([]byte("0123456789"))
		bb.Grow(1)
		require.Equal(t, 10+ColumnBufferDefaultSize, bb.Cap())
		require.Equal(t, "0123456789", string(bb.Bytes()))
	})

	t.Run("Large buffer grows by a quarter", func(t *testing.T) {
		size := 8 * ColumnBufferDefaultSize
		bb := NewByteBuffer(size)
		bb.B = bb.B[:size]
		bb.Grow(1)
		require.Equal(t, size+size/4, bb.Cap())
	})

	t.Run("Request larger than growth step", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(ColumnBufferDefaultSize * 3)
		require.GreaterOrEqual(t, bb.Cap(), ColumnBufferDefaultSize*3)
	})
}

type errorWriter struct{}

var errWrite = errors.New("write failed")

func (errorWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(16)
	_, _ = bb.Write([]byte("records"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(7), n)
	require.Equal(t, "records", out.String())

	_, err = bb.WriteTo(errorWriter{})
	require.ErrorIs(t, err, errWrite)
}

func TestByteBufferPool(t *testing.T) {
	t.Run("Returned buffers are empty", func(t *testing.T) {
		bb := GetColumnBuffer()
		_, _ = bb.Write([]byte("data"))
		PutColumnBuffer(bb)

		again := GetColumnBuffer()
		require.Equal(t, 0, again.Len())
		PutColumnBuffer(again)
	})

	t.Run("Nil put is ignored", func(t *testing.T) {
		require.NotPanics(t, func() { PutColumnBuffer(nil) })
	})

	t.Run("Oversized buffers are dropped", func(t *testing.T) {
		p := NewByteBufferPool(8, 16)
		bb := p.Get()
		bb.Grow(64)
		p.Put(bb)

		fresh := p.Get()
		require.NotSame(t, bb, fresh)
		require.Equal(t, 8, fresh.Cap())
	})

	t.Run("Concurrent access", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				bb := GetColumnBuffer()
				bb.B = append(bb.B, byte(i))
				assert.Equal(t, 1, bb.Len())
				PutColumnBuffer(bb)
			}()
		}
		wg.Wait()
	})
}

func BenchmarkPool_GetWritePut(b *testing.B) {
	data := bytes.Repeat([]byte{0xC3}, 256)
	for b.Loop() {
		bb := GetColumnBuffer()
		_, _ = bb.Write(data)
		PutColumnBuffer(bb)
	}
}

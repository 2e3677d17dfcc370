package turbopfor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderNextWalksInOrder(t *testing.T) {
	r := NewReader([]uint32{2, 5, 9, 20})
	var got []uint32
	for {
		v, pos, ok := r.Next()
		if !ok {
			break
		}
		assert.Equal(t, len(got), pos)
		got = append(got, v)
	}
	assert.Equal(t, []uint32{2, 5, 9, 20}, got)
	_, _, ok := r.Next()
	assert.False(t, ok)
}

func TestReaderSkipToExactAndBetween(t *testing.T) {
	r := NewReader([]uint32{2, 5, 9, 20, 21})

	v, pos, ok := r.SkipTo(9)
	require.True(t, ok)
	assert.Equal(t, uint32(9), v)
	assert.Equal(t, 2, pos)

	v, pos, ok = r.SkipTo(10)
	require.True(t, ok)
	assert.Equal(t, uint32(20), v)
	assert.Equal(t, 3, pos)

	_, _, ok = r.SkipTo(1000)
	assert.False(t, ok)
}

func TestReaderSkipToBeforeStart(t *testing.T) {
	r := NewReader([]uint32{4, 8, 15})
	v, pos, ok := r.SkipTo(0)
	require.True(t, ok)
	assert.Equal(t, uint32(4), v)
	assert.Equal(t, 0, pos)
}

func TestReaderResetAndGet(t *testing.T) {
	r := NewReader([]uint32{1, 2, 3})
	r.Next()
	r.Next()
	r.Reset()
	assert.Equal(t, 0, r.Pos())

	v, ok := r.Get(2)
	require.True(t, ok)
	assert.Equal(t, uint32(3), v)

	_, ok = r.Get(-1)
	assert.False(t, ok)
	_, ok = r.Get(3)
	assert.False(t, ok)
}

func TestReaderLen(t *testing.T) {
	r := NewReader([]uint64{1, 2, 3, 4, 5})
	assert.Equal(t, 5, r.Len())
}

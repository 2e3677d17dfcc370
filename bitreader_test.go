package turbopfor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitReaderRoundTrip(t *testing.T) {
	values := []uint32{0, 3, 7, 1, 6, 2, 5, 4, 7, 0}
	for _, width := range []int{1, 3, 5, 8, 12, 17, 32} {
		w := newPackedBitWriter(width)
		masked := make([]uint32, len(values))
		for i, v := range values {
			mv := v & mask32(width)
			masked[i] = mv
			w.write(v)
		}
		payload := w.bytes(bytesForPackedBits(len(values), width))
		r := newBitReader(payload, width)
		for i, want := range masked {
			assert.Equal(t, want, r.read(), "width=%d idx=%d", width, i)
		}
	}
}

func TestMask32Boundaries(t *testing.T) {
	assert.Equal(t, uint32(0), mask32(0))
	assert.Equal(t, uint32(1), mask32(1))
	assert.Equal(t, uint32(0xff), mask32(8))
	assert.Equal(t, ^uint32(0), mask32(32))
}

func TestInterleavedBitReaderRoundTrip(t *testing.T) {
	// width 32 pins bits_used+width == 32 on every read, the exact boundary
	// of the reader's double-load branch; it must stay on the single-load
	// side of that comparison.
	blockSize := 16
	for _, width := range []int{1, 4, 9, 17, 30, 32} {
		values := make([]uint32, blockSize)
		for i := range values {
			values[i] = uint32(i*7+3) & mask32(width)
		}
		payload := packInterleaved(values, width, blockSize)
		var out [16]uint32
		readInterleavedLanesSet(payload, width, blockSize, out[:])
		require.Equal(t, values, out[:], "width=%d", width)
	}
}

func TestReadInterleavedLanesOrMerges(t *testing.T) {
	blockSize := 8
	width := 4
	values := []uint32{1, 2, 3, 4, 5, 6, 7, 8}
	payload := packInterleaved(values, width, blockSize)
	high := make([]uint32, blockSize)
	for i := range high {
		high[i] = uint32(i) << uint(width)
	}
	readInterleavedLanesOr(payload, width, blockSize, high)
	for i, v := range values {
		assert.Equal(t, (uint32(i)<<uint(width))|v, high[i])
	}
}

func TestLoadLEHandlesTailOverrun(t *testing.T) {
	buf := []byte{0xaa, 0xbb, 0xcc}
	got := loadLE32(buf, 1)
	assert.Equal(t, uint32(0x00ccbb), got)
}

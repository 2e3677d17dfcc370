package turbopfor

import "fmt"

// maxExceptions bounds the PFOR_VB exception scratch array: the exception
// count is stored in a single byte, so it can never exceed 255.
const maxExceptions = 256

// readExceptionValues decodes nExc PFOR_VB exception values from rest into
// dst, using whichever of the two encodings (raw 0xFF-escaped or varbyte)
// the leading byte signals. When nExc is zero it consumes nothing and does
// not touch rest at all — a real encoder emits no exception-value bytes for
// an empty list, and peeking at rest[0] in that case would risk reading into
// the next block's header.
func readExceptionValues[T Id](rest []byte, offset, nExc int, dst []uint64) (consumed int, err error) {
	if nExc == 0 {
		return 0, nil
	}
	if len(rest) >= 1 && rest[0] == 0xff {
		width := idByteWidth[T]()
		need := 1 + nExc*width
		if len(rest) < need {
			return 0, malformed(offset, "truncated raw PFOR_VB exceptions")
		}
		raw := rest[1:]
		for k := 0; k < nExc; k++ {
			dst[k] = loadLE(raw, k*width, width)
		}
		return need, nil
	}
	off := 0
	for k := 0; k < nExc; k++ {
		v, n, err := decodeVB(rest[off:], offset+off)
		if err != nil {
			return 0, err
		}
		dst[k] = v
		off += n
	}
	return off, nil
}

// decodePForVB decodes a contiguous PFOR_VB block.
func decodePForVB[T Id](payload []byte, offset int, bitWidth, num int, prev T, out []T) (consumed int, next T, err error) {
	if len(payload) < 1 {
		return 0, prev, malformed(offset, "truncated PFOR_VB exception count byte")
	}
	nExc := int(payload[0])
	rest := payload[1:]

	baseNeed := bytesForPackedBits(num, bitWidth)
	if len(rest) < baseNeed {
		return 0, prev, malformed(offset+1, "truncated PFOR_VB base values")
	}
	br := newBitReader(rest, bitWidth)
	for i := 0; i < num; i++ {
		out[i] = T(br.read())
	}
	rest = rest[baseNeed:]
	excOffset := offset + 1 + baseNeed

	var scratch [maxExceptions]uint64
	excConsumed, err := readExceptionValues[T](rest, excOffset, nExc, scratch[:nExc])
	if err != nil {
		return 0, prev, err
	}
	rest = rest[excConsumed:]

	if len(rest) < nExc {
		return 0, prev, malformed(excOffset+excConsumed, "truncated PFOR_VB exception indexes")
	}
	if err := applyPForVBExceptions(out[:num], rest[:nExc], scratch[:nExc], bitWidth, num, excOffset+excConsumed); err != nil {
		return 0, prev, err
	}

	for i := 0; i < num; i++ {
		prev = prev + out[i] + 1
		out[i] = prev
	}

	return 1 + baseNeed + excConsumed + nExc, prev, nil
}

// decodePForVBInterleaved decodes a full-size PFOR_VB block whose base
// values are striped across the four-lane layout.
func decodePForVBInterleaved[T Id](payload []byte, offset int, bitWidth, blockSize int, prev T, out []T) (consumed int, next T, err error) {
	// Each lane holds whole 32-bit words interleaveStride bytes apart, so the
	// base region runs to the end of the last lane's last word.
	baseNeed := interleaveStride * ((blockSize/interleaveLanes*bitWidth + 31) / 32)
	if len(payload) < 1+baseNeed {
		return 0, prev, malformed(offset, "truncated interleaved PFOR_VB header")
	}
	nExc := int(payload[0])
	rest := payload[1:]
	readInterleavedLanesSet(rest, bitWidth, blockSize, out)
	rest = rest[baseNeed:]
	excOffset := offset + 1 + baseNeed

	var scratch [maxExceptions]uint64
	excConsumed, err := readExceptionValues[T](rest, excOffset, nExc, scratch[:nExc])
	if err != nil {
		return 0, prev, err
	}
	rest = rest[excConsumed:]

	if len(rest) < nExc {
		return 0, prev, malformed(excOffset+excConsumed, "truncated interleaved PFOR_VB exception indexes")
	}
	if err := applyPForVBExceptions(out[:blockSize], rest[:nExc], scratch[:nExc], bitWidth, blockSize, excOffset+excConsumed); err != nil {
		return 0, prev, err
	}

	for i := 0; i < blockSize; i++ {
		prev = prev + out[i] + 1
		out[i] = prev
	}

	return 1 + baseNeed + excConsumed + nExc, prev, nil
}

func applyPForVBExceptions[T Id](out []T, indexes []byte, values []uint64, bitWidth, num, offset int) error {
	for k, idx := range indexes {
		if int(idx) >= num {
			return malformed(offset+k, fmt.Sprintf("exception index %d out of range (num=%d)", idx, num))
		}
		out[idx] |= T(values[k]) << uint(bitWidth)
	}
	return nil
}

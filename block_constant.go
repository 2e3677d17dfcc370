package turbopfor

// decodeConstant decodes a CONSTANT block: a single bitWidth-bit value v is
// added to prev, plus one, num times in a row. payload starts immediately
// after the block's type|width header byte; offset is that header byte's
// absolute position, for error messages.
func decodeConstant[T Id](payload []byte, offset int, bitWidth, num int, prev T, out []T) (consumed int, next T, err error) {
	nBytes := (bitWidth + 7) / 8
	if len(payload) < nBytes {
		return 0, prev, malformed(offset, "truncated CONSTANT value")
	}
	v := T(loadLE(payload, 0, nBytes)) & maskT[T](bitWidth)
	for i := 0; i < num; i++ {
		prev = prev + v + 1
		out[i] = prev
	}
	return nBytes, prev, nil
}

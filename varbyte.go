package turbopfor

import "encoding/binary"

// decodeBaseval decodes the varbyte-ish encoding used once per sequence,
// for the seed identifier. offset is the absolute position of in[0] in the
// caller's buffer, carried through only so a returned error can name it.
func decodeBaseval(in []byte, offset int) (value uint64, consumed int, err error) {
	if len(in) < 1 {
		return 0, 0, malformed(offset, "truncated baseval")
	}
	x := in[0]
	switch {
	case x < 128:
		return uint64(x), 1, nil
	case x < 192:
		if len(in) < 2 {
			return 0, 0, malformed(offset, "truncated 2-byte baseval")
		}
		v := (uint32(x)<<8 | uint32(in[1])) & 0x3fff
		return uint64(v), 2, nil
	case x < 224:
		if len(in) < 3 {
			return 0, 0, malformed(offset, "truncated 3-byte baseval")
		}
		// The third byte and second byte are swapped relative to the
		// natural big-endian-ish reading; this is deliberate and must be
		// preserved bit-exactly to match reference encoders.
		v := (uint32(x)<<16 | uint32(in[2])<<8 | uint32(in[1])) & 0x1fffff
		return uint64(v), 3, nil
	default:
		return 0, 0, malformed(offset, "reserved baseval prefix")
	}
}

// decodeVB decodes a single PFOR_VB exception value. offset is the
// absolute position of in[0], carried through only for error messages.
func decodeVB(in []byte, offset int) (value uint64, consumed int, err error) {
	if len(in) < 1 {
		return 0, 0, malformed(offset, "truncated vb value")
	}
	x := in[0]
	switch {
	case x <= 176:
		return uint64(x), 1, nil
	case x <= 240:
		if len(in) < 2 {
			return 0, 0, malformed(offset, "truncated 2-byte vb value")
		}
		v := (uint32(x-177)<<8 | uint32(in[1])) + 177
		return uint64(v), 2, nil
	case x <= 248:
		if len(in) < 3 {
			return 0, 0, malformed(offset, "truncated 3-byte vb value")
		}
		lo := uint32(in[1]) | uint32(in[2])<<8
		v := (uint32(x-241)<<16 | lo) + 16561
		return uint64(v), 3, nil
	case x == 249:
		if len(in) < 4 {
			return 0, 0, malformed(offset, "truncated 4-byte vb value")
		}
		v := uint32(in[1]) | uint32(in[2])<<8 | uint32(in[3])<<16
		return uint64(v), 4, nil
	case x == 250:
		if len(in) < 5 {
			return 0, 0, malformed(offset, "truncated 5-byte vb value")
		}
		v := binary.LittleEndian.Uint32(in[1:5])
		return uint64(v), 5, nil
	default:
		return 0, 0, malformed(offset, "reserved vb prefix")
	}
}

package turbopfor

import "fmt"

// Decode reconstructs num identifiers from in into out, following the
// delta-plus-one PFor-on-blocks format: a varbyte-encoded seed followed by
// fixed-size blocks of at most blockSize identifiers each, dispatched by
// per-block header byte. It returns the number of input bytes consumed.
//
// out must have length at least num. blockSize and interleaved must match
// whatever the encoder that produced in used; neither is recoverable from
// the byte stream itself. When interleaved is true, blockSize must be a
// positive multiple of 4 — the width of the four-lane layout — or Decode
// returns an error wrapping ErrInvalidArgument without reading in at all.
//
// Only the final, possibly-short block of a sequence ever uses the
// contiguous layout when interleaved is requested; every full-size block
// uses the interleaved one, matching the decision the reference encoder
// family makes when producing an interleaved stream.
func Decode[T Id](in []byte, num int, blockSize int, interleaved bool, out []T) (consumed int, err error) {
	if num == 0 {
		return 0, nil
	}
	if len(out) < num {
		panic(fmt.Sprintf("turbopfor: out has length %d, need at least %d", len(out), num))
	}
	if blockSize <= 0 {
		return 0, fmt.Errorf("%w: blockSize %d must be positive", ErrInvalidArgument, blockSize)
	}
	if interleaved && blockSize%interleaveLanes != 0 {
		return 0, fmt.Errorf("%w: blockSize %d must be a multiple of %d for interleaved decoding", ErrInvalidArgument, blockSize, interleaveLanes)
	}

	seed, n, err := decodeBaseval(in, 0)
	if err != nil {
		return 0, err
	}
	out[0] = T(seed)
	cursor := n
	prev := out[0]
	written := 1

	for written < num {
		numThisBlock := num - written
		if numThisBlock > blockSize {
			numThisBlock = blockSize
		}
		if cursor >= len(in) {
			return 0, malformed(cursor, "truncated block header")
		}

		header := in[cursor]
		blockType := BlockType(header >> blockHeaderTypeShift)
		bitWidth := int(header & blockHeaderWidthMask)
		payloadOffset := cursor + 1
		payload := in[payloadOffset:]
		useInterleaved := interleaved && numThisBlock == blockSize
		dst := out[written : written+numThisBlock]

		var payloadConsumed int
		var next T
		switch blockType {
		case BlockConstant:
			payloadConsumed, next, err = decodeConstant(payload, payloadOffset, bitWidth, numThisBlock, prev, dst)
		case BlockFOR:
			if useInterleaved {
				payloadConsumed, next, err = decodeFORInterleaved(payload, payloadOffset, bitWidth, blockSize, prev, dst)
			} else {
				payloadConsumed, next, err = decodeFOR(payload, payloadOffset, bitWidth, numThisBlock, prev, dst)
			}
		case BlockPForBitmap:
			if useInterleaved {
				payloadConsumed, next, err = decodePForBitmapInterleaved(payload, payloadOffset, bitWidth, blockSize, prev, dst)
			} else {
				payloadConsumed, next, err = decodePForBitmap(payload, payloadOffset, bitWidth, numThisBlock, prev, dst)
			}
		case BlockPForVB:
			if useInterleaved {
				payloadConsumed, next, err = decodePForVBInterleaved(payload, payloadOffset, bitWidth, blockSize, prev, dst)
			} else {
				payloadConsumed, next, err = decodePForVB(payload, payloadOffset, bitWidth, numThisBlock, prev, dst)
			}
		}
		if err != nil {
			return 0, err
		}

		cursor = payloadOffset + payloadConsumed
		prev = next
		written += numThisBlock
	}

	return cursor, nil
}

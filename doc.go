// Package turbopfor implements a decoder for the delta-plus-one,
// PFor-on-blocks variant of the TurboPFor integer compression format used by
// inverted indexes to store sorted document identifier lists compactly.
//
// The format encodes a strictly increasing sequence of unsigned identifiers
// as a single varbyte-encoded seed value followed by fixed-size blocks. Each
// block carries its own bit width and one of four block types (FOR, PFOR_VB,
// PFOR_BITMAP, CONSTANT); within a block, base values are either packed
// contiguously or striped across four interleaved lanes for SIMD-friendly
// unpacking. This package decodes both layouts, but always does so
// scalarly — vectorization is an implementation freedom the format leaves
// open, not something this decoder attempts.
//
// Decode is the package's only decoding entry point. Block size and interleave
// layout are agreed out of band between whatever produced the byte stream
// and this decoder; neither is self-describing in the bytes themselves.
// This package implements only the decoder; encoding is out of scope.
package turbopfor

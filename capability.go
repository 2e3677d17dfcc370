package turbopfor

import "golang.org/x/sys/cpu"

// PreferInterleaved reports whether the running CPU has wide-load SIMD
// support (SSE2 on amd64, ASIMD on arm64), which is what makes four-way
// interleaved blocks worth producing in the first place.
//
// Decode in this package always runs the scalar algorithm described by the
// format regardless of the answer here — this package never vectorizes.
// The probe exists for callers deciding whether to ask an upstream encoder
// for interleaved-laid-out blocks, or forwarding the same signal to one.
func PreferInterleaved() bool {
	return cpu.X86.HasSSE2 || cpu.ARM64.HasASIMD
}

// Package simd detects the CPU's AES capabilities and provides the bulk
// kernels of t1ha0's AES-accelerated bodies.
//
// # Supported Platforms
//
//   - x86-64: AES-NI, optionally with AVX or AVX2
//   - everything else: portable Go
//
// Detection runs once at package init using golang.org/x/sys/cpu. The
// T1HA_SIMD environment variable (portable, aes, avx, avx2) narrows the
// choice, e.g. T1HA_SIMD=portable disables the AES bodies entirely. An
// override naming an ISA the CPU lacks is ignored. Build with -tags noasm to
// force the generic kernels and the portable ISA.
//
// # Kernels
//
// BlocksA and BlocksB fold everything but the last len&15 bytes of an input
// into two 64-bit words. The generic versions run a software AES round and
// work everywhere; on amd64 they are replaced by AESENC/AESDEC assembly when
// the CPU has AES-NI. Both always produce identical results.
package simd

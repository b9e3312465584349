package t1ha0

import (
	"github.com/hupe1980/t1ha/internal/memory"
	"github.com/hupe1980/t1ha/internal/mix"
	"github.com/hupe1980/t1ha/internal/simd"
)

// SumAES hashes data with seed using the AES-NI body. It runs on any CPU;
// without AES-NI the rounds are computed in software, which is correct but
// much slower than Sum.
func SumAES(data []byte, seed uint64) uint64 {
	return sumAES(simd.BlocksA, data, seed)
}

// SumAESAVX is the AVX build of the AES-NI body. Both builds share one
// algorithm and produce identical digests.
func SumAESAVX(data []byte, seed uint64) uint64 {
	return sumAES(simd.BlocksA, data, seed)
}

// SumAESAVX2 hashes data with seed using the AVX2-era AES body, which chains
// eight rounds per 128-byte block. Its digests differ from SumAES.
func SumAESAVX2(data []byte, seed uint64) uint64 {
	return sumAES(simd.BlocksB, data, seed)
}

func sumAES(kernel simd.Kernel, data []byte, seed uint64) uint64 {
	n := len(data)
	a, b := seed, uint64(n)
	off := 0

	if n > 32 {
		a, b = kernel(data, seed)
		off = n &^ 15
	}

	return mix.TailAB[memory.LittleEndianUnaligned[uint64]](a, b, data, off, n-off)
}

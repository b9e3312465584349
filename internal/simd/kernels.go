package simd

import (
	"encoding/binary"

	"github.com/hupe1980/t1ha/internal/mix"
)

// Kernel folds the bulk of data into two words. Callers guarantee
// len(data) > 32; the last len(data)&15 bytes are left for the tail.
type Kernel func(data []byte, seed uint64) (a, b uint64)

// Kernel function pointers, set once at init. Generic implementations are
// the default; platform init replaces them with assembly when available.
var (
	kernelBlocksA Kernel = BlocksAGeneric
	kernelBlocksB Kernel = BlocksBGeneric
)

// BlocksA runs the bulk loop of the AES-NI and AVX bodies.
func BlocksA(data []byte, seed uint64) (a, b uint64) {
	return kernelBlocksA(data, seed)
}

// BlocksB runs the bulk loop of the AVX2 body.
func BlocksB(data []byte, seed uint64) (a, b uint64) {
	return kernelBlocksB(data, seed)
}

func load(p []byte, off int) Vec {
	return Vec{
		Lo: binary.LittleEndian.Uint64(p[off:]),
		Hi: binary.LittleEndian.Uint64(p[off+8:]),
	}
}

// fold collapses the two lanes of state into the tail accumulators.
func fold(x, y Vec) (a, b uint64) {
	x = Dec(x, Enc(y, x)).Add(y)
	return x.Lo, x.Hi
}

// BlocksAGeneric is the portable BlocksA.
func BlocksAGeneric(data []byte, seed uint64) (a, b uint64) {
	n := len(data)
	x := Vec{Lo: uint64(n), Hi: seed}
	y := Enc(x, Vec{Lo: mix.Prime6, Hi: mix.Prime5})
	off := 0

	for ; off+128 <= n; off += 128 {
		v0, v1 := load(data, off), load(data, off+16)
		v2, v3 := load(data, off+32), load(data, off+48)
		v4, v5 := load(data, off+64), load(data, off+80)
		v6, v7 := load(data, off+96), load(data, off+112)

		v0y := Enc(v0, y)
		v2x6 := Enc(v2, x.Xor(v6))
		v45x67 := Enc(v4, v5).Xor(v6.Add(v7))
		v0y7x1 := Dec(v7.Sub(v0y), v1)
		v2x6x3 := Enc(v2x6, v3)

		x = Enc(v45x67, x.Add(y))
		y = Enc(v2x6x3, v0y7x1.Xor(v5))
	}

	if n&64 != 0 {
		x, y = step32(data, off, x, y)
		x, y = step32(data, off+32, x, y)
		off += 64
	}
	if n&32 != 0 {
		x, y = step32(data, off, x, y)
		off += 32
	}
	if n&16 != 0 {
		y = x.Add(y)
		x = Dec(x, load(data, off))
	}

	return fold(x, y)
}

// BlocksBGeneric is the portable BlocksB.
func BlocksBGeneric(data []byte, seed uint64) (a, b uint64) {
	n := len(data)
	x := Vec{Lo: uint64(n), Hi: seed}
	y := Enc(x, Vec{Lo: mix.Prime1, Hi: mix.Prime0})
	end := n &^ 15
	off := 0

	if n&16 != 0 {
		x = x.Add(load(data, 0))
		y = Enc(x, y)
		off = 16
	}

	salt := y
	for ; off+7*16 < end; off += 128 {
		t := Enc(load(data, off), salt)
		for i := 1; i < 8; i++ {
			t = Dec(t, load(data, off+16*i))
		}
		salt = salt.Add(Vec{Lo: mix.Prime6, Hi: mix.Prime5})
		t = Enc(x, t)
		x = y.Add(x)
		y = t
	}

	for ; off < end; off += 32 {
		x, y = step32(data, off, x, y)
	}

	return fold(x, y)
}

// step32 absorbs one 32-byte block with a pair of decryption rounds.
func step32(data []byte, off int, x, y Vec) (Vec, Vec) {
	v0y := y.Add(load(data, off))
	v1x := x.Sub(load(data, off+16))
	return Dec(x, v0y), Dec(y, v1x)
}

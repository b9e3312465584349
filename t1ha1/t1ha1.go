// Package t1ha1 implements the portable 64-bit t1ha1 hash.
//
// t1ha1 consumes 32-byte blocks into four 64-bit accumulators and finishes
// with a deliberately cheap avalanche. It is the baseline the other
// generations are measured against and the portable fallback of t1ha0 on
// 64-bit hosts. Digests are stable across platforms for a given byte order.
package t1ha1

import (
	"golang.org/x/sys/cpu"

	"github.com/hupe1980/t1ha/internal/memory"
	"github.com/hupe1980/t1ha/internal/mix"
)

// SumLE hashes data with seed, reading words as little-endian.
func SumLE(data []byte, seed uint64) uint64 {
	if memory.Aligned[uint64](data) {
		return sum[memory.LittleEndianAligned[uint64]](data, seed)
	}
	return sum[memory.LittleEndianUnaligned[uint64]](data, seed)
}

// SumBE hashes data with seed, reading words as big-endian.
func SumBE(data []byte, seed uint64) uint64 {
	if memory.Aligned[uint64](data) {
		return sum[memory.BigEndianAligned[uint64]](data, seed)
	}
	return sum[memory.BigEndianUnaligned[uint64]](data, seed)
}

// Sum hashes data with seed in the host byte order.
func Sum(data []byte, seed uint64) uint64 {
	if cpu.IsBigEndian {
		return SumBE(data, seed)
	}
	return SumLE(data, seed)
}

func sum[M memory.Model[uint64]](data []byte, seed uint64) uint64 {
	var m M

	n := len(data)
	a := seed
	b := uint64(n)
	off := 0

	if n > 32 {
		c := mix.Rot64(uint64(n), 17) + seed
		d := uint64(n) ^ mix.Rot64(seed, 17)

		for ; off < n-31; off += 32 {
			w0 := m.Fetch(data, off)
			w1 := m.Fetch(data, off+8)
			w2 := m.Fetch(data, off+16)
			w3 := m.Fetch(data, off+24)

			d02 := w0 ^ mix.Rot64(w2+d, 17)
			c13 := w1 ^ mix.Rot64(w3+c, 17)
			d -= b ^ mix.Rot64(w1, 31)
			c += a ^ mix.Rot64(w0, 41)
			b ^= mix.Prime0 * (c13 + w2)
			a ^= mix.Prime1 * (d02 + w3)
		}

		a ^= mix.Prime6 * (mix.Rot64(c, 17) + d)
		b ^= mix.Prime5 * (c + mix.Rot64(d, 17))
	}

	rest := n - off
	switch {
	case rest > 24:
		b += mix.Mux64(m.Fetch(data, off), mix.Prime4)
		a += mix.Mux64(m.Fetch(data, off+8), mix.Prime3)
		b += mix.Mux64(m.Fetch(data, off+16), mix.Prime2)
		a += mix.Mux64(m.Tail(data, off+24, rest), mix.Prime1)
	case rest > 16:
		a += mix.Mux64(m.Fetch(data, off), mix.Prime3)
		b += mix.Mux64(m.Fetch(data, off+8), mix.Prime2)
		a += mix.Mux64(m.Tail(data, off+16, rest), mix.Prime1)
	case rest > 8:
		b += mix.Mux64(m.Fetch(data, off), mix.Prime2)
		a += mix.Mux64(m.Tail(data, off+8, rest), mix.Prime1)
	case rest > 0:
		a += mix.Mux64(m.Tail(data, off, rest), mix.Prime1)
	}

	return mix.FinalWeak(a, b)
}

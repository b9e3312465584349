package t1ha0

import (
	"golang.org/x/sys/cpu"

	"github.com/hupe1980/t1ha/internal/memory"
	"github.com/hupe1980/t1ha/internal/mix"
)

// Sum32LE hashes data with seed using the 32-bit body and little-endian
// word reads. The digest is still 64 bits wide.
func Sum32LE(data []byte, seed uint64) uint64 {
	if memory.Aligned[uint32](data) {
		return sum32[memory.LittleEndianAligned[uint32]](data, seed)
	}
	return sum32[memory.LittleEndianUnaligned[uint32]](data, seed)
}

// Sum32BE is Sum32LE with big-endian word reads.
func Sum32BE(data []byte, seed uint64) uint64 {
	if memory.Aligned[uint32](data) {
		return sum32[memory.BigEndianAligned[uint32]](data, seed)
	}
	return sum32[memory.BigEndianUnaligned[uint32]](data, seed)
}

// Sum32 runs the 32-bit body in the host byte order.
func Sum32(data []byte, seed uint64) uint64 {
	if cpu.IsBigEndian {
		return Sum32BE(data, seed)
	}
	return Sum32LE(data, seed)
}

func sum32[M memory.Model[uint32]](data []byte, seed uint64) uint64 {
	var m M

	n := len(data)
	a := mix.Rot32(uint32(n), 17) + uint32(seed)
	b := uint32(n) ^ uint32(seed>>32)
	off := 0

	if n > 16 {
		c := ^a
		d := mix.Rot32(b, 5)

		for ; off < n-15; off += 16 {
			w0 := m.Fetch(data, off)
			w1 := m.Fetch(data, off+4)
			w2 := m.Fetch(data, off+8)
			w3 := m.Fetch(data, off+12)

			d13 := w1 + mix.Rot32(w3+d, 17)
			c02 := w0 ^ mix.Rot32(w2+c, 11)
			d ^= mix.Rot32(a+w0, 3)
			c ^= mix.Rot32(b+w1, 7)
			b = mix.Prime32x1 * (c02 + w3)
			a = mix.Prime32x0 * (d13 ^ w2)
		}

		c += a
		d += b
		a ^= mix.Prime32x6 * (mix.Rot32(c, 16) + d)
		b ^= mix.Prime32x5 * (c + mix.Rot32(d, 16))
	}

	rest := n - off
	switch {
	case rest > 12:
		mix.Mixup32(&a, &b, m.Fetch(data, off), mix.Prime32x4)
		mix.Mixup32(&b, &a, m.Fetch(data, off+4), mix.Prime32x3)
		mix.Mixup32(&a, &b, m.Fetch(data, off+8), mix.Prime32x2)
		mix.Mixup32(&b, &a, m.Tail(data, off+12, rest), mix.Prime32x1)
	case rest > 8:
		mix.Mixup32(&b, &a, m.Fetch(data, off), mix.Prime32x3)
		mix.Mixup32(&a, &b, m.Fetch(data, off+4), mix.Prime32x2)
		mix.Mixup32(&b, &a, m.Tail(data, off+8, rest), mix.Prime32x1)
	case rest > 4:
		mix.Mixup32(&a, &b, m.Fetch(data, off), mix.Prime32x2)
		mix.Mixup32(&b, &a, m.Tail(data, off+4, rest), mix.Prime32x1)
	case rest > 0:
		mix.Mixup32(&b, &a, m.Tail(data, off, rest), mix.Prime32x1)
	}

	return mix.Final32(a, b)
}

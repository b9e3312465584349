// Package t1ha2 implements t1ha2, the t1ha generation with full avalanche.
//
// t1ha2 produces 64- or 128-bit digests, either in one shot (Sum64, Sum128)
// or incrementally through a Hasher. Words are always read little-endian, so
// digests are identical on every platform.
//
// The one-shot and incremental forms are seeded differently and are two
// distinct functions: Sum64(data, seed) does not equal the Hasher digest of
// the same data. Use SumStream64/SumStream128 for a one-call digest that
// matches a Hasher.
//
// None of these are cryptographic hashes; do not use them as MACs.
package t1ha2

import (
	"encoding/binary"
	"fmt"

	"github.com/hupe1980/t1ha/internal/memory"
	"github.com/hupe1980/t1ha/internal/mix"
)

// Uint128 is a 128-bit digest.
type Uint128 struct {
	Hi, Lo uint64
}

// Bytes returns the digest in big-endian order, Hi first.
func (u Uint128) Bytes() [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], u.Hi)
	binary.BigEndian.PutUint64(b[8:], u.Lo)
	return b
}

// String returns the digest as 32 hex digits.
func (u Uint128) String() string {
	return fmt.Sprintf("%016x%016x", u.Hi, u.Lo)
}

// Sum64 returns the one-shot 64-bit digest of data.
func Sum64(data []byte, seed uint64) uint64 {
	if memory.Aligned[uint64](data) {
		return sum64[memory.LittleEndianAligned[uint64]](data, seed)
	}
	return sum64[memory.LittleEndianUnaligned[uint64]](data, seed)
}

// Sum128 returns the one-shot 128-bit digest of data. Its low half is not
// Sum64.
func Sum128(data []byte, seed uint64) Uint128 {
	if memory.Aligned[uint64](data) {
		return sum128[memory.LittleEndianAligned[uint64]](data, seed)
	}
	return sum128[memory.LittleEndianUnaligned[uint64]](data, seed)
}

// SumStream64 returns what a Hasher seeded with (seedX, seedY) yields after
// writing data.
func SumStream64(data []byte, seedX, seedY uint64) uint64 {
	h := New(seedX, seedY)
	h.Update(data)
	return h.Finish()
}

// SumStream128 is SumStream64 with a 128-bit digest.
func SumStream128(data []byte, seedX, seedY uint64) Uint128 {
	h := New(seedX, seedY)
	h.Update(data)
	return h.Finish128()
}

func sum64[M memory.Model[uint64]](data []byte, seed uint64) uint64 {
	var s state
	n := len(data)
	s.initAB(seed, uint64(n))

	off := 0
	if n > 32 {
		s.initCD(seed, uint64(n))
		off = loop[M](&s, data)
		s.squash()
	}

	return mix.TailAB[M](s.a, s.b, data, off, n-off)
}

func sum128[M memory.Model[uint64]](data []byte, seed uint64) Uint128 {
	var s state
	n := len(data)
	s.initAB(seed, uint64(n))
	s.initCD(seed, uint64(n))

	off := 0
	if n > 32 {
		off = loop[M](&s, data)
	}

	return tailABCD[M](&s, data, off, n-off)
}

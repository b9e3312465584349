package t1ha2

import (
	"github.com/hupe1980/t1ha/internal/memory"
	"github.com/hupe1980/t1ha/internal/mix"
)

// BlockSize is the number of bytes absorbed per block step.
const BlockSize = 32

type state struct {
	a, b, c, d uint64
}

func (s *state) initAB(x, y uint64) {
	s.a = x
	s.b = y
}

func (s *state) initCD(x, y uint64) {
	s.c = mix.Rot64(y, 23) + ^x
	s.d = ^y + mix.Rot64(x, 19)
}

// squash folds c and d into a and b ahead of the 64-bit tail.
func (s *state) squash() {
	s.a ^= mix.Prime6 * (s.c + mix.Rot64(s.d, 23))
	s.b ^= mix.Prime5 * (mix.Rot64(s.c, 19) + s.d)
}

func update[M memory.Model[uint64]](s *state, p []byte, off int) {
	var m M
	w0 := m.Fetch(p, off)
	w1 := m.Fetch(p, off+8)
	w2 := m.Fetch(p, off+16)
	w3 := m.Fetch(p, off+24)

	d02 := w0 + mix.Rot64(w2+s.d, 56)
	c13 := w1 + mix.Rot64(w3+s.c, 19)
	s.d ^= s.b + mix.Rot64(w1, 38)
	s.c ^= s.a + mix.Rot64(w0, 57)
	s.b ^= mix.Prime6 * (c13 + w2)
	s.a ^= mix.Prime5 * (d02 + w3)
}

// loop runs whole blocks while more than 31 bytes remain and returns the
// offset of the first unconsumed byte.
func loop[M memory.Model[uint64]](s *state, p []byte) int {
	off := 0
	for ; off < len(p)-31; off += BlockSize {
		update[M](s, p, off)
	}
	return off
}

func tailABCD[M memory.Model[uint64]](s *state, p []byte, off, n int) Uint128 {
	var m M

	switch {
	case n > 24:
		mix.Mixup64(&s.a, &s.d, m.Fetch(p, off), mix.Prime4)
		mix.Mixup64(&s.b, &s.a, m.Fetch(p, off+8), mix.Prime3)
		mix.Mixup64(&s.c, &s.b, m.Fetch(p, off+16), mix.Prime2)
		mix.Mixup64(&s.d, &s.c, m.Tail(p, off+24, n), mix.Prime1)
	case n > 16:
		mix.Mixup64(&s.b, &s.a, m.Fetch(p, off), mix.Prime3)
		mix.Mixup64(&s.c, &s.b, m.Fetch(p, off+8), mix.Prime2)
		mix.Mixup64(&s.d, &s.c, m.Tail(p, off+16, n), mix.Prime1)
	case n > 8:
		mix.Mixup64(&s.c, &s.b, m.Fetch(p, off), mix.Prime2)
		mix.Mixup64(&s.d, &s.c, m.Tail(p, off+8, n), mix.Prime1)
	case n > 0:
		mix.Mixup64(&s.d, &s.c, m.Tail(p, off, n), mix.Prime1)
	}

	return s.final128()
}

func (s *state) final128() Uint128 {
	mix.Mixup64(&s.a, &s.b, mix.Rot64(s.c, 41)^s.d, mix.Prime0)
	mix.Mixup64(&s.b, &s.c, mix.Rot64(s.d, 23)^s.a, mix.Prime6)
	mix.Mixup64(&s.c, &s.d, mix.Rot64(s.a, 19)^s.b, mix.Prime5)
	mix.Mixup64(&s.d, &s.a, mix.Rot64(s.b, 31)^s.c, mix.Prime4)
	return Uint128{Hi: s.c + s.d, Lo: s.a ^ s.b}
}

package mix

import "github.com/hupe1980/t1ha/internal/memory"

// TailAB absorbs the final n < 32 bytes of p starting at off into the two
// accumulators and returns Final64 of them. p may extend past off+n; the
// extra bytes are padding and never influence the result.
func TailAB[M memory.Model[uint64]](a, b uint64, p []byte, off, n int) uint64 {
	var m M

	switch {
	case n > 24:
		Mixup64(&a, &b, m.Fetch(p, off), Prime4)
		Mixup64(&b, &a, m.Fetch(p, off+8), Prime3)
		Mixup64(&a, &b, m.Fetch(p, off+16), Prime2)
		Mixup64(&b, &a, m.Tail(p, off+24, n), Prime1)
	case n > 16:
		Mixup64(&b, &a, m.Fetch(p, off), Prime3)
		Mixup64(&a, &b, m.Fetch(p, off+8), Prime2)
		Mixup64(&b, &a, m.Tail(p, off+16, n), Prime1)
	case n > 8:
		Mixup64(&a, &b, m.Fetch(p, off), Prime2)
		Mixup64(&b, &a, m.Tail(p, off+8, n), Prime1)
	case n > 0:
		Mixup64(&b, &a, m.Tail(p, off, n), Prime1)
	}

	return Final64(a, b)
}

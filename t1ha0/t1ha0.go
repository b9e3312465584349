// Package t1ha0 implements t1ha0, the fastest t1ha generation.
//
// t1ha0 is not one function but a family of bodies with different digests:
//
//   - SumAESAVX2: AES-NI body tuned for AVX2-era CPUs (variant B)
//   - SumAESAVX, SumAES: AES-NI body (variant A)
//   - t1ha1.Sum: the portable 64-bit body
//   - Sum32: the portable 32-bit body, for 32-bit hosts
//
// Sum picks the first body the CPU supports, in that order, the first time
// it is called. Its digests are therefore only stable on one kind of
// machine; persist digests of an explicit body instead.
package t1ha0

import (
	"math/bits"
	"sync/atomic"

	"github.com/hupe1980/t1ha/internal/simd"
	"github.com/hupe1980/t1ha/t1ha1"
)

// Body is one concrete t1ha0 implementation.
type Body struct {
	name  string
	block int
	sum   func(data []byte, seed uint64) uint64
}

// Name identifies the body, e.g. "t1ha0-aes-avx2".
func (b *Body) Name() string { return b.name }

// BlockSize is the number of bytes the body's bulk loop consumes per step.
func (b *Body) BlockSize() int { return b.block }

// Sum hashes data with seed using this body.
func (b *Body) Sum(data []byte, seed uint64) uint64 { return b.sum(data, seed) }

var (
	bodyAESAVX2 = &Body{name: "t1ha0-aes-avx2", block: 128, sum: SumAESAVX2}
	bodyAESAVX  = &Body{name: "t1ha0-aes-avx", block: 128, sum: SumAESAVX}
	bodyAES     = &Body{name: "t1ha0-aes", block: 128, sum: SumAES}
	body64      = &Body{name: "t1ha1", block: 32, sum: t1ha1.Sum}
	body32      = &Body{name: "t1ha0-32", block: 16, sum: Sum32}
)

var resolved atomic.Pointer[Body]

// Sum hashes data with seed using the best body for this CPU.
func Sum(data []byte, seed uint64) uint64 {
	return resolve().sum(data, seed)
}

// Implementation returns the body Sum dispatches to.
func Implementation() *Body {
	return resolve()
}

// Implementations lists the bodies usable on this CPU, best first. The
// portable body is always last.
func Implementations() []*Body {
	var out []*Body
	for _, isa := range []simd.ISA{simd.AVX2, simd.AVX, simd.AES} {
		if simd.Available(isa) {
			out = append(out, bodyFor(isa))
		}
	}
	return append(out, portable())
}

// resolve returns the cached body, selecting it on first use. Concurrent
// first callers may all select; they store the same body.
func resolve() *Body {
	if b := resolved.Load(); b != nil {
		return b
	}
	resolved.CompareAndSwap(nil, bodyFor(simd.ActiveISA()))
	return resolved.Load()
}

func bodyFor(isa simd.ISA) *Body {
	switch isa {
	case simd.AVX2:
		return bodyAESAVX2
	case simd.AVX:
		return bodyAESAVX
	case simd.AES:
		return bodyAES
	default:
		return portable()
	}
}

func portable() *Body {
	if bits.UintSize == 64 {
		return body64
	}
	return body32
}

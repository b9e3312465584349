package simd

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ramp(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func TestBlocksKnownValues(t *testing.T) {
	tests := []struct {
		n        int
		aLo, aHi uint64
		bLo, bHi uint64
	}{
		{33, 0xac1bb9ca51fed331, 0xcea3c371acc3590a, 0xaef70bdd414ba9c2, 0x62d11d0439a69312},
		{250, 0x4f9a440e49fd7f82, 0xcae6285067da335c, 0xfccdec105cce7a91, 0x7b272251eb18993c},
		{500, 0x22082cd81e233a70, 0xd4cf6e408ccfee4f, 0x6db33b299e23dd62, 0x6dec1d700a636e2d},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("len=%d", tt.n), func(t *testing.T) {
			data := ramp(tt.n)
			for name, k := range map[string]Kernel{"generic": BlocksAGeneric, "installed": BlocksA} {
				a, b := k(data, 42)
				assert.Equal(t, tt.aLo, a, name)
				assert.Equal(t, tt.aHi, b, name)
			}
			for name, k := range map[string]Kernel{"generic": BlocksBGeneric, "installed": BlocksB} {
				a, b := k(data, 42)
				assert.Equal(t, tt.bLo, a, name)
				assert.Equal(t, tt.bHi, b, name)
			}
		})
	}
}

func TestBlocksMatchGeneric(t *testing.T) {
	if !AsmKernels() {
		t.Skip("assembly kernels not installed")
	}

	rng := rand.New(rand.NewSource(99))
	buf := make([]byte, 1024+8)
	rng.Read(buf)

	for n := 33; n <= 1024; n++ {
		off := n % 8
		data := buf[off : off+n]
		seed := rng.Uint64()

		a1, b1 := BlocksA(data, seed)
		a2, b2 := BlocksAGeneric(data, seed)
		if a1 != a2 || b1 != b2 {
			t.Fatalf("BlocksA mismatch at len %d", n)
		}

		a1, b1 = BlocksB(data, seed)
		a2, b2 = BlocksBGeneric(data, seed)
		if a1 != a2 || b1 != b2 {
			t.Fatalf("BlocksB mismatch at len %d", n)
		}
	}
}

func BenchmarkBlocks(b *testing.B) {
	data := ramp(4096)

	kernels := []struct {
		name string
		fn   Kernel
	}{
		{"A", BlocksA},
		{"B", BlocksB},
		{"A-generic", BlocksAGeneric},
		{"B-generic", BlocksBGeneric},
	}

	for _, k := range kernels {
		b.Run(k.name, func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			for b.Loop() {
				k.fn(data, 42)
			}
		})
	}
}

package t1ha1

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/t1ha/internal/selfcheck"
	"github.com/hupe1980/t1ha/internal/testutil"
)

func shifted(fn selfcheck.Func, shift int) selfcheck.Func {
	return func(data []byte, seed uint64) uint64 {
		return fn(testutil.Shifted(data, shift), seed)
	}
}

func TestSelfCheck(t *testing.T) {
	tests := []struct {
		name string
		fn   selfcheck.Func
		refs []uint64
	}{
		{"le", SumLE, selfcheck.Ref64LE[:]},
		{"be", SumBE, selfcheck.Ref64BE[:]},
	}

	for _, tt := range tests {
		for shift := 0; shift < 8; shift++ {
			t.Run(fmt.Sprintf("%s/shift=%d", tt.name, shift), func(t *testing.T) {
				require.NoError(t, selfcheck.Verify(shifted(tt.fn, shift), tt.refs))
			})
		}
	}
}

func TestEmpty(t *testing.T) {
	assert.Equal(t, uint64(0), SumLE(nil, 0))
	assert.Equal(t, uint64(0x6A580668D6048674), SumLE(nil, ^uint64(0)))
	assert.Equal(t, SumLE(nil, 42), SumBE([]byte{}, 42))
}

func TestNativeOrder(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	got := Sum(data, 7)
	assert.True(t, got == SumLE(data, 7) || got == SumBE(data, 7))
}

func TestPageBoundary(t *testing.T) {
	pb := testutil.NewPageBuffer(t)
	rng := testutil.NewRNG(1)

	for n := 0; n <= 40; n++ {
		data := rng.Bytes(n)
		want := SumLE(data, uint64(n))
		assert.Equal(t, want, SumLE(pb.AtEnd(data), uint64(n)), "end len=%d", n)
		for off := 0; off < 8; off++ {
			assert.Equal(t, want, SumLE(pb.AtStart(data, off), uint64(n)), "start len=%d off=%d", n, off)
		}

		wantBE := SumBE(data, uint64(n))
		assert.Equal(t, wantBE, SumBE(pb.AtEnd(data), uint64(n)), "be end len=%d", n)
	}
}

func TestSeedSensitivity(t *testing.T) {
	for _, p := range selfcheck.Probes() {
		assert.NotEqual(t, SumLE(p.Data, p.Seed), SumLE(p.Data, p.Seed^1), "len=%d", len(p.Data))
	}
}

func BenchmarkSum(b *testing.B) {
	for _, size := range []int{7, 32, 256, 4096} {
		data := testutil.NewRNG(42).Bytes(size)
		b.Run(fmt.Sprintf("%d", size), func(b *testing.B) {
			b.SetBytes(int64(size))
			for b.Loop() {
				SumLE(data, 42)
			}
		})
	}
}

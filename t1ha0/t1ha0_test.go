package t1ha0

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/cpu"

	"github.com/hupe1980/t1ha/internal/selfcheck"
	"github.com/hupe1980/t1ha/internal/simd"
	"github.com/hupe1980/t1ha/internal/testutil"
)

func shifted(fn selfcheck.Func, shift int) selfcheck.Func {
	return func(data []byte, seed uint64) uint64 {
		return fn(testutil.Shifted(data, shift), seed)
	}
}

func withKernel(k simd.Kernel) selfcheck.Func {
	return func(data []byte, seed uint64) uint64 {
		return sumAES(k, data, seed)
	}
}

func tableFor(b *Body) []uint64 {
	switch b {
	case bodyAESAVX2:
		return selfcheck.RefAESB[:]
	case bodyAESAVX, bodyAES:
		return selfcheck.RefAESA[:]
	case body64:
		if cpu.IsBigEndian {
			return selfcheck.Ref64BE[:]
		}
		return selfcheck.Ref64LE[:]
	default:
		if cpu.IsBigEndian {
			return selfcheck.Ref32BE[:]
		}
		return selfcheck.Ref32LE[:]
	}
}

func TestSelfCheck(t *testing.T) {
	tests := []struct {
		name string
		fn   selfcheck.Func
		refs []uint64
	}{
		{"32le", Sum32LE, selfcheck.Ref32LE[:]},
		{"32be", Sum32BE, selfcheck.Ref32BE[:]},
		{"aes", SumAES, selfcheck.RefAESA[:]},
		{"aes-avx", SumAESAVX, selfcheck.RefAESA[:]},
		{"aes-avx2", SumAESAVX2, selfcheck.RefAESB[:]},
		{"aes-generic", withKernel(simd.BlocksAGeneric), selfcheck.RefAESA[:]},
		{"aes-avx2-generic", withKernel(simd.BlocksBGeneric), selfcheck.RefAESB[:]},
	}

	for _, tt := range tests {
		for shift := 0; shift < 8; shift++ {
			t.Run(fmt.Sprintf("%s/shift=%d", tt.name, shift), func(t *testing.T) {
				require.NoError(t, selfcheck.Verify(shifted(tt.fn, shift), tt.refs))
			})
		}
	}
}

func TestDispatch(t *testing.T) {
	impl := Implementation()
	require.NotNil(t, impl)

	impls := Implementations()
	require.NotEmpty(t, impls)
	assert.Contains(t, impls, impl)
	assert.Same(t, portable(), impls[len(impls)-1])

	if !simd.AsmKernels() {
		assert.Same(t, portable(), impl)
	}

	data := []byte("dispatch me")
	assert.Equal(t, impl.Sum(data, 3), Sum(data, 3))
}

func TestBlockSize(t *testing.T) {
	tests := []struct {
		body *Body
		want int
	}{
		{bodyAESAVX2, 128},
		{bodyAESAVX, 128},
		{bodyAES, 128},
		{body64, 32},
		{body32, 16},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.body.BlockSize(), tt.body.Name())
	}
}

func TestImplementationsSelfCheck(t *testing.T) {
	for _, b := range Implementations() {
		t.Run(b.Name(), func(t *testing.T) {
			require.NoError(t, selfcheck.Verify(b.Sum, tableFor(b)))
		})
	}
}

func TestDispatchRace(t *testing.T) {
	want := bodyFor(simd.ActiveISA())
	resolved.Store(nil)

	var g errgroup.Group
	got := make([]*Body, 64)
	for i := range got {
		g.Go(func() error {
			got[i] = Implementation()
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for _, b := range got {
		assert.Same(t, want, b)
	}
	assert.Same(t, want, resolved.Load())
}

func TestPageBoundary(t *testing.T) {
	pb := testutil.NewPageBuffer(t)
	rng := testutil.NewRNG(3)

	fns := map[string]selfcheck.Func{
		"32le":     Sum32LE,
		"32be":     Sum32BE,
		"aes":      SumAES,
		"aes-avx2": SumAESAVX2,
	}

	for n := 0; n <= 40; n++ {
		data := rng.Bytes(n)
		for name, fn := range fns {
			want := fn(data, 1)
			assert.Equal(t, want, fn(pb.AtEnd(data), 1), "%s end len=%d", name, n)
			for off := 0; off < 8; off++ {
				assert.Equal(t, want, fn(pb.AtStart(data, off), 1), "%s start len=%d off=%d", name, n, off)
			}
		}
	}
}

func TestSeedSensitivity(t *testing.T) {
	for _, fn := range []selfcheck.Func{Sum32LE, Sum32BE, SumAES, SumAESAVX2} {
		for _, p := range selfcheck.Probes() {
			assert.NotEqual(t, fn(p.Data, p.Seed), fn(p.Data, p.Seed^1), "len=%d", len(p.Data))
		}
	}
}

func BenchmarkSum(b *testing.B) {
	bodies := append(Implementations(), bodyAES, body32)

	for _, size := range []int{16, 256, 4096} {
		data := testutil.NewRNG(42).Bytes(size)
		for _, body := range bodies {
			b.Run(fmt.Sprintf("%s/%d", body.Name(), size), func(b *testing.B) {
				b.SetBytes(int64(size))
				for b.Loop() {
					body.Sum(data, 42)
				}
			})
		}
	}
}

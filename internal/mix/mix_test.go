package mix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotate(t *testing.T) {
	assert.Equal(t, uint64(0x8000000000000000), Rot64(1, 1))
	assert.Equal(t, uint64(0x0123456789ABCDEF), Rot64(0x0123456789ABCDEF, 64))
	assert.Equal(t, uint32(0x80000000), Rot32(1, 1))
	assert.Equal(t, uint32(0x78123456), Rot32(0x12345678, 8))
}

func TestMux64(t *testing.T) {
	assert.Equal(t, Prime0, Mux64(1, Prime0))
	assert.Equal(t, ^uint64(0), Mux64(^uint64(0), ^uint64(0)))
	assert.Zero(t, Mux64(0, Prime3))
}

func TestMixup(t *testing.T) {
	a, b := uint64(5), uint64(7)
	Mixup64(&a, &b, 11, Prime2)
	assert.Equal(t, uint64(0xf8e7b70d114b6143), a)
	assert.Equal(t, uint64(0x15), b)

	a32, b32 := uint32(5), uint32(7)
	Mixup32(&a32, &b32, 11, Prime32x2)
	assert.Equal(t, uint32(0x94115fb3), a32)
	assert.Equal(t, uint32(0x12), b32)
}

func TestFinalizers(t *testing.T) {
	tests := []struct {
		name string
		got  uint64
		want uint64
	}{
		{"Mix64", Mix64(0x0123456789ABCDEF, Prime0), 0xe754da42d528af23},
		{"Final64", Final64(1, 2), 0x8cfefae61b5744a1},
		{"FinalWeak", FinalWeak(1, 2), 0x27087b230329bed4},
		{"Final32", Final32(1, 2), 0x4f1de8cbbc62c94a},
		{"FinalWeakZero", FinalWeak(0, 0), 0},
		{"Final32Zero", Final32(0, 0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

package simd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Round vectors from Intel's AES-NI white paper.
var (
	roundState = Vec{Hi: 0x7b5b546573745665, Lo: 0x63746f725d53475d}
	roundKey   = Vec{Hi: 0x4869285368617929, Lo: 0x5b477565726f6e5d}
)

func TestSbox(t *testing.T) {
	assert.Equal(t, byte(0x63), sbox[0x00])
	assert.Equal(t, byte(0x7c), sbox[0x01])
	assert.Equal(t, byte(0xed), sbox[0x53])
	assert.Equal(t, byte(0x16), sbox[0xff])

	for i := 0; i < 256; i++ {
		assert.Equal(t, byte(i), invSbox[sbox[i]])
	}
}

func TestEnc(t *testing.T) {
	got := Enc(roundState, roundKey)
	assert.Equal(t, Vec{Hi: 0xa8311c2f9fdba3c5, Lo: 0x8b104b58ded7e595}, got)
}

func TestDec(t *testing.T) {
	got := Dec(roundState, roundKey)
	assert.Equal(t, Vec{Hi: 0x138ac342faea2787, Lo: 0xb58eb95eb730392a}, got)
}

func TestVecLanes(t *testing.T) {
	a := Vec{Lo: ^uint64(0), Hi: 1}
	b := Vec{Lo: 1, Hi: 2}

	assert.Equal(t, Vec{Lo: 0, Hi: 3}, a.Add(b))
	assert.Equal(t, Vec{Lo: ^uint64(0) - 1, Hi: ^uint64(0)}, a.Sub(b))
	assert.Equal(t, Vec{Lo: ^uint64(0) ^ 1, Hi: 3}, a.Xor(b))
}

func TestBytesRoundTrip(t *testing.T) {
	b := roundState.bytes()
	assert.Equal(t, byte(0x5d), b[0])
	assert.Equal(t, byte(0x7b), b[15])
	assert.Equal(t, roundState, vecOf(&b))
}

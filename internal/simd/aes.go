package simd

// Vec is a 128-bit register as two little-endian 64-bit lanes; byte i of the
// register is byte i%8 of Lo (i < 8) or Hi (i >= 8).
type Vec struct {
	Lo, Hi uint64
}

// Xor returns v ^ w.
func (v Vec) Xor(w Vec) Vec { return Vec{v.Lo ^ w.Lo, v.Hi ^ w.Hi} }

// Add returns the lane-wise 64-bit sum.
func (v Vec) Add(w Vec) Vec { return Vec{v.Lo + w.Lo, v.Hi + w.Hi} }

// Sub returns the lane-wise 64-bit difference.
func (v Vec) Sub(w Vec) Vec { return Vec{v.Lo - w.Lo, v.Hi - w.Hi} }

var (
	sbox    [256]byte
	invSbox [256]byte
)

func init() {
	// Multiplicative inverses in GF(2^8) via powers of the generator 3.
	var exp, log [256]byte
	x := byte(1)
	for i := 0; i < 255; i++ {
		exp[i] = x
		log[x] = byte(i)
		x ^= xtime(x)
	}

	for i := 0; i < 256; i++ {
		var inv byte
		if i != 0 {
			inv = exp[(255-int(log[i]))%255]
		}
		s := inv ^ rotl8(inv, 1) ^ rotl8(inv, 2) ^ rotl8(inv, 3) ^ rotl8(inv, 4) ^ 0x63
		sbox[i] = s
		invSbox[s] = byte(i)
	}
}

func xtime(b byte) byte {
	if b&0x80 != 0 {
		return b<<1 ^ 0x1B
	}
	return b << 1
}

func rotl8(b byte, s uint) byte { return b<<s | b>>(8-s) }

func gmul(a, b byte) byte {
	var p byte
	for b != 0 {
		if b&1 != 0 {
			p ^= a
		}
		a = xtime(a)
		b >>= 1
	}
	return p
}

func (v Vec) bytes() (out [16]byte) {
	for i := 0; i < 8; i++ {
		out[i] = byte(v.Lo >> (8 * i))
		out[8+i] = byte(v.Hi >> (8 * i))
	}
	return out
}

func vecOf(b *[16]byte) Vec {
	var v Vec
	for i := 7; i >= 0; i-- {
		v.Lo = v.Lo<<8 | uint64(b[i])
		v.Hi = v.Hi<<8 | uint64(b[8+i])
	}
	return v
}

// Enc performs one AES encryption round (ShiftRows, SubBytes, MixColumns,
// AddRoundKey), matching AESENC.
func Enc(state, key Vec) Vec {
	in := state.bytes()
	var out [16]byte
	for c := 0; c < 4; c++ {
		// ShiftRows moves row r left by r columns; column-major byte layout.
		a0 := sbox[in[(4*c+0)%16]]
		a1 := sbox[in[(4*c+5)%16]]
		a2 := sbox[in[(4*c+10)%16]]
		a3 := sbox[in[(4*c+15)%16]]

		out[4*c+0] = xtime(a0) ^ xtime(a1) ^ a1 ^ a2 ^ a3
		out[4*c+1] = a0 ^ xtime(a1) ^ xtime(a2) ^ a2 ^ a3
		out[4*c+2] = a0 ^ a1 ^ xtime(a2) ^ xtime(a3) ^ a3
		out[4*c+3] = xtime(a0) ^ a0 ^ a1 ^ a2 ^ xtime(a3)
	}
	return vecOf(&out).Xor(key)
}

// Dec performs one AES decryption round (InvShiftRows, InvSubBytes,
// InvMixColumns, AddRoundKey), matching AESDEC.
func Dec(state, key Vec) Vec {
	in := state.bytes()
	var out [16]byte
	for c := 0; c < 4; c++ {
		a0 := invSbox[in[(4*c+0)%16]]
		a1 := invSbox[in[(4*c+13)%16]]
		a2 := invSbox[in[(4*c+10)%16]]
		a3 := invSbox[in[(4*c+7)%16]]

		out[4*c+0] = gmul(a0, 14) ^ gmul(a1, 11) ^ gmul(a2, 13) ^ gmul(a3, 9)
		out[4*c+1] = gmul(a0, 9) ^ gmul(a1, 14) ^ gmul(a2, 11) ^ gmul(a3, 13)
		out[4*c+2] = gmul(a0, 13) ^ gmul(a1, 9) ^ gmul(a2, 14) ^ gmul(a3, 11)
		out[4*c+3] = gmul(a0, 11) ^ gmul(a1, 13) ^ gmul(a2, 9) ^ gmul(a3, 14)
	}
	return vecOf(&out).Xor(key)
}

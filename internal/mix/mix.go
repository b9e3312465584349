// Package mix holds the primes and mixing primitives shared by every t1ha
// generation.
package mix

import "math/bits"

// 64-bit primes.
const (
	Prime0 uint64 = 0xEC99BF0D8372CAAB
	Prime1 uint64 = 0x82434FE90EDCEF39
	Prime2 uint64 = 0xD4F06DB99D67BE4B
	Prime3 uint64 = 0xBD9CACC22C6E9571
	Prime4 uint64 = 0x9C06FAF4D023E3AB
	Prime5 uint64 = 0xC060724A8424F345
	Prime6 uint64 = 0xCB5AF53AE3AAAC31
)

// 32-bit primes.
const (
	Prime32x0 uint32 = 0x92D78269
	Prime32x1 uint32 = 0xCA9B4735
	Prime32x2 uint32 = 0xA4ABA1C3
	Prime32x3 uint32 = 0xF6499843
	Prime32x4 uint32 = 0x86F0FD61
	Prime32x5 uint32 = 0xCA2DA6FB
	Prime32x6 uint32 = 0xC4BB3575
)

// Rot64 rotates v right by s bits.
func Rot64(v uint64, s int) uint64 { return bits.RotateLeft64(v, -s) }

// Rot32 rotates v right by s bits.
func Rot32(v uint32, s int) uint32 { return bits.RotateLeft32(v, -s) }

// Mix64 is xor-mul-xor.
func Mix64(v, p uint64) uint64 {
	v *= p
	return v ^ Rot64(v, 41)
}

// Mux64 folds the 128-bit product of v and p into 64 bits.
func Mux64(v, p uint64) uint64 {
	hi, lo := bits.Mul64(v, p)
	return lo ^ hi
}

// Mixup64 multiplies b+v by p, xoring the low half into a and adding the
// high half to b.
func Mixup64(a, b *uint64, v, p uint64) {
	hi, lo := bits.Mul64(*b+v, p)
	*a ^= lo
	*b += hi
}

// Mixup32 is Mixup64 on 32-bit lanes with a 64-bit product.
func Mixup32(a, b *uint32, v, p uint32) {
	l := uint64(*b+v) * uint64(p)
	*a ^= uint32(l)
	*b += uint32(l >> 32)
}

// Final64 is the strong avalanche shared by t1ha2 and the AES bodies.
func Final64(a, b uint64) uint64 {
	x := (a + Rot64(b, 41)) * Prime0
	y := (Rot64(a, 23) + b) * Prime6
	return Mux64(x^y, Prime5)
}

// FinalWeak is t1ha1's finish. Its avalanche is knowingly weak.
func FinalWeak(a, b uint64) uint64 {
	return Mux64(Rot64(a+b, 17), Prime4) + Mix64(a^b, Prime0)
}

// Final32 widens two 32-bit accumulators into a 64-bit digest.
func Final32(a, b uint32) uint64 {
	l := uint64(b^Rot32(a, 13)) | uint64(a)<<32
	l *= Prime0
	l ^= l >> 41
	l *= Prime4
	l ^= l >> 47
	l *= Prime6
	return l
}

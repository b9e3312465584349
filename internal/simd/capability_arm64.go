//go:build arm64

package simd

import "golang.org/x/sys/cpu"

// ARMv8 AES rounds are reported but unused: AESE/AESD apply the round key
// first, so they cannot reproduce the x86 round sequence cheaply.
func init() {
	hasAES = cpu.ARM64.HasAES
	initCapabilities()
}

//go:build amd64

package simd

import "golang.org/x/sys/cpu"

func init() {
	hasAES = cpu.X86.HasAES
	hasAVX = cpu.X86.HasAVX
	hasAVX2 = cpu.X86.HasAVX2
	initCapabilities()
}

package simd

import (
	"os"
	"strings"
)

// EnvOverride names the environment variable read at init.
const EnvOverride = "T1HA_SIMD"

// ISA represents an instruction set level usable by t1ha0.
type ISA uint8

const (
	// Portable means no AES acceleration; t1ha0 falls back to t1ha1 or its
	// 32-bit body.
	Portable ISA = iota
	// AES represents AES-NI without AVX.
	AES
	// AVX represents AES-NI on an AVX-capable CPU.
	AVX
	// AVX2 represents AES-NI on an AVX2-capable CPU.
	AVX2
)

// String returns the string representation of an ISA.
func (i ISA) String() string {
	switch i {
	case Portable:
		return "portable"
	case AES:
		return "aes"
	case AVX:
		return "avx"
	case AVX2:
		return "avx2"
	default:
		return "unknown"
	}
}

// ParseISA parses a string into an ISA value.
func ParseISA(s string) (ISA, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "portable", "generic":
		return Portable, true
	case "aes":
		return AES, true
	case "avx":
		return AVX, true
	case "avx2":
		return AVX2, true
	default:
		return Portable, false
	}
}

// Package-level state, written once by the platform init.
var (
	activeISA   ISA
	hasOverride bool

	hasAES  bool
	hasAVX  bool
	hasAVX2 bool
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	if override := os.Getenv(EnvOverride); override != "" {
		if isa, ok := ParseISA(override); ok {
			hasOverride = true
			if isISAAvailable(isa) {
				activeISA = isa
				return
			}
		}
	}

	activeISA = selectBestISA()
}

// isISAAvailable checks if an ISA is supported on this CPU and build.
func isISAAvailable(isa ISA) bool {
	switch isa {
	case Portable:
		return true
	case AES:
		return asmKernels && hasAES
	case AVX:
		return asmKernels && hasAES && hasAVX
	case AVX2:
		return asmKernels && hasAES && hasAVX2
	default:
		return false
	}
}

func selectBestISA() ISA {
	for _, isa := range []ISA{AVX2, AVX, AES} {
		if isISAAvailable(isa) {
			return isa
		}
	}
	return Portable
}

// ActiveISA returns the ISA t1ha0 should dispatch on.
func ActiveISA() ISA {
	return activeISA
}

// Available reports whether isa can be used on this CPU and build.
func Available(isa ISA) bool {
	return isISAAvailable(isa)
}

// IsOverridden returns true if T1HA_SIMD was set to a known ISA.
func IsOverridden() bool {
	return hasOverride
}

// HasAES returns true if the CPU implements the AES round instructions.
func HasAES() bool {
	return hasAES
}

// HasAVX returns true if AVX is available.
func HasAVX() bool {
	return hasAVX
}

// HasAVX2 returns true if AVX2 is available.
func HasAVX2() bool {
	return hasAVX2
}

// AsmKernels reports whether assembly kernels are compiled in and installed.
func AsmKernels() bool {
	return asmKernels && hasAES
}

//go:build amd64 && !noasm

package simd

const asmKernels = true

// init installs the AES-NI kernels. It runs after capability_amd64.go has
// read the CPU flags.
func init() {
	if hasAES {
		kernelBlocksA = blocksAAESNI
		kernelBlocksB = blocksBAESNI
	}
}

//go:noescape
func blocksAAESNI(data []byte, seed uint64) (a, b uint64)

//go:noescape
func blocksBAESNI(data []byte, seed uint64) (a, b uint64)

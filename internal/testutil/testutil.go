package testutil

import (
	"math/rand"
	"sync"
	"unsafe"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Bytes returns n pseudo-random bytes.
func (r *RNG) Bytes(n int) []byte {
	b := make([]byte, n)
	r.Fill(b)
	return b
}

// Fill fills dst with pseudo-random bytes.
// Locks only once per call.
func (r *RNG) Fill(dst []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = byte(r.rand.Uint32())
	}
}

// Split cuts data into consecutive chunks of random length, empty chunks
// included. Concatenating the result yields data again.
func (r *RNG) Split(data []byte) [][]byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	var parts [][]byte
	for len(data) > 0 {
		// Mostly short pieces so carry-buffer paths get hit, some long ones
		// so the bulk loop runs too.
		var n int
		switch r.rand.Intn(4) {
		case 0:
			n = 0
		case 3:
			n = r.rand.Intn(256)
		default:
			n = r.rand.Intn(40)
		}
		n = min(n, len(data))
		parts = append(parts, data[:n])
		data = data[n:]
	}
	return parts
}

// Shifted returns a copy of data whose first byte sits at an address
// congruent to shift modulo 8.
func Shifted(data []byte, shift int) []byte {
	backing := make([]uint64, (len(data)+shift)/8+2)
	base := unsafe.Slice((*byte)(unsafe.Pointer(&backing[0])), len(backing)*8)
	out := base[shift : shift+len(data) : shift+len(data)]
	copy(out, data)
	return out
}

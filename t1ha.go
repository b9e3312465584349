package t1ha

import (
	"encoding/binary"
	"hash"
	"unsafe"

	"github.com/hupe1980/t1ha/t1ha0"
)

// Sum64 hashes data with seed using the t1ha0 body selected for this CPU.
func Sum64(data []byte, seed uint64) uint64 {
	return t1ha0.Sum(data, seed)
}

// Sum64String is Sum64 over the bytes of s, without copying them.
func Sum64String(s string, seed uint64) uint64 {
	return t1ha0.Sum(unsafe.Slice(unsafe.StringData(s), len(s)), seed)
}

// Implementation names the t1ha0 body Sum64 uses.
func Implementation() string {
	return t1ha0.Implementation().Name()
}

// Hasher adapts t1ha0 to hash.Hash64 for hash tables.
//
// Every Write hashes its argument on its own, seeded with the running
// state, so the digest depends on how the input is split across writes.
// Write one complete key per digest, or use t1ha2.Hasher when split
// independence matters.
type Hasher struct {
	seed  uint64
	state uint64
}

var _ hash.Hash64 = (*Hasher)(nil)

// New returns a Hasher whose state starts at seed.
func New(seed uint64) *Hasher {
	return &Hasher{seed: seed, state: seed}
}

// Write implements io.Writer. It never fails.
func (h *Hasher) Write(p []byte) (int, error) {
	h.state = t1ha0.Sum(p, h.state)
	return len(p), nil
}

// WriteString is Write for strings, without copying.
func (h *Hasher) WriteString(s string) (int, error) {
	h.state = Sum64String(s, h.state)
	return len(s), nil
}

// Sum64 returns the current state.
func (h *Hasher) Sum64() uint64 {
	return h.state
}

// Sum appends the big-endian state to b.
func (h *Hasher) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint64(b, h.state)
}

// Reset restores the seed.
func (h *Hasher) Reset() {
	h.state = h.seed
}

// Size returns the number of bytes Sum appends.
func (h *Hasher) Size() int { return 8 }

// BlockSize returns the bulk step of the t1ha0 body in use.
func (h *Hasher) BlockSize() int { return t1ha0.Implementation().BlockSize() }

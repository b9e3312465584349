package t1ha2

import (
	"encoding/binary"
	"errors"
	"hash"

	"github.com/hupe1980/t1ha/internal/memory"
	"github.com/hupe1980/t1ha/internal/mix"
)

// ErrFinished is the panic value when a Hasher is used after Finish or
// Finish128 without an intervening Reset.
var ErrFinished = errors.New("t1ha2: hasher already finished")

var errPartial = errors.New("t1ha2: carry buffer overflow")

// Hasher computes t1ha2 digests incrementally.
//
// Feeding the same bytes in any split yields the same digest. A Hasher is
// not safe for concurrent use.
type Hasher struct {
	state    state
	buf      [BlockSize]byte
	partial  int
	total    uint64
	seedX    uint64
	seedY    uint64
	finished bool
}

var _ hash.Hash64 = (*Hasher)(nil)

// New returns a Hasher seeded with two 64-bit values.
func New(seedX, seedY uint64) *Hasher {
	h := &Hasher{seedX: seedX, seedY: seedY}
	h.Reset()
	return h
}

// NewSeed returns a Hasher seeded with seed twice, the seeding the published
// streaming reference values use.
func NewSeed(seed uint64) *Hasher {
	return New(seed, seed)
}

// Reset restores the freshly seeded state.
func (h *Hasher) Reset() {
	h.state.initAB(h.seedX, h.seedY)
	h.state.initCD(h.seedX, h.seedY)
	h.buf = [BlockSize]byte{}
	h.partial = 0
	h.total = 0
	h.finished = false
}

// Update absorbs data.
func (h *Hasher) Update(data []byte) {
	if h.finished {
		panic(ErrFinished)
	}
	h.update(data)
}

// Write implements io.Writer. It never fails.
func (h *Hasher) Write(p []byte) (int, error) {
	h.Update(p)
	return len(p), nil
}

func (h *Hasher) update(data []byte) {
	h.total += uint64(len(data))

	if h.partial > 0 {
		n := copy(h.buf[h.partial:], data)
		h.partial += n
		if h.partial < BlockSize {
			return
		}
		data = data[n:]
		h.partial = 0
		update[memory.LittleEndianAligned[uint64]](&h.state, h.buf[:], 0)
	}

	if len(data) >= BlockSize {
		var off int
		if memory.Aligned[uint64](data) {
			off = loop[memory.LittleEndianAligned[uint64]](&h.state, data)
		} else {
			off = loop[memory.LittleEndianUnaligned[uint64]](&h.state, data)
		}
		data = data[off:]
	}

	if len(data) > 0 {
		h.partial = copy(h.buf[:], data)
	}
}

// appendLength absorbs the length marker that closes every stream.
func (h *Hasher) appendLength() {
	var marker [8]byte
	binary.LittleEndian.PutUint64(marker[:], (h.total<<3)^(1<<63))
	h.update(marker[:])
	if h.partial >= BlockSize {
		panic(errPartial)
	}
}

// Finish returns the 64-bit digest and closes the Hasher; further updates
// panic with ErrFinished until Reset.
func (h *Hasher) Finish() uint64 {
	if h.finished {
		panic(ErrFinished)
	}
	h.finished = true
	h.appendLength()
	h.state.squash()
	return mix.TailAB[memory.LittleEndianAligned[uint64]](h.state.a, h.state.b, h.buf[:], 0, h.partial)
}

// Finish128 returns the 128-bit digest and closes the Hasher like Finish.
func (h *Hasher) Finish128() Uint128 {
	if h.finished {
		panic(ErrFinished)
	}
	h.finished = true
	h.appendLength()
	return tailABCD[memory.LittleEndianAligned[uint64]](&h.state, h.buf[:], 0, h.partial)
}

// Sum64 returns the 64-bit digest of the data written so far without
// closing the Hasher.
func (h *Hasher) Sum64() uint64 {
	c := *h
	return c.Finish()
}

// Sum128 returns the 128-bit digest of the data written so far without
// closing the Hasher.
func (h *Hasher) Sum128() Uint128 {
	c := *h
	return c.Finish128()
}

// Sum appends the big-endian Sum64 to b.
func (h *Hasher) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint64(b, h.Sum64())
}

// Size returns the number of bytes Sum appends.
func (h *Hasher) Size() int { return 8 }

// BlockSize returns the block size.
func (h *Hasher) BlockSize() int { return BlockSize }

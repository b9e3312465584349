// Package selfcheck runs the published t1ha probe battery against a hash
// function and compares every digest with a reference table.
//
// The battery has ProbeCount probes, always in this order:
//
//   - the empty input with seed 0, then with seed ^0
//   - the 64-byte Pattern with seed 0
//   - Pattern[:n] for n = 1..63 with seed 1<<(n-1)
//   - Pattern[s:] for s = 1..7 with seed ^0<<s
//   - eight windows ramp[i:128+i*18] over a 512-byte ramp with seed ^0<<7
//
// The shifted suffixes and ramp windows move the input across every
// alignment, so a broken tail read shows up as a mismatch.
package selfcheck

import (
	"errors"
	"fmt"
)

// ProbeCount is the number of probes in the battery.
const ProbeCount = 81

// ErrTableSize is returned when a reference table does not hold ProbeCount values.
var ErrTableSize = errors.New("selfcheck: reference table has wrong size")

// Pattern is the fixed 64-byte probe input.
var Pattern = [64]byte{
	0, 1, 2, 3, 4, 5, 6, 7, 0xFF, 0x7F, 0x3F, 0x1F, 0xF, 8, 16, 32,
	64, 0x80, 0xFE, 0xFC, 0xF8, 0xF0, 0xE0, 0xC0, 0xFD, 0xFB, 0xF7, 0xEF, 0xDF, 0xBF, 0x55, 0xAA,
	11, 17, 19, 23, 29, 37, 42, 43, 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h',
	'i', 'j', 'k', 'l', 'm', 'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x',
}

// Func is a seeded 64-bit hash under test.
type Func func(data []byte, seed uint64) uint64

// Probe is one input of the battery.
type Probe struct {
	Data []byte
	Seed uint64
}

// Probes returns the battery in reference-table order. The returned slices
// are fresh copies and may be modified by the caller.
func Probes() []Probe {
	probes := make([]Probe, 0, ProbeCount)
	pattern := Pattern[:]

	probes = append(probes,
		Probe{Data: []byte{}, Seed: 0},
		Probe{Data: []byte{}, Seed: ^uint64(0)},
		Probe{Data: clone(pattern), Seed: 0},
	)

	for n := 1; n < len(pattern); n++ {
		probes = append(probes, Probe{Data: clone(pattern[:n]), Seed: 1 << (n - 1)})
	}

	allOnes := ^uint64(0)
	for s := 1; s < 8; s++ {
		probes = append(probes, Probe{Data: clone(pattern[s:]), Seed: allOnes << s})
	}

	ramp := make([]byte, 512)
	for i := range ramp {
		ramp[i] = byte(i)
	}
	for i := 0; i < 8; i++ {
		probes = append(probes, Probe{Data: clone(ramp[i : 128+i*18]), Seed: allOnes << 7})
	}

	return probes
}

// MismatchError reports the first probe whose digest differs from the table.
type MismatchError struct {
	Index int
	Len   int
	Seed  uint64
	Got   uint64
	Want  uint64
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("selfcheck: probe %d (len %d, seed %#016x): got %016X, want %016X",
		e.Index, e.Len, e.Seed, e.Got, e.Want)
}

// Verify runs fn over every probe and returns a *MismatchError for the first
// digest that differs from refs.
func Verify(fn Func, refs []uint64) error {
	if len(refs) != ProbeCount {
		return fmt.Errorf("%w: %d values", ErrTableSize, len(refs))
	}

	for i, p := range Probes() {
		if got := fn(p.Data, p.Seed); got != refs[i] {
			return &MismatchError{Index: i, Len: len(p.Data), Seed: p.Seed, Got: got, Want: refs[i]}
		}
	}

	return nil
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

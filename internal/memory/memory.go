package memory

import (
	"encoding/binary"
	"unsafe"
)

// PageSize is the page granularity assumed by the underside tail read.
const PageSize = 4096

// Word is the machine word a model reads.
type Word interface {
	~uint32 | ~uint64
}

// Model is an access discipline over a byte slice.
//
// Fetch reads a full word at off. Tail reads the final partial word at off,
// where n is the number of input bytes remaining from off; only n modulo the
// word size matters and zero stands for a full word.
type Model[W Word] interface {
	Fetch(p []byte, off int) W
	Tail(p []byte, off, n int) W
}

// LittleEndianAligned reads little-endian words from word-aligned input.
type LittleEndianAligned[W Word] struct{}

// BigEndianAligned reads big-endian words from word-aligned input.
type BigEndianAligned[W Word] struct{}

// LittleEndianUnaligned reads little-endian words at any address.
type LittleEndianUnaligned[W Word] struct{}

// BigEndianUnaligned reads big-endian words at any address.
type BigEndianUnaligned[W Word] struct{}

// Fetch implements Model.
func (LittleEndianAligned[W]) Fetch(p []byte, off int) W { return loadLE[W](p[off:]) }

// Tail implements Model.
func (LittleEndianAligned[W]) Tail(p []byte, off, n int) W {
	size := sizeOf[W]()
	if off+size <= len(p) {
		return loadLE[W](p[off:]) & lowMask[W](n)
	}
	return padded[W](p, off, n, false)
}

// Fetch implements Model.
func (BigEndianAligned[W]) Fetch(p []byte, off int) W { return loadBE[W](p[off:]) }

// Tail implements Model.
func (BigEndianAligned[W]) Tail(p []byte, off, n int) W {
	size := sizeOf[W]()
	if off+size <= len(p) {
		return loadBE[W](p[off:]) >> shiftOf[W](n)
	}
	return padded[W](p, off, n, true)
}

// Fetch implements Model.
func (LittleEndianUnaligned[W]) Fetch(p []byte, off int) W { return loadLE[W](p[off:]) }

// Tail implements Model.
func (LittleEndianUnaligned[W]) Tail(p []byte, off, n int) W {
	size := sizeOf[W]()
	if back := backOf[W](n); back != 0 && off >= back && CanReadUnderside(unsafe.Pointer(&p[off]), size) {
		return loadLE[W](p[off-back:]) >> shiftOf[W](n)
	}
	if off+size <= len(p) {
		return loadLE[W](p[off:]) & lowMask[W](n)
	}
	return padded[W](p, off, n, false)
}

// Fetch implements Model.
func (BigEndianUnaligned[W]) Fetch(p []byte, off int) W { return loadBE[W](p[off:]) }

// Tail implements Model.
func (BigEndianUnaligned[W]) Tail(p []byte, off, n int) W {
	size := sizeOf[W]()
	if back := backOf[W](n); back != 0 && off >= back && CanReadUnderside(unsafe.Pointer(&p[off]), size) {
		return loadBE[W](p[off-back:]) & lowMask[W](n)
	}
	if off+size <= len(p) {
		return loadBE[W](p[off:]) >> shiftOf[W](n)
	}
	return padded[W](p, off, n, true)
}

// CanReadUnderside reports whether the size bytes ending size bytes after ptr
// may be read backwards from ptr without leaving its page: the address is not
// within the first size bytes of a PageSize page.
func CanReadUnderside(ptr unsafe.Pointer, size int) bool {
	return uintptr(PageSize-size)&uintptr(ptr) != 0
}

// Aligned reports whether the first byte of p sits on a W boundary.
func Aligned[W Word](p []byte) bool {
	return uintptr(unsafe.Pointer(unsafe.SliceData(p)))%uintptr(sizeOf[W]()) == 0
}

func sizeOf[W Word]() int {
	var w W
	return int(unsafe.Sizeof(w))
}

// backOf is the number of missing bytes in the tail word.
func backOf[W Word](n int) int {
	size := sizeOf[W]()
	return (size - n) & (size - 1)
}

func shiftOf[W Word](n int) uint {
	return uint(backOf[W](n)) << 3
}

func lowMask[W Word](n int) W {
	return ^W(0) >> shiftOf[W](n)
}

func padded[W Word](p []byte, off, n int, bigEndian bool) W {
	var buf [8]byte
	valid := sizeOf[W]() - backOf[W](n)
	copy(buf[:valid], p[off:])
	if bigEndian {
		return loadBE[W](buf[:]) >> shiftOf[W](n)
	}
	return loadLE[W](buf[:])
}

func loadLE[W Word](b []byte) W {
	if sizeOf[W]() == 4 {
		return W(binary.LittleEndian.Uint32(b))
	}
	return W(binary.LittleEndian.Uint64(b))
}

func loadBE[W Word](b []byte) W {
	if sizeOf[W]() == 4 {
		return W(binary.BigEndian.Uint32(b))
	}
	return W(binary.BigEndian.Uint64(b))
}

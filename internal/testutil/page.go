package testutil

import (
	"testing"

	"github.com/hupe1980/t1ha/internal/mmap"
)

// PageBuffer places test inputs against inaccessible guard pages.
type PageBuffer struct {
	g *mmap.Guarded
}

// NewPageBuffer maps one usable page between two guard pages, or skips the
// test where guarded mappings are unavailable. The mapping is released when
// the test ends.
func NewPageBuffer(tb testing.TB) *PageBuffer {
	tb.Helper()

	g, err := mmap.MapGuarded(1)
	if err != nil {
		tb.Skipf("guarded mapping unavailable: %v", err)
	}
	tb.Cleanup(func() { _ = g.Close() })

	return &PageBuffer{g: g}
}

// Len is the usable size.
func (pb *PageBuffer) Len() int {
	return len(pb.g.Bytes())
}

// AtEnd copies data so that its last byte is the last accessible byte.
func (pb *PageBuffer) AtEnd(data []byte) []byte {
	buf := pb.g.Bytes()
	out := buf[len(buf)-len(data):]
	copy(out, data)
	return out
}

// AtStart copies data to the first accessible byte plus offset.
func (pb *PageBuffer) AtStart(data []byte, offset int) []byte {
	buf := pb.g.Bytes()
	out := buf[offset : offset+len(data) : offset+len(data)]
	copy(out, data)
	return out
}

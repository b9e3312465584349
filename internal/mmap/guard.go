package mmap

import (
	"fmt"
	"os"
	"sync/atomic"
)

// Guarded is an anonymous read-write region with one inaccessible page on
// each side.
type Guarded struct {
	whole  []byte
	data   []byte
	closed atomic.Bool
	unmap  func([]byte) error
}

// MapGuarded maps pages usable pages between two guard pages.
func MapGuarded(pages int) (*Guarded, error) {
	if pages <= 0 {
		return nil, ErrInvalidSize
	}

	page := os.Getpagesize()
	whole, unmap, err := osMapAnon((pages + 2) * page)
	if err != nil {
		return nil, fmt.Errorf("mmap: anonymous mapping: %w", err)
	}

	if err := osProtectNone(whole[:page]); err != nil {
		_ = unmap(whole)
		return nil, fmt.Errorf("mmap: protect leading guard: %w", err)
	}
	if err := osProtectNone(whole[len(whole)-page:]); err != nil {
		_ = unmap(whole)
		return nil, fmt.Errorf("mmap: protect trailing guard: %w", err)
	}

	return &Guarded{
		whole: whole,
		data:  whole[page : len(whole)-page : len(whole)-page],
		unmap: unmap,
	}, nil
}

// Bytes returns the accessible pages. The slice's capacity ends at the
// trailing guard page.
func (g *Guarded) Bytes() []byte {
	if g.closed.Load() {
		return nil
	}
	return g.data
}

// Close releases the whole mapping, guards included. It is idempotent.
func (g *Guarded) Close() error {
	if g.closed.Swap(true) {
		return nil
	}
	return g.unmap(g.whole)
}

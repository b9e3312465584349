// Package mmap provides read-only file mappings and guarded anonymous
// mappings.
//
// # Files
//
// The t1hasum command maps its inputs so one-shot digests run straight over
// the page cache:
//
//	m, err := mmap.Open("input.bin")
//	if err != nil { ... }
//	defer m.Close()
//
//	_ = m.Advise(mmap.AccessSequential)
//	sum := t1ha2.Sum64(m.Bytes(), seed)
//
// # Guard pages
//
// MapGuarded returns a read-write region framed by inaccessible pages. Any
// read that strays past either end of the region faults instead of silently
// returning neighbouring memory, which is how the tail reads of the hash
// bodies are tested.
//
//	g, err := mmap.MapGuarded(1)
//	if err != nil { ... }
//	defer g.Close()
//
//	buf := g.Bytes()
//	input := buf[len(buf)-n:] // ends right at the trailing guard page
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2), madvise(2), mprotect(2)
//   - Windows: CreateFileMapping/MapViewOfFile, VirtualAlloc/VirtualProtect
//
// # Thread Safety
//
// A Mapping is safe for concurrent reads. Close is idempotent; callers must
// not touch Bytes() after Close returns.
package mmap

// Package memory reads machine words out of byte slices for the hash bodies.
//
// # Models
//
// Four access disciplines exist, each generic over uint32 and uint64 words:
//
//   - LittleEndianAligned
//   - BigEndianAligned
//   - LittleEndianUnaligned
//   - BigEndianUnaligned
//
// Every model normalises the word to its byte order, so a body parameterised
// by a model produces the same digest on little- and big-endian hosts.
//
// # Tail reads
//
// Tail returns the last, partial word of an input: the valid bytes
// zero-extended in the model's byte order. The aligned models read a full
// word whenever the slice carries padding behind the valid bytes. The
// unaligned models prefer the "underside" read: the full word that ends
// exactly at the end of the input, taken only when it starts inside the
// slice and does not cross the 4 KiB page holding the valid bytes. Otherwise
// they fall back to a forward masked read, and finally to a zero-padded copy.
//
// Nothing here ever reads outside the slice it is handed.
package memory

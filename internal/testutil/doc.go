// Package testutil provides testing utilities for t1ha.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Input
//
//	rng := testutil.NewRNG(seed)
//	data := rng.Bytes(1024)
//	parts := rng.Split(data) // random chunking for incremental hashing
//
// # Alignment
//
//	p := testutil.Shifted(data, 3) // same bytes, address ≡ 3 (mod 8)
//
// # Page Boundaries
//
//	pb := testutil.NewPageBuffer(t)
//	p := pb.AtEnd(data) // last byte sits right before an inaccessible page
package testutil

// Package t1ha provides the t1ha family of fast, portable, non-cryptographic
// hash functions.
//
// # Quick Start
//
//	sum := t1ha.Sum64(data, seed)           // fastest body for this CPU
//	h := t1ha.New(seed)                     // hash.Hash64 for maps and tables
//
// # Generations
//
// Each generation lives in its own package:
//
//   - t1ha0: fastest, picks an AES-NI body at run time when the CPU has one
//   - t1ha1: portable 64-bit baseline with a knowingly weak avalanche
//   - t1ha2: strong avalanche, 64 and 128 bits, one-shot and incremental
//
// Sum64 in this package is t1ha0.Sum. Its digest depends on the CPU it runs
// on, which is fine for in-memory hash tables. Anything persisted or sent
// over the wire should use a fixed function such as t1ha2.Sum64.
//
// # Runtime Selection
//
// The t1ha0 body is chosen once per process from the CPU flags reported by
// golang.org/x/sys/cpu. Setting T1HA_SIMD=portable before start-up disables
// the AES bodies; building with -tags noasm removes the assembly altogether.
//
// # Non-goals
//
// None of the functions resist adversarial inputs. Do not use them as MACs,
// for password hashing, or anywhere collision attacks matter.
package t1ha

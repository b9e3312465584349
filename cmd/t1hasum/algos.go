package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/sys/cpu"

	"github.com/hupe1980/t1ha/internal/selfcheck"
	"github.com/hupe1980/t1ha/t1ha0"
	"github.com/hupe1980/t1ha/t1ha1"
	"github.com/hupe1980/t1ha/t1ha2"
)

// seeds carries both seeds; one-shot variants only use x.
type seeds struct {
	x, y uint64
}

// digestWriter consumes a stream and renders its digest once.
type digestWriter interface {
	io.Writer
	Digest() string
}

// algorithm is one selectable hash variant.
type algorithm struct {
	name  string
	usage string

	// sum hashes a whole input. Stream variants set newWriter instead.
	sum       func(data []byte, s seeds) string
	newWriter func(s seeds) digestWriter

	// check and refs drive the self-check battery.
	check selfcheck.Func
	refs  func() []uint64
}

func (a *algorithm) streaming() bool { return a.newWriter != nil }

func hex64(v uint64) string { return fmt.Sprintf("%016x", v) }

func oneShot(fn func([]byte, uint64) uint64) func([]byte, seeds) string {
	return func(data []byte, s seeds) string { return hex64(fn(data, s.x)) }
}

func fixed(table *[selfcheck.ProbeCount]uint64) func() []uint64 {
	return func() []uint64 { return table[:] }
}

func native(le, be *[selfcheck.ProbeCount]uint64) func() []uint64 {
	return func() []uint64 {
		if cpu.IsBigEndian {
			return be[:]
		}
		return le[:]
	}
}

type streamWriter struct {
	h    *t1ha2.Hasher
	wide bool
}

func (w *streamWriter) Write(p []byte) (int, error) { return w.h.Write(p) }

func (w *streamWriter) Digest() string {
	if w.wide {
		return w.h.Finish128().String()
	}
	return hex64(w.h.Finish())
}

var algorithms = []*algorithm{
	{
		name:  "t1ha0",
		usage: "fastest body for this CPU (digest varies by machine)",
		sum:   oneShot(t1ha0.Sum),
		check: t1ha0.Sum,
		refs:  func() []uint64 { return bodyRefs(t1ha0.Implementation()) },
	},
	{
		name:  "t1ha0-32le",
		usage: "32-bit body, little-endian reads",
		sum:   oneShot(t1ha0.Sum32LE),
		check: t1ha0.Sum32LE,
		refs:  fixed(&selfcheck.Ref32LE),
	},
	{
		name:  "t1ha0-32be",
		usage: "32-bit body, big-endian reads",
		sum:   oneShot(t1ha0.Sum32BE),
		check: t1ha0.Sum32BE,
		refs:  fixed(&selfcheck.Ref32BE),
	},
	{
		name:  "t1ha0-aes",
		usage: "AES body, variant A",
		sum:   oneShot(t1ha0.SumAES),
		check: t1ha0.SumAES,
		refs:  fixed(&selfcheck.RefAESA),
	},
	{
		name:  "t1ha0-aes-avx",
		usage: "AES body, variant A (AVX build)",
		sum:   oneShot(t1ha0.SumAESAVX),
		check: t1ha0.SumAESAVX,
		refs:  fixed(&selfcheck.RefAESA),
	},
	{
		name:  "t1ha0-aes-avx2",
		usage: "AES body, variant B",
		sum:   oneShot(t1ha0.SumAESAVX2),
		check: t1ha0.SumAESAVX2,
		refs:  fixed(&selfcheck.RefAESB),
	},
	{
		name:  "t1ha1",
		usage: "portable 64-bit body, host byte order",
		sum:   oneShot(t1ha1.Sum),
		check: t1ha1.Sum,
		refs:  native(&selfcheck.Ref64LE, &selfcheck.Ref64BE),
	},
	{
		name:  "t1ha1-le",
		usage: "portable 64-bit body, little-endian reads",
		sum:   oneShot(t1ha1.SumLE),
		check: t1ha1.SumLE,
		refs:  fixed(&selfcheck.Ref64LE),
	},
	{
		name:  "t1ha1-be",
		usage: "portable 64-bit body, big-endian reads",
		sum:   oneShot(t1ha1.SumBE),
		check: t1ha1.SumBE,
		refs:  fixed(&selfcheck.Ref64BE),
	},
	{
		name:  "t1ha2",
		usage: "t1ha2 64-bit, whole input at once",
		sum:   oneShot(t1ha2.Sum64),
		check: t1ha2.Sum64,
		refs:  fixed(&selfcheck.Ref2AtOnce),
	},
	{
		name:  "t1ha2-128",
		usage: "t1ha2 128-bit, whole input at once",
		sum: func(data []byte, s seeds) string {
			return t1ha2.Sum128(data, s.x).String()
		},
		check: func(data []byte, seed uint64) uint64 { return t1ha2.Sum128(data, seed).Lo },
		refs:  fixed(&selfcheck.Ref2AtOnce128),
	},
	{
		name:  "t1ha2-stream",
		usage: "t1ha2 64-bit, incremental (uses --seed2)",
		newWriter: func(s seeds) digestWriter {
			return &streamWriter{h: t1ha2.New(s.x, s.y)}
		},
		check: func(data []byte, seed uint64) uint64 { return t1ha2.SumStream64(data, seed, seed) },
		refs:  fixed(&selfcheck.Ref2Stream),
	},
	{
		name:  "t1ha2-stream-128",
		usage: "t1ha2 128-bit, incremental (uses --seed2)",
		newWriter: func(s seeds) digestWriter {
			return &streamWriter{h: t1ha2.New(s.x, s.y), wide: true}
		},
		check: func(data []byte, seed uint64) uint64 { return t1ha2.SumStream128(data, seed, seed).Lo },
		refs:  fixed(&selfcheck.Ref2Stream128),
	},
}

// bodyRefs returns the reference table matching a t1ha0 body.
func bodyRefs(b *t1ha0.Body) []uint64 {
	switch b.Name() {
	case "t1ha0-aes-avx2":
		return selfcheck.RefAESB[:]
	case "t1ha0-aes-avx", "t1ha0-aes":
		return selfcheck.RefAESA[:]
	case "t1ha1":
		return native(&selfcheck.Ref64LE, &selfcheck.Ref64BE)()
	default:
		return native(&selfcheck.Ref32LE, &selfcheck.Ref32BE)()
	}
}

func lookupAlgorithm(name string) (*algorithm, error) {
	i := slices.IndexFunc(algorithms, func(a *algorithm) bool { return a.name == name })
	if i < 0 {
		return nil, fmt.Errorf("unknown algorithm %q (want one of %s)", name, strings.Join(algorithmNames(), ", "))
	}
	return algorithms[i], nil
}

func algorithmNames() []string {
	names := make([]string, len(algorithms))
	for i, a := range algorithms {
		names[i] = a.name
	}
	return names
}

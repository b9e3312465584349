package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/t1ha/internal/mmap"
	"github.com/hupe1980/t1ha/internal/resource"
)

// codec names a compression format for --decompress.
type codec string

const (
	codecAuto codec = "auto"
	codecNone codec = "none"
	codecGzip codec = "gzip"
	codecZstd codec = "zstd"
	codecLZ4  codec = "lz4"
)

var codecs = []codec{codecAuto, codecNone, codecGzip, codecZstd, codecLZ4}

var magics = []struct {
	codec codec
	magic []byte
}{
	{codecGzip, []byte{0x1f, 0x8b}},
	{codecZstd, []byte{0x28, 0xb5, 0x2f, 0xfd}},
	{codecLZ4, []byte{0x04, 0x22, 0x4d, 0x18}},
}

// maxMagic is the longest signature in magics.
const maxMagic = 4

func parseCodec(s string) (codec, error) {
	c := codec(s)
	if !slices.Contains(codecs, c) {
		return "", fmt.Errorf("unknown --decompress value %q", s)
	}
	return c, nil
}

// detectCodec sniffs the leading bytes of an input.
func detectCodec(head []byte) codec {
	for _, m := range magics {
		if bytes.HasPrefix(head, m.magic) {
			return m.codec
		}
	}
	return codecNone
}

// decompressor wraps r for c. The returned closer releases decoder state.
func decompressor(c codec, r io.Reader) (io.Reader, io.Closer, error) {
	switch c {
	case codecGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("gzip: %w", err)
		}
		return zr, zr, nil
	case codecZstd:
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("zstd: %w", err)
		}
		rc := d.IOReadCloser()
		return rc, rc, nil
	case codecLZ4:
		return lz4.NewReader(r), nil, nil
	default:
		return r, nil, nil
	}
}

// inputConfig controls how inputs are opened.
type inputConfig struct {
	stdin      io.Reader
	mmap       bool
	decompress codec
	rc         *resource.Controller
}

// source is an opened input. Mapped inputs expose data directly; all
// others are read through r.
type source struct {
	name   string
	mapped bool
	data   []byte
	r      io.Reader
	size   int64 // -1 when unknown up front

	closers []io.Closer
}

func (s *source) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i].Close())
	}
	return errors.Join(errs...)
}

// openSource opens name ("-" is stdin) according to cfg.
func openSource(ctx context.Context, name string, cfg inputConfig) (*source, error) {
	src := &source{name: name, size: -1}

	if name == "-" {
		if err := src.wrap(ctx, cfg.stdin, cfg); err != nil {
			return nil, err
		}
		return src, nil
	}

	if cfg.mmap {
		m, err := mmap.Open(name)
		switch {
		case err == nil:
			if err := src.fromMapping(ctx, m, cfg); err != nil {
				return nil, err
			}
			return src, nil
		case errors.Is(err, mmap.ErrNotRegular), errors.Is(err, errors.ErrUnsupported):
			// Pipes and unsupported platforms fall back to plain reads.
		default:
			return nil, err
		}
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	src.closers = append(src.closers, f)

	if fi, err := f.Stat(); err == nil && fi.Mode().IsRegular() {
		src.size = fi.Size()
	}

	if err := src.wrap(ctx, f, cfg); err != nil {
		_ = src.Close()
		return nil, err
	}
	return src, nil
}

func (s *source) fromMapping(ctx context.Context, m *mmap.Mapping, cfg inputConfig) error {
	s.closers = append(s.closers, m)
	_ = m.Advise(mmap.AccessSequential)

	data := m.Bytes()
	c := cfg.decompress
	if c == codecAuto {
		c = detectCodec(data)
	}

	if c == codecNone {
		if err := cfg.rc.AcquireIO(ctx, len(data)); err != nil {
			_ = s.Close()
			return err
		}
		s.mapped = true
		s.data = data
		s.size = int64(len(data))
		return nil
	}

	// Compressed mappings are decoded like any other stream.
	cfg.decompress = c
	if err := s.wrap(ctx, bytes.NewReader(data), cfg); err != nil {
		_ = s.Close()
		return err
	}
	return nil
}

// wrap layers rate limiting and decompression over r.
func (s *source) wrap(ctx context.Context, r io.Reader, cfg inputConfig) error {
	br := bufio.NewReader(resource.NewRateLimitedReader(ctx, r, cfg.rc))

	c := cfg.decompress
	if c == codecAuto {
		head, err := br.Peek(maxMagic)
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		c = detectCodec(head)
	}

	dr, closer, err := decompressor(c, br)
	if err != nil {
		return fmt.Errorf("%s: %w", s.name, err)
	}
	if closer != nil {
		s.closers = append(s.closers, closer)
	}
	if c != codecNone {
		s.size = -1
	}
	s.r = dr
	return nil
}

// readChunk is the first reservation when the input size is unknown.
const readChunk = 64 << 10

// reserve books n more bytes for a reader already holding held. Only a
// reader holding nothing may block; growing readers fail instead, so two
// jobs can never wait on each other.
func reserve(ctx context.Context, rc *resource.Controller, held, n int64) error {
	if held == 0 {
		return rc.AcquireMemory(ctx, n)
	}
	if !rc.TryAcquireMemory(n) {
		return fmt.Errorf("%w: input outgrew %d buffered bytes", resource.ErrMemoryLimitExceeded, held)
	}
	return nil
}

// readBudgeted reads all of r, reserving memory from rc as the buffer
// grows. The returned release func returns the reservation.
func readBudgeted(ctx context.Context, r io.Reader, size int64, rc *resource.Controller) ([]byte, func(), error) {
	var reserved int64
	release := func() { rc.ReleaseMemory(reserved) }

	if size >= 0 {
		if err := rc.AcquireMemory(ctx, size); err != nil {
			return nil, func() {}, err
		}
		reserved = size

		buf := make([]byte, size)
		if _, err := io.ReadFull(r, buf); err != nil {
			release()
			return nil, func() {}, err
		}
		return buf, release, nil
	}

	var buf []byte
	for {
		if len(buf) == cap(buf) {
			grow := max(cap(buf), readChunk)
			if err := reserve(ctx, rc, reserved, int64(grow)); err != nil {
				release()
				return nil, func() {}, err
			}
			reserved += int64(grow)
			buf = slices.Grow(buf, grow)
		}

		n, err := r.Read(buf[len(buf):cap(buf)])
		buf = buf[:len(buf)+n]
		if errors.Is(err, io.EOF) {
			return buf, release, nil
		}
		if err != nil {
			release()
			return nil, func() {}, err
		}
	}
}

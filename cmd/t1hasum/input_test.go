package main

import (
	"bytes"
	"context"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/t1ha/internal/resource"
	"github.com/hupe1980/t1ha/internal/testutil"
)

func TestDetectCodec(t *testing.T) {
	tests := []struct {
		head []byte
		want codec
	}{
		{nil, codecNone},
		{[]byte{0x1f}, codecNone},
		{[]byte{0x1f, 0x8b, 0x08}, codecGzip},
		{[]byte{0x28, 0xb5, 0x2f, 0xfd}, codecZstd},
		{[]byte{0x04, 0x22, 0x4d, 0x18, 0x64}, codecLZ4},
		{[]byte("plain text"), codecNone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, detectCodec(tt.head), "%x", tt.head)
	}
}

func TestParseCodec(t *testing.T) {
	for _, c := range codecs {
		got, err := parseCodec(string(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	_, err := parseCodec("xz")
	assert.Error(t, err)
}

func TestReadBudgeted(t *testing.T) {
	ctx := context.Background()
	data := testutil.NewRNG(6).Bytes(200 << 10)

	t.Run("known size", func(t *testing.T) {
		rc := resource.NewController(resource.Config{MemoryLimitBytes: 1 << 20})
		got, release, err := readBudgeted(ctx, bytes.NewReader(data), int64(len(data)), rc)
		require.NoError(t, err)
		assert.Equal(t, data, got)
		assert.Equal(t, int64(len(data)), rc.MemoryUsage())

		release()
		assert.Zero(t, rc.MemoryUsage())
	})

	t.Run("unknown size", func(t *testing.T) {
		rc := resource.NewController(resource.Config{MemoryLimitBytes: 1 << 20})
		got, release, err := readBudgeted(ctx, iotest.HalfReader(bytes.NewReader(data)), -1, rc)
		require.NoError(t, err)
		assert.Equal(t, data, got)
		assert.GreaterOrEqual(t, rc.MemoryUsage(), int64(len(data)))

		release()
		assert.Zero(t, rc.MemoryUsage())
	})

	t.Run("over budget", func(t *testing.T) {
		rc := resource.NewController(resource.Config{MemoryLimitBytes: 100 << 10})
		_, release, err := readBudgeted(ctx, bytes.NewReader(data), -1, rc)
		require.ErrorIs(t, err, resource.ErrMemoryLimitExceeded)
		release()
		assert.Zero(t, rc.MemoryUsage())
	})

	t.Run("read error", func(t *testing.T) {
		rc := resource.NewController(resource.Config{})
		_, _, err := readBudgeted(ctx, iotest.ErrReader(assert.AnError), -1, rc)
		require.ErrorIs(t, err, assert.AnError)
		assert.Zero(t, rc.MemoryUsage())
	})
}

package t1ha

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/t1ha/t1ha0"
)

func TestSum64(t *testing.T) {
	data := []byte("hello, world")

	assert.Equal(t, t1ha0.Sum(data, 1), Sum64(data, 1))
	assert.Equal(t, Sum64(data, 1), Sum64String("hello, world", 1))
	assert.Equal(t, Sum64(nil, 9), Sum64String("", 9))
	assert.Equal(t, t1ha0.Implementation().Name(), Implementation())
}

func TestHasher(t *testing.T) {
	h := New(42)
	assert.Equal(t, uint64(42), h.Sum64())

	n, err := h.Write([]byte("key"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, t1ha0.Sum([]byte("key"), 42), h.Sum64())

	// Each write chains off the previous state.
	_, _ = h.WriteString("more")
	assert.Equal(t, t1ha0.Sum([]byte("more"), t1ha0.Sum([]byte("key"), 42)), h.Sum64())

	sum := h.Sum(nil)
	require.Len(t, sum, h.Size())
	assert.Equal(t, h.Sum64(), binary.BigEndian.Uint64(sum))

	h.Reset()
	assert.Equal(t, uint64(42), h.Sum64())
	assert.Equal(t, t1ha0.Implementation().BlockSize(), h.BlockSize())
	assert.Contains(t, []int{16, 32, 128}, h.BlockSize())
}

func TestHasherAsMapKey(t *testing.T) {
	keys := []string{"alpha", "beta", "gamma", "delta"}
	seen := make(map[uint64]string, len(keys))

	h := New(0)
	for _, k := range keys {
		h.Reset()
		_, _ = h.WriteString(k)
		seen[h.Sum64()] = k
	}

	assert.Len(t, seen, len(keys))
}

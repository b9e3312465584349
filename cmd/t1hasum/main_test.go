package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/t1ha/internal/testutil"
	"github.com/hupe1980/t1ha/t1ha1"
	"github.com/hupe1980/t1ha/t1ha2"
)

func execute(t *testing.T, stdin []byte, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	a := &app{stdin: bytes.NewReader(stdin), stdout: &stdout, stderr: &stderr}
	cmd := newRootCmd(a)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func line(digest, name string) string { return digest + "  " + name + "\n" }

// expected digests data in memory, bypassing the input pipeline.
func expected(t *testing.T, name string, data []byte, s seeds) string {
	t.Helper()
	a, err := lookupAlgorithm(name)
	require.NoError(t, err)

	if a.streaming() {
		w := a.newWriter(s)
		_, _ = w.Write(data)
		return w.Digest()
	}
	return a.sum(data, s)
}

func TestSumDefaultCommand(t *testing.T) {
	data := []byte("The quick brown fox jumps over the lazy dog")
	path := writeFile(t, "fox.txt", data)

	out, _, err := execute(t, nil, path)
	require.NoError(t, err)
	assert.Equal(t, line(hex64(t1ha2.Sum64(data, 0)), path), out)
}

func TestSumStdin(t *testing.T) {
	data := testutil.NewRNG(1).Bytes(1000)

	out, _, err := execute(t, data, "sum", "--algo", "t1ha1-le", "--seed", "0x2a")
	require.NoError(t, err)
	assert.Equal(t, line(hex64(t1ha1.SumLE(data, 42)), "-"), out)
}

func TestSumKnownDigests(t *testing.T) {
	data := testutil.NewRNG(3).Bytes(777)
	path := writeFile(t, "data.bin", data)

	tests := []struct {
		algo string
		args []string
		want string
	}{
		{"t1ha2", []string{"--seed", "5"}, hex64(t1ha2.Sum64(data, 5))},
		{"t1ha2-128", []string{"--seed", "5"}, t1ha2.Sum128(data, 5).String()},
		{"t1ha2-stream", []string{"--seed", "1", "--seed2", "2"}, hex64(t1ha2.SumStream64(data, 1, 2))},
		{"t1ha2-stream-128", []string{"--seed", "7"}, t1ha2.SumStream128(data, 7, 7).String()},
		{"t1ha1-be", nil, hex64(t1ha1.SumBE(data, 0))},
	}

	for _, tt := range tests {
		t.Run(tt.algo, func(t *testing.T) {
			args := append([]string{"sum", "--algo", tt.algo}, tt.args...)
			out, _, err := execute(t, nil, append(args, path)...)
			require.NoError(t, err)
			assert.Equal(t, line(tt.want, path), out)
		})
	}
}

func TestSumEveryAlgorithm(t *testing.T) {
	data := testutil.NewRNG(4).Bytes(4099)
	path := writeFile(t, "data.bin", data)

	for _, name := range algorithmNames() {
		for _, mmap := range []string{"--mmap=true", "--mmap=false"} {
			t.Run(name+"/"+mmap, func(t *testing.T) {
				out, _, err := execute(t, nil, "--algo", name, "--seed", "9", mmap, path)
				require.NoError(t, err)
				assert.Equal(t, line(expected(t, name, data, seeds{9, 9}), path), out)
			})
		}
	}
}

func TestSumEmptyFile(t *testing.T) {
	path := writeFile(t, "empty", nil)

	out, _, err := execute(t, nil, "--algo", "t1ha1-le", "--seed", "18446744073709551615", path)
	require.NoError(t, err)
	assert.Equal(t, line("6a580668d6048674", path), out)
}

func compressed(t *testing.T, c codec, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer

	switch c {
	case codecGzip:
		w := gzip.NewWriter(&buf)
		_, err := w.Write(data)
		require.NoError(t, err)
		require.NoError(t, w.Close())
	case codecZstd:
		w, err := zstd.NewWriter(&buf)
		require.NoError(t, err)
		_, err = w.Write(data)
		require.NoError(t, err)
		require.NoError(t, w.Close())
	case codecLZ4:
		w := lz4.NewWriter(&buf)
		_, err := w.Write(data)
		require.NoError(t, err)
		require.NoError(t, w.Close())
	default:
		t.Fatalf("no encoder for %s", c)
	}
	return buf.Bytes()
}

func TestSumDecompress(t *testing.T) {
	data := bytes.Repeat([]byte("t1ha compresses well "), 500)
	want := hex64(t1ha2.Sum64(data, 0))

	for _, c := range []codec{codecGzip, codecZstd, codecLZ4} {
		path := writeFile(t, "data."+string(c), compressed(t, c, data))

		for _, mode := range []string{string(c), string(codecAuto)} {
			for _, mmap := range []string{"--mmap=true", "--mmap=false"} {
				t.Run(string(c)+"/"+mode+"/"+mmap, func(t *testing.T) {
					out, _, err := execute(t, nil, "--decompress", mode, mmap, path)
					require.NoError(t, err)
					assert.Equal(t, line(want, path), out)
				})
			}
		}
	}
}

func TestSumDecompressStdin(t *testing.T) {
	data := []byte("streamed through a pipe")
	in := compressed(t, codecZstd, data)

	out, _, err := execute(t, in, "--algo", "t1ha2-stream", "--decompress", "auto")
	require.NoError(t, err)
	assert.Equal(t, line(hex64(t1ha2.SumStream64(data, 0, 0)), "-"), out)
}

func TestSumDecompressAutoPlain(t *testing.T) {
	data := []byte("x")
	path := writeFile(t, "short", data)

	out, _, err := execute(t, nil, "--decompress", "auto", "--mmap=false", path)
	require.NoError(t, err)
	assert.Equal(t, line(hex64(t1ha2.Sum64(data, 0)), path), out)
}

func TestSumOrderAndFailures(t *testing.T) {
	rng := testutil.NewRNG(8)
	dir := t.TempDir()

	var args, want []string
	for i := 0; i < 12; i++ {
		data := rng.Bytes(rng.Intn(5000))
		path := filepath.Join(dir, strings.Repeat("f", i+1))
		require.NoError(t, os.WriteFile(path, data, 0o600))
		args = append(args, path)
		want = append(want, line(hex64(t1ha2.Sum64(data, 0)), path))
	}
	missing := filepath.Join(dir, "missing")
	args = append(args[:5:5], append([]string{missing}, args[5:]...)...)

	out, stderr, err := execute(t, nil, append([]string{"--jobs", "3"}, args...)...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 13 inputs failed")
	assert.Equal(t, strings.Join(want, ""), out)
	assert.Contains(t, stderr, missing)
}

func TestSumMemoryLimit(t *testing.T) {
	path := writeFile(t, "big", make([]byte, 100))

	_, stderr, err := execute(t, nil, "--mmap=false", "--mem-limit", "10", path)
	require.Error(t, err)
	assert.Contains(t, stderr, "memory limit exceeded")

	// Mapped inputs and streams do not buffer.
	_, _, err = execute(t, nil, "--mem-limit", "10", path)
	require.NoError(t, err)
	_, _, err = execute(t, nil, "--mmap=false", "--mem-limit", "10", "--algo", "t1ha2-stream", path)
	require.NoError(t, err)
}

func TestSumRateLimit(t *testing.T) {
	data := testutil.NewRNG(2).Bytes(3 << 10)
	path := writeFile(t, "r", data)

	for _, mmap := range []string{"--mmap=true", "--mmap=false"} {
		out, _, err := execute(t, nil, "--rate-limit", "1048576", mmap, path)
		require.NoError(t, err)
		assert.Equal(t, line(hex64(t1ha2.Sum64(data, 0)), path), out)
	}
}

func TestSumBadFlags(t *testing.T) {
	tests := [][]string{
		{"--algo", "md5"},
		{"--decompress", "bzip2"},
		{"--jobs", "0"},
		{"--log-format", "xml"},
		{"--log-level", "chatty"},
	}

	for _, args := range tests {
		_, _, err := execute(t, nil, args...)
		assert.Error(t, err, "%v", args)
	}
}

func TestSelfCheckCommand(t *testing.T) {
	out, _, err := execute(t, nil, "selfcheck")
	require.NoError(t, err)
	assert.NotContains(t, out, "FAIL")

	for _, name := range algorithmNames() {
		assert.Contains(t, out, "ok    "+name+"\n")
	}
	assert.Contains(t, out, "t1ha0[")
}

func TestCPUCommand(t *testing.T) {
	out, _, err := execute(t, nil, "cpu", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, out, "t1ha0 body:")
	assert.Contains(t, out, "active isa:")
}

func TestAlgosCommand(t *testing.T) {
	out, _, err := execute(t, nil, "algos")
	require.NoError(t, err)
	for _, name := range algorithmNames() {
		assert.Contains(t, out, name)
	}
}

func TestDebugLogging(t *testing.T) {
	path := writeFile(t, "a", []byte("abc"))

	_, stderr, err := execute(t, nil, "--log-level", "debug", "--log-format", "json", "--algo", "t1ha0", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"digest computed"`)
	assert.Contains(t, stderr, `"msg":"t1ha0 body resolved"`)
	assert.Contains(t, stderr, `"file":"`+path+`"`)
	assert.Contains(t, stderr, `"seed":0`)
}

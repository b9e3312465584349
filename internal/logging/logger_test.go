package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		level   string
		wantErr bool
	}{
		{"text default", "", "info", false},
		{"text", "text", "debug", false},
		{"json", "JSON", "warn", false},
		{"bad format", "xml", "info", true},
		{"bad level", "text", "loud", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(&bytes.Buffer{}, tt.format, tt.level)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

func TestJSONFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewJSONLogger(&buf, slog.LevelDebug).WithAlgo("t1ha2").WithSeed(7)

	l.WithFile("a.bin").LogDigest(context.Background(), 12, time.Millisecond, nil)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "digest computed", rec["msg"])
	assert.Equal(t, "t1ha2", rec["algo"])
	assert.Equal(t, "a.bin", rec["file"])
	assert.EqualValues(t, 12, rec["bytes"])
	assert.EqualValues(t, 7, rec["seed"])
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewTextLogger(&buf, slog.LevelInfo)
	ctx := context.Background()

	l.WithFile("quiet").LogDigest(ctx, 1, 0, nil)
	assert.Empty(t, buf.String())

	l.LogSelfCheck(ctx, "t1ha1-le", 81, nil)
	assert.Contains(t, buf.String(), "self-check passed")

	buf.Reset()
	l.WithFile("x").LogDigest(ctx, 0, 0, errors.New("boom"))
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "file=x")
	assert.Contains(t, buf.String(), "boom")

	buf.Reset()
	l.LogDispatch(ctx, "avx2", "t1ha0-aes-avx2", false)
	assert.Empty(t, buf.String())
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}

package kdforest

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/hupe1980/kdforest/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	points := testutil.NewRNG(50).UniformPoints(100, 3)
	f, err := New(points, 100, 3, func(o *Options[float32]) { o.Logger = logger })
	require.NoError(t, err)

	_, err = f.SearchByIndex(4, 3, 30)
	require.NoError(t, err)
	_, err = f.Search([]float32{0}, 3, 30)
	require.Error(t, err)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 3)

	assert.Equal(t, "forest built", lines[0]["msg"])
	assert.Equal(t, "INFO", lines[0]["level"])
	assert.EqualValues(t, 100, lines[0]["points"])
	assert.EqualValues(t, DefaultNumTrees, lines[0]["trees"])

	assert.Equal(t, "search completed", lines[1]["msg"])
	assert.Equal(t, "DEBUG", lines[1]["level"])
	assert.EqualValues(t, 3, lines[1]["results"])

	assert.Equal(t, "search failed", lines[2]["msg"])
	assert.Equal(t, "ERROR", lines[2]["level"])
}

func TestLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, nil)).WithK(10).WithDimension(128).WithCount(3)

	logger.LogBatchSearch(context.Background(), 3, assert.AnError)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "batch search aborted", lines[0]["msg"])
	assert.EqualValues(t, 10, lines[0]["k"])
	assert.EqualValues(t, 128, lines[0]["dimension"])
	assert.EqualValues(t, 3, lines[0]["count"])
}

func TestNoopLogger(t *testing.T) {
	logger := NoopLogger()
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
}

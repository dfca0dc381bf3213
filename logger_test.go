package spatialmap

import (
	"bytes"
	"log/slog"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	m := New(pointX, pointY, WithLogger(logger))

	require.NoError(t, m.Add(point{1, 2}))
	assert.Contains(t, buf.String(), `"msg":"add completed"`)
	assert.Contains(t, buf.String(), `"x":1`)

	buf.Reset()
	m.Remove(point{5, 5})
	assert.Contains(t, buf.String(), "remove skipped")

	buf.Reset()
	m.Nearest(point{0, 0})
	assert.Contains(t, buf.String(), `"msg":"nearest completed"`)
	assert.Contains(t, buf.String(), `"found":true`)

	buf.Reset()
	_ = slices.Collect(m.NearbyPoint(1, 2, 1))
	assert.Contains(t, buf.String(), `"results":1`)
}

func TestLogger_Batch(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	m := New(pointX, pointY, WithLogger(logger))

	require.NoError(t, m.AddBatch(point{1, 1}, point{2, 2}))
	assert.Contains(t, buf.String(), "batch add completed")
	assert.Contains(t, buf.String(), "count=2")

	buf.Reset()
	require.Error(t, m.AddBatch(point{1, nan()}))
	assert.Contains(t, buf.String(), "batch add failed")
	assert.Contains(t, buf.String(), "count=1")
}

func TestLogger_AddFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, nil))

	m := New(pointX, pointY, WithLogger(logger))

	require.Error(t, m.Add(point{nan(), 2}))
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "invalid x coordinate")
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(t.Context(), slog.LevelError))

	m := New(pointX, pointY, WithLogger(nil))
	require.NotNil(t, m.logger)
}

func TestLogger_WithCount(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, nil)).WithCount(3)

	l.Info("hello")
	assert.Contains(t, buf.String(), "count=3")
}

package spatialmap

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		m := Builder(pointX, pointY).Build()

		assert.Equal(t, DefaultMaxConcurrency, m.maxConcurrency)
		assert.IsType(t, NoopMetricsCollector{}, m.metrics)
		require.NotNil(t, m.logger)
	})

	t.Run("Configured", func(t *testing.T) {
		mc := &BasicMetricsCollector{}
		m := Builder(pointX, pointY).
			Capacity(128).
			MaxConcurrency(2).
			LogLevel(slog.LevelWarn).
			Metrics(mc).
			Build()

		assert.Equal(t, 2, m.maxConcurrency)
		assert.Same(t, mc, m.metrics)

		require.NoError(t, m.Add(point{1, 1}))
		assert.Equal(t, int64(1), mc.GetStats().AddCount)
	})

	t.Run("Immutable", func(t *testing.T) {
		base := Builder(pointX, pointY)
		_ = base.MaxConcurrency(1)

		assert.Equal(t, DefaultMaxConcurrency, base.Build().maxConcurrency)
	})
}

func TestApplyOptions(t *testing.T) {
	o := applyOptions([]Option{nil, WithInitialCapacity(-5), WithMaxConcurrency(-1)})

	assert.Equal(t, 0, o.initialCapacity)
	assert.Equal(t, DefaultMaxConcurrency, o.maxConcurrency)

	logger := NoopLogger()
	o = applyOptions([]Option{WithLogger(logger), WithLogLevel(slog.LevelDebug)})
	assert.NotSame(t, logger, o.logger, "later options win")
}

// Package spatialmap provides an in-memory spatial index.
//
// This file implements an immutable fluent builder for creating and configuring SpatialMap instances.
package spatialmap

import "log/slog"

// Builder creates a new immutable SpatialMap builder for the given coordinate accessors.
//
// Each method returns a new builder with the updated configuration.
//
// Example:
//
//	m := spatialmap.Builder(xOf, yOf).
//	    Capacity(10_000).
//	    Metrics(&spatialmap.BasicMetricsCollector{}).
//	    Build()
func Builder[T comparable](x, y func(T) float64) MapBuilder[T] {
	return MapBuilder[T]{
		x:              x,
		y:              y,
		maxConcurrency: DefaultMaxConcurrency,
	}
}

// MapBuilder is an immutable fluent builder for creating SpatialMap instances.
type MapBuilder[T comparable] struct {
	x, y           func(T) float64
	capacity       int
	maxConcurrency int
	logger         *Logger
	metrics        MetricsCollector
}

// Capacity pre-sizes both axis maps for n distinct coordinates.
func (b MapBuilder[T]) Capacity(n int) MapBuilder[T] {
	b.capacity = n
	return b
}

// MaxConcurrency bounds the goroutines used by NearestBatch.
// Default: 8.
func (b MapBuilder[T]) MaxConcurrency(n int) MapBuilder[T] {
	b.maxConcurrency = n
	return b
}

// Logger sets the structured logger.
func (b MapBuilder[T]) Logger(l *Logger) MapBuilder[T] {
	b.logger = l
	return b
}

// LogLevel sets a text logger at the given level.
func (b MapBuilder[T]) LogLevel(level slog.Level) MapBuilder[T] {
	b.logger = NewTextLogger(level)
	return b
}

// Metrics sets the metrics collector.
func (b MapBuilder[T]) Metrics(mc MetricsCollector) MapBuilder[T] {
	b.metrics = mc
	return b
}

// Build creates the SpatialMap.
func (b MapBuilder[T]) Build() *SpatialMap[T] {
	opts := []Option{
		WithInitialCapacity(b.capacity),
		WithMaxConcurrency(b.maxConcurrency),
	}
	if b.logger != nil {
		opts = append(opts, WithLogger(b.logger))
	}
	if b.metrics != nil {
		opts = append(opts, WithMetricsCollector(b.metrics))
	}
	return New(b.x, b.y, opts...)
}

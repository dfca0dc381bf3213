package spatialmap

import "log/slog"

// DefaultMaxConcurrency bounds the goroutines used by NearestBatch.
const DefaultMaxConcurrency = 8

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	initialCapacity  int
	maxConcurrency   int
}

// Option configures SpatialMap constructor behavior.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &spatialmap.BasicMetricsCollector{}
//	m := spatialmap.New(xOf, yOf, spatialmap.WithMetricsCollector(metrics))
//	// ... use m ...
//	stats := metrics.GetStats()
//	fmt.Printf("Nearest: %d, Avg latency: %dns\n", stats.NearestCount, stats.NearestAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := spatialmap.NewJSONLogger(slog.LevelDebug)
//	m := spatialmap.New(xOf, yOf, spatialmap.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithInitialCapacity pre-sizes both axis maps for n distinct coordinates.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		o.initialCapacity = n
	}
}

// WithMaxConcurrency bounds the number of goroutines NearestBatch runs at once.
// Values <= 0 select DefaultMaxConcurrency.
func WithMaxConcurrency(n int) Option {
	return func(o *options) {
		o.maxConcurrency = n
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		maxConcurrency:   DefaultMaxConcurrency,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.initialCapacity < 0 {
		o.initialCapacity = 0
	}
	if o.maxConcurrency <= 0 {
		o.maxConcurrency = DefaultMaxConcurrency
	}
	return o
}

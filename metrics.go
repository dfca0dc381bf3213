package spatialmap

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordAdd is called after each Add or AddBatch.
	// count is the number of elements submitted, err is nil if successful.
	RecordAdd(count int, duration time.Duration, err error)

	// RecordRemove is called after each Remove.
	RecordRemove(duration time.Duration, removed bool)

	// RecordNearest is called after each nearest-neighbour lookup.
	// scanned is the number of distinct elements distance-checked.
	RecordNearest(scanned int, duration time.Duration, found bool)

	// RecordNearby is called when a radius query sequence finishes or is abandoned.
	RecordNearby(scanned, results int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAdd(int, time.Duration, error)    {}
func (NoopMetricsCollector) RecordRemove(time.Duration, bool)       {}
func (NoopMetricsCollector) RecordNearest(int, time.Duration, bool) {}
func (NoopMetricsCollector) RecordNearby(int, int, time.Duration)   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AddCount          atomic.Int64
	AddItems          atomic.Int64
	AddErrors         atomic.Int64
	AddTotalNanos     atomic.Int64
	RemoveCount       atomic.Int64
	RemoveMisses      atomic.Int64
	NearestCount      atomic.Int64
	NearestMisses     atomic.Int64
	NearestScanned    atomic.Int64
	NearestTotalNanos atomic.Int64
	NearbyCount       atomic.Int64
	NearbyScanned     atomic.Int64
	NearbyResults     atomic.Int64
	NearbyTotalNanos  atomic.Int64
}

// RecordAdd implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAdd(count int, duration time.Duration, err error) {
	b.AddCount.Add(1)
	b.AddTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.AddErrors.Add(1)
		return
	}
	b.AddItems.Add(int64(count))
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(duration time.Duration, removed bool) {
	b.RemoveCount.Add(1)
	if !removed {
		b.RemoveMisses.Add(1)
	}
}

// RecordNearest implements MetricsCollector.
func (b *BasicMetricsCollector) RecordNearest(scanned int, duration time.Duration, found bool) {
	b.NearestCount.Add(1)
	b.NearestScanned.Add(int64(scanned))
	b.NearestTotalNanos.Add(duration.Nanoseconds())
	if !found {
		b.NearestMisses.Add(1)
	}
}

// RecordNearby implements MetricsCollector.
func (b *BasicMetricsCollector) RecordNearby(scanned, results int, duration time.Duration) {
	b.NearbyCount.Add(1)
	b.NearbyScanned.Add(int64(scanned))
	b.NearbyResults.Add(int64(results))
	b.NearbyTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AddCount:        b.AddCount.Load(),
		AddItems:        b.AddItems.Load(),
		AddErrors:       b.AddErrors.Load(),
		AddAvgNanos:     avg(b.AddTotalNanos.Load(), b.AddCount.Load()),
		RemoveCount:     b.RemoveCount.Load(),
		RemoveMisses:    b.RemoveMisses.Load(),
		NearestCount:    b.NearestCount.Load(),
		NearestMisses:   b.NearestMisses.Load(),
		NearestScanned:  b.NearestScanned.Load(),
		NearestAvgNanos: avg(b.NearestTotalNanos.Load(), b.NearestCount.Load()),
		NearbyCount:     b.NearbyCount.Load(),
		NearbyScanned:   b.NearbyScanned.Load(),
		NearbyResults:   b.NearbyResults.Load(),
		NearbyAvgNanos:  avg(b.NearbyTotalNanos.Load(), b.NearbyCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AddCount        int64
	AddItems        int64
	AddErrors       int64
	AddAvgNanos     int64
	RemoveCount     int64
	RemoveMisses    int64
	NearestCount    int64
	NearestMisses   int64
	NearestScanned  int64
	NearestAvgNanos int64
	NearbyCount     int64
	NearbyScanned   int64
	NearbyResults   int64
	NearbyAvgNanos  int64
}

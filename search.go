package spatialmap

import (
	"context"
	"iter"
	"math"
	"slices"
	"time"

	"github.com/hupe1980/spatialmap/distance"
	"github.com/hupe1980/spatialmap/internal/sortedmap"
	"github.com/hupe1980/spatialmap/internal/visited"
)

// Nearest returns the stored element closest to e by Euclidean distance.
//
// e itself is returned if it is stored. The boolean is false when the map
// is empty or e has invalid coordinates.
func (m *SpatialMap[T]) Nearest(e T) (T, bool) {
	if isNil(e) {
		var zero T
		return zero, false
	}
	x, y, err := m.coordinates(e)
	if err != nil {
		var zero T
		return zero, false
	}
	return m.NearestPoint(x, y)
}

// NearestPoint returns the stored element closest to (x, y).
//
// Ties are resolved in favour of the first element encountered.
func (m *SpatialMap[T]) NearestPoint(x, y float64) (T, bool) {
	var nearest T
	if !distance.Finite(x) || !distance.Finite(y) {
		return nearest, false
	}

	start := time.Now()

	m.mu.RLock()
	defer m.mu.RUnlock()

	seen := m.visited.Get()
	defer m.visited.Put(seen)

	s := sweep[T]{
		x:       x,
		y:       y,
		xOf:     m.xOf,
		yOf:     m.yOf,
		seen:    seen,
		best:    math.Inf(1),
		nearest: nearest,
	}
	s.run(m.xs, x)
	s.run(m.ys, y)

	m.metrics.RecordNearest(seen.Len(), time.Since(start), s.found)
	m.logger.LogNearest(context.Background(), x, y, seen.Len(), s.found)

	return s.nearest, s.found
}

// sweep holds the running state of one nearest-neighbour lookup.
type sweep[T comparable] struct {
	x, y     float64
	xOf, yOf func(T) float64
	seen     *visited.Set[T]
	best     float64
	nearest  T
	found    bool
}

// run expands outwards from q along one axis. A bucket whose coordinate gap
// to q already reaches the best distance cannot hold a closer element, and
// neither can any bucket beyond it. Out-of-range positions count as
// infinitely far.
func (s *sweep[T]) run(am *sortedmap.Map[float64, []T], q float64) {
	upper := am.RoughIndexOfKey(q)
	lower := upper - 1

	for {
		upperGap := math.Inf(1)
		if k, ok := am.KeyAt(upper); ok {
			upperGap = k - q
		}
		lowerGap := math.Inf(1)
		if k, ok := am.KeyAt(lower); ok {
			lowerGap = q - k
		}

		if upperGap >= s.best && lowerGap >= s.best {
			return
		}

		if upperGap < s.best {
			bucket, _ := am.GetByIndex(upper)
			s.scan(bucket)
			upper++
		}
		if lowerGap < s.best {
			bucket, _ := am.GetByIndex(lower)
			s.scan(bucket)
			lower--
		}
	}
}

func (s *sweep[T]) scan(bucket []T) {
	for _, e := range bucket {
		if !s.seen.Visit(e) {
			continue
		}
		if d := distance.Euclidean(s.x, s.y, s.xOf(e), s.yOf(e)); d < s.best {
			s.best = d
			s.nearest = e
			s.found = true
		}
	}
}

// Nearby returns the stored elements strictly closer than radius to e.
// See NearbyPoint.
func (m *SpatialMap[T]) Nearby(e T, radius float64) iter.Seq[T] {
	if isNil(e) {
		return func(func(T) bool) {}
	}
	x, y, err := m.coordinates(e)
	if err != nil {
		return func(func(T) bool) {}
	}
	return m.NearbyPoint(x, y, radius)
}

// NearbyPoint returns the stored elements whose distance to (x, y) is
// strictly less than radius. Each element is yielded once, in x-bucket order
// followed by y-bucket order, not sorted by distance.
//
// The sequence is recomputed on every range loop. Candidate buckets are
// captured under the read lock when the loop starts and yielded after it is
// released, so the loop body may call any method of the map, including Add
// and Remove. Such mutations are not reflected in the running loop.
//
// Example:
//
//	for p := range m.NearbyPoint(0, 0, 5) {
//	    if done(p) {
//	        break // Early termination
//	    }
//	}
func (m *SpatialMap[T]) NearbyPoint(x, y, radius float64) iter.Seq[T] {
	return func(yield func(T) bool) {
		m.nearby(context.Background(), x, y, radius, func(e T) bool {
			return yield(e)
		})
	}
}

// NearbyContext is like NearbyPoint but checks ctx before every yielded
// element. On cancellation it yields the zero value with ctx.Err() once and stops.
//
// Example:
//
//	for p, err := range m.NearbyContext(ctx, 0, 0, 5) {
//	    if err != nil {
//	        return err
//	    }
//	    process(p)
//	}
func (m *SpatialMap[T]) NearbyContext(ctx context.Context, x, y, radius float64) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		if err := ctx.Err(); err != nil {
			var zero T
			yield(zero, err)
			return
		}

		var cancelled error
		m.nearby(ctx, x, y, radius, func(e T) bool {
			if err := ctx.Err(); err != nil {
				cancelled = err
				return false
			}
			return yield(e, nil)
		})

		if cancelled != nil {
			var zero T
			yield(zero, cancelled)
		}
	}
}

// nearby scans [c-inner, c+inner) on each axis, where inner is the half side
// of the square inscribed in the query circle. Any point inside the circle
// has an offset below inner on at least one axis, so the union of both axis
// windows covers the circle; the exact distance test removes the rest.
// The windows are widened by distance.Window so rounding never drops a
// point that the exact test would accept.
func (m *SpatialMap[T]) nearby(ctx context.Context, x, y, radius float64, yield func(T) bool) {
	// NaN radius fails this test too.
	if !(radius > 0) || !distance.Finite(x) || !distance.Finite(y) {
		return
	}

	start := time.Now()
	inner := distance.InnerHalfWidth(radius)

	m.mu.RLock()
	xBuckets := window(m.xs, x, inner)
	yBuckets := window(m.ys, y, inner)
	m.mu.RUnlock()

	seen := m.visited.Get()
	defer m.visited.Put(seen)

	results := 0
	defer func() {
		m.metrics.RecordNearby(seen.Len(), results, time.Since(start))
		m.logger.LogNearby(ctx, x, y, radius, seen.Len(), results, ctx.Err())
	}()

	for _, bucket := range slices.Concat(xBuckets, yBuckets) {
		for _, e := range bucket {
			if !seen.Visit(e) {
				continue
			}
			if distance.Euclidean(x, y, m.xOf(e), m.yOf(e)) >= radius {
				continue
			}
			results++
			if !yield(e) {
				return
			}
		}
	}
}

// window returns the buckets whose keys fall in the widened range
// [c-halfWidth, c+halfWidth). Buckets are copy-on-write, so the returned
// slices stay valid after the lock is released. Requires the read lock.
func window[T any](am *sortedmap.Map[float64, []T], c, halfWidth float64) [][]T {
	lo, hi := distance.Window(c, halfWidth)
	return snapshot(am, am.RoughIndexOfKey(lo), am.RoughIndexOfKey(hi))
}

// snapshot copies the bucket headers at ordinals [lower, upper).
// Requires the read lock.
func snapshot[T any](am *sortedmap.Map[float64, []T], lower, upper int) [][]T {
	if upper <= lower {
		return nil
	}
	buckets := make([][]T, 0, upper-lower)
	for i := lower; i < upper; i++ {
		bucket, _ := am.GetByIndex(i)
		buckets = append(buckets, bucket)
	}
	return buckets
}

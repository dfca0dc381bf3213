package spatialmap

import (
	"context"
	"reflect"
	"slices"
	"sync"
	"time"

	"github.com/hupe1980/spatialmap/distance"
	"github.com/hupe1980/spatialmap/internal/sortedmap"
	"github.com/hupe1980/spatialmap/internal/visited"
)

// SpatialMap is an in-memory index over elements positioned by two coordinates.
type SpatialMap[T comparable] struct {
	mu      sync.RWMutex // Guards xs, ys and size
	xOf     func(T) float64
	yOf     func(T) float64
	xs      *sortedmap.Map[float64, []T] // x coordinate -> bucket
	ys      *sortedmap.Map[float64, []T] // y coordinate -> bucket
	size    int
	visited *visited.Pool[T]

	metrics        MetricsCollector
	logger         *Logger
	maxConcurrency int
}

// New creates an empty SpatialMap using x and y to read element coordinates.
// The accessors are fixed for the lifetime of the map and must be pure.
func New[T comparable](x, y func(T) float64, optFns ...Option) *SpatialMap[T] {
	if x == nil || y == nil {
		panic("spatialmap: nil coordinate accessor")
	}

	opts := applyOptions(optFns)

	return &SpatialMap[T]{
		xOf:            x,
		yOf:            y,
		xs:             sortedmap.New[float64, []T](opts.initialCapacity),
		ys:             sortedmap.New[float64, []T](opts.initialCapacity),
		visited:        visited.NewPool[T](),
		metrics:        opts.metricsCollector,
		logger:         opts.logger,
		maxConcurrency: opts.maxConcurrency,
	}
}

// Add inserts e into both axis maps.
// It returns an *ErrInvalidCoordinate if either coordinate is NaN or infinite.
func (m *SpatialMap[T]) Add(e T) error {
	start := time.Now()

	x, y, err := m.coordinates(e)
	if err == nil {
		m.mu.Lock()
		m.insert(e, x, y)
		m.mu.Unlock()
	}

	m.metrics.RecordAdd(1, time.Since(start), err)
	m.logger.LogAdd(context.Background(), x, y, err)

	return err
}

// AddBatch inserts all elements under a single write lock.
// Coordinates are validated first; on error nothing is inserted.
func (m *SpatialMap[T]) AddBatch(elements ...T) error {
	start := time.Now()

	xs := make([]float64, len(elements))
	ys := make([]float64, len(elements))

	var err error
	for i, e := range elements {
		if xs[i], ys[i], err = m.coordinates(e); err != nil {
			break
		}
	}

	if err == nil {
		m.mu.Lock()
		for i, e := range elements {
			m.insert(e, xs[i], ys[i])
		}
		m.mu.Unlock()
	}

	m.metrics.RecordAdd(len(elements), time.Since(start), err)
	m.logger.LogBatch(context.Background(), len(elements), err)

	return err
}

// Remove deletes one occurrence of e from the map.
//
// It reports whether e was present. Absent elements, nil pointers and
// elements with invalid coordinates are a no-op.
func (m *SpatialMap[T]) Remove(e T) bool {
	if isNil(e) {
		return false
	}

	start := time.Now()

	x, y, err := m.coordinates(e)
	removed := false
	if err == nil {
		m.mu.Lock()
		removed = m.delete(e, x, y)
		m.mu.Unlock()
	}

	m.metrics.RecordRemove(time.Since(start), removed)
	m.logger.LogRemove(context.Background(), x, y, removed)

	return removed
}

// Contains reports whether e is stored in the map.
func (m *SpatialMap[T]) Contains(e T) bool {
	if isNil(e) {
		return false
	}

	x, y, err := m.coordinates(e)
	if err != nil {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	_, _, ok := locate(m.xs, x, e)
	if !ok {
		return false
	}
	_, _, ok = locate(m.ys, y, e)
	return ok
}

// Len returns the number of stored elements.
func (m *SpatialMap[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.size
}

// Clear removes all elements.
func (m *SpatialMap[T]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.xs.Clear()
	m.ys.Clear()
	m.size = 0
}

// Distance returns the Euclidean distance between (x1, y1) and (x2, y2).
func Distance(x1, y1, x2, y2 float64) float64 {
	return distance.Euclidean(x1, y1, x2, y2)
}

func (m *SpatialMap[T]) coordinates(e T) (float64, float64, error) {
	x := m.xOf(e)
	if !distance.Finite(x) {
		return x, 0, &ErrInvalidCoordinate{Axis: AxisX, Value: x}
	}
	y := m.yOf(e)
	if !distance.Finite(y) {
		return x, y, &ErrInvalidCoordinate{Axis: AxisY, Value: y}
	}
	return x, y, nil
}

// insert requires the write lock.
func (m *SpatialMap[T]) insert(e T, x, y float64) {
	appendToBucket(m.xs, x, e)
	appendToBucket(m.ys, y, e)
	m.size++
}

// delete requires the write lock. Membership is verified on both axes
// before either axis is modified.
func (m *SpatialMap[T]) delete(e T, x, y float64) bool {
	xi, xpos, ok := locate(m.xs, x, e)
	if !ok {
		return false
	}
	yi, ypos, ok := locate(m.ys, y, e)
	if !ok {
		return false
	}

	removeFromBucket(m.xs, xi, xpos)
	removeFromBucket(m.ys, yi, ypos)
	m.size--

	return true
}

// appendToBucket and removeFromBucket treat buckets as copy-on-write: a stored
// bucket slice is never modified in place, so snapshots taken by queries stay
// valid after the lock is released.
func appendToBucket[T any](am *sortedmap.Map[float64, []T], key float64, e T) {
	if i, ok := am.IndexOfKey(key); ok {
		bucket, _ := am.GetByIndex(i)
		am.SetByIndex(i, append(slices.Clip(bucket), e))
		return
	}
	am.TryAdd(key, []T{e})
}

// removeFromBucket drops the entry at pos of the bucket at ordinal i,
// removing the key once the bucket is empty.
func removeFromBucket[T any](am *sortedmap.Map[float64, []T], i, pos int) {
	bucket, _ := am.GetByIndex(i)
	if len(bucket) <= 1 {
		am.RemoveAt(i)
		return
	}
	am.SetByIndex(i, slices.Concat(bucket[:pos], bucket[pos+1:]))
}

// locate finds the ordinal of key and the position of e within its bucket.
func locate[T comparable](am *sortedmap.Map[float64, []T], key float64, e T) (int, int, bool) {
	i, ok := am.IndexOfKey(key)
	if !ok {
		return -1, -1, false
	}
	bucket, _ := am.GetByIndex(i)
	pos := slices.Index(bucket, e)
	if pos < 0 {
		return -1, -1, false
	}
	return i, pos, true
}

func isNil[T any](v T) bool {
	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Chan, reflect.Func, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

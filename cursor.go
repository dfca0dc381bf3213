package spatialmap

import "iter"

// All returns every stored element in ascending x order and, within equal x,
// insertion order. Each range loop is an independent traversal over the
// buckets present when the loop starts; the loop body may call any method of
// the map, and its mutations are not reflected in the running loop.
func (m *SpatialMap[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		m.mu.RLock()
		buckets := snapshot(m.xs, 0, m.xs.Len())
		m.mu.RUnlock()

		for _, bucket := range buckets {
			for _, e := range bucket {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// Cursor is a positional traversal over a SpatialMap in the order of All.
//
// A Cursor is NOT safe for concurrent use, but any number of cursors may walk
// the same map independently. Each step takes the read lock; mutations
// between steps shift positions and may cause elements to be skipped or
// repeated.
type Cursor[T comparable] struct {
	m       *SpatialMap[T]
	bucket  int
	offset  int
	current T
}

// Cursor returns a new cursor positioned before the first element.
func (m *SpatialMap[T]) Cursor() *Cursor[T] {
	c := &Cursor[T]{m: m}
	c.Reset()
	return c
}

// Next advances to the next element. It returns false once the traversal
// is exhausted.
func (c *Cursor[T]) Next() bool {
	c.m.mu.RLock()
	defer c.m.mu.RUnlock()

	c.offset++
	for {
		bucket, ok := c.m.xs.GetByIndex(c.bucket)
		if !ok {
			var zero T
			c.current = zero
			return false
		}
		if c.offset < len(bucket) {
			c.current = bucket[c.offset]
			return true
		}
		c.bucket++
		c.offset = 0
	}
}

// Value returns the element at the current position.
// It is the zero value before the first Next and after exhaustion.
func (c *Cursor[T]) Value() T {
	return c.current
}

// Reset rewinds the cursor to before the first element.
func (c *Cursor[T]) Reset() {
	var zero T
	c.bucket = 0
	c.offset = -1
	c.current = zero
}

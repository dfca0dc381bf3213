// Package sortedmap provides an ordered key/value container with ordinal access.
//
// Keys are kept in ascending order in a contiguous slice, values in a parallel
// slice. Lookups are binary searches; inserts and removals shift the tail.
// Ordinal indexes are re-derived after every mutation and are not stable.
//
// Map is NOT thread-safe. Callers synchronize access.
package sortedmap

import (
	"cmp"
	"iter"
	"slices"
)

// Map is an ordered mapping from unique keys to values.
type Map[K cmp.Ordered, V any] struct {
	keys   []K
	values []V
}

// New creates an empty map with room for capacity entries.
func New[K cmp.Ordered, V any](capacity int) *Map[K, V] {
	if capacity < 0 {
		capacity = 0
	}
	return &Map[K, V]{
		keys:   make([]K, 0, capacity),
		values: make([]V, 0, capacity),
	}
}

// Len returns the number of distinct keys.
func (m *Map[K, V]) Len() int {
	return len(m.keys)
}

// TryAdd inserts key with value if key is absent.
// It returns false and leaves the map unchanged if key is already present.
func (m *Map[K, V]) TryAdd(key K, value V) bool {
	i, found := slices.BinarySearch(m.keys, key)
	if found {
		return false
	}
	m.keys = slices.Insert(m.keys, i, key)
	m.values = slices.Insert(m.values, i, value)
	return true
}

// IndexOfKey returns the ordinal position of key, or -1 and false if absent.
func (m *Map[K, V]) IndexOfKey(key K) (int, bool) {
	i, found := slices.BinarySearch(m.keys, key)
	if !found {
		return -1, false
	}
	return i, true
}

// RoughIndexOfKey returns the position of key if present, otherwise the
// position at which it would be inserted. This equals the number of keys
// strictly less than key.
func (m *Map[K, V]) RoughIndexOfKey(key K) int {
	i, _ := slices.BinarySearch(m.keys, key)
	return i
}

// GetByIndex returns the value of the index-th smallest key.
// Indexes outside [0, Len()) yield the zero value and false.
func (m *Map[K, V]) GetByIndex(index int) (V, bool) {
	if index < 0 || index >= len(m.values) {
		var zero V
		return zero, false
	}
	return m.values[index], true
}

// SetByIndex replaces the value of the index-th smallest key.
func (m *Map[K, V]) SetByIndex(index int, value V) bool {
	if index < 0 || index >= len(m.values) {
		return false
	}
	m.values[index] = value
	return true
}

// KeyAt returns the index-th smallest key.
func (m *Map[K, V]) KeyAt(index int) (K, bool) {
	if index < 0 || index >= len(m.keys) {
		var zero K
		return zero, false
	}
	return m.keys[index], true
}

// Remove deletes key and its value. It reports whether key was present.
func (m *Map[K, V]) Remove(key K) bool {
	i, found := slices.BinarySearch(m.keys, key)
	if !found {
		return false
	}
	m.RemoveAt(i)
	return true
}

// RemoveAt deletes the entry at ordinal position index.
func (m *Map[K, V]) RemoveAt(index int) bool {
	if index < 0 || index >= len(m.keys) {
		return false
	}
	m.keys = slices.Delete(m.keys, index, index+1)
	// Delete zeroes the vacated tail slot so values do not leak.
	m.values = slices.Delete(m.values, index, index+1)
	return true
}

// Clear removes all entries, keeping allocated capacity.
func (m *Map[K, V]) Clear() {
	clear(m.values)
	m.keys = m.keys[:0]
	m.values = m.values[:0]
}

// All iterates entries in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range m.keys {
			if !yield(m.keys[i], m.values[i]) {
				return
			}
		}
	}
}

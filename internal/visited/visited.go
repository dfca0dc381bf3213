// Package visited provides a reusable deduplication set for query sweeps.
package visited

import "sync"

// DefaultCapacity is the initial capacity of pooled sets.
const DefaultCapacity = 64

// maxRetained caps the size of a set returned to the pool.
const maxRetained = 1 << 16

// Set tracks elements already examined by a query.
type Set[T comparable] struct {
	seen map[T]struct{}
}

// New creates a new set.
func New[T comparable](capacity int) *Set[T] {
	return &Set[T]{
		seen: make(map[T]struct{}, capacity),
	}
}

// Visit marks v as visited. It returns true if v was not visited before.
func (s *Set[T]) Visit(v T) bool {
	if _, ok := s.seen[v]; ok {
		return false
	}
	s.seen[v] = struct{}{}
	return true
}

// Visited returns true if v has been visited.
func (s *Set[T]) Visited(v T) bool {
	_, ok := s.seen[v]
	return ok
}

// Len returns the number of visited elements.
func (s *Set[T]) Len() int {
	return len(s.seen)
}

// Reset clears the set for reuse.
func (s *Set[T]) Reset() {
	clear(s.seen)
}

// Pool recycles sets between queries of one element type.
type Pool[T comparable] struct {
	p sync.Pool
}

// NewPool creates a pool of sets.
func NewPool[T comparable]() *Pool[T] {
	return &Pool[T]{
		p: sync.Pool{
			New: func() any {
				return New[T](DefaultCapacity)
			},
		},
	}
}

// Get retrieves an empty set from the pool.
func (p *Pool[T]) Get() *Set[T] {
	return p.p.Get().(*Set[T])
}

// Put resets s and returns it to the pool. Oversized sets are dropped.
func (p *Pool[T]) Put(s *Set[T]) {
	if s == nil || s.Len() > maxRetained {
		return
	}
	s.Reset()
	p.p.Put(s)
}

package spatialmap

// Stats describes the shape of a SpatialMap.
type Stats struct {
	Elements   int // Stored elements
	XKeys      int // Distinct x coordinates
	YKeys      int // Distinct y coordinates
	MaxXBucket int // Largest number of elements sharing one x coordinate
	MaxYBucket int // Largest number of elements sharing one y coordinate
}

// Stats returns a snapshot of the map's shape.
func (m *SpatialMap[T]) Stats() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := Stats{
		Elements: m.size,
		XKeys:    m.xs.Len(),
		YKeys:    m.ys.Len(),
	}
	for _, bucket := range m.xs.All() {
		s.MaxXBucket = max(s.MaxXBucket, len(bucket))
	}
	for _, bucket := range m.ys.All() {
		s.MaxYBucket = max(s.MaxYBucket, len(bucket))
	}
	return s
}

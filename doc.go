// Package spatialmap provides an in-memory spatial index for arbitrary values
// projected onto two coordinates.
//
// A SpatialMap keeps every element in two sorted axis maps, one keyed by the
// x coordinate and one keyed by the y coordinate. Elements sharing a coordinate
// on an axis live in one insertion-ordered bucket. Queries binary-search the
// axis maps for a starting position and scan outwards, so lookups stay
// sub-linear on scattered data.
//
// Supported operations:
//
//   - Add / AddBatch / Remove: dynamic insertion and removal
//   - Nearest / NearestPoint: exact nearest neighbour by Euclidean distance
//   - Nearby / NearbyPoint / NearbyContext: all elements strictly within a radius
//   - NearestBatch: concurrent nearest lookups for many queries
//   - All / Cursor: full traversal in ascending x order
//
// # Quick Start
//
//	type Point struct{ X, Y float64 }
//
//	m := spatialmap.New(
//	    func(p Point) float64 { return p.X },
//	    func(p Point) float64 { return p.Y },
//	)
//	_ = m.Add(Point{0, 0})
//	_ = m.Add(Point{3, 4})
//
//	nearest, ok := m.Nearest(Point{1, 1})
//
//	for p := range m.NearbyPoint(0, 0, 5) {
//	    fmt.Println(p)
//	}
//
// # Concurrency
//
// Add, AddBatch, Remove and Clear take a write lock spanning both axis maps.
// Queries take a read lock. Sequences returned by Nearby and All capture their
// candidate buckets under the read lock and release it before yielding, so a
// loop body may call back into the same SpatialMap.
//
// # Element Equality
//
// T must be comparable. Removal and query deduplication use ==, so two equal
// values are treated as the same element.
package spatialmap

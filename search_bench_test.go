package spatialmap

import (
	"testing"

	"github.com/hupe1980/spatialmap/testutil"
)

func benchmarkMap(b *testing.B, n int) (*SpatialMap[testutil.Point], []testutil.Point) {
	b.Helper()

	m := New(testutil.PointX, testutil.PointY, WithInitialCapacity(n))
	if err := m.AddBatch(testutil.NewRNG(1).UniformPoints(n, 0, 1000)...); err != nil {
		b.Fatal(err)
	}
	return m, testutil.NewRNG(2).UniformPoints(1024, 0, 1000)
}

func BenchmarkNearest(b *testing.B) {
	m, queries := benchmarkMap(b, 100_000)

	b.ReportAllocs()
	i := 0
	for b.Loop() {
		m.Nearest(queries[i%len(queries)])
		i++
	}
}

func BenchmarkNearby(b *testing.B) {
	m, queries := benchmarkMap(b, 100_000)

	b.ReportAllocs()
	i := 0
	for b.Loop() {
		q := queries[i%len(queries)]
		for range m.NearbyPoint(q.X, q.Y, 10) {
		}
		i++
	}
}

func BenchmarkAddRemove(b *testing.B) {
	m, queries := benchmarkMap(b, 100_000)

	b.ReportAllocs()
	i := 0
	for b.Loop() {
		p := queries[i%len(queries)]
		p.ID = -1
		_ = m.Add(p)
		m.Remove(p)
		i++
	}
}

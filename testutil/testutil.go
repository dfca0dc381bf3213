package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// Point is a labelled planar point. ID keeps points with equal coordinates distinct.
type Point struct {
	ID int
	X  float64
	Y  float64
}

// PointX returns p.X.
func PointX(p Point) float64 { return p.X }

// PointY returns p.Y.
func PointY(p Point) float64 { return p.Y }

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64Range returns a pseudo-random number in [minVal, maxVal).
func (r *RNG) Float64Range(minVal, maxVal float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return minVal + r.rand.Float64()*(maxVal-minVal)
}

// UniformPoints generates num points uniformly distributed in [minVal, maxVal)².
func (r *RNG) UniformPoints(num int, minVal, maxVal float64) []Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	pts := make([]Point, num)
	for i := range pts {
		pts[i] = Point{
			ID: i,
			X:  minVal + r.rand.Float64()*(maxVal-minVal),
			Y:  minVal + r.rand.Float64()*(maxVal-minVal),
		}
	}
	return pts
}

// GridPoints generates num points on the integer lattice [0, side)².
// Coordinates repeat heavily, exercising shared buckets.
func (r *RNG) GridPoints(num, side int) []Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	pts := make([]Point, num)
	for i := range pts {
		pts[i] = Point{
			ID: i,
			X:  float64(r.rand.Intn(side)),
			Y:  float64(r.rand.Intn(side)),
		}
	}
	return pts
}

// ClusteredPoints generates num points around the given number of random centers
// in [0, 1000)², with normally distributed offsets of the given spread.
func (r *RNG) ClusteredPoints(num, clusters int, spread float64) []Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	centers := make([][2]float64, clusters)
	for i := range centers {
		centers[i] = [2]float64{r.rand.Float64() * 1000, r.rand.Float64() * 1000}
	}

	pts := make([]Point, num)
	for i := range pts {
		c := centers[r.rand.Intn(clusters)]
		pts[i] = Point{
			ID: i,
			X:  c[0] + r.rand.NormFloat64()*spread,
			Y:  c[1] + r.rand.NormFloat64()*spread,
		}
	}
	return pts
}

// ExactNearestDistance returns the smallest Euclidean distance from (x, y)
// to any point, or +Inf if pts is empty.
func ExactNearestDistance(pts []Point, x, y float64) float64 {
	best := math.Inf(1)
	for _, p := range pts {
		best = min(best, dist(p, x, y))
	}
	return best
}

// ExactWithin returns the points strictly closer than radius to (x, y),
// keyed by ID.
func ExactWithin(pts []Point, x, y, radius float64) map[int]Point {
	out := make(map[int]Point)
	for _, p := range pts {
		if dist(p, x, y) < radius {
			out[p.ID] = p
		}
	}
	return out
}

// dist matches the formula used by the index so boundary points agree.
func dist(p Point, x, y float64) float64 {
	dx := p.X - x
	dy := p.Y - y
	return math.Sqrt(dx*dx + dy*dy)
}

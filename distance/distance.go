package distance

import "math"

// Euclidean returns the straight-line distance between (x1, y1) and (x2, y2).
func Euclidean(x1, y1, x2, y2 float64) float64 {
	return math.Sqrt(SquaredEuclidean(x1, y1, x2, y2))
}

// SquaredEuclidean returns the squared distance between (x1, y1) and (x2, y2).
func SquaredEuclidean(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// InnerHalfWidth returns the half side length of the largest axis-aligned
// square that fits inside a circle of the given radius, i.e. radius/√2.
func InnerHalfWidth(radius float64) float64 {
	return math.Sqrt(radius * radius / 2)
}

// Finite reports whether v is neither NaN nor infinite.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Window returns bounds lo, hi such that every v whose computed offset
// |v-center| is below halfWidth satisfies lo <= v < hi. The bounds are
// widened by a relative margin and one ulp so that rounding in center±halfWidth
// can only enlarge the range.
func Window(center, halfWidth float64) (lo, hi float64) {
	margin := (math.Abs(center) + halfWidth) * windowSlack
	lo = math.Nextafter(center-halfWidth-margin, math.Inf(-1))
	hi = math.Nextafter(center+halfWidth+margin, math.Inf(1))
	return lo, hi
}

// windowSlack bounds the relative rounding error of the window arithmetic
// and of the inscribed half width, with ample headroom.
const windowSlack = 1e-12

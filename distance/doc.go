// Package distance provides planar distance calculations.
//
// # Supported Functions
//
//   - Euclidean: straight-line distance between two points
//   - SquaredEuclidean: Euclidean distance without the square root
//   - InnerHalfWidth: half side of the largest axis-aligned square inscribed in a circle
package distance

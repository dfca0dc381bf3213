// Package testutil provides testing utilities for spatialmap.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random point clouds and computing
// exact answers by brute force.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	pts := rng.UniformPoints(1000, -100, 100) // uniform in [-100, 100)²
//	pts := rng.GridPoints(1000, 20)           // integer lattice, many shared coordinates
//
// # Exact Search (Ground Truth)
//
//	d := testutil.ExactNearestDistance(pts, x, y)
//	within := testutil.ExactWithin(pts, x, y, radius)
package testutil

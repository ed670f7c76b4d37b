// Package testutil provides testing utilities for kdgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random point clouds and computing
// exact nearest neighbors by brute force.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	points := rng.UniformPoints(1000, -10, 10)
//	points = rng.ClusteredPoints(1000, 8, 0.5)
//
// # Exact Search (Ground Truth)
//
//	results := testutil.BruteForceKnn(points, query, k)
package testutil

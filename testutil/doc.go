// Package testutil provides testing utilities for kdforest.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random point sets, computing exact
// nearest neighbors, and verifying search recall.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	points := rng.UniformPoints(n, dim) // row-major, uniform [0, 1)
//	bytes := rng.UniformBytes(n, dim)   // row-major, uniform [0, 255]
//
// # Exact Search (Ground Truth)
//
//	results := testutil.ExactTopK(query, points, dim, k, distance.SquaredL2[float32])
//
// # Recall Verification
//
//	recall := testutil.ComputeRecall(exactResults, approxResults)
package testutil

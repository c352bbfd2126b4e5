// Package testutil provides testing utilities for labelframe.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG that produces scalar values,
// value matrices and sparse missing masks.
//
// # Random Data
//
//	rng := testutil.NewRNG(seed)
//	col := rng.Ints(6, 0, 10)           // six Ints in [0, 10)
//	m := rng.IntMatrix(3, 4, 0, 10)      // 3x4 row-major
//	col = rng.WithMissing(col, 0.2)      // ~20% missing markers
package testutil

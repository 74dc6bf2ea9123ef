// SPDX-License-Identifier: MIT
// Input generators for the sort visualizer.
//
// Determinism:
//   - Same parameters and WithSeed value ⇒ identical slice on every platform.
//   - Seed 0 maps to defaultSeed, never to a time-based source.
package sorting

import (
	"fmt"
	"math/rand"
)

// defaultSeed is used when the caller leaves SortOptions.Seed at 0.
const defaultSeed int64 = 1

func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// Random returns n values drawn uniformly from [1, upper].
func Random(n, upper int, opts ...Option) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n must be ≥ 0, got %d", ErrBadSize, n)
	}
	if upper < 1 {
		return nil, fmt.Errorf("%w: upper must be ≥ 1, got %d", ErrBadSize, upper)
	}
	r := rngFromSeed(resolve(opts).Seed)
	out := make([]int, n)
	for i := range out {
		out[i] = r.Intn(upper) + 1
	}

	return out, nil
}

// Reversed returns n, n-1, ..., 1: the worst case for the quadratic sorts.
func Reversed(n int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n must be ≥ 0, got %d", ErrBadSize, n)
	}
	out := make([]int, n)
	for i := range out {
		out[i] = n - i
	}

	return out, nil
}

// NearlySorted returns 1..n with `swaps` random adjacent transpositions applied.
func NearlySorted(n, swaps int, opts ...Option) ([]int, error) {
	if n < 0 || swaps < 0 {
		return nil, fmt.Errorf("%w: n and swaps must be ≥ 0, got %d and %d", ErrBadSize, n, swaps)
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	if n < 2 {
		return out, nil
	}
	r := rngFromSeed(resolve(opts).Seed)
	for s := 0; s < swaps; s++ {
		i := r.Intn(n - 1)
		out[i], out[i+1] = out[i+1], out[i]
	}

	return out, nil
}

// FewUnique returns n values drawn from only k distinct values (1..k),
// which exercises the tie-handling paths of every algorithm.
func FewUnique(n, k int, opts ...Option) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n must be ≥ 0, got %d", ErrBadSize, n)
	}
	if k < 1 {
		return nil, fmt.Errorf("%w: k must be ≥ 1, got %d", ErrBadSize, k)
	}

	return Random(n, k, opts...)
}

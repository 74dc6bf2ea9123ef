// SPDX-License-Identifier: MIT
package sorting

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for the sorting package.
var (
	// ErrUnknownAlgorithm is returned for an Algorithm outside the supported set.
	ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")

	// ErrBadSize is returned by the input generators for invalid sizes or ranges.
	ErrBadSize = errors.New("sorting: invalid size")
)

// Number is the set of element types the generator can sort.
type Number interface {
	constraints.Integer | constraints.Float
}

// Algorithm selects a sorting algorithm.
type Algorithm int

const (
	Bubble Algorithm = iota
	Selection
	Insertion
	Merge
	Quick
	Heap
)

var algorithmNames = [...]string{
	Bubble:    "bubble",
	Selection: "selection",
	Insertion: "insertion",
	Merge:     "merge",
	Quick:     "quick",
	Heap:      "heap",
}

// String returns the lower-case algorithm name.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// Algorithms lists every supported algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{Bubble, Selection, Insertion, Merge, Quick, Heap}
}

// ParseAlgorithm maps a name such as "quick" or "Quick Sort" to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.TrimSuffix(n, "sort")
	n = strings.TrimSpace(n)
	for i, s := range algorithmNames {
		if s == n {
			return Algorithm(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Kind tags what a step did.
type Kind string

const (
	KindCompare   Kind = "compare"
	KindSwap      Kind = "swap"
	KindPivot     Kind = "pivot"
	KindMerge     Kind = "merge"
	KindPartition Kind = "partition"
	KindSorted    Kind = "sorted"
	KindComplete  Kind = "complete"
)

// Stats are the running counters carried by every step.
type Stats struct {
	Comparisons int
	Swaps       int
}

// Step is one frame of a sort trace.
//
// Array is a private copy and may be retained. Line is a 1-based index into
// Pseudocode(alg); 0 means the step maps to no particular line.
type Step[T Number] struct {
	Kind    Kind
	Indices []int
	Array   []T
	Message string
	Line    int
	Stats   Stats
}

// Option configures a sort run or an input generator.
type Option func(*SortOptions)

// SortOptions holds the tunables for Steps, Generate and the input generators.
type SortOptions struct {
	// EarlyExit lets bubble sort stop after a pass with no swaps.
	EarlyExit bool

	// Seed drives the input generators; 0 selects a fixed default seed.
	Seed int64
}

// DefaultOptions returns EarlyExit on and Seed 0.
func DefaultOptions() SortOptions {
	return SortOptions{
		EarlyExit: true,
		Seed:      0,
	}
}

// WithEarlyExit toggles bubble sort's early termination.
func WithEarlyExit(on bool) Option {
	return func(o *SortOptions) { o.EarlyExit = on }
}

// WithSeed fixes the RNG seed used by Random, NearlySorted and FewUnique.
func WithSeed(seed int64) Option {
	return func(o *SortOptions) { o.Seed = seed }
}

func resolve(opts []Option) SortOptions {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

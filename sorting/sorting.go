// SPDX-License-Identifier: MIT
package sorting

import (
	"fmt"
	"iter"
	"slices"
)

// generator holds the array under sort, the counters, and the consumer.
// Once the consumer stops (yield returns false) halted is set and every
// later emit is a no-op; algorithms check halted at loop heads to bail out.
type generator[T Number] struct {
	a      []T
	stats  Stats
	opts   SortOptions
	yield  func(Step[T]) bool
	halted bool
}

// Steps returns a lazy, restartable trace of alg sorting input.
// Each range over the returned sequence starts from a fresh copy of input,
// so the caller may keep mutating its own slice afterwards.
func Steps[T Number](alg Algorithm, input []T, opts ...Option) (iter.Seq[Step[T]], error) {
	run, err := runnerFor[T](alg)
	if err != nil {
		return nil, err
	}
	o := resolve(opts)
	src := slices.Clone(input)

	return func(yield func(Step[T]) bool) {
		g := &generator[T]{a: slices.Clone(src), opts: o, yield: yield}
		if len(g.a) > 1 {
			run(g)
		}
		g.emit(KindComplete, 0, "Array is sorted", g.all()...)
	}, nil
}

// Generate runs Steps to completion and returns every step.
func Generate[T Number](alg Algorithm, input []T, opts ...Option) ([]Step[T], error) {
	seq, err := Steps(alg, input, opts...)
	if err != nil {
		return nil, err
	}

	return slices.Collect(seq), nil
}

func runnerFor[T Number](alg Algorithm) (func(*generator[T]), error) {
	switch alg {
	case Bubble:
		return (*generator[T]).bubble, nil
	case Selection:
		return (*generator[T]).selection, nil
	case Insertion:
		return (*generator[T]).insertion, nil
	case Merge:
		return (*generator[T]).mergeSort, nil
	case Quick:
		return (*generator[T]).quickSort, nil
	case Heap:
		return (*generator[T]).heapSort, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}
}

// emit snapshots the array and hands a step to the consumer.
func (g *generator[T]) emit(kind Kind, line int, msg string, idx ...int) {
	if g.halted {
		return
	}
	s := Step[T]{
		Kind:    kind,
		Indices: slices.Clone(idx),
		Array:   slices.Clone(g.a),
		Message: msg,
		Line:    line,
		Stats:   g.stats,
	}
	if !g.yield(s) {
		g.halted = true
	}
}

// greater counts a comparison, emits it, and reports a[i] > a[j].
func (g *generator[T]) greater(i, j, line int) bool {
	g.stats.Comparisons++
	gt := g.a[i] > g.a[j]
	verdict := "≤"
	if gt {
		verdict = ">"
	}
	g.emit(KindCompare, line,
		fmt.Sprintf("Compare a[%d]=%v %s a[%d]=%v", i, g.a[i], verdict, j, g.a[j]), i, j)

	return gt
}

// less counts a comparison, emits it, and reports a[i] < a[j].
func (g *generator[T]) less(i, j, line int) bool {
	g.stats.Comparisons++
	lt := g.a[i] < g.a[j]
	verdict := "≥"
	if lt {
		verdict = "<"
	}
	g.emit(KindCompare, line,
		fmt.Sprintf("Compare a[%d]=%v %s a[%d]=%v", i, g.a[i], verdict, j, g.a[j]), i, j)

	return lt
}

// swap exchanges a[i] and a[j], counts it, and emits the result.
func (g *generator[T]) swap(i, j, line int) {
	g.a[i], g.a[j] = g.a[j], g.a[i]
	g.stats.Swaps++
	g.emit(KindSwap, line, fmt.Sprintf("Swap a[%d] and a[%d]", i, j), i, j)
}

func (g *generator[T]) sorted(line int, msg string, idx ...int) {
	g.emit(KindSorted, line, msg, idx...)
}

// all returns 0..n-1.
func (g *generator[T]) all() []int {
	return span(0, len(g.a)-1)
}

// span returns lo..hi inclusive, or nil when hi < lo.
func span(lo, hi int) []int {
	if hi < lo {
		return nil
	}
	out := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, i)
	}

	return out
}

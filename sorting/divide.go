// SPDX-License-Identifier: MIT
package sorting

import (
	"fmt"
	"slices"
)

const (
	mergeLineSplit   = 3
	mergeLineCompare = 6
	mergeLineLeft    = 7
	mergeLineRight   = 8
	mergeLineRest    = 9

	quickLineLeaf    = 2
	quickLinePivot   = 6
	quickLineCompare = 8
	quickLineSwap    = 9
	quickLinePlace   = 10

	heapLineExtract = 3
	heapLineLeft    = 7
	heapLineRight   = 8
	heapLineSwap    = 9
)

// mergeSort is top-down merge sort over the whole array.
func (g *generator[T]) mergeSort() {
	g.mergeRange(0, len(g.a)-1)
	if !g.halted {
		g.sorted(mergeLineRest, "All runs merged", g.all()...)
	}
}

func (g *generator[T]) mergeRange(lo, hi int) {
	if lo >= hi || g.halted {
		return
	}
	mid := lo + (hi-lo)/2
	g.emit(KindPartition, mergeLineSplit,
		fmt.Sprintf("Split a[%d..%d] into a[%d..%d] and a[%d..%d]", lo, hi, lo, mid, mid+1, hi),
		span(lo, hi)...)
	g.mergeRange(lo, mid)
	g.mergeRange(mid+1, hi)
	g.merge(lo, mid, hi)
}

// merge combines the sorted runs a[lo..mid] and a[mid+1..hi].
// Ties take from the left run, which keeps the sort stable.
func (g *generator[T]) merge(lo, mid, hi int) {
	if g.halted {
		return
	}
	left := slices.Clone(g.a[lo : mid+1])
	right := slices.Clone(g.a[mid+1 : hi+1])
	i, j, k := 0, 0, lo

	for i < len(left) && j < len(right) {
		if g.halted {
			return
		}
		g.stats.Comparisons++
		li, ri := lo+i, mid+1+j
		if left[i] <= right[j] {
			g.emit(KindCompare, mergeLineCompare,
				fmt.Sprintf("Compare left %v ≤ right %v", left[i], right[j]), li, ri)
			g.a[k] = left[i]
			i++
			g.emit(KindMerge, mergeLineLeft, fmt.Sprintf("Place %v from the left run at a[%d]", g.a[k], k), k)
		} else {
			g.emit(KindCompare, mergeLineCompare,
				fmt.Sprintf("Compare left %v > right %v", left[i], right[j]), li, ri)
			g.a[k] = right[j]
			j++
			g.emit(KindMerge, mergeLineRight, fmt.Sprintf("Place %v from the right run at a[%d]", g.a[k], k), k)
		}
		k++
	}
	for ; i < len(left); i++ {
		g.a[k] = left[i]
		g.emit(KindMerge, mergeLineRest, fmt.Sprintf("Copy remaining %v to a[%d]", g.a[k], k), k)
		k++
	}
	for ; j < len(right); j++ {
		g.a[k] = right[j]
		g.emit(KindMerge, mergeLineRest, fmt.Sprintf("Copy remaining %v to a[%d]", g.a[k], k), k)
		k++
	}
}

// quickSort is recursive quick sort with Lomuto partitioning.
func (g *generator[T]) quickSort() {
	g.quickRange(0, len(g.a)-1)
}

func (g *generator[T]) quickRange(lo, hi int) {
	if g.halted || lo > hi {
		return
	}
	if lo == hi {
		g.sorted(quickLineLeaf, fmt.Sprintf("a[%d] is a single-element range", lo), lo)
		return
	}
	p := g.partition(lo, hi)
	g.quickRange(lo, p-1)
	g.quickRange(p+1, hi)
}

// partition places a[hi] at its final index and returns that index.
func (g *generator[T]) partition(lo, hi int) int {
	g.emit(KindPivot, quickLinePivot, fmt.Sprintf("Pivot a[%d]=%v for range a[%d..%d]", hi, g.a[hi], lo, hi), hi)
	i := lo - 1
	for j := lo; j < hi; j++ {
		if g.halted {
			return hi
		}
		if g.less(j, hi, quickLineCompare) {
			i++
			if i != j {
				g.swap(i, j, quickLineSwap)
			}
		}
	}
	p := i + 1
	if p != hi && g.a[p] != g.a[hi] {
		g.swap(p, hi, quickLinePlace)
	}
	g.sorted(quickLinePlace, fmt.Sprintf("Pivot %v settles at a[%d]", g.a[p], p), p)

	return p
}

// heapSort builds a max-heap, then repeatedly moves the root behind the heap.
func (g *generator[T]) heapSort() {
	n := len(g.a)
	for i := n/2 - 1; i >= 0; i-- {
		g.siftDown(i, n)
	}
	for end := n - 1; end > 0; end-- {
		if g.halted {
			return
		}
		g.swap(0, end, heapLineExtract)
		g.sorted(heapLineExtract, fmt.Sprintf("Max %v extracted to a[%d]", g.a[end], end), end)
		g.siftDown(0, end)
	}
	g.sorted(heapLineExtract, "a[0] is the smallest element", 0)
}

// siftDown restores the max-heap property for the subtree at i within a[0..size-1].
func (g *generator[T]) siftDown(i, size int) {
	for !g.halted {
		largest := i
		l, r := 2*i+1, 2*i+2
		if l < size && g.greater(l, largest, heapLineLeft) {
			largest = l
		}
		if r < size && g.greater(r, largest, heapLineRight) {
			largest = r
		}
		if largest == i {
			return
		}
		g.swap(i, largest, heapLineSwap)
		i = largest
	}
}

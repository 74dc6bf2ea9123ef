// SPDX-License-Identifier: MIT
package sorting

import "fmt"

// Pseudocode line numbers for the quadratic sorts.
const (
	bubbleLineCompare = 4
	bubbleLineSwap    = 5
	bubbleLineSorted  = 7
	bubbleLineEarly   = 8

	selectionLineCompare = 4
	selectionLineSwap    = 6
	selectionLineSorted  = 7

	insertionLineFirst   = 1
	insertionLineCompare = 4
	insertionLineSwap    = 5
	insertionLineSorted  = 7
)

// bubble runs n-1 passes; pass i bubbles the maximum of a[0..n-1-i] to n-1-i.
func (g *generator[T]) bubble() {
	n := len(g.a)
	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-1-i; j++ {
			if g.halted {
				return
			}
			if g.greater(j, j+1, bubbleLineCompare) {
				g.swap(j, j+1, bubbleLineSwap)
				swapped = true
			}
		}
		g.sorted(bubbleLineSorted, fmt.Sprintf("a[%d] is in place", n-1-i), n-1-i)
		if !swapped && g.opts.EarlyExit {
			if rest := span(0, n-2-i); len(rest) > 0 {
				g.sorted(bubbleLineEarly, "No swaps in this pass: the rest is already sorted", rest...)
			}
			return
		}
	}
	g.sorted(bubbleLineSorted, "a[0] is in place", 0)
}

// selection moves the minimum of a[i..n-1] to i on each pass.
func (g *generator[T]) selection() {
	n := len(g.a)
	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			if g.halted {
				return
			}
			if g.less(j, minIdx, selectionLineCompare) {
				minIdx = j
			}
		}
		if minIdx != i {
			g.swap(i, minIdx, selectionLineSwap)
		}
		g.sorted(selectionLineSorted, fmt.Sprintf("a[%d] holds the minimum of the unsorted part", i), i)
	}
	g.sorted(selectionLineSorted, fmt.Sprintf("a[%d] is the largest element", n-1), n-1)
}

// insertion sinks a[i] left until its predecessor is not greater.
func (g *generator[T]) insertion() {
	n := len(g.a)
	g.sorted(insertionLineFirst, "A single element is trivially sorted", 0)
	for i := 1; i < n; i++ {
		for j := i; j > 0; j-- {
			if g.halted {
				return
			}
			if !g.greater(j-1, j, insertionLineCompare) {
				break
			}
			g.swap(j-1, j, insertionLineSwap)
		}
		g.sorted(insertionLineSorted, fmt.Sprintf("a[0..%d] is sorted", i), span(0, i)...)
	}
}

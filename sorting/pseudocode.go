// SPDX-License-Identifier: MIT
package sorting

var pseudocode = map[Algorithm][]string{
	Bubble: {
		"for i = 0 to n-2:",
		"  swapped = false",
		"  for j = 0 to n-2-i:",
		"    if a[j] > a[j+1]:",
		"      swap(a[j], a[j+1])",
		"      swapped = true",
		"  mark a[n-1-i] sorted",
		"  if not swapped: mark a[0..n-2-i] sorted; stop",
	},
	Selection: {
		"for i = 0 to n-2:",
		"  min = i",
		"  for j = i+1 to n-1:",
		"    if a[j] < a[min]:",
		"      min = j",
		"  if min != i: swap(a[i], a[min])",
		"  mark a[i] sorted",
	},
	Insertion: {
		"mark a[0] sorted",
		"for i = 1 to n-1:",
		"  j = i",
		"  while j > 0 and a[j-1] > a[j]:",
		"    swap(a[j-1], a[j])",
		"    j = j - 1",
		"  mark a[0..i] sorted",
	},
	Merge: {
		"mergeSort(lo, hi):",
		"  if lo >= hi: return",
		"  mid = (lo + hi) / 2",
		"  mergeSort(lo, mid); mergeSort(mid+1, hi)",
		"  merge(lo, mid, hi):",
		"    while both runs are non-empty:",
		"      if L[i] <= R[j]: a[k++] = L[i++]",
		"      else: a[k++] = R[j++]",
		"    copy the remaining run into a[k..hi]",
	},
	Quick: {
		"quickSort(lo, hi):",
		"  if lo < hi:",
		"    p = partition(lo, hi)",
		"    quickSort(lo, p-1); quickSort(p+1, hi)",
		"partition(lo, hi):",
		"  pivot = a[hi]; i = lo - 1",
		"  for j = lo to hi-1:",
		"    if a[j] < pivot:",
		"      i = i + 1; swap(a[i], a[j])",
		"  swap(a[i+1], a[hi]); return i+1",
	},
	Heap: {
		"for i = n/2-1 down to 0: siftDown(i, n)",
		"for end = n-1 down to 1:",
		"  swap(a[0], a[end]); mark a[end] sorted",
		"  siftDown(0, end)",
		"siftDown(i, size):",
		"  largest = i; l = 2i+1; r = 2i+2",
		"  if l < size and a[l] > a[largest]: largest = l",
		"  if r < size and a[r] > a[largest]: largest = r",
		"  if largest != i: swap(a[i], a[largest]); siftDown(largest, size)",
	},
}

// Pseudocode returns the listing that Step.Line indexes (1-based).
// The returned slice is a copy; nil for an unknown algorithm.
func Pseudocode(alg Algorithm) []string {
	lines, ok := pseudocode[alg]
	if !ok {
		return nil
	}

	return append([]string(nil), lines...)
}

// Package sorting turns a comparison sort into a replayable step trace.
//
// What
//
//   - Six algorithms: Bubble, Selection, Insertion, Merge, Quick (Lomuto) and Heap.
//   - Every step carries its tag (compare, swap, pivot, merge, partition, sorted,
//     complete), the indices involved, a full copy of the array, a narration
//     string, the pseudocode line it corresponds to, and cumulative counters.
//   - Steps returns a lazy iter.Seq; Generate materializes it into a slice.
//
// Guarantees
//
//   - The caller's slice is never modified; each run sorts its own copy.
//   - Every trace ends with exactly one KindComplete step whose Array is the
//     input sorted ascending. Arrays of length 0 or 1 yield only that step.
//   - Comparisons and swaps only ever grow from one step to the next.
//   - Ranging over the same sequence twice replays the identical trace.
//   - All comparisons are strict, so Bubble, Insertion and Merge are stable
//     and no algorithm swaps two equal values except Heap's root extraction.
//
// Algorithm notes
//
//   - Bubble stops after the first pass without swaps and marks the rest
//     sorted in one step (disable with WithEarlyExit(false)).
//   - Insertion marks a[0] sorted before the first comparison.
//   - Merge emits KindPartition per split and KindMerge per placed element;
//     it reports zero swaps.
//   - Quick emits KindPivot on a[hi] before comparing and KindSorted on the
//     pivot's final position.
//   - Heap emits KindSorted for each extracted maximum, last slot first.
//
// Complexity
//
//   - Time:   the algorithm's own bound, times O(n) per emitted step for the
//     array snapshot.
//   - Memory: O(n) per step retained by the caller.
//
// Errors
//
//   - ErrUnknownAlgorithm  if the Algorithm value is not one of the six.
//   - ErrBadSize           for invalid input-generator parameters.
package sorting

// Package algotrace is a set of deterministic step-trace engines for teaching
// classic data structures and algorithms. Every operation returns (or lazily
// yields) an ordered sequence of steps, and each step carries a full,
// independently renderable snapshot of the structure, a narration string and,
// where it applies, a pseudocode line marker.
//
// Packages
//
//	sorting/    — bubble, selection, insertion, merge, quick and heap sort
//	              traces, lazy (iter.Seq) or eager, plus seeded input generators
//	hashtable/  — separately chained hash map: put, get, remove, incremental rehash
//	hashset/    — the set counterpart, reusing the hashtable hash primitives
//	arraylist/  — array-backed list with doubling resize and shift narration
//	linkedlist/ — singly and doubly linked lists over a node arena
//	trace/      — Player: step-by-step and timed playback of any []Step
//
// Guarantees
//
//   - Engines are pure: the caller's state is deep-cloned before anything is
//     touched, so independent states can be used from many goroutines.
//   - Every snapshot satisfies its package's Validate.
//   - Not found is a terminal step, never an error. Out-of-bounds and
//     empty-list removals come back as data in Result.Err.
//   - No engine logs or panics at runtime; option constructors panic on
//     meaningless values.
//
// Quick example:
//
//	steps, _ := sorting.Generate(sorting.Quick, []int{5, 3, 8, 4, 2})
//	p := trace.NewPlayer(steps)
//	for step, ok := p.Next(); ok; step, ok = p.Next() {
//		fmt.Println(step.Message)
//	}
package algotrace

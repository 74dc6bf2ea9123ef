// Package trace provides a playback cursor over a recorded step trace.
//
// What
//
//   - Every engine in this module returns its work as an ordered slice of
//     immutable steps (sorting.Step, hashtable.Step, arraylist.Step, ...).
//   - Player wraps such a slice and drives it the way an animation UI does:
//     step forward, step backward, scrub to an index, or play at a fixed
//     interval until the end, a callback error, or context cancellation.
//
// Determinism
//
//	The Player never copies, reorders or mutates the steps it was given.
//	Replaying from Reset() always yields the same sequence.
//
// Usage
//
//	steps, _ := sorting.Generate(sorting.Bubble, []int{5, 3, 8})
//	p := trace.NewPlayer(steps)
//	for s, ok := p.Next(); ok; s, ok = p.Next() {
//		render(s)
//	}
//
//	// or paced playback:
//	err := p.Play(ctx, 200*time.Millisecond, func(i int, s sorting.Step[int]) error {
//		return render(s)
//	})
//
// Errors
//
//   - ErrSeekOutOfRange  if Seek targets an index outside [0, Len()).
package trace

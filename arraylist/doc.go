// Package arraylist simulates an array-backed list (contiguous slots,
// doubling resize, shift-based insert and remove) and narrates each
// operation as a step trace with a pseudocode line marker.
//
// Policies
//
//   - Add, AddFirst, AddLast accept index ∈ [0, Size]; Get, Set, Remove need
//     index ∈ [0, Size-1]. A violation yields a Result with Err set and exactly
//     one KindComplete step whose Error field describes it; Final equals the
//     input by value.
//   - Capacity doubles exactly when Size == Capacity at the moment of an
//     insert. KindResize (allocation) and KindCopy (live elements copied) are
//     emitted before any shift. Removal never shrinks capacity.
//   - Insert shifts right from the last live slot down to the target index;
//     remove shifts left from the target up to Size-2, then decrements Size
//     and clears the vacated slot in one step.
//
// Snapshots
//
//	Every Step.State satisfies Validate: slots [0,Size) are used and slots
//	[Size,Capacity) are empty. Size grows together with the first right shift
//	so the slot it fills is never outside the live range.
//
// Errors
//
//   - ErrIndexOutOfBounds  index outside the allowed range (carried in Result.Err).
//   - ErrEmptyList         RemoveFirst/RemoveLast on an empty list.
//   - ErrCorruptState      returned by State.Validate.
package arraylist

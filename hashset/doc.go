// Package hashset simulates a separately chained hash set. A set is a
// hashtable.State[struct{}]: members are keys, the trace machinery and the
// rehash are the hashtable ones, and narration leaves the empty values out.
//
// Terminal steps
//
//   - Add:      KindDuplicate, or KindComplete after KindInsert and any rehash.
//   - Contains: KindFound or KindNotFound.
//   - Remove:   KindNotFound, or KindRemove followed by KindComplete.
//
// Add on a present value is a no-op, not an error. State.Validate and the
// sentinels are those of package hashtable.
package hashset

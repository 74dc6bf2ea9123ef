// Package hashtable simulates a separately chained hash map and records every
// operation as a step trace for animated playback.
//
// What
//
//   - Hash is the classic polynomial string hash (h = h*31 + c over UTF-16
//     code units, wrapped to int32, then made non-negative); Index reduces it
//     modulo the bucket count.
//   - Put, PutIfAbsent, Get and Remove narrate: hash computation, bucket
//     index, a linear scan of the chain one key at a time, the terminal
//     action, and for an insert that pushes Size above Threshold a full rehash.
//   - Each Step carries an independent deep copy of the table.
//
// Rehash
//
//	Triggered strictly when Size > floor(Capacity*LoadFactor) after an insert.
//	Capacity doubles, a fresh bucket array is allocated, and entries migrate
//	one per step in old-bucket, old-chain order. While migrating, the not yet
//	moved chains live in State.Pending so every snapshot accounts for all
//	Size entries; Pending is nil outside a rehash.
//
// Terminal steps
//
//   - Get:    KindFound or KindNotFound.
//   - Remove: KindNotFound, or KindRemove followed by KindComplete.
//   - Put:    KindComplete, after KindInsert/KindUpdate and any rehash.
//   - PutIfAbsent: KindDuplicate when the key exists, otherwise as Put.
//
// A table whose value type is struct{} is a set (see package hashset); its
// narration shows keys only.
//
// Not finding a key is a normal outcome, never an error. The input state is
// never modified; Result.Final is the caller's next state.
//
// Errors
//
//   - ErrBadCapacity    capacity < 1 in NewState.
//   - ErrBadLoadFactor  load factor not a positive finite number.
//   - ErrCorruptState   returned by State.Validate.
package hashtable

// Package linkedlist simulates singly and doubly linked lists over a node
// arena and narrates every pointer change as a step trace.
//
// Representation
//
//	Nodes live in State.Nodes keyed by NodeID. Next and Prev hold ids, with
//	Nil (0) standing for null. Ids come from State.NextID, which only grows
//	and is carried through Clone, so an id is never handed out twice. A node
//	that has been created but is not yet reachable sits in State.Pending; its
//	own pointers can be set up step by step without touching the chain.
//
// Traversal
//
//   - Add, Get, Set and Remove walk from Head one hop per ActionTraverse
//     step. Doubly linked Get/Set also start at Head.
//   - AddLast always uses Tail.
//   - RemoveLast reads tail.prev directly on a doubly linked list and walks
//     from Head to the second-to-last node on a singly linked one.
//
// Snapshots
//
//	Splicing a node in or out, together with any Head/Tail update, happens in
//	a single step. Every Step.State therefore passes Validate: Size nodes are
//	reachable from Head, the walk ends at Tail, and for Doubly the Prev links
//	mirror it exactly.
//
// Errors
//
//   - ErrUnknownKind       New with a kind other than Singly or Doubly.
//   - ErrIndexOutOfBounds  index outside the allowed range (carried in Result.Err).
//   - ErrEmptyList         RemoveFirst/RemoveLast on an empty list.
//   - ErrCorruptState      returned by State.Validate.
//
// A rejected operation yields exactly one ActionComplete step with Error set,
// and Final equals the input by value.
package linkedlist

// SPDX-License-Identifier: MIT
package linkedlist

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the linkedlist package.
var (
	// ErrUnknownKind indicates a Kind other than Singly or Doubly.
	ErrUnknownKind = errors.New("linkedlist: unknown list kind")

	// ErrIndexOutOfBounds indicates an index outside the range an operation accepts.
	ErrIndexOutOfBounds = errors.New("linkedlist: index out of bounds")

	// ErrEmptyList indicates removal from an empty list.
	ErrEmptyList = errors.New("linkedlist: list is empty")

	// ErrCorruptState is returned by Validate.
	ErrCorruptState = errors.New("linkedlist: corrupt state")
)

// Kind selects the list representation.
type Kind int

const (
	Singly Kind = iota
	Doubly
)

// String returns "singly" or "doubly".
func (k Kind) String() string {
	switch k {
	case Singly:
		return "singly"
	case Doubly:
		return "doubly"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps "singly" or "doubly" (any case) to a Kind.
func ParseKind(name string) (Kind, error) {
	for _, k := range []Kind{Singly, Doubly} {
		if strings.EqualFold(name, k.String()) {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

func (k Kind) valid() bool { return k == Singly || k == Doubly }

// NodeID identifies a node in the arena. Nil is the null reference.
type NodeID int

// Nil is the null reference; no node ever has this id.
const Nil NodeID = 0

// String renders "null" or "#id".
func (id NodeID) String() string {
	if id == Nil {
		return "null"
	}

	return fmt.Sprintf("#%d", int(id))
}

// Node is one arena record. Prev stays Nil on singly linked lists.
type Node[T any] struct {
	ID    NodeID
	Value T
	Next  NodeID
	Prev  NodeID
}

// State is a snapshot of a list.
type State[T any] struct {
	Kind   Kind
	Nodes  map[NodeID]Node[T]
	Head   NodeID
	Tail   NodeID
	Size   int
	NextID NodeID

	// Pending is a node created but not yet linked in, nil otherwise.
	Pending *Node[T]
}

// New builds a list of the given kind holding values, with ids 1..len(values).
func New[T any](kind Kind, values []T) (*State[T], error) {
	if !kind.valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
	s := &State[T]{Kind: kind, Nodes: make(map[NodeID]Node[T], len(values)), NextID: 1}
	for _, v := range values {
		id := s.NextID
		s.NextID++
		n := Node[T]{ID: id, Value: v}
		if s.Tail != Nil {
			t := s.Nodes[s.Tail]
			t.Next = id
			s.Nodes[t.ID] = t
			if kind == Doubly {
				n.Prev = t.ID
			}
		} else {
			s.Head = id
		}
		s.Nodes[id] = n
		s.Tail = id
		s.Size++
	}

	return s, nil
}

// Clone returns a deep copy, NextID included.
func (s *State[T]) Clone() *State[T] {
	if s == nil {
		return nil
	}
	c := *s
	c.Nodes = make(map[NodeID]Node[T], len(s.Nodes))
	for id, n := range s.Nodes {
		c.Nodes[id] = n
	}
	if s.Pending != nil {
		p := *s.Pending
		c.Pending = &p
	}

	return &c
}

// Values returns the elements from Head along Next.
func (s *State[T]) Values() []T {
	out := make([]T, 0, s.Size)
	for id := s.Head; id != Nil && len(out) <= len(s.Nodes); id = s.Nodes[id].Next {
		out = append(out, s.Nodes[id].Value)
	}

	return out
}

// Backward returns the elements from Tail along Prev. It is nil for Singly.
func (s *State[T]) Backward() []T {
	if s.Kind != Doubly {
		return nil
	}
	out := make([]T, 0, s.Size)
	for id := s.Tail; id != Nil && len(out) <= len(s.Nodes); id = s.Nodes[id].Prev {
		out = append(out, s.Nodes[id].Value)
	}

	return out
}

// Validate checks the chain invariants: Head, Tail and Size agree on
// emptiness, exactly Size nodes are reachable from Head and the walk ends
// at Tail, every arena node is on the chain, and Prev mirrors Next for
// Doubly (Prev is Nil everywhere for Singly). Ids are below NextID.
func (s *State[T]) Validate() error {
	if !s.Kind.valid() {
		return fmt.Errorf("%w: kind %v", ErrCorruptState, s.Kind)
	}
	if (s.Head == Nil) != (s.Size == 0) || (s.Tail == Nil) != (s.Size == 0) {
		return fmt.Errorf("%w: head %v, tail %v with size %d", ErrCorruptState, s.Head, s.Tail, s.Size)
	}
	if len(s.Nodes) != s.Size {
		return fmt.Errorf("%w: %d nodes with size %d", ErrCorruptState, len(s.Nodes), s.Size)
	}

	prev, last := Nil, Nil
	seen := make(map[NodeID]struct{}, s.Size)
	for id := s.Head; id != Nil; id = s.Nodes[id].Next {
		n, ok := s.Nodes[id]
		if !ok {
			return fmt.Errorf("%w: dangling reference %v", ErrCorruptState, id)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: cycle at %v", ErrCorruptState, id)
		}
		seen[id] = struct{}{}
		if n.ID != id || id < 1 || id >= s.NextID {
			return fmt.Errorf("%w: bad id %v", ErrCorruptState, id)
		}
		want := Nil
		if s.Kind == Doubly {
			want = prev
		}
		if n.Prev != want {
			return fmt.Errorf("%w: %v.prev = %v, want %v", ErrCorruptState, id, n.Prev, want)
		}
		prev, last = id, id
	}
	if len(seen) != s.Size {
		return fmt.Errorf("%w: %d reachable nodes with size %d", ErrCorruptState, len(seen), s.Size)
	}
	if last != s.Tail {
		return fmt.Errorf("%w: walk ends at %v, tail is %v", ErrCorruptState, last, s.Tail)
	}
	if p := s.Pending; p != nil {
		if _, linked := s.Nodes[p.ID]; linked || p.ID < 1 || p.ID >= s.NextID {
			return fmt.Errorf("%w: bad pending id %v", ErrCorruptState, p.ID)
		}
	}

	return nil
}

// Action tags what a step did.
type Action string

const (
	ActionCheck    Action = "check"
	ActionTraverse Action = "traverse"
	ActionCreate   Action = "create"
	ActionLink     Action = "link"
	ActionAccess   Action = "access"
	ActionUpdate   Action = "update"
	ActionUnlink   Action = "unlink"
	ActionComplete Action = "complete"
)

// Step is one frame of a list operation.
// Index is the list position involved, -1 when none; Current is the node the
// step points at (the traversal cursor, the new node, or the removed node).
// Error is non-empty only on the terminal step of a rejected operation.
type Step[T any] struct {
	Action  Action
	Index   int
	Current NodeID
	Message string
	Line    int
	Error   string
	State   *State[T]
}

// Result is the outcome of one operation. Value is the element read by Get,
// replaced by Set or removed by Remove*. Err wraps ErrIndexOutOfBounds or
// ErrEmptyList for a rejected operation.
type Result[T any] struct {
	Steps []Step[T]
	Final *State[T]
	Value T
	Err   error
}

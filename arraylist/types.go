// SPDX-License-Identifier: MIT
package arraylist

import (
	"errors"
	"fmt"
)

// Sentinel errors for the arraylist package.
var (
	// ErrIndexOutOfBounds indicates an index outside the range an operation accepts.
	ErrIndexOutOfBounds = errors.New("arraylist: index out of bounds")

	// ErrEmptyList indicates removal from an empty list.
	ErrEmptyList = errors.New("arraylist: list is empty")

	// ErrCorruptState is returned by Validate.
	ErrCorruptState = errors.New("arraylist: corrupt state")
)

// DefaultCapacity is the smallest backing array New allocates.
const DefaultCapacity = 4

// Kind tags what a step did.
type Kind string

const (
	KindCheck    Kind = "check"
	KindResize   Kind = "resize"
	KindCopy     Kind = "copy"
	KindShift    Kind = "shift"
	KindInsert   Kind = "insert"
	KindAccess   Kind = "access"
	KindUpdate   Kind = "update"
	KindRemove   Kind = "remove"
	KindClear    Kind = "clear"
	KindComplete Kind = "complete"
)

// Slot is one cell of the backing array. Used is false for empty cells.
type Slot[T any] struct {
	Value T
	Used  bool
}

// State is a snapshot of the list. len(Slots) is the capacity.
type State[T any] struct {
	Slots []Slot[T]
	Size  int
}

// Capacity is the physical length of the backing array.
func (s *State[T]) Capacity() int { return len(s.Slots) }

// Values returns the live elements in order.
func (s *State[T]) Values() []T {
	out := make([]T, 0, s.Size)
	for i := 0; i < s.Size; i++ {
		out = append(out, s.Slots[i].Value)
	}

	return out
}

// Clone returns a deep copy of the slots.
func (s *State[T]) Clone() *State[T] {
	if s == nil {
		return nil
	}

	return &State[T]{Slots: append([]Slot[T](nil), s.Slots...), Size: s.Size}
}

// Validate checks 0 ≤ Size ≤ Capacity, that [0,Size) is filled and that
// [Size,Capacity) is empty.
func (s *State[T]) Validate() error {
	if s.Size < 0 || s.Size > len(s.Slots) {
		return fmt.Errorf("%w: size %d, capacity %d", ErrCorruptState, s.Size, len(s.Slots))
	}
	for i, slot := range s.Slots {
		if live := i < s.Size; slot.Used != live {
			return fmt.Errorf("%w: slot %d used=%t with size %d", ErrCorruptState, i, slot.Used, s.Size)
		}
	}

	return nil
}

// Option configures New.
type Option func(*ListOptions)

// ListOptions holds construction parameters.
type ListOptions struct {
	// Capacity is the initial backing length; it doubles until the seed values fit.
	Capacity int
}

// DefaultOptions returns Capacity = DefaultCapacity.
func DefaultOptions() ListOptions {
	return ListOptions{Capacity: DefaultCapacity}
}

// WithCapacity sets the initial capacity. Panics if n < 1.
func WithCapacity(n int) Option {
	if n < 1 {
		panic("arraylist: WithCapacity(n<1)")
	}
	return func(o *ListOptions) { o.Capacity = n }
}

// New builds a list holding values.
func New[T any](values []T, opts ...Option) *State[T] {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	c := o.Capacity
	for c < len(values) {
		c *= 2
	}
	s := &State[T]{Slots: make([]Slot[T], c), Size: len(values)}
	for i, v := range values {
		s.Slots[i] = Slot[T]{Value: v, Used: true}
	}

	return s
}

// Step is one frame of a list operation.
// Indices lists the slots involved; for KindShift it is [from, to].
// Error is non-empty only on the terminal step of a rejected operation.
type Step[T any] struct {
	Kind    Kind
	Indices []int
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

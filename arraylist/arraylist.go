// SPDX-License-Identifier: MIT
package arraylist

import "fmt"

// sim is one operation in progress over a private copy of the list.
type sim[T any] struct {
	st    *State[T]
	steps []Step[T]
}

func begin[T any](state *State[T]) *sim[T] {
	return &sim[T]{st: state.Clone()}
}

func (s *sim[T]) emit(kind Kind, line int, idx []int, format string, args ...any) {
	s.steps = append(s.steps, Step[T]{
		Kind:    kind,
		Indices: idx,
		Message: fmt.Sprintf(format, args...),
		Line:    line,
		State:   s.st.Clone(),
	})
}

// fail rejects the operation: one complete step carrying err, state untouched.
func (s *sim[T]) fail(line int, err error) *Result[T] {
	s.steps = append(s.steps, Step[T]{
		Kind:    KindComplete,
		Message: "Operation rejected",
		Line:    line,
		Error:   err.Error(),
		State:   s.st.Clone(),
	})

	return &Result[T]{Steps: s.steps, Final: s.st, Err: err}
}

func (s *sim[T]) done(line int, value T, format string, args ...any) *Result[T] {
	s.emit(KindComplete, line, nil, format, args...)

	return &Result[T]{Steps: s.steps, Final: s.st, Value: value}
}

func outOfBounds(index, lo, hi int) error {
	return fmt.Errorf("%w: index %d not in [%d, %d]", ErrIndexOutOfBounds, index, lo, hi)
}

// Add inserts value at index, shifting later elements right.
func Add[T any](state *State[T], index int, value T) *Result[T] {
	s := begin(state)
	var zero T
	size := s.st.Size
	if index < 0 || index > size {
		return s.fail(addLineCheck, outOfBounds(index, 0, size))
	}
	s.emit(KindCheck, addLineCheck, []int{index}, "Index %d is within [0, %d]", index, size)

	if size == s.st.Capacity() {
		s.resize()
	}

	grown := false
	for i := size - 1; i >= index; i-- {
		s.st.Slots[i+1] = s.st.Slots[i]
		if !grown {
			s.st.Size++
			grown = true
		}
		s.emit(KindShift, addLineShift, []int{i, i + 1}, "Shift a[%d]=%v right to a[%d]", i, s.st.Slots[i].Value, i+1)
	}

	s.st.Slots[index] = Slot[T]{Value: value, Used: true}
	if !grown {
		s.st.Size++
	}
	s.emit(KindInsert, addLineInsert, []int{index}, "Write %v into a[%d]", value, index)

	return s.done(addLineDone, zero, "add(%d, %v) complete, size %d", index, value, s.st.Size)
}

// resize doubles the backing array (a zero-capacity list grows to one slot)
// and copies the live elements.
func (s *sim[T]) resize() {
	oldCap := s.st.Capacity()
	newCap := max(1, oldCap*2)
	s.emit(KindResize, addLineResize, nil, "Array is full (size %d == capacity %d): allocate capacity %d",
		s.st.Size, oldCap, newCap)

	slots := make([]Slot[T], newCap)
	copy(slots, s.st.Slots[:s.st.Size])
	s.st.Slots = slots
	s.emit(KindCopy, addLineCopy, span(0, s.st.Size-1), "Copy %d element(s) into the new array", s.st.Size)
}

// AddFirst inserts at index 0.
func AddFirst[T any](state *State[T], value T) *Result[T] {
	return Add(state, 0, value)
}

// AddLast appends at index Size.
func AddLast[T any](state *State[T], value T) *Result[T] {
	return Add(state, state.Size, value)
}

// Get reads the element at index.
func Get[T any](state *State[T], index int) *Result[T] {
	s := begin(state)
	if index < 0 || index >= s.st.Size {
		return s.fail(getLineCheck, outOfBounds(index, 0, s.st.Size-1))
	}
	s.emit(KindCheck, getLineCheck, []int{index}, "Index %d is within [0, %d]", index, s.st.Size-1)
	v := s.st.Slots[index].Value
	s.emit(KindAccess, getLineRead, []int{index}, "a[%d] = %v", index, v)

	return s.done(getLineRead, v, "get(%d) returned %v", index, v)
}

// Set overwrites the element at index and returns the previous value.
func Set[T any](state *State[T], index int, value T) *Result[T] {
	s := begin(state)
	if index < 0 || index >= s.st.Size {
		return s.fail(setLineCheck, outOfBounds(index, 0, s.st.Size-1))
	}
	s.emit(KindCheck, setLineCheck, []int{index}, "Index %d is within [0, %d]", index, s.st.Size-1)
	old := s.st.Slots[index].Value
	s.emit(KindAccess, setLineRead, []int{index}, "Old value a[%d] = %v", index, old)
	s.st.Slots[index].Value = value
	s.emit(KindUpdate, setLineWrite, []int{index}, "a[%d] = %v", index, value)

	return s.done(setLineDone, old, "set(%d, %v) complete", index, value)
}

// Remove deletes the element at index, shifting later elements left.
func Remove[T any](state *State[T], index int) *Result[T] {
	s := begin(state)
	size := s.st.Size
	if index < 0 || index >= size {
		return s.fail(removeLineCheck, outOfBounds(index, 0, size-1))
	}
	s.emit(KindCheck, removeLineCheck, []int{index}, "Index %d is within [0, %d]", index, size-1)

	v := s.st.Slots[index].Value
	s.emit(KindRemove, removeLineRead, []int{index}, "Take a[%d] = %v", index, v)

	for i := index; i < size-1; i++ {
		s.st.Slots[i] = s.st.Slots[i+1]
		s.emit(KindShift, removeLineShift, []int{i + 1, i}, "Shift a[%d]=%v left to a[%d]", i+1, s.st.Slots[i].Value, i)
	}

	s.st.Size--
	s.st.Slots[s.st.Size] = Slot[T]{}
	s.emit(KindClear, removeLineClear, []int{s.st.Size}, "Size is now %d: clear a[%d]", s.st.Size, s.st.Size)

	return s.done(removeLineDone, v, "remove(%d) returned %v", index, v)
}

// RemoveFirst removes index 0.
func RemoveFirst[T any](state *State[T]) *Result[T] {
	if state.Size == 0 {
		return begin(state).fail(removeLineCheck, fmt.Errorf("%w: removeFirst", ErrEmptyList))
	}

	return Remove(state, 0)
}

// RemoveLast removes index Size-1.
func RemoveLast[T any](state *State[T]) *Result[T] {
	if state.Size == 0 {
		return begin(state).fail(removeLineCheck, fmt.Errorf("%w: removeLast", ErrEmptyList))
	}

	return Remove(state, state.Size-1)
}

// span returns lo..hi inclusive, or nil when hi < lo.
func span(lo, hi int) []int {
	if hi < lo {
		return nil
	}
	out := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, i)
	}

	return out
}

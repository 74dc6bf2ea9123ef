// SPDX-License-Identifier: MIT
package linkedlist

import "fmt"

// sim is one operation in progress over a private copy of the list.
type sim[T any] struct {
	st    *State[T]
	steps []Step[T]
}

func begin[T any](state *State[T]) *sim[T] {
	return &sim[T]{st: state.Clone()}
}

func (s *sim[T]) emit(action Action, line, index int, cur NodeID, format string, args ...any) {
	s.steps = append(s.steps, Step[T]{
		Action:  action,
		Index:   index,
		Current: cur,
		Message: fmt.Sprintf(format, args...),
		Line:    line,
		State:   s.st.Clone(),
	})
}

// fail rejects the operation: one complete step carrying err, state untouched.
func (s *sim[T]) fail(line int, err error) *Result[T] {
	s.steps = append(s.steps, Step[T]{
		Action:  ActionComplete,
		Index:   -1,
		Message: "Operation rejected",
		Line:    line,
		Error:   err.Error(),
		State:   s.st.Clone(),
	})

	return &Result[T]{Steps: s.steps, Final: s.st, Err: err}
}

func (s *sim[T]) done(line int, value T, format string, args ...any) *Result[T] {
	s.emit(ActionComplete, line, -1, Nil, format, args...)

	return &Result[T]{Steps: s.steps, Final: s.st, Value: value}
}

func (s *sim[T]) node(id NodeID) Node[T] { return s.st.Nodes[id] }

func (s *sim[T]) put(n Node[T]) { s.st.Nodes[n.ID] = n }

func (s *sim[T]) doubly() bool { return s.st.Kind == Doubly }

// walk moves a cursor from Head to position to, one step per node visited.
func (s *sim[T]) walk(to int, l lines) NodeID {
	cur := s.st.Head
	s.emit(ActionTraverse, l.start, 0, cur, "current = head (%v, value %v)", cur, s.node(cur).Value)
	for i := 1; i <= to; i++ {
		cur = s.node(cur).Next
		s.emit(ActionTraverse, l.hop, i, cur, "Hop to index %d (%v, value %v)", i, cur, s.node(cur).Value)
	}

	return cur
}

// create allocates a fresh id and parks the node in Pending. Ids start at 1
// even on a zero State, since Nil is 0.
func (s *sim[T]) create(value T, line int) *Node[T] {
	if s.st.NextID < 1 {
		s.st.NextID = 1
	}
	n := &Node[T]{ID: s.st.NextID, Value: value}
	s.st.NextID++
	s.st.Pending = n
	s.emit(ActionCreate, line, -1, n.ID, "Create node %v with value %v", n.ID, value)

	return n
}

// attach moves Pending into the arena.
func (s *sim[T]) attach() Node[T] {
	n := *s.st.Pending
	s.st.Pending = nil
	s.put(n)
	s.st.Size++

	return n
}

func (s *sim[T]) pushFront(value T, l lines) {
	n := s.create(value, l.create)
	if s.st.Head != Nil {
		n.Next = s.st.Head
		s.emit(ActionLink, l.link, -1, n.ID, "%v.next = head (%v)", n.ID, n.Next)
	}

	node := s.attach()
	if s.doubly() && node.Next != Nil {
		h := s.node(node.Next)
		h.Prev = node.ID
		s.put(h)
	}
	s.st.Head = node.ID
	if s.st.Tail == Nil {
		s.st.Tail = node.ID
	}
	s.emit(ActionLink, l.splice, 0, node.ID, "head = %v, size %d", node.ID, s.st.Size)
}

func (s *sim[T]) pushBack(value T, l lines) {
	n := s.create(value, l.create)
	if s.doubly() && s.st.Tail != Nil {
		n.Prev = s.st.Tail
		s.emit(ActionLink, l.link, -1, n.ID, "%v.prev = tail (%v)", n.ID, n.Prev)
	}

	node := s.attach()
	if s.st.Tail == Nil {
		s.st.Head = node.ID
	} else {
		t := s.node(s.st.Tail)
		t.Next = node.ID
		s.put(t)
	}
	s.st.Tail = node.ID
	s.emit(ActionLink, l.splice, s.st.Size-1, node.ID, "tail = %v, size %d", node.ID, s.st.Size)
}

// insertAfter splices a new node between prev and prev.next.
func (s *sim[T]) insertAfter(prev NodeID, index int, value T, l lines) {
	n := s.create(value, l.create)
	n.Next = s.node(prev).Next
	if s.doubly() {
		n.Prev = prev
		s.emit(ActionLink, l.link, -1, n.ID, "%v.next = %v, %v.prev = %v", n.ID, n.Next, n.ID, n.Prev)
	} else {
		s.emit(ActionLink, l.link, -1, n.ID, "%v.next = %v", n.ID, n.Next)
	}

	node := s.attach()
	p := s.node(prev)
	p.Next = node.ID
	s.put(p)
	if s.doubly() {
		nx := s.node(node.Next)
		nx.Prev = node.ID
		s.put(nx)
	}
	s.emit(ActionLink, l.splice, index, node.ID, "%v.next = %v, size %d", prev, node.ID, s.st.Size)
}

func (s *sim[T]) popFront(l lines) T {
	h := s.node(s.st.Head)
	s.emit(ActionAccess, l.access, 0, h.ID, "node = head (%v, value %v)", h.ID, h.Value)

	delete(s.st.Nodes, h.ID)
	s.st.Size--
	s.st.Head = h.Next
	if s.st.Head == Nil {
		s.st.Tail = Nil
	} else if s.doubly() {
		nh := s.node(s.st.Head)
		nh.Prev = Nil
		s.put(nh)
	}
	s.emit(ActionUnlink, l.unlink, 0, h.ID, "Unlink %v: head = %v, size %d", h.ID, s.st.Head, s.st.Size)

	return h.Value
}

func (s *sim[T]) popBack(l lines) T {
	if s.st.Size == 1 {
		return s.popFront(l.collapse(l.single))
	}

	var prev NodeID
	if s.doubly() {
		prev = s.node(s.st.Tail).Prev
		s.emit(ActionAccess, l.access, s.st.Size-2, prev, "prev = tail.prev (%v)", prev)
	} else {
		prev = s.walk(s.st.Size-2, l)
	}

	t := s.node(s.st.Tail)
	p := s.node(prev)
	p.Next = Nil
	s.put(p)
	delete(s.st.Nodes, t.ID)
	s.st.Size--
	s.st.Tail = prev
	s.emit(ActionUnlink, l.unlink, s.st.Size, t.ID, "Unlink %v: tail = %v, size %d", t.ID, prev, s.st.Size)

	return t.Value
}

// removeAfter unlinks prev.next, which is neither head nor tail.
func (s *sim[T]) removeAfter(prev NodeID, index int, l lines) T {
	n := s.node(s.node(prev).Next)
	s.emit(ActionAccess, l.access, index, n.ID, "node = %v.next (%v, value %v)", prev, n.ID, n.Value)

	p := s.node(prev)
	p.Next = n.Next
	s.put(p)
	if s.doubly() {
		nx := s.node(n.Next)
		nx.Prev = prev
		s.put(nx)
	}
	delete(s.st.Nodes, n.ID)
	s.st.Size--
	s.emit(ActionUnlink, l.unlink, index, n.ID, "Unlink %v: %v.next = %v, size %d", n.ID, prev, n.Next, s.st.Size)

	return n.Value
}

func outOfBounds(index, lo, hi int) error {
	return fmt.Errorf("%w: index %d not in [%d, %d]", ErrIndexOutOfBounds, index, lo, hi)
}

// Add inserts value so that it ends up at position index.
func Add[T any](state *State[T], index int, value T) *Result[T] {
	s := begin(state)
	var zero T
	size := s.st.Size
	if index < 0 || index > size {
		return s.fail(addLines.check, outOfBounds(index, 0, size))
	}
	s.emit(ActionCheck, addLines.check, index, Nil, "Index %d is within [0, %d]", index, size)

	switch index {
	case 0:
		s.pushFront(value, addLines.collapse(3))
	case size:
		s.pushBack(value, addLines.collapse(4))
	default:
		prev := s.walk(index-1, addLines)
		s.insertAfter(prev, index, value, addLines)
	}

	return s.done(addLines.done, zero, "add(%d, %v) complete, size %d", index, value, s.st.Size)
}

// AddFirst links a new node in front of Head.
func AddFirst[T any](state *State[T], value T) *Result[T] {
	s := begin(state)
	var zero T
	s.pushFront(value, addFirstLines)

	return s.done(addFirstLines.done, zero, "addFirst(%v) complete, size %d", value, s.st.Size)
}

// AddLast links a new node after Tail without traversing.
func AddLast[T any](state *State[T], value T) *Result[T] {
	s := begin(state)
	var zero T
	s.pushBack(value, addLastLines)

	return s.done(addLastLines.done, zero, "addLast(%v) complete, size %d", value, s.st.Size)
}

// Get reads the element at index, walking from Head.
func Get[T any](state *State[T], index int) *Result[T] {
	s := begin(state)
	if index < 0 || index >= s.st.Size {
		return s.fail(getLines.check, outOfBounds(index, 0, s.st.Size-1))
	}
	s.emit(ActionCheck, getLines.check, index, Nil, "Index %d is within [0, %d]", index, s.st.Size-1)

	cur := s.walk(index, getLines)
	v := s.node(cur).Value
	s.emit(ActionAccess, getLines.access, index, cur, "Read %v.value = %v", cur, v)

	return s.done(getLines.done, v, "get(%d) returned %v", index, v)
}

// Set overwrites the element at index and returns the previous value.
func Set[T any](state *State[T], index int, value T) *Result[T] {
	s := begin(state)
	if index < 0 || index >= s.st.Size {
		return s.fail(setLines.check, outOfBounds(index, 0, s.st.Size-1))
	}
	s.emit(ActionCheck, setLines.check, index, Nil, "Index %d is within [0, %d]", index, s.st.Size-1)

	cur := s.walk(index, setLines)
	n := s.node(cur)
	old := n.Value
	s.emit(ActionAccess, setLines.access, index, cur, "Old value %v.value = %v", cur, old)
	n.Value = value
	s.put(n)
	s.emit(ActionUpdate, setLines.update, index, cur, "%v.value = %v", cur, value)

	return s.done(setLines.done, old, "set(%d, %v) complete", index, value)
}

// Remove unlinks the node at index and returns its value.
func Remove[T any](state *State[T], index int) *Result[T] {
	s := begin(state)
	size := s.st.Size
	if index < 0 || index >= size {
		return s.fail(removeLines.check, outOfBounds(index, 0, size-1))
	}
	s.emit(ActionCheck, removeLines.check, index, Nil, "Index %d is within [0, %d]", index, size-1)

	var v T
	switch index {
	case 0:
		v = s.popFront(removeLines.collapse(3))
	case size - 1:
		v = s.popBack(removeLastLines.collapse(4))
	default:
		prev := s.walk(index-1, removeLines)
		v = s.removeAfter(prev, index, removeLines)
	}

	return s.done(removeLines.done, v, "remove(%d) returned %v", index, v)
}

// RemoveFirst unlinks Head.
func RemoveFirst[T any](state *State[T]) *Result[T] {
	s := begin(state)
	if s.st.Size == 0 {
		return s.fail(removeFirstLines.check, fmt.Errorf("%w: removeFirst", ErrEmptyList))
	}
	s.emit(ActionCheck, removeFirstLines.check, 0, s.st.Head, "head is %v", s.st.Head)
	v := s.popFront(removeFirstLines)

	return s.done(removeFirstLines.done, v, "removeFirst() returned %v", v)
}

// RemoveLast unlinks Tail. A doubly linked list reaches the new tail through
// tail.prev; a singly linked one walks from Head.
func RemoveLast[T any](state *State[T]) *Result[T] {
	s := begin(state)
	if s.st.Size == 0 {
		return s.fail(removeLastLines.check, fmt.Errorf("%w: removeLast", ErrEmptyList))
	}
	s.emit(ActionCheck, removeLastLines.check, s.st.Size-1, s.st.Tail, "tail is %v", s.st.Tail)
	v := s.popBack(removeLastLines)

	return s.done(removeLastLines.done, v, "removeLast() returned %v", v)
}

// SPDX-License-Identifier: MIT
package linkedlist

// Op names an operation listing for Pseudocode.
type Op int

const (
	OpAdd Op = iota
	OpAddFirst
	OpAddLast
	OpGet
	OpSet
	OpRemove
	OpRemoveFirst
	OpRemoveLast
)

// lines maps the sub-actions of an operation to lines of its listing.
type lines struct {
	check, start, hop, access, update int
	create, link, splice, unlink      int
	single, done                      int
}

// collapse points every sub-action at line n, for branches that delegate to
// another listing in one line.
func (l lines) collapse(n int) lines {
	return lines{
		check: l.check, start: n, hop: n, access: n, update: n,
		create: n, link: n, splice: n, unlink: n,
		single: n, done: l.done,
	}
}

var (
	addFirstLines    = lines{create: 2, link: 3, splice: 5, done: 7}
	addLastLines     = lines{create: 2, link: 3, splice: 6, done: 7}
	addLines         = lines{check: 2, start: 5, hop: 6, create: 7, link: 8, splice: 10, done: 11}
	getLines         = lines{check: 2, start: 3, hop: 4, access: 5, done: 5}
	setLines         = lines{check: 2, start: 3, hop: 4, access: 5, update: 6, done: 7}
	removeFirstLines = lines{check: 2, access: 3, unlink: 4, done: 8}
	removeLastLines  = lines{check: 2, single: 3, access: 4, start: 6, hop: 7, unlink: 8, done: 11}
	removeLines      = lines{check: 2, start: 5, hop: 6, access: 7, unlink: 8, done: 11}
)

var pseudocode = map[Op][]string{
	OpAdd: {
		"add(index, value):",
		"  if index < 0 or index > size: error",
		"  if index == 0: return addFirst(value)",
		"  if index == size: return addLast(value)",
		"  prev = head",
		"  repeat index-1 times: prev = prev.next",
		"  node = new Node(value)",
		"  node.next = prev.next",
		"  if doubly: node.prev = prev; prev.next.prev = node",
		"  prev.next = node",
		"  size = size + 1",
	},
	OpAddFirst: {
		"addFirst(value):",
		"  node = new Node(value)",
		"  node.next = head",
		"  if doubly and head != null: head.prev = node",
		"  head = node",
		"  if tail == null: tail = node",
		"  size = size + 1",
	},
	OpAddLast: {
		"addLast(value):",
		"  node = new Node(value)",
		"  if doubly: node.prev = tail",
		"  if tail == null: head = node",
		"  else: tail.next = node",
		"  tail = node",
		"  size = size + 1",
	},
	OpGet: {
		"get(index):",
		"  if index < 0 or index >= size: error",
		"  current = head",
		"  repeat index times: current = current.next",
		"  return current.value",
	},
	OpSet: {
		"set(index, value):",
		"  if index < 0 or index >= size: error",
		"  current = head",
		"  repeat index times: current = current.next",
		"  old = current.value",
		"  current.value = value",
		"  return old",
	},
	OpRemove: {
		"remove(index):",
		"  if index < 0 or index >= size: error",
		"  if index == 0: return removeFirst()",
		"  if index == size-1: return removeLast()",
		"  prev = head",
		"  repeat index-1 times: prev = prev.next",
		"  node = prev.next",
		"  prev.next = node.next",
		"  if doubly: node.next.prev = prev",
		"  size = size - 1",
		"  return node.value",
	},
	OpRemoveFirst: {
		"removeFirst():",
		"  if head == null: error",
		"  node = head",
		"  head = node.next",
		"  if head == null: tail = null",
		"  else if doubly: head.prev = null",
		"  size = size - 1",
		"  return node.value",
	},
	OpRemoveLast: {
		"removeLast():",
		"  if tail == null: error",
		"  if size == 1: return removeFirst()",
		"  if doubly: prev = tail.prev",
		"  else:",
		"    prev = head",
		"    while prev.next != tail: prev = prev.next",
		"  prev.next = null",
		"  node = tail; tail = prev",
		"  size = size - 1",
		"  return node.value",
	},
}

// Pseudocode returns the listing Step.Line indexes (1-based), or nil.
func Pseudocode(op Op) []string {
	src, ok := pseudocode[op]
	if !ok {
		return nil
	}

	return append([]string(nil), src...)
}

// SPDX-License-Identifier: MIT
package arraylist

// Op names an operation listing for Pseudocode.
type Op int

const (
	OpAdd Op = iota
	OpRemove
	OpGet
	OpSet
)

// Line numbers into the listings below.
const (
	addLineCheck  = 2
	addLineResize = 4
	addLineCopy   = 5
	addLineShift  = 7
	addLineInsert = 8
	addLineDone   = 9

	removeLineCheck = 2
	removeLineRead  = 3
	removeLineShift = 5
	removeLineClear = 7
	removeLineDone  = 8

	getLineCheck = 2
	getLineRead  = 3

	setLineCheck = 2
	setLineRead  = 3
	setLineWrite = 4
	setLineDone  = 5
)

var pseudocode = map[Op][]string{
	OpAdd: {
		"add(index, value):",
		"  if index < 0 or index > size: error",
		"  if size == capacity:",
		"    newArray = allocate(2 * capacity)",
		"    copy a[0..size-1] into newArray; a = newArray",
		"  for i = size-1 down to index:",
		"    a[i+1] = a[i]",
		"  a[index] = value",
		"  size = size + 1",
	},
	OpRemove: {
		"remove(index):",
		"  if index < 0 or index >= size: error",
		"  value = a[index]",
		"  for i = index to size-2:",
		"    a[i] = a[i+1]",
		"  size = size - 1",
		"  a[size] = empty",
		"  return value",
	},
	OpGet: {
		"get(index):",
		"  if index < 0 or index >= size: error",
		"  return a[index]",
	},
	OpSet: {
		"set(index, value):",
		"  if index < 0 or index >= size: error",
		"  old = a[index]",
		"  a[index] = value",
		"  return old",
	},
}

// Pseudocode returns the listing Step.Line indexes (1-based), or nil.
func Pseudocode(op Op) []string {
	lines, ok := pseudocode[op]
	if !ok {
		return nil
	}

	return append([]string(nil), lines...)
}

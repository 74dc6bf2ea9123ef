// SPDX-License-Identifier: MIT
package hashset

import "github.com/katalvlaran/algotrace/hashtable"

var member = struct{}{}

// Add inserts value unless it is already present, in which case the trace
// ends with KindDuplicate and nothing changes.
func Add(state *State, value string) *Result {
	return hashtable.PutIfAbsent(state, value, member)
}

// Contains reports membership with a full trace.
func Contains(state *State, value string) *Result {
	return hashtable.Get(state, value)
}

// Remove deletes value if present.
func Remove(state *State, value string) *Result {
	return hashtable.Remove(state, value)
}

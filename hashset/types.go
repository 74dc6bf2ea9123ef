// SPDX-License-Identifier: MIT
package hashset

import "github.com/katalvlaran/algotrace/hashtable"

// Kind is shared with hashtable so a renderer can treat both traces alike.
type Kind = hashtable.Kind

const (
	KindHash           = hashtable.KindHash
	KindIndex          = hashtable.KindIndex
	KindCompare        = hashtable.KindCompare
	KindFound          = hashtable.KindFound
	KindNotFound       = hashtable.KindNotFound
	KindCollision      = hashtable.KindCollision
	KindInsert         = hashtable.KindInsert
	KindRemove         = hashtable.KindRemove
	KindRehashStart    = hashtable.KindRehashStart
	KindRehashMove     = hashtable.KindRehashMove
	KindRehashComplete = hashtable.KindRehashComplete
	KindComplete       = hashtable.KindComplete

	// KindDuplicate ends an Add whose value is already in the set.
	KindDuplicate = hashtable.KindDuplicate
)

// A set is a table whose values carry nothing: members are the keys.
type (
	State  = hashtable.State[struct{}]
	Entry  = hashtable.Entry[struct{}]
	Step   = hashtable.Step[struct{}]
	Result = hashtable.Result[struct{}]
)

// NewState returns an empty set. It fails with hashtable.ErrBadCapacity or
// hashtable.ErrBadLoadFactor.
func NewState(capacity int, loadFactor float64) (*State, error) {
	return hashtable.NewState[struct{}](capacity, loadFactor)
}

// Has reports membership without producing a trace.
func Has(s *State, value string) bool {
	_, ok := s.Lookup(value)

	return ok
}

// Values lists members in bucket order, then chain order.
func Values(s *State) []string {
	return s.Keys()
}

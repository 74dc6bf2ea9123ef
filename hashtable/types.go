// SPDX-License-Identifier: MIT
package hashtable

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for the hashtable package.
var (
	// ErrBadCapacity indicates a bucket count below one.
	ErrBadCapacity = errors.New("hashtable: capacity must be positive")

	// ErrBadLoadFactor indicates a load factor that is not a positive finite number.
	ErrBadLoadFactor = errors.New("hashtable: load factor must be positive and finite")

	// ErrCorruptState is returned by Validate when a state breaks a table invariant.
	ErrCorruptState = errors.New("hashtable: corrupt state")
)

// Defaults used by the visualizer when the learner does not pick a size.
const (
	DefaultCapacity   = 8
	DefaultLoadFactor = 0.75
)

// Kind tags what a step did.
type Kind string

const (
	KindHash           Kind = "hash"
	KindIndex          Kind = "index"
	KindCompare        Kind = "compare"
	KindFound          Kind = "found"
	KindNotFound       Kind = "not-found"
	KindCollision      Kind = "collision"
	KindInsert         Kind = "insert"
	KindUpdate         Kind = "update"
	KindRemove         Kind = "remove"
	KindDuplicate      Kind = "duplicate"
	KindRehashStart    Kind = "rehash-start"
	KindRehashMove     Kind = "rehash-move"
	KindRehashComplete Kind = "rehash-complete"
	KindComplete       Kind = "complete"
)

// Entry is one key/value pair in a chain. Hash is cached so rehashing does
// not recompute it.
type Entry[V any] struct {
	Key   string
	Value V
	Hash  int
}

// State is a snapshot of the table.
//
// Buckets[i] is the chain for index i in insertion order. Pending holds the
// old chains still waiting to migrate during a rehash, nil otherwise.
type State[V any] struct {
	Capacity   int
	Size       int
	LoadFactor float64
	Buckets    [][]Entry[V]
	Pending    [][]Entry[V]
}

// NewState returns an empty table with the given bucket count and load factor.
func NewState[V any](capacity int, loadFactor float64) (*State[V], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCapacity, capacity)
	}
	if loadFactor <= 0 || math.IsNaN(loadFactor) || math.IsInf(loadFactor, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrBadLoadFactor, loadFactor)
	}

	return &State[V]{
		Capacity:   capacity,
		LoadFactor: loadFactor,
		Buckets:    make([][]Entry[V], capacity),
	}, nil
}

// Threshold is floor(Capacity * LoadFactor); a Size above it triggers a rehash.
func (s *State[V]) Threshold() int {
	return int(math.Floor(float64(s.Capacity) * s.LoadFactor))
}

// Clone returns a deep copy of the table structure. Values are copied by
// assignment.
func (s *State[V]) Clone() *State[V] {
	if s == nil {
		return nil
	}
	c := *s
	c.Buckets = cloneBuckets(s.Buckets)
	c.Pending = cloneBuckets(s.Pending)

	return &c
}

func cloneBuckets[V any](src [][]Entry[V]) [][]Entry[V] {
	if src == nil {
		return nil
	}
	dst := make([][]Entry[V], len(src))
	for i, chain := range src {
		if len(chain) > 0 {
			dst[i] = append([]Entry[V](nil), chain...)
		}
	}

	return dst
}

// Lookup returns the value for key without producing a trace. On a
// mid-rehash snapshot it also searches the chains still in Pending.
func (s *State[V]) Lookup(key string) (V, bool) {
	var zero V
	if s == nil || s.Capacity < 1 {
		return zero, false
	}
	h := Hash(key)
	for _, buckets := range [][][]Entry[V]{s.Buckets, s.Pending} {
		if len(buckets) == 0 {
			continue
		}
		for _, e := range buckets[Index(h, len(buckets))] {
			if e.Key == key {
				return e.Value, true
			}
		}
	}

	return zero, false
}

// Keys lists keys in bucket order, then chain order, followed by any keys
// still waiting in Pending.
func (s *State[V]) Keys() []string {
	keys := make([]string, 0, s.Size)
	for _, buckets := range [][][]Entry[V]{s.Buckets, s.Pending} {
		for _, chain := range buckets {
			for _, e := range chain {
				keys = append(keys, e.Key)
			}
		}
	}

	return keys
}

// Validate checks the table invariants: every entry sits in bucket
// Hash(key) mod Capacity (or its old bucket while pending), keys are unique,
// and Size matches the number of entries.
func (s *State[V]) Validate() error {
	if s.Capacity < 1 || len(s.Buckets) != s.Capacity {
		return fmt.Errorf("%w: capacity %d with %d buckets", ErrCorruptState, s.Capacity, len(s.Buckets))
	}
	seen := make(map[string]struct{}, s.Size)
	check := func(buckets [][]Entry[V]) error {
		for b, chain := range buckets {
			for _, e := range chain {
				if e.Hash != Hash(e.Key) {
					return fmt.Errorf("%w: stale hash for %q", ErrCorruptState, e.Key)
				}
				if Index(e.Hash, len(buckets)) != b {
					return fmt.Errorf("%w: key %q in bucket %d, want %d",
						ErrCorruptState, e.Key, b, Index(e.Hash, len(buckets)))
				}
				if _, dup := seen[e.Key]; dup {
					return fmt.Errorf("%w: duplicate key %q", ErrCorruptState, e.Key)
				}
				seen[e.Key] = struct{}{}
			}
		}
		return nil
	}
	if err := check(s.Buckets); err != nil {
		return err
	}
	if err := check(s.Pending); err != nil {
		return err
	}
	if len(seen) != s.Size {
		return fmt.Errorf("%w: size %d but %d entries", ErrCorruptState, s.Size, len(seen))
	}

	return nil
}

// Step is one frame of a map operation. Bucket, Chain, From and To are -1
// when they do not apply to the step.
type Step[V any] struct {
	Kind    Kind
	Key     string
	Hash    int
	Bucket  int
	Chain   int
	From    int
	To      int
	Message string
	State   *State[V]
}

// Result is the outcome of one operation.
//
// Value is the value read by Get, the value removed by Remove, or the value
// replaced by Put; Found reports whether the key was present beforehand.
type Result[V any] struct {
	Steps []Step[V]
	Final *State[V]
	Value V
	Found bool
}

// SPDX-License-Identifier: MIT
package hashtable

import "fmt"

// sim carries one operation: the working copy of the table, the key being
// processed and the steps recorded so far.
type sim[V any] struct {
	st     *State[V]
	key    string
	hash   int
	bucket int
	steps  []Step[V]
	member bool
}

// begin clones the caller's state and narrates hashing and indexing of key.
func begin[V any](state *State[V], key string) *sim[V] {
	s := &sim[V]{st: state.Clone(), key: key, member: keysOnly[V]()}
	s.hash = Hash(key)
	s.bucket = -1
	s.emit(KindHash, -1, "hash(%q) = %d", key, s.hash)
	s.bucket = Index(s.hash, s.st.Capacity)
	s.emit(KindIndex, -1, "%d mod %d = bucket %d", s.hash, s.st.Capacity, s.bucket)

	return s
}

// keysOnly reports whether V is struct{}: such a table is a set and its
// narration leaves values out.
func keysOnly[V any]() bool {
	var zero V
	_, ok := any(zero).(struct{})

	return ok
}

// pair renders key, or key → value for maps.
func (s *sim[V]) pair(v V) string {
	if s.member {
		return fmt.Sprintf("%q", s.key)
	}

	return fmt.Sprintf("%q → %v", s.key, v)
}

// emit records a step with a snapshot of the working table.
func (s *sim[V]) emit(kind Kind, chain int, format string, args ...any) {
	s.steps = append(s.steps, Step[V]{
		Kind:    kind,
		Key:     s.key,
		Hash:    s.hash,
		Bucket:  s.bucket,
		Chain:   chain,
		From:    -1,
		To:      -1,
		Message: fmt.Sprintf(format, args...),
		State:   s.st.Clone(),
	})
}

// scan walks the target chain comparing keys and returns the match position or -1.
func (s *sim[V]) scan() int {
	for i, e := range s.st.Buckets[s.bucket] {
		if e.Key == s.key {
			s.emit(KindCompare, i, "chain[%d]: %q == %q", i, e.Key, s.key)
			return i
		}
		s.emit(KindCompare, i, "chain[%d]: %q != %q", i, e.Key, s.key)
	}

	return -1
}

func (s *sim[V]) result() *Result[V] {
	return &Result[V]{Steps: s.steps, Final: s.st}
}

// insert appends a new entry to the target chain, rehashes if Size passed
// the threshold, and closes the trace.
func (s *sim[V]) insert(op string, value V) *Result[V] {
	chain := s.st.Buckets[s.bucket]
	if len(chain) > 0 {
		s.emit(KindCollision, -1, "Collision: bucket %d already holds %d entr%s", s.bucket, len(chain), plural(len(chain)))
	}
	s.st.Buckets[s.bucket] = append(chain, Entry[V]{Key: s.key, Value: value, Hash: s.hash})
	s.st.Size++
	s.emit(KindInsert, len(chain), "Insert %s at bucket %d, position %d", s.pair(value), s.bucket, len(chain))

	if s.st.Size > s.st.Threshold() {
		s.rehash()
	}
	s.emit(KindComplete, -1, "%s(%q) complete, size %d", op, s.key, s.st.Size)

	return s.result()
}

// Put inserts key or replaces its value in place.
func Put[V any](state *State[V], key string, value V) *Result[V] {
	s := begin(state, key)
	if i := s.scan(); i >= 0 {
		e := &s.st.Buckets[s.bucket][i]
		old := e.Value
		e.Value = value
		s.emit(KindUpdate, i, "Key %q exists: value %v replaced by %v", key, old, value)
		s.emit(KindComplete, -1, "put(%q) complete, size %d", key, s.st.Size)
		r := s.result()
		r.Value, r.Found = old, true
		return r
	}

	return s.insert("put", value)
}

// PutIfAbsent inserts key only when it is missing. A present key ends the
// trace with KindDuplicate and leaves the table as it was; Value then holds
// the existing value.
func PutIfAbsent[V any](state *State[V], key string, value V) *Result[V] {
	s := begin(state, key)
	if i := s.scan(); i >= 0 {
		old := s.st.Buckets[s.bucket][i].Value
		s.emit(KindDuplicate, i, "%s is already present: nothing to do", s.pair(old))
		r := s.result()
		r.Value, r.Found = old, true
		return r
	}

	op := "putIfAbsent"
	if s.member {
		op = "add"
	}

	return s.insert(op, value)
}

// Get looks key up.
func Get[V any](state *State[V], key string) *Result[V] {
	s := begin(state, key)
	i := s.scan()
	r := &Result[V]{}
	if i < 0 {
		s.emit(KindNotFound, -1, "Key %q not found in bucket %d", key, s.bucket)
	} else {
		r.Value, r.Found = s.st.Buckets[s.bucket][i].Value, true
		s.emit(KindFound, i, "Found %s", s.pair(r.Value))
	}
	r.Steps, r.Final = s.steps, s.st

	return r
}

// Remove unlinks key from its chain, keeping the order of the other entries.
func Remove[V any](state *State[V], key string) *Result[V] {
	s := begin(state, key)
	i := s.scan()
	if i < 0 {
		s.emit(KindNotFound, -1, "Key %q not found in bucket %d", key, s.bucket)
		return s.result()
	}

	chain := s.st.Buckets[s.bucket]
	old := chain[i].Value
	var next []Entry[V]
	next = append(next, chain[:i]...)
	next = append(next, chain[i+1:]...)
	s.st.Buckets[s.bucket] = next
	s.st.Size--
	s.emit(KindRemove, i, "Removed %s from bucket %d", s.pair(old), s.bucket)
	s.emit(KindComplete, -1, "remove(%q) complete, size %d", key, s.st.Size)

	r := s.result()
	r.Value, r.Found = old, true

	return r
}

// rehash doubles the bucket count and migrates entries one step at a time,
// walking the old buckets in index order and each chain front to back.
func (s *sim[V]) rehash() {
	oldCap := s.st.Capacity
	newCap := oldCap * 2
	s.emit(KindRehashStart, -1, "Size %d exceeds threshold %d: rehash %d → %d buckets",
		s.st.Size, s.st.Threshold(), oldCap, newCap)

	s.st.Pending = s.st.Buckets
	s.st.Buckets = make([][]Entry[V], newCap)
	s.st.Capacity = newCap

	for b := 0; b < oldCap; b++ {
		for len(s.st.Pending[b]) > 0 {
			e := s.st.Pending[b][0]
			s.st.Pending[b] = s.st.Pending[b][1:]
			to := Index(e.Hash, newCap)
			s.st.Buckets[to] = append(s.st.Buckets[to], e)

			s.steps = append(s.steps, Step[V]{
				Kind:    KindRehashMove,
				Key:     e.Key,
				Hash:    e.Hash,
				Bucket:  to,
				Chain:   len(s.st.Buckets[to]) - 1,
				From:    b,
				To:      to,
				Message: fmt.Sprintf("Move %q: bucket %d → %d (%d mod %d)", e.Key, b, to, e.Hash, newCap),
				State:   s.st.Clone(),
			})
		}
	}
	s.st.Pending = nil
	s.bucket = Index(s.hash, newCap)
	s.emit(KindRehashComplete, -1, "Rehash complete: capacity %d, threshold %d", s.st.Capacity, s.st.Threshold())
}

func plural(n int) string {
	if n == 1 {
		return "y"
	}

	return "ies"
}

package linkedlist_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algotrace/linkedlist"
)

var bothKinds = []linkedlist.Kind{linkedlist.Singly, linkedlist.Doubly}

func newList(t *testing.T, kind linkedlist.Kind, values ...int) *linkedlist.State[int] {
	t.Helper()
	s, err := linkedlist.New(kind, values)
	require.NoError(t, err)
	require.NoError(t, s.Validate())

	return s
}

func actions[T any](steps []linkedlist.Step[T]) []linkedlist.Action {
	out := make([]linkedlist.Action, len(steps))
	for i, s := range steps {
		out[i] = s.Action
	}

	return out
}

func count[T any](steps []linkedlist.Step[T], a linkedlist.Action) int {
	n := 0
	for _, s := range steps {
		if s.Action == a {
			n++
		}
	}

	return n
}

// requireConsistent checks every snapshot of r against the chain invariants.
func requireConsistent[T any](t *testing.T, r *linkedlist.Result[T]) {
	t.Helper()
	require.NotEmpty(t, r.Steps)
	for i, st := range r.Steps {
		require.NotNil(t, st.State)
		require.NoError(t, st.State.Validate(), "step %d (%s)", i, st.Action)
	}
	require.NoError(t, r.Final.Validate())
	assert.Nil(t, r.Final.Pending)
	assert.Equal(t, linkedlist.ActionComplete, r.Steps[len(r.Steps)-1].Action)
}

func reversed(v []int) []int {
	out := slices.Clone(v)
	slices.Reverse(out)

	return out
}

func TestNew(t *testing.T) {
	s := newList(t, linkedlist.Doubly, 1, 2, 3)
	assert.Equal(t, []int{1, 2, 3}, s.Values())
	assert.Equal(t, []int{3, 2, 1}, s.Backward())
	assert.Equal(t, linkedlist.NodeID(4), s.NextID)

	s = newList(t, linkedlist.Singly, 1, 2)
	assert.Nil(t, s.Backward())
	assert.Equal(t, linkedlist.Nil, s.Nodes[s.Tail].Prev)

	_, err := linkedlist.New(linkedlist.Kind(7), []int{1})
	assert.ErrorIs(t, err, linkedlist.ErrUnknownKind)

	k, err := linkedlist.ParseKind("Doubly")
	require.NoError(t, err)
	assert.Equal(t, linkedlist.Doubly, k)
	_, err = linkedlist.ParseKind("circular")
	assert.ErrorIs(t, err, linkedlist.ErrUnknownKind)
}

func TestAddFirst_EmptyAndNonEmpty(t *testing.T) {
	for _, kind := range bothKinds {
		t.Run(kind.String(), func(t *testing.T) {
			r := linkedlist.AddFirst(newList(t, kind), 5)
			requireConsistent(t, r)
			assert.Equal(t, []linkedlist.Action{
				linkedlist.ActionCreate, linkedlist.ActionLink, linkedlist.ActionComplete,
			}, actions(r.Steps))
			assert.Equal(t, r.Final.Head, r.Final.Tail)

			r = linkedlist.AddFirst(r.Final, 4)
			requireConsistent(t, r)
			assert.Equal(t, []int{4, 5}, r.Final.Values())
			assert.Equal(t, 2, count(r.Steps, linkedlist.ActionLink))
			assert.NotNil(t, r.Steps[1].State.Pending, "new node is pending until spliced")
		})
	}
}

func TestAddLast_UsesTail(t *testing.T) {
	for _, kind := range bothKinds {
		t.Run(kind.String(), func(t *testing.T) {
			s := newList(t, kind, 1, 2, 3, 4)
			r := linkedlist.AddLast(s, 5)
			requireConsistent(t, r)
			assert.Zero(t, count(r.Steps, linkedlist.ActionTraverse))
			assert.Equal(t, []int{1, 2, 3, 4, 5}, r.Final.Values())
			assert.Equal(t, 5, r.Final.Nodes[r.Final.Tail].Value)
		})
	}
}

func TestAdd_MiddleTraversesFromHead(t *testing.T) {
	for _, kind := range bothKinds {
		t.Run(kind.String(), func(t *testing.T) {
			s := newList(t, kind, 10, 20, 30, 40)
			r := linkedlist.Add(s, 3, 35)
			requireConsistent(t, r)

			var visited []int
			for _, st := range r.Steps {
				if st.Action == linkedlist.ActionTraverse {
					visited = append(visited, st.Index)
				}
			}
			assert.Equal(t, []int{0, 1, 2}, visited, "walk stops at the predecessor")
			assert.Equal(t, []int{10, 20, 30, 35, 40}, r.Final.Values())
			if kind == linkedlist.Doubly {
				assert.Equal(t, []int{40, 35, 30, 20, 10}, r.Final.Backward())
			}
			assert.Equal(t, []int{10, 20, 30, 40}, s.Values(), "input state untouched")
		})
	}
}

func TestAdd_EndsDelegate(t *testing.T) {
	s := newList(t, linkedlist.Doubly, 1, 2)

	r := linkedlist.Add(s, 0, 0)
	requireConsistent(t, r)
	assert.Equal(t, []int{0, 1, 2}, r.Final.Values())
	assert.Zero(t, count(r.Steps, linkedlist.ActionTraverse))

	r = linkedlist.Add(s, 2, 3)
	requireConsistent(t, r)
	assert.Equal(t, []int{1, 2, 3}, r.Final.Values())
	assert.Zero(t, count(r.Steps, linkedlist.ActionTraverse))
}

func TestGetSet_HeadFirstOnBothKinds(t *testing.T) {
	for _, kind := range bothKinds {
		t.Run(kind.String(), func(t *testing.T) {
			s := newList(t, kind, 1, 2, 3, 4, 5)

			r := linkedlist.Get(s, 4)
			requireConsistent(t, r)
			assert.Equal(t, 5, r.Value)
			assert.Equal(t, 5, count(r.Steps, linkedlist.ActionTraverse), "no tail shortcut")

			r = linkedlist.Set(s, 3, 40)
			requireConsistent(t, r)
			assert.Equal(t, 4, r.Value)
			assert.Equal(t, []int{1, 2, 3, 40, 5}, r.Final.Values())
			assert.Equal(t, 1, count(r.Steps, linkedlist.ActionUpdate))
		})
	}
}

func TestRemoveLast_DoublyUsesPrev(t *testing.T) {
	singly := linkedlist.RemoveLast(newList(t, linkedlist.Singly, 1, 2, 3, 4))
	requireConsistent(t, singly)
	assert.Equal(t, 4, singly.Value)
	assert.Equal(t, 3, count(singly.Steps, linkedlist.ActionTraverse))

	doubly := linkedlist.RemoveLast(newList(t, linkedlist.Doubly, 1, 2, 3, 4))
	requireConsistent(t, doubly)
	assert.Equal(t, 4, doubly.Value)
	assert.Zero(t, count(doubly.Steps, linkedlist.ActionTraverse))
	assert.Equal(t, []linkedlist.Action{
		linkedlist.ActionCheck, linkedlist.ActionAccess, linkedlist.ActionUnlink, linkedlist.ActionComplete,
	}, actions(doubly.Steps))
	assert.Equal(t, []int{3, 2, 1}, doubly.Final.Backward())
}

func TestRemove_SingleElementEmptiesList(t *testing.T) {
	for _, kind := range bothKinds {
		for name, op := range map[string]func(*linkedlist.State[int]) *linkedlist.Result[int]{
			"first": linkedlist.RemoveFirst[int],
			"last":  linkedlist.RemoveLast[int],
			"index": func(s *linkedlist.State[int]) *linkedlist.Result[int] { return linkedlist.Remove(s, 0) },
		} {
			r := op(newList(t, kind, 9))
			requireConsistent(t, r)
			assert.Equal(t, 9, r.Value, "%v/%s", kind, name)
			assert.Zero(t, r.Final.Size)
			assert.Equal(t, linkedlist.Nil, r.Final.Head)
			assert.Equal(t, linkedlist.Nil, r.Final.Tail)
		}
	}
}

func TestRemove_MiddleRewiresBothNeighbours(t *testing.T) {
	s := newList(t, linkedlist.Doubly, 1, 2, 3, 4)
	removed := s.Nodes[s.Nodes[s.Head].Next].ID

	r := linkedlist.Remove(s, 1)
	requireConsistent(t, r)
	assert.Equal(t, 2, r.Value)
	assert.Equal(t, []int{1, 3, 4}, r.Final.Values())
	assert.Equal(t, []int{4, 3, 1}, r.Final.Backward())
	assert.NotContains(t, r.Final.Nodes, removed)

	unlink := r.Steps[len(r.Steps)-2]
	assert.Equal(t, linkedlist.ActionUnlink, unlink.Action)
	assert.Equal(t, removed, unlink.Current)
}

func TestErrors_DoNotMutate(t *testing.T) {
	for _, kind := range bothKinds {
		s := newList(t, kind, 1, 2)
		empty := newList(t, kind)
		cases := []struct {
			r    *linkedlist.Result[int]
			in   *linkedlist.State[int]
			want error
		}{
			{linkedlist.Add(s, 3, 0), s, linkedlist.ErrIndexOutOfBounds},
			{linkedlist.Add(s, -1, 0), s, linkedlist.ErrIndexOutOfBounds},
			{linkedlist.Get(s, 2), s, linkedlist.ErrIndexOutOfBounds},
			{linkedlist.Set(s, -1, 0), s, linkedlist.ErrIndexOutOfBounds},
			{linkedlist.Remove(s, 2), s, linkedlist.ErrIndexOutOfBounds},
			{linkedlist.RemoveFirst(empty), empty, linkedlist.ErrEmptyList},
			{linkedlist.RemoveLast(empty), empty, linkedlist.ErrEmptyList},
		}
		for i, c := range cases {
			assert.ErrorIs(t, c.r.Err, c.want, "%v case %d", kind, i)
			require.Len(t, c.r.Steps, 1)
			assert.Equal(t, linkedlist.ActionComplete, c.r.Steps[0].Action)
			assert.NotEmpty(t, c.r.Steps[0].Error)
			assert.Equal(t, c.in, c.r.Final)
		}
	}
}

func TestIDs_NeverReused(t *testing.T) {
	s := newList(t, linkedlist.Singly, 1, 2, 3)
	seen := map[linkedlist.NodeID]bool{}
	for id := range s.Nodes {
		seen[id] = true
	}
	for i := 0; i < 5; i++ {
		s = linkedlist.RemoveFirst(s).Final
		r := linkedlist.AddLast(s, i)
		id := r.Final.Tail
		assert.False(t, seen[id], "id %v reused", id)
		seen[id] = true
		s = r.Final
	}
}

func TestRandomOperations_MatchSliceModel(t *testing.T) {
	for _, kind := range bothKinds {
		t.Run(kind.String(), func(t *testing.T) {
			rng := rand.New(rand.NewSource(5))
			s := newList(t, kind)
			var model []int

			for i := 0; i < 300; i++ {
				var r *linkedlist.Result[int]
				n := len(model)
				switch op := rng.Intn(6); {
				case n == 0 || op == 0:
					idx := rng.Intn(n + 1)
					r = linkedlist.Add(s, idx, i)
					model = slices.Insert(model, idx, i)
				case op == 1:
					r = linkedlist.AddFirst(s, i)
					model = slices.Insert(model, 0, i)
				case op == 2:
					r = linkedlist.AddLast(s, i)
					model = append(model, i)
				case op == 3:
					idx := rng.Intn(n)
					r = linkedlist.Remove(s, idx)
					assert.Equal(t, model[idx], r.Value)
					model = slices.Delete(model, idx, idx+1)
				case op == 4:
					r = linkedlist.RemoveLast(s)
					assert.Equal(t, model[n-1], r.Value)
					model = model[:n-1]
				default:
					idx := rng.Intn(n)
					r = linkedlist.Set(s, idx, -i)
					model[idx] = -i
				}
				requireConsistent(t, r)
				s = r.Final

				require.Equal(t, len(model), s.Size)
				if len(model) == 0 {
					continue
				}
				assert.Equal(t, model, s.Values())
				if kind == linkedlist.Doubly {
					assert.Equal(t, reversed(model), s.Backward())
				}
			}
		})
	}
}

func TestValidate_DetectsBrokenLinks(t *testing.T) {
	s := newList(t, linkedlist.Doubly, 1, 2, 3)

	bad := s.Clone()
	bad.Size = 2
	assert.ErrorIs(t, bad.Validate(), linkedlist.ErrCorruptState)

	bad = s.Clone()
	mid := bad.Nodes[bad.Head].Next
	n := bad.Nodes[mid]
	n.Prev = linkedlist.Nil
	bad.Nodes[mid] = n
	assert.ErrorIs(t, bad.Validate(), linkedlist.ErrCorruptState)

	bad = s.Clone()
	bad.Tail = bad.Head
	assert.ErrorIs(t, bad.Validate(), linkedlist.ErrCorruptState)
}

func TestPseudocode_LinesInRange(t *testing.T) {
	for _, kind := range bothKinds {
		s := newList(t, kind, 1, 2, 3, 4)
		cases := map[linkedlist.Op]*linkedlist.Result[int]{
			linkedlist.OpAdd:         linkedlist.Add(s, 2, 0),
			linkedlist.OpAddFirst:    linkedlist.AddFirst(s, 0),
			linkedlist.OpAddLast:     linkedlist.AddLast(s, 0),
			linkedlist.OpGet:         linkedlist.Get(s, 3),
			linkedlist.OpSet:         linkedlist.Set(s, 3, 0),
			linkedlist.OpRemove:      linkedlist.Remove(s, 2),
			linkedlist.OpRemoveFirst: linkedlist.RemoveFirst(s),
			linkedlist.OpRemoveLast:  linkedlist.RemoveLast(s),
		}
		for op, r := range cases {
			src := linkedlist.Pseudocode(op)
			require.NotEmpty(t, src)
			for _, st := range r.Steps {
				assert.GreaterOrEqual(t, st.Line, 1, "op %d step %s", op, st.Action)
				assert.LessOrEqual(t, st.Line, len(src), "op %d step %s", op, st.Action)
			}
		}
	}
	assert.Nil(t, linkedlist.Pseudocode(linkedlist.Op(42)))
}

func TestZeroState_FirstNodeGetsRealID(t *testing.T) {
	for _, kind := range bothKinds {
		t.Run(kind.String(), func(t *testing.T) {
			s := &linkedlist.State[int]{Kind: kind}
			require.NoError(t, s.Validate())

			r := linkedlist.AddFirst(s, 1)
			requireConsistent(t, r)
			assert.Equal(t, linkedlist.NodeID(1), r.Final.Head)
			assert.Equal(t, r.Final.Head, r.Final.Tail)

			r = linkedlist.AddLast(r.Final, 2)
			requireConsistent(t, r)
			assert.Equal(t, []int{1, 2}, r.Final.Values())
			assert.Equal(t, linkedlist.NodeID(3), r.Final.NextID)
		})
	}
}

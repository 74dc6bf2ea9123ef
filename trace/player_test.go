package trace_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algotrace/trace"
)

func TestPlayer_StepForwardAndBack(t *testing.T) {
	p := trace.NewPlayer([]string{"a", "b", "c"})
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, -1, p.Position())

	_, ok := p.Current()
	assert.False(t, ok, "nothing shown before the first Next")

	_, ok = p.Prev()
	assert.False(t, ok)

	s, ok := p.Next()
	require.True(t, ok)
	assert.Equal(t, "a", s)

	s, _ = p.Next()
	assert.Equal(t, "b", s)
	s, _ = p.Next()
	assert.Equal(t, "c", s)
	assert.True(t, p.Done())

	_, ok = p.Next()
	assert.False(t, ok, "exhausted trace must not advance")
	assert.Equal(t, 2, p.Position())

	s, ok = p.Prev()
	require.True(t, ok)
	assert.Equal(t, "b", s)

	p.Reset()
	assert.Equal(t, -1, p.Position())
}

func TestPlayer_Seek(t *testing.T) {
	p := trace.NewPlayer([]int{10, 20, 30})

	s, err := p.Seek(2)
	require.NoError(t, err)
	assert.Equal(t, 30, s)
	cur, ok := p.Current()
	assert.True(t, ok)
	assert.Equal(t, 30, cur)

	_, err = p.Seek(3)
	assert.ErrorIs(t, err, trace.ErrSeekOutOfRange)
	_, err = p.Seek(-1)
	assert.ErrorIs(t, err, trace.ErrSeekOutOfRange)
	assert.Equal(t, 2, p.Position(), "failed seek keeps the cursor")
}

func TestPlayer_All(t *testing.T) {
	p := trace.NewPlayer([]int{1, 2, 3, 4})
	var got []int
	for i, v := range p.All() {
		if i == 2 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, -1, p.Position(), "All does not move the cursor")
}

func TestPlayer_PlayToEnd(t *testing.T) {
	p := trace.NewPlayer([]int{1, 2, 3})
	var seen []int
	err := p.Play(context.Background(), 0, func(i int, v int) error {
		seen = append(seen, v)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, seen)
	assert.True(t, p.Done())
}

func TestPlayer_PlayPauseResume(t *testing.T) {
	p := trace.NewPlayer([]int{1, 2, 3, 4})
	pause := errors.New("pause")

	err := p.Play(context.Background(), time.Millisecond, func(i int, v int) error {
		if v == 2 {
			return pause
		}
		return nil
	})
	assert.ErrorIs(t, err, pause)
	assert.Equal(t, 1, p.Position())

	var rest []int
	err = p.Play(context.Background(), time.Millisecond, func(i int, v int) error {
		rest = append(rest, v)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, rest)
}

func TestPlayer_PlayCancelled(t *testing.T) {
	p := trace.NewPlayer([]int{1, 2, 3})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.Play(ctx, 0, func(int, int) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, -1, p.Position())
}

// SPDX-License-Identifier: MIT
package trace

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"time"
)

// ErrSeekOutOfRange is returned when Seek targets a position outside the trace.
var ErrSeekOutOfRange = errors.New("trace: seek position out of range")

// beforeStart is the cursor position before the first step has been shown.
const beforeStart = -1

// Player is a cursor over a fixed step slice.
// Position() == -1 means nothing has been shown yet; Next moves to 0.
// A Player is not safe for concurrent use.
type Player[T any] struct {
	steps []T
	pos   int
}

// NewPlayer returns a Player positioned before the first step.
func NewPlayer[T any](steps []T) *Player[T] {
	return &Player[T]{steps: steps, pos: beforeStart}
}

// Len reports the number of steps in the trace.
func (p *Player[T]) Len() int { return len(p.steps) }

// Position reports the index of the current step, or -1 before the first Next.
func (p *Player[T]) Position() int { return p.pos }

// Done reports whether the cursor sits on the last step (or the trace is empty).
func (p *Player[T]) Done() bool { return p.pos >= len(p.steps)-1 }

// Reset rewinds the cursor to before the first step.
func (p *Player[T]) Reset() { p.pos = beforeStart }

// Current returns the step under the cursor.
func (p *Player[T]) Current() (T, bool) {
	var zero T
	if p.pos < 0 || p.pos >= len(p.steps) {
		return zero, false
	}

	return p.steps[p.pos], true
}

// Next advances one step. It returns false, leaving the cursor in place,
// when the trace is exhausted.
func (p *Player[T]) Next() (T, bool) {
	var zero T
	if p.pos+1 >= len(p.steps) {
		return zero, false
	}
	p.pos++

	return p.steps[p.pos], true
}

// Prev moves one step back. It returns false at the first step.
func (p *Player[T]) Prev() (T, bool) {
	var zero T
	if p.pos <= 0 {
		return zero, false
	}
	p.pos--

	return p.steps[p.pos], true
}

// Seek moves the cursor to step i (scrubbing).
func (p *Player[T]) Seek(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(p.steps) {
		return zero, fmt.Errorf("%w: %d not in [0,%d)", ErrSeekOutOfRange, i, len(p.steps))
	}
	p.pos = i

	return p.steps[i], nil
}

// All yields every step with its index, independent of the cursor.
func (p *Player[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, s := range p.steps {
			if !yield(i, s) {
				return
			}
		}
	}
}

// Play advances from the current position to the end, calling fn for each
// step, waiting interval between steps. interval <= 0 plays without delay.
// Play stops early when ctx is done or fn returns an error; the cursor stays
// on the last step handed to fn, so a later Play resumes after it (pause).
func (p *Player[T]) Play(ctx context.Context, interval time.Duration, fn func(i int, step T) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	var tick <-chan time.Time
	if interval > 0 {
		t := time.NewTicker(interval)
		defer t.Stop()
		tick = t.C
	}

	first := true
	for !p.Done() {
		if !first && tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}
		first = false

		s, _ := p.Next()
		if err := fn(p.pos, s); err != nil {
			return fmt.Errorf("trace: playback stopped at step %d: %w", p.pos, err)
		}
	}

	return nil
}

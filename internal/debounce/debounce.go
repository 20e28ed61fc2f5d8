// Package debounce coalesces bursts of calls that share a key. Only the last
// call of a burst runs once the key has been quiet for the configured delay;
// earlier calls return ErrSuperseded without running.
package debounce

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrSuperseded is returned to a call replaced by a newer call with the same key
var ErrSuperseded = errors.New("debounce: superseded by a newer call")

// Group debounces calls per key
type Group[T any] struct {
	delay time.Duration

	mu sync.Mutex
	// next only grows, so a call numbered before a key was dropped can never
	// match a call numbered after it
	next uint64
	seq  map[string]uint64
}

// NewGroup creates a group with the given quiet period
func NewGroup[T any](delay time.Duration) *Group[T] {
	return &Group[T]{delay: delay, seq: make(map[string]uint64)}
}

// Do waits for the quiet period, then runs fn unless another Do with the same
// key started in the meantime.
func (g *Group[T]) Do(ctx context.Context, key string, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	g.mu.Lock()
	g.next++
	mine := g.next
	g.seq[key] = mine
	g.mu.Unlock()

	timer := time.NewTimer(g.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		g.forget(key, mine)
		return zero, ctx.Err()
	case <-timer.C:
	}

	g.mu.Lock()
	latest := g.seq[key] == mine
	g.mu.Unlock()
	if !latest {
		return zero, ErrSuperseded
	}

	defer g.forget(key, mine)
	return fn(ctx)
}

// forget drops key if mine is still its latest call
func (g *Group[T]) forget(key string, mine uint64) {
	g.mu.Lock()
	if g.seq[key] == mine {
		delete(g.seq, key)
	}
	g.mu.Unlock()
}

// Pending reports how many keys have a call waiting or running
func (g *Group[T]) Pending() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.seq)
}

// Package listing provides the shared list-view controller: an explicit
// finite-state snapshot owned by one controller per collection, replacing
// ad-hoc refresh counters threaded through views.
package listing

import (
	"context"
	"sync"

	"github.com/talentbinder/dashboard/internal/domain"
)

type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusLoaded  Status = "loaded"
	StatusError   Status = "error"
)

// Snapshot is the immutable view of a collection handed to the rendering
// layer.
type Snapshot[T any] struct {
	Status Status
	Items  []T
	Err    error
}

type Fetcher[T any] func(ctx context.Context) ([]T, error)

// Controller owns one collection's lifecycle. Every Load is bound to a
// generation token; when a newer Load (or an Invalidate) supersedes it, its
// late-arriving result is discarded silently instead of causing a stale
// render. Items are deduped by key before they are applied.
type Controller[T any, K comparable] struct {
	fetch Fetcher[T]
	key   func(T) K

	mu         sync.Mutex
	generation uint64
	snap       Snapshot[T]
}

func NewController[T any, K comparable](fetch Fetcher[T], key func(T) K) *Controller[T, K] {
	return &Controller[T, K]{
		fetch: fetch,
		key:   key,
		snap:  Snapshot[T]{Status: StatusIdle},
	}
}

// Load fetches the collection and applies the result unless a newer load has
// started in the meantime. It returns the snapshot as visible after this load
// settled.
func (c *Controller[T, K]) Load(ctx context.Context) Snapshot[T] {
	c.mu.Lock()
	c.generation++
	generation := c.generation
	c.snap.Status = StatusLoading
	c.snap.Err = nil
	c.mu.Unlock()

	items, err := c.fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation {
		// Superseded while in flight; the winner owns the snapshot.
		return c.snap
	}

	if err != nil {
		c.snap = Snapshot[T]{Status: StatusError, Err: err}
		return c.snap
	}

	c.snap = Snapshot[T]{
		Status: StatusLoaded,
		Items:  domain.DedupeBy(items, c.key),
	}
	return c.snap
}

// Reload is the explicit replacement for incrementing an opaque refresh key:
// mutation handlers call it on the controller they affected.
func (c *Controller[T, K]) Reload(ctx context.Context) Snapshot[T] {
	return c.Load(ctx)
}

// Invalidate drops the held collection and supersedes any in-flight load.
func (c *Controller[T, K]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.snap = Snapshot[T]{Status: StatusIdle}
}

func (c *Controller[T, K]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.snap
}

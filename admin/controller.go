// Package admin holds the state machinery behind the management screens:
// the list-sync controller, the single-row edit state machine and the
// image upload coordinator.
package admin

import (
	"context"
	"sync"
)

type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusError
)

// ListController owns the client-visible list for one entity and keeps it
// consistent with the gateway: every mutation is followed by a full
// reload, never an in-place patch, so server-computed fields stay true.
type ListController[T any] struct {
	mu      sync.Mutex
	list    func(ctx context.Context) ([]T, error)
	items   []T
	status  Status
	lastErr error
	loaded  bool
}

func NewListController[T any](list func(ctx context.Context) ([]T, error)) *ListController[T] {
	return &ListController[T]{list: list}
}

// Load replaces the items wholesale from the gateway. On failure the
// previous items are kept: a failed refresh must not blank the screen.
func (c *ListController[T]) Load(ctx context.Context) error {
	c.mu.Lock()
	c.status = StatusLoading
	c.mu.Unlock()

	items, err := c.list(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.status = StatusError
		c.lastErr = err
		return err
	}
	c.items = items
	c.status = StatusIdle
	c.lastErr = nil
	c.loaded = true
	return nil
}

// Loaded reports whether at least one Load has succeeded.
func (c *ListController[T]) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

// AfterMutation re-syncs the list after a successful create, update or
// delete. Always a full reload.
func (c *ListController[T]) AfterMutation(ctx context.Context) error {
	return c.Load(ctx)
}

// Items returns the current list. It may be stale after a failed Load;
// check Status if that matters.
func (c *ListController[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]T, len(c.items))
	copy(items, c.items)
	return items
}

func (c *ListController[T]) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Err returns the error from the most recent failed Load, or nil.
func (c *ListController[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Package memstore keeps portfolio collections in process memory. It backs the
// "memory" db driver for local development and the service and HTTP tests.
package memstore

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/khoahotran/portfolio-api/internal/domain/ordering"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

// CloneFunc copies a row so callers never share memory with the store.
type CloneFunc[T any] func(T) T

// ShallowCopy clones a struct pointer field by field.
func ShallowCopy[E any](p *E) *E {
	c := *p
	return &c
}

// Collection stores rows in insertion order. Replace keeps a row's slot.
type Collection[T ordering.Item] struct {
	mu       sync.RWMutex
	resource string
	rows     []T
	clone    CloneFunc[T]
	onDelete []func(id uuid.UUID)
}

var _ ordering.Store[ordering.Item] = (*Collection[ordering.Item])(nil)

func NewCollection[T ordering.Item](resource string, clone CloneFunc[T]) *Collection[T] {
	return &Collection[T]{resource: resource, clone: clone}
}

// OnDelete registers fn to run after a row is removed, inside the write lock
// of this collection.
func (c *Collection[T]) OnDelete(fn func(id uuid.UUID)) {
	c.onDelete = append(c.onDelete, fn)
}

func alive(ctx context.Context, resource string) error {
	if err := ctx.Err(); err != nil {
		return apperror.NewStoreUnavailable("memory store call for "+resource+" abandoned", err)
	}
	return nil
}

func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	if err := alive(ctx, c.resource); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.copyRows(func(T) bool { return true }), nil
}

func (c *Collection[T]) copyRows(keep func(T) bool) []T {
	out := make([]T, 0, len(c.rows))
	for _, r := range c.rows {
		if keep(r) {
			out = append(out, c.clone(r))
		}
	}
	return out
}

func (c *Collection[T]) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(c.rows, func(r T) bool { return r.ItemID() == id })
}

func (c *Collection[T]) Get(ctx context.Context, id uuid.UUID) (T, error) {
	var zero T
	if err := alive(ctx, c.resource); err != nil {
		return zero, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	i := c.indexOf(id)
	if i < 0 {
		return zero, apperror.NewNotFound(c.resource, id.String())
	}
	return c.clone(c.rows[i]), nil
}

func (c *Collection[T]) Insert(ctx context.Context, item T) error {
	if err := alive(ctx, c.resource); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.indexOf(item.ItemID()) >= 0 {
		return apperror.NewConflict(c.resource, "id", item.ItemID().String())
	}
	c.rows = append(c.rows, c.clone(item))
	return nil
}

func (c *Collection[T]) Replace(ctx context.Context, item T) error {
	if err := alive(ctx, c.resource); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(item.ItemID())
	if i < 0 {
		return apperror.NewNotFound(c.resource, item.ItemID().String())
	}
	c.rows[i] = c.clone(item)
	return nil
}

func (c *Collection[T]) Delete(ctx context.Context, id uuid.UUID) error {
	if err := alive(ctx, c.resource); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(id)
	if i < 0 {
		return apperror.NewNotFound(c.resource, id.String())
	}
	c.rows = slices.Delete(c.rows, i, i+1)
	for _, fn := range c.onDelete {
		fn(id)
	}
	return nil
}

// Children is a Collection whose rows carry a parent reference.
type Children[C ordering.Child] struct {
	*Collection[C]
}

func NewChildren[C ordering.Child](resource string, clone CloneFunc[C]) *Children[C] {
	return &Children[C]{Collection: NewCollection(resource, clone)}
}

func (c *Children[C]) ListByParent(ctx context.Context, parentID uuid.UUID) ([]C, error) {
	if err := alive(ctx, c.resource); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.copyRows(func(r C) bool { return r.ParentID() == parentID }), nil
}

// DeleteByParent drops every child of parentID.
func (c *Children[C]) DeleteByParent(parentID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rows = slices.DeleteFunc(c.rows, func(r C) bool { return r.ParentID() == parentID })
}

// Package ordering defines the contracts shared by every ordered resource:
// the item shape the services work with and the store ports they persist through.
package ordering

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Item is an entity that lives in an ordered collection.
type Item interface {
	ItemID() uuid.UUID
	SetItemID(id uuid.UUID)
	// SortOrder is the caller-assigned display position. Sparse, may repeat.
	SortOrder() int
	Validate() error
}

// Child is an Item scoped to a parent entity.
type Child interface {
	Item
	ParentID() uuid.UUID
	SetParentID(id uuid.UUID)
}

// Record is the shape of a singleton resource.
type Record interface {
	SetItemID(id uuid.UUID)
	Stamp(createdAt time.Time)
	Validate() error
}

// Store persists one collection. List returns rows in insertion order.
// Replace and Delete report apperror.ErrNotFound when id is absent.
type Store[T Item] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id uuid.UUID) (T, error)
	Insert(ctx context.Context, item T) error
	Replace(ctx context.Context, item T) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ChildStore additionally lists the rows of one parent in insertion order.
type ChildStore[C Child] interface {
	Store[C]
	ListByParent(ctx context.Context, parentID uuid.UUID) ([]C, error)
}

// SingletonStore holds at most one logical row.
type SingletonStore[T Record] interface {
	// Current returns the most recently created row; found is false when there is none.
	Current(ctx context.Context) (item T, found bool, err error)
	// ReplaceAll removes every row and inserts item in one transaction.
	ReplaceAll(ctx context.Context, item T) error
}

// SortStable orders items ascending by SortOrder, keeping arrival order on ties.
func SortStable[T Item](items []T) {
	slices.SortStableFunc(items, func(a, b T) int {
		return cmp.Compare(a.SortOrder(), b.SortOrder())
	})
}

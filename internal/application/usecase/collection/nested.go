package collection

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/khoahotran/portfolio-api/internal/domain/ordering"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

// ParentChecker answers whether a parent row exists.
type ParentChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// NestedService manages children that belong to exactly one parent.
type NestedService[C ordering.Child] struct {
	*Service[C]
	parentResource string
	store          ordering.ChildStore[C]
	parents        ParentChecker
}

func NewNestedService[C ordering.Child](resource, parentResource string, store ordering.ChildStore[C], parents ParentChecker) *NestedService[C] {
	return &NestedService[C]{
		Service:        NewService[C](resource, store),
		parentResource: parentResource,
		store:          store,
		parents:        parents,
	}
}

// ListByParent returns the children of parentID ordered like List. A missing
// parent yields an empty slice, so orphans are never listed.
func (s *NestedService[C]) ListByParent(ctx context.Context, parentID uuid.UUID) ([]C, error) {
	ctx, span := s.startSpan(ctx, "ListByParent")
	defer span.End()
	span.SetAttributes(attribute.String("parent_id", parentID.String()))

	ok, err := s.parents.Exists(ctx, parentID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if !ok {
		return []C{}, nil
	}

	items, err := s.store.ListByParent(ctx, parentID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	ordering.SortStable(items)
	return items, nil
}

// CreateUnder stamps parentID onto item and persists it. The parent must exist.
func (s *NestedService[C]) CreateUnder(ctx context.Context, parentID uuid.UUID, item C) (C, error) {
	var zero C
	if err := s.requireParent(ctx, parentID); err != nil {
		return zero, err
	}
	item.SetParentID(parentID)
	return s.Create(ctx, item)
}

// UpdateUnder replaces a child of parentID. The parent reference never moves.
func (s *NestedService[C]) UpdateUnder(ctx context.Context, parentID, id uuid.UUID, item C) (C, error) {
	var zero C
	if err := s.requireChild(ctx, parentID, id); err != nil {
		return zero, err
	}
	item.SetParentID(parentID)
	return s.Update(ctx, id, item)
}

func (s *NestedService[C]) DeleteUnder(ctx context.Context, parentID, id uuid.UUID) error {
	if err := s.requireChild(ctx, parentID, id); err != nil {
		return err
	}
	return s.Delete(ctx, id)
}

func (s *NestedService[C]) requireParent(ctx context.Context, parentID uuid.UUID) error {
	ok, err := s.parents.Exists(ctx, parentID)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.NewNotFound(s.parentResource, parentID.String())
	}
	return nil
}

func (s *NestedService[C]) requireChild(ctx context.Context, parentID, id uuid.UUID) error {
	if err := s.requireParent(ctx, parentID); err != nil {
		return err
	}
	child, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if child.ParentID() != parentID {
		return apperror.NewNotFound(s.resource, id.String())
	}
	return nil
}

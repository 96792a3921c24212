// Package collection implements the ordered-collection behavior shared by every
// portfolio resource: flat collections, parent-scoped children and the singleton.
package collection

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/khoahotran/portfolio-api/internal/domain/ordering"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

var tracer = otel.Tracer("collection_service")

// IDFunc generates identities for new rows.
type IDFunc func() uuid.UUID

// Service lists, creates, replaces and deletes the rows of one collection.
// Order is caller-managed: it is stored as given and never renumbered.
type Service[T ordering.Item] struct {
	resource string
	store    ordering.Store[T]
	newID    IDFunc
}

func NewService[T ordering.Item](resource string, store ordering.Store[T]) *Service[T] {
	return &Service[T]{resource: resource, store: store, newID: uuid.New}
}

// WithIDFunc swaps the id generator. Tests use it for deterministic ids.
func (s *Service[T]) WithIDFunc(fn IDFunc) *Service[T] {
	s.newID = fn
	return s
}

func (s *Service[T]) Resource() string { return s.resource }

func (s *Service[T]) startSpan(ctx context.Context, op string) (context.Context, trace.Span) {
	return tracer.Start(ctx, op, trace.WithAttributes(attribute.String("resource", s.resource)))
}

// List returns every row ascending by order, ties in insertion order.
func (s *Service[T]) List(ctx context.Context) ([]T, error) {
	ctx, span := s.startSpan(ctx, "List")
	defer span.End()

	items, err := s.store.List(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	ordering.SortStable(items)
	span.SetAttributes(attribute.Int("count", len(items)))
	return items, nil
}

func (s *Service[T]) Get(ctx context.Context, id uuid.UUID) (T, error) {
	ctx, span := s.startSpan(ctx, "Get")
	defer span.End()

	item, err := s.store.Get(ctx, id)
	if err != nil {
		span.RecordError(err)
	}
	return item, err
}

// Exists reports whether id is present. Only store failures are errors.
func (s *Service[T]) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	_, err := s.store.Get(ctx, id)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, apperror.ErrNotFound) {
		return false, nil
	}
	return false, err
}

// Create assigns a fresh id and persists item with whatever order it carries.
func (s *Service[T]) Create(ctx context.Context, item T) (T, error) {
	ctx, span := s.startSpan(ctx, "Create")
	defer span.End()

	var zero T
	item.SetItemID(s.newID())
	if err := item.Validate(); err != nil {
		err = apperror.NewInvalidInput(s.resource+" validation failed", err)
		span.RecordError(err)
		return zero, err
	}
	if err := s.store.Insert(ctx, item); err != nil {
		span.RecordError(err)
		return zero, err
	}
	span.SetAttributes(attribute.String("id", item.ItemID().String()))
	return item, nil
}

// Update overwrites every mutable field of id with item. Nothing is merged
// from the stored row. A missing id is NotFound whatever the body holds.
func (s *Service[T]) Update(ctx context.Context, id uuid.UUID, item T) (T, error) {
	ctx, span := s.startSpan(ctx, "Update")
	defer span.End()
	span.SetAttributes(attribute.String("id", id.String()))

	var zero T
	if _, err := s.store.Get(ctx, id); err != nil {
		span.RecordError(err)
		return zero, err
	}
	item.SetItemID(id)
	if err := item.Validate(); err != nil {
		err = apperror.NewInvalidInput(s.resource+" validation failed", err)
		span.RecordError(err)
		return zero, err
	}
	if err := s.store.Replace(ctx, item); err != nil {
		span.RecordError(err)
		return zero, err
	}
	return item, nil
}

// Delete removes id. Siblings keep their order values.
func (s *Service[T]) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, span := s.startSpan(ctx, "Delete")
	defer span.End()
	span.SetAttributes(attribute.String("id", id.String()))

	if err := s.store.Delete(ctx, id); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

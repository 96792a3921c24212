package collection

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/khoahotran/portfolio-api/internal/domain/ordering"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

// Clock supplies creation timestamps.
type Clock func() time.Time

// SingletonService serves a resource that has exactly one row or none.
type SingletonService[T ordering.Record] struct {
	resource string
	store    ordering.SingletonStore[T]
	newID    IDFunc
	now      Clock
}

func NewSingletonService[T ordering.Record](resource string, store ordering.SingletonStore[T]) *SingletonService[T] {
	return &SingletonService[T]{
		resource: resource,
		store:    store,
		newID:    uuid.New,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *SingletonService[T]) WithClock(now Clock) *SingletonService[T] {
	s.now = now
	return s
}

// Get returns the current row. Absence is reported through found, not an error.
func (s *SingletonService[T]) Get(ctx context.Context) (item T, found bool, err error) {
	ctx, span := tracer.Start(ctx, "SingletonGet", trace.WithAttributes(attribute.String("resource", s.resource)))
	defer span.End()

	item, found, err = s.store.Current(ctx)
	if err != nil {
		span.RecordError(err)
	}
	return item, found, err
}

// Replace supersedes every existing row with item in a single store transaction.
func (s *SingletonService[T]) Replace(ctx context.Context, item T) (T, error) {
	ctx, span := tracer.Start(ctx, "SingletonReplace", trace.WithAttributes(attribute.String("resource", s.resource)))
	defer span.End()

	var zero T
	item.SetItemID(s.newID())
	item.Stamp(s.now())
	if err := item.Validate(); err != nil {
		err = apperror.NewInvalidInput(s.resource+" validation failed", err)
		span.RecordError(err)
		return zero, err
	}
	if err := s.store.ReplaceAll(ctx, item); err != nil {
		span.RecordError(err)
		return zero, err
	}
	return item, nil
}

package memstore

import (
	"context"
	"sync"

	"github.com/khoahotran/portfolio-api/internal/domain/ordering"
)

// Singleton holds at most one row. ReplaceAll swaps it under one write lock,
// so readers see either the old row or the new one.
type Singleton[T ordering.Record] struct {
	mu       sync.RWMutex
	resource string
	row      T
	set      bool
	clone    CloneFunc[T]
}

func NewSingleton[T ordering.Record](resource string, clone CloneFunc[T]) *Singleton[T] {
	return &Singleton[T]{resource: resource, clone: clone}
}

func (s *Singleton[T]) Current(ctx context.Context) (T, bool, error) {
	var zero T
	if err := alive(ctx, s.resource); err != nil {
		return zero, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.set {
		return zero, false, nil
	}
	return s.clone(s.row), true, nil
}

func (s *Singleton[T]) ReplaceAll(ctx context.Context, item T) error {
	if err := alive(ctx, s.resource); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.row = s.clone(item)
	s.set = true
	return nil
}

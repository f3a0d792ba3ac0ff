// Package memory keeps collections in process memory. It backs the "memory"
// storage engine and the service tests.
package memory

import (
	"context"
	"slices"
	"sync"
)

type Store[T any] struct {
	mu    sync.RWMutex
	items []T
}

func NewStore[T any](seed ...T) *Store[T] {
	return &Store[T]{items: slices.Clone(seed)}
}

func (s *Store[T]) LoadAll(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]T, len(s.items))
	copy(res, s.items)
	return res, nil
}

func (s *Store[T]) SaveAll(ctx context.Context, items []T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = slices.Clone(items)
	return nil
}

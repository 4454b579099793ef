package slices

import (
	"sync"
	"sync/atomic"
)

// Safe is a slice wrapper to provide some concurrent operations.
// It is optimized for reads using the copy-on-write idiom.
type Safe[T any] struct {
	items atomic.Pointer[[]T]
	lock  sync.Mutex
}

func (s *Safe[T]) Items() []T {
	if items := s.items.Load(); items != nil {
		return *items
	}
	return nil
}

// Upsert replaces the first item matching eq or appends
// the item if none match.
func (s *Safe[T]) Upsert(item T, eq func(T) bool) *Safe[T] {
	if eq == nil {
		panic("eq func cannot be nil")
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s1 := s.Items()
	s2 := make([]T, len(s1), len(s1)+1)
	copy(s2, s1)
	for i, v := range s2 {
		if eq(v) {
			s2[i] = item
			s.items.Store(&s2)
			return s
		}
	}
	s2 = append(s2, item)
	s.items.Store(&s2)
	return s
}

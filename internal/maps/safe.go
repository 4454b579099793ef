package maps

import (
	"maps"
	"sync"
	"sync/atomic"
)

// Safe is a map wrapper optimized for reads using the
// copy-on-write idiom.
// Writes are serialized so that a value is created at most
// once per key.
type Safe[K comparable, V any] struct {
	items atomic.Pointer[map[K]V]
	lock  sync.Mutex
}

// Load returns the value stored for key, if any.
func (s *Safe[K, V]) Load(key K) (V, bool) {
	if items := s.items.Load(); items != nil {
		v, ok := (*items)[key]
		return v, ok
	}
	var zero V
	return zero, false
}

// LoadOrCreate returns the value stored for key or creates it.
// The create func runs while holding the write lock, so
// concurrent callers observe the same value.
// Values are not stored when create fails.
func (s *Safe[K, V]) LoadOrCreate(
	key    K,
	create func() (V, error),
) (V, bool, error) {
	if v, ok := s.Load(key); ok {
		return v, true, nil
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	var cc map[K]V
	items := s.items.Load()
	if items != nil {
		if v, ok := (*items)[key]; ok {
			return v, true, nil
		}
		cc = maps.Clone(*items)
	} else {
		cc = make(map[K]V, 1)
	}

	v, err := create()
	if err != nil {
		return v, false, err
	}
	cc[key] = v
	s.items.Store(&cc)
	return v, false, nil
}

// Len returns the number of stored values.
func (s *Safe[K, V]) Len() int {
	if items := s.items.Load(); items != nil {
		return len(*items)
	}
	return 0
}

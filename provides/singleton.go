package provides

import (
	"fmt"
	"sync"

	"github.com/miruken-go/proxy"
	"github.com/miruken-go/proxy/internal"
)

// singleton creates its value on first use.
type singleton struct {
	create   func() any
	instance any
	lock     sync.Mutex
	once     *sync.Once
}

func (s *singleton) Get() any {
	for {
		s.lock.Lock()
		once := s.once
		s.lock.Unlock()
		created := false
		once.Do(func() {
			created = true
			defer func() {
				if r := recover(); r != nil {
					s.reset()
					panic(r)
				}
			}()
			if instance := s.create(); internal.IsNil(instance) {
				s.reset()
			} else {
				s.lock.Lock()
				s.instance = instance
				s.lock.Unlock()
			}
		})
		s.lock.Lock()
		instance, reset := s.instance, s.once != once
		s.lock.Unlock()
		// callers that waited on a failed attempt try again
		if instance != nil || created || !reset {
			return instance
		}
	}
}

// reset allows the value to be created again after a
// failed attempt.
func (s *singleton) reset() {
	s.lock.Lock()
	s.once = new(sync.Once)
	s.lock.Unlock()
}

// Singleton provides the value created by create on first use.
// If create panics or returns nil the next call tries again.
func Singleton(create func() any) proxy.ObjectProvider {
	if create == nil {
		panic("create cannot be nil")
	}
	return &singleton{create: create, once: new(sync.Once)}
}

// SingletonOf is Singleton for a typed constructor.
func SingletonOf[T any](create func() (T, error)) proxy.ObjectProvider {
	if create == nil {
		panic("create cannot be nil")
	}
	return Singleton(func() any {
		t, err := create()
		if err != nil {
			panic(fmt.Errorf("singleton: %w", err))
		}
		return t
	})
}

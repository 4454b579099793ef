package provides

import (
	"sync/atomic"

	"github.com/miruken-go/proxy"
)

// rotating provides its values in round robin order.
type rotating struct {
	values []any
	next   atomic.Uint64
}

func (r *rotating) Get() any {
	n := r.next.Add(1) - 1
	return r.values[n%uint64(len(r.values))]
}

// Rotating provides the values in turn, starting over after
// the last one.
// It is safe for concurrent use.
func Rotating(values ...any) proxy.ObjectProvider {
	if len(values) == 0 {
		panic("values cannot be empty")
	}
	for _, v := range values {
		if v == nil {
			panic("values cannot contain nil")
		}
	}
	return &rotating{values: append([]any(nil), values...)}
}

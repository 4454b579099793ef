package proxy

import (
	"encoding/gob"

	"github.com/miruken-go/proxy/internal"
)

type (
	// Interceptor wraps calls on an intercepting proxy.
	// It either calls Proceed, possibly after changing the
	// arguments, or returns its own results without proceeding.
	Interceptor interface {
		Intercept(inv *Invocation) ([]any, error)
	}

	// InterceptorFunc adapts a function to an Interceptor.
	InterceptorFunc func(inv *Invocation) ([]any, error)

	// InterceptorChain composes Interceptors by nesting.
	// The first Interceptor is the outermost and each one
	// wraps the Proceed of the one after it.
	InterceptorChain []Interceptor
)


// InterceptorFunc

func (f InterceptorFunc) Intercept(inv *Invocation) ([]any, error) {
	return f(inv)
}


// InterceptorChain

func (c InterceptorChain) Intercept(inv *Invocation) ([]any, error) {
	return c.next(inv, 0)
}

func (c InterceptorChain) next(inv *Invocation, index int) ([]any, error) {
	if index >= len(c) {
		return inv.Proceed()
	}
	return c[index].Intercept(inv.nest(func() ([]any, error) {
		return c.next(inv, index+1)
	}))
}

// Chain composes interceptors into a single Interceptor.
// nil interceptors are skipped.
func Chain(interceptors ...Interceptor) Interceptor {
	chain := InterceptorChain{}
	for _, i := range interceptors {
		if !internal.IsNil(i) {
			chain = append(chain, i)
		}
	}
	if len(chain) == 1 {
		return chain[0]
	}
	return chain
}

// Proceed is an Interceptor that always proceeds.
var Proceed InterceptorFunc = func(inv *Invocation) ([]any, error) {
	return inv.Proceed()
}

func init() {
	gob.RegisterName("proxy.InterceptorChain", InterceptorChain{})
}

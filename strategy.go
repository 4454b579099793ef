package proxy

type (
	// ObjectProvider supplies the target of a delegating proxy.
	// Get is called once per delegated call.
	ObjectProvider interface {
		Get() any
	}

	// ProviderFunc adapts a function to an ObjectProvider.
	ProviderFunc func() any

	// Invoker answers every call of an invoking proxy.
	// Results exclude a trailing error result which is
	// returned separately.
	Invoker interface {
		Invoke(
			proxy  any,
			method *Method,
			args   []any,
		) ([]any, error)
	}

	// InvokerFunc adapts a function to an Invoker.
	InvokerFunc func(proxy any, method *Method, args []any) ([]any, error)
)

type (
	// delegating forwards calls to the provided object.
	delegating struct {
		provider ObjectProvider
	}

	// intercepting wraps calls to a fixed target.
	intercepting struct {
		target      any
		interceptor Interceptor
	}

	// invoking has no target.
	invoking struct {
		invoker Invoker
	}
)


// ProviderFunc

func (f ProviderFunc) Get() any {
	return f()
}


// NullInvoker answers every call with zero values and no error.
var NullInvoker Invoker = nullInvoker{}

type nullInvoker struct{}

func (nullInvoker) Invoke(any, *Method, []any) ([]any, error) {
	return nil, nil
}


// InvokerFunc

func (f InvokerFunc) Invoke(
	proxy  any,
	method *Method,
	args   []any,
) ([]any, error) {
	return f(proxy, method, args)
}


// delegating

func (d *delegating) dispatch(
	_      *Instance,
	method *Method,
	args   []any,
) ([]any, error) {
	return callTarget(d.provider.Get(), method, args)
}


// intercepting

func (i *intercepting) dispatch(
	inst   *Instance,
	method *Method,
	args   []any,
) ([]any, error) {
	target := i.target
	inv := &Invocation{call: &call{inst.self, method, args}}
	inv.proceed = func() ([]any, error) {
		return callTarget(target, method, inv.call.args)
	}
	return i.interceptor.Intercept(inv)
}


// invoking

func (i *invoking) dispatch(
	inst   *Instance,
	method *Method,
	args   []any,
) ([]any, error) {
	return i.invoker.Invoke(inst.self, method, args)
}

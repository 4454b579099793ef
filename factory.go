package proxy

import (
	"fmt"
	"reflect"

	"github.com/go-logr/logr"
	"github.com/miruken-go/proxy/internal"
)

// Factory creates proxies from the stubs in a Registry.
type Factory struct {
	registry *Registry
	logger   logr.Logger
}

// Default creates proxies from the DefaultRegistry.
var Default = NewFactory()


// NewFactory creates a Factory configured by the options.
func NewFactory(config ...func(*Factory)) *Factory {
	factory := &Factory{
		registry: DefaultRegistry,
		logger:   logr.Discard(),
	}
	for _, configure := range config {
		if configure != nil {
			configure(factory)
		}
	}
	return factory
}

func (f *Factory) Registry() *Registry {
	return f.registry
}

// CanProxy returns true if t can be used as a contract.
func (f *Factory) CanProxy(t reflect.Type) bool {
	return CanProxy(t)
}

// CreateDelegator creates a proxy forwarding every call to the
// object returned by provider at the time of the call.
func (f *Factory) CreateDelegator(
	provider  ObjectProvider,
	contracts ...reflect.Type,
) (any, error) {
	if internal.IsNil(provider) {
		return nil, nilPayload("provider", contracts)
	}
	return f.create(Delegating, &delegating{provider}, contracts)
}

// CreateInterceptor creates a proxy passing every call through
// interceptor before reaching target.
func (f *Factory) CreateInterceptor(
	target      any,
	interceptor Interceptor,
	contracts   ...reflect.Type,
) (any, error) {
	if target == nil {
		return nil, nilPayload("target", contracts)
	}
	if internal.IsNil(interceptor) {
		return nil, nilPayload("interceptor", contracts)
	}
	return f.create(Intercepting, &intercepting{target, interceptor}, contracts)
}

// CreateInvoker creates a proxy handing every call to invoker.
func (f *Factory) CreateInvoker(
	invoker   Invoker,
	contracts ...reflect.Type,
) (any, error) {
	if internal.IsNil(invoker) {
		return nil, nilPayload("invoker", contracts)
	}
	return f.create(Invoking, &invoking{invoker}, contracts)
}

// CreateNull creates a null object whose methods do nothing
// and return zero values.
func (f *Factory) CreateNull(contracts ...reflect.Type) (any, error) {
	return f.CreateInvoker(NullInvoker, contracts...)
}

func (f *Factory) create(
	strategy  Strategy,
	dispatch  dispatcher,
	contracts []reflect.Type,
) (any, error) {
	set, err := NewContractSet(contracts...)
	if err != nil {
		return nil, err
	}
	typ, err := f.registry.typeOf(strategy, set, f.logger)
	if err != nil {
		return nil, err
	}
	inst := &Instance{typ: typ, strategy: dispatch}
	inst.self = typ.ctor(Stub{inst})
	return inst.self, nil
}

func nilPayload(name string, contracts []reflect.Type) error {
	return &InvalidContractError{contracts, fmt.Errorf("%s: %w", name, ErrNilPayload)}
}


// Delegate creates a delegating proxy satisfying T and
// any additional contracts.
// A nil factory uses the Default.
func Delegate[T any](
	f         *Factory,
	provider  ObjectProvider,
	contracts ...reflect.Type,
) (T, error) {
	if f == nil {
		f = Default
	}
	return as[T](f.CreateDelegator(provider, with[T](contracts)...))
}

// Intercept creates an intercepting proxy satisfying T and
// any additional contracts.
// A nil factory uses the Default.
func Intercept[T any](
	f           *Factory,
	target      any,
	interceptor Interceptor,
	contracts   ...reflect.Type,
) (T, error) {
	if f == nil {
		f = Default
	}
	return as[T](f.CreateInterceptor(target, interceptor, with[T](contracts)...))
}

// Invoke creates an invoking proxy satisfying T and
// any additional contracts.
// A nil factory uses the Default.
func Invoke[T any](
	f         *Factory,
	invoker   Invoker,
	contracts ...reflect.Type,
) (T, error) {
	if f == nil {
		f = Default
	}
	return as[T](f.CreateInvoker(invoker, with[T](contracts)...))
}

// Null creates a null object satisfying T and any additional
// contracts.
// A nil factory uses the Default.
func Null[T any](
	f         *Factory,
	contracts ...reflect.Type,
) (T, error) {
	if f == nil {
		f = Default
	}
	return as[T](f.CreateNull(with[T](contracts)...))
}

func with[T any](contracts []reflect.Type) []reflect.Type {
	return append([]reflect.Type{reflect.TypeFor[T]()}, contracts...)
}

func as[T any](p any, err error) (T, error) {
	if err != nil {
		var zero T
		return zero, err
	}
	return p.(T), nil
}

package proxy

import (
	"fmt"
	"reflect"
)

type (
	// Instance is the dispatch state behind a proxy.
	// It captures the strategy specific payload at creation
	// and is otherwise stateless.
	Instance struct {
		typ      *Type
		strategy dispatcher
		self     any
	}

	// dispatcher implements a Strategy.
	dispatcher interface {
		dispatch(
			inst   *Instance,
			method *Method,
			args   []any,
		) ([]any, error)
	}
)


func (i *Instance) Type() *Type {
	return i.typ
}

// Proxy returns the generated stub handed to callers.
func (i *Instance) Proxy() any {
	return i.self
}

// Dispatch invokes the named method with the strategy chosen
// when the proxy was created.
// Results hold the non-error outputs of the method.
// A failure for a method that returns an error is returned
// unchanged with zero results.  Since a method without an error result has no
// way to report it, the failure is raised with panic using
// the original error value.
func (i *Instance) Dispatch(name string, args ...any) ([]any, error) {
	method, ok := i.typ.byName[name]
	if !ok {
		panic(fmt.Sprintf("proxy: %v has no method %q", i.typ, name))
	}
	if args == nil {
		args = []any{}
	}
	out, err := i.strategy.dispatch(i, method, args)
	if err != nil {
		if !method.hasErr {
			panic(err)
		}
		// results accompanying a failure are discarded
		return normalizeResults(method, nil), err
	}
	return normalizeResults(method, out), nil
}

// Equal uses reference equality.
func (i *Instance) Equal(other any) bool {
	if o, ok := InstanceOf(other); ok {
		return i == o
	}
	return false
}

// Hash returns the identity hash of the proxy.
func (i *Instance) Hash() uintptr {
	return IdentityHash(i.self)
}

func (i *Instance) String() string {
	return fmt.Sprintf("%s@%x", i.typ.name, i.Hash())
}

// normalizeResults sizes the results to the method outputs,
// using zero values for missing ones and converting values
// convertible to the declared type.
func normalizeResults(method *Method, out []any) []any {
	numOut := method.numOut
	if numOut == 0 {
		return nil
	}
	results := make([]any, numOut)
	for i := 0; i < numOut; i++ {
		typ := method.Type.Out(i)
		if i >= len(out) || out[i] == nil {
			if typ.Kind() != reflect.Interface {
				results[i] = reflect.Zero(typ).Interface()
			}
			continue
		}
		v := reflect.ValueOf(out[i])
		switch {
		case v.Type().AssignableTo(typ):
			results[i] = out[i]
		case convertible(v.Type(), typ):
			results[i] = v.Convert(typ).Interface()
		default:
			panic(fmt.Errorf("proxy: %v result %d: %v is not assignable to %v",
				method, i, v.Type(), typ))
		}
	}
	return results
}

// convertible excludes conversions that change meaning such
// as integers to strings.
func convertible(from, to reflect.Type) bool {
	if !from.ConvertibleTo(to) {
		return false
	}
	if to.Kind() == reflect.String {
		return from.Kind() == reflect.String
	}
	return true
}

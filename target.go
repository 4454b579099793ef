package proxy

import (
	"fmt"
	"reflect"

	"github.com/miruken-go/proxy/internal"
	"github.com/miruken-go/proxy/internal/maps"
)

type targetKey struct {
	typ  reflect.Type
	name string
}

// targetMethods caches the method index of target types.
var targetMethods maps.Safe[targetKey, int]

// callTarget calls the method with the same name on target.
// The target does not have to implement the contract, it
// only needs a compatible method.
// Failures returned or raised by the target are passed on
// unchanged.
func callTarget(
	target any,
	method *Method,
	args   []any,
) ([]any, error) {
	if target == nil {
		return nil, ErrNilTarget
	}
	v   := reflect.ValueOf(target)
	typ := v.Type()
	index, _, err := targetMethods.LoadOrCreate(
		targetKey{typ, method.Name}, func() (int, error) {
			if m, ok := typ.MethodByName(method.Name); ok {
				return m.Index, nil
			}
			return -1, fmt.Errorf("%w: %v %q", ErrMethodNotFound, typ, method.Name)
		})
	if err != nil {
		return nil, err
	}
	fun := v.Method(index)
	in, err := buildArgs(fun.Type(), method, args)
	if err != nil {
		return nil, err
	}
	var out []reflect.Value
	if fun.Type().IsVariadic() {
		out = fun.CallSlice(in)
	} else {
		out = fun.Call(in)
	}
	return splitResults(fun.Type(), out)
}

// buildArgs converts the arguments to the parameters of funType.
// A variadic parameter expects its arguments as one slice.
func buildArgs(
	funType reflect.Type,
	method  *Method,
	args    []any,
) ([]reflect.Value, error) {
	numIn := funType.NumIn()
	if len(args) != numIn {
		return nil, fmt.Errorf("proxy: %v expects %d arguments but got %d",
			method, numIn, len(args))
	}
	in := make([]reflect.Value, numIn)
	for i, arg := range args {
		typ := funType.In(i)
		if arg == nil {
			in[i] = reflect.Zero(typ)
			continue
		}
		v := reflect.ValueOf(arg)
		switch {
		case v.Type().AssignableTo(typ):
			in[i] = v
		case convertible(v.Type(), typ):
			in[i] = v.Convert(typ)
		default:
			return nil, fmt.Errorf("proxy: %v argument %d: %v is not assignable to %v",
				method, i, v.Type(), typ)
		}
	}
	return in, nil
}

// splitResults separates a trailing error from the results.
func splitResults(
	funType reflect.Type,
	out     []reflect.Value,
) ([]any, error) {
	numOut := len(out)
	var err error
	if numOut > 0 && funType.Out(numOut-1) == internal.ErrorType {
		numOut--
		if e := out[numOut]; !e.IsNil() {
			err = e.Interface().(error)
		}
	}
	results := make([]any, numOut)
	for i := 0; i < numOut; i++ {
		results[i] = out[i].Interface()
	}
	return results, err
}

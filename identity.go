package proxy

import (
	"reflect"
)

// InstanceOf returns the Instance behind a proxy.
func InstanceOf(p any) (*Instance, bool) {
	switch p := p.(type) {
	case stubbed:
		if inst := p.instance(); inst != nil {
			return inst, true
		}
	case *Instance:
		return p, p != nil
	}
	return nil, false
}

// TypeOf returns the generated Type of a proxy or nil if
// p is not a proxy.
func TypeOf(p any) *Type {
	if inst, ok := InstanceOf(p); ok {
		return inst.typ
	}
	return nil
}

// IsProxy reports if p was created by a Factory.
func IsProxy(p any) bool {
	_, ok := InstanceOf(p)
	return ok
}

// Equal uses reference equality for proxies.
// Two proxies are never equal unless they are the same
// instance, even when created with identical arguments.
func Equal(a, b any) bool {
	ia, aok := InstanceOf(a)
	ib, bok := InstanceOf(b)
	if aok || bok {
		return aok && bok && ia == ib
	}
	return a == b
}

// IdentityHash returns the address of the value if it is a
// pointer, which for proxies is always the case.
// It returns 0 for values without identity.
func IdentityHash(v any) uintptr {
	if v == nil {
		return 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.UnsafePointer, reflect.Map,
		reflect.Chan, reflect.Func, reflect.Slice:
		return rv.Pointer()
	}
	return 0
}

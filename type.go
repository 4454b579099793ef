package proxy

import (
	"fmt"
	"reflect"
)

// Strategy selects how calls on a proxy are dispatched.
type Strategy uint8

const (
	// Delegating forwards calls to the object returned by an ObjectProvider.
	Delegating Strategy = iota + 1
	// Intercepting wraps calls to a fixed target with an Interceptor.
	Intercepting
	// Invoking hands every call to an Invoker.
	Invoking
)

func (s Strategy) String() string {
	switch s {
	case Delegating:
		return "delegating"
	case Intercepting:
		return "intercepting"
	case Invoking:
		return "invoking"
	default:
		return fmt.Sprintf("strategy(%d)", uint8(s))
	}
}

// Type is a proxy type generated for a Strategy and ContractSet.
// Types are cached and never change once created, so every
// proxy built from an equal contract set under the same
// Strategy reports the same *Type.
type Type struct {
	name      string
	strategy  Strategy
	contracts ContractSet
	methods   []*Method
	byName    map[string]*Method
	stub      reflect.Type
	ctor      StubFunc
}

// Name is unique within the process.
func (t *Type) Name() string {
	return t.name
}

func (t *Type) Strategy() Strategy {
	return t.strategy
}

func (t *Type) Contracts() ContractSet {
	return t.contracts
}

// Methods returns the resolved methods in table order.
func (t *Type) Methods() []*Method {
	return append([]*Method(nil), t.methods...)
}

// Method returns the resolved method with the given name.
func (t *Type) Method(name string) (*Method, bool) {
	m, ok := t.byName[name]
	return m, ok
}

// StubType returns the go type of the generated stub.
func (t *Type) StubType() reflect.Type {
	return t.stub
}

// Implements reports if proxies of this type satisfy contract.
func (t *Type) Implements(contract reflect.Type) bool {
	return contract != nil &&
		contract.Kind() == reflect.Interface &&
		t.stub.Implements(contract)
}

func (t *Type) String() string {
	return fmt.Sprintf("%s(%v %v)", t.name, t.strategy, t.contracts)
}

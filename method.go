package proxy

import (
	"fmt"
	"reflect"

	"github.com/miruken-go/proxy/internal"
)

// Method is a method resolved for a proxy Type.
// When several contracts declare the same method, the one
// declared by the first contract in the set is reported.
// A Method is created once per Type and shared by every
// proxy instance and call.
type Method struct {
	Name     string
	Type     reflect.Type // func type without the receiver
	Contract reflect.Type // declaring contract
	Index    int          // position in the Type method table

	numOut   int
	hasErr   bool
	variadic bool
}

// Declared returns the method as declared by its contract.
func (m *Method) Declared() reflect.Method {
	method, _ := m.Contract.MethodByName(m.Name)
	return method
}

// NumIn returns the number of arguments.
func (m *Method) NumIn() int {
	return m.Type.NumIn()
}

// NumOut returns the number of results excluding a
// trailing error.
func (m *Method) NumOut() int {
	return m.numOut
}

// ReturnsError reports if the last result is an error.
func (m *Method) ReturnsError() bool {
	return m.hasErr
}

// Variadic reports if the last argument is variadic.
func (m *Method) Variadic() bool {
	return m.variadic
}

// Out returns the type of the i'th non-error result.
func (m *Method) Out(i int) reflect.Type {
	return m.Type.Out(i)
}

func (m *Method) String() string {
	return fmt.Sprintf("%v.%s%s", m.Contract, m.Name, m.Type.String()[4:])
}

// resolveMethods builds the method table of a contract set.
// Contracts are visited in set order and methods in the
// order reflection reports them.
func resolveMethods(set ContractSet) ([]*Method, map[string]*Method) {
	var methods []*Method
	byName := make(map[string]*Method)
	for _, c := range set.contracts {
		for i := 0; i < c.NumMethod(); i++ {
			declared := c.Method(i)
			if _, ok := byName[declared.Name]; ok {
				continue
			}
			typ     := declared.Type
			numOut  := typ.NumOut()
			hasErr  := numOut > 0 && typ.Out(numOut-1) == internal.ErrorType
			if hasErr {
				numOut--
			}
			method := &Method{
				Name:     declared.Name,
				Type:     typ,
				Contract: c,
				Index:    len(methods),
				numOut:   numOut,
				hasErr:   hasErr,
				variadic: typ.IsVariadic(),
			}
			methods = append(methods, method)
			byName[method.Name] = method
		}
	}
	return methods, byName
}

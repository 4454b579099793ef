// Package provides contains ObjectProviders for delegating proxies.
package provides

import (
	"encoding/gob"

	"github.com/miruken-go/proxy"
)

type (
	// ConstantProvider always provides the same value.
	// It is persistable when Value is.
	ConstantProvider struct {
		Value any
	}

	// FuncProvider provides the result of calling a function.
	FuncProvider func() any
)


// ConstantProvider

func (p *ConstantProvider) Get() any {
	return p.Value
}


// FuncProvider

func (f FuncProvider) Get() any {
	return f()
}


// Constant provides value on every call.
func Constant(value any) proxy.ObjectProvider {
	if value == nil {
		panic("value cannot be nil")
	}
	return &ConstantProvider{value}
}

// Func provides the result of fun on every call.
func Func(fun func() any) proxy.ObjectProvider {
	if fun == nil {
		panic("fun cannot be nil")
	}
	return FuncProvider(fun)
}

func init() {
	gob.RegisterName("provides.ConstantProvider", &ConstantProvider{})
}

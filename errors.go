package proxy

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

type (
	// InvalidContractError reports a contract set that cannot
	// be proxied.
	// It is only raised while creating proxies, never while
	// dispatching calls.
	InvalidContractError struct {
		contracts []reflect.Type
		reason    error
	}
)

var (
	ErrEmptyContracts    = errors.New("at least one contract is required")
	ErrNotInterface      = errors.New("contract must be an interface")
	ErrUnexportedMethod  = errors.New("contract has unexported methods")
	ErrConflictingMethod = errors.New("methods with the same name have different signatures")
	ErrNoStub            = errors.New("no stub registered for contracts")
	ErrNilPayload        = errors.New("payload cannot be nil")

	ErrAlreadyProceeded = errors.New("proxy: invocation already proceeded")
	ErrNilTarget        = errors.New("proxy: target is nil")
	ErrMethodNotFound   = errors.New("proxy: target does not implement method")

	ErrNotPersistable  = errors.New("proxy: only delegator and interceptor proxies can be persisted")
	ErrUnknownContract = errors.New("proxy: unknown contract")
)


// InvalidContractError

func (e *InvalidContractError) Contracts() []reflect.Type {
	return e.contracts
}

func (e *InvalidContractError) Error() string {
	var names strings.Builder
	for i, c := range e.contracts {
		if i > 0 {
			names.WriteString(", ")
		}
		if c == nil {
			names.WriteString("<nil>")
		} else {
			names.WriteString(c.String())
		}
	}
	return fmt.Sprintf("proxy: invalid contracts [%s]: %v", names.String(), e.reason)
}

func (e *InvalidContractError) Unwrap() error {
	return e.reason
}

package proxy

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/miruken-go/proxy/internal/slices"
)

// ContractSet is an ordered set of interface types requested
// for a proxy.
// Duplicates are removed by identity keeping the first
// occurrence, but related contracts (e.g. an interface and
// one it embeds) are kept if both were requested.
type ContractSet struct {
	contracts []reflect.Type
	key       string
}

// CanProxy returns true if t is an interface type whose
// methods are all exported.
func CanProxy(t reflect.Type) bool {
	if t == nil || t.Kind() != reflect.Interface {
		return false
	}
	for i := 0; i < t.NumMethod(); i++ {
		if !t.Method(i).IsExported() {
			return false
		}
	}
	return true
}

// NewContractSet normalizes the requested contracts.
// It fails with an InvalidContractError if no contracts are
// given, if a contract cannot be proxied or if two contracts
// declare a method with the same name but a different signature.
func NewContractSet(contracts ...reflect.Type) (ContractSet, error) {
	if len(contracts) == 0 {
		return ContractSet{}, &InvalidContractError{nil, ErrEmptyContracts}
	}
	distinct, _ := slices.Distinct(contracts)

	var invalid error
	declared := make(map[string]reflect.Method)
	for _, c := range distinct {
		if c == nil {
			invalid = multierror.Append(invalid,
				fmt.Errorf("<nil>: %w", ErrNotInterface))
			continue
		}
		if c.Kind() != reflect.Interface {
			invalid = multierror.Append(invalid,
				fmt.Errorf("%v: %w", c, ErrNotInterface))
			continue
		}
		for i := 0; i < c.NumMethod(); i++ {
			method := c.Method(i)
			if !method.IsExported() {
				invalid = multierror.Append(invalid,
					fmt.Errorf("%v %q: %w", c, method.Name, ErrUnexportedMethod))
				continue
			}
			if first, ok := declared[method.Name]; !ok {
				declared[method.Name] = method
			} else if first.Type != method.Type {
				invalid = multierror.Append(invalid,
					fmt.Errorf("%v %q is %v but was %v: %w",
						c, method.Name, method.Type, first.Type, ErrConflictingMethod))
			}
		}
	}
	if invalid != nil {
		return ContractSet{}, &InvalidContractError{distinct, invalid}
	}
	return ContractSet{distinct, contractKey(distinct)}, nil
}


// ContractSet

func (s ContractSet) Len() int {
	return len(s.contracts)
}

func (s ContractSet) At(index int) reflect.Type {
	return s.contracts[index]
}

// Contracts returns a copy of the contracts in order.
func (s ContractSet) Contracts() []reflect.Type {
	return append([]reflect.Type(nil), s.contracts...)
}

func (s ContractSet) Contains(t reflect.Type) bool {
	return slices.Contains(s.contracts, t)
}

// Equal compares the ordered identity of both sets.
func (s ContractSet) Equal(other ContractSet) bool {
	return s.key == other.key
}

func (s ContractSet) String() string {
	return "[" + strings.Join(slices.Map[reflect.Type, string](s.contracts, reflect.Type.String), ", ") + "]"
}

// contractKey encodes the ordered identity of the contracts.
// Distinct types never share a reflect.Type pointer so the
// key is exact, unlike names which collide for local types.
func contractKey(contracts []reflect.Type) string {
	var b strings.Builder
	for _, c := range contracts {
		b.WriteString(strconv.FormatUint(uint64(reflect.ValueOf(c).Pointer()), 16))
		b.WriteByte(';')
	}
	return b.String()
}

package proxy

import (
	"fmt"
	"reflect"
	"sync/atomic"

	"github.com/go-logr/logr"
	"github.com/miruken-go/proxy/internal/maps"
	"github.com/miruken-go/proxy/internal/slices"
)

type (
	// StubFunc creates a generated stub bound to a Stub.
	StubFunc func(Stub) any

	// Registry holds generated stubs and the proxy types
	// created from them.
	Registry struct {
		stubs     slices.Safe[stubEntry]
		contracts maps.Safe[string, reflect.Type]
		types     maps.Safe[typeKey, *Type]
	}

	stubEntry struct {
		contracts []reflect.Type
		typ       reflect.Type
		ctor      StubFunc
	}

	typeKey struct {
		strategy  Strategy
		contracts string
	}
)

// DefaultRegistry receives stubs registered with Register.
var DefaultRegistry = NewRegistry()

// typeCount names generated types.
// It is only incremented while creating a type.
var typeCount atomic.Uint64


func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a generated stub to the DefaultRegistry.
// Generated code calls it from an init function.
func Register(ctor StubFunc, contracts ...reflect.Type) {
	DefaultRegistry.Register(ctor, contracts...)
}

// Register adds a generated stub for the contracts.
// The order of the contracts is irrelevant since stubs dispatch
// by method name.
// It panics if the contracts are invalid or the stub does not
// implement all of them.
func (r *Registry) Register(ctor StubFunc, contracts ...reflect.Type) {
	if ctor == nil {
		panic("ctor cannot be nil")
	}
	set, err := NewContractSet(contracts...)
	if err != nil {
		panic(err)
	}
	sample := ctor(Stub{})
	if sample == nil {
		panic("ctor must return a stub")
	}
	typ := reflect.TypeOf(sample)
	if _, ok := sample.(stubbed); !ok {
		panic(fmt.Sprintf("stub %v must embed proxy.Stub", typ))
	}
	for _, c := range set.contracts {
		if !typ.Implements(c) {
			panic(fmt.Sprintf("stub %v does not implement %v", typ, c))
		}
		_, _, _ = r.contracts.LoadOrCreate(contractName(c), func() (reflect.Type, error) {
			return c, nil
		})
	}
	entry := stubEntry{set.contracts, typ, ctor}
	r.stubs.Upsert(entry, func(e stubEntry) bool {
		return slices.SameSet(e.contracts, entry.contracts)
	})
}

// Contract returns the registered contract with the qualified name.
func (r *Registry) Contract(name string) (reflect.Type, bool) {
	return r.contracts.Load(name)
}

// Types returns the number of proxy types created.
func (r *Registry) Types() int {
	return r.types.Len()
}

func (r *Registry) stub(set ContractSet) (stubEntry, bool) {
	for _, e := range r.stubs.Items() {
		if slices.SameSet(e.contracts, set.contracts) {
			return e, true
		}
	}
	return stubEntry{}, false
}

// typeOf returns the proxy Type for the strategy and contracts,
// creating it on first use.
// At most one Type is created per key even under concurrent
// first use.
func (r *Registry) typeOf(
	strategy Strategy,
	set      ContractSet,
	logger   logr.Logger,
) (*Type, error) {
	key := typeKey{strategy, set.key}
	typ, cached, err := r.types.LoadOrCreate(key, func() (*Type, error) {
		entry, ok := r.stub(set)
		if !ok {
			return nil, &InvalidContractError{set.Contracts(), ErrNoStub}
		}
		methods, byName := resolveMethods(set)
		return &Type{
			name:      fmt.Sprintf("$Proxy%d", typeCount.Add(1)),
			strategy:  strategy,
			contracts: set,
			methods:   methods,
			byName:    byName,
			stub:      entry.typ,
			ctor:      entry.ctor,
		}, nil
	})
	if err != nil {
		return nil, err
	}
	if !cached {
		logger.V(1).Info("generated proxy type",
			"type", typ.name,
			"strategy", strategy.String(),
			"contracts", set.String(),
			"stub", typ.stub.String())
	}
	return typ, nil
}

// contractName qualifies a contract for persistence.
func contractName(c reflect.Type) string {
	if c.Name() == "" {
		return c.String()
	}
	return c.PkgPath() + "." + c.Name()
}

package proxy

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"reflect"
)

// snapshot is the persistent form of a proxy.
type snapshot struct {
	Strategy    Strategy
	Contracts   []string
	Provider    ObjectProvider
	Target      any
	Interceptor Interceptor
}

// Marshal encodes a delegating or intercepting proxy with its
// payload using encoding/gob.
// The concrete types of the payload must be registered with
// gob.Register.
func Marshal(p any) ([]byte, error) {
	inst, ok := InstanceOf(p)
	if !ok {
		return nil, fmt.Errorf("proxy: %T is not a proxy", p)
	}
	snap := snapshot{Strategy: inst.typ.strategy}
	for _, c := range inst.typ.contracts.contracts {
		snap.Contracts = append(snap.Contracts, contractName(c))
	}
	switch s := inst.strategy.(type) {
	case *delegating:
		snap.Provider = s.provider
	case *intercepting:
		snap.Target      = s.target
		snap.Interceptor = s.interceptor
	default:
		return nil, ErrNotPersistable
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(&snap); err != nil {
		return nil, fmt.Errorf("proxy: marshal %v: %w", inst.typ, err)
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a proxy encoded by Marshal.
// Contracts are resolved by name from the Registry of the
// Factory, so decoded proxies share the cached Type.
func (f *Factory) Unmarshal(data []byte) (any, error) {
	var snap snapshot
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&snap); err != nil {
		return nil, fmt.Errorf("proxy: unmarshal: %w", err)
	}
	contracts := make([]reflect.Type, len(snap.Contracts))
	for i, name := range snap.Contracts {
		c, ok := f.registry.Contract(name)
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownContract, name)
		}
		contracts[i] = c
	}
	switch snap.Strategy {
	case Delegating:
		return f.CreateDelegator(snap.Provider, contracts...)
	case Intercepting:
		return f.CreateInterceptor(snap.Target, snap.Interceptor, contracts...)
	default:
		return nil, ErrNotPersistable
	}
}

// Unmarshal decodes a proxy using the Default factory.
func Unmarshal(data []byte) (any, error) {
	return Default.Unmarshal(data)
}

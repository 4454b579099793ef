package proxy

type (
	// Stub is embedded by generated proxy types.
	// Each generated method forwards to Dispatch using the
	// method name, so a stub serves every Strategy.
	Stub struct {
		inst *Instance
	}

	// stubbed is satisfied by anything embedding Stub.
	stubbed interface {
		instance() *Instance
	}
)

// Dispatch routes a call on the stub to its proxy Instance.
// Generated code calls it as p.Stub.Dispatch so contract
// methods named Dispatch do not collide.
func (s Stub) Dispatch(method string, args ...any) ([]any, error) {
	return s.inst.Dispatch(method, args...)
}

func (s Stub) instance() *Instance {
	return s.inst
}

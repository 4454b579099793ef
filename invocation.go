package proxy

type (
	// Invocation is one in-flight call on an intercepted proxy.
	// Every level of an interceptor chain receives its own
	// Invocation, but all levels share the proxy, method and
	// arguments of the call.
	Invocation struct {
		call    *call
		proceed func() ([]any, error)
		done    bool
	}

	call struct {
		proxy  any
		method *Method
		args   []any
	}
)


// Proxy returns the proxy receiving the call.
func (inv *Invocation) Proxy() any {
	return inv.call.proxy
}

// Method returns the resolved method being called.
func (inv *Invocation) Method() *Method {
	return inv.call.method
}

// Args returns the call arguments.
// The slice is never nil and may be modified in place before
// calling Proceed.
func (inv *Invocation) Args() []any {
	return inv.call.args
}

func (inv *Invocation) Arg(index int) any {
	return inv.call.args[index]
}

// SetArg replaces the argument at index.
func (inv *Invocation) SetArg(index int, arg any) {
	inv.call.args[index] = arg
}

// SetArgs replaces all the arguments.
func (inv *Invocation) SetArgs(args ...any) {
	if args == nil {
		args = []any{}
	}
	inv.call.args = args
}

// Proceed performs the next step of the call which is either
// the next interceptor or the real target.
// It can be called once per Invocation.
func (inv *Invocation) Proceed() ([]any, error) {
	if inv.done {
		return nil, ErrAlreadyProceeded
	}
	inv.done = true
	return inv.proceed()
}

// Proceeded reports if Proceed has been called.
func (inv *Invocation) Proceeded() bool {
	return inv.done
}

// nest creates an Invocation sharing the call but with
// its own next step.
func (inv *Invocation) nest(proceed func() ([]any, error)) *Invocation {
	return &Invocation{call: inv.call, proceed: proceed}
}

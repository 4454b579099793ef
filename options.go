package proxy

import (
	"github.com/go-logr/logr"
)

// WithLogger logs the creation of proxy types.
// Calls on proxies are never logged.
func WithLogger(logger logr.Logger) func(*Factory) {
	return func(f *Factory) {
		f.logger = logger
	}
}

// WithRegistry creates proxies from stubs in registry
// instead of the DefaultRegistry.
func WithRegistry(registry *Registry) func(*Factory) {
	if registry == nil {
		panic("registry cannot be nil")
	}
	return func(f *Factory) {
		f.registry = registry
	}
}

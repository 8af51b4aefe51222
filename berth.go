package berth

import (
	"go.uber.org/zap"
)

// Configurator runs declarative configuration passes.
type Configurator struct {
	md     Metadata
	logger *zap.Logger
	hooks  []Hook
}

// NewConfigurator creates a configurator. Without options it scans
// DefaultRegistry and logs nothing.
func NewConfigurator(opts ...Option) *Configurator {
	c := &Configurator{
		md:     DefaultRegistry,
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt.apply(c)
	}

	return c
}

// Configure scans scopes (the caller's package when none are given) and
// registers every marked type into container. It returns container so calls
// can be chained. On error the container keeps the registrations issued for
// types processed before the failing one.
func (c *Configurator) Configure(container Container, scopes ...string) (Container, error) {
	if len(scopes) == 0 {
		scopes = []string{markInspectable(callerScope(0))}
	}

	return c.configure(container, scopes)
}

func (c *Configurator) configure(container Container, scopes []string) (Container, error) {
	types, err := Scan(c.md, scopes)
	if err != nil {
		return container, err
	}

	registrar := NewRegistrar(c.md, c.logger, c.hooks...)
	if err := registrar.Register(container, types); err != nil {
		return container, err
	}

	return container, nil
}

// Plan returns the registrations a pass over scopes would issue, in order,
// without touching a container. On error the registrations planned before the
// failing type are returned with it.
func (c *Configurator) Plan(scopes ...string) ([]ServiceDescriptor, error) {
	if len(scopes) == 0 {
		scopes = []string{markInspectable(callerScope(0))}
	}

	collection := NewCollection()
	_, err := c.configure(collection, scopes)

	return collection.Descriptors(), err
}

// ConfigureDeclaratively registers the types declared in DefaultRegistry
// under scopes, or under the caller's package when no scope is given.
//
// Example:
//
//	services := berth.NewCollection()
//	if _, err := berth.ConfigureDeclaratively(services); err != nil {
//	    log.Fatal(err)
//	}
func ConfigureDeclaratively(container Container, scopes ...string) (Container, error) {
	if len(scopes) == 0 {
		scopes = []string{markInspectable(callerScope(0))}
	}

	return NewConfigurator().configure(container, scopes)
}

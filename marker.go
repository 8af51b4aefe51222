package berth

import (
	"fmt"
	"reflect"
)

// Marker records how one implementation type wants to be registered.
// A nil Contract asks for the contract to be inferred from the types the
// implementation directly implements.
type Marker struct {
	Contract reflect.Type
	Lifetime Lifetime
}

// IsImplicit reports whether the marker leaves the contract to be inferred.
func (m Marker) IsImplicit() bool {
	return m.Contract == nil
}

// String returns a human-readable representation of the marker
func (m Marker) String() string {
	if m.IsImplicit() {
		return fmt.Sprintf("marker[implicit, %s]", m.Lifetime)
	}

	return fmt.Sprintf("marker[%s, %s]", QualifiedName(m.Contract), m.Lifetime)
}

// MarkerOption configures a Marker built by Mark.
type MarkerOption interface {
	applyMarker(*Marker)
}

// markerOptionFunc is a function adapter for MarkerOption
type markerOptionFunc func(*Marker)

func (f markerOptionFunc) applyMarker(m *Marker) { f(m) }

// Mark builds a marker. Without options the contract is implicit and the
// lifetime is Scoped.
//
// Example:
//
//	berth.Declare[*Alpha](berth.Mark(berth.WithLifetime(berth.Singleton)))
//	berth.Declare[*Three](berth.Mark(berth.As[IThreeA](), berth.WithLifetime(berth.Singleton)))
func Mark(opts ...MarkerOption) Marker {
	m := Marker{Lifetime: Scoped}
	for _, opt := range opts {
		opt.applyMarker(&m)
	}

	return m
}

// As registers the implementation under contract C regardless of what the
// implementation actually implements.
func As[C any]() MarkerOption {
	return AsType(reflect.TypeFor[C]())
}

// AsType is the reflect.Type form of As.
func AsType(contract reflect.Type) MarkerOption {
	return markerOptionFunc(func(m *Marker) {
		m.Contract = contract
	})
}

// WithLifetime sets the lifetime of the registration.
func WithLifetime(lifetime Lifetime) MarkerOption {
	return markerOptionFunc(func(m *Marker) {
		m.Lifetime = lifetime
	})
}

package berth

import "reflect"

// DescriptorQuery defines criteria for querying registrations.
type DescriptorQuery struct {
	// Lifetime filters by lifetime.
	// The zero value matches all lifetimes.
	Lifetime Lifetime

	// Contract filters by contract type.
	// nil matches all contracts.
	Contract reflect.Type

	// Implementation filters by implementation type.
	// nil matches all implementations.
	Implementation reflect.Type

	// Package filters by the package path of the implementation.
	// Empty string matches all packages.
	Package string
}

// Query returns the registrations in c matching the query criteria, in
// registration order.
//
// Example:
//
//	// Find all singletons declared in the storage package
//	results := berth.Query(services, berth.DescriptorQuery{
//	    Lifetime: berth.Singleton,
//	    Package:  "github.com/acme/app/storage",
//	})
func Query(c *Collection, query DescriptorQuery) []ServiceDescriptor {
	var results []ServiceDescriptor

	for _, d := range c.Descriptors() {
		// Filter by lifetime
		if query.Lifetime != 0 && d.Lifetime != query.Lifetime {
			continue
		}

		// Filter by contract
		if query.Contract != nil && d.Contract != query.Contract {
			continue
		}

		// Filter by implementation
		if query.Implementation != nil && d.Implementation != query.Implementation {
			continue
		}

		// Filter by package
		if query.Package != "" && packagePath(d.Implementation) != query.Package {
			continue
		}

		results = append(results, d)
	}

	return results
}

// FindByLifetime returns all registrations with a specific lifetime.
func FindByLifetime(c *Collection, lifetime Lifetime) []ServiceDescriptor {
	return Query(c, DescriptorQuery{Lifetime: lifetime})
}

// FindByImplementation returns all registrations of a specific implementation.
func FindByImplementation(c *Collection, implementation reflect.Type) []ServiceDescriptor {
	return Query(c, DescriptorQuery{Implementation: implementation})
}

// packagePath returns the package path of t, ignoring pointer indirections.
func packagePath(t reflect.Type) string {
	if t == nil {
		return ""
	}

	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return t.PkgPath()
}

package berth

import (
	"reflect"
	"slices"
	"sync"
)

// Collection is an ordered list of service descriptors, the registration
// side of a container. It records every Add in call order and performs no
// de-duplication: when a contract is added twice, the last registration wins
// on Lookup while LookupAll returns both.
type Collection struct {
	descriptors []ServiceDescriptor
	byContract  map[reflect.Type][]int // contract -> indexes into descriptors
	contracts   []reflect.Type         // first-add order
	mu          sync.RWMutex
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{
		byContract: make(map[reflect.Type][]int),
	}
}

// Add implements Container.
func (c *Collection) Add(contract, implementation reflect.Type, lifetime Lifetime) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, seen := c.byContract[contract]; !seen {
		c.contracts = append(c.contracts, contract)
	}

	c.byContract[contract] = append(c.byContract[contract], len(c.descriptors))
	c.descriptors = append(c.descriptors, ServiceDescriptor{
		Contract:       contract,
		Implementation: implementation,
		Lifetime:       lifetime,
	})
}

// Len returns the number of registrations.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.descriptors)
}

// Descriptors returns a copy of all registrations in call order.
func (c *Collection) Descriptors() []ServiceDescriptor {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.descriptors)
}

// Contracts returns the registered contracts in first-registration order.
func (c *Collection) Contracts() []reflect.Type {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.contracts)
}

// Has checks if a contract is registered
func (c *Collection) Has(contract reflect.Type) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.byContract[contract]

	return ok
}

// Lookup returns the effective registration for contract: the last one added.
func (c *Collection) Lookup(contract reflect.Type) (ServiceDescriptor, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	indexes := c.byContract[contract]
	if len(indexes) == 0 {
		return ServiceDescriptor{}, false
	}

	return c.descriptors[indexes[len(indexes)-1]], true
}

// LookupAll returns every registration for contract in call order.
func (c *Collection) LookupAll(contract reflect.Type) []ServiceDescriptor {
	c.mu.RLock()
	defer c.mu.RUnlock()

	indexes := c.byContract[contract]
	result := make([]ServiceDescriptor, len(indexes))

	for i, idx := range indexes {
		result[i] = c.descriptors[idx]
	}

	return result
}

// LookupFor is the typed form of Collection.Lookup.
//
// Example:
//
//	d, ok := berth.LookupFor[IAlpha](services)
func LookupFor[C any](c *Collection) (ServiceDescriptor, bool) {
	return c.Lookup(reflect.TypeFor[C]())
}

// HasFor is the typed form of Collection.Has.
func HasFor[C any](c *Collection) bool {
	return c.Has(reflect.TypeFor[C]())
}

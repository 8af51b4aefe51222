package berth

import (
	"fmt"
	"reflect"
)

// ServiceDescriptor is one (contract, implementation, lifetime) triple.
type ServiceDescriptor struct {
	Contract       reflect.Type
	Implementation reflect.Type
	Lifetime       Lifetime
}

// String returns a human-readable representation of the descriptor
func (d ServiceDescriptor) String() string {
	return fmt.Sprintf("%s => %s (%s)", d.Contract, d.Implementation, d.Lifetime)
}

// ContractName returns the qualified name of the contract.
func (d ServiceDescriptor) ContractName() string {
	return QualifiedName(d.Contract)
}

// ImplementationName returns the qualified name of the implementation.
func (d ServiceDescriptor) ImplementationName() string {
	return QualifiedName(d.Implementation)
}

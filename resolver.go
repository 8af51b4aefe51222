package berth

import (
	"reflect"
	"slices"
	"strings"
)

// Resolver computes the contracts an implementation type is registered under
// when its marker names none.
type Resolver struct {
	md Metadata
}

// NewResolver creates a resolver over the given metadata.
func NewResolver(md Metadata) *Resolver {
	return &Resolver{md: md}
}

// DirectContracts returns the contracts t implements that none of its bases
// already implement, in the order the metadata reports them.
func (r *Resolver) DirectContracts(t reflect.Type) []reflect.Type {
	all := r.md.AllContracts(t)

	inherited := make(map[reflect.Type]bool)

	for _, base := range r.md.BaseTypes(t) {
		for _, contract := range r.md.AllContracts(base) {
			inherited[contract] = true
		}
	}

	direct := make([]reflect.Type, 0, len(all))

	for _, contract := range all {
		if !inherited[contract] && !slices.Contains(direct, contract) {
			direct = append(direct, contract)
		}
	}

	return direct
}

// Resolve returns the contracts t should be registered under, sorted by
// QualifiedName. Contracts extended by another direct contract are dropped,
// so only the most specific ones remain; unrelated siblings are all kept.
//
// Returns a NO_CONTRACT error when t directly implements nothing.
func (r *Resolver) Resolve(t reflect.Type) ([]reflect.Type, error) {
	direct := r.DirectContracts(t)
	if len(direct) == 0 {
		return nil, ErrNoContract(QualifiedName(t))
	}

	result := direct

	if len(direct) > 1 {
		// Single pairwise pass: the extension graph is acyclic.
		redundant := make(map[reflect.Type]bool)

		for _, contract := range direct {
			for _, extended := range r.md.ExtendedContracts(contract) {
				if slices.Contains(direct, extended) {
					redundant[extended] = true
				}
			}
		}

		result = make([]reflect.Type, 0, len(direct))

		for _, contract := range direct {
			if !redundant[contract] {
				result = append(result, contract)
			}
		}
	}

	sortByName(result)

	return result, nil
}

// DirectContracts is a convenience wrapper around Resolver.DirectContracts.
func DirectContracts(md Metadata, t reflect.Type) []reflect.Type {
	return NewResolver(md).DirectContracts(t)
}

// ResolveContracts is a convenience wrapper around Resolver.Resolve.
func ResolveContracts(md Metadata, t reflect.Type) ([]reflect.Type, error) {
	return NewResolver(md).Resolve(t)
}

// sortByName orders types by QualifiedName, keeping the input order for ties.
func sortByName(types []reflect.Type) {
	slices.SortStableFunc(types, func(a, b reflect.Type) int {
		return strings.Compare(QualifiedName(a), QualifiedName(b))
	})
}

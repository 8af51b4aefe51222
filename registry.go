package berth

import (
	"fmt"
	"reflect"
	"slices"
	"sync"
)

// Declaration is one row of the declaration table: an implementation type,
// its markers in declaration order and the bases it inherits contracts from.
type Declaration struct {
	Type    reflect.Type
	Markers []Marker
	Bases   []reflect.Type
}

// DeclareOption configures a Declaration. Marker values are DeclareOptions,
// so markers can be passed to Declare and Type directly.
type DeclareOption interface {
	applyDeclaration(*Declaration)
}

func (m Marker) applyDeclaration(d *Declaration) {
	d.Markers = append(d.Markers, m)
}

// declareOptionFunc is a function adapter for DeclareOption
type declareOptionFunc func(*Declaration)

func (f declareOptionFunc) applyDeclaration(d *Declaration) { f(d) }

// Type builds a declaration for implementation type T.
//
// Example:
//
//	berth.Type[*Two](berth.Mark(berth.WithLifetime(berth.Transient)))
func Type[T any](opts ...DeclareOption) Declaration {
	return TypeOf(reflect.TypeFor[T](), opts...)
}

// TypeOf is the reflect.Type form of Type.
func TypeOf(t reflect.Type, opts ...DeclareOption) Declaration {
	d := Declaration{Type: t}
	for _, opt := range opts {
		opt.applyDeclaration(&d)
	}

	return d
}

// Base declares that the implementation inherits the contracts of B. When a
// declaration names no base, the types of its embedded fields are used.
func Base[B any]() DeclareOption {
	return BaseType(reflect.TypeFor[B]())
}

// BaseType is the reflect.Type form of Base.
func BaseType(base reflect.Type) DeclareOption {
	return declareOptionFunc(func(d *Declaration) {
		d.Bases = append(d.Bases, base)
	})
}

// typeEntry holds a declared implementation type
type typeEntry struct {
	typ     reflect.Type
	scope   string
	markers []Marker
	bases   []reflect.Type
}

// Registry is the declaration table: implementation types grouped by the
// scope (package path) that declared them, plus the set of contracts
// implicit markers can resolve to.
type Registry struct {
	types      map[reflect.Type]*typeEntry
	scopes     map[string][]*typeEntry
	scopeOrder []string
	contracts  []reflect.Type
	contractIn map[reflect.Type]string // contract -> declaring scope
	mu         sync.RWMutex
}

// NewRegistry creates an empty declaration table.
func NewRegistry() *Registry {
	return &Registry{
		types:      make(map[reflect.Type]*typeEntry),
		scopes:     make(map[string][]*typeEntry),
		contractIn: make(map[reflect.Type]string),
	}
}

// DefaultRegistry is the table used by Declare, DeclareAll, DeclareContract
// and ConfigureDeclaratively.
var DefaultRegistry = NewRegistry()

// Add records a declaration under scope. Declaring the same type again in the
// same scope appends its markers and bases.
func (r *Registry) Add(scope string, d Declaration) error {
	name := QualifiedName(d.Type)

	if scope == "" {
		return ErrInvalidDeclaration(name, "scope cannot be empty")
	}

	if d.Type == nil {
		return ErrInvalidDeclaration(name, "type cannot be nil")
	}

	if d.Type.Kind() == reflect.Interface {
		return ErrInvalidDeclaration(name, "implementation must be a concrete type")
	}

	for _, base := range d.Bases {
		if base == nil {
			return ErrInvalidDeclaration(name, "base type cannot be nil")
		}

		if base == d.Type {
			return ErrInvalidDeclaration(name, "type cannot be its own base")
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entry, exists := r.types[d.Type]
	if exists && entry.scope != scope {
		return ErrInvalidDeclaration(name, fmt.Sprintf("already declared in scope '%s'", entry.scope))
	}

	if !exists {
		entry = &typeEntry{typ: d.Type, scope: scope}
		r.types[d.Type] = entry
		r.touchScope(scope)
		r.scopes[scope] = append(r.scopes[scope], entry)
	}

	entry.markers = append(entry.markers, d.Markers...)

	for _, base := range d.Bases {
		if !slices.Contains(entry.bases, base) {
			entry.bases = append(entry.bases, base)
		}
	}

	return nil
}

// AddContract records an interface type that implicit markers may resolve
// to. Adding a contract twice is a no-op.
func (r *Registry) AddContract(scope string, contract reflect.Type) error {
	name := QualifiedName(contract)

	if scope == "" {
		return ErrInvalidDeclaration(name, "scope cannot be empty")
	}

	if contract == nil || contract.Kind() != reflect.Interface {
		return ErrInvalidDeclaration(name, "contract must be an interface type")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.touchScope(scope)

	if _, exists := r.contractIn[contract]; exists {
		return nil
	}

	r.contractIn[contract] = scope
	r.contracts = append(r.contracts, contract)

	return nil
}

// touchScope makes scope known. Callers hold the write lock.
func (r *Registry) touchScope(scope string) {
	if _, known := r.scopes[scope]; known {
		return
	}

	r.scopes[scope] = nil
	r.scopeOrder = append(r.scopeOrder, scope)
}

// Scopes returns every known scope in first-declaration order.
func (r *Registry) Scopes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.scopeOrder)
}

// Contracts returns the declared contracts in declaration order.
func (r *Registry) Contracts() []reflect.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.contracts)
}

// ListTypes implements Metadata. A scope with no declarations is known when
// it was named through ScopeOf or ran a default-scope pass; any other unknown
// scope is a SCOPE_LOAD error.
func (r *Registry) ListTypes(scope string) ([]reflect.Type, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries, known := r.scopes[scope]
	if !known {
		if isInspectable(scope) {
			return []reflect.Type{}, nil
		}

		return nil, ErrScopeLoad(scope, nil)
	}

	types := make([]reflect.Type, len(entries))
	for i, entry := range entries {
		types[i] = entry.typ
	}

	return types, nil
}

// Markers implements Metadata.
func (r *Registry) Markers(t reflect.Type) []Marker {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if entry, ok := r.types[t]; ok {
		return slices.Clone(entry.markers)
	}

	return nil
}

// AllContracts implements Metadata. Contracts are returned in declaration order.
func (r *Registry) AllContracts(t reflect.Type) []reflect.Type {
	if t == nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var all []reflect.Type

	for _, contract := range r.contracts {
		if t.Implements(contract) {
			all = append(all, contract)
		}
	}

	return all
}

// BaseTypes implements Metadata. Declared bases win over embedded fields.
func (r *Registry) BaseTypes(t reflect.Type) []reflect.Type {
	r.mu.RLock()
	var declared []reflect.Type
	if entry, ok := r.types[t]; ok {
		declared = slices.Clone(entry.bases)
	}
	r.mu.RUnlock()

	if len(declared) > 0 {
		return declared
	}

	return embeddedBases(t)
}

// ExtendedContracts implements Metadata. A contract extends another when its
// method set is a strict superset of the other's.
func (r *Registry) ExtendedContracts(contract reflect.Type) []reflect.Type {
	if contract == nil || contract.Kind() != reflect.Interface {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var extended []reflect.Type

	for _, other := range r.contracts {
		if other == contract {
			continue
		}

		if contract.Implements(other) && !other.Implements(contract) {
			extended = append(extended, other)
		}
	}

	return extended
}

// embeddedBases returns the types whose methods are promoted into t through
// embedded fields. For a pointer type an embedded value field F contributes *F.
func embeddedBases(t reflect.Type) []reflect.Type {
	if t == nil {
		return nil
	}

	st := t
	ptr := st.Kind() == reflect.Ptr

	if ptr {
		st = st.Elem()
	}

	if st.Kind() != reflect.Struct {
		return nil
	}

	var bases []reflect.Type

	for i := range st.NumField() {
		field := st.Field(i)
		if !field.Anonymous {
			continue
		}

		ft := field.Type
		if ptr && ft.Kind() != reflect.Ptr && ft.Kind() != reflect.Interface {
			ft = reflect.PointerTo(ft)
		}

		bases = append(bases, ft)
	}

	return bases
}

// Declare records implementation type T in DefaultRegistry under the
// caller's package. It panics on an invalid declaration; call it from init.
//
// Example:
//
//	func init() {
//	    berth.Declare[*Alpha](berth.Mark(berth.WithLifetime(berth.Singleton)))
//	}
func Declare[T any](opts ...DeclareOption) {
	mustDeclare(callerScope(0), Type[T](opts...))
}

// DeclareContract records interface I in DefaultRegistry so implicit
// markers can resolve to it. It panics if I is not an interface.
func DeclareContract[I any]() {
	contract := reflect.TypeFor[I]()
	if err := DefaultRegistry.AddContract(callerScope(0), contract); err != nil {
		panic(fmt.Sprintf("berth: failed to declare contract %s: %v", QualifiedName(contract), err))
	}
}

// mustDeclare adds d to DefaultRegistry or panics.
func mustDeclare(scope string, d Declaration) {
	if err := DefaultRegistry.Add(scope, d); err != nil {
		panic(fmt.Sprintf("berth: failed to declare %s: %v", QualifiedName(d.Type), err))
	}
}

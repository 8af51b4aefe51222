package berth

import (
	"reflect"
	"runtime"
	"strings"
	"sync"
)

// Metadata describes the declared implementation types of a set of scopes
// and the contract relationships between them. *Registry implements it with
// reflection; tables written by hand or generated at build time can
// implement it as well.
type Metadata interface {
	// ListTypes returns the types declared in scope, in declaration order.
	// An unknown scope yields a SCOPE_LOAD error.
	ListTypes(scope string) ([]reflect.Type, error)

	// Markers returns the markers of t in declaration order.
	Markers(t reflect.Type) []Marker

	// AllContracts returns every declared contract t implements, directly,
	// through its contracts' own hierarchy or through its bases.
	AllContracts(t reflect.Type) []reflect.Type

	// BaseTypes returns the types t inherits contracts from.
	BaseTypes(t reflect.Type) []reflect.Type

	// ExtendedContracts returns the declared contracts that contract extends.
	ExtendedContracts(contract reflect.Type) []reflect.Type
}

// QualifiedName returns the fully-qualified name of t ("pkg/path.Name"),
// ignoring pointer indirections. Unnamed types fall back to t.String().
func QualifiedName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t.Name() == "" || t.PkgPath() == "" {
		return t.String()
	}

	return t.PkgPath() + "." + t.Name()
}

// ScopeOf returns the scope (package path) that defines T.
// The scope is inspectable from then on, even before anything is declared in it.
func ScopeOf[T any]() string {
	return markInspectable(packagePath(reflect.TypeFor[T]()))
}

// inspectable holds package paths known to exist whether or not anything is
// declared in them: packages named through ScopeOf and the callers of a
// default-scope pass.
var inspectable sync.Map

func markInspectable(scope string) string {
	if scope != "" {
		inspectable.Store(scope, struct{}{})
	}

	return scope
}

func isInspectable(scope string) bool {
	_, ok := inspectable.Load(scope)
	return ok
}

// callerScope returns the package path of the function skip frames above its caller.
func callerScope(skip int) string {
	pc, _, _, ok := runtime.Caller(skip + 2)
	if !ok {
		return ""
	}

	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return ""
	}

	return packageOf(fn.Name())
}

// packageOf extracts the package path from a fully-qualified function name
// such as "github.com/a/b.init.0" or "github.com/a/b.(*T).Method".
func packageOf(funcName string) string {
	if i := strings.IndexByte(funcName, '['); i >= 0 {
		funcName = funcName[:i]
	}

	lastSlash := strings.LastIndexByte(funcName, '/')
	pkg := funcName

	if dot := strings.IndexByte(funcName[lastSlash+1:], '.'); dot >= 0 {
		pkg = funcName[:lastSlash+1+dot]
	}

	// The runtime escapes dots in the last path element.
	return strings.ReplaceAll(pkg, "%2e", ".")
}

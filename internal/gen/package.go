package gen

import (
	"path"
	"sort"
	"strings"

	"github.com/xraph/berth"
)

// Package is the directive model of one Go package.
type Package struct {
	// Name is the Go package name.
	Name string

	// Dir is the directory the package was parsed from.
	Dir string

	// Contracts lists the //berth:contract interfaces in source order.
	Contracts []string

	// Implementations lists the //berth:implementation types in source order.
	Implementations []*Implementation

	// Imports maps the local names used by contract and base references to
	// their import paths.
	Imports map[string]string
}

// Implementation is one type carrying //berth:implementation directives.
type Implementation struct {
	Name    string
	Value   bool
	Markers []MarkerSpec
	Bases   []string
}

// MarkerSpec is one //berth:implementation directive.
type MarkerSpec struct {
	// Contract is the type expression given with as=, empty when implicit.
	Contract string
	Lifetime berth.Lifetime
}

// IsEmpty reports whether the package declares nothing.
func (p *Package) IsEmpty() bool {
	return len(p.Contracts) == 0 && len(p.Implementations) == 0
}

// TypeExpr is the expression declared for the implementation: *T, or T for
// value implementations.
func (i *Implementation) TypeExpr() string {
	if i.Value {
		return i.Name
	}
	return "*" + i.Name
}

// BaseExprs returns the declared bases with the implementation's indirection.
// A base written with an explicit * is kept as written.
func (i *Implementation) BaseExprs() []string {
	exprs := make([]string, len(i.Bases))
	for n, base := range i.Bases {
		if i.Value || strings.HasPrefix(base, "*") {
			exprs[n] = base
		} else {
			exprs[n] = "*" + base
		}
	}

	return exprs
}

// importSpecs returns the import lines needed by the package's references,
// sorted by path.
func (p *Package) importSpecs() []string {
	names := make([]string, 0, len(p.Imports))
	for name := range p.Imports {
		names = append(names, name)
	}

	sort.Slice(names, func(i, j int) bool {
		return p.Imports[names[i]] < p.Imports[names[j]]
	})

	specs := make([]string, len(names))
	for i, name := range names {
		importPath := p.Imports[name]
		if name == defaultImportName(importPath) {
			specs[i] = `"` + importPath + `"`
		} else {
			specs[i] = name + ` "` + importPath + `"`
		}
	}

	return specs
}

// defaultImportName guesses the package name of an import path: the last
// element, skipping a /vN major version suffix and a gopkg.in .vN suffix.
func defaultImportName(importPath string) string {
	name := path.Base(importPath)

	if isMajorVersion(name) {
		name = path.Base(path.Dir(importPath))
	}

	if i := strings.LastIndex(name, ".v"); i > 0 && isMajorVersion(name[i+1:]) {
		name = name[:i]
	}

	return strings.ReplaceAll(name, "-", "_")
}

func isMajorVersion(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}

	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

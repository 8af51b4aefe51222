package gen

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/xraph/berth"
)

// Plan is the YAML view of what a generated file would declare.
type Plan struct {
	Package         string      `yaml:"package"`
	Contracts       []string    `yaml:"contracts,omitempty"`
	Implementations []PlanEntry `yaml:"implementations,omitempty"`
}

// PlanEntry describes one declared implementation.
type PlanEntry struct {
	Type    string       `yaml:"type"`
	Markers []PlanMarker `yaml:"markers"`
	Bases   []string     `yaml:"bases,omitempty"`
}

// PlanMarker describes one marker. An empty contract is implicit.
type PlanMarker struct {
	Contract string         `yaml:"contract,omitempty"`
	Lifetime berth.Lifetime `yaml:"lifetime"`
}

// NewPlan builds the plan of pkg.
func NewPlan(pkg *Package) *Plan {
	plan := &Plan{
		Package:   pkg.Name,
		Contracts: pkg.Contracts,
	}

	for _, impl := range pkg.Implementations {
		entry := PlanEntry{
			Type:  impl.TypeExpr(),
			Bases: impl.BaseExprs(),
		}

		for _, marker := range impl.Markers {
			entry.Markers = append(entry.Markers, PlanMarker{
				Contract: marker.Contract,
				Lifetime: marker.Lifetime,
			})
		}

		plan.Implementations = append(plan.Implementations, entry)
	}

	return plan
}

// WritePlan encodes the plan of pkg as YAML.
func WritePlan(w io.Writer, pkg *Package) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(NewPlan(pkg)); err != nil {
		return err
	}

	return enc.Close()
}

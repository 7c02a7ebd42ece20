package router

import (
	"github.com/sarchlab/orion/hooking"
	"github.com/sarchlab/orion/report"
	"github.com/sarchlab/orion/tech"
)

// Builder can build router estimators.
type Builder struct {
	tech    *tech.Profile
	catalog *Catalog
}

// MakeBuilder creates a builder with default parameters.
func MakeBuilder() Builder {
	return Builder{
		catalog: DefaultCatalog(),
	}
}

// WithTechnology sets the technology profile that all the estimates use.
func (b Builder) WithTechnology(p *tech.Profile) Builder {
	b.tech = p
	return b
}

// WithCatalog sets the catalog that router names are looked up in.
func (b Builder) WithCatalog(c *Catalog) Builder {
	b.catalog = c
	return b
}

// Build creates a new estimator.
func (b Builder) Build(name string) *Estimator {
	report.NameMustBeValid(name)
	b.technologyMustBeGiven()
	b.catalogMustBeGiven()

	return &Estimator{
		Hooks:   hooking.NewHooks(name),
		name:    name,
		tech:    b.tech,
		catalog: b.catalog,
	}
}

func (b Builder) technologyMustBeGiven() {
	if b.tech == nil {
		panic("technology profile is not given")
	}
}

func (b Builder) catalogMustBeGiven() {
	if b.catalog == nil {
		panic("router catalog is not given")
	}
}

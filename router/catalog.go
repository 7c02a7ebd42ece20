package router

import (
	"fmt"
	"io"
	"sort"

	"github.com/sarchlab/orion/power"
	"gopkg.in/yaml.v3"
)

// Catalog maps router names to router specs. A Catalog must not be modified
// while estimators are using it.
type Catalog struct {
	specs map[string]Spec
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{specs: make(map[string]Spec)}
}

// DefaultCatalog creates a catalog that holds the built-in routers.
func DefaultCatalog() *Catalog {
	c := NewCatalog()

	for _, s := range builtinRouters() {
		if err := c.Add(s); err != nil {
			panic(err)
		}
	}

	return c
}

func builtinRouters() []Spec {
	mesh := Defaults()
	mesh.Name = "mesh5"

	wormhole := Defaults()
	wormhole.Name = "mesh5-wormhole"
	wormhole.VCs = 1
	wormhole.InputBufferDepth = 8
	wormhole.Arbiter = RoundRobinArbiter
	wormhole.PipelineStages = 2

	torus := Defaults()
	torus.Name = "torus5"
	torus.VCs = 8

	cmesh := Defaults()
	cmesh.Name = "cmesh8"
	cmesh.InPorts = 8
	cmesh.OutPorts = 8
	cmesh.FlitWidth = 128
	cmesh.Crossbar = MuxTreeCrossbar
	cmesh.VCAllocator = OneStageVCAllocator

	ring := Defaults()
	ring.Name = "ring3"
	ring.InPorts = 3
	ring.OutPorts = 3
	ring.FlitWidth = 32
	ring.VCs = 2
	ring.OutputBufferDepth = 2
	ring.Arbiter = RoundRobinArbiter

	meshWithLinks := Defaults()
	meshWithLinks.Name = "mesh5-1mm"
	meshWithLinks.LinkLength = 1000

	return []Spec{mesh, wormhole, torus, cmesh, ring, meshWithLinks}
}

// Clone returns a catalog with the same routers. Adding to the clone leaves
// the original untouched.
func (c *Catalog) Clone() *Catalog {
	cp := NewCatalog()
	for name, s := range c.specs {
		cp.specs[name] = s
	}

	return cp
}

// Add validates the spec and adds it under its name.
func (c *Catalog) Add(s Spec) error {
	if s.Name == "" {
		return &power.ConfigurationError{
			Field:  "router",
			Reason: "must have a name",
		}
	}

	if _, found := c.specs[s.Name]; found {
		return &power.ConfigurationError{
			Field:  "router " + s.Name,
			Reason: "is defined twice",
		}
	}

	if err := s.Validate(); err != nil {
		return err
	}

	c.specs[s.Name] = s

	return nil
}

// Lookup returns the spec of the named router.
func (c *Catalog) Lookup(name string) (Spec, error) {
	s, found := c.specs[name]
	if !found {
		return Spec{}, &power.ConfigurationError{
			Field:  "router",
			Reason: fmt.Sprintf("%q is not defined", name),
		}
	}

	return s, nil
}

// Names returns the names of all the routers, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.specs))
	for n := range c.specs {
		names = append(names, n)
	}

	sort.Strings(names)

	return names
}

type catalogFile struct {
	Routers []Spec `yaml:"routers"`
}

// Load adds the routers of a YAML document of the form
//
//	routers:
//	  - name: mesh5-deep
//	    inputBufferDepth: 16
//
// Fields that are not given take the values of Defaults. Routers read before
// an invalid one stay in the catalog.
func (c *Catalog) Load(r io.Reader) error {
	f := catalogFile{}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil {
		return &power.ConfigurationError{
			Field:  "router catalog",
			Reason: err.Error(),
		}
	}

	for _, s := range f.Routers {
		if err := c.Add(s); err != nil {
			return err
		}
	}

	return nil
}

// LoadCatalog creates a catalog from a YAML document. See Catalog.Load.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	c := NewCatalog()

	if err := c.Load(r); err != nil {
		return nil, err
	}

	return c, nil
}

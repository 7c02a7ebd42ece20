package tech

import (
	"fmt"
	"io"
	"sort"

	"github.com/sarchlab/orion/power"
	"gopkg.in/yaml.v3"
)

// Table provides technology profiles by node.
type Table interface {
	// Lookup returns the profile of the given node. The returned profile must
	// be treated as read-only.
	Lookup(node Node) (*Profile, error)

	// Nodes lists the nodes that the table has profiles for.
	Nodes() []Node
}

type table struct {
	profiles map[Node]*Profile
}

// NewTable creates a Table from a list of profiles. Every profile is
// validated and duplicated nodes are rejected.
func NewTable(profiles ...Profile) (Table, error) {
	t := &table{profiles: make(map[Node]*Profile)}

	for i := range profiles {
		p := profiles[i]

		if err := p.Validate(); err != nil {
			return nil, err
		}

		if _, found := t.profiles[p.Node]; found {
			return nil, &power.ConfigurationError{
				Field:  "technology table",
				Reason: fmt.Sprintf("node %s is defined twice", p.Node),
			}
		}

		t.profiles[p.Node] = &p
	}

	return t, nil
}

func (t *table) Lookup(node Node) (*Profile, error) {
	if err := NodeMustBeSupported(node); err != nil {
		return nil, err
	}

	p, found := t.profiles[node]
	if !found {
		return nil, &power.ConfigurationError{
			Field:  "technology node",
			Reason: fmt.Sprintf("%s is not in the technology table", node),
		}
	}

	cp := *p

	return &cp, nil
}

func (t *table) Nodes() []Node {
	nodes := make([]Node, 0, len(t.profiles))
	for n := range t.profiles {
		nodes = append(nodes, n)
	}

	sort.Slice(nodes, func(i, j int) bool { return nodes[i] > nodes[j] })

	return nodes
}

type tableFile struct {
	Nodes []Profile `yaml:"nodes"`
}

// LoadTable reads a YAML document of the form
//
//	nodes:
//	  - node: 65
//	    vdd: 1.1
//	    ...
//
// and creates a Table from it.
func LoadTable(r io.Reader) (Table, error) {
	f := tableFile{}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil {
		return nil, &power.ConfigurationError{
			Field:  "technology table",
			Reason: err.Error(),
		}
	}

	if len(f.Nodes) == 0 {
		return nil, &power.ConfigurationError{
			Field:  "technology table",
			Reason: "has no nodes",
		}
	}

	return NewTable(f.Nodes...)
}

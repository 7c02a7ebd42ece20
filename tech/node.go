// Package tech provides the process technology parameters that every power
// and area model is scaled by.
package tech

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/sarchlab/orion/power"
)

// Node is a process technology generation, expressed in nanometers.
type Node int

// The supported technology nodes.
const (
	Node800 Node = 800
	Node400 Node = 400
	Node350 Node = 350
	Node250 Node = 250
	Node180 Node = 180
	Node110 Node = 110
	Node90  Node = 90
	Node65  Node = 65
	Node45  Node = 45
	Node32  Node = 32
)

var supportedNodes = map[Node]bool{
	Node800: true,
	Node400: true,
	Node350: true,
	Node250: true,
	Node180: true,
	Node110: true,
	Node90:  true,
	Node65:  true,
	Node45:  true,
	Node32:  true,
}

// SupportedNodes returns all the nodes, from the oldest to the newest.
func SupportedNodes() []Node {
	nodes := make([]Node, 0, len(supportedNodes))
	for n := range supportedNodes {
		nodes = append(nodes, n)
	}

	sort.Slice(nodes, func(i, j int) bool { return nodes[i] > nodes[j] })

	return nodes
}

// IsSupported tells if the node is one of the enumerated technology nodes.
func (n Node) IsSupported() bool {
	return supportedNodes[n]
}

func (n Node) String() string {
	return strconv.Itoa(int(n)) + "nm"
}

// FeatureSize returns the drawn feature size in meters.
func (n Node) FeatureSize() float64 {
	return float64(n) * 1e-9
}

// ParseNode accepts "65" or "65nm".
func ParseNode(s string) (Node, error) {
	n, err := ParseNodeSize(s)
	if err != nil {
		return 0, err
	}

	if err := NodeMustBeSupported(n); err != nil {
		return 0, err
	}

	return n, nil
}

// ParseNodeSize parses a feature size like ParseNode, but also accepts sizes
// outside of the enumerated set.
func ParseNodeSize(s string) (Node, error) {
	str := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "nm")

	v, err := strconv.Atoi(str)
	if err != nil || v <= 0 {
		return 0, &power.ConfigurationError{
			Field:  "technology node",
			Reason: fmt.Sprintf("cannot parse %q", s),
		}
	}

	return Node(v), nil
}

// NodeMustBeSupported returns a ConfigurationError for nodes outside of the
// enumerated set.
func NodeMustBeSupported(n Node) error {
	if n.IsSupported() {
		return nil
	}

	return &power.ConfigurationError{
		Field:  "technology node",
		Reason: fmt.Sprintf("%s is not a supported node", n),
	}
}

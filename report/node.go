package report

import (
	"strings"

	"github.com/sarchlab/orion/power"
)

// Node is a line item of a hierarchical estimate. It holds the contribution
// of the component itself and its children. A Node is never modified after
// NewNode returns, so the total of a node is always the sum of its own result
// and the totals of its children.
type Node struct {
	name     string
	own      power.Result
	children []*Node
	total    power.Result
}

// NewNode creates a line item. The name is a single name token, such as
// "Crossbar" or "Port[2]".
func NewNode(name string, own power.Result, children ...*Node) *Node {
	NameMustBeValid(name)

	if strings.Contains(name, ".") {
		panic("node name " + name + " must be a single token")
	}

	n := &Node{
		name:     name,
		own:      own,
		children: append([]*Node(nil), children...),
		total:    own,
	}

	for _, c := range n.children {
		if c == nil {
			panic("node " + name + " has a nil child")
		}

		n.total = n.total.Add(c.total)
	}

	return n
}

// NewGroup creates a line item that only sums its children.
func NewGroup(name string, children ...*Node) *Node {
	return NewNode(name, power.Result{}, children...)
}

// Name returns the name token of the node.
func (n *Node) Name() string {
	return n.name
}

// Own returns the part of the estimate that is not attributed to any child.
func (n *Node) Own() power.Result {
	return n.own
}

// Total returns the own result plus the totals of all the descendants.
func (n *Node) Total() power.Result {
	return n.total
}

// Children returns a copy of the child list.
func (n *Node) Children() []*Node {
	return append([]*Node(nil), n.children...)
}

// NumChildren returns the number of direct children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// Height returns the number of levels below the node. A leaf has height 0.
func (n *Node) Height() int {
	h := 0

	for _, c := range n.children {
		if ch := c.Height() + 1; ch > h {
			h = ch
		}
	}

	return h
}

// Truncate returns a tree that keeps depth levels below the node. Nodes at
// the cutoff level absorb the totals of their descendants, so the total of
// the returned tree equals the total of the original one.
func (n *Node) Truncate(depth int) *Node {
	if depth <= 0 || len(n.children) == 0 {
		return &Node{name: n.name, own: n.total, total: n.total}
	}

	children := make([]*Node, len(n.children))
	for i, c := range n.children {
		children[i] = c.Truncate(depth - 1)
	}

	return &Node{
		name:     n.name,
		own:      n.own,
		children: children,
		total:    n.total,
	}
}

// WalkFunc is called for every node visited by Walk with the full
// hierarchical name of the node and its level, 0 being the node Walk started
// from.
type WalkFunc func(path string, level int, n *Node)

// Walk visits the node and all its descendants in depth-first pre-order.
func (n *Node) Walk(fn WalkFunc) {
	n.walk("", 0, fn)
}

func (n *Node) walk(parent string, level int, fn WalkFunc) {
	path := BuildName(parent, n.name)
	fn(path, level, n)

	for _, c := range n.children {
		c.walk(path, level+1, fn)
	}
}

// Find returns the descendant with the given full name, starting with the
// name of this node, or nil.
func (n *Node) Find(path string) *Node {
	tokens := strings.Split(path, ".")
	if len(tokens) == 0 || tokens[0] != n.name {
		return nil
	}

	curr := n

outer:
	for _, t := range tokens[1:] {
		for _, c := range curr.children {
			if c.name == t {
				curr = c
				continue outer
			}
		}

		return nil
	}

	return curr
}

// Leaves returns the number of nodes without children.
func (n *Node) Leaves() int {
	if len(n.children) == 0 {
		return 1
	}

	count := 0
	for _, c := range n.children {
		count += c.Leaves()
	}

	return count
}

// Count returns the number of nodes in the tree.
func (n *Node) Count() int {
	count := 1
	for _, c := range n.children {
		count += c.Count()
	}

	return count
}

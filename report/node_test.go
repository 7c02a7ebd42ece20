package report

import (
	"github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/orion/power"
)

func leaf(name string, e, l, a float64) *Node {
	return NewNode(name, power.Result{DynamicEnergy: e, LeakagePower: l, Area: a})
}

func sampleTree() *Node {
	return NewGroup("Router",
		NewGroup("InputBuffers",
			NewNode("Port[0]", power.Result{LeakagePower: 1, Area: 10},
				leaf("Read", 2, 0, 0),
				leaf("Write", 3, 0, 0)),
			NewNode("Port[1]", power.Result{LeakagePower: 1, Area: 10},
				leaf("Read", 2, 0, 0),
				leaf("Write", 3, 0, 0)),
		),
		leaf("Crossbar", 7, 0.5, 20),
	)
}

var _ = ginkgo.Describe("Node", func() {
	ginkgo.It("should sum own results and descendants", func() {
		root := sampleTree()

		Expect(root.Total()).To(Equal(power.Result{
			DynamicEnergy: 17,
			LeakagePower:  2.5,
			Area:          40,
		}))
		Expect(root.Find("Router.InputBuffers.Port[1]").Total()).To(Equal(
			power.Result{DynamicEnergy: 5, LeakagePower: 1, Area: 10}))
	})

	ginkgo.It("should keep the total when truncated at any depth", func() {
		root := sampleTree()

		for depth := 0; depth <= root.Height()+1; depth++ {
			t := root.Truncate(depth)
			Expect(t.Total()).To(Equal(root.Total()))
			Expect(t.Height()).To(Equal(min(depth, root.Height())))
		}
	})

	ginkgo.It("should collapse everything at depth 0", func() {
		t := sampleTree().Truncate(0)

		Expect(t.NumChildren()).To(BeZero())
		Expect(t.Own()).To(Equal(t.Total()))
	})

	ginkgo.It("should fold deeper levels into the cutoff level", func() {
		t := sampleTree().Truncate(2)
		port := t.Find("Router.InputBuffers.Port[0]")

		Expect(port.NumChildren()).To(BeZero())
		Expect(port.Own()).To(Equal(
			power.Result{DynamicEnergy: 5, LeakagePower: 1, Area: 10}))
		Expect(t.Find("Router.InputBuffers.Port[0].Read")).To(BeNil())
	})

	ginkgo.It("should hold the sum-of-children invariant at every node", func() {
		sampleTree().Walk(func(path string, level int, n *Node) {
			sum := n.Own()
			for _, c := range n.Children() {
				sum = sum.Add(c.Total())
			}

			Expect(sum).To(Equal(n.Total()), path)
		})
	})

	ginkgo.It("should walk in pre-order with full names", func() {
		var paths []string
		var levels []int

		sampleTree().Walk(func(path string, level int, n *Node) {
			paths = append(paths, path)
			levels = append(levels, level)
		})

		Expect(paths).To(Equal([]string{
			"Router",
			"Router.InputBuffers",
			"Router.InputBuffers.Port[0]",
			"Router.InputBuffers.Port[0].Read",
			"Router.InputBuffers.Port[0].Write",
			"Router.InputBuffers.Port[1]",
			"Router.InputBuffers.Port[1].Read",
			"Router.InputBuffers.Port[1].Write",
			"Router.Crossbar",
		}))
		Expect(levels).To(Equal([]int{0, 1, 2, 3, 3, 2, 3, 3, 1}))
	})

	ginkgo.It("should count nodes and leaves", func() {
		root := sampleTree()
		Expect(root.Count()).To(Equal(9))
		Expect(root.Leaves()).To(Equal(5))
	})

	ginkgo.It("should not find unknown names", func() {
		root := sampleTree()
		Expect(root.Find("Switch")).To(BeNil())
		Expect(root.Find("Router.OutputBuffers")).To(BeNil())
	})

	ginkgo.It("should reject invalid names", func() {
		Expect(func() { leaf("crossbar", 0, 0, 0) }).To(Panic())
		Expect(func() { leaf("Router.Crossbar", 0, 0, 0) }).To(Panic())
		Expect(func() { NewGroup("Router", nil) }).To(Panic())
	})
})

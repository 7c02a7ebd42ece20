package router

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/orion/power"
	"github.com/sarchlab/orion/tech"
)

var _ = Describe("Arbiter", func() {
	var p *tech.Profile

	BeforeEach(func() {
		p = tech.MustLookup(tech.Node65)
	})

	It("should count priority bits", func() {
		Expect(Arbiter{Kind: MatrixArbiter, Requesters: 5}.FlipFlops()).
			To(Equal(10))
		Expect(Arbiter{Kind: RoundRobinArbiter, Requesters: 5}.FlipFlops()).
			To(Equal(5))
		Expect(Arbiter{Kind: MatrixArbiter, Requesters: 1}.FlipFlops()).
			To(Equal(0))
	})

	It("should cost nothing with a single requester", func() {
		a := Arbiter{Kind: MatrixArbiter, Requesters: 1}

		Expect(a.IsTrivial()).To(BeTrue())
		Expect(a.ArbitrationEnergy(p, power.Max)).To(BeZero())
		Expect(a.Leakage(p)).To(BeZero())
		Expect(a.Area(p)).To(BeZero())
	})

	It("should cost more under max", func() {
		for _, kind := range []ArbiterKind{MatrixArbiter, RoundRobinArbiter} {
			a := Arbiter{Kind: kind, Requesters: 4}
			Expect(a.ArbitrationEnergy(p, power.Max)).
				To(BeNumerically(">", a.ArbitrationEnergy(p, power.Average)))
		}
	})

	It("should grow with the number of requesters", func() {
		small := Arbiter{Kind: MatrixArbiter, Requesters: 4}
		large := Arbiter{Kind: MatrixArbiter, Requesters: 16}

		Expect(large.Area(p)).To(BeNumerically(">", small.Area(p)))
		Expect(large.Leakage(p)).To(BeNumerically(">", small.Leakage(p)))
	})
})

var _ = Describe("Activity", func() {
	It("should only pay head flits once per packet on average", func() {
		a := Activity{Metric: power.Average, PacketLength: 4}
		Expect(a.HeadFlitProbability()).To(Equal(0.25))

		a.Metric = power.Max
		Expect(a.HeadFlitProbability()).To(Equal(1.0))
	})

	It("should share output arbitrations on average", func() {
		a := Activity{Metric: power.Average}

		shared := a.SharedArbitration(5, 5)
		Expect(shared).To(BeNumerically(">", 0))
		Expect(shared).To(BeNumerically("<", 1))
		Expect(a.SharedArbitration(1, 5)).To(Equal(1.0))

		a.Metric = power.Max
		Expect(a.SharedArbitration(5, 5)).To(Equal(1.0))
	})
})

var _ = Describe("Crossbar", func() {
	var p *tech.Profile

	BeforeEach(func() {
		p = tech.MustLookup(tech.Node65)
	})

	It("should make lines as long as the ports they cross", func() {
		c := Crossbar{Kind: MatrixCrossbar, InPorts: 5, OutPorts: 4, Width: 64}

		Expect(c.InputLineLength(p)).
			To(BeNumerically("~", 4*64*p.LocalWirePitch, 1e-15))
		Expect(c.OutputLineLength(p)).
			To(BeNumerically("~", 5*64*p.LocalWirePitch, 1e-15))
	})

	It("should grow in area with the square of the ports", func() {
		c5 := Crossbar{Kind: MatrixCrossbar, InPorts: 5, OutPorts: 5, Width: 64}
		c10 := Crossbar{Kind: MatrixCrossbar, InPorts: 10, OutPorts: 10, Width: 64}
		a := Activity{Metric: power.Average, Load: 1, Freq: 1 * power.GHz}

		n5, err := c5.Evaluate(p, a)
		Expect(err).NotTo(HaveOccurred())
		n10, err := c10.Evaluate(p, a)
		Expect(err).NotTo(HaveOccurred())

		Expect(n10.Total().Area).To(BeNumerically(">", 3.5*n5.Total().Area))
	})

	It("should break down into traversal and control", func() {
		for _, kind := range []CrossbarKind{MatrixCrossbar, MuxTreeCrossbar} {
			c := Crossbar{Kind: kind, InPorts: 5, OutPorts: 5, Width: 32}
			n, err := c.Evaluate(p, Activity{Metric: power.Max, Load: 1})

			Expect(err).NotTo(HaveOccurred())
			Expect(n.Name()).To(Equal("Crossbar"))
			Expect(n.NumChildren()).To(Equal(2))
			Expect(n.Find("Crossbar.Traversal").Total().DynamicEnergy).
				To(BeNumerically(">", 0))
			Expect(n.Find("Crossbar.Control").Total().DynamicEnergy).
				To(BeNumerically(">", 0))
		}
	})
})

var _ = Describe("Buffers", func() {
	It("should have one node per port", func() {
		p := tech.MustLookup(tech.Node45)
		b := NewInputBuffers(Defaults())

		n, err := b.Evaluate(p, Activity{Metric: power.Average, Load: 1})

		Expect(err).NotTo(HaveOccurred())
		Expect(n.NumChildren()).To(Equal(5))
		Expect(n.Find("InputBuffers.Port[4].Read.Bitline")).NotTo(BeNil())
		Expect(n.Find("InputBuffers.Port[4].Write.Cell")).NotTo(BeNil())
		Expect(n.Find("InputBuffers.Port[4].Write.SenseAmp")).To(BeNil())
	})

	It("should be absent without depth", func() {
		p := tech.MustLookup(tech.Node45)
		b := NewOutputBuffers(Defaults())

		n, err := b.Evaluate(p, Activity{Metric: power.Average, Load: 1})

		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(BeNil())
	})
})

var _ = Describe("ClockTree", func() {
	It("should add levels as sinks grow", func() {
		Expect(ClockTree{Sinks: 16}.Levels()).To(Equal(1))
		Expect(ClockTree{Sinks: 100}.Levels()).To(Equal(2))
		Expect(ClockTree{Sinks: 2000}.Levels()).To(Equal(4))
	})

	It("should not depend on the load or the metric", func() {
		p := tech.MustLookup(tech.Node65)
		c := ClockTree{Sinks: 2000, Footprint: 1e-7}

		idle, err := c.Evaluate(p, Activity{Metric: power.Average, Load: 0})
		Expect(err).NotTo(HaveOccurred())
		busy, err := c.Evaluate(p, Activity{Metric: power.Max, Load: 1})
		Expect(err).NotTo(HaveOccurred())

		Expect(idle.Total()).To(Equal(busy.Total()))
		Expect(idle.Total().DynamicEnergy).To(BeNumerically(">", 0))
	})
})

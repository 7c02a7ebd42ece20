package datapath

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/orion/circuit"
	"github.com/sarchlab/orion/power"
	"github.com/sarchlab/orion/tech"
)

var _ = Describe("ALU", func() {
	var (
		p      *tech.Profile
		params Params
	)

	BeforeEach(func() {
		p = tech.MustLookup(tech.Node90)
		params = Params{Metric: power.Average, Load: 1, Freq: 1 * power.GHz}
	})

	It("should only accept whole bytes up to 64 bits", func() {
		Expect(ALU{Width: 64}.Validate()).To(Succeed())
		Expect(ALU{Width: 8}.Validate()).To(Succeed())

		for _, w := range []int{0, 12, 72, -8} {
			err := ALU{Width: w}.Validate()
			Expect(errors.Is(err, power.ErrConfiguration)).To(BeTrue())
		}
	})

	It("should slice the data path by block", func() {
		a := ALU{Width: 64}

		Expect(a.Slices(Control)).To(Equal(1.0))
		Expect(a.Slices(Adder)).To(Equal(16.0))
		Expect(a.Slices(Logic)).To(Equal(8.0))
		Expect(a.Slices(Shift)).To(Equal(4.0))
		Expect(ALU{Width: 8}.Slices(Shift)).To(Equal(1.0))
	})

	It("should report one line item per block", func() {
		params.PrintDepth = 1

		r, err := ALU{Width: 32}.Estimate(p, params)

		Expect(err).NotTo(HaveOccurred())
		Expect(r.Root.Name()).To(Equal("ALU"))
		Expect(r.Root.NumChildren()).To(Equal(11))
		Expect(r.Root.Find("ALU.Adder")).NotTo(BeNil())
		Expect(r.LineItems()).To(HaveLen(12))
	})

	It("should cost more under max", func() {
		avg, err := ALU{Width: 64}.Estimate(p, params)
		Expect(err).NotTo(HaveOccurred())

		params.Metric = power.Max
		max, err := ALU{Width: 64}.Estimate(p, params)
		Expect(err).NotTo(HaveOccurred())

		Expect(max.DynamicPower()).To(BeNumerically(">", avg.DynamicPower()))
		Expect(max.LeakagePower()).To(Equal(avg.LeakagePower()))
	})

	It("should price the control logic from its gate counts", func() {
		nand := circuit.Gate{Kind: circuit.NAND, Inputs: 2}
		inv := circuit.MinInverter
		c := 23*(nand.OutputCap(p)+2*nand.InputCap(p)) +
			11*(inv.OutputCap(p)+inv.InputCap(p))
		perChange := c / 2 * p.Vdd * p.Vdd * 0.5

		a := ALU{Width: 64}
		Expect(a.SliceCap(p, Control)).To(BeNumerically("~", c, c*1e-9))

		e := a.OperationEnergy(p, power.Max)
		Expect(e[Control]).To(BeNumerically("~", 2*perChange, perChange*1e-9))

		e = a.OperationEnergy(p, power.Average)
		Expect(e[Control]).To(BeNumerically("~", perChange*25/26, perChange*1e-9))
	})

	It("should count multiplexers as free", func() {
		pg := circuit.PassGate{}
		c := 6 * (2*pg.DrainCap(p) + pg.ControlCap(p))

		Expect(ALU{Width: 32}.SliceCap(p, Adder)).To(
			BeNumerically("~", c, c*1e-9))
	})

	It("should leave the averaging unit out", func() {
		a := ALU{Width: 64}

		Expect(a.SliceCap(p, Averaging)).To(BeZero())
		Expect(a.OperationEnergy(p, power.Max)[Averaging]).To(BeZero())
		Expect(a.OperationEnergy(p, power.Average)[Averaging]).To(BeZero())
	})

	It("should idle the logic data path in the worst case", func() {
		e := ALU{Width: 64}.OperationEnergy(p, power.Max)

		Expect(e[Logic]).To(BeZero())
		Expect(e[Adder]).To(BeNumerically(">", 0))
	})

	It("should scale with the load", func() {
		params.Load = 0
		idle, err := ALU{Width: 16}.Estimate(p, params)
		Expect(err).NotTo(HaveOccurred())

		params.Load = 0.5
		busy, err := ALU{Width: 16}.Estimate(p, params)
		Expect(err).NotTo(HaveOccurred())

		Expect(idle.DynamicPower()).To(BeZero())
		Expect(busy.DynamicPower()).To(BeNumerically(">", 0))
		Expect(idle.LeakagePower()).To(Equal(busy.LeakagePower()))
	})
})

package link

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/orion/power"
	"github.com/sarchlab/orion/tech"
)

var _ = Describe("Link", func() {
	var params Params

	BeforeEach(func() {
		params = Params{Freq: 1 * power.GHz, Load: 1}
	})

	It("should convert micrometers to meters", func() {
		s, err := NewSpec(1000, 64, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Length).To(BeNumerically("~", 1e-3, 1e-15))
	})

	It("should reject non-positive dimensions", func() {
		_, err := NewSpec(0, 64, 1)
		Expect(errors.Is(err, power.ErrConfiguration)).To(BeTrue())

		_, err = NewSpec(1000, 0, 1)
		Expect(errors.Is(err, power.ErrConfiguration)).To(BeTrue())

		_, err = NewSpec(1000, 64, -1)
		Expect(errors.Is(err, power.ErrConfiguration)).To(BeTrue())
	})

	It("should estimate a 1mm 64-bit link", func() {
		s, _ := NewSpec(1000, 64, 1)

		r, err := Estimate(tech.MustLookup(tech.Node65), s, params)

		Expect(err).NotTo(HaveOccurred())
		Expect(math.IsInf(r.TotalPower, 0) || math.IsNaN(r.TotalPower)).To(BeFalse())
		Expect(r.TotalPower).To(BeNumerically(">", 0))
		Expect(r.Area).To(BeNumerically(">", 0))
		Expect(r.TotalPower).To(BeNumerically("~", r.DynamicPower+r.LeakagePower, 1e-18))

		// Tens of milliwatts and tens of thousands of square micrometers.
		Expect(r.DynamicPower).To(BeNumerically(">", 1e-3))
		Expect(r.DynamicPower).To(BeNumerically("<", 1e-1))
		Expect(r.Area * 1e12).To(BeNumerically(">", 1e3))
		Expect(r.Area * 1e12).To(BeNumerically("<", 1e6))
	})

	It("should follow the power equation", func() {
		p := tech.MustLookup(tech.Node45)
		s, _ := NewSpec(2000, 32, 3)
		params.Load = 0.4

		r, err := Estimate(p, s, params)
		Expect(err).NotTo(HaveOccurred())

		dyn := 0.5 * 0.4 * DynamicEnergyPerBitPerMeter(p, 2e-3, p.Vdd) * 1e9 * 2e-3 * 32
		leak := LeakagePowerPerMeter(p, 2e-3, p.Vdd) * 2e-3 * 32

		Expect(r.TotalPower).To(BeNumerically("~", (dyn+leak)*3, 1e-15))
		Expect(r.Area).To(BeNumerically("~", Area(p, 2e-3, 32)*3, 1e-20))
	})

	It("should be non-negative and monotonic in load on every validated node", func() {
		s, _ := NewSpec(1500, 128, 2)

		for _, n := range tech.ValidatedWireNodes() {
			p := tech.MustLookup(n)
			prev := -1.0

			for _, load := range []float64{0, 0.1, 0.5, 1} {
				params.Load = load
				r, err := Estimate(p, s, params)

				Expect(err).NotTo(HaveOccurred())
				Expect(r.DynamicPower).To(BeNumerically(">=", 0))
				Expect(r.LeakagePower).To(BeNumerically(">=", 0))
				Expect(r.Area).To(BeNumerically(">=", 0))
				Expect(r.TotalPower).To(BeNumerically(">=", prev))

				prev = r.TotalPower
			}
		}
	})

	It("should refuse nodes without a validated wire model", func() {
		s, _ := NewSpec(1000, 64, 1)

		for _, n := range []tech.Node{tech.Node180, tech.Node110, tech.Node800} {
			r, err := Estimate(tech.MustLookup(n), s, params)

			Expect(errors.Is(err, tech.ErrUnsupported)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("only supported for"))
			Expect(r).To(Equal(Result{}))
		}
	})

	It("should scale dynamic power with the square of the supply", func() {
		p := tech.MustLookup(tech.Node65)
		s, _ := NewSpec(1000, 64, 1)

		nominal, _ := Estimate(p, s, params)
		params.Vdd = p.Vdd / 2
		half, _ := Estimate(p, s, params)

		Expect(half.DynamicPower).To(BeNumerically("~", nominal.DynamicPower/4, 1e-12))
		Expect(half.LeakagePower).To(BeNumerically("~", nominal.LeakagePower/2, 1e-15))
		Expect(p.Vdd).To(BeNumerically("~", 1.1, 1e-12))
	})

	It("should reject invalid operating conditions", func() {
		s, _ := NewSpec(1000, 64, 1)
		p := tech.MustLookup(tech.Node65)

		params.Load = -0.1
		_, err := Estimate(p, s, params)
		Expect(errors.Is(err, power.ErrConfiguration)).To(BeTrue())

		params.Load = 1
		params.Freq = 0
		_, err = Estimate(p, s, params)
		Expect(errors.Is(err, power.ErrConfiguration)).To(BeTrue())
	})
})

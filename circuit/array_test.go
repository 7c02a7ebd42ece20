package circuit

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/orion/power"
	"github.com/sarchlab/orion/tech"
)

var _ = Describe("Array", func() {
	var (
		p *tech.Profile
		a Array
	)

	BeforeEach(func() {
		p = tech.MustLookup(tech.Node65)
		a = Array{Rows: 16, Cols: 64, ReadPorts: 1, WritePorts: 1}
	})

	It("should validate dimensions", func() {
		Expect(a.Validate()).To(Succeed())

		a.Rows = 0
		Expect(errors.Is(a.Validate(), power.ErrConfiguration)).To(BeTrue())

		a.Rows = 16
		a.WritePorts = -1
		Expect(errors.Is(a.Validate(), power.ErrConfiguration)).To(BeTrue())
	})

	It("should cost more to write all bits than half of them", func() {
		avg := a.Write(p, power.Average)
		max := a.Write(p, power.Max)

		Expect(max.Total()).To(BeNumerically(">", avg.Total()))
		Expect(max.Bitline).To(BeNumerically("~", 2*avg.Bitline, 1e-24))
		Expect(max.Wordline).To(Equal(avg.Wordline))
	})

	It("should sense bitlines regardless of the data", func() {
		avg := a.Read(p, power.Average)
		max := a.Read(p, power.Max)

		Expect(max.Bitline).To(Equal(avg.Bitline))
		Expect(max.SenseAmp).To(Equal(avg.SenseAmp))
		Expect(max.OutputDriver).To(BeNumerically(">", avg.OutputDriver))
		Expect(avg.Cell).To(BeZero())
	})

	It("should scale with depth and width", func() {
		deep := a
		deep.Rows = 64
		wide := a
		wide.Cols = 128

		Expect(deep.Write(p, power.Average).Bitline).
			To(BeNumerically(">", a.Write(p, power.Average).Bitline))
		Expect(wide.Write(p, power.Average).Total()).
			To(BeNumerically(">", a.Write(p, power.Average).Total()))
		Expect(deep.Leakage(p)).To(BeNumerically(">", a.Leakage(p)))
		Expect(wide.Area(p)).To(BeNumerically(">", a.Area(p)))
	})

	It("should need no decoder for a single row", func() {
		a.Rows = 1
		Expect(a.Read(p, power.Max).Decoder).To(BeZero())
	})

	It("should grow cells with ports", func() {
		multi := a
		multi.ReadPorts = 2

		Expect(multi.CellWidth(p)).To(BeNumerically(">", a.CellWidth(p)))
		Expect(multi.CellHeight(p)).To(BeNumerically(">", a.CellHeight(p)))
		Expect(multi.Area(p)).To(BeNumerically(">", a.Area(p)))
	})

	It("should list only the circuits that switch", func() {
		var names []string
		for _, part := range a.Write(p, power.Average).Parts() {
			names = append(names, part.Name)
		}

		Expect(names).To(Equal([]string{"Decoder", "Wordline", "Bitline", "Cell"}))
	})
})

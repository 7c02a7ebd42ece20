package datapath

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/orion/power"
	"github.com/sarchlab/orion/tech"
)

var _ = Describe("Permutation", func() {
	var (
		p      *tech.Profile
		params Params
	)

	BeforeEach(func() {
		p = tech.MustLookup(tech.Node65)
		params = Params{
			Metric:     power.Max,
			Load:       1,
			Freq:       1 * power.GHz,
			PrintDepth: 3,
		}
	})

	It("should parse kinds", func() {
		k, err := ParsePermutationKind("omega-flip")
		Expect(err).NotTo(HaveOccurred())
		Expect(k).To(Equal(OmegaFlip))

		k, err = ParsePermutationKind("GRP")
		Expect(err).NotTo(HaveOccurred())
		Expect(k).To(Equal(GRP))

		_, err = ParsePermutationKind("benes")
		Expect(errors.Is(err, power.ErrConfiguration)).To(BeTrue())
	})

	It("should check the width", func() {
		Expect(Permutation{Kind: OmegaFlip, Width: 24}.Validate()).To(Succeed())
		Expect(Permutation{Kind: GRP, Width: 32}.Validate()).To(Succeed())

		for _, u := range []Permutation{
			{Kind: OmegaFlip, Width: 0},
			{Kind: OmegaFlip, Width: 7},
			{Kind: OmegaFlip, Width: 128},
			{Kind: GRP, Width: 24},
			{Kind: PermutationKind(5), Width: 8},
		} {
			err := u.Validate()
			Expect(errors.Is(err, power.ErrConfiguration)).To(BeTrue(), u.Kind.String())
		}
	})

	It("should count the worst-case transitions of the omega-flip network", func() {
		u := Permutation{Kind: OmegaFlip, Width: 16}

		nodes := map[string]float64{}
		expected := 0.0
		for _, e := range u.OmegaFlipEvents(p) {
			nodes[e.Name] = e.Nodes
			Expect(e.Energy).To(BeNumerically(">", 0))
			expected += e.Nodes * e.Energy
		}

		Expect(nodes).To(Equal(map[string]float64{
			"Input":    16,
			"Stage":    48,
			"Internal": 64,
			"Output":   16,
			"Pass":     4,
			"Control":  16,
		}))
		Expect(u.Energy(p, power.Max)).To(
			BeNumerically("~", expected, expected*1e-9))
	})

	It("should break the group permutation unit down by stage", func() {
		u := Permutation{Kind: GRP, Width: 64}

		r, err := u.Estimate(p, params)

		Expect(err).NotTo(HaveOccurred())
		Expect(u.Stages()).To(Equal(6))
		Expect(r.Root.Name()).To(Equal("GRP"))
		Expect(r.Root.NumChildren()).To(Equal(7))
		Expect(r.Root.Find("GRP.Stage[5].LeftOneHot")).NotTo(BeNil())
		Expect(r.Root.Find("GRP.OrInput")).NotTo(BeNil())

		last := u.GRPStageEvents(p, 6)
		Expect(last[1].Nodes).To(Equal(1.0))
		Expect(last[0].Nodes).To(Equal(128.0))
	})

	It("should drive later one-hot lines harder", func() {
		u := Permutation{Kind: GRP, Width: 64}

		first := u.GRPStageEvents(p, 1)
		last := u.GRPStageEvents(p, 6)

		Expect(last[1].Energy).To(BeNumerically(">", first[1].Energy))
	})

	It("should switch half of the nodes on average", func() {
		for _, u := range []Permutation{
			{Kind: OmegaFlip, Width: 32},
			{Kind: GRP, Width: 32},
		} {
			worst := u.Energy(p, power.Max)
			avg := u.Energy(p, power.Average)

			Expect(worst).To(BeNumerically(">", 0))
			Expect(avg).To(BeNumerically("~", worst/2, worst*1e-9))
		}
	})

	It("should grow with the width", func() {
		for _, k := range []PermutationKind{OmegaFlip, GRP} {
			narrow := Permutation{Kind: k, Width: 8}.Energy(p, power.Max)
			wide := Permutation{Kind: k, Width: 64}.Energy(p, power.Max)

			Expect(wide).To(BeNumerically(">", narrow))
		}
	})

	It("should scale with the load", func() {
		u := Permutation{Kind: OmegaFlip, Width: 32}

		full, err := u.Estimate(p, params)
		Expect(err).NotTo(HaveOccurred())

		params.Load = 0.25
		quarter, err := u.Estimate(p, params)
		Expect(err).NotTo(HaveOccurred())

		Expect(quarter.DynamicPower()).To(
			BeNumerically("~", full.DynamicPower()/4, full.DynamicPower()*1e-9))
		Expect(full.Title).To(Equal("Permutation omega-flip 32-bit"))
	})

	It("should reject an invalid unit", func() {
		_, err := Permutation{Kind: GRP, Width: 12}.Estimate(p, params)
		Expect(errors.Is(err, power.ErrConfiguration)).To(BeTrue())
	})
})

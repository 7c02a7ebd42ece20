package tech

import (
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/orion/power"
)

var _ = Describe("Node", func() {
	It("should parse with or without unit", func() {
		n, err := ParseNode("65")
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(Node65))

		n, err = ParseNode(" 45nm ")
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(Node45))
	})

	It("should reject nodes outside of the supported set", func() {
		_, err := ParseNode("22")
		Expect(errors.Is(err, power.ErrConfiguration)).To(BeTrue())

		_, err = ParseNode("small")
		Expect(errors.Is(err, power.ErrConfiguration)).To(BeTrue())
	})

	It("should parse sizes outside of the supported set", func() {
		n, err := ParseNodeSize("22nm")
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(Node(22)))
		Expect(n.IsSupported()).To(BeFalse())

		for _, s := range []string{"tiny", "0", "-45"} {
			_, err = ParseNodeSize(s)
			Expect(errors.Is(err, power.ErrConfiguration)).To(BeTrue(), s)
		}
	})

	It("should list nodes from the oldest to the newest", func() {
		nodes := SupportedNodes()
		Expect(nodes).To(HaveLen(10))
		Expect(nodes[0]).To(Equal(Node800))
		Expect(nodes[len(nodes)-1]).To(Equal(Node32))
	})

	It("should print in nanometers", func() {
		Expect(Node90.String()).To(Equal("90nm"))
		Expect(Node90.FeatureSize()).To(BeNumerically("~", 90e-9, 1e-18))
	})
})

var _ = Describe("Default table", func() {
	It("should have a valid profile for every supported node", func() {
		for _, n := range SupportedNodes() {
			p, err := DefaultTable().Lookup(n)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Node).To(Equal(n))
			Expect(p.Validate()).To(Succeed())
		}
	})

	It("should validate the wire model only for 90nm and below", func() {
		Expect(ValidatedWireNodes()).To(Equal(
			[]Node{Node90, Node65, Node45, Node32}))
		Expect(MustLookup(Node180).WireModelValidated).To(BeFalse())
	})

	It("should scale the supply voltage down with the node", func() {
		nodes := SupportedNodes()
		for i := 1; i < len(nodes); i++ {
			Expect(MustLookup(nodes[i]).Vdd).To(
				BeNumerically("<=", MustLookup(nodes[i-1]).Vdd))
		}
	})

	It("should hand out copies", func() {
		p := MustLookup(Node65)
		p.Vdd = 100

		Expect(MustLookup(Node65).Vdd).To(BeNumerically("~", 1.1, 1e-9))
	})

	It("should give the minimum transistor width", func() {
		Expect(MustLookup(Node65).MinWidth()).To(BeNumerically("~", 0.13, 1e-9))
	})
})

var _ = Describe("LoadTable", func() {
	It("should load profiles from YAML", func() {
		doc := `
nodes:
  - node: 65
    vdd: 1.0
    gateCap: 1.0e-15
    drainCap: 0.6e-15
    nmosLeakage: 5.0e-10
    pmosLeakage: 2.5e-10
    nmosResistance: 2000
    pmosResistance: 5000
    localWirePitch: 0.26e-6
    localWireCap: 2.0e-10
    globalWirePitch: 0.3e-6
    globalWireCap: 1.9e-10
    globalWireRes: 4.0e5
    wireModelValidated: true
`
		t, err := LoadTable(strings.NewReader(doc))
		Expect(err).NotTo(HaveOccurred())
		Expect(t.Nodes()).To(Equal([]Node{Node65}))

		p, err := t.Lookup(Node65)
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Vdd).To(BeNumerically("~", 1.0, 1e-12))
		Expect(p.WireModelValidated).To(BeTrue())

		_, err = t.Lookup(Node45)
		Expect(errors.Is(err, power.ErrConfiguration)).To(BeTrue())
	})

	It("should reject unknown fields", func() {
		_, err := LoadTable(strings.NewReader("nodes:\n  - node: 65\n    voltage: 1\n"))
		Expect(errors.Is(err, power.ErrConfiguration)).To(BeTrue())
	})

	It("should reject profiles with missing constants", func() {
		_, err := LoadTable(strings.NewReader("nodes:\n  - node: 65\n    vdd: 1\n"))
		Expect(errors.Is(err, power.ErrConfiguration)).To(BeTrue())
	})

	It("should reject unsupported nodes", func() {
		_, err := NewTable(Profile{Node: 14, Vdd: 0.8})
		Expect(errors.Is(err, power.ErrConfiguration)).To(BeTrue())
	})
})

var _ = Describe("UnsupportedError", func() {
	It("should list the supported nodes", func() {
		err := &UnsupportedError{
			Node:      Node180,
			Model:     "link power and area",
			Supported: ValidatedWireNodes(),
		}

		Expect(errors.Is(err, ErrUnsupported)).To(BeTrue())
		Expect(err.Error()).To(Equal(
			"link power and area are only supported for " +
				"90nm, 65nm, 45nm and 32nm, not 180nm"))
	})
})

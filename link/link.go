// Package link estimates the power and area of the wire buses that connect
// routers.
//
// A link is a bundle of BitWidth delay-optimally repeated global wires. The
// model only has validated wire-capacitance data for a subset of the nodes;
// on the others it returns a tech.UnsupportedError instead of a number.
package link

import (
	"github.com/sarchlab/orion/circuit"
	"github.com/sarchlab/orion/power"
	"github.com/sarchlab/orion/tech"
)

// Model is the name used in diagnostics.
const Model = "link power and area"

// Spec describes the links of one router port group.
type Spec struct {
	// Length of each link in meters.
	Length float64

	// BitWidth is the number of wires of each link.
	BitWidth int

	// PortCount is the number of identical links.
	PortCount int
}

// NewSpec creates a Spec from a length given in micrometers.
func NewSpec(lengthMicrometers float64, bitWidth, portCount int) (Spec, error) {
	s := Spec{
		Length:    lengthMicrometers * 1e-6,
		BitWidth:  bitWidth,
		PortCount: portCount,
	}

	if err := s.Validate(); err != nil {
		return Spec{}, err
	}

	return s, nil
}

// Validate checks that every dimension is positive.
func (s Spec) Validate() error {
	if err := power.MustBePositive("link length", s.Length); err != nil {
		return err
	}

	if err := power.MustBePositive("link bit width", float64(s.BitWidth)); err != nil {
		return err
	}

	return power.MustBePositive("link port count", float64(s.PortCount))
}

// Params are the operating conditions of the links.
type Params struct {
	Freq power.Freq

	// Load is the probability that a wire toggles in a cycle, times two, so
	// that 1 means random data every cycle.
	Load float64

	// Vdd overrides the supply voltage of the profile when positive.
	Vdd float64
}

func (p Params) validate() error {
	if err := power.MustBePositive("frequency", float64(p.Freq)); err != nil {
		return err
	}

	if err := power.MustNotBeNegative("load", p.Load); err != nil {
		return err
	}

	return power.MustNotBeNegative("vdd", p.Vdd)
}

// Result is the estimate of all the links of a Spec.
type Result struct {
	// Dynamic and leakage power of a single link, in watts.
	DynamicPower float64
	LeakagePower float64

	// TotalPower of all the PortCount links, in watts.
	TotalPower float64

	// Area of all the PortCount links, in square meters.
	Area float64
}

// MustBeSupported returns an UnsupportedError if the profile has no
// validated wire model.
func MustBeSupported(p *tech.Profile) error {
	if p.WireModelValidated {
		return nil
	}

	return &tech.UnsupportedError{
		Node:      p.Node,
		Model:     Model,
		Supported: tech.ValidatedWireNodes(),
	}
}

// NodeMustBeSupported returns an UnsupportedError for a node that has no
// profile at all.
func NodeMustBeSupported(n tech.Node) error {
	if n.IsSupported() {
		return nil
	}

	return &tech.UnsupportedError{
		Node:      n,
		Model:     Model,
		Supported: tech.ValidatedWireNodes(),
	}
}

// withVdd returns the profile at another supply voltage. The caller's profile
// is not touched.
func withVdd(p *tech.Profile, vdd float64) *tech.Profile {
	if vdd <= 0 || vdd == p.Vdd {
		return p
	}

	cp := *p
	cp.Vdd = vdd

	return &cp
}

// DynamicEnergyPerBitPerMeter is the energy of a full swing of one repeated
// wire of the given length, divided by the length.
func DynamicEnergyPerBitPerMeter(p *tech.Profile, length, vdd float64) float64 {
	pv := withVdd(p, vdd)
	w := circuit.RepeatedWire{Length: length}

	return circuit.SwitchingEnergy(pv, w.Cap(pv)) / length
}

// LeakagePowerPerMeter is the repeater leakage of one wire of the given
// length, divided by the length.
func LeakagePowerPerMeter(p *tech.Profile, length, vdd float64) float64 {
	pv := withVdd(p, vdd)
	w := circuit.RepeatedWire{Length: length}

	return w.Leakage(pv) / length
}

// Area is the area of one link of bitWidth wires.
func Area(p *tech.Profile, length float64, bitWidth int) float64 {
	w := circuit.RepeatedWire{Length: length}
	return float64(bitWidth) * w.Area(p)
}

// Estimate returns the power and area of the links.
func Estimate(p *tech.Profile, s Spec, params Params) (Result, error) {
	if err := MustBeSupported(p); err != nil {
		return Result{}, err
	}

	if err := s.Validate(); err != nil {
		return Result{}, err
	}

	if err := params.validate(); err != nil {
		return Result{}, err
	}

	vdd := params.Vdd
	if vdd <= 0 {
		vdd = p.Vdd
	}

	width := float64(s.BitWidth)
	ports := float64(s.PortCount)

	dynamic := 0.5 * params.Load *
		DynamicEnergyPerBitPerMeter(p, s.Length, vdd) *
		float64(params.Freq) * s.Length * width
	leakage := LeakagePowerPerMeter(p, s.Length, vdd) * s.Length * width

	return Result{
		DynamicPower: dynamic,
		LeakagePower: leakage,
		TotalPower:   (dynamic + leakage) * ports,
		Area:         Area(p, s.Length, s.BitWidth) * ports,
	}, nil
}

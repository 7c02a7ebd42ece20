package tech

import (
	"github.com/sarchlab/orion/power"
)

// Profile holds the physical constants of one technology node. A Profile is
// never modified after it is handed out by a Table; models only read it.
type Profile struct {
	Node Node `yaml:"node"`

	// Vdd is the nominal supply voltage in volts.
	Vdd float64 `yaml:"vdd"`

	// GateCap and DrainCap are the gate and drain diffusion capacitance per
	// micrometer of transistor width, in farads.
	GateCap  float64 `yaml:"gateCap"`
	DrainCap float64 `yaml:"drainCap"`

	// Subthreshold leakage current per micrometer of width of an off
	// transistor, in amperes.
	NMOSLeakage float64 `yaml:"nmosLeakage"`
	PMOSLeakage float64 `yaml:"pmosLeakage"`

	// Effective on-resistance of a 1um wide transistor, in ohm*um.
	NMOSResistance float64 `yaml:"nmosResistance"`
	PMOSResistance float64 `yaml:"pmosResistance"`

	// Local (intermediate layer) wires, pitch in meters and capacitance in
	// farads per meter.
	LocalWirePitch float64 `yaml:"localWirePitch"`
	LocalWireCap   float64 `yaml:"localWireCap"`

	// Global (top layer) wires used by links and the clock tree.
	GlobalWirePitch float64 `yaml:"globalWirePitch"`
	GlobalWireCap   float64 `yaml:"globalWireCap"`
	GlobalWireRes   float64 `yaml:"globalWireRes"`

	// WireModelValidated is set for the nodes for which the repeated global
	// wire model has been checked against layout. Link estimates refuse to
	// run on the other nodes.
	WireModelValidated bool `yaml:"wireModelValidated"`
}

// FeatureSize returns the drawn feature size in meters.
func (p *Profile) FeatureSize() float64 {
	return p.Node.FeatureSize()
}

// MinWidth returns the width of a minimum-sized transistor in micrometers.
func (p *Profile) MinWidth() float64 {
	return 2 * p.FeatureSize() * 1e6
}

// Validate checks that the profile describes a supported node with
// physically meaningful constants.
func (p *Profile) Validate() error {
	if err := NodeMustBeSupported(p.Node); err != nil {
		return err
	}

	checks := []struct {
		field string
		value float64
	}{
		{"vdd", p.Vdd},
		{"gateCap", p.GateCap},
		{"drainCap", p.DrainCap},
		{"nmosLeakage", p.NMOSLeakage},
		{"pmosLeakage", p.PMOSLeakage},
		{"nmosResistance", p.NMOSResistance},
		{"pmosResistance", p.PMOSResistance},
		{"localWirePitch", p.LocalWirePitch},
		{"localWireCap", p.LocalWireCap},
		{"globalWirePitch", p.GlobalWirePitch},
		{"globalWireCap", p.GlobalWireCap},
		{"globalWireRes", p.GlobalWireRes},
	}

	for _, c := range checks {
		if err := power.MustBePositive(p.Node.String()+" "+c.field, c.value); err != nil {
			return err
		}
	}

	return nil
}

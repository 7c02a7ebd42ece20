// Package circuit provides technology-scaled capacitance, leakage and area
// models of the circuit primitives that router, link and datapath models are
// assembled from.
//
// Transistor widths are in micrometers, wire lengths in meters, capacitances
// in farads, energies in joules, powers in watts and areas in square meters.
package circuit

import (
	"github.com/sarchlab/orion/tech"
)

// PNRatio is the width ratio of a PMOS to an NMOS of equal drive.
const PNRatio = 2.0

// ChannelType tells if a transistor is an NMOS or a PMOS.
type ChannelType int

// Channel types.
const (
	NMOS ChannelType = iota
	PMOS
)

// GateCap returns the gate capacitance of a transistor of the given width plus
// the capacitance of the local wire that connects to it.
func GateCap(p *tech.Profile, width, wireLength float64) float64 {
	return width*p.GateCap + wireLength*p.LocalWireCap
}

// DrainCap returns the drain capacitance seen at the output of a stack of
// series transistors. The internal diffusion nodes of the stack are counted
// at half weight because they only partly swing.
func DrainCap(p *tech.Profile, width float64, stack int) float64 {
	if stack < 1 {
		stack = 1
	}

	return width * p.DrainCap * (1 + 0.5*float64(stack-1))
}

// Leakage returns the subthreshold leakage power of an off transistor.
func Leakage(p *tech.Profile, width float64, ch ChannelType) float64 {
	current := p.NMOSLeakage
	if ch == PMOS {
		current = p.PMOSLeakage
	}

	return width * current * p.Vdd
}

// TransistorArea returns the layout area of a transistor, including its share
// of the diffusion contacts and the poly pitch.
func TransistorArea(p *tech.Profile, width float64) float64 {
	f := p.FeatureSize()
	return (width*1e-6 + 2*f) * 5 * f
}

// SwitchingEnergy returns the energy drawn from the supply to charge the
// capacitance once to Vdd.
func SwitchingEnergy(p *tech.Profile, capacitance float64) float64 {
	return capacitance * p.Vdd * p.Vdd
}

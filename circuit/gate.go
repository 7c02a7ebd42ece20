package circuit

import (
	"github.com/sarchlab/orion/tech"
)

// Inverter is a static CMOS inverter, sized in multiples of the minimum
// inverter.
type Inverter struct {
	Size float64
}

// MinInverter is the minimum-sized inverter.
var MinInverter = Inverter{Size: 1}

func (i Inverter) nWidth(p *tech.Profile) float64 {
	return i.Size * p.MinWidth()
}

func (i Inverter) pWidth(p *tech.Profile) float64 {
	return i.Size * PNRatio * p.MinWidth()
}

// InputCap is the capacitance that the inverter presents to its driver.
func (i Inverter) InputCap(p *tech.Profile) float64 {
	return GateCap(p, i.nWidth(p)+i.pWidth(p), 0)
}

// OutputCap is the self-loading drain capacitance of the inverter.
func (i Inverter) OutputCap(p *tech.Profile) float64 {
	return DrainCap(p, i.nWidth(p), 1) + DrainCap(p, i.pWidth(p), 1)
}

// Leakage averages the two input states: either the NMOS or the PMOS is off.
func (i Inverter) Leakage(p *tech.Profile) float64 {
	return (Leakage(p, i.nWidth(p), NMOS) + Leakage(p, i.pWidth(p), PMOS)) / 2
}

// Area is the layout area of the inverter.
func (i Inverter) Area(p *tech.Profile) float64 {
	return TransistorArea(p, i.nWidth(p)) + TransistorArea(p, i.pWidth(p))
}

// On-resistance of the inverter, averaged over rising and falling output.
func (i Inverter) resistance(p *tech.Profile) float64 {
	rn := p.NMOSResistance / i.nWidth(p)
	rp := p.PMOSResistance / i.pWidth(p)

	return (rn + rp) / 2
}

// DriverFor returns the inverter that drives the load with a fanout of four.
// The result is never smaller than the minimum inverter.
func DriverFor(p *tech.Profile, load float64) Inverter {
	size := load / (4 * MinInverter.InputCap(p))
	if size < 1 {
		size = 1
	}

	return Inverter{Size: size}
}

// GateKind names a static CMOS gate.
type GateKind int

// Gate kinds.
const (
	NAND GateKind = iota
	NOR
)

// Gate is a static CMOS gate with Inputs inputs. Series transistors of the
// gate are upsized so that it drives like a minimum inverter.
type Gate struct {
	Kind   GateKind
	Inputs int
}

func (g Gate) inputs() float64 {
	if g.Inputs < 1 {
		return 1
	}

	return float64(g.Inputs)
}

func (g Gate) widths(p *tech.Profile) (n, pw float64) {
	w := p.MinWidth()
	k := g.inputs()

	if g.Kind == NAND {
		return k * w, PNRatio * w
	}

	return w, k * PNRatio * w
}

// InputCap is the capacitance of one input of the gate.
func (g Gate) InputCap(p *tech.Profile) float64 {
	n, pw := g.widths(p)
	return GateCap(p, n+pw, 0)
}

// OutputCap is the drain capacitance at the output of the gate.
func (g Gate) OutputCap(p *tech.Profile) float64 {
	n, pw := g.widths(p)
	k := g.inputs()

	if g.Kind == NAND {
		return k*DrainCap(p, pw, 1) + DrainCap(p, n, g.Inputs)
	}

	return DrainCap(p, pw, g.Inputs) + k*DrainCap(p, n, 1)
}

// Leakage averages the leakage of the gate over its input states, roughly
// half of the transistors being off.
func (g Gate) Leakage(p *tech.Profile) float64 {
	n, pw := g.widths(p)
	k := g.inputs()

	return k * (Leakage(p, n, NMOS) + Leakage(p, pw, PMOS)) / 2
}

// Area is the layout area of the gate.
func (g Gate) Area(p *tech.Profile) float64 {
	n, pw := g.widths(p)
	k := g.inputs()

	return k * (TransistorArea(p, n) + TransistorArea(p, pw))
}

// FlipFlop is a master-slave D flip-flop built from transmission gates and
// inverters.
type FlipFlop struct{}

const (
	flipFlopClockedGates = 4
	flipFlopInverters    = 4
)

// ClockCap is the capacitance that the flip-flop presents to the clock net.
func (FlipFlop) ClockCap(p *tech.Profile) float64 {
	w := p.MinWidth()
	return flipFlopClockedGates * GateCap(p, w*(1+PNRatio), 0)
}

// DataCap is the capacitance switched inside the flip-flop when the stored
// bit changes.
func (FlipFlop) DataCap(p *tech.Profile) float64 {
	return flipFlopInverters *
		(MinInverter.InputCap(p) + MinInverter.OutputCap(p))
}

// Leakage is the leakage power of the flip-flop.
func (FlipFlop) Leakage(p *tech.Profile) float64 {
	return (flipFlopInverters + flipFlopClockedGates) * MinInverter.Leakage(p)
}

// Area is the layout area of the flip-flop.
func (FlipFlop) Area(p *tech.Profile) float64 {
	return (flipFlopInverters + flipFlopClockedGates) * MinInverter.Area(p)
}

// PassGate is a transmission gate of minimum width.
type PassGate struct {
	Size float64
}

func (g PassGate) size() float64 {
	if g.Size <= 0 {
		return 1
	}

	return g.Size
}

// DrainCap is the diffusion capacitance at one side of the transmission gate.
func (g PassGate) DrainCap(p *tech.Profile) float64 {
	w := g.size() * p.MinWidth()
	return DrainCap(p, w, 1) + DrainCap(p, w*PNRatio, 1)
}

// ControlCap is the gate capacitance of both control inputs.
func (g PassGate) ControlCap(p *tech.Profile) float64 {
	w := g.size() * p.MinWidth()
	return GateCap(p, w*(1+PNRatio), 0)
}

// Leakage is the leakage of an open transmission gate.
func (g PassGate) Leakage(p *tech.Profile) float64 {
	w := g.size() * p.MinWidth()
	return Leakage(p, w, NMOS) + Leakage(p, w*PNRatio, PMOS)
}

// Area is the layout area of the transmission gate.
func (g PassGate) Area(p *tech.Profile) float64 {
	w := g.size() * p.MinWidth()
	return TransistorArea(p, w) + TransistorArea(p, w*PNRatio)
}

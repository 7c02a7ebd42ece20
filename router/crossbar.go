package router

import (
	"math"

	"github.com/sarchlab/orion/circuit"
	"github.com/sarchlab/orion/report"
	"github.com/sarchlab/orion/tech"
)

// Crossbar connects every input port to every output port.
//
// A matrix crossbar runs the input lines across the output lines and closes
// one pass gate per crosspoint. A mux-tree crossbar feeds each output bit
// from a tree of 2:1 multiplexers.
type Crossbar struct {
	Kind     CrossbarKind
	InPorts  int
	OutPorts int
	Width    int
}

const crossbarOutputDriverSize = 4

// Name returns "Crossbar".
func (Crossbar) Name() string {
	return "Crossbar"
}

func (c Crossbar) in() float64    { return float64(c.InPorts) }
func (c Crossbar) out() float64   { return float64(c.OutPorts) }
func (c Crossbar) width() float64 { return float64(c.Width) }

// stages is the depth of the multiplexer tree.
func (c Crossbar) stages() float64 {
	if c.InPorts <= 1 {
		return 0
	}

	return math.Ceil(math.Log2(c.in()))
}

// InputLineLength is the length in meters of one bit of an input line.
func (c Crossbar) InputLineLength(p *tech.Profile) float64 {
	return c.out() * c.width() * p.LocalWirePitch
}

// OutputLineLength is the length in meters of one bit of an output line.
func (c Crossbar) OutputLineLength(p *tech.Profile) float64 {
	return c.in() * c.width() * p.LocalWirePitch
}

func (c Crossbar) inputLoad(p *tech.Profile) float64 {
	gate := circuit.PassGate{}
	return circuit.LocalWireCap(p, c.InputLineLength(p)) +
		c.out()*gate.DrainCap(p)
}

func (c Crossbar) inputDriver(p *tech.Profile) circuit.Inverter {
	return circuit.DriverFor(p, c.inputLoad(p))
}

// BitCap is the capacitance switched when one bit crosses the crossbar.
func (c Crossbar) BitCap(p *tech.Profile) float64 {
	drv := c.inputDriver(p)
	in := c.inputLoad(p) + drv.InputCap(p) + drv.OutputCap(p)
	gate := circuit.PassGate{}
	outDrv := circuit.Inverter{Size: crossbarOutputDriverSize}

	if c.Kind == MuxTreeCrossbar {
		stage := 2*gate.DrainCap(p) +
			circuit.LocalWireCap(p, c.width()*p.LocalWirePitch)

		return in + c.stages()*stage + outDrv.InputCap(p)
	}

	out := circuit.LocalWireCap(p, c.OutputLineLength(p)) +
		c.in()*gate.DrainCap(p) + outDrv.InputCap(p)

	return in + out
}

// ControlCap is the capacitance switched when the connection of one output
// port is changed.
func (c Crossbar) ControlCap(p *tech.Profile) float64 {
	gate := circuit.PassGate{}

	if c.Kind == MuxTreeCrossbar {
		return c.width() * (c.in() - 1) * gate.ControlCap(p)
	}

	return c.width()*gate.ControlCap(p) +
		circuit.LocalWireCap(p, c.width()*p.LocalWirePitch)
}

// switches is the number of pass gates on the data path.
func (c Crossbar) switches() float64 {
	if c.Kind == MuxTreeCrossbar {
		return 2 * c.out() * c.width() * (c.in() - 1)
	}

	return c.in() * c.out() * c.width()
}

func (c Crossbar) drivers() float64 {
	return (c.in() + c.out()) * c.width()
}

func (c Crossbar) controlDrivers() float64 {
	if c.Kind == MuxTreeCrossbar {
		return c.out() * c.stages()
	}

	return c.in() * c.out()
}

func (c Crossbar) wiringArea(p *tech.Profile) float64 {
	a := c.InputLineLength(p) * c.OutputLineLength(p)
	if c.Kind == MuxTreeCrossbar {
		return a / 2
	}

	return a
}

// Evaluate estimates the data path and the control of the crossbar. A
// connection is set up once per packet.
func (c Crossbar) Evaluate(p *tech.Profile, a Activity) (*report.Node, error) {
	gate := circuit.PassGate{}
	drv := c.inputDriver(p)
	outDrv := circuit.Inverter{Size: crossbarOutputDriverSize}
	ctrlDrv := circuit.DriverFor(p, c.ControlCap(p))

	flits := a.Load * c.in()

	traversal := result(
		flits*a.Metric.Toggle(c.width())*
			circuit.SwitchingEnergy(p, c.BitCap(p)),
		c.switches()*gate.Leakage(p)+
			c.in()*c.width()*drv.Leakage(p)+
			c.out()*c.width()*outDrv.Leakage(p),
		c.wiringArea(p)+
			c.switches()*gate.Area(p)+
			c.drivers()*drv.Area(p),
	)

	control := result(
		flits*a.HeadFlitProbability()*
			circuit.SwitchingEnergy(p, c.ControlCap(p)+ctrlDrv.OutputCap(p)),
		c.controlDrivers()*ctrlDrv.Leakage(p),
		c.controlDrivers()*ctrlDrv.Area(p),
	)

	return report.NewGroup(c.Name(),
		report.NewNode("Traversal", traversal),
		report.NewNode("Control", control),
	), nil
}

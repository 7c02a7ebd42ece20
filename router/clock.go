package router

import (
	"math"

	"github.com/sarchlab/orion/circuit"
	"github.com/sarchlab/orion/report"
	"github.com/sarchlab/orion/tech"
)

// sinksPerLeaf is the number of clock pins that one leaf buffer of the
// H-tree drives.
const sinksPerLeaf = 16

// ClockTree is the H-tree that distributes the clock over the router. The
// clock toggles every cycle, so its energy depends on neither the load nor
// the metric.
type ClockTree struct {
	// Sinks is the number of clocked flip-flops.
	Sinks int

	// Footprint is the area in square meters of the logic the tree spans.
	Footprint float64
}

// Name returns "Clock".
func (ClockTree) Name() string {
	return "Clock"
}

// Levels returns the number of H levels of the tree.
func (c ClockTree) Levels() int {
	leaves := float64(c.Sinks) / sinksPerLeaf
	if leaves <= 4 {
		return 1
	}

	return int(math.Ceil(math.Log(leaves) / math.Log(4)))
}

// WireLength returns the total length of the H-tree in meters. Each level
// quadruples the number of H shapes and halves their size.
func (c ClockTree) WireLength() float64 {
	side := math.Sqrt(c.Footprint)
	return 1.5 * side * (math.Pow(2, float64(c.Levels())) - 1)
}

func (c ClockTree) leaves() float64 {
	return math.Pow(4, float64(c.Levels()))
}

func (c ClockTree) leafBuffer(p *tech.Profile) circuit.Inverter {
	sinks := float64(c.Sinks) / c.leaves()
	local := math.Sqrt(c.Footprint) / math.Pow(2, float64(c.Levels()))

	return circuit.DriverFor(p,
		sinks*circuit.FlipFlop{}.ClockCap(p)+circuit.LocalWireCap(p, local))
}

// Evaluate estimates the distribution network and the clock pins of the
// sinks.
func (c ClockTree) Evaluate(p *tech.Profile, _ Activity) (*report.Node, error) {
	if c.Sinks == 0 {
		return nil, nil
	}

	buf := c.leafBuffer(p)
	leaves := c.leaves()

	distribution := result(
		circuit.SwitchingEnergy(p,
			c.WireLength()*p.GlobalWireCap+
				leaves*(buf.InputCap(p)+buf.OutputCap(p))),
		leaves*buf.Leakage(p),
		leaves*buf.Area(p),
	)

	sinks := result(
		circuit.SwitchingEnergy(p,
			float64(c.Sinks)*circuit.FlipFlop{}.ClockCap(p)),
		0,
		0,
	)

	return report.NewGroup(c.Name(),
		report.NewNode("Distribution", distribution),
		report.NewNode("Sinks", sinks),
	), nil
}

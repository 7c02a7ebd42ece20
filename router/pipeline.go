package router

import (
	"github.com/sarchlab/orion/circuit"
	"github.com/sarchlab/orion/report"
	"github.com/sarchlab/orion/tech"
)

// PipelineRegisters latch the flits of every input port between two
// pipeline stages.
type PipelineRegisters struct {
	InPorts int
	Stages  int
	Width   int
}

// Name returns "PipelineRegisters".
func (PipelineRegisters) Name() string {
	return "PipelineRegisters"
}

// FlipFlops returns the number of flip-flops. A single-stage router has no
// pipeline registers.
func (r PipelineRegisters) FlipFlops() int {
	if r.Stages <= 1 {
		return 0
	}

	return (r.Stages - 1) * r.InPorts * r.Width
}

// Evaluate estimates the registers. Each flit passes every register once.
func (r PipelineRegisters) Evaluate(
	p *tech.Profile,
	a Activity,
) (*report.Node, error) {
	n := r.FlipFlops()
	if n == 0 {
		return nil, nil
	}

	ff := circuit.FlipFlop{}
	flits := a.Load * float64(r.InPorts)
	latches := float64(r.Stages - 1)

	return report.NewNode(r.Name(), result(
		flits*latches*a.Metric.Toggle(float64(r.Width))*
			circuit.SwitchingEnergy(p, ff.DataCap(p)),
		float64(n)*ff.Leakage(p),
		float64(n)*ff.Area(p),
	)), nil
}

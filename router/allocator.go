package router

import (
	"github.com/sarchlab/orion/report"
	"github.com/sarchlab/orion/tech"
)

// SwitchAllocator is a separable input-first switch allocator. Stage 1
// picks one virtual channel per input port, stage 2 picks one input port
// per output port.
type SwitchAllocator struct {
	InPorts  int
	OutPorts int
	VCs      int
	Arbiter  ArbiterKind
}

// Name returns "SwitchAllocator".
func (SwitchAllocator) Name() string {
	return "SwitchAllocator"
}

func (s SwitchAllocator) stage1() Arbiter {
	return Arbiter{Kind: s.Arbiter, Requesters: s.VCs}
}

func (s SwitchAllocator) stage2() Arbiter {
	return Arbiter{Kind: s.Arbiter, Requesters: s.InPorts}
}

// FlipFlops returns the number of priority bits of all the arbiters.
func (s SwitchAllocator) FlipFlops() int {
	return s.InPorts*s.stage1().FlipFlops() +
		s.OutPorts*s.stage2().FlipFlops()
}

// Evaluate estimates both stages. Every flit is switched once.
func (s SwitchAllocator) Evaluate(
	p *tech.Profile,
	a Activity,
) (*report.Node, error) {
	var stages []*report.Node

	flits := a.Load * float64(s.InPorts)

	if arb := s.stage1(); !arb.IsTrivial() {
		r := arb.evaluate(p, a.Metric, s.InPorts, flits)
		stages = append(stages, report.NewNode("Stage1", r))
	}

	if arb := s.stage2(); !arb.IsTrivial() {
		arbitrations := flits * a.SharedArbitration(s.InPorts, s.OutPorts)
		r := arb.evaluate(p, a.Metric, s.OutPorts, arbitrations)
		stages = append(stages, report.NewNode("Stage2", r))
	}

	if len(stages) == 0 {
		return nil, nil
	}

	return report.NewGroup(s.Name(), stages...), nil
}

// VCAllocator assigns an output virtual channel to every head flit.
//
// The two-stage allocator has one arbiter per input VC over the VCs of the
// requested output port, then one arbiter per output VC over all the input
// VCs. The one-stage allocator only has the second stage.
type VCAllocator struct {
	Kind     VCAllocatorKind
	InPorts  int
	OutPorts int
	VCs      int
	Arbiter  ArbiterKind
}

// Name returns "VCAllocator".
func (VCAllocator) Name() string {
	return "VCAllocator"
}

func (v VCAllocator) stage1() Arbiter {
	return Arbiter{Kind: v.Arbiter, Requesters: v.VCs}
}

func (v VCAllocator) stage2() Arbiter {
	return Arbiter{Kind: v.Arbiter, Requesters: v.InPorts * v.VCs}
}

// FlipFlops returns the number of priority bits of all the arbiters.
func (v VCAllocator) FlipFlops() int {
	if v.VCs <= 1 {
		return 0
	}

	n := v.OutPorts * v.VCs * v.stage2().FlipFlops()
	if v.Kind == TwoStageVCAllocator {
		n += v.InPorts * v.VCs * v.stage1().FlipFlops()
	}

	return n
}

// Evaluate estimates the allocator. A router without virtual channels has
// no VC allocator.
func (v VCAllocator) Evaluate(
	p *tech.Profile,
	a Activity,
) (*report.Node, error) {
	if v.VCs <= 1 {
		return nil, nil
	}

	heads := a.Load * float64(v.InPorts) * a.HeadFlitProbability()

	s2 := v.stage2().evaluate(p, a.Metric, v.OutPorts*v.VCs, heads)
	if v.Kind == OneStageVCAllocator {
		return report.NewNode(v.Name(), s2), nil
	}

	s1 := v.stage1().evaluate(p, a.Metric, v.InPorts*v.VCs, heads)

	return report.NewGroup(v.Name(),
		report.NewNode("Stage1", s1),
		report.NewNode("Stage2", s2),
	), nil
}

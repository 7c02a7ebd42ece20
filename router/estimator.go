// Package router estimates the power and area of network-on-chip routers
// from their microarchitecture.
//
// The router is broken down into components (buffers, crossbar,
// allocators, pipeline registers, clock distribution and optional output
// links). Every component is evaluated once and the results are assembled
// into a report tree whose total never depends on how deep the report is
// printed.
package router

import (
	"github.com/sarchlab/orion/hooking"
	"github.com/sarchlab/orion/power"
	"github.com/sarchlab/orion/report"
	"github.com/sarchlab/orion/tech"
)

// HookPosComponentEvaluated marks every leaf of a router estimate.
var HookPosComponentEvaluated = &hooking.HookPos{Name: "RouterComponentEvaluated"}

// HookPosEstimateDone marks a finished estimate.
var HookPosEstimateDone = &hooking.HookPos{Name: "RouterEstimateDone"}

// Params are the run-time parameters of a router estimate.
type Params struct {
	Metric power.Metric

	// Load is the number of flits that enter each input port per cycle.
	Load float64

	Freq power.Freq

	// PrintDepth is the number of levels below the router that the report
	// breaks out. 0 only reports the router total.
	PrintDepth int
}

// Validate checks the parameters.
func (p Params) Validate() error {
	if err := power.MustNotBeNegative("load", p.Load); err != nil {
		return err
	}

	if err := power.MustBePositive("frequency", float64(p.Freq)); err != nil {
		return err
	}

	return power.MustNotBeNegative("print depth", float64(p.PrintDepth))
}

// Estimator estimates routers at one technology node. It is safe to use one
// estimator from multiple goroutines as long as its hooks are.
type Estimator struct {
	hooking.Hooks

	name    string
	tech    *tech.Profile
	catalog *Catalog
}

// Name returns the name of the estimator.
func (e *Estimator) Name() string {
	return e.name
}

// Technology returns the profile that the estimator uses.
func (e *Estimator) Technology() *tech.Profile {
	return e.tech
}

// Estimate estimates the router that is registered in the catalog under the
// given name.
func (e *Estimator) Estimate(name string, params Params) (*report.Report, error) {
	s, err := e.catalog.Lookup(name)
	if err != nil {
		return nil, err
	}

	return e.EstimateSpec(s, params)
}

// Components lists the components of a router, without the clock tree.
func Components(s Spec) []Component {
	return []Component{
		NewInputBuffers(s),
		Crossbar{
			Kind:     s.Crossbar,
			InPorts:  s.InPorts,
			OutPorts: s.OutPorts,
			Width:    s.FlitWidth,
		},
		switchAllocator(s),
		vcAllocator(s),
		NewOutputBuffers(s),
		pipelineRegisters(s),
		NewLinks(s),
	}
}

func switchAllocator(s Spec) SwitchAllocator {
	return SwitchAllocator{
		InPorts:  s.InPorts,
		OutPorts: s.OutPorts,
		VCs:      s.VCs,
		Arbiter:  s.Arbiter,
	}
}

func vcAllocator(s Spec) VCAllocator {
	return VCAllocator{
		Kind:     s.VCAllocator,
		InPorts:  s.InPorts,
		OutPorts: s.OutPorts,
		VCs:      s.VCs,
		Arbiter:  s.Arbiter,
	}
}

func pipelineRegisters(s Spec) PipelineRegisters {
	return PipelineRegisters{
		InPorts: s.InPorts,
		Stages:  s.PipelineStages,
		Width:   s.FlitWidth,
	}
}

// ClockSinks returns the number of flip-flops that the clock tree drives.
func ClockSinks(s Spec) int {
	return pipelineRegisters(s).FlipFlops() +
		switchAllocator(s).FlipFlops() +
		vcAllocator(s).FlipFlops()
}

// EstimateSpec estimates a router that is not necessarily in the catalog.
// Any invalid parameter aborts the whole estimate.
func (e *Estimator) EstimateSpec(s Spec, params Params) (*report.Report, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	a := Activity{
		Metric:       params.Metric,
		Load:         params.Load,
		Freq:         params.Freq,
		PacketLength: s.PacketLength,
	}

	var (
		nodes     []*report.Node
		footprint float64
	)

	for _, c := range Components(s) {
		n, err := c.Evaluate(e.tech, a)
		if err != nil {
			return nil, err
		}

		if n == nil {
			continue
		}

		nodes = append(nodes, n)

		if _, isLink := c.(Links); !isLink {
			footprint += n.Total().Area
		}
	}

	clock := ClockTree{Sinks: ClockSinks(s), Footprint: footprint}

	n, err := clock.Evaluate(e.tech, a)
	if err != nil {
		return nil, err
	}

	if n != nil {
		nodes = append(nodes, n)
	}

	root := report.NewGroup("Router", nodes...)
	e.announceLeaves(root)

	title := "Router"
	if s.Name != "" {
		title += " " + s.Name
	}

	r := report.New(
		title,
		e.tech.Node,
		params.Freq,
		params.Metric,
		params.Load,
		params.PrintDepth,
		root,
	)

	if e.NumHooks() > 0 {
		e.InvokeReport(HookPosEstimateDone, r)
	}

	return r, nil
}

func (e *Estimator) announceLeaves(root *report.Node) {
	if e.NumHooks() == 0 {
		return
	}

	root.Walk(func(path string, _ int, n *report.Node) {
		if n.NumChildren() > 0 {
			return
		}

		e.InvokeItem(HookPosComponentEvaluated, path, n.Total())
	})
}

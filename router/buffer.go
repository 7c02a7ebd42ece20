package router

import (
	"github.com/sarchlab/orion/circuit"
	"github.com/sarchlab/orion/power"
	"github.com/sarchlab/orion/report"
	"github.com/sarchlab/orion/tech"
)

// Buffers are the flit buffers of a group of ports. Each port has its own
// SRAM array that holds the flits of all its virtual channels.
type Buffers struct {
	Group string
	Ports int
	Array circuit.Array

	// Rate is the number of flits written to and read from each port per
	// cycle, relative to the router load.
	Rate float64
}

// NewInputBuffers creates the input buffers of a router.
func NewInputBuffers(s Spec) Buffers {
	return Buffers{
		Group: "InputBuffers",
		Ports: s.InPorts,
		Array: circuit.Array{
			Rows:       s.VCs * s.InputBufferDepth,
			Cols:       s.FlitWidth,
			ReadPorts:  s.BufferReadPorts,
			WritePorts: s.BufferWritePorts,
		},
		Rate: 1,
	}
}

// NewOutputBuffers creates the output buffers of a router. The buffers are
// absent when OutputBufferDepth is 0.
func NewOutputBuffers(s Spec) Buffers {
	return Buffers{
		Group: "OutputBuffers",
		Ports: s.OutPorts,
		Array: circuit.Array{
			Rows:       s.OutputBufferDepth,
			Cols:       s.FlitWidth,
			ReadPorts:  1,
			WritePorts: 1,
		},
		Rate: float64(s.InPorts) / float64(s.OutPorts),
	}
}

// Name returns the name of the port group.
func (b Buffers) Name() string {
	return b.Group
}

// Evaluate estimates every port. Each flit is written once and read once.
func (b Buffers) Evaluate(p *tech.Profile, a Activity) (*report.Node, error) {
	if b.Ports == 0 || b.Array.Rows == 0 {
		return nil, nil
	}

	if err := b.Array.Validate(); err != nil {
		return nil, err
	}

	flits := a.Load * b.Rate
	read := accessNode("Read", b.Array.Read(p, a.Metric), flits)
	write := accessNode("Write", b.Array.Write(p, a.Metric), flits)
	static := result(0, b.Array.Leakage(p), b.Array.Area(p))

	ports := make([]*report.Node, b.Ports)
	for i := range ports {
		ports[i] = report.NewNode(
			report.IndexedName("Port", i), static, write, read)
	}

	return report.NewGroup(b.Group, ports...), nil
}

// accessNode breaks the energy of count accesses per cycle down by circuit.
func accessNode(name string, e circuit.ArrayAccess, count float64) *report.Node {
	var children []*report.Node

	for _, part := range e.Parts() {
		children = append(children, report.NewNode(
			part.Name, power.Result{DynamicEnergy: count * part.Energy}))
	}

	return report.NewGroup(name, children...)
}

package datapath

import (
	"fmt"

	"github.com/sarchlab/orion/circuit"
	"github.com/sarchlab/orion/power"
	"github.com/sarchlab/orion/report"
	"github.com/sarchlab/orion/tech"
)

// RegisterFile is a multi-ported register file built as an SRAM array.
type RegisterFile struct {
	Registers  int
	Width      int
	ReadPorts  int
	WritePorts int
}

// Array returns the SRAM array of the register file.
func (r RegisterFile) Array() circuit.Array {
	return circuit.Array{
		Rows:       r.Registers,
		Cols:       r.Width,
		ReadPorts:  r.ReadPorts,
		WritePorts: r.WritePorts,
	}
}

// Validate checks the dimensions of the register file.
func (r RegisterFile) Validate() error {
	return r.Array().Validate()
}

// Estimate returns a report with one line item per port. The cells and the
// peripheral circuits leak and take area at the register file level.
func (r RegisterFile) Estimate(
	p *tech.Profile,
	params Params,
) (*report.Report, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	a := r.Array()
	read := a.Read(p, params.Metric)
	write := a.Write(p, params.Metric)

	ports := make([]*report.Node, 0, r.ReadPorts+r.WritePorts)

	for i := 0; i < r.ReadPorts; i++ {
		ports = append(ports,
			portNode(report.IndexedName("ReadPort", i), read, params.Load))
	}

	for i := 0; i < r.WritePorts; i++ {
		ports = append(ports,
			portNode(report.IndexedName("WritePort", i), write, params.Load))
	}

	root := report.NewNode("RegisterFile", power.Result{
		LeakagePower: a.Leakage(p),
		Area:         a.Area(p),
	}, ports...)

	return report.New(
		fmt.Sprintf("RegisterFile %dx%d", r.Registers, r.Width),
		p.Node,
		params.Freq,
		params.Metric,
		params.Load,
		params.PrintDepth,
		root,
	), nil
}

func portNode(name string, e circuit.ArrayAccess, accesses float64) *report.Node {
	var parts []*report.Node

	for _, part := range e.Parts() {
		parts = append(parts, report.NewNode(part.Name, power.Result{
			DynamicEnergy: accesses * part.Energy,
		}))
	}

	return report.NewGroup(name, parts...)
}

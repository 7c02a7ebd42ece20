package datapath

import (
	"fmt"
	"math"

	"github.com/sarchlab/orion/circuit"
	"github.com/sarchlab/orion/power"
	"github.com/sarchlab/orion/report"
	"github.com/sarchlab/orion/tech"
)

// Block is a functional block of the ALU.
type Block int

// The blocks of the ALU.
const (
	Control Block = iota
	Immediate
	Output
	Logic
	Sign
	Shift
	TwosComplement
	Adder
	SubWord
	Saturation
	Averaging
	numBlocks
)

var blockNames = [numBlocks]string{
	"Control",
	"Immediate",
	"Output",
	"Logic",
	"Sign",
	"Shift",
	"TwosComplement",
	"Adder",
	"SubWord",
	"Saturation",
	"Averaging",
}

func (b Block) String() string {
	if b < 0 || b >= numBlocks {
		return fmt.Sprintf("Block(%d)", int(b))
	}

	return blockNames[b]
}

type blockClass int

const (
	controlClass blockClass = iota
	globalClass
	logicClass
	arithmeticClass
)

type gateKind int

const (
	mux2 gateKind = iota
	mux3
	mux4
	pass
	nand2
	nand3
	nand4
	nor2
	nor3
	nor4
	not
	xor
	numGateKinds
)

type blockDef struct {
	class blockClass

	// sliceBits is the number of data bits handled by one slice. Control
	// logic has a single slice.
	sliceBits int

	// gates is the number of gates of each kind in one slice.
	gates [numGateKinds]int
}

// Rows follow the PLX transistor count table. The averaging row is kept
// empty so that the ALU compares with one that has no averaging unit.
var blockDefs = [numBlocks]blockDef{
	Control:        {controlClass, 0, [numGateKinds]int{0, 0, 0, 0, 23, 0, 0, 0, 0, 0, 11, 0}},
	Immediate:      {globalClass, 8, [numGateKinds]int{16, 0, 0, 32, 0, 0, 0, 0, 0, 0, 0, 0}},
	Output:         {globalClass, 8, [numGateKinds]int{16, 0, 0, 32, 8, 0, 0, 8, 0, 0, 8, 8}},
	Logic:          {logicClass, 8, [numGateKinds]int{0, 0, 0, 0, 16, 0, 0, 0, 0, 0, 0, 16}},
	Sign:           {arithmeticClass, 8, [numGateKinds]int{16, 0, 16, 96, 0, 0, 0, 0, 0, 0, 0, 0}},
	Shift:          {arithmeticClass, 16, [numGateKinds]int{8, 0, 0, 16, 0, 0, 0, 0, 0, 0, 8, 0}},
	TwosComplement: {arithmeticClass, 8, [numGateKinds]int{0, 0, 0, 0, 6, 4, 3, 2, 2, 2, 19, 8}},
	Adder:          {arithmeticClass, 4, [numGateKinds]int{3, 0, 0, 6, 0, 0, 0, 0, 0, 0, 0, 0}},
	SubWord:        {arithmeticClass, 8, [numGateKinds]int{8, 8, 0, 40, 0, 0, 0, 0, 0, 0, 0, 0}},
	Saturation:     {arithmeticClass, 8, [numGateKinds]int{8, 0, 0, 16, 0, 0, 0, 1, 0, 0, 1, 0}},
	Averaging:      {arithmeticClass, 8, [numGateKinds]int{}},
}

// Operations are drawn uniformly from this many instruction types, of which
// logicTypes are logic operations.
const (
	instructionTypes = 26
	logicTypes       = 8
)

// ALU is a sub-word parallel media ALU with a data path Width bits wide.
type ALU struct {
	Width int
}

// Validate checks that the width is a whole number of bytes, up to 64 bits.
func (a ALU) Validate() error {
	if a.Width <= 0 || a.Width%8 != 0 || a.Width > 64 {
		return &power.ConfigurationError{
			Field:  "alu width",
			Reason: fmt.Sprintf("must be a multiple of 8 up to 64, got %d", a.Width),
		}
	}

	return nil
}

// Slices returns the number of slices of the block.
func (a ALU) Slices(b Block) float64 {
	bits := blockDefs[b].sliceBits
	if bits == 0 {
		return 1
	}

	return math.Max(1, float64(a.Width/bits))
}

type gateModel struct {
	cap  float64
	leak float64
	area float64
}

func cmosGate(p *tech.Profile, g circuit.Gate) gateModel {
	return gateModel{
		cap:  g.OutputCap(p) + float64(g.Inputs)*g.InputCap(p),
		leak: g.Leakage(p),
		area: g.Area(p),
	}
}

// gateModels returns the model of every gate kind. Multiplexers are built
// from the pass gates that the table already counts, so they carry nothing
// of their own.
func gateModels(p *tech.Profile) [numGateKinds]gateModel {
	var models [numGateKinds]gateModel

	pg := circuit.PassGate{}
	models[pass] = gateModel{
		cap:  2*pg.DrainCap(p) + pg.ControlCap(p),
		leak: pg.Leakage(p),
		area: pg.Area(p),
	}

	models[nand2] = cmosGate(p, circuit.Gate{Kind: circuit.NAND, Inputs: 2})
	models[nand3] = cmosGate(p, circuit.Gate{Kind: circuit.NAND, Inputs: 3})
	models[nand4] = cmosGate(p, circuit.Gate{Kind: circuit.NAND, Inputs: 4})
	models[nor2] = cmosGate(p, circuit.Gate{Kind: circuit.NOR, Inputs: 2})
	models[nor3] = cmosGate(p, circuit.Gate{Kind: circuit.NOR, Inputs: 3})
	models[nor4] = cmosGate(p, circuit.Gate{Kind: circuit.NOR, Inputs: 4})

	inv := circuit.MinInverter
	models[not] = gateModel{
		cap:  inv.OutputCap(p) + inv.InputCap(p),
		leak: inv.Leakage(p),
		area: inv.Area(p),
	}

	// A transmission-gate XOR: two stacked diffusions at the output and two
	// gate inputs.
	x := circuit.Gate{Kind: circuit.NOR, Inputs: 2}
	models[xor] = gateModel{
		cap: circuit.DrainCap(p, p.MinWidth(), 2) +
			circuit.DrainCap(p, circuit.PNRatio*p.MinWidth(), 2) +
			2*x.InputCap(p),
		leak: x.Leakage(p),
		area: x.Area(p),
	}

	return models
}

// SliceCap returns the switched capacitance of one slice of the block.
func (a ALU) SliceCap(p *tech.Profile, b Block) float64 {
	models := gateModels(p)

	c := 0.0
	for k, n := range blockDefs[b].gates {
		c += float64(n) * models[k].cap
	}

	return c
}

// SliceEnergy is the energy of one change of the inputs of one slice of the
// block. Half of the nodes of the slice switch.
func (a ALU) SliceEnergy(p *tech.Profile, b Block) float64 {
	return 0.5 * 0.5 * circuit.SwitchingEnergy(p, a.SliceCap(p, b))
}

func (a ALU) sliceStatic(p *tech.Profile, b Block) (leakage, area float64) {
	models := gateModels(p)

	for k, n := range blockDefs[b].gates {
		leakage += float64(n) * models[k].leak
		area += float64(n) * models[k].area
	}

	return leakage, area
}

// changeProbability is the probability that at least one of the input bits
// of a slice changes between two random operations. Both operands feed the
// slice.
func (a ALU) changeProbability(b Block) float64 {
	bits := blockDefs[b].sliceBits
	return 1 - math.Pow(2, -2*float64(bits))
}

// OperationEnergy returns the switching energy of every block for one
// operation.
//
// Under Average, the instruction type is uniformly random and the operands
// are random data. Under Max, every slice of the control, global and
// arithmetic blocks changes, and the logic data path stays idle because the
// arithmetic path is the more expensive one. The factor of two undoes the
// assumption that only half of the nodes switch.
func (a ALU) OperationEnergy(p *tech.Profile, m power.Metric) [numBlocks]float64 {
	var e [numBlocks]float64

	for b := Block(0); b < numBlocks; b++ {
		e[b] = a.Slices(b) * a.SliceEnergy(p, b)
	}

	logicShare := float64(logicTypes) / instructionTypes
	arithShare := 1 - logicShare

	for b := Block(0); b < numBlocks; b++ {
		class := blockDefs[b].class

		if m == power.Max {
			if class == logicClass {
				e[b] = 0
			} else {
				e[b] *= 2
			}

			continue
		}

		switch class {
		case controlClass:
			e[b] *= 1 - 1.0/instructionTypes
		case globalClass:
			e[b] *= a.changeProbability(b)
		case logicClass:
			e[b] *= a.changeProbability(b) * logicShare
		case arithmeticClass:
			e[b] *= a.changeProbability(b) * arithShare
		}
	}

	return e
}

// Estimate returns a report with one line item per block.
func (a ALU) Estimate(p *tech.Profile, params Params) (*report.Report, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	energy := a.OperationEnergy(p, params.Metric)
	blocks := make([]*report.Node, 0, numBlocks)

	for b := Block(0); b < numBlocks; b++ {
		leakage, area := a.sliceStatic(p, b)
		slices := a.Slices(b)

		blocks = append(blocks, report.NewNode(b.String(), power.Result{
			DynamicEnergy: params.Load * energy[b],
			LeakagePower:  slices * leakage,
			Area:          slices * area,
		}))
	}

	return report.New(
		fmt.Sprintf("ALU %d-bit", a.Width),
		p.Node,
		params.Freq,
		params.Metric,
		params.Load,
		params.PrintDepth,
		report.NewGroup("ALU", blocks...),
	), nil
}

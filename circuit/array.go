package circuit

import (
	"math"

	"github.com/sarchlab/orion/power"
	"github.com/sarchlab/orion/tech"
)

// Array is a multi-ported SRAM array of Rows words, each Cols bits wide.
type Array struct {
	Rows       int
	Cols       int
	ReadPorts  int
	WritePorts int
}

// Six-transistor cell geometry, in feature sizes, for a single-ported cell.
const (
	cellWidthF  = 12
	cellHeightF = 10

	cellPassSize     = 1.0
	cellPullDownSize = 2.0
	cellPullUpSize   = 1.0

	senseAmpInverters = 4
	outputDriverSize  = 4
	bitlineSenseSwing = 0.1
)

// Validate checks that all the dimensions are usable.
func (a Array) Validate() error {
	if err := power.MustBePositive("array rows", float64(a.Rows)); err != nil {
		return err
	}

	if err := power.MustBePositive("array columns", float64(a.Cols)); err != nil {
		return err
	}

	if err := power.MustBePositive("array read ports", float64(a.ReadPorts)); err != nil {
		return err
	}

	return power.MustBePositive("array write ports", float64(a.WritePorts))
}

func (a Array) ports() float64 {
	return float64(a.ReadPorts + a.WritePorts)
}

// CellWidth is the width of one cell in meters. Every port adds a bitline
// pair.
func (a Array) CellWidth(p *tech.Profile) float64 {
	return cellWidthF*p.FeatureSize() + 2*(a.ports()-1)*p.LocalWirePitch
}

// CellHeight is the height of one cell in meters. Every port adds a
// wordline.
func (a Array) CellHeight(p *tech.Profile) float64 {
	return cellHeightF*p.FeatureSize() + (a.ports()-1)*p.LocalWirePitch
}

func (a Array) addressBits() float64 {
	if a.Rows <= 1 {
		return 0
	}

	return math.Ceil(math.Log2(float64(a.Rows)))
}

// WordlineCap is the capacitance of the wordline of one port, including its
// driver.
func (a Array) WordlineCap(p *tech.Profile) float64 {
	pass := cellPassSize * p.MinWidth()
	load := float64(a.Cols) * 2 * GateCap(p, pass, 0)
	load += LocalWireCap(p, float64(a.Cols)*a.CellWidth(p))

	drv := DriverFor(p, load)

	return load + drv.OutputCap(p) + drv.InputCap(p)
}

// BitlineCap is the capacitance of one bitline of one port, including the
// precharge transistor.
func (a Array) BitlineCap(p *tech.Profile) float64 {
	pass := cellPassSize * p.MinWidth()
	c := float64(a.Rows) * DrainCap(p, pass, 1)
	c += LocalWireCap(p, float64(a.Rows)*a.CellHeight(p))
	c += DrainCap(p, PNRatio*p.MinWidth(), 1)

	return c
}

// decoderLineCap is the capacitance of one predecoded address line, which
// fans out to half of the row decoders.
func (a Array) decoderLineCap(p *tech.Profile) float64 {
	nand := Gate{Kind: NAND, Inputs: 2}
	c := float64(a.Rows) / 2 * nand.InputCap(p)
	c += LocalWireCap(p, float64(a.Rows)*a.CellHeight(p))

	return c
}

func (a Array) cellCap(p *tech.Profile) float64 {
	w := p.MinWidth()
	pd := cellPullDownSize * w
	pu := cellPullUpSize * w

	return 2 * (DrainCap(p, pd, 1) + DrainCap(p, pu, 1) + GateCap(p, pd+pu, 0))
}

func senseAmpCap(p *tech.Profile) float64 {
	return senseAmpInverters * (MinInverter.InputCap(p) + MinInverter.OutputCap(p))
}

func outputLineCap(p *tech.Profile) float64 {
	drv := Inverter{Size: outputDriverSize}
	return drv.OutputCap(p) + drv.InputCap(p)
}

// ArrayAccess breaks the energy of one array access down by circuit.
type ArrayAccess struct {
	Decoder      float64
	Wordline     float64
	Bitline      float64
	SenseAmp     float64
	OutputDriver float64
	Cell         float64
}

// AccessPart is the energy of one circuit of an access.
type AccessPart struct {
	Name   string
	Energy float64
}

// Parts lists the circuits that switch on the access, in signal order.
func (e ArrayAccess) Parts() []AccessPart {
	all := []AccessPart{
		{"Decoder", e.Decoder},
		{"Wordline", e.Wordline},
		{"Bitline", e.Bitline},
		{"SenseAmp", e.SenseAmp},
		{"OutputDriver", e.OutputDriver},
		{"Cell", e.Cell},
	}

	parts := all[:0]
	for _, p := range all {
		if p.Energy != 0 {
			parts = append(parts, p)
		}
	}

	return parts
}

// Total is the energy of the whole access.
func (e ArrayAccess) Total() float64 {
	return e.Decoder + e.Wordline + e.Bitline + e.SenseAmp +
		e.OutputDriver + e.Cell
}

// Read returns the energy of reading one word through one read port. The
// bitlines only swing by the sense margin, so they cost the same under both
// metrics, while the address and the output toggle depending on the metric.
func (a Array) Read(p *tech.Profile, m power.Metric) ArrayAccess {
	cols := float64(a.Cols)

	return ArrayAccess{
		Decoder: m.Toggle(a.addressBits()) *
			SwitchingEnergy(p, a.decoderLineCap(p)),
		Wordline: SwitchingEnergy(p, a.WordlineCap(p)),
		Bitline: cols * a.BitlineCap(p) * p.Vdd *
			(bitlineSenseSwing * p.Vdd),
		SenseAmp:     cols * SwitchingEnergy(p, senseAmpCap(p)),
		OutputDriver: m.Toggle(cols) * SwitchingEnergy(p, outputLineCap(p)),
	}
}

// Write returns the energy of writing one word through one write port. The
// bitlines of the flipped bits swing fully and the flipped cells switch.
func (a Array) Write(p *tech.Profile, m power.Metric) ArrayAccess {
	flipped := m.Toggle(float64(a.Cols))
	writeDriver := Inverter{Size: outputDriverSize}

	return ArrayAccess{
		Decoder: m.Toggle(a.addressBits()) *
			SwitchingEnergy(p, a.decoderLineCap(p)),
		Wordline: SwitchingEnergy(p, a.WordlineCap(p)),
		Bitline: flipped * SwitchingEnergy(p,
			a.BitlineCap(p)+writeDriver.OutputCap(p)),
		Cell: flipped * SwitchingEnergy(p, a.cellCap(p)),
	}
}

// Leakage returns the leakage power of the cells and the peripheral circuits.
// In a cell, one pull-down, one pull-up and one access transistor are off.
func (a Array) Leakage(p *tech.Profile) float64 {
	w := p.MinWidth()
	cell := Leakage(p, cellPullDownSize*w, NMOS) +
		Leakage(p, cellPullUpSize*w, PMOS) +
		Leakage(p, cellPassSize*w, NMOS)*a.ports()

	cells := float64(a.Rows*a.Cols) * cell

	drv := DriverFor(p, a.WordlineCap(p))
	wordlineDrivers := float64(a.Rows) * a.ports() * drv.Leakage(p)

	senseAmps := float64(a.Cols*a.ReadPorts) * senseAmpInverters *
		MinInverter.Leakage(p)

	return cells + wordlineDrivers + senseAmps
}

// Area returns the area of the cell matrix, the row decoders of every port
// and the sense amplifiers of every read port.
func (a Array) Area(p *tech.Profile) float64 {
	f := p.FeatureSize()
	width := float64(a.Cols) * a.CellWidth(p)
	height := float64(a.Rows) * a.CellHeight(p)

	decoderWidth := (4*a.addressBits() + 20) * f
	senseHeight := 20 * f

	return width*height +
		a.ports()*height*decoderWidth +
		float64(a.ReadPorts)*width*senseHeight
}

package circuit

import (
	"math"

	"github.com/sarchlab/orion/tech"
)

// Repeater describes delay-optimal repeater insertion on a global wire.
type Repeater struct {
	// Size of each repeater in multiples of the minimum inverter.
	Size float64

	// Spacing between two repeaters, in meters.
	Spacing float64
}

// OptimalRepeater returns the repeater size and spacing that minimize the
// delay of a long global wire.
func OptimalRepeater(p *tech.Profile) Repeater {
	r0 := MinInverter.resistance(p)
	c0 := MinInverter.InputCap(p)
	cp := MinInverter.OutputCap(p)
	rw := p.GlobalWireRes
	cw := p.GlobalWireCap

	return Repeater{
		Size:    math.Sqrt(r0 * cw / (rw * c0)),
		Spacing: math.Sqrt(2 * r0 * (c0 + cp) / (rw * cw)),
	}
}

// RepeatedWire is a one-bit global wire of the given length with
// delay-optimal repeaters.
type RepeatedWire struct {
	Length float64
}

// Repeaters returns the number of repeaters on the wire. A wire always has
// at least its driver.
func (w RepeatedWire) Repeaters(p *tech.Profile) float64 {
	r := OptimalRepeater(p)

	n := math.Ceil(w.Length / r.Spacing)
	if n < 1 {
		n = 1
	}

	return n
}

// Cap returns the total switched capacitance of the wire and its repeaters.
func (w RepeatedWire) Cap(p *tech.Profile) float64 {
	r := OptimalRepeater(p)
	rep := Inverter{Size: r.Size}

	return w.Length*p.GlobalWireCap +
		w.Repeaters(p)*(rep.InputCap(p)+rep.OutputCap(p))
}

// Leakage returns the leakage power of the repeaters.
func (w RepeatedWire) Leakage(p *tech.Profile) float64 {
	r := OptimalRepeater(p)
	return w.Repeaters(p) * Inverter{Size: r.Size}.Leakage(p)
}

// Area returns the routing area of the wire track plus the repeater area.
func (w RepeatedWire) Area(p *tech.Profile) float64 {
	r := OptimalRepeater(p)

	return w.Length*p.GlobalWirePitch +
		w.Repeaters(p)*Inverter{Size: r.Size}.Area(p)
}

// LocalWireCap is the capacitance of an unrepeated local wire.
func LocalWireCap(p *tech.Profile, length float64) float64 {
	return length * p.LocalWireCap
}

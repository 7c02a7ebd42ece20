// Package datapath estimates the power and area of processor datapath
// blocks that sit next to the interconnect: a media ALU, bit permutation
// units and a multi-ported register file.
package datapath

import (
	"github.com/sarchlab/orion/power"
)

// Params are the run-time parameters of a datapath estimate.
type Params struct {
	Metric power.Metric

	// Load is the number of operations per cycle. For a register file, it
	// is the number of accesses of each port per cycle.
	Load float64

	Freq       power.Freq
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

package router

import (
	"github.com/sarchlab/orion/circuit"
	"github.com/sarchlab/orion/power"
	"github.com/sarchlab/orion/tech"
)

// Arbiter grants one resource to one of its Requesters.
//
// A matrix arbiter keeps one priority bit for every pair of requesters. A
// round-robin arbiter keeps a one-hot priority pointer.
type Arbiter struct {
	Kind       ArbiterKind
	Requesters int
}

// IsTrivial tells if the arbiter has nothing to decide.
func (a Arbiter) IsTrivial() bool {
	return a.Requesters < 2
}

// FlipFlops returns the number of priority bits.
func (a Arbiter) FlipFlops() int {
	if a.IsTrivial() {
		return 0
	}

	n := a.Requesters
	if a.Kind == RoundRobinArbiter {
		return n
	}

	return n * (n - 1) / 2
}

// requests is the number of active requests per arbitration. On average, the
// winner plus half of the others are requesting.
func (a Arbiter) requests(m power.Metric) float64 {
	n := float64(a.Requesters)
	if m == power.Max {
		return n
	}

	return 1 + (n-1)/2
}

// requestCap is the load of one request line.
func (a Arbiter) requestCap(p *tech.Profile) float64 {
	nand := circuit.Gate{Kind: circuit.NAND, Inputs: 2}

	if a.Kind == RoundRobinArbiter {
		return 2 * nand.InputCap(p)
	}

	return float64(a.Requesters-1) * nand.InputCap(p)
}

func (a Arbiter) grantGate() circuit.Gate {
	if a.Kind == RoundRobinArbiter {
		return circuit.Gate{Kind: circuit.NOR, Inputs: 2}
	}

	return circuit.Gate{Kind: circuit.NOR, Inputs: a.Requesters}
}

// priorityUpdates is the number of priority bits rewritten after a grant.
func (a Arbiter) priorityUpdates(m power.Metric) float64 {
	if a.Kind == RoundRobinArbiter {
		return m.Toggle(2)
	}

	return m.Toggle(float64(a.Requesters - 1))
}

// ArbitrationEnergy returns the energy of one arbitration, excluding the
// clock pins of the priority bits.
func (a Arbiter) ArbitrationEnergy(p *tech.Profile, m power.Metric) float64 {
	if a.IsTrivial() {
		return 0
	}

	grant := a.grantGate().OutputCap(p) + circuit.MinInverter.InputCap(p)
	flop := circuit.FlipFlop{}.DataCap(p)

	return a.requests(m)*circuit.SwitchingEnergy(p, a.requestCap(p)) +
		circuit.SwitchingEnergy(p, grant) +
		a.priorityUpdates(m)*circuit.SwitchingEnergy(p, flop)
}

func (a Arbiter) priorityGates() float64 {
	n := float64(a.Requesters)
	if a.Kind == RoundRobinArbiter {
		return 2 * n
	}

	return n * (n - 1)
}

// Leakage returns the leakage power of the arbiter.
func (a Arbiter) Leakage(p *tech.Profile) float64 {
	if a.IsTrivial() {
		return 0
	}

	nand := circuit.Gate{Kind: circuit.NAND, Inputs: 2}

	return float64(a.FlipFlops())*circuit.FlipFlop{}.Leakage(p) +
		a.priorityGates()*nand.Leakage(p) +
		float64(a.Requesters)*a.grantGate().Leakage(p)
}

// Area returns the layout area of the arbiter.
func (a Arbiter) Area(p *tech.Profile) float64 {
	if a.IsTrivial() {
		return 0
	}

	nand := circuit.Gate{Kind: circuit.NAND, Inputs: 2}

	return float64(a.FlipFlops())*circuit.FlipFlop{}.Area(p) +
		a.priorityGates()*nand.Area(p) +
		float64(a.Requesters)*a.grantGate().Area(p)
}

// evaluate returns the result of count identical arbiters that run
// arbitrations arbitrations per cycle in total.
func (a Arbiter) evaluate(
	p *tech.Profile,
	m power.Metric,
	count int,
	arbitrations float64,
) power.Result {
	n := float64(count)

	return result(
		arbitrations*a.ArbitrationEnergy(p, m),
		n*a.Leakage(p),
		n*a.Area(p),
	)
}

package router

import (
	"math"

	"github.com/sarchlab/orion/power"
	"github.com/sarchlab/orion/report"
	"github.com/sarchlab/orion/tech"
)

// Activity is the operating point that all components of a router are
// evaluated at.
type Activity struct {
	Metric power.Metric

	// Load is the number of flits that enter each input port per cycle.
	Load float64

	Freq power.Freq

	// PacketLength is the number of flits per packet.
	PacketLength int
}

// HeadFlitProbability is the fraction of flits that start a packet. Under
// Max, every flit pays the cost of a head flit.
func (a Activity) HeadFlitProbability() float64 {
	if a.Metric == power.Max || a.PacketLength <= 1 {
		return 1
	}

	return 1 / float64(a.PacketLength)
}

// SharedArbitration is the expected number of arbitrations that an output
// port runs per flit destined to it. With uniform random traffic from
// inPorts inputs, flits that contend in the same cycle share one
// arbitration. Under Max, every flit triggers its own arbitration.
func (a Activity) SharedArbitration(inPorts, outPorts int) float64 {
	if a.Metric == power.Max || inPorts <= 1 {
		return 1
	}

	in := float64(inPorts)
	out := float64(outPorts)

	return (1 - math.Pow(1-1/out, in)) * out / in
}

// A Component is one block of a router.
type Component interface {
	// Name is the name token of the component in reports.
	Name() string

	// Evaluate returns the estimate of the component as a report node. A
	// component that is absent from the router returns a nil node.
	Evaluate(p *tech.Profile, a Activity) (*report.Node, error)
}

func result(dynamic, leakage, area float64) power.Result {
	return power.Result{
		DynamicEnergy: dynamic,
		LeakagePower:  leakage,
		Area:          area,
	}
}

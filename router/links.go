package router

import (
	"github.com/sarchlab/orion/link"
	"github.com/sarchlab/orion/power"
	"github.com/sarchlab/orion/report"
	"github.com/sarchlab/orion/tech"
)

// Links are the wires that leave the output ports of the router.
type Links struct {
	Ports int

	// Length of each link in micrometers.
	Length float64
	Width  int

	// Rate is the number of flits sent over each link per cycle, relative
	// to the router load.
	Rate float64
}

// NewLinks creates the output links of a router. The links are absent when
// LinkLength is 0.
func NewLinks(s Spec) Links {
	return Links{
		Ports:  s.OutPorts,
		Length: s.LinkLength,
		Width:  s.FlitWidth,
		Rate:   float64(s.InPorts) / float64(s.OutPorts),
	}
}

// Name returns "Links".
func (Links) Name() string {
	return "Links"
}

// Evaluate estimates every link with the link model. Under Average, a flit
// flips half of the wires; under Max, all of them.
func (l Links) Evaluate(p *tech.Profile, a Activity) (*report.Node, error) {
	if l.Length == 0 || l.Ports == 0 {
		return nil, nil
	}

	spec, err := link.NewSpec(l.Length, l.Width, 1)
	if err != nil {
		return nil, err
	}

	load := a.Load * l.Rate
	if a.Metric == power.Max {
		load *= 2
	}

	res, err := link.Estimate(p, spec, link.Params{Freq: a.Freq, Load: load})
	if err != nil {
		return nil, err
	}

	own := result(
		res.DynamicPower*a.Freq.Period(),
		res.LeakagePower,
		res.Area,
	)

	links := make([]*report.Node, l.Ports)
	for i := range links {
		links[i] = report.NewNode(report.IndexedName("Link", i), own)
	}

	return report.NewGroup(l.Name(), links...), nil
}

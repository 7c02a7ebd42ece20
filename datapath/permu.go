package datapath

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/sarchlab/orion/circuit"
	"github.com/sarchlab/orion/power"
	"github.com/sarchlab/orion/report"
	"github.com/sarchlab/orion/tech"
)

// PermutationKind selects the circuit of a bit permutation unit.
type PermutationKind int

// The permutation units.
const (
	// OmegaFlip is a four-stage network of omega and flip stages.
	OmegaFlip PermutationKind = iota

	// GRP is a group permutation unit that sorts bits by a control word.
	GRP
)

func (k PermutationKind) String() string {
	switch k {
	case OmegaFlip:
		return "omega-flip"
	case GRP:
		return "grp"
	default:
		return fmt.Sprintf("PermutationKind(%d)", int(k))
	}
}

// ParsePermutationKind parses "omega-flip" or "grp".
func ParsePermutationKind(s string) (PermutationKind, error) {
	switch strings.ToLower(s) {
	case "omega-flip", "omflip":
		return OmegaFlip, nil
	case "grp":
		return GRP, nil
	}

	return 0, &power.ConfigurationError{
		Field:  "permutation kind",
		Reason: fmt.Sprintf("%q is not omega-flip or grp", s),
	}
}

// Transistor widths in units of lambda.
const (
	omfPass = 6
	omfNotN = 3
	omfNotP = 6

	grpPass   = 6
	grpNandN  = 3
	grpNandP  = 3
	grpNorN   = 3
	grpNorP   = 12
	grpL1NotN = 3
)

// grpDriverScale is the fan-out between the levels of the inverter chains
// that drive the one-hot lines.
const grpDriverScale = 3

// omegaFlipStages is the number of switching stages of the network. The
// four stages are separated by three intermediate node groups.
const omegaFlipStages = 4

// Permutation is a bit permutation unit over a Width bits wide data word.
type Permutation struct {
	Kind  PermutationKind
	Width int
}

// Validate checks the width. Both units split the word in halves, and the
// group permutation unit needs a power of two.
func (u Permutation) Validate() error {
	if u.Width <= 0 || u.Width%2 != 0 || u.Width > 64 {
		return &power.ConfigurationError{
			Field:  "permutation width",
			Reason: fmt.Sprintf("must be even up to 64, got %d", u.Width),
		}
	}

	if u.Kind == GRP && bits.OnesCount(uint(u.Width)) != 1 {
		return &power.ConfigurationError{
			Field:  "permutation width",
			Reason: fmt.Sprintf("grp needs a power of two, got %d", u.Width),
		}
	}

	if u.Kind != OmegaFlip && u.Kind != GRP {
		return &power.ConfigurationError{
			Field:  "permutation kind",
			Reason: u.Kind.String() + " is not supported",
		}
	}

	return nil
}

// geometry holds the transistor and wire units of one technology.
type geometry struct {
	p *tech.Profile

	// lambda is half the feature size, in micrometers.
	lambda float64

	// pitch is the height and width of one bit track, in meters.
	pitch float64
}

func newGeometry(p *tech.Profile) geometry {
	return geometry{
		p:      p,
		lambda: p.FeatureSize() * 1e6 / 2,
		pitch:  p.LocalWirePitch,
	}
}

func (g geometry) drain(w float64, stack int) float64 {
	return circuit.DrainCap(g.p, w*g.lambda, stack)
}

func (g geometry) gate(w float64) float64 {
	return circuit.GateCap(g.p, w*g.lambda, 0)
}

func (g geometry) wire(length float64) float64 {
	return length * g.p.LocalWireCap
}

func (g geometry) inverter(n, p float64) float64 {
	return g.drain(n, 1) + g.drain(p, 1) + g.gate(n+p)
}

// energy is the energy of one transition of a node of capacitance c.
func (g geometry) energy(c float64) float64 {
	return 0.5 * circuit.SwitchingEnergy(g.p, c)
}

// Event is one kind of node transition inside a permutation unit.
type Event struct {
	Name string

	// Energy is the energy of one transition.
	Energy float64

	// Nodes is the number of nodes that switch in the worst case.
	Nodes float64
}

// OmegaFlipEvents returns the transition kinds of the omega-flip network.
func (u Permutation) OmegaFlipEvents(p *tech.Profile) []Event {
	g := newGeometry(p)
	w := float64(u.Width)
	unitHeight := 3 * g.pitch
	unitDist := 1.5 * w * g.pitch

	driver := g.inverter(omfNotN, omfNotP)
	stageIn := 2*g.drain(omfPass, 1) + g.drain(omfPass, 1)
	stageOut := g.drain(omfPass, 1) + g.drain(omfPass, 1)

	ctr := func(n, length float64) float64 {
		return n*g.gate(2*omfPass) + g.wire(length)
	}

	in := driver + g.wire(unitDist+(0.5+0.25*w)*unitHeight) + stageIn
	stg := stageOut + driver + g.wire(unitDist+(0.5+1.25*w)*g.pitch) + stageIn
	internal := driver + g.drain(omfPass, 1) + 2*g.drain(omfPass, 1)
	out := stageOut + driver

	return []Event{
		{"Input", g.energy(in), w},
		{"Stage", g.energy(stg), w * (omegaFlipStages - 1)},
		{"Internal", g.energy(internal), w * omegaFlipStages},
		{"Output", g.energy(out), w},
		{"Pass", g.energy(ctr(w, w*unitHeight)), omegaFlipStages},
		{"Control", g.energy(ctr(2, w*unitHeight/2)), w},
	}
}

// Stages returns the number of sorting stages of the group permutation
// unit.
func (u Permutation) Stages() int {
	return bits.Len(uint(u.Width)) - 1
}

func grpTracks(exp int) float64 {
	return float64(int(1)<<exp) + 1
}

// previousStage is the load that the output of the previous stage adds to
// a node of stage stg.
func (g geometry) previousStage(stg int) float64 {
	n := grpTracks(stg - 2)
	return g.wire(n*2*g.pitch) + n*(g.drain(grpPass, 1)+g.drain(grpPass, 1))
}

func (g geometry) grpDrivers(stg int) float64 {
	c := 0.0
	if stg > 1 {
		w := float64(grpL1NotN)
		for level := 0; level < 3; level++ {
			c += g.inverter(w, 2*w)
			w *= grpDriverScale
		}
	}

	if stg > 4 {
		w := float64(grpL1NotN) * grpDriverScale * grpDriverScale * grpDriverScale
		c += g.inverter(w, 2*w)
	}

	return c
}

func (g geometry) grpDataNode(stg int) float64 {
	c := 0.0
	if stg == 1 {
		c += g.drain(grpNandN, 2) + 2*g.drain(grpNandP, 1)
	} else {
		c += g.previousStage(stg)
	}

	n := grpTracks(stg - 1)
	c += g.wire(0.75*n*2*g.pitch + (n-1)*g.pitch)
	c += 0.75 * n * (g.drain(grpPass, 1) + g.drain(grpPass, 1))

	return c
}

func (g geometry) grpOneHotSource(stg int) float64 {
	if stg == 1 {
		return g.inverter(grpL1NotN, 2*grpL1NotN) + 0.5*g.gate(grpNandN+grpNandP)
	}

	return g.previousStage(stg)
}

func (g geometry) grpLeftNode(stg int) float64 {
	n := grpTracks(stg + 1)

	return g.grpOneHotSource(stg) +
		g.wire(n*2*g.pitch) +
		n*g.gate(2*grpPass) +
		g.grpDrivers(stg)
}

func (g geometry) grpRightNode(stg int) float64 {
	n := grpTracks(stg - 1)

	return g.grpOneHotSource(stg) +
		g.wire(n*2*g.pitch+(n-1)*2*g.pitch) +
		n*(g.drain(grpPass, 1)+g.drain(grpPass, 1))
}

func (g geometry) grpOrInput(stg int) float64 {
	if stg == 1 {
		return g.drain(grpNandN, 2) + 2*g.drain(grpNandP, 1) + g.gate(grpNorN+grpNorP)
	}

	return g.previousStage(stg) + g.gate(grpNorN+grpNorP)
}

// GRPStageEvents returns the transition kinds of one sorting stage of the
// group permutation unit, counting stages from 1. The two rails of a one-hot
// number switch together, so the one-hot lines count both transitions.
func (u Permutation) GRPStageEvents(p *tech.Profile, stg int) []Event {
	g := newGeometry(p)
	w := float64(u.Width)
	oneHot := float64(u.Width >> stg)

	return []Event{
		{"ZW", g.energy(g.grpDataNode(stg)), 2 * w},
		{"LeftOneHot", 4 * g.energy(g.grpLeftNode(stg)), oneHot},
		{"RightOneHot", 4 * g.energy(g.grpRightNode(stg)), oneHot},
	}
}

// GRPOrInput returns the transitions at the inputs of the output OR gates.
func (u Permutation) GRPOrInput(p *tech.Profile) Event {
	g := newGeometry(p)
	return Event{"OrInput", g.energy(g.grpOrInput(u.Stages() + 1)), 2 * float64(u.Width)}
}

// Energy returns the energy of one permutation. Under Max every node
// switches. Under Average, the data and the control word are random, so
// half of them do.
func (u Permutation) Energy(p *tech.Profile, m power.Metric) float64 {
	return u.tree(p, m, 1).Total().DynamicEnergy
}

func eventNodes(events []Event, m power.Metric, load float64) []*report.Node {
	nodes := make([]*report.Node, 0, len(events))
	for _, e := range events {
		nodes = append(nodes, report.NewNode(e.Name, power.Result{
			DynamicEnergy: load * m.Toggle(e.Nodes) * e.Energy,
		}))
	}

	return nodes
}

func (u Permutation) tree(p *tech.Profile, m power.Metric, load float64) *report.Node {
	if u.Kind == OmegaFlip {
		return report.NewGroup("OmegaFlip",
			eventNodes(u.OmegaFlipEvents(p), m, load)...)
	}

	stages := make([]*report.Node, 0, u.Stages()+1)
	for stg := 1; stg <= u.Stages(); stg++ {
		stages = append(stages, report.NewGroup(
			report.IndexedName("Stage", stg-1),
			eventNodes(u.GRPStageEvents(p, stg), m, load)...))
	}

	stages = append(stages,
		eventNodes([]Event{u.GRPOrInput(p)}, m, load)...)

	return report.NewGroup("GRP", stages...)
}

// Estimate returns a report of the switching energy of the unit. Load is
// the number of permutations per cycle.
func (u Permutation) Estimate(p *tech.Profile, params Params) (*report.Report, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	return report.New(
		fmt.Sprintf("Permutation %s %d-bit", u.Kind, u.Width),
		p.Node,
		params.Freq,
		params.Metric,
		params.Load,
		params.PrintDepth,
		u.tree(p, params.Metric, params.Load),
	), nil
}

package router

import (
	"fmt"

	"github.com/sarchlab/orion/power"
)

// CrossbarKind selects the crossbar circuit.
type CrossbarKind string

// Crossbar kinds.
const (
	MatrixCrossbar  CrossbarKind = "matrix"
	MuxTreeCrossbar CrossbarKind = "mux-tree"
)

// ArbiterKind selects the arbiter circuit used by the allocators.
type ArbiterKind string

// Arbiter kinds.
const (
	MatrixArbiter     ArbiterKind = "matrix"
	RoundRobinArbiter ArbiterKind = "round-robin"
)

// VCAllocatorKind selects how virtual channels are allocated.
type VCAllocatorKind string

// VC allocator kinds.
const (
	TwoStageVCAllocator VCAllocatorKind = "two-stage"
	OneStageVCAllocator VCAllocatorKind = "one-stage"
)

// Spec holds the microarchitecture of a router.
type Spec struct {
	Name string `yaml:"name"`

	InPorts   int `yaml:"inPorts"`
	OutPorts  int `yaml:"outPorts"`
	FlitWidth int `yaml:"flitWidth"`
	VCs       int `yaml:"vcs"`

	// Buffer depths in flits per virtual channel. An OutputBufferDepth of 0
	// means that the router has no output buffers.
	InputBufferDepth  int `yaml:"inputBufferDepth"`
	OutputBufferDepth int `yaml:"outputBufferDepth"`
	BufferReadPorts   int `yaml:"bufferReadPorts"`
	BufferWritePorts  int `yaml:"bufferWritePorts"`

	Crossbar    CrossbarKind    `yaml:"crossbar"`
	Arbiter     ArbiterKind     `yaml:"arbiter"`
	VCAllocator VCAllocatorKind `yaml:"vcAllocator"`

	// PacketLength is the average number of flits per packet.
	PacketLength   int `yaml:"packetLength"`
	PipelineStages int `yaml:"pipelineStages"`

	// LinkLength is the length of the output links in micrometers. 0 leaves
	// the links out of the estimate.
	LinkLength float64 `yaml:"linkLength"`
}

// Defaults returns the spec of a 5-port virtual-channel mesh router.
func Defaults() Spec {
	return Spec{
		InPorts:           5,
		OutPorts:          5,
		FlitWidth:         64,
		VCs:               4,
		InputBufferDepth:  4,
		OutputBufferDepth: 0,
		BufferReadPorts:   1,
		BufferWritePorts:  1,
		Crossbar:          MatrixCrossbar,
		Arbiter:           MatrixArbiter,
		VCAllocator:       TwoStageVCAllocator,
		PacketLength:      5,
		PipelineStages:    3,
		LinkLength:        0,
	}
}

// Validate checks that the spec describes a router that can be estimated.
func (s Spec) Validate() error {
	positive := []struct {
		field string
		value int
	}{
		{"in ports", s.InPorts},
		{"out ports", s.OutPorts},
		{"flit width", s.FlitWidth},
		{"virtual channels", s.VCs},
		{"input buffer depth", s.InputBufferDepth},
		{"buffer read ports", s.BufferReadPorts},
		{"buffer write ports", s.BufferWritePorts},
		{"packet length", s.PacketLength},
		{"pipeline stages", s.PipelineStages},
	}

	for _, p := range positive {
		if err := power.MustBePositive(s.field(p.field), float64(p.value)); err != nil {
			return err
		}
	}

	if err := power.MustNotBeNegative(
		s.field("output buffer depth"), float64(s.OutputBufferDepth),
	); err != nil {
		return err
	}

	if err := power.MustNotBeNegative(s.field("link length"), s.LinkLength); err != nil {
		return err
	}

	return s.kindsMustBeKnown()
}

func (s Spec) kindsMustBeKnown() error {
	switch s.Crossbar {
	case MatrixCrossbar, MuxTreeCrossbar:
	default:
		return s.unknownKind("crossbar", string(s.Crossbar))
	}

	switch s.Arbiter {
	case MatrixArbiter, RoundRobinArbiter:
	default:
		return s.unknownKind("arbiter", string(s.Arbiter))
	}

	switch s.VCAllocator {
	case TwoStageVCAllocator, OneStageVCAllocator:
	default:
		return s.unknownKind("vc allocator", string(s.VCAllocator))
	}

	return nil
}

func (s Spec) field(name string) string {
	if s.Name == "" {
		return name
	}

	return s.Name + " " + name
}

func (s Spec) unknownKind(field, kind string) error {
	return &power.ConfigurationError{
		Field:  s.field(field),
		Reason: fmt.Sprintf("has unknown kind %q", kind),
	}
}

// HasVCs tells if the router needs virtual channel allocation.
func (s Spec) HasVCs() bool {
	return s.VCs > 1
}

// UnmarshalYAML fills the fields missing from the document with the
// defaults.
func (s *Spec) UnmarshalYAML(unmarshal func(interface{}) error) error {
	type plain Spec

	p := plain(Defaults())
	if err := unmarshal(&p); err != nil {
		return err
	}

	*s = Spec(p)

	return nil
}

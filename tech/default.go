package tech

// builtinProfiles are representative high-performance process constants.
// Older nodes follow the classic scaling deck. 90nm and below use the
// characterized repeated-wire data that the link model is validated for.
var builtinProfiles = []Profile{
	{
		Node: Node800, Vdd: 5.0,
		GateCap: 1.95e-15, DrainCap: 1.10e-15,
		NMOSLeakage: 1.0e-12, PMOSLeakage: 0.5e-12,
		NMOSResistance: 9000, PMOSResistance: 22000,
		LocalWirePitch: 3.2e-6, LocalWireCap: 2.6e-10,
		GlobalWirePitch: 4.0e-6, GlobalWireCap: 2.5e-10, GlobalWireRes: 2.0e4,
	},
	{
		Node: Node400, Vdd: 3.3,
		GateCap: 1.80e-15, DrainCap: 1.00e-15,
		NMOSLeakage: 5.0e-12, PMOSLeakage: 2.5e-12,
		NMOSResistance: 7000, PMOSResistance: 17000,
		LocalWirePitch: 1.6e-6, LocalWireCap: 2.5e-10,
		GlobalWirePitch: 2.2e-6, GlobalWireCap: 2.4e-10, GlobalWireRes: 3.5e4,
	},
	{
		Node: Node350, Vdd: 3.3,
		GateCap: 1.75e-15, DrainCap: 0.95e-15,
		NMOSLeakage: 8.0e-12, PMOSLeakage: 4.0e-12,
		NMOSResistance: 6500, PMOSResistance: 16000,
		LocalWirePitch: 1.4e-6, LocalWireCap: 2.45e-10,
		GlobalWirePitch: 2.0e-6, GlobalWireCap: 2.35e-10, GlobalWireRes: 4.0e4,
	},
	{
		Node: Node250, Vdd: 2.5,
		GateCap: 1.60e-15, DrainCap: 0.90e-15,
		NMOSLeakage: 2.0e-11, PMOSLeakage: 1.0e-11,
		NMOSResistance: 5000, PMOSResistance: 12500,
		LocalWirePitch: 1.0e-6, LocalWireCap: 2.4e-10,
		GlobalWirePitch: 1.5e-6, GlobalWireCap: 2.3e-10, GlobalWireRes: 6.0e4,
	},
	{
		Node: Node180, Vdd: 1.8,
		GateCap: 1.50e-15, DrainCap: 0.85e-15,
		NMOSLeakage: 5.0e-11, PMOSLeakage: 2.5e-11,
		NMOSResistance: 4200, PMOSResistance: 10000,
		LocalWirePitch: 0.72e-6, LocalWireCap: 2.3e-10,
		GlobalWirePitch: 1.1e-6, GlobalWireCap: 2.2e-10, GlobalWireRes: 8.0e4,
	},
	{
		Node: Node110, Vdd: 1.2,
		GateCap: 1.25e-15, DrainCap: 0.75e-15,
		NMOSLeakage: 2.0e-10, PMOSLeakage: 1.0e-10,
		NMOSResistance: 3000, PMOSResistance: 7500,
		LocalWirePitch: 0.44e-6, LocalWireCap: 2.2e-10,
		GlobalWirePitch: 0.6e-6, GlobalWireCap: 2.1e-10, GlobalWireRes: 1.5e5,
	},
	{
		Node: Node90, Vdd: 1.2,
		GateCap: 1.10e-15, DrainCap: 0.70e-15,
		NMOSLeakage: 3.0e-10, PMOSLeakage: 1.5e-10,
		NMOSResistance: 2500, PMOSResistance: 6000,
		LocalWirePitch: 0.36e-6, LocalWireCap: 2.1e-10,
		GlobalWirePitch: 0.42e-6, GlobalWireCap: 2.0e-10, GlobalWireRes: 2.2e5,
		WireModelValidated: true,
	},
	{
		Node: Node65, Vdd: 1.1,
		GateCap: 1.00e-15, DrainCap: 0.65e-15,
		NMOSLeakage: 5.0e-10, PMOSLeakage: 2.5e-10,
		NMOSResistance: 2000, PMOSResistance: 5000,
		LocalWirePitch: 0.26e-6, LocalWireCap: 2.0e-10,
		GlobalWirePitch: 0.30e-6, GlobalWireCap: 1.9e-10, GlobalWireRes: 4.0e5,
		WireModelValidated: true,
	},
	{
		Node: Node45, Vdd: 1.0,
		GateCap: 0.90e-15, DrainCap: 0.60e-15,
		NMOSLeakage: 8.0e-10, PMOSLeakage: 4.0e-10,
		NMOSResistance: 1700, PMOSResistance: 4200,
		LocalWirePitch: 0.18e-6, LocalWireCap: 1.9e-10,
		GlobalWirePitch: 0.21e-6, GlobalWireCap: 1.8e-10, GlobalWireRes: 7.8e5,
		WireModelValidated: true,
	},
	{
		Node: Node32, Vdd: 0.9,
		GateCap: 0.80e-15, DrainCap: 0.55e-15,
		NMOSLeakage: 1.2e-9, PMOSLeakage: 6.0e-10,
		NMOSResistance: 1500, PMOSResistance: 3600,
		LocalWirePitch: 0.13e-6, LocalWireCap: 1.8e-10,
		GlobalWirePitch: 0.15e-6, GlobalWireCap: 1.75e-10, GlobalWireRes: 1.5e6,
		WireModelValidated: true,
	},
}

var defaultTable Table

func init() {
	t, err := NewTable(builtinProfiles...)
	if err != nil {
		panic(err)
	}

	defaultTable = t
}

// DefaultTable returns the built-in technology table that covers every
// supported node.
func DefaultTable() Table {
	return defaultTable
}

// ValidatedWireNodes lists the nodes that have a validated wire model in the
// built-in table, from the oldest to the newest.
func ValidatedWireNodes() []Node {
	var nodes []Node

	for _, p := range builtinProfiles {
		if p.WireModelValidated {
			nodes = append(nodes, p.Node)
		}
	}

	return nodes
}

// MustLookup returns the built-in profile of a node and panics if the node is
// not supported. It is meant for tests and examples.
func MustLookup(node Node) *Profile {
	p, err := defaultTable.Lookup(node)
	if err != nil {
		panic(err)
	}

	return p
}

// Package plan loads and validates link-plan files (XLSX, CSV, or YAML)
// and turns them into immutable link records for rendering.
package plan

import "strings"

// Protocol is the routing protocol selected for a link, decided once per
// record at load time.
type Protocol int

const (
	// ProtocolISIS is the fallback: any RoutingProto value that is not
	// "ospf" (case-insensitive) renders the ISIS variant.
	ProtocolISIS Protocol = iota
	ProtocolOSPF
)

// ParseProtocol maps a raw RoutingProto cell to a Protocol. Unrecognized
// values fall through to ISIS; callers that want to surface typos should
// also check KnownProtocol.
func ParseProtocol(raw string) Protocol {
	if strings.EqualFold(strings.TrimSpace(raw), "ospf") {
		return ProtocolOSPF
	}
	return ProtocolISIS
}

// KnownProtocol reports whether raw names a protocol the generator
// recognizes. Used for advisory warnings only — unknown values still render.
func KnownProtocol(raw string) bool {
	raw = strings.TrimSpace(raw)
	return strings.EqualFold(raw, "ospf") || strings.EqualFold(raw, "isis")
}

func (p Protocol) String() string {
	if p == ProtocolOSPF {
		return "ospf"
	}
	return "isis"
}

// Link is one row of the plan: a point-to-point link between two sites.
// Records are immutable once loaded; every derived value (addresses,
// interface names, stanzas) is computed per render pass.
type Link struct {
	SiteA string
	SiteB string
	LagA  string
	LagB  string

	// Subnet is the CIDR descriptor shared by both endpoints.
	Subnet string

	// PortType is the physical-layer medium tag, e.g. "GE" or "10GE".
	PortType string

	Protocol Protocol
	Area     string // required when Protocol == ProtocolOSPF
	AuthKey  string // optional shared secret

	// BFD is an optional "tx/rx/multiplier" spec for the routed interface.
	BFD string

	// MicroBFD enables the LAG-level liveness sub-block, distinct from
	// the interface-level BFD above.
	MicroBFD bool

	PIM  bool
	MPLS bool
	RSVP bool
	LDP  bool

	// InterfaceA/InterfaceB are optional explicit routed-interface names.
	// When empty the name is derived from the peer site and peer LAG.
	InterfaceA string
	InterfaceB string

	// PortsA/PortsB are slot-indexed physical port lists. An empty string
	// marks an absent slot: it is skipped individually, the rest of the
	// side still renders.
	PortsA []string
	PortsB []string
}

// yes reports whether a flag cell is affirmed (case-insensitive "yes").
func yes(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "yes")
}

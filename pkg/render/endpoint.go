package render

import (
	"fmt"
	"strings"

	"github.com/imadrouass/network-config-generator/pkg/plan"
)

var (
	headerEquals = "#" + strings.Repeat("=", 79)
	headerDashes = "#" + strings.Repeat("-", 79)
)

// Endpoint is one side's view of a link. The orchestrator builds two of
// these per record with the site/lag/interface/port arguments swapped.
type Endpoint struct {
	Role      Role
	Site      string
	Lag       string
	PeerSite  string
	PeerLag   string
	Interface string // explicit routed-interface name, may be empty
	Ports     []string
	PeerPorts []string
}

// Stanza is one endpoint's rendered block plus any advisory warnings
// collected along the way. Warnings never block rendering.
type Stanza struct {
	Lines    []string
	Warnings []string
}

// ComposeEndpoint assembles the full stanza block for one endpoint in
// fixed order: header, port stanzas, LAG, routed interface, routing
// protocol, auxiliary protocols (pim, mpls, rsvp, ldp), closing
// terminators. Later steps reuse values resolved by earlier ones (the
// derived addresses, the interface name), so the order is not negotiable.
func ComposeEndpoint(link *plan.Link, ep Endpoint) (*Stanza, error) {
	st := &Stanza{
		Lines: []string{
			headerEquals,
			fmt.Sprintf("# On %s ==> %s", ep.Site, ep.PeerSite),
			headerDashes,
			"exit all",
			"/config",
		},
	}

	addrs, err := ResolveAddresses(link.Subnet, ep.Role)
	if err != nil {
		return nil, err
	}

	for i, port := range ep.Ports {
		if port == "" {
			continue
		}
		var peerPort string
		if i < len(ep.PeerPorts) {
			peerPort = ep.PeerPorts[i]
		}
		st.Lines = append(st.Lines, PortStanza(ep.PeerSite, port, peerPort, link.PortType)...)
	}

	var microBFD *Addresses
	if link.MicroBFD {
		microBFD = addrs
	}
	st.Lines = append(st.Lines, LagStanza(ep.Lag, ep.PeerLag, ep.PeerSite, ep.Ports, microBFD)...)

	name, warning := InterfaceName(ep.Interface, ep.PeerSite, ep.PeerLag)
	if warning != "" {
		st.Warnings = append(st.Warnings, warning)
	}

	ifaceLines, err := InterfaceStanza(name, addrs, ep.Lag, ep.PeerLag, ep.PeerSite, link.BFD)
	if err != nil {
		return nil, err
	}
	st.Lines = append(st.Lines, ifaceLines...)

	st.Lines = append(st.Lines, ProtocolStanza(link.Protocol, name, link.Area, link.AuthKey, link.BFD)...)

	if link.PIM {
		st.Lines = append(st.Lines, AuxStanza("pim", name)...)
	}
	if link.MPLS {
		st.Lines = append(st.Lines, AuxStanza("mpls", name)...)
	}
	if link.RSVP {
		st.Lines = append(st.Lines, AuxStanza("rsvp", name)...)
	}
	if link.LDP {
		st.Lines = append(st.Lines, LDPStanza(name)...)
	}

	st.Lines = append(st.Lines, "    exit", "exit")
	return st, nil
}

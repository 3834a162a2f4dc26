package render

import "fmt"

// portTypeGE is the medium tag that triggers the fixed negotiation-limiting
// line in port stanzas. Not configurable.
const portTypeGE = "GE"

// PortStanza renders one physical port stanza. The description references
// the peer site, the peer-side port in the same slot, and the medium tag.
func PortStanza(peerSite, port, peerPort, portType string) []string {
	lines := []string{
		fmt.Sprintf("    port %s", port),
		fmt.Sprintf("        description \"To-%s-%s-%s\"", peerSite, portType, peerPort),
		"        ethernet",
	}
	if portType == portTypeGE {
		lines = append(lines, "            autonegotiate limited")
	}
	lines = append(lines,
		"            load-balancing-algorithm include-l4",
		"            hold-time up 5",
		"        exit",
		"        no shutdown",
		"    exit",
	)
	return lines
}

// LagStanza renders the link-group stanza for one endpoint: every present
// port as a member, the fixed operational lines, and the micro-BFD
// sub-block when addrs is non-nil. Absent port slots are skipped
// individually; the order of present members follows slot order.
func LagStanza(localLag, peerLag, peerSite string, ports []string, addrs *Addresses) []string {
	lines := []string{
		fmt.Sprintf("    lag %s", localLag),
		fmt.Sprintf("        description \"To-%s-Lag-%s\"", peerSite, peerLag),
	}
	for _, p := range ports {
		if p == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("        port %s", p))
	}
	if addrs != nil {
		lines = append(lines, microBFDBlock(addrs)...)
	}
	lines = append(lines,
		"        dynamic-cost",
		"        lacp active",
		"        no shutdown",
		"    exit",
	)
	return lines
}

// microBFDBlock is the LAG-level liveness sub-block. It runs per-member
// BFD sessions over the endpoint's own derived addresses, independent of
// the interface-level bfd line.
func microBFDBlock(addrs *Addresses) []string {
	return []string{
		"        bfd",
		"            family ipv4",
		fmt.Sprintf("                local-ip-address %s", addrs.Local),
		fmt.Sprintf("                remote-ip-address %s", addrs.Peer),
		"                no shutdown",
		"            exit",
		"        exit",
	}
}

// Package render is the configuration-rendering engine: it turns one link
// record into two mirrored Nokia SR OS classic-CLI stanza blocks, one per
// endpoint. Every renderer is a pure function of the immutable record and
// returns an ordered slice of text lines.
package render

import (
	"net"
	"strconv"

	"github.com/imadrouass/network-config-generator/pkg/util"
)

// Role designates which party to the link an endpoint is. The first party
// takes the first usable host offset, the second party the next one.
type Role int

const (
	RoleA Role = iota // first party (SiteA)
	RoleB             // second party (SiteB)
)

func (r Role) String() string {
	if r == RoleA {
		return "A"
	}
	return "B"
}

// Addresses are the subnet-derived endpoint addresses for one role.
type Addresses struct {
	Local     net.IP
	Peer      net.IP
	PrefixLen int
}

// LocalCIDR returns the local address in address/prefix notation as it
// appears on the routed interface.
func (a *Addresses) LocalCIDR() string {
	return a.Local.String() + "/" + strconv.Itoa(a.PrefixLen)
}

// ResolveAddresses derives both endpoint addresses from the link subnet.
// The first party gets base+1 and the second base+2, with the offsets
// swapped for the peer. The subnet is interpreted non-strictly: host bits
// are masked off, never rejected. An unparsable descriptor is fatal.
func ResolveAddresses(subnet string, role Role) (*Addresses, error) {
	base, prefixLen, err := util.ParseNetwork(subnet)
	if err != nil {
		return nil, err
	}

	localOff, peerOff := 1, 2
	if role == RoleB {
		localOff, peerOff = 2, 1
	}

	return &Addresses{
		Local:     util.AddOffset(base, localOff),
		Peer:      util.AddOffset(base, peerOff),
		PrefixLen: prefixLen,
	}, nil
}

package util

import (
	"net"
)

// ParseNetwork parses a CIDR-style subnet descriptor and returns the network
// base address and prefix length. Host bits in the descriptor are masked off
// rather than rejected, so "10.0.0.1/24" resolves to 10.0.0.0/24 (non-strict
// interpretation, matching what planners typically put in spreadsheets).
func ParseNetwork(cidr string) (net.IP, int, error) {
	_, ipNet, err := net.ParseCIDR(cidr)
	if err != nil {
		return nil, 0, NewInvalidSubnetError(cidr, err)
	}
	ones, _ := ipNet.Mask.Size()

	base := ipNet.IP
	if v4 := base.To4(); v4 != nil {
		base = v4
	}
	return base, ones, nil
}

// AddOffset returns ip + offset, carrying across octets. The input is not
// modified. Offset must be non-negative and small (host offsets 1 and 2 in
// practice); overflow past the address width wraps around.
func AddOffset(ip net.IP, offset int) net.IP {
	out := make(net.IP, len(ip))
	copy(out, ip)
	for i := len(out) - 1; i >= 0 && offset > 0; i-- {
		sum := int(out[i]) + offset
		out[i] = byte(sum & 0xff)
		offset = sum >> 8
	}
	return out
}

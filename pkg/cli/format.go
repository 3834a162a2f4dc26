// Package cli provides shared table and color formatting helpers for the
// confgen CLI.
package cli

import (
	"strings"

	"github.com/fatih/color"

	"github.com/imadrouass/network-config-generator/pkg/plan"
)

// Color helpers. fatih/color honors NO_COLOR and non-terminal output on
// its own, so callers can use these unconditionally.
var (
	Green  = color.New(color.FgGreen).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()
	Bold   = color.New(color.Bold).SprintFunc()
)

// FormatPorts joins the present slots of a slot-indexed port list.
// Absent slots are dropped; an empty side renders as "-".
func FormatPorts(ports []string) string {
	var present []string
	for _, p := range ports {
		if p != "" {
			present = append(present, p)
		}
	}
	if len(present) == 0 {
		return "-"
	}
	return strings.Join(present, ",")
}

// FormatOptions summarizes a link's optional features for table output:
// auth, bfd, micro-bfd, then the auxiliary protocols in render order.
func FormatOptions(l *plan.Link) string {
	var opts []string
	if l.AuthKey != "" {
		opts = append(opts, "auth")
	}
	if l.BFD != "" {
		opts = append(opts, "bfd")
	}
	if l.MicroBFD {
		opts = append(opts, "micro-bfd")
	}
	if l.PIM {
		opts = append(opts, "pim")
	}
	if l.MPLS {
		opts = append(opts, "mpls")
	}
	if l.RSVP {
		opts = append(opts, "rsvp")
	}
	if l.LDP {
		opts = append(opts, "ldp")
	}
	if len(opts) == 0 {
		return "-"
	}
	return strings.Join(opts, ",")
}

// FormatArea renders the OSPF area column; ISIS links have none.
func FormatArea(l *plan.Link) string {
	if l.Protocol == plan.ProtocolOSPF {
		return l.Area
	}
	return "-"
}

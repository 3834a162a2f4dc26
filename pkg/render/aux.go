package render

import "fmt"

// AuxStanza renders the uniform enable block shared by pim, mpls, and
// rsvp: the protocol keyword, the interface, and an administrative enable.
func AuxStanza(protocol, iface string) []string {
	return []string{
		fmt.Sprintf("        %s", protocol),
		fmt.Sprintf("            interface \"%s\"", iface),
		"                no shutdown",
		"            exit",
		"        exit",
	}
}

// LDPStanza renders the ldp block. Unlike the other auxiliary protocols,
// ldp nests through interface-parameters and enables IPv4 liveness
// detection on the interface.
func LDPStanza(iface string) []string {
	return []string{
		"        ldp",
		"            interface-parameters",
		fmt.Sprintf("                interface \"%s\"", iface),
		"                    bfd-enable ipv4",
		"                    ipv4",
		"                        no shutdown",
		"                    exit",
		"                    no shutdown",
		"                exit",
		"            exit",
		"        exit",
	}
}

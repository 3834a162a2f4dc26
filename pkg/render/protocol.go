package render

import (
	"fmt"

	"github.com/imadrouass/network-config-generator/pkg/plan"
)

// ProtocolStanza renders the routing-protocol stanza for one endpoint.
// The variant is decided by the record's Protocol tag: OSPF gets the
// area-nested interface block, everything else gets the ISIS level-2
// block. Both are point-to-point; the authentication and BFD option lines
// use different keywords per protocol. The indentation below reproduces
// the device loader's accepted layout verbatim.
func ProtocolStanza(proto plan.Protocol, iface, area, authKey, bfdSpec string) []string {
	if proto == plan.ProtocolOSPF {
		return ospfStanza(iface, area, authKey, bfdSpec)
	}
	return isisStanza(iface, authKey, bfdSpec)
}

// ospfStanza assumes a non-empty area: the validator rejects OSPF records
// without one before rendering starts.
func ospfStanza(iface, area, authKey, bfdSpec string) []string {
	lines := []string{
		"        ospf",
		fmt.Sprintf("            area %s", area),
		fmt.Sprintf("                interface \"%s\"", iface),
		"                     interface-type point-to-point",
	}
	if authKey != "" {
		lines = append(lines,
			fmt.Sprintf("                     message-digest-key 10 md5 %s", authKey),
			"                     authentication-type message-digest",
		)
	}
	if bfdSpec != "" {
		lines = append(lines, "                     bfd-enable")
	}
	lines = append(lines,
		"                     no shutdown",
		"                 exit",
		"            exit",
		"        exit",
	)
	return lines
}

func isisStanza(iface, authKey, bfdSpec string) []string {
	lines := []string{
		"        isis",
		fmt.Sprintf("            interface \"%s\"", iface),
		"                level-capability level-2",
		"                interface-type point-to-point",
	}
	if authKey != "" {
		lines = append(lines,
			fmt.Sprintf("                hello-authentication-key %s", authKey),
			"                hello-authentication-type message-digest",
		)
	}
	if bfdSpec != "" {
		lines = append(lines, "                bfd-enable ipv4")
	}
	lines = append(lines,
		"                no shutdown",
		"            exit",
		"        exit",
	)
	return lines
}

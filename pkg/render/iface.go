package render

import (
	"fmt"
	"strings"

	"github.com/imadrouass/network-config-generator/pkg/util"
)

// maxInterfaceNameLen is the device-imposed limit on routed-interface
// names. Exceeding it is advisory: the stanza still renders, the operator
// fixes the source data.
const maxInterfaceNameLen = 32

// InterfaceName returns the explicit name for this role, or derives one
// from the peer site and peer LAG. The returned warning is non-empty when
// the name exceeds the device's length budget.
func InterfaceName(explicit, peerSite, peerLag string) (name, warning string) {
	name = explicit
	if name == "" {
		name = fmt.Sprintf("To_%s_LAG%s", peerSite, peerLag)
	}
	if len(name) > maxInterfaceNameLen {
		warning = fmt.Sprintf("interface name %q is %d characters long, which exceeds the %d-character limit",
			name, len(name), maxInterfaceNameLen)
	}
	return name, warning
}

// InterfaceStanza renders the routed-interface stanza binding the LAG:
// address, description toward the peer, port binding, and the optional
// liveness-detection line.
func InterfaceStanza(name string, addrs *Addresses, localLag, peerLag, peerSite, bfdSpec string) ([]string, error) {
	lines := []string{
		"    router",
		fmt.Sprintf("        interface \"%s\"", name),
		fmt.Sprintf("            address %s", addrs.LocalCIDR()),
		fmt.Sprintf("            description \"To-%s-Lag-%s\"", peerSite, peerLag),
		fmt.Sprintf("            port lag-%s", localLag),
	}
	if bfdSpec != "" {
		bfdLine, err := bfdInterfaceLine(bfdSpec)
		if err != nil {
			return nil, err
		}
		lines = append(lines, bfdLine)
	}
	lines = append(lines,
		"            no shutdown",
		"        exit",
	)
	return lines, nil
}

// bfdInterfaceLine expands a "tx/rx/multiplier" spec into the interface
// bfd line. Anything other than exactly three parts is fatal for the
// stanza: a half-formed liveness line is worse than none.
func bfdInterfaceLine(spec string) (string, error) {
	parts := strings.Split(spec, "/")
	if len(parts) != 3 {
		return "", util.NewMalformedBFDSpecError(spec)
	}
	return fmt.Sprintf("            bfd %s receive %s multiplier %s", parts[0], parts[1], parts[2]), nil
}

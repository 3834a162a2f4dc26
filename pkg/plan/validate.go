package plan

import (
	"strconv"

	"github.com/imadrouass/network-config-generator/pkg/util"
)

// requiredColumns must all be present in a tabular plan before any row
// is considered. Optional columns (ports, interfaces, protocol flags)
// only gate output lines and are never required.
var requiredColumns = []string{
	colSiteA, colSiteB, colLagA, colLagB,
	colSubnet, colPortType, colRoutingProto, colArea,
}

// ValidateTable checks that a tabular plan carries every required column.
// Fails the whole run: rendering with a missing column would silently
// produce incomplete device stanzas.
func ValidateTable(t *Table) error {
	present := make(map[string]bool, len(t.Columns))
	for _, c := range t.Columns {
		present[c] = true
	}

	v := &util.ValidationBuilder{}
	for _, col := range requiredColumns {
		v.Add(present[col], "missing required column: "+col)
	}
	return v.Build()
}

// ValidateLinks checks per-record field dependencies across the whole plan.
// The renderer assumes these invariants hold and does not re-check them.
func ValidateLinks(links []Link) error {
	v := &util.ValidationBuilder{}
	v.Add(len(links) > 0, "plan contains no links")

	for i, l := range links {
		row := i + 1
		v.Add(l.SiteA != "", rowErr(row, "SiteA is required"))
		v.Add(l.SiteB != "", rowErr(row, "SiteB is required"))
		v.Add(l.LagA != "", rowErr(row, "LagA is required"))
		v.Add(l.LagB != "", rowErr(row, "LagB is required"))
		v.Add(l.Subnet != "", rowErr(row, "Subnet is required"))
		if l.Protocol == ProtocolOSPF {
			v.Add(l.Area != "", rowErr(row, "Area is required for OSPF links"))
		}
	}
	return v.Build()
}

func rowErr(row int, msg string) string {
	return "row " + strconv.Itoa(row) + ": " + msg
}

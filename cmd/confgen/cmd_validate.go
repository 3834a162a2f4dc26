package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/imadrouass/network-config-generator/pkg/cli"
	"github.com/imadrouass/network-config-generator/pkg/plan"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the link plan and print a per-link summary",
	Long: `Loads the link plan and runs the same validation as generate:
required columns present, sites, LAGs and subnet set on every row, and
an area on every OSPF link. On success, prints one summary row per link.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		links, err := plan.Load(planFile)
		if err != nil {
			return err
		}

		table := cli.NewTable("#", "SITE A", "SITE B", "SUBNET", "PROTO", "AREA", "PORTS A", "PORTS B", "OPTIONS")
		for i := range links {
			l := &links[i]
			table.Row(
				fmt.Sprintf("%d", i+1),
				l.SiteA, l.SiteB,
				l.Subnet,
				l.Protocol.String(),
				cli.FormatArea(l),
				cli.FormatPorts(l.PortsA),
				cli.FormatPorts(l.PortsB),
				cli.FormatOptions(l),
			)
		}
		table.Flush()

		fmt.Printf("\n%s %d link(s) valid\n", cli.Green("OK:"), len(links))
		return nil
	},
}

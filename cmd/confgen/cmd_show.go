package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/imadrouass/network-config-generator/pkg/plan"
	"github.com/imadrouass/network-config-generator/pkg/render"
	"github.com/imadrouass/network-config-generator/pkg/util"
)

var showCmd = &cobra.Command{
	Use:   "show <siteA> <siteB> | <index>",
	Short: "Render one link's configuration to stdout",
	Long: `Renders a single link from the plan and prints the configuration
text instead of writing files. Select the link by its site pair (in
either order, case-insensitive) or by its 1-based position in the plan.

  confgen -p plan.xlsx show CORE1 CORE2
  confgen -p plan.xlsx show 3`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		links, err := plan.Load(planFile)
		if err != nil {
			return err
		}

		link, err := selectLink(links, args)
		if err != nil {
			return err
		}

		cfg, err := render.Link(link)
		if err != nil {
			return err
		}
		fmt.Println(cfg.Text())
		return nil
	},
}

func selectLink(links []plan.Link, args []string) (*plan.Link, error) {
	if len(args) == 1 {
		idx, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("%w: expected a link index or a site pair, got %q",
				util.ErrNotFound, args[0])
		}
		if idx < 1 || idx > len(links) {
			return nil, fmt.Errorf("%w: link %d (plan has %d link(s))",
				util.ErrNotFound, idx, len(links))
		}
		return &links[idx-1], nil
	}

	a, b := args[0], args[1]
	for i := range links {
		l := &links[i]
		if sitesMatch(l.SiteA, l.SiteB, a, b) {
			return l, nil
		}
	}
	return nil, fmt.Errorf("%w: no link between %s and %s", util.ErrNotFound, a, b)
}

func sitesMatch(siteA, siteB, a, b string) bool {
	return (strings.EqualFold(siteA, a) && strings.EqualFold(siteB, b)) ||
		(strings.EqualFold(siteA, b) && strings.EqualFold(siteB, a))
}

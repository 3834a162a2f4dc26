package render

import (
	"fmt"
	"strings"

	"github.com/imadrouass/network-config-generator/pkg/plan"
	"github.com/imadrouass/network-config-generator/pkg/util"
)

// Config is the rendered output for one link: both endpoint blocks under
// a shared link header, first party always before second party.
type Config struct {
	SiteA    string
	SiteB    string
	Lines    []string
	Warnings []string
}

// Text joins the rendered lines into the flat stream the output writer
// consumes.
func (c *Config) Text() string {
	return strings.Join(c.Lines, "\n")
}

// Link renders both endpoint stanzas for one record. A fatal rendering
// error (bad subnet, malformed BFD spec) is returned as-is; advisory
// warnings are collected on the Config.
func Link(l *plan.Link) (*Config, error) {
	cfg := &Config{
		SiteA: l.SiteA,
		SiteB: l.SiteB,
		Lines: []string{
			headerEquals,
			fmt.Sprintf("# Link %s <=> %s", l.SiteA, l.SiteB),
		},
	}

	endpoints := []Endpoint{
		{
			Role: RoleA,
			Site: l.SiteA, Lag: l.LagA,
			PeerSite: l.SiteB, PeerLag: l.LagB,
			Interface: l.InterfaceA,
			Ports:     l.PortsA, PeerPorts: l.PortsB,
		},
		{
			Role: RoleB,
			Site: l.SiteB, Lag: l.LagB,
			PeerSite: l.SiteA, PeerLag: l.LagA,
			Interface: l.InterfaceB,
			Ports:     l.PortsB, PeerPorts: l.PortsA,
		},
	}

	for _, ep := range endpoints {
		st, err := ComposeEndpoint(l, ep)
		if err != nil {
			return nil, fmt.Errorf("rendering %s side of %s <=> %s: %w", ep.Role, l.SiteA, l.SiteB, err)
		}
		cfg.Lines = append(cfg.Lines, st.Lines...)
		cfg.Warnings = append(cfg.Warnings, st.Warnings...)
	}
	return cfg, nil
}

// Plan renders every link in input order. The first fatal error aborts
// the run. Advisory warnings are logged per link and kept on each Config.
func Plan(links []plan.Link) ([]*Config, error) {
	configs := make([]*Config, 0, len(links))
	for i := range links {
		cfg, err := Link(&links[i])
		if err != nil {
			return nil, err
		}
		for _, w := range cfg.Warnings {
			util.WithLink(cfg.SiteA, cfg.SiteB).Warn(w)
		}
		configs = append(configs, cfg)
	}
	return configs, nil
}

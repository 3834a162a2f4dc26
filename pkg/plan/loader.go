package plan

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/imadrouass/network-config-generator/pkg/util"
)

// Spreadsheet column names, matching the Network_DataPlan workbook layout.
const (
	colSiteA        = "SiteA"
	colSiteB        = "SiteB"
	colLagA         = "LagA"
	colLagB         = "LagB"
	colSubnet       = "Subnet"
	colPortType     = "PortType"
	colRoutingProto = "RoutingProto"
	colArea         = "Area"
	colAuthKey      = "Auth_Key"
	colBFD          = "BFD"
	colMicroBFD     = "microBFD"
	colPIM          = "pim"
	colMPLS         = "mpls"
	colRSVP         = "rsvp"
	colLDP          = "ldp"
	colInterfaceA   = "InterfaceA"
	colInterfaceB   = "InterfaceB"
)

// Table is the header+rows intermediate form shared by the XLSX and CSV
// loaders. YAML plans skip it and unmarshal straight into links.
type Table struct {
	Columns []string
	Rows    []Row
}

// Row maps column name to trimmed cell value. Absent columns and blank
// cells both read as the empty string.
type Row map[string]string

// Get returns the trimmed value of a cell, or "" when absent.
func (r Row) Get(col string) string {
	return r[col]
}

// Load reads a plan file, validates it, and returns the link records.
// The format is chosen by extension: .xlsx, .csv, or .yml/.yaml.
// A validation failure aborts the whole run before any record renders.
func Load(path string) ([]Link, error) {
	var links []Link

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		var err error
		links, err = loadYAML(path)
		if err != nil {
			return nil, err
		}
	case ".xlsx", ".csv":
		table, err := LoadTable(path)
		if err != nil {
			return nil, err
		}
		if err := ValidateTable(table); err != nil {
			return nil, err
		}
		links = BuildLinks(table)
	default:
		return nil, fmt.Errorf("unsupported plan format %q (want .xlsx, .csv, .yml, or .yaml)", filepath.Ext(path))
	}

	if err := ValidateLinks(links); err != nil {
		return nil, err
	}
	util.Infof("Loaded %d link(s) from %s", len(links), path)
	return links, nil
}

// LoadTable reads an XLSX or CSV plan into a Table without validating it.
func LoadTable(path string) (*Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return loadXLSX(path)
	}
	return loadCSV(path)
}

func loadXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("plan workbook %s has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	return tableFromRecords(rows)
}

func loadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // rows may be shorter than the header
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing CSV plan: %w", err)
	}
	return tableFromRecords(records)
}

func tableFromRecords(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("plan is empty: no header row")
	}

	headers := make([]string, 0, len(records[0]))
	for _, h := range records[0] {
		headers = append(headers, strings.TrimSpace(h))
	}

	table := &Table{Columns: headers}
	for _, rec := range records[1:] {
		row := make(Row, len(headers))
		empty := true
		for i, h := range headers {
			if h == "" {
				continue
			}
			var val string
			if i < len(rec) {
				val = strings.TrimSpace(rec[i])
			}
			row[h] = val
			if val != "" {
				empty = false
			}
		}
		// Spreadsheets routinely carry trailing blank rows; skip them.
		if !empty {
			table.Rows = append(table.Rows, row)
		}
	}
	return table, nil
}

// BuildLinks converts table rows into link records. Column presence has
// already been checked by ValidateTable; per-record field dependencies are
// checked afterwards by ValidateLinks.
func BuildLinks(t *Table) []Link {
	slots := maxPortSlot(t.Columns)

	links := make([]Link, 0, len(t.Rows))
	for i, row := range t.Rows {
		raw := row.Get(colRoutingProto)
		if raw != "" && !KnownProtocol(raw) {
			util.Warnf("row %d: unrecognized routing protocol %q, rendering the isis variant", i+1, raw)
		}

		links = append(links, Link{
			SiteA:      row.Get(colSiteA),
			SiteB:      row.Get(colSiteB),
			LagA:       row.Get(colLagA),
			LagB:       row.Get(colLagB),
			Subnet:     row.Get(colSubnet),
			PortType:   row.Get(colPortType),
			Protocol:   ParseProtocol(raw),
			Area:       row.Get(colArea),
			AuthKey:    row.Get(colAuthKey),
			BFD:        row.Get(colBFD),
			MicroBFD:   yes(row.Get(colMicroBFD)),
			PIM:        yes(row.Get(colPIM)),
			MPLS:       yes(row.Get(colMPLS)),
			RSVP:       yes(row.Get(colRSVP)),
			LDP:        yes(row.Get(colLDP)),
			InterfaceA: row.Get(colInterfaceA),
			InterfaceB: row.Get(colInterfaceB),
			PortsA:     portSlots(row, "portA", slots),
			PortsB:     portSlots(row, "portB", slots),
		})
	}
	return links
}

// maxPortSlot finds the highest port slot index across portA{n}/portB{n}
// columns. Slot numbering starts at 1.
func maxPortSlot(columns []string) int {
	max := 0
	for _, col := range columns {
		var rest string
		switch {
		case strings.HasPrefix(col, "portA"):
			rest = col[len("portA"):]
		case strings.HasPrefix(col, "portB"):
			rest = col[len("portB"):]
		default:
			continue
		}
		if n, err := strconv.Atoi(rest); err == nil && n > max {
			max = n
		}
	}
	return max
}

// portSlots collects the slot-indexed port cells for one side. Blank and
// missing cells become "" so absent slots keep their position.
func portSlots(row Row, prefix string, slots int) []string {
	if slots == 0 {
		return nil
	}
	ports := make([]string, slots)
	for n := 1; n <= slots; n++ {
		ports[n-1] = row.Get(fmt.Sprintf("%s%d", prefix, n))
	}
	return ports
}

// yamlPlan is the structured link-plan format.
type yamlPlan struct {
	Links []yamlLink `yaml:"links"`
}

type yamlLink struct {
	SiteA        string     `yaml:"site_a"`
	SiteB        string     `yaml:"site_b"`
	LagA         flexString `yaml:"lag_a"`
	LagB         flexString `yaml:"lag_b"`
	Subnet       string     `yaml:"subnet"`
	PortType     string     `yaml:"port_type"`
	RoutingProto string     `yaml:"routing_proto"`
	Area         flexString `yaml:"area,omitempty"`
	AuthKey      string     `yaml:"auth_key,omitempty"`
	BFD          string     `yaml:"bfd,omitempty"`
	MicroBFD     bool       `yaml:"micro_bfd,omitempty"`
	PIM          bool       `yaml:"pim,omitempty"`
	MPLS         bool       `yaml:"mpls,omitempty"`
	RSVP         bool       `yaml:"rsvp,omitempty"`
	LDP          bool       `yaml:"ldp,omitempty"`
	InterfaceA   string     `yaml:"interface_a,omitempty"`
	InterfaceB   string     `yaml:"interface_b,omitempty"`
	PortsA       []string   `yaml:"ports_a,omitempty"`
	PortsB       []string   `yaml:"ports_b,omitempty"`
}

// flexString accepts bare YAML scalars (LAG ids and OSPF areas are usually
// written unquoted) and keeps their literal text.
type flexString string

func (s *flexString) UnmarshalYAML(value *yaml.Node) error {
	*s = flexString(strings.TrimSpace(value.Value))
	return nil
}

func loadYAML(path string) ([]Link, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan file: %w", err)
	}

	var p yamlPlan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing YAML plan: %w", err)
	}

	links := make([]Link, 0, len(p.Links))
	for i, yl := range p.Links {
		if yl.RoutingProto != "" && !KnownProtocol(yl.RoutingProto) {
			util.Warnf("link %d: unrecognized routing protocol %q, rendering the isis variant", i+1, yl.RoutingProto)
		}
		links = append(links, Link{
			SiteA:      strings.TrimSpace(yl.SiteA),
			SiteB:      strings.TrimSpace(yl.SiteB),
			LagA:       string(yl.LagA),
			LagB:       string(yl.LagB),
			Subnet:     strings.TrimSpace(yl.Subnet),
			PortType:   strings.TrimSpace(yl.PortType),
			Protocol:   ParseProtocol(yl.RoutingProto),
			Area:       string(yl.Area),
			AuthKey:    yl.AuthKey,
			BFD:        strings.TrimSpace(yl.BFD),
			MicroBFD:   yl.MicroBFD,
			PIM:        yl.PIM,
			MPLS:       yl.MPLS,
			RSVP:       yl.RSVP,
			LDP:        yl.LDP,
			InterfaceA: strings.TrimSpace(yl.InterfaceA),
			InterfaceB: strings.TrimSpace(yl.InterfaceB),
			PortsA:     yl.PortsA,
			PortsB:     yl.PortsB,
		})
	}
	return links, nil
}

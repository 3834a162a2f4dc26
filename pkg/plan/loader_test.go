package plan

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const testCSVHeader = "SiteA,SiteB,LagA,LagB,Subnet,PortType,RoutingProto,Area,Auth_Key,BFD,microBFD,pim,mpls,rsvp,ldp,InterfaceA,InterfaceB,portA1,portA2,portA3,portB1,portB2,portB3"

func writePlanCSV(t *testing.T, lines ...string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.csv")
	content := strings.Join(append([]string{testCSVHeader}, lines...), "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_CSV(t *testing.T) {
	path := writePlanCSV(t,
		`CORE1,CORE2,1,2,10.0.0.0/30,GE,ospf,0.0.0.0,secret,1000/1000/3,yes,yes,no,no,yes,,,1/1/1,,1/1/3,2/1/1,,2/1/3`,
	)

	links, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(links) != 1 {
		t.Fatalf("link count = %d, want 1", len(links))
	}

	l := links[0]
	if l.SiteA != "CORE1" || l.SiteB != "CORE2" {
		t.Errorf("sites = %q/%q", l.SiteA, l.SiteB)
	}
	if l.LagA != "1" || l.LagB != "2" {
		t.Errorf("lags = %q/%q", l.LagA, l.LagB)
	}
	if l.Protocol != ProtocolOSPF {
		t.Errorf("protocol = %v, want OSPF", l.Protocol)
	}
	if l.Area != "0.0.0.0" {
		t.Errorf("area = %q", l.Area)
	}
	if l.AuthKey != "secret" || l.BFD != "1000/1000/3" {
		t.Errorf("auth/bfd = %q/%q", l.AuthKey, l.BFD)
	}
	if !l.MicroBFD || !l.PIM || l.MPLS || l.RSVP || !l.LDP {
		t.Errorf("flags = micro:%v pim:%v mpls:%v rsvp:%v ldp:%v",
			l.MicroBFD, l.PIM, l.MPLS, l.RSVP, l.LDP)
	}
	// Slot 2 is blank but indexed: it must keep its position as "".
	if !reflect.DeepEqual(l.PortsA, []string{"1/1/1", "", "1/1/3"}) {
		t.Errorf("PortsA = %v", l.PortsA)
	}
	if !reflect.DeepEqual(l.PortsB, []string{"2/1/1", "", "2/1/3"}) {
		t.Errorf("PortsB = %v", l.PortsB)
	}
}

func TestLoad_CSVSkipsBlankRows(t *testing.T) {
	path := writePlanCSV(t,
		`CORE1,CORE2,1,2,10.0.0.0/30,GE,isis,,,,,,,,,,,1/1/1,,,2/1/1,,`,
		`,,,,,,,,,,,,,,,,,,,,,,`,
	)

	links, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(links) != 1 {
		t.Errorf("link count = %d, want 1 (blank row skipped)", len(links))
	}
}

func TestLoad_MissingColumn(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.csv")
	// No Subnet column.
	content := "SiteA,SiteB,LagA,LagB,PortType,RoutingProto,Area\n" +
		"CORE1,CORE2,1,2,GE,isis,\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for missing required column")
	}
	if !strings.Contains(err.Error(), "Subnet") {
		t.Errorf("error should name the missing column: %v", err)
	}
}

func TestLoad_OSPFMissingArea(t *testing.T) {
	path := writePlanCSV(t,
		`CORE1,CORE2,1,2,10.0.0.0/30,GE,ospf,,,,,,,,,,,1/1/1,,,2/1/1,,`,
	)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for OSPF link without area")
	}
	if !strings.Contains(err.Error(), "Area") {
		t.Errorf("error should mention the Area field: %v", err)
	}
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	if _, err := Load("/nonexistent/plan.csv"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.yml")
	content := `
links:
  - site_a: EDGE1
    site_b: EDGE2
    lag_a: 7
    lag_b: 8
    subnet: 192.168.10.0/31
    port_type: 10GE
    routing_proto: isis
    auth_key: hush
    bfd: 500/500/3
    micro_bfd: true
    mpls: true
    rsvp: true
    ports_a: ["1/2/1", "", "1/2/3"]
    ports_b: ["3/2/1", "", "3/2/3"]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	links, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(links) != 1 {
		t.Fatalf("link count = %d, want 1", len(links))
	}

	l := links[0]
	if l.LagA != "7" || l.LagB != "8" {
		t.Errorf("lags = %q/%q, want 7/8 (bare YAML scalars)", l.LagA, l.LagB)
	}
	if l.Protocol != ProtocolISIS {
		t.Errorf("protocol = %v, want ISIS", l.Protocol)
	}
	if !l.MicroBFD || !l.MPLS || !l.RSVP || l.PIM || l.LDP {
		t.Errorf("flags wrong: %+v", l)
	}
	if !reflect.DeepEqual(l.PortsA, []string{"1/2/1", "", "1/2/3"}) {
		t.Errorf("PortsA = %v", l.PortsA)
	}
}

func TestLoad_YAMLInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.yml")
	if err := os.WriteFile(path, []byte("links: {not: [a, list"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestMaxPortSlot(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		want    int
	}{
		{"none", []string{"SiteA", "SiteB"}, 0},
		{"one pair", []string{"portA1", "portB1"}, 1},
		{"asymmetric", []string{"portA1", "portA2", "portB1"}, 2},
		{"non-numeric suffix ignored", []string{"portAx", "portA3"}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := maxPortSlot(tt.columns); got != tt.want {
				t.Errorf("maxPortSlot(%v) = %d, want %d", tt.columns, got, tt.want)
			}
		})
	}
}

func TestBuildLinks_ShortRow(t *testing.T) {
	// Rows shorter than the header must not panic; missing cells read "".
	table := &Table{
		Columns: []string{colSiteA, colSiteB, colLagA, colLagB, colSubnet, colPortType, colRoutingProto, colArea, "portA1", "portB1"},
		Rows: []Row{
			{colSiteA: "A", colSiteB: "B", colLagA: "1", colLagB: "2", colSubnet: "10.0.0.0/30", colPortType: "GE", colRoutingProto: "isis"},
		},
	}
	links := BuildLinks(table)
	if len(links) != 1 {
		t.Fatalf("link count = %d", len(links))
	}
	if !reflect.DeepEqual(links[0].PortsA, []string{""}) {
		t.Errorf("PortsA = %v, want single empty slot", links[0].PortsA)
	}
}

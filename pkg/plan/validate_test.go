package plan

import (
	"errors"
	"strings"
	"testing"

	"github.com/imadrouass/network-config-generator/pkg/util"
)

func validLink() Link {
	return Link{
		SiteA:    "CORE1",
		SiteB:    "CORE2",
		LagA:     "1",
		LagB:     "2",
		Subnet:   "10.0.0.0/30",
		PortType: "GE",
		Protocol: ProtocolISIS,
		PortsA:   []string{"1/1/1"},
		PortsB:   []string{"2/1/1"},
	}
}

func TestValidateTable(t *testing.T) {
	t.Run("all required columns", func(t *testing.T) {
		table := &Table{Columns: append([]string{}, requiredColumns...)}
		if err := ValidateTable(table); err != nil {
			t.Errorf("ValidateTable() = %v, want nil", err)
		}
	})

	t.Run("missing columns", func(t *testing.T) {
		table := &Table{Columns: []string{colSiteA, colSiteB}}
		err := ValidateTable(table)
		if err == nil {
			t.Fatal("expected error")
		}
		if !errors.Is(err, util.ErrValidationFailed) {
			t.Error("should unwrap to ErrValidationFailed")
		}
		for _, col := range []string{colLagA, colLagB, colSubnet, colPortType, colRoutingProto, colArea} {
			if !strings.Contains(err.Error(), col) {
				t.Errorf("error should name missing column %s: %v", col, err)
			}
		}
	})
}

func TestValidateLinks(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Link)
		wantErr string
	}{
		{
			name:   "valid isis link",
			mutate: func(l *Link) {},
		},
		{
			name: "valid ospf link",
			mutate: func(l *Link) {
				l.Protocol = ProtocolOSPF
				l.Area = "0.0.0.0"
			},
		},
		{
			name:    "missing site A",
			mutate:  func(l *Link) { l.SiteA = "" },
			wantErr: "SiteA",
		},
		{
			name:    "missing site B",
			mutate:  func(l *Link) { l.SiteB = "" },
			wantErr: "SiteB",
		},
		{
			name:    "missing lag",
			mutate:  func(l *Link) { l.LagB = "" },
			wantErr: "LagB",
		},
		{
			name:    "missing subnet",
			mutate:  func(l *Link) { l.Subnet = "" },
			wantErr: "Subnet",
		},
		{
			name:    "ospf without area",
			mutate:  func(l *Link) { l.Protocol = ProtocolOSPF },
			wantErr: "Area is required for OSPF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := validLink()
			tt.mutate(&l)
			err := ValidateLinks([]Link{l})
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("ValidateLinks() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateLinks_ISISWithoutArea(t *testing.T) {
	// Area is only required for OSPF; ISIS links never need one.
	l := validLink()
	l.Area = ""
	if err := ValidateLinks([]Link{l}); err != nil {
		t.Errorf("ValidateLinks() = %v, want nil", err)
	}
}

func TestValidateLinks_Empty(t *testing.T) {
	if err := ValidateLinks(nil); err == nil {
		t.Fatal("expected error for empty plan")
	}
}

func TestValidateLinks_ReportsAllRows(t *testing.T) {
	bad1 := validLink()
	bad1.SiteA = ""
	bad2 := validLink()
	bad2.Subnet = ""

	err := ValidateLinks([]Link{bad1, bad2})
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "row 1") || !strings.Contains(msg, "row 2") {
		t.Errorf("both rows should be reported: %v", msg)
	}
}

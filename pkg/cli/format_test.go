package cli

import (
	"testing"

	"github.com/imadrouass/network-config-generator/pkg/plan"
)

func TestFormatPorts(t *testing.T) {
	tests := []struct {
		name  string
		ports []string
		want  string
	}{
		{"all present", []string{"1/1/1", "1/1/2"}, "1/1/1,1/1/2"},
		{"absent slot dropped", []string{"1/1/1", "", "1/1/3"}, "1/1/1,1/1/3"},
		{"all absent", []string{"", ""}, "-"},
		{"nil", nil, "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPorts(tt.ports); got != tt.want {
				t.Errorf("FormatPorts(%v) = %q, want %q", tt.ports, got, tt.want)
			}
		})
	}
}

func TestFormatOptions(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		l := &plan.Link{}
		if got := FormatOptions(l); got != "-" {
			t.Errorf("FormatOptions = %q, want -", got)
		}
	})

	t.Run("everything", func(t *testing.T) {
		l := &plan.Link{
			AuthKey: "k", BFD: "1000/1000/3", MicroBFD: true,
			PIM: true, MPLS: true, RSVP: true, LDP: true,
		}
		want := "auth,bfd,micro-bfd,pim,mpls,rsvp,ldp"
		if got := FormatOptions(l); got != want {
			t.Errorf("FormatOptions = %q, want %q", got, want)
		}
	})
}

func TestFormatArea(t *testing.T) {
	ospf := &plan.Link{Protocol: plan.ProtocolOSPF, Area: "0.0.0.0"}
	if got := FormatArea(ospf); got != "0.0.0.0" {
		t.Errorf("FormatArea ospf = %q", got)
	}
	isis := &plan.Link{Protocol: plan.ProtocolISIS, Area: "0.0.0.0"}
	if got := FormatArea(isis); got != "-" {
		t.Errorf("FormatArea isis = %q, want -", got)
	}
}

package plan

import "testing"

func TestParseProtocol(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Protocol
	}{
		{"lowercase ospf", "ospf", ProtocolOSPF},
		{"uppercase OSPF", "OSPF", ProtocolOSPF},
		{"mixed case", "Ospf", ProtocolOSPF},
		{"padded", "  ospf ", ProtocolOSPF},
		{"isis", "isis", ProtocolISIS},
		{"uppercase ISIS", "ISIS", ProtocolISIS},
		// Anything that is not ospf falls through to isis, including typos.
		{"unknown protocol", "EIGRP", ProtocolISIS},
		{"empty", "", ProtocolISIS},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseProtocol(tt.raw); got != tt.want {
				t.Errorf("ParseProtocol(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestKnownProtocol(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"ospf", true},
		{"OSPF", true},
		{"isis", true},
		{"ISIS", true},
		{"EIGRP", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := KnownProtocol(tt.raw); got != tt.want {
			t.Errorf("KnownProtocol(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestProtocolString(t *testing.T) {
	if ProtocolOSPF.String() != "ospf" {
		t.Errorf("ProtocolOSPF.String() = %q", ProtocolOSPF.String())
	}
	if ProtocolISIS.String() != "isis" {
		t.Errorf("ProtocolISIS.String() = %q", ProtocolISIS.String())
	}
}

func TestYes(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"yes", true},
		{"Yes", true},
		{"YES", true},
		{" yes ", true},
		{"no", false},
		{"", false},
		{"y", false},
	}

	for _, tt := range tests {
		if got := yes(tt.s); got != tt.want {
			t.Errorf("yes(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

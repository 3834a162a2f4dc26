package render

import (
	"reflect"
	"strings"
	"testing"
)

func TestAuxStanza(t *testing.T) {
	for _, proto := range []string{"pim", "mpls", "rsvp"} {
		t.Run(proto, func(t *testing.T) {
			got := AuxStanza(proto, "To_CORE2_LAG2")
			want := []string{
				"        " + proto,
				`            interface "To_CORE2_LAG2"`,
				"                no shutdown",
				"            exit",
				"        exit",
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("%s stanza mismatch:\ngot:\n%s\nwant:\n%s",
					proto, strings.Join(got, "\n"), strings.Join(want, "\n"))
			}
		})
	}
}

func TestLDPStanza(t *testing.T) {
	got := LDPStanza("To_CORE2_LAG2")
	want := []string{
		"        ldp",
		"            interface-parameters",
		`                interface "To_CORE2_LAG2"`,
		"                    bfd-enable ipv4",
		"                    ipv4",
		"                        no shutdown",
		"                    exit",
		"                    no shutdown",
		"                exit",
		"            exit",
		"        exit",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ldp stanza mismatch:\ngot:\n%s\nwant:\n%s",
			strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}

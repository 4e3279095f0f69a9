package rdata

import (
	"bytes"
	"testing"

	"github.com/haukened/rr-codec/internal/dns/domain"
)

func TestEncode_SRV(t *testing.T) {
	got, err := Encode(domain.RRTypeSRV, "10 20 80 example.com.", "")
	if err != nil {
		t.Fatalf("Encode() unexpected error: %v", err)
	}
	want := []byte{0, 10, 0, 20, 0, 80,
		7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0}
	if !bytes.Equal(got, want) {
		t.Errorf("Encode() = %v, want %v", got, want)
	}
}

func TestEncode_SVCBAndHTTPS(t *testing.T) {
	for _, rrType := range []domain.RRType{domain.RRTypeSVCB, domain.RRTypeHTTPS} {
		t.Run(rrType.String(), func(t *testing.T) {
			got, err := Encode(rrType, "1 example.com. alpn=h3", "")
			if err != nil {
				t.Fatalf("Encode() unexpected error: %v", err)
			}
			want := []byte{0, 1,
				7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0,
				0, 1, 0, 2, 'h', '3'}
			if !bytes.Equal(got, want) {
				t.Errorf("Encode() = %v, want %v", got, want)
			}
		})
	}
}

func TestEncode_SimpleTypes(t *testing.T) {
	cases := []struct {
		name   string
		rrType domain.RRType
		data   string
		want   []byte
	}{
		{"A", domain.RRTypeA, "192.168.0.1", []byte{192, 168, 0, 1}},
		{"CNAME", domain.RRTypeCNAME, "www.example.com.", []byte{3, 'w', 'w', 'w', 7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0}},
		{"MX", domain.RRTypeMX, "10 mx.example.com.", []byte{0, 10, 2, 'm', 'x', 7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0}},
		{"TXT", domain.RRTypeTXT, "hello", []byte{5, 'h', 'e', 'l', 'l', 'o'}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Encode(tc.rrType, tc.data, "")
			if err != nil {
				t.Fatalf("Encode() unexpected error: %v", err)
			}
			if !bytes.Equal(got, tc.want) {
				t.Errorf("Encode() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestEncode_AAAA(t *testing.T) {
	got, err := Encode(domain.RRTypeAAAA, "2001:db8::1", "")
	if err != nil {
		t.Fatalf("Encode() unexpected error: %v", err)
	}
	if len(got) != 16 || got[0] != 0x20 || got[1] != 0x01 || got[15] != 1 {
		t.Errorf("Encode() = %v, want 16-byte 2001:db8::1", got)
	}
}

func TestEncode_Invalid(t *testing.T) {
	cases := []struct {
		name   string
		rrType domain.RRType
		data   string
	}{
		{"A with v6", domain.RRTypeA, "2001:db8::1"},
		{"AAAA with v4", domain.RRTypeAAAA, "192.168.0.1"},
		{"SRV too few fields", domain.RRTypeSRV, "10 20 80"},
		{"SVCB bad priority", domain.RRTypeSVCB, "boom example.com. alpn=h2"},
		{"SOA too few fields", domain.RRTypeSOA, "ns1.example.com. hostmaster.example.com. 1 7200"},
		{"CAA missing value", domain.RRTypeCAA, "0 issue"},
		{"not implemented", domain.RRType(999), "whatever"},
		{"empty TXT", domain.RRTypeTXT, " ; ; "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Encode(tc.rrType, tc.data, ""); err == nil {
				t.Errorf("Encode(%s, %q) expected error, got nil", tc.rrType, tc.data)
			}
		})
	}
}

func TestEncode_RelativeNamesUseOrigin(t *testing.T) {
	got, err := Encode(domain.RRTypeSRV, "0 5 5060 sip", "example.com.")
	if err != nil {
		t.Fatalf("Encode() unexpected error: %v", err)
	}
	want := []byte{0, 0, 0, 5, 19, 196, // 5060 = 0x13c4
		3, 's', 'i', 'p', 7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0}
	if !bytes.Equal(got, want) {
		t.Errorf("Encode() = %v, want %v", got, want)
	}
}

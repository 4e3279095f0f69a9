package rdata

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/haukened/rr-codec/internal/dns/wire"
)

func TestSRV_BinaryRoundTrip(t *testing.T) {
	cases := []SRV{
		{Priority: 10, Weight: 20, Port: 80, Target: "example.com"},
		{Priority: 0, Weight: 0, Port: 443, Target: "_sip._tcp.example.com"},
		{Priority: 65535, Weight: 65535, Port: 65535, Target: "a.b"},
	}
	for _, srv := range cases {
		t.Run(srv.Target, func(t *testing.T) {
			e := wire.NewEncoder()
			if err := srv.Emit(e); err != nil {
				t.Fatalf("Emit() unexpected error: %v", err)
			}
			got, err := ReadSRV(wire.NewDecoder(e.Bytes()))
			if err != nil {
				t.Fatalf("ReadSRV() unexpected error: %v", err)
			}
			if got != srv {
				t.Errorf("round trip = %+v, want %+v", got, srv)
			}
		})
	}
}

func TestSRV_WireLayout(t *testing.T) {
	srv := SRV{Priority: 10, Weight: 20, Port: 80, Target: "example.com"}
	e := wire.NewEncoder()
	if err := srv.Emit(e); err != nil {
		t.Fatalf("Emit() unexpected error: %v", err)
	}
	want := []byte{0, 10, 0, 20, 0, 80,
		7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0}
	if !bytes.Equal(e.Bytes(), want) {
		t.Errorf("Emit() = %v, want %v", e.Bytes(), want)
	}
}

func TestSRV_TextRoundTrip(t *testing.T) {
	srv := SRV{Priority: 0, Weight: 1, Port: 9, Target: "old-slow-box.example.com"}
	got, err := ParseSRV(strings.Fields(srv.String()), "")
	if err != nil {
		t.Fatalf("ParseSRV() unexpected error: %v", err)
	}
	if got != srv {
		t.Errorf("parse(format(v)) = %+v, want %+v", got, srv)
	}
}

func TestSRV_ReadTruncated(t *testing.T) {
	cases := []struct {
		name string
		buf  []byte
	}{
		{"empty", nil},
		{"priority only", []byte{0, 1}},
		{"missing target", []byte{0, 1, 0, 2, 0, 3}},
		{"target cut short", []byte{0, 1, 0, 2, 0, 3, 7, 'e', 'x'}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadSRV(wire.NewDecoder(tc.buf))
			if !errors.Is(err, wire.ErrBufferUnderflow) {
				t.Errorf("ReadSRV() error = %v, want ErrBufferUnderflow", err)
			}
		})
	}
}

func TestParseSRV_MissingTokens(t *testing.T) {
	cases := []struct {
		input string
		field string
	}{
		{"", "priority"},
		{"1", "weight"},
		{"1 2", "port"},
		{"1 2 3", "target"},
	}
	for _, tc := range cases {
		t.Run("input="+tc.input, func(t *testing.T) {
			_, err := ParseSRV(strings.Fields(tc.input), "")
			var missing *MissingTokenError
			if !errors.As(err, &missing) {
				t.Fatalf("ParseSRV(%q) error = %v, want MissingTokenError", tc.input, err)
			}
			if missing.Field != tc.field {
				t.Errorf("missing field = %q, want %q", missing.Field, tc.field)
			}
		})
	}
}

func TestParseSRV_MalformedNumbers(t *testing.T) {
	inputs := []string{
		"abc 2 3 example.com.",
		"1 xyz 3 example.com.",
		"1 2 port example.com.",
		"-1 2 3 example.com.",
		"1 65536 3 example.com.",
	}
	for _, input := range inputs {
		_, err := ParseSRV(strings.Fields(input), "")
		if !errors.Is(err, ErrMalformedNumber) {
			t.Errorf("ParseSRV(%q) error = %v, want ErrMalformedNumber", input, err)
		}
	}
}

func TestParseSRV_RelativeTarget(t *testing.T) {
	srv, err := ParseSRV([]string{"0", "5", "5060", "sip"}, "example.com.")
	if err != nil {
		t.Fatalf("ParseSRV() unexpected error: %v", err)
	}
	if srv.Target != "sip.example.com" {
		t.Errorf("Target = %q, want \"sip.example.com\"", srv.Target)
	}
}

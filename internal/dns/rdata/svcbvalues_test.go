package rdata

import (
	"reflect"
	"testing"
)

func TestParseKeyValues(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    []KeyValue
		wantErr bool
	}{
		{"empty", "", nil, false},
		{"single", "alpn=h2", []KeyValue{{Key: SVCBKeyAlpn, Value: "h2"}}, false},
		{"multiple", "alpn=h2,port=8443", []KeyValue{
			{Key: SVCBKeyAlpn, Value: "h2"},
			{Key: SVCBKeyPort, Value: "8443"},
		}, false},
		{"quoted value", `echconfig="dG9rZW4="`, []KeyValue{
			{Key: SVCBKeyECHConfig, Value: "dG9rZW4="},
		}, false},
		{"empty value", "no-default-alpn=", []KeyValue{
			{Key: SVCBKeyNoDefaultAlpn, Value: ""},
		}, false},
		{"numeric key", "key667=hello", []KeyValue{
			{Key: SVCBKey(667), Value: "hello"},
		}, false},
		{"order preserved", "port=1,alpn=h2,port=2", []KeyValue{
			{Key: SVCBKeyPort, Value: "1"},
			{Key: SVCBKeyAlpn, Value: "h2"},
			{Key: SVCBKeyPort, Value: "2"},
		}, false},
		{"missing equals", "alpn", nil, true},
		{"unknown key name", "frob=1", nil, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseKeyValues(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseKeyValues(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("ParseKeyValues(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestKeyValue_String(t *testing.T) {
	kv := KeyValue{Key: SVCBKeyNoDefaultAlpn, Value: ""}
	if got := kv.String(); got != "no-default-alpn=" {
		t.Errorf("String() = %q, want \"no-default-alpn=\"", got)
	}
	// unregistered keys display with an empty name
	kv = KeyValue{Key: SVCBKey(667), Value: "x"}
	if got := kv.String(); got != "=x" {
		t.Errorf("String() = %q, want \"=x\"", got)
	}
}

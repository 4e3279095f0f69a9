package utils

import "testing"

func TestCanonicalDNSName(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Example.COM.", "example.com"},
		{"  example.com  ", "example.com"},
		{"example.com...", "example.com"},
		{"_dns._tcp.Example.com.", "_dns._tcp.example.com"},
		{"", ""},
		{".", ""},
	}
	for _, tc := range cases {
		if got := CanonicalDNSName(tc.input); got != tc.want {
			t.Errorf("CanonicalDNSName(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

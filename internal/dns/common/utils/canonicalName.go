package utils

import "strings"

// CanonicalDNSName normalizes a name for use as a lookup or storage key:
// surrounding whitespace trimmed, lowercased, trailing root dots removed so
// "WWW.Example.COM." and "www.example.com" compare equal.
func CanonicalDNSName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ToLower(name)
	for strings.HasSuffix(name, ".") {
		name = strings.TrimSuffix(name, ".")
	}
	return name
}

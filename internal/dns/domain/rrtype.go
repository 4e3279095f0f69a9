package domain

import (
	"fmt"
	"strings"
)

// RRType represents a DNS resource record type (e.g. A, SRV, HTTPS).
// See IANA DNS Parameters for assigned codes.
type RRType uint16

// DNS Resource Record Type constants
const (
	RRTypeA     RRType = 1   // A - IPv4 address
	RRTypeNS    RRType = 2   // NS - Name server
	RRTypeCNAME RRType = 5   // CNAME - Canonical name
	RRTypeSOA   RRType = 6   // SOA - Start of authority
	RRTypePTR   RRType = 12  // PTR - Pointer
	RRTypeMX    RRType = 15  // MX - Mail exchange
	RRTypeTXT   RRType = 16  // TXT - Text
	RRTypeAAAA  RRType = 28  // AAAA - IPv6 address
	RRTypeSRV   RRType = 33  // SRV - Service locator
	RRTypeSVCB  RRType = 64  // SVCB - Service binding
	RRTypeHTTPS RRType = 65  // HTTPS - HTTPS service binding
	RRTypeCAA   RRType = 257 // CAA - Certificate authority authorization
)

var rrTypeNames = map[RRType]string{
	RRTypeA:     "A",
	RRTypeNS:    "NS",
	RRTypeCNAME: "CNAME",
	RRTypeSOA:   "SOA",
	RRTypePTR:   "PTR",
	RRTypeMX:    "MX",
	RRTypeTXT:   "TXT",
	RRTypeAAAA:  "AAAA",
	RRTypeSRV:   "SRV",
	RRTypeSVCB:  "SVCB",
	RRTypeHTTPS: "HTTPS",
	RRTypeCAA:   "CAA",
}

var rrTypeValues = func() map[string]RRType {
	m := make(map[string]RRType, len(rrTypeNames))
	for t, s := range rrTypeNames {
		m[s] = t
	}
	return m
}()

// IsValid returns true if the RRType is one of the supported types.
func (t RRType) IsValid() bool {
	_, ok := rrTypeNames[t]
	return ok
}

// String returns the textual representation of the RRType. Unknown types use
// the RFC 3597 "TYPE<n>" form.
func (t RRType) String() string {
	if s, ok := rrTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("TYPE%d", uint16(t))
}

// RRTypeFromString converts a record type string to its corresponding RRType
// value, ignoring case. Unknown strings yield 0.
func RRTypeFromString(s string) RRType {
	return rrTypeValues[strings.ToUpper(s)]
}

package domain

// RRClass represents a DNS class (usually IN for Internet).
type RRClass uint16

// DNS Resource Record Class constants
const (
	RRClassIN RRClass = 1 // IN - Internet
	RRClassCH RRClass = 3 // CH - Chaos
	RRClassHS RRClass = 4 // HS - Hesiod
)

var rrClassNames = map[RRClass]string{
	RRClassIN: "IN",
	RRClassCH: "CH",
	RRClassHS: "HS",
}

// IsValid returns true if the RRClass is one of the supported classes.
func (c RRClass) IsValid() bool {
	_, ok := rrClassNames[c]
	return ok
}

// String returns the textual representation of the RRClass.
func (c RRClass) String() string {
	if s, ok := rrClassNames[c]; ok {
		return s
	}
	return "UNKNOWN"
}

// RRClassFromString converts a class string to its RRClass value. Unknown
// strings yield 0.
func RRClassFromString(s string) RRClass {
	for c, name := range rrClassNames {
		if name == s {
			return c
		}
	}
	return 0
}

package rdata

import (
	"fmt"
	"strings"

	"github.com/haukened/rr-codec/internal/dns/names"
	"github.com/haukened/rr-codec/internal/dns/wire"
)

// soaFields are the five 32-bit fields following mname and rname.
var soaFields = [5]string{"serial", "refresh", "retry", "expire", "minimum"}

// encodeSOAData encodes an SOA record string into its binary representation.
func encodeSOAData(data, origin string) ([]byte, error) {
	// data = "mname rname serial refresh retry expire minimum"
	parts := strings.Fields(data)
	if len(parts) < 1 {
		return nil, fmt.Errorf("invalid SOA record %q: %w", data, &MissingTokenError{Field: "mname"})
	}
	mname, err := names.Parse(parts[0], origin)
	if err != nil {
		return nil, fmt.Errorf("invalid SOA mname %q: %w", parts[0], err)
	}
	if len(parts) < 2 {
		return nil, fmt.Errorf("invalid SOA record %q: %w", data, &MissingTokenError{Field: "rname"})
	}
	// rname is the zone contact mailbox in name form ("hostmaster.example.com"
	// for hostmaster@example.com); it encodes like any other name
	rname, err := names.Parse(parts[1], origin)
	if err != nil {
		return nil, fmt.Errorf("invalid SOA rname %q: %w", parts[1], err)
	}

	e := wire.NewEncoder()
	if err := names.Emit(e, mname, false); err != nil {
		return nil, err
	}
	if err := names.Emit(e, rname, false); err != nil {
		return nil, err
	}
	for i, field := range soaFields {
		v, err := u32Token(parts, i+2, field)
		if err != nil {
			return nil, fmt.Errorf("invalid SOA record %q: %w", data, err)
		}
		if err := e.EmitUint32(v); err != nil {
			return nil, err
		}
	}
	return e.Bytes(), nil
}

// decodeSOAData decodes SOA record data into its presentation form.
func decodeSOAData(b []byte) (string, error) {
	d := wire.NewDecoder(b)
	mname, err := names.Read(d)
	if err != nil {
		return "", fmt.Errorf("soa mname: %w", err)
	}
	rname, err := names.Read(d)
	if err != nil {
		return "", fmt.Errorf("soa rname: %w", err)
	}
	var u32 [5]uint32
	for i, field := range soaFields {
		if u32[i], err = d.ReadUint32(); err != nil {
			return "", fmt.Errorf("soa %s: %w", field, err)
		}
	}
	return fmt.Sprintf("%s %s %d %d %d %d %d", mname, rname, u32[0], u32[1], u32[2], u32[3], u32[4]), nil
}

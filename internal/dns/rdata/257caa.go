package rdata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/haukened/rr-codec/internal/dns/wire"
)

// encodeCAAData encodes a CAA record string into its binary representation.
func encodeCAAData(data string) ([]byte, error) {
	// data = "0 issue \"letsencrypt.org\""
	parts := strings.Fields(data)
	if len(parts) < 1 {
		return nil, fmt.Errorf("invalid CAA record %q: %w", data, &MissingTokenError{Field: "flag"})
	}
	flag, err := strconv.ParseUint(parts[0], 10, 8)
	if err != nil {
		return nil, fmt.Errorf("invalid CAA flag %q: %w", parts[0], ErrMalformedNumber)
	}
	if len(parts) < 2 {
		return nil, fmt.Errorf("invalid CAA record %q: %w", data, &MissingTokenError{Field: "tag"})
	}
	tag := parts[1]
	if len(tag) > 255 {
		return nil, fmt.Errorf("CAA tag too long: %d bytes", len(tag))
	}
	if len(parts) < 3 {
		return nil, fmt.Errorf("invalid CAA record %q: %w", data, &MissingTokenError{Field: "value"})
	}
	// value may contain spaces; rejoin and strip surrounding quotes
	value := strings.Trim(strings.Join(parts[2:], " "), "\"")
	if len(value) > 255 {
		return nil, fmt.Errorf("CAA value too long: %d bytes", len(value))
	}

	e := wire.NewEncoder()
	if err := e.EmitUint8(uint8(flag)); err != nil {
		return nil, err
	}
	if err := e.EmitUint8(uint8(len(tag))); err != nil {
		return nil, err
	}
	if err := e.EmitBytes([]byte(tag)); err != nil {
		return nil, err
	}
	if err := e.EmitBytes([]byte(value)); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

// decodeCAAData decodes CAA record data into its presentation form. The value
// is opaque and passes through unchanged: for issue/issuewild it is a CA
// domain, for iodef it can be a mailto: or https: URI, so no name
// canonicalization applies.
func decodeCAAData(b []byte) (string, error) {
	d := wire.NewDecoder(b)
	flag, err := d.ReadUint8()
	if err != nil {
		return "", fmt.Errorf("caa flag: %w", err)
	}
	tagLen, err := d.ReadUint8()
	if err != nil {
		return "", fmt.Errorf("caa tag length: %w", err)
	}
	tag, err := d.ReadBytes(int(tagLen))
	if err != nil {
		return "", fmt.Errorf("caa tag: %w", err)
	}
	value, err := d.ReadBytes(d.Remaining())
	if err != nil {
		return "", fmt.Errorf("caa value: %w", err)
	}
	return fmt.Sprintf("%d %s \"%s\"", flag, tag, value), nil
}

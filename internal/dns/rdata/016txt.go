package rdata

import (
	"fmt"
	"strings"

	"github.com/haukened/rr-codec/internal/dns/wire"
)

// encodeTXTData encodes a TXT record string into its binary representation.
// Multiple character-strings are separated by semicolons (RFC 1035 section
// 3.3.14 limits each to 255 bytes).
func encodeTXTData(data string) ([]byte, error) {
	e := wire.NewEncoder()
	segments := 0
	for _, segment := range strings.Split(data, ";") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		if len(segment) > 255 {
			return nil, fmt.Errorf("TXT segment too long: %d bytes", len(segment))
		}
		if err := e.EmitUint8(uint8(len(segment))); err != nil {
			return nil, err
		}
		if err := e.EmitBytes([]byte(segment)); err != nil {
			return nil, err
		}
		segments++
	}
	if segments == 0 {
		return nil, fmt.Errorf("TXT record must contain at least one segment")
	}
	return e.Bytes(), nil
}

// decodeTXTData decodes TXT record data, joining character-strings with
// semicolons.
func decodeTXTData(b []byte) (string, error) {
	d := wire.NewDecoder(b)
	var segments []string
	for d.Remaining() > 0 {
		length, err := d.ReadUint8()
		if err != nil {
			return "", fmt.Errorf("txt segment length: %w", err)
		}
		segment, err := d.ReadBytes(int(length))
		if err != nil {
			return "", fmt.Errorf("txt segment: %w", err)
		}
		segments = append(segments, string(segment))
	}
	if len(segments) == 0 {
		return "", fmt.Errorf("empty TXT record data")
	}
	return strings.Join(segments, ";"), nil
}

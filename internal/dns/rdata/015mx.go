package rdata

import (
	"fmt"
	"strings"

	"github.com/haukened/rr-codec/internal/dns/names"
	"github.com/haukened/rr-codec/internal/dns/wire"
)

// encodeMXData encodes an MX record string into its binary representation.
func encodeMXData(data, origin string) ([]byte, error) {
	// data = "10 mail.example.com."
	parts := strings.Fields(data)
	pref, err := u16Token(parts, 0, "preference")
	if err != nil {
		return nil, fmt.Errorf("invalid MX record %q: %w", data, err)
	}
	if len(parts) < 2 {
		return nil, fmt.Errorf("invalid MX record %q: %w", data, &MissingTokenError{Field: "exchange"})
	}
	exchange, err := names.Parse(parts[1], origin)
	if err != nil {
		return nil, fmt.Errorf("invalid MX exchange %q: %w", parts[1], err)
	}
	e := wire.NewEncoder()
	if err := e.EmitUint16(pref); err != nil {
		return nil, err
	}
	if err := names.Emit(e, exchange, false); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

// decodeMXData decodes MX record data into its presentation form.
func decodeMXData(b []byte) (string, error) {
	d := wire.NewDecoder(b)
	pref, err := d.ReadUint16()
	if err != nil {
		return "", fmt.Errorf("mx preference: %w", err)
	}
	exchange, err := names.Read(d)
	if err != nil {
		return "", fmt.Errorf("mx exchange: %w", err)
	}
	return fmt.Sprintf("%d %s", pref, exchange), nil
}

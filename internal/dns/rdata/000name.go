package rdata

import (
	"fmt"

	"github.com/haukened/rr-codec/internal/dns/names"
	"github.com/haukened/rr-codec/internal/dns/wire"
)

// encodeNameData handles record types whose RDATA is a single uncompressed
// domain name (NS, CNAME, PTR).
func encodeNameData(data, origin string) ([]byte, error) {
	name, err := names.Parse(data, origin)
	if err != nil {
		return nil, fmt.Errorf("invalid domain name %q: %w", data, err)
	}
	e := wire.NewEncoder()
	if err := names.Emit(e, name, false); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

func decodeNameData(b []byte) (string, error) {
	return names.Read(wire.NewDecoder(b))
}

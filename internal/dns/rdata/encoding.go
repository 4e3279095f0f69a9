// Package rdata implements per-type codecs for DNS record data (RDATA). Each
// supported type converts between zone-file presentation text, an in-memory
// record value, and wire-format bytes. Decoding reads from a length-bounded
// wire.Decoder scoped to one record's payload; encoding writes to a
// wire.Encoder.
package rdata

import (
	"fmt"
	"strings"

	"github.com/haukened/rr-codec/internal/dns/domain"
	"github.com/haukened/rr-codec/internal/dns/wire"
)

// Encode compiles a record's presentation text into its wire representation.
// Relative names inside the data are resolved against origin.
func Encode(rrType domain.RRType, data, origin string) ([]byte, error) {
	switch rrType {
	case domain.RRTypeA: // 1
		return encodeAData(data)
	case domain.RRTypeNS, domain.RRTypeCNAME, domain.RRTypePTR: // 2, 5, 12
		return encodeNameData(data, origin)
	case domain.RRTypeSOA: // 6
		return encodeSOAData(data, origin)
	case domain.RRTypeMX: // 15
		return encodeMXData(data, origin)
	case domain.RRTypeTXT: // 16
		return encodeTXTData(data)
	case domain.RRTypeAAAA: // 28
		return encodeAAAAData(data)
	case domain.RRTypeSRV: // 33
		return encodeSRVData(data, origin)
	case domain.RRTypeSVCB, domain.RRTypeHTTPS: // 64, 65 — same shape, distinct type code
		return encodeSVCBData(data, origin)
	case domain.RRTypeCAA: // 257
		return encodeCAAData(data)
	default:
		return nil, encoderNotImplemented(rrType)
	}
}

// encoderNotImplemented reports that the record type has no text encoder.
func encoderNotImplemented(t domain.RRType) error {
	return fmt.Errorf("%s record encoding not implemented", t)
}

// encodeSRVData encodes an SRV record string into its binary representation.
func encodeSRVData(data, origin string) ([]byte, error) {
	// data = "priority weight port target"
	srv, err := ParseSRV(strings.Fields(data), origin)
	if err != nil {
		return nil, fmt.Errorf("invalid SRV record %q: %w", data, err)
	}
	e := wire.NewEncoder()
	if err := srv.Emit(e); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

// encodeSVCBData encodes an SVCB or HTTPS record string into its binary
// representation.
func encodeSVCBData(data, origin string) ([]byte, error) {
	// data = "priority target key=value,key=value"
	rec, err := ParseSVCB(strings.Fields(data), origin)
	if err != nil {
		return nil, fmt.Errorf("invalid SVCB record %q: %w", data, err)
	}
	e := wire.NewEncoder()
	if err := rec.Emit(e); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

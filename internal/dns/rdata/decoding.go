package rdata

import (
	"fmt"

	"github.com/haukened/rr-codec/internal/dns/domain"
	"github.com/haukened/rr-codec/internal/dns/wire"
)

// Decode renders a record's wire representation back into presentation text.
func Decode(rrType domain.RRType, data []byte) (string, error) {
	switch rrType {
	case domain.RRTypeA: // 1
		return decodeAData(data)
	case domain.RRTypeNS, domain.RRTypeCNAME, domain.RRTypePTR: // 2, 5, 12
		return decodeNameData(data)
	case domain.RRTypeSOA: // 6
		return decodeSOAData(data)
	case domain.RRTypeMX: // 15
		return decodeMXData(data)
	case domain.RRTypeTXT: // 16
		return decodeTXTData(data)
	case domain.RRTypeAAAA: // 28
		return decodeAAAAData(data)
	case domain.RRTypeSRV: // 33
		return decodeSRVData(data)
	case domain.RRTypeSVCB, domain.RRTypeHTTPS: // 64, 65
		return decodeSVCBData(data)
	case domain.RRTypeCAA: // 257
		return decodeCAAData(data)
	default:
		return "", decoderNotImplemented(rrType)
	}
}

func decoderNotImplemented(t domain.RRType) error {
	return fmt.Errorf("%s record decoding not implemented", t)
}

// decodeSRVData decodes SRV record data into its presentation form.
func decodeSRVData(b []byte) (string, error) {
	srv, err := ReadSRV(wire.NewDecoder(b))
	if err != nil {
		return "", err
	}
	return srv.String(), nil
}

// decodeSVCBData decodes SVCB or HTTPS record data into its presentation
// form.
func decodeSVCBData(b []byte) (string, error) {
	rec, err := ReadSVCB(wire.NewDecoder(b))
	if err != nil {
		return "", err
	}
	return rec.String(), nil
}

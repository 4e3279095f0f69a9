package rdata

import (
	"fmt"

	"github.com/haukened/rr-codec/internal/dns/names"
	"github.com/haukened/rr-codec/internal/dns/wire"
)

// SRV is the service-locator record (RFC 2782): a fixed 4-field layout
// mapping a service to a target host and port.
type SRV struct {
	Priority uint16
	Weight   uint16
	Port     uint16
	Target   string
}

// ReadSRV decodes SRV RDATA from the cursor: priority, weight and port as
// 16-bit integers, then the uncompressed target name.
func ReadSRV(d *wire.Decoder) (SRV, error) {
	var srv SRV
	var err error
	if srv.Priority, err = d.ReadUint16(); err != nil {
		return SRV{}, fmt.Errorf("srv priority: %w", err)
	}
	if srv.Weight, err = d.ReadUint16(); err != nil {
		return SRV{}, fmt.Errorf("srv weight: %w", err)
	}
	if srv.Port, err = d.ReadUint16(); err != nil {
		return SRV{}, fmt.Errorf("srv port: %w", err)
	}
	if srv.Target, err = names.Read(d); err != nil {
		return SRV{}, fmt.Errorf("srv target: %w", err)
	}
	return srv, nil
}

// Emit encodes the record in the same field order, target uncompressed.
func (s SRV) Emit(e *wire.Encoder) error {
	if err := e.EmitUint16(s.Priority); err != nil {
		return err
	}
	if err := e.EmitUint16(s.Weight); err != nil {
		return err
	}
	if err := e.EmitUint16(s.Port); err != nil {
		return err
	}
	return names.Emit(e, s.Target, e.CanonicalNames())
}

// ParseSRV consumes exactly four presentation tokens: priority, weight,
// port, target. Relative targets are resolved against origin.
func ParseSRV(tokens []string, origin string) (SRV, error) {
	priority, err := u16Token(tokens, 0, "priority")
	if err != nil {
		return SRV{}, err
	}
	weight, err := u16Token(tokens, 1, "weight")
	if err != nil {
		return SRV{}, err
	}
	port, err := u16Token(tokens, 2, "port")
	if err != nil {
		return SRV{}, err
	}
	if len(tokens) < 4 {
		return SRV{}, &MissingTokenError{Field: "target"}
	}
	target, err := names.Parse(tokens[3], origin)
	if err != nil {
		return SRV{}, fmt.Errorf("srv target: %w", err)
	}
	return SRV{Priority: priority, Weight: weight, Port: port, Target: target}, nil
}

// String renders the record in zone-file presentation form.
func (s SRV) String() string {
	return fmt.Sprintf("%d %d %d %s", s.Priority, s.Weight, s.Port, s.Target)
}

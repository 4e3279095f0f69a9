package rdata

import (
	"fmt"
	"math"
	"strings"

	"github.com/haukened/rr-codec/internal/dns/names"
	"github.com/haukened/rr-codec/internal/dns/wire"
)

// KeyValue is one service parameter: an SvcParamKey and its opaque payload.
// Values are constructed during decode and not mutated afterwards.
type KeyValue struct {
	Key   SVCBKey
	Value string
}

// String renders the pair as "name=value" using the registry display name.
// Unregistered keys display with an empty name.
func (kv KeyValue) String() string {
	return fmt.Sprintf("%s=%s", kv.Key, kv.Value)
}

// SVCB is the service-binding record (RFC 9460): a priority, a target name,
// and an ordered parameter list. Insertion order is preserved and keys are
// not deduplicated. Priority 0 is the alias form; this codec is structural
// and does not enforce alias-form restrictions.
type SVCB struct {
	Priority uint16
	Target   string
	Params   []KeyValue
}

// HTTPS is the identical shape under record type 65.
type HTTPS = SVCB

// svcParamHeaderLen is the key+length header of one parameter. RDATA carries
// no parameter count; the list ends where the record does, so decoding stops
// once fewer bytes than one more header remain.
const svcParamHeaderLen = 4

// ReadSVCB decodes SVCB RDATA from the cursor. The parameter loop is driven
// by the cursor's remaining-byte count, re-checked after every parameter.
// Up to four trailing bytes cannot hold another header and are left unread.
// Unregistered key codes are accepted and kept verbatim.
func ReadSVCB(d *wire.Decoder) (SVCB, error) {
	var rec SVCB
	var err error
	if rec.Priority, err = d.ReadUint16(); err != nil {
		return SVCB{}, fmt.Errorf("svcb priority: %w", err)
	}
	if rec.Target, err = names.Read(d); err != nil {
		return SVCB{}, fmt.Errorf("svcb target: %w", err)
	}
	for d.Remaining() > svcParamHeaderLen {
		code, err := d.ReadUint16()
		if err != nil {
			return SVCB{}, fmt.Errorf("svcb param key: %w", err)
		}
		length, err := d.ReadUint16()
		if err != nil {
			return SVCB{}, fmt.Errorf("svcb param length: %w", err)
		}
		if int(length) > d.Remaining() {
			return SVCB{}, fmt.Errorf("svcb param key %d declares %d value bytes with %d remaining: %w",
				code, length, d.Remaining(), wire.ErrUnterminatedValue)
		}
		value, err := d.ReadBytes(int(length))
		if err != nil {
			return SVCB{}, fmt.Errorf("svcb param value: %w", err)
		}
		rec.Params = append(rec.Params, KeyValue{Key: SVCBKey(code), Value: string(value)})
	}
	return rec, nil
}

// Emit encodes priority, target, then each parameter in list order as
// key, value length, value bytes. No padding and no terminator: the
// enclosing RDATA length field bounds the record on the wire. The target is
// lowercased when the encoder is in canonical-name mode.
func (s SVCB) Emit(e *wire.Encoder) error {
	if err := e.EmitUint16(s.Priority); err != nil {
		return err
	}
	if err := names.Emit(e, s.Target, e.CanonicalNames()); err != nil {
		return err
	}
	for _, kv := range s.Params {
		if len(kv.Value) > math.MaxUint16 {
			return fmt.Errorf("svcb param key %d value too large: %d bytes", kv.Key.Code(), len(kv.Value))
		}
		if err := e.EmitUint16(kv.Key.Code()); err != nil {
			return err
		}
		if err := e.EmitUint16(uint16(len(kv.Value))); err != nil {
			return err
		}
		if err := e.EmitBytes([]byte(kv.Value)); err != nil {
			return err
		}
	}
	return nil
}

// ParseSVCB consumes exactly three presentation tokens: priority, target,
// and the whole parameter block as one token. The block's key=value grammar
// is handled by ParseKeyValues.
func ParseSVCB(tokens []string, origin string) (SVCB, error) {
	priority, err := u16Token(tokens, 0, "priority")
	if err != nil {
		return SVCB{}, err
	}
	if len(tokens) < 2 {
		return SVCB{}, &MissingTokenError{Field: "target"}
	}
	target, err := names.Parse(tokens[1], origin)
	if err != nil {
		return SVCB{}, fmt.Errorf("svcb target: %w", err)
	}
	if len(tokens) < 3 {
		return SVCB{}, &MissingTokenError{Field: "values"}
	}
	params, err := ParseKeyValues(tokens[2])
	if err != nil {
		return SVCB{}, err
	}
	return SVCB{Priority: priority, Target: target, Params: params}, nil
}

// String renders the record as "priority target pairs". Successive pairs are
// concatenated without a separator, so multi-parameter output is not
// re-parseable.
// TODO: pick a pair separator; changing it changes presentation output for
// existing consumers, so it needs a coordinated release note.
func (s SVCB) String() string {
	var pairs strings.Builder
	for _, kv := range s.Params {
		pairs.WriteString(kv.String())
	}
	return fmt.Sprintf("%d %s %s", s.Priority, s.Target, pairs.String())
}

package wire

import (
	"encoding/binary"
	"fmt"
)

// Encoder writes fixed-width integers and raw byte runs in DNS wire format.
// A zero-value capacity means unbounded; a bounded encoder fails with
// ErrBufferOverflow once a write would exceed it. The canonical-names flag
// tells name emission to lowercase, which DNSSEC canonical form requires.
type Encoder struct {
	buf            []byte
	max            int
	canonicalNames bool
}

// NewEncoder returns an unbounded Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// NewBoundedEncoder returns an Encoder that refuses to grow past max bytes.
func NewBoundedEncoder(max int) *Encoder {
	return &Encoder{max: max}
}

// SetCanonicalNames toggles canonical (lowercase) name emission.
func (e *Encoder) SetCanonicalNames(v bool) {
	e.canonicalNames = v
}

// CanonicalNames reports whether names should be emitted in canonical form.
func (e *Encoder) CanonicalNames() bool {
	return e.canonicalNames
}

// Len returns the number of bytes written so far.
func (e *Encoder) Len() int {
	return len(e.buf)
}

// Bytes returns the encoded payload. The slice is owned by the encoder and
// valid until the next write.
func (e *Encoder) Bytes() []byte {
	return e.buf
}

func (e *Encoder) fits(n int) error {
	if e.max > 0 && len(e.buf)+n > e.max {
		return fmt.Errorf("write %d bytes at offset %d exceeds capacity %d: %w", n, len(e.buf), e.max, ErrBufferOverflow)
	}
	return nil
}

// EmitUint8 writes one byte.
func (e *Encoder) EmitUint8(v uint8) error {
	if err := e.fits(1); err != nil {
		return err
	}
	e.buf = append(e.buf, v)
	return nil
}

// EmitUint16 writes a big-endian 16-bit unsigned integer.
func (e *Encoder) EmitUint16(v uint16) error {
	if err := e.fits(2); err != nil {
		return err
	}
	e.buf = binary.BigEndian.AppendUint16(e.buf, v)
	return nil
}

// EmitUint32 writes a big-endian 32-bit unsigned integer.
func (e *Encoder) EmitUint32(v uint32) error {
	if err := e.fits(4); err != nil {
		return err
	}
	e.buf = binary.BigEndian.AppendUint32(e.buf, v)
	return nil
}

// EmitBytes writes raw bytes verbatim.
func (e *Encoder) EmitBytes(b []byte) error {
	if err := e.fits(len(b)); err != nil {
		return err
	}
	e.buf = append(e.buf, b...)
	return nil
}

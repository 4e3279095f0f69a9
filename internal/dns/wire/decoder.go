// Package wire provides the length-bounded binary cursor used to read and
// write RDATA payloads in DNS wire format (big-endian, RFC 1035 section 3.3).
// The decoder is scoped to a single record's payload: Remaining reports how
// many bytes of that payload are left, which is what drives self-terminating
// structures like SVCB parameter lists.
package wire

import (
	"encoding/binary"
	"fmt"
)

// Decoder reads fixed-width integers and raw byte runs from one record's
// RDATA. A failed read leaves the cursor position unspecified; callers must
// discard the partially-read value.
type Decoder struct {
	buf []byte
	off int
}

// NewDecoder returns a Decoder over the given RDATA slice. The decoder does
// not copy or mutate buf.
func NewDecoder(buf []byte) *Decoder {
	return &Decoder{buf: buf}
}

// Remaining reports how many unread bytes are left in the record.
func (d *Decoder) Remaining() int {
	return len(d.buf) - d.off
}

// ReadUint8 reads one byte.
func (d *Decoder) ReadUint8() (uint8, error) {
	if d.Remaining() < 1 {
		return 0, fmt.Errorf("read uint8: %w", ErrBufferUnderflow)
	}
	v := d.buf[d.off]
	d.off++
	return v, nil
}

// ReadUint16 reads a big-endian 16-bit unsigned integer.
func (d *Decoder) ReadUint16() (uint16, error) {
	if d.Remaining() < 2 {
		return 0, fmt.Errorf("read uint16: %w", ErrBufferUnderflow)
	}
	v := binary.BigEndian.Uint16(d.buf[d.off:])
	d.off += 2
	return v, nil
}

// ReadUint32 reads a big-endian 32-bit unsigned integer.
func (d *Decoder) ReadUint32() (uint32, error) {
	if d.Remaining() < 4 {
		return 0, fmt.Errorf("read uint32: %w", ErrBufferUnderflow)
	}
	v := binary.BigEndian.Uint32(d.buf[d.off:])
	d.off += 4
	return v, nil
}

// ReadBytes reads exactly n raw bytes. The returned slice is a copy, so the
// decoded value does not alias the input buffer.
func (d *Decoder) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("read %d bytes: negative length", n)
	}
	if d.Remaining() < n {
		return nil, fmt.Errorf("read %d bytes with %d remaining: %w", n, d.Remaining(), ErrBufferUnderflow)
	}
	out := make([]byte, n)
	copy(out, d.buf[d.off:d.off+n])
	d.off += n
	return out, nil
}

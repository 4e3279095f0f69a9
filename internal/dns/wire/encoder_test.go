package wire

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncoder_Emit(t *testing.T) {
	e := NewEncoder()
	if err := e.EmitUint16(0x1234); err != nil {
		t.Fatalf("EmitUint16() unexpected error: %v", err)
	}
	if err := e.EmitUint32(0x56789abc); err != nil {
		t.Fatalf("EmitUint32() unexpected error: %v", err)
	}
	if err := e.EmitUint8(0xde); err != nil {
		t.Fatalf("EmitUint8() unexpected error: %v", err)
	}
	if err := e.EmitBytes([]byte("hi")); err != nil {
		t.Fatalf("EmitBytes() unexpected error: %v", err)
	}

	want := []byte{0x12, 0x34, 0x56, 0x78, 0x9a, 0xbc, 0xde, 'h', 'i'}
	if !bytes.Equal(e.Bytes(), want) {
		t.Errorf("Bytes() = %v, want %v", e.Bytes(), want)
	}
	if e.Len() != len(want) {
		t.Errorf("Len() = %d, want %d", e.Len(), len(want))
	}
}

func TestEncoder_Overflow(t *testing.T) {
	e := NewBoundedEncoder(3)
	if err := e.EmitUint16(1); err != nil {
		t.Fatalf("EmitUint16() unexpected error: %v", err)
	}
	err := e.EmitUint16(2)
	if !errors.Is(err, ErrBufferOverflow) {
		t.Errorf("error = %v, want ErrBufferOverflow", err)
	}
	// a smaller write still fits
	if err := e.EmitUint8(3); err != nil {
		t.Errorf("EmitUint8() after failed write: %v", err)
	}
}

func TestEncoder_CanonicalNamesFlag(t *testing.T) {
	e := NewEncoder()
	if e.CanonicalNames() {
		t.Error("CanonicalNames() default should be false")
	}
	e.SetCanonicalNames(true)
	if !e.CanonicalNames() {
		t.Error("CanonicalNames() should be true after SetCanonicalNames(true)")
	}
}

func TestEncoder_RoundTripWithDecoder(t *testing.T) {
	e := NewEncoder()
	_ = e.EmitUint16(0xbeef)
	_ = e.EmitBytes([]byte{9, 8, 7})

	d := NewDecoder(e.Bytes())
	v, err := d.ReadUint16()
	if err != nil || v != 0xbeef {
		t.Fatalf("ReadUint16() = %#x, %v; want 0xbeef, nil", v, err)
	}
	b, err := d.ReadBytes(3)
	if err != nil || !bytes.Equal(b, []byte{9, 8, 7}) {
		t.Fatalf("ReadBytes() = %v, %v; want [9 8 7], nil", b, err)
	}
	if d.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", d.Remaining())
	}
}

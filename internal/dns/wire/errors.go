package wire

import "errors"

var (
	// ErrBufferUnderflow indicates a read needed more bytes than the
	// decoder had left in the current record.
	ErrBufferUnderflow = errors.New("buffer underflow")

	// ErrBufferOverflow indicates a write would exceed the encoder's
	// configured capacity.
	ErrBufferOverflow = errors.New("buffer overflow")

	// ErrUnterminatedValue indicates a declared value length ran past the
	// end of the record.
	ErrUnterminatedValue = errors.New("unterminated value")
)

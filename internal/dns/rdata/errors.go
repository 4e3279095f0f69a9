package rdata

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrMalformedNumber indicates a numeric presentation token failed format or
// range validation.
var ErrMalformedNumber = errors.New("malformed number")

// MissingTokenError reports a required presentation field that was absent
// from the token stream.
type MissingTokenError struct {
	Field string
}

func (e *MissingTokenError) Error() string {
	return fmt.Sprintf("missing token: %s", e.Field)
}

// u16Token parses tokens[i] as an unsigned 16-bit decimal, reporting the
// field name on both missing and malformed input.
func u16Token(tokens []string, i int, field string) (uint16, error) {
	if len(tokens) <= i {
		return 0, &MissingTokenError{Field: field}
	}
	v, err := strconv.ParseUint(tokens[i], 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", field, tokens[i], ErrMalformedNumber)
	}
	return uint16(v), nil
}

// u32Token is u16Token for 32-bit fields (SOA timers and serial).
func u32Token(tokens []string, i int, field string) (uint32, error) {
	if len(tokens) <= i {
		return 0, &MissingTokenError{Field: field}
	}
	v, err := strconv.ParseUint(tokens[i], 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", field, tokens[i], ErrMalformedNumber)
	}
	return uint32(v), nil
}

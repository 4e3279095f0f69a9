// Package names implements the uncompressed domain-name codec shared by the
// record-data codecs: presentation-form parsing against an optional origin,
// wire-format reading, and wire-format emission with optional lowercasing
// for DNSSEC canonical form.
//
// Compression pointers are rejected on read: names embedded in RDATA are
// emitted uncompressed, and this codec never sees whole messages.
package names

import (
	"errors"
	"fmt"
	"strings"

	"github.com/haukened/rr-codec/internal/dns/wire"
)

const maxLabelLen = 63

var errEmptyName = errors.New("empty domain name")

// Parse converts a presentation-form name into its fully qualified form.
// Relative names are resolved against origin; "@" stands for the origin
// itself. The result carries no trailing dot and preserves case.
func Parse(s, origin string) (string, error) {
	s = strings.TrimSpace(s)
	origin = trimDots(origin)
	if s == "" {
		return "", errEmptyName
	}
	if s == "@" {
		if origin == "" {
			return "", errors.New("relative name with no origin")
		}
		return origin, nil
	}
	if !strings.HasSuffix(s, ".") && origin != "" {
		s = s + "." + origin
	}
	s = trimDots(s)
	for _, label := range strings.Split(s, ".") {
		if label == "" {
			return "", fmt.Errorf("empty label in domain name: %s", s)
		}
		if len(label) > maxLabelLen {
			return "", fmt.Errorf("label too long: %s", label)
		}
	}
	return s, nil
}

// Read decodes an uncompressed wire-format name (length-prefixed labels
// terminated by a zero byte) from the cursor.
func Read(d *wire.Decoder) (string, error) {
	var labels []string
	for {
		length, err := d.ReadUint8()
		if err != nil {
			return "", fmt.Errorf("domain name label length: %w", err)
		}
		if length == 0 {
			break
		}
		if length > maxLabelLen {
			// 0xC0 upper bits mark a compression pointer, which is not
			// valid inside RDATA we emit.
			return "", fmt.Errorf("invalid label length %d (compressed name?)", length)
		}
		label, err := d.ReadBytes(int(length))
		if err != nil {
			return "", fmt.Errorf("domain name label: %w", err)
		}
		labels = append(labels, string(label))
	}
	return strings.Join(labels, "."), nil
}

// Emit writes name to the encoder as length-prefixed labels ending in a zero
// byte, without compression. When lowercase is set the name is emitted in
// canonical lowercase form.
func Emit(e *wire.Encoder, name string, lowercase bool) error {
	if lowercase {
		name = strings.ToLower(name)
	}
	name = trimDots(strings.TrimSpace(name))
	if name != "" {
		for _, label := range strings.Split(name, ".") {
			if label == "" {
				continue
			}
			if len(label) > maxLabelLen {
				return fmt.Errorf("label too long: %s", label)
			}
			if err := e.EmitUint8(uint8(len(label))); err != nil {
				return err
			}
			if err := e.EmitBytes([]byte(label)); err != nil {
				return err
			}
		}
	}
	return e.EmitUint8(0)
}

// trimDots strips any trailing dots from a name.
func trimDots(name string) string {
	for strings.HasSuffix(name, ".") {
		name = strings.TrimSuffix(name, ".")
	}
	return name
}

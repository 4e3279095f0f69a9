package domain

import (
	"fmt"

	"github.com/haukened/rr-codec/internal/dns/common/utils"
)

// Record is a compiled authoritative record: the owner name, type, class and
// TTL alongside both the wire-format RDATA and the presentation text it was
// compiled from. Records are value objects; equality is structural.
type Record struct {
	Name  string
	Type  RRType
	Class RRClass
	TTL   uint32
	Data  []byte
	Text  string
}

// NewRecord constructs a validated Record. The owner name is canonicalized.
func NewRecord(name string, rrtype RRType, class RRClass, ttl uint32, data []byte, text string) (Record, error) {
	r := Record{
		Name:  utils.CanonicalDNSName(name),
		Type:  rrtype,
		Class: class,
		TTL:   ttl,
		Data:  data,
		Text:  text,
	}
	if err := r.Validate(); err != nil {
		return Record{}, err
	}
	return r, nil
}

// Validate checks whether the Record fields are valid.
func (r Record) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("record name must not be empty")
	}
	if !r.Type.IsValid() {
		return fmt.Errorf("invalid RRType: %d", r.Type)
	}
	if !r.Class.IsValid() {
		return fmt.Errorf("invalid RRClass: %d", r.Class)
	}
	if r.Text == "" && len(r.Data) == 0 {
		return fmt.Errorf("either Text or Data must be set")
	}
	return nil
}

// Key returns the storage key derived from the record's name and type.
func (r Record) Key() string {
	return r.Name + "|" + r.Type.String()
}

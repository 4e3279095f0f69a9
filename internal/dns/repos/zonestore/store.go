// Package zonestore persists compiled zone records in a bbolt database so a
// server can serve a precompiled zone directory without reparsing it.
package zonestore

import (
	"encoding/binary"
	"fmt"
	"time"

	bbolt "go.etcd.io/bbolt"

	"github.com/haukened/rr-codec/internal/dns/domain"
	"github.com/haukened/rr-codec/internal/dns/rdata"
)

var (
	bucketRecords = []byte("records")
	bucketMeta    = []byte("meta")

	keyCompiledAt  = []byte("compiled_at")
	keyRecordCount = []byte("record_count")
)

// frameHeaderLen is class (2) + TTL (4) + RDATA length (2).
const frameHeaderLen = 8

// Store is a bbolt-backed repository of compiled records. Records sharing an
// owner name and type are stored under one key as a sequence of frames:
// class, TTL, RDATA length, RDATA bytes.
type Store struct {
	db *bbolt.DB
}

// New opens (or creates) a Bolt database at path and ensures buckets exist.
func New(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}
	if err := db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketRecords); err != nil {
			return err
		}
		if _, err := tx.CreateBucketIfNotExists(bucketMeta); err != nil {
			return err
		}
		return nil
	}); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put appends the given records to the store, grouped by record key, and
// updates the meta bucket.
func (s *Store) Put(records []domain.Record) error {
	if len(records) == 0 {
		return nil
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketRecords)
		for _, r := range records {
			if len(r.Data) > 0xffff {
				return fmt.Errorf("record %s: RDATA too large: %d bytes", r.Key(), len(r.Data))
			}
			key := []byte(r.Key())
			frame := make([]byte, frameHeaderLen, frameHeaderLen+len(r.Data))
			binary.BigEndian.PutUint16(frame[0:2], uint16(r.Class))
			binary.BigEndian.PutUint32(frame[2:6], r.TTL)
			binary.BigEndian.PutUint16(frame[6:8], uint16(len(r.Data)))
			frame = append(frame, r.Data...)

			// bolt values alias the mmap; copy before appending
			existing := b.Get(key)
			merged := make([]byte, 0, len(existing)+len(frame))
			merged = append(merged, existing...)
			merged = append(merged, frame...)
			if err := b.Put(key, merged); err != nil {
				return err
			}
		}

		meta := tx.Bucket(bucketMeta)
		count := binary.BigEndian.Uint64(pad8(meta.Get(keyRecordCount)))
		count += uint64(len(records))
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], count)
		if err := meta.Put(keyRecordCount, buf[:]); err != nil {
			return err
		}
		return meta.Put(keyCompiledAt, []byte(time.Now().UTC().Format(time.RFC3339)))
	})
}

// Get returns all stored records for an owner name and type. The
// presentation text is re-derived from the stored RDATA. A missing key
// yields no records and no error.
func (s *Store) Get(name string, rrType domain.RRType) ([]domain.Record, error) {
	key := name + "|" + rrType.String()
	var records []domain.Record
	err := s.db.View(func(tx *bbolt.Tx) error {
		frames := tx.Bucket(bucketRecords).Get([]byte(key))
		for off := 0; off < len(frames); {
			if len(frames)-off < frameHeaderLen {
				return fmt.Errorf("corrupt frame for %s at offset %d", key, off)
			}
			class := domain.RRClass(binary.BigEndian.Uint16(frames[off : off+2]))
			ttl := binary.BigEndian.Uint32(frames[off+2 : off+6])
			rdLen := int(binary.BigEndian.Uint16(frames[off+6 : off+8]))
			off += frameHeaderLen
			if len(frames)-off < rdLen {
				return fmt.Errorf("corrupt frame for %s: %d RDATA bytes declared, %d present", key, rdLen, len(frames)-off)
			}
			data := append([]byte(nil), frames[off:off+rdLen]...)
			off += rdLen

			text, err := rdata.Decode(rrType, data)
			if err != nil {
				// types without a text decoder still round-trip their bytes
				text = ""
			}
			rec, err := domain.NewRecord(name, rrType, class, ttl, data, text)
			if err != nil {
				return err
			}
			records = append(records, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Count returns the total number of records ever put into the store.
func (s *Store) Count() (uint64, error) {
	var count uint64
	err := s.db.View(func(tx *bbolt.Tx) error {
		count = binary.BigEndian.Uint64(pad8(tx.Bucket(bucketMeta).Get(keyRecordCount)))
		return nil
	})
	return count, err
}

// CompiledAt returns the time of the last Put, or the zero time if the store
// is empty.
func (s *Store) CompiledAt() (time.Time, error) {
	var ts time.Time
	err := s.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(bucketMeta).Get(keyCompiledAt)
		if raw == nil {
			return nil
		}
		parsed, err := time.Parse(time.RFC3339, string(raw))
		if err != nil {
			return err
		}
		ts = parsed
		return nil
	})
	return ts, err
}

// pad8 widens a possibly-nil value to 8 bytes for uint64 decoding.
func pad8(b []byte) []byte {
	if len(b) == 8 {
		return b
	}
	return make([]byte, 8)
}

// Package zone loads textual zone files and compiles them into wire-format
// records using the rdata codecs. Zones may be written in YAML, JSON, or
// TOML; records are returned grouped by zone root.
package zone

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"golang.org/x/net/publicsuffix"

	"github.com/haukened/rr-codec/internal/dns/common/log"
	"github.com/haukened/rr-codec/internal/dns/common/utils"
	"github.com/haukened/rr-codec/internal/dns/domain"
	"github.com/haukened/rr-codec/internal/dns/rdata"
)

// Loader compiles zone files into wire-format records. Identical record
// bodies repeat a lot across large zone directories (shared MX sets, SPF
// strings), so compiled RDATA is memoized through an LRU keyed by origin,
// type and text.
type Loader struct {
	defaultTTL time.Duration
	memo       *lru.Cache[string, []byte]
	logger     log.Logger
}

// NewLoader returns a Loader. memoSize <= 0 disables memoization.
func NewLoader(defaultTTL time.Duration, memoSize int, logger log.Logger) (*Loader, error) {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	l := &Loader{defaultTTL: defaultTTL, logger: logger}
	if memoSize > 0 {
		memo, err := lru.New[string, []byte](memoSize)
		if err != nil {
			return nil, err
		}
		l.memo = memo
	}
	return l, nil
}

// LoadDirectory walks dir, compiling every supported zone file (YAML, JSON,
// TOML) and returning records grouped by zone root. Any file that fails to
// parse or compile fails the whole load.
func (l *Loader) LoadDirectory(dir string) (map[string][]domain.Record, error) {
	zones := make(map[string][]domain.Record)

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		root, records, err := l.LoadFile(path)
		if err != nil {
			return fmt.Errorf("error parsing zone file %s: %w", path, err)
		}
		if root != "" && len(records) > 0 {
			zones[root] = append(zones[root], records...)
			l.logger.Debug(map[string]any{
				"file":    path,
				"root":    root,
				"records": len(records),
			}, "Compiled zone file")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return zones, nil
}

// LoadFile compiles a single zone file, returning its zone root and records.
// Unsupported file extensions are skipped with an empty root and no error.
func (l *Loader) LoadFile(path string) (string, []domain.Record, error) {
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	case ".toml":
		parser = toml.Parser()
	default:
		return "", nil, nil // unsupported file type
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return "", nil, fmt.Errorf("failed to load zone file %s: %w", path, err)
	}

	root := k.String("zone_root")
	if root == "" {
		return "", nil, fmt.Errorf("zone file %s missing 'zone_root'", path)
	}
	root = utils.CanonicalDNSName(root)

	// A zone rooted at a bare public suffix ("com", "co.uk") is almost
	// certainly a typo for a real domain under it.
	if suffix, _ := publicsuffix.PublicSuffix(root); suffix == root {
		return "", nil, fmt.Errorf("zone_root %q is a bare public suffix", root)
	}

	var records []domain.Record
	for name, raw := range k.Raw() {
		if name == "zone_root" {
			continue
		}
		rawMap, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		fqdn := utils.CanonicalDNSName(expandName(name, root))
		for rrType, val := range rawMap {
			values := toStringValues(val)
			if len(values) == 0 { // skip silently (empty or invalid elements)
				continue
			}
			recs, err := l.compile(fqdn, rrType, values, root)
			if err != nil {
				return "", nil, fmt.Errorf("invalid record in %s: %w", path, err)
			}
			records = append(records, recs...)
		}
	}
	return root, records, nil
}

// compile builds one Record per value for a given owner name and type.
func (l *Loader) compile(fqdn, rrType string, values []string, root string) ([]domain.Record, error) {
	rType := domain.RRTypeFromString(rrType)
	if rType == 0 {
		return nil, fmt.Errorf("unknown record type %q for %s", rrType, fqdn)
	}
	var records []domain.Record
	for _, s := range values {
		data, err := l.encode(rType, s, root)
		if err != nil {
			return nil, err
		}
		rec, err := domain.NewRecord(
			fqdn,
			rType,
			domain.RRClassIN,
			uint32(l.defaultTTL.Seconds()),
			data,
			s, // preserve original text form
		)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// encode compiles record text to RDATA through the memo.
func (l *Loader) encode(rType domain.RRType, text, origin string) ([]byte, error) {
	if l.memo == nil {
		return rdata.Encode(rType, text, origin)
	}
	key := origin + "|" + rType.String() + "|" + text
	if data, ok := l.memo.Get(key); ok {
		// copy so records never share backing arrays
		return append([]byte(nil), data...), nil
	}
	data, err := rdata.Encode(rType, text, origin)
	if err != nil {
		return nil, err
	}
	l.memo.Add(key, data)
	return append([]byte(nil), data...), nil
}

// expandName returns the fully qualified domain name for a label, expanding
// '@' to the root, and appending the root if the label is not already
// absolute.
func expandName(label, root string) string {
	if label == "@" {
		return root
	}
	if strings.HasSuffix(label, ".") {
		return label
	}
	return label + "." + root
}

// toStringValues converts a raw koanf-parsed value (string or []any of
// strings) into a slice of non-empty strings, skipping empty or non-string
// elements so the caller can treat an empty result as a no-op instead of
// crashing the loader.
func toStringValues(val any) []string {
	switch v := val.(type) {
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil
		}
		return []string{s}
	case []any:
		out := make([]string, 0, len(v))
		for _, elem := range v {
			s, ok := elem.(string)
			if !ok {
				continue // skip non-strings silently
			}
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			out = append(out, s)
		}
		if len(out) == 0 {
			return nil
		}
		return out
	default:
		return nil
	}
}

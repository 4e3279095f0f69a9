package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haukened/rr-codec/internal/dns/domain"
	"github.com/haukened/rr-codec/internal/dns/infra/config"
	"github.com/haukened/rr-codec/internal/dns/repos/zonestore"
)

const testZone = `zone_root: example.com
"@":
  A: "192.0.2.1"
www:
  A:
    - "192.0.2.2"
  HTTPS: "1 www.example.com. alpn=h2"
_sip._tcp:
  SRV: "10 5 5060 sip.example.com."
`

func testConfig(t *testing.T) *config.AppConfig {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "example.com.yaml"), []byte(testZone), 0o644))
	return &config.AppConfig{
		ZoneDir:    dir,
		DBPath:     filepath.Join(t.TempDir(), "zones.db"),
		DefaultTTL: 300,
		MemoSize:   16,
		Env:        "dev",
		LogLevel:   "error",
	}
}

func TestRun_CompilesZoneDirectory(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, run(cfg))

	store, err := zonestore.New(cfg.DBPath)
	require.NoError(t, err)
	defer store.Close()

	count, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, uint64(4), count)

	srv, err := store.Get("_sip._tcp.example.com", domain.RRTypeSRV)
	require.NoError(t, err)
	require.Len(t, srv, 1)
	assert.Equal(t, "10 5 5060 sip.example.com", srv[0].Text)

	https, err := store.Get("www.example.com", domain.RRTypeHTTPS)
	require.NoError(t, err)
	require.Len(t, https, 1)
	assert.Equal(t, "1 www.example.com alpn=h2", https[0].Text)
}

func TestRun_MissingZoneDir(t *testing.T) {
	cfg := testConfig(t)
	cfg.ZoneDir = filepath.Join(cfg.ZoneDir, "does-not-exist")
	assert.Error(t, run(cfg))
}

func TestRun_BadZoneFile(t *testing.T) {
	cfg := testConfig(t)
	bad := []byte("zone_root: example.org\nwww:\n  A: \"not-an-ip\"\n")
	require.NoError(t, os.WriteFile(filepath.Join(cfg.ZoneDir, "bad.yaml"), bad, 0o644))
	assert.Error(t, run(cfg))
}

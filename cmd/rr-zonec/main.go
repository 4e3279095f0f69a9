// Command rr-zonec compiles a directory of textual zone files into a
// database of wire-format records.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/haukened/rr-codec/internal/dns/common/log"
	"github.com/haukened/rr-codec/internal/dns/infra/config"
	"github.com/haukened/rr-codec/internal/dns/repos/zonestore"
	"github.com/haukened/rr-codec/internal/dns/zone"
)

const (
	version = "0.1.0-dev"
	appName = "rr-zonec"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	// Configure global logging
	if err := log.Configure(cfg.Env, cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Logging configuration error: %v\n", err)
		os.Exit(1)
	}

	log.Info(map[string]any{
		"version":     version,
		"env":         cfg.Env,
		"log_level":   cfg.LogLevel,
		"zone_dir":    cfg.ZoneDir,
		"db_path":     cfg.DBPath,
		"default_ttl": cfg.DefaultTTL,
	}, "Starting "+appName)

	if err := run(cfg); err != nil {
		log.Fatal(map[string]any{"error": err}, "Zone compilation failed")
	}
}

// run compiles the zone directory and persists the result.
func run(cfg *config.AppConfig) error {
	loader, err := zone.NewLoader(time.Duration(cfg.DefaultTTL)*time.Second, cfg.MemoSize, log.GetLogger())
	if err != nil {
		return fmt.Errorf("failed to build zone loader: %w", err)
	}

	zones, err := loader.LoadDirectory(cfg.ZoneDir)
	if err != nil {
		return fmt.Errorf("failed to load zone directory: %w", err)
	}

	store, err := zonestore.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open zone store: %w", err)
	}
	defer store.Close()

	total := 0
	for root, records := range zones {
		if err := store.Put(records); err != nil {
			return fmt.Errorf("failed to store zone %s: %w", root, err)
		}
		total += len(records)
		log.Info(map[string]any{
			"zone":    root,
			"records": len(records),
		}, "Stored compiled zone")
	}

	log.Info(map[string]any{
		"zones":   len(zones),
		"records": total,
		"db_path": cfg.DBPath,
	}, "Zone compilation complete")
	return nil
}

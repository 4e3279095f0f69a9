// Package config loads the zone compiler's configuration from environment
// variables.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// AppConfig holds configuration values parsed from environment variables.
type AppConfig struct {
	// ZoneDir is the directory of zone files to compile.
	ZoneDir string `koanf:"zone_dir" validate:"required,dir"`

	// DBPath is where the compiled zone database is written.
	DBPath string `koanf:"db_path" validate:"required"`

	// DefaultTTL is applied to records without an explicit TTL, in seconds.
	DefaultTTL uint `koanf:"default_ttl" validate:"required,gte=1"`

	// MemoSize bounds the compiler's RDATA memo cache; 0 disables it.
	MemoSize int `koanf:"memo_size" validate:"gte=0"`

	// Env is the runtime environment, either "dev" or "prod".
	Env string `koanf:"env" validate:"required,oneof=dev prod"`

	// LogLevel controls log verbosity: "debug", "info", "warn", or "error".
	LogLevel string `koanf:"log_level" validate:"required,oneof=debug info warn error"`
}

// envLoader loads environment variables with the prefix "RRC_", lowercasing
// keys and stripping the prefix. It can be swapped out in tests.
var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix: "RRC_",
		TransformFunc: func(key, value string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(key, "RRC_")), value
		},
	}), nil)
}

// Load parses environment variables and returns an AppConfig instance.
// It applies default values and runs validation automatically.
func Load() (*AppConfig, error) {
	k := koanf.New(".")

	// Load default values using structs provider.
	k.Load(structs.Provider(AppConfig{
		ZoneDir:    "/etc/rr-codec/zones",
		DBPath:     "/var/lib/rr-codec/zones.db",
		DefaultTTL: 300,
		MemoSize:   1024,
		Env:        "prod",
		LogLevel:   "info",
	}, "koanf"), nil)

	if err := envLoader(k); err != nil {
		return nil, fmt.Errorf("error loading env: %w", err)
	}

	var cfg AppConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}

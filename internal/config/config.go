package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap/zapcore"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/mrbear1024/xgrowth/internal/walker"
)

// EnvPrefix prefixes every environment override. Nesting levels are
// separated by a double underscore: XGROWTH_SERVER__PORT -> server.port.
const EnvPrefix = "XGROWTH_"

// listKeys are split on commas when they come from the environment.
var listKeys = map[string]bool{
	"server.allowed_origins": true,
	"export.assets":          true,
}

// Load reads configuration from the given YAML file, then a .env file next
// to it, then environment variable overrides (XGROWTH_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults. Lists are decoded into empty slices and refilled
	// afterwards so a shorter list in the file replaces the default outright.
	cfg := DefaultConfig()
	cfg.Export.Assets = nil

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// .env never overrides variables already set in the process.
	dotenv := filepath.Join(filepath.Dir(path), ".env")
	if _, err := os.Stat(dotenv); err == nil {
		if err := godotenv.Load(dotenv); err != nil {
			return nil, fmt.Errorf("reading %s: %w", dotenv, err)
		}
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if cfg.Export.Assets == nil {
		cfg.Export.Assets = append([]string(nil), DefaultAssets...)
	}

	return cfg, nil
}

// envKey maps XGROWTH_CONTACT__RATE_PER_MINUTE to contact.rate_per_minute.
func envKey(name, value string) (string, interface{}) {
	key := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
	key = strings.ReplaceAll(key, "__", ".")
	if listKeys[key] {
		return key, splitAndTrim(value)
	}
	return key, value
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validFormats is the set of recognized log formats.
var validFormats = map[LogFormat]bool{
	LogConsole: true,
	LogJSON:    true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range 1-65535", c.Server.Port)
	}

	if c.Contact.Enabled && c.Contact.Database == "" {
		return fmt.Errorf("contact.database is required when contact.enabled is set")
	}

	if c.Contact.RatePerMinute < 0 {
		return fmt.Errorf("contact.rate_per_minute must be non-negative")
	}

	if c.Export.OutputDir == "" {
		return fmt.Errorf("export.output_dir is required")
	}

	if err := walker.ValidatePatterns(c.Export.Assets); err != nil {
		return fmt.Errorf("export.assets: %w", err)
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log.level %q: %w", c.Log.Level, err)
	}

	if !validFormats[c.Log.Format] {
		return fmt.Errorf("invalid log.format %q: must be one of console, json", c.Log.Format)
	}

	return nil
}

// splitAndTrim splits a comma-separated string and drops empty entries.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}

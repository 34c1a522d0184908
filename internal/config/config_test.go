package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Contact.Enabled {
		t.Error("contact endpoint should be off by default")
	}
	if cfg.Export.OutputDir != "dist" {
		t.Errorf("expected default output_dir %q, got %q", "dist", cfg.Export.OutputDir)
	}
	if cfg.Log.Format != LogConsole {
		t.Errorf("expected default log format %q, got %q", LogConsole, cfg.Log.Format)
	}
}

func TestDefaultConfigDoesNotShareAssets(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Export.Assets[0] = "changed"
	if DefaultAssets[0] == "changed" {
		t.Error("DefaultConfig must copy DefaultAssets")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "xgrowth.yml")

	original := DefaultConfig()
	original.Site.Content = "content.yml"
	original.Server.Port = 9000
	original.Server.AllowedOrigins = []string{"https://xgrowth.cc"}
	original.Contact.Enabled = true
	original.Contact.RatePerMinute = 2
	original.Export.Assets = []string{"*.css"}
	original.Log.Format = LogJSON

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify round-trip.
	if loaded.Site.Content != original.Site.Content {
		t.Errorf("site.content: got %q, want %q", loaded.Site.Content, original.Site.Content)
	}
	if loaded.Server.Port != original.Server.Port {
		t.Errorf("server.port: got %d, want %d", loaded.Server.Port, original.Server.Port)
	}
	if !loaded.Contact.Enabled {
		t.Error("contact.enabled: got false, want true")
	}
	if loaded.Contact.RatePerMinute != 2 {
		t.Errorf("contact.rate_per_minute: got %d, want 2", loaded.Contact.RatePerMinute)
	}
	if loaded.Log.Format != LogJSON {
		t.Errorf("log.format: got %q, want %q", loaded.Log.Format, LogJSON)
	}
	if len(loaded.Export.Assets) != 1 || loaded.Export.Assets[0] != "*.css" {
		t.Errorf("export.assets: got %v, want [*.css]", loaded.Export.Assets)
	}
	if len(loaded.Server.AllowedOrigins) != 1 || loaded.Server.AllowedOrigins[0] != "https://xgrowth.cc" {
		t.Errorf("server.allowed_origins: got %v", loaded.Server.AllowedOrigins)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Server.Port)
	}
	if len(cfg.Export.Assets) != len(DefaultAssets) {
		t.Errorf("expected default assets, got %v", cfg.Export.Assets)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "xgrowth.yml")

	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("XGROWTH_SERVER__PORT", "9100")
	t.Setenv("XGROWTH_CONTACT__ENABLED", "true")
	t.Setenv("XGROWTH_SERVER__ALLOWED_ORIGINS", "https://a.example, https://b.example")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Server.Port != 9100 {
		t.Errorf("env override failed: got port %d, want 9100", loaded.Server.Port)
	}
	if !loaded.Contact.Enabled {
		t.Error("env override failed: contact.enabled still false")
	}
	if got := loaded.Server.AllowedOrigins; len(got) != 2 || got[1] != "https://b.example" {
		t.Errorf("allowed_origins = %v", got)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "xgrowth.yml")

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("XGROWTH_EXPORT__OUTPUT_DIR=public\n"), 0644); err != nil {
		t.Fatal(err)
	}
	// godotenv sets the variable on the process; make sure it is cleared.
	t.Setenv("XGROWTH_EXPORT__OUTPUT_DIR", "")
	os.Unsetenv("XGROWTH_EXPORT__OUTPUT_DIR")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Export.OutputDir != "public" {
		t.Errorf("export.output_dir = %q, want public", loaded.Export.OutputDir)
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port zero", func(c *Config) { c.Server.Port = 0 }},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }},
		{"contact without database", func(c *Config) { c.Contact.Enabled = true; c.Contact.Database = "" }},
		{"negative rate", func(c *Config) { c.Contact.RatePerMinute = -1 }},
		{"empty output dir", func(c *Config) { c.Export.OutputDir = "" }},
		{"bad asset pattern", func(c *Config) { c.Export.Assets = []string{"img/[a-"} }},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestValidatePort(t *testing.T) {
	for _, ok := range []string{"1", "8080", "65535"} {
		if err := validatePort(ok); err != nil {
			t.Errorf("validatePort(%q) = %v", ok, err)
		}
	}
	for _, bad := range []string{"", "0", "abc", "65536"} {
		if err := validatePort(bad); err == nil {
			t.Errorf("validatePort(%q) should fail", bad)
		}
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"**/*.css", []string{"**/*.css"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}

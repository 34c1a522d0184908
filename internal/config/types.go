package config

// LogFormat selects the zap encoder.
type LogFormat string

const (
	LogConsole LogFormat = "console"
	LogJSON    LogFormat = "json"
)

// Config is the top-level xgrowth configuration, corresponding to xgrowth.yml.
type Config struct {
	Site    SiteConfig    `yaml:"site" koanf:"site"`
	Server  ServerConfig  `yaml:"server" koanf:"server"`
	Contact ContactConfig `yaml:"contact" koanf:"contact"`
	Export  ExportConfig  `yaml:"export" koanf:"export"`
	Log     LogConfig     `yaml:"log" koanf:"log"`
}

// SiteConfig points at the content document. An empty Content uses the
// embedded default.
type SiteConfig struct {
	Content string `yaml:"content" koanf:"content"`
	Title   string `yaml:"title" koanf:"title"`
}

// ServerConfig holds settings for `xgrowth serve`.
type ServerConfig struct {
	Port           int      `yaml:"port" koanf:"port"`
	Dev            bool     `yaml:"dev" koanf:"dev"`
	AllowedOrigins []string `yaml:"allowed_origins" koanf:"allowed_origins"`
	// TrustProxy reads client addresses from forwarding headers. Leave it
	// off unless a reverse proxy sets them.
	TrustProxy     bool     `yaml:"trust_proxy" koanf:"trust_proxy"`
}

// ContactConfig controls the contact form endpoint.
type ContactConfig struct {
	Enabled       bool   `yaml:"enabled" koanf:"enabled"`
	Database      string `yaml:"database" koanf:"database"`
	RatePerMinute int    `yaml:"rate_per_minute" koanf:"rate_per_minute"`
}

// ExportConfig holds settings for `xgrowth export`.
type ExportConfig struct {
	OutputDir string   `yaml:"output_dir" koanf:"output_dir"`
	Assets    []string `yaml:"assets" koanf:"assets"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string    `yaml:"level" koanf:"level"`
	Format LogFormat `yaml:"format" koanf:"format"`
}

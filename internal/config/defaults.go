package config

// DefaultPath is the configuration file read when --config is not given.
const DefaultPath = "xgrowth.yml"

// DefaultAssets are the doublestar globs copied into a static export.
var DefaultAssets = []string{
	"*.css",
	"*.js",
	"img/**/*.{svg,png,jpg,jpeg,webp}",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			Title: "X Growth System | 系统化实现你的 X 增长飞轮",
		},
		Server: ServerConfig{
			Port: 8080,
		},
		Contact: ContactConfig{
			Enabled:       false,
			Database:      "xgrowth.db",
			RatePerMinute: 5,
		},
		Export: ExportConfig{
			OutputDir: "dist",
			Assets:    append([]string(nil), DefaultAssets...),
		},
		Log: LogConfig{
			Level:  "info",
			Format: LogConsole,
		},
	}
}

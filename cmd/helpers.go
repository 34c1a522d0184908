package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mrbear1024/xgrowth/internal/config"
	"github.com/mrbear1024/xgrowth/internal/content"
	"github.com/mrbear1024/xgrowth/internal/logging"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `xgrowth init` to create a config file", err)
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logging.New(cfg.Log.Level, string(cfg.Log.Format))
}

// loadSite reads the configured content document, or the embedded default
// when none is configured.
func loadSite(cfg *config.Config) (*content.Site, error) {
	if cfg.Site.Content == "" {
		return content.Default()
	}
	site, err := content.LoadFile(cfg.Site.Content)
	if err != nil {
		return nil, fmt.Errorf("loading content %s: %w", cfg.Site.Content, err)
	}
	return site, nil
}

func logWarnings(logger *zap.Logger, site *content.Site) {
	for _, w := range site.Warnings() {
		logger.Warn("content warning", zap.String("warning", w))
	}
}

package livereload

import (
	"fmt"

	"github.com/knadh/koanf/providers/file"
	"go.uber.org/zap"

	"github.com/mrbear1024/xgrowth/internal/content"
)

// Reloader reloads a content file when it changes, publishes the new
// snapshot and tells the browsers. An invalid edit keeps the previous
// snapshot live.
type Reloader struct {
	path    string
	apply   func(*content.Site)
	hub     *Hub
	logger  *zap.Logger
	watcher *file.File
}

// NewReloader watches path. apply receives every successfully loaded site.
func NewReloader(path string, apply func(*content.Site), hub *Hub, logger *zap.Logger) *Reloader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reloader{path: path, apply: apply, hub: hub, logger: logger.Named("reload")}
}

// Reload loads the file once. On success the new site is applied and a
// reload message is broadcast.
func (r *Reloader) Reload() error {
	site, err := content.LoadFile(r.path)
	if err != nil {
		return err
	}
	for _, w := range site.Warnings() {
		r.logger.Warn("content warning", zap.String("warning", w))
	}
	r.apply(site)

	n := 0
	if r.hub != nil {
		n = r.hub.Broadcast(MessageReload)
	}
	r.logger.Info("content reloaded", zap.String("path", r.path), zap.Int("browsers", n))
	return nil
}

// Start begins watching the file.
func (r *Reloader) Start() error {
	r.watcher = file.Provider(r.path)
	err := r.watcher.Watch(func(event interface{}, err error) {
		if err != nil {
			r.logger.Error("watching content", zap.Error(err))
			return
		}
		if err := r.Reload(); err != nil {
			r.logger.Error("content reload rejected; keeping previous version", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("watching %s: %w", r.path, err)
	}
	r.logger.Info("watching content", zap.String("path", r.path))
	return nil
}

// Stop ends the watch.
func (r *Reloader) Stop() error {
	if r.watcher == nil {
		return nil
	}
	return r.watcher.Unwatch()
}

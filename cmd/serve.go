package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mrbear1024/xgrowth/internal/assets"
	"github.com/mrbear1024/xgrowth/internal/contact"
	"github.com/mrbear1024/xgrowth/internal/db"
	"github.com/mrbear1024/xgrowth/internal/livereload"
	"github.com/mrbear1024/xgrowth/internal/server"
)

var (
	servePort int
	serveDev  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the landing page over HTTP",
	Long: `Starts the landing page server. With contact.enabled the form posts to
/contact and submissions are stored in SQLite. With --dev the content file is
watched and open browsers reload after every valid edit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}
		if cmd.Flags().Changed("dev") {
			cfg.Server.Dev = serveDev
		}

		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer logger.Sync()

		site, err := loadSite(cfg)
		if err != nil {
			return err
		}
		logWarnings(logger, site)

		deps := server.Deps{Logger: logger, Static: assets.FS()}

		if cfg.Contact.Enabled {
			database, err := db.Open(cfg.Contact.Database)
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			defer database.Close()
			deps.Store = contact.NewStore(database)
			deps.Limiter = contact.NewLimiter(cfg.Contact.RatePerMinute)
		}

		if cfg.Server.Dev {
			deps.Hub = livereload.NewHub(logger)
		}

		srv := server.New(server.Config{
			Port:           cfg.Server.Port,
			Title:          cfg.Site.Title,
			Dev:            cfg.Server.Dev,
			AllowedOrigins: cfg.Server.AllowedOrigins,
			TrustProxy:     cfg.Server.TrustProxy,
		}, site, deps)

		if cfg.Server.Dev && cfg.Site.Content != "" {
			reloader := livereload.NewReloader(cfg.Site.Content, srv.SetSite, deps.Hub, logger)
			if err := reloader.Start(); err != nil {
				logger.Warn("live reload unavailable", zap.Error(err))
			} else {
				defer reloader.Stop()
			}
		}

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			logger.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		fmt.Fprintf(os.Stderr, "xgrowth %s serving on http://localhost:%d\n", Version, cfg.Server.Port)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "port to listen on (overrides server.port)")
	serveCmd.Flags().BoolVar(&serveDev, "dev", false, "watch the content file and live-reload browsers")
	rootCmd.AddCommand(serveCmd)
}

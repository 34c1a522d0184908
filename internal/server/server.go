package server

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/mrbear1024/xgrowth/internal/contact"
	"github.com/mrbear1024/xgrowth/internal/content"
	"github.com/mrbear1024/xgrowth/internal/livereload"
	"github.com/mrbear1024/xgrowth/internal/logging"
	"github.com/mrbear1024/xgrowth/internal/page"
	"github.com/mrbear1024/xgrowth/internal/view"
)

// Config holds server configuration.
type Config struct {
	Port           int
	Title          string
	Dev            bool     // enables live reload and allows all CORS origins
	AllowedOrigins []string // CORS origins for the contact endpoint
	// TrustProxy takes the client address from X-Forwarded-For / X-Real-IP.
	// Only set it behind a proxy that overwrites those headers.
	TrustProxy     bool
}

// Deps are the optional collaborators of a Server. A nil Store disables the
// contact endpoint; a nil Hub disables live reload.
type Deps struct {
	Logger  *zap.Logger
	Static  fs.FS
	Store   *contact.Store
	Limiter *contact.Limiter
	Hub     *livereload.Hub
}

// Server renders the landing page over HTTP.
type Server struct {
	cfg        Config
	deps       Deps
	logger     *zap.Logger
	site       atomic.Pointer[content.Site]
	router     chi.Router
	httpServer *http.Server
}

// New creates a server for site.
func New(cfg Config, site *content.Site, deps Deps) *Server {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	s := &Server{
		cfg:    cfg,
		deps:   deps,
		logger: deps.Logger.Named("server"),
	}
	s.site.Store(site)
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	if s.cfg.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(logging.Middleware(s.logger))
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if len(s.cfg.AllowedOrigins) > 0 {
		corsOpts.AllowedOrigins = s.cfg.AllowedOrigins
	}
	if s.cfg.Dev {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.With(middleware.Timeout(30*time.Second)).Get("/", s.handlePage)

	if s.deps.Static != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(s.deps.Static))))
	}

	if s.deps.Store != nil {
		h := contact.NewHandler(s.deps.Store, s.deps.Limiter, s.Site, s.renderForm, s.deps.Logger)
		contact.RegisterRoutes(r, h)
	}

	if s.cfg.Dev && s.deps.Hub != nil {
		r.Handle("/livereload", s.deps.Hub)
	}

	return r
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Site returns the content snapshot currently served.
func (s *Server) Site() *content.Site { return s.site.Load() }

// SetSite swaps the served content. Requests already rendering keep the
// snapshot they started with.
func (s *Server) SetSite(site *content.Site) { s.site.Store(site) }

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	form := view.Form{Sent: r.URL.Query().Get("sent") == "1"}
	s.renderForm(w, r, form, http.StatusOK)
}

// renderForm renders the page for the state in the request URL. It also
// serves as the contact handler's error page.
func (s *Server) renderForm(w http.ResponseWriter, r *http.Request, form view.Form, status int) {
	site := s.Site()

	ctrl := page.New(site, page.QueryEncoder{Path: "/"})
	defer ctrl.Teardown()
	ctrl.Restore(page.Decode(r.URL.Query(), site))

	if s.deps.Store != nil {
		form.Enabled = true
		form.Action = "/contact"
	}

	opts := view.Options{
		Title:      s.cfg.Title,
		AssetBase:  "/static/",
		LiveReload: s.cfg.Dev && s.deps.Hub != nil,
		Year:       time.Now().Year(),
		Form:       form,
	}

	var buf bytes.Buffer
	if err := view.Page(site, ctrl, opts).Render(&buf); err != nil {
		s.logger.Error("rendering page", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Info("xgrowth server listening", zap.String("addr", addr), zap.Bool("dev", s.cfg.Dev), zap.Bool("contact", s.deps.Store != nil))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.deps.Hub != nil {
		s.deps.Hub.Close()
	}
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

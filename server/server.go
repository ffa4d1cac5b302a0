// Package server exposes the word layout engine over HTTP so pages can be
// inspected without a terminal
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lixenwraith/wikijump/config"
	"github.com/lixenwraith/wikijump/content"
	"github.com/lixenwraith/wikijump/layout"
)

// Server is the HTTP API of the layout service
type Server struct {
	router   chi.Router
	resolver content.Resolver
	engine   *layout.Engine
	log      *slog.Logger
	cfg      config.ServerConfig
}

// NewServer wires the routes; engine is shared across requests and must use a
// concurrency-safe measurer
func NewServer(resolver content.Resolver, engine *layout.Engine, log *slog.Logger, cfg config.ServerConfig) *Server {
	s := &Server{
		resolver: resolver,
		engine:   engine,
		log:      log,
		cfg:      cfg,
	}
	s.setupRoutes()
	return s
}

// NewResolver builds the service's resolver
// Local files are served only from an explicitly configured content root
func NewResolver(cfg content.Config) *content.Router {
	r := content.NewRouter(cfg)
	if cfg.Root == "" {
		r.Files = nil
	}
	return r
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Get("/api/layout", s.handleLayout)
	r.Post("/api/layout", s.handleLayoutMarkdown)
	r.Get("/api/layout/sections", s.handleSections)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

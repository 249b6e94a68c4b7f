// Package api exposes the extraction pipeline over HTTP for build tooling
// that prefers a long-lived service to shelling out per file.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/shadowgen-hq/shadowgen/internal/config"
	"github.com/shadowgen-hq/shadowgen/internal/emitter"
)

// Server represents the API server
type Server struct {
	cfg      *config.Config
	router   *chi.Mux
	registry *emitter.Registry
}

// NewServer creates a new API server
func NewServer(cfg *config.Config) (*Server, error) {
	s := &Server{
		cfg:      cfg,
		router:   chi.NewRouter(),
		registry: emitter.NewRegistry(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s, nil
}

// Router returns the HTTP router
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(30 * time.Second))
}

func (s *Server) setupRoutes() {
	s.router.Get("/health", s.healthCheck)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/operations", s.listOperations)
		r.Post("/extract", s.extract)
	})
}

func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

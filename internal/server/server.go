// Package server exposes the extraction pipeline over HTTP.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"bankparse/statement-extract/internal/config"
	"bankparse/statement-extract/internal/extractor"
	"bankparse/statement-extract/internal/journal"
	"bankparse/statement-extract/internal/logging"
)

// Server wires the HTTP layer to the extraction pipeline. Each request runs
// an independent, stateless extraction pass; the journal is the only shared
// resource and serializes its own writes.
type Server struct {
	cfg       *config.Config
	extractor *extractor.Extractor
	journal   *journal.Journal
	log       logging.Logger
}

// New creates a Server.
func New(cfg *config.Config, ext *extractor.Extractor, jrnl *journal.Journal, logger logging.Logger) *Server {
	return &Server{
		cfg:       cfg,
		extractor: ext,
		journal:   jrnl,
		log:       logger,
	}
}

// Router builds the HTTP handler: CORS so a browser frontend can reach the
// API, recovery middleware, the upload endpoint, and a liveness probe.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	c := cors.New(cors.Options{
		AllowedOrigins: s.cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Length"},
	})
	r.Use(c.Handler)

	r.Post("/upload", s.handleUpload)
	r.Get("/healthz", s.handleHealth)

	return r
}

// ListenAndServe starts the HTTP server on the configured address.
func (s *Server) ListenAndServe() error {
	s.log.Info("Starting HTTP server",
		logging.Field{Key: "addr", Value: s.cfg.Server.Addr})
	return http.ListenAndServe(s.cfg.Server.Addr, s.Router())
}

package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dgallion1/calloutmd/internal/config"
	"github.com/dgallion1/calloutmd/internal/icons"
	"github.com/dgallion1/calloutmd/internal/pipeline"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server for calloutmd.
type Server struct {
	router       chi.Router
	orchestrator *pipeline.Orchestrator
	icons        *icons.Registry
	log          *slog.Logger
	cfg          config.Config
}

// NewServer creates and configures the HTTP server. A nil registry means
// the built-in icons.
func NewServer(orch *pipeline.Orchestrator, reg *icons.Registry, log *slog.Logger, cfg config.Config) *Server {
	if reg == nil {
		reg = icons.Default()
	}
	s := &Server{
		orchestrator: orch,
		icons:        reg,
		log:          log,
		cfg:          cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.APIKey, s.log))

		r.With(RequireJSON).Post("/api/render", s.handleRender)
		r.With(RequireJSON).Post("/api/render/batch", s.handleRenderBatch)

		r.With(RequireJSON).Post("/api/jobs", s.handleSubmitJob)
		r.Get("/api/jobs/{jobID}", s.handleJobStatus)

		r.Get("/api/icons", s.handleListIcons)
		r.Get("/api/stats", s.handleStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":      "ok",
		"stages":      s.orchestrator.Stages(),
		"queue_depth": s.orchestrator.QueueDepth(),
	})
}

func (s *Server) handleListIcons(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"icons": s.icons.Names()})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"render":      s.orchestrator.Stats(),
		"queue_depth": s.orchestrator.QueueDepth(),
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// Package web provides the HTTP API for the property assistant.
package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/evcraddock/property-assistant/internal/assistant"
	"github.com/evcraddock/property-assistant/internal/history"
	"github.com/evcraddock/property-assistant/internal/logging"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 64 << 10

// Server is the assistant HTTP API server.
type Server struct {
	service *assistant.Service
	history *history.History
	router  chi.Router
}

// NewServer creates an API server answering from service and reporting
// the given search history.
func NewServer(service *assistant.Service, hist *history.History) *Server {
	s := &Server{
		service: service,
		history: hist,
		router:  chi.NewRouter(),
	}

	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(logging.RequestLogger)
	s.router.Use(chimiddleware.Recoverer)

	s.router.Get("/health", s.handleHealth)
	s.router.Route("/api", func(r chi.Router) {
		r.Post("/query", s.apiQuery)
		r.Get("/filters", s.apiListFilters)

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", s.apiListProjects)
			r.Get("/{id}", s.apiGetProject)
			r.Get("/{id}/units", s.apiListUnits)
			r.Get("/{id}/faqs", s.apiListFAQs)
		})

		r.Route("/history", func(r chi.Router) {
			r.Get("/", s.apiGetHistory)
			r.Delete("/", s.apiClearHistory)
		})
	})

	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		apiError(w, "not found", http.StatusNotFound)
	})
	s.router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		apiError(w, "method not allowed", http.StatusMethodNotAllowed)
	})

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(port int) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("starting api server", "addr", "http://localhost"+srv.Addr)
	return srv.ListenAndServe()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	apiJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

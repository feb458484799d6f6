package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/evcraddock/property-assistant/internal/assistant"
	"github.com/evcraddock/property-assistant/internal/catalog"
)

// apiError writes a JSON error response.
func apiError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	resp := map[string]string{"error": msg}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("encoding error response", "err", err)
	}
}

// apiJSON writes a JSON response with the given status code.
func apiJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encoding response", "err", err)
	}
}

type queryRequest struct {
	Query     string `json:"query"`
	ProjectID string `json:"project_id"`
}

type historyResponse struct {
	History []string `json:"history"`
}

// apiQuery answers a question.
func (s *Server) apiQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		apiError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	result, err := s.service.Ask(req.Query, req.ProjectID)
	switch {
	case errors.Is(err, assistant.ErrEmptyQuery):
		apiError(w, "query is required", http.StatusBadRequest)
		return
	case errors.Is(err, catalog.ErrProjectNotFound):
		apiError(w, err.Error(), http.StatusNotFound)
		return
	case err != nil:
		slog.Error("answering query", "err", err)
		apiError(w, assistant.ErrorText, http.StatusInternalServerError)
		return
	}

	apiJSON(w, assistant.NewAnswer(result), http.StatusOK)
}

// apiListFilters returns the quick filters.
func (s *Server) apiListFilters(w http.ResponseWriter, r *http.Request) {
	apiJSON(w, s.service.Filters(), http.StatusOK)
}

// apiListProjects returns every project.
func (s *Server) apiListProjects(w http.ResponseWriter, r *http.Request) {
	apiJSON(w, s.service.Catalog().Projects, http.StatusOK)
}

// apiGetProject returns one project.
func (s *Server) apiGetProject(w http.ResponseWriter, r *http.Request) {
	p, ok := s.project(w, r)
	if !ok {
		return
	}
	apiJSON(w, p, http.StatusOK)
}

// apiListUnits returns a project's units.
func (s *Server) apiListUnits(w http.ResponseWriter, r *http.Request) {
	p, ok := s.project(w, r)
	if !ok {
		return
	}
	units := s.service.Catalog().UnitsForProject(p.ID)
	if units == nil {
		units = []catalog.Unit{}
	}
	apiJSON(w, units, http.StatusOK)
}

// apiListFAQs returns a project's FAQs.
func (s *Server) apiListFAQs(w http.ResponseWriter, r *http.Request) {
	p, ok := s.project(w, r)
	if !ok {
		return
	}
	faqs := s.service.Catalog().FAQsForProject(p.ID)
	if faqs == nil {
		faqs = []catalog.FAQ{}
	}
	apiJSON(w, faqs, http.StatusOK)
}

// project resolves the {id} path parameter, writing a 404 when unknown.
func (s *Server) project(w http.ResponseWriter, r *http.Request) (*catalog.Project, bool) {
	p, err := s.service.Catalog().Project(chi.URLParam(r, "id"))
	if err != nil {
		apiError(w, err.Error(), http.StatusNotFound)
		return nil, false
	}
	return p, true
}

// apiGetHistory returns recent queries, newest first.
func (s *Server) apiGetHistory(w http.ResponseWriter, r *http.Request) {
	entries := s.history.Entries()
	if entries == nil {
		entries = []string{}
	}
	apiJSON(w, historyResponse{History: entries}, http.StatusOK)
}

// apiClearHistory empties the search history.
func (s *Server) apiClearHistory(w http.ResponseWriter, r *http.Request) {
	if err := s.history.Clear(); err != nil {
		slog.Error("clearing history", "err", err)
		apiError(w, "clearing history failed", http.StatusInternalServerError)
		return
	}
	apiJSON(w, historyResponse{History: []string{}}, http.StatusOK)
}

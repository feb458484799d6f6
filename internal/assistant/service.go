package assistant

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/evcraddock/property-assistant/internal/catalog"
)

// ErrEmptyQuery is returned when a query has no text.
var ErrEmptyQuery = errors.New("query is empty")

// HistoryRecorder records submitted queries.
type HistoryRecorder interface {
	Add(query string) error
}

// Service answers queries against a catalog and records them in history.
type Service struct {
	catalog    *catalog.Catalog
	dispatcher *Dispatcher
	history    HistoryRecorder
}

// NewService creates a service. history may be nil.
func NewService(c *catalog.Catalog, history HistoryRecorder) *Service {
	return &Service{
		catalog:    c,
		dispatcher: NewDispatcher(FiltersFromTags(c.Filters)),
		history:    history,
	}
}

// Catalog returns the catalog the service answers from.
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// Filters returns the quick filters offered to users.
func (s *Service) Filters() []QuickFilter {
	return s.dispatcher.Filters()
}

// Ask answers query for the project with the given id. An empty projectID
// searches every project.
func (s *Service) Ask(query, projectID string) (Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Result{}, ErrEmptyQuery
	}

	var project *catalog.Project
	units, faqs := s.catalog.Units, s.catalog.FAQs
	if projectID != "" {
		p, err := s.catalog.Project(projectID)
		if err != nil {
			return Result{}, fmt.Errorf("asking: %w", err)
		}
		project = p
		units = s.catalog.UnitsForProject(p.ID)
		faqs = s.catalog.FAQsForProject(p.ID)
	}

	if s.history != nil {
		if err := s.history.Add(query); err != nil {
			slog.Warn("recording search history", "err", err)
		}
	}

	result := s.process(query, project, units, faqs)
	slog.Debug("query answered", "query", query, "project", projectID, "type", result.Type)
	return result, nil
}

// process runs the dispatcher, turning a panic into the generic error answer.
func (s *Service) process(query string, project *catalog.Project, units []catalog.Unit, faqs []catalog.FAQ) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("processing query", "query", query, "panic", r)
			result = errorResult()
		}
	}()
	return s.dispatcher.Process(query, project, units, faqs)
}

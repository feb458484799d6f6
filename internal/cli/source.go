package cli

import (
	"github.com/evcraddock/property-assistant/internal/assistant"
	"github.com/evcraddock/property-assistant/internal/catalog"
)

// source answers catalog lookups, either from the local catalog or from
// the API server when --remote is set.
type source interface {
	Projects() ([]catalog.Project, error)
	Project(id string) (*catalog.Project, error)
	Units(projectID string) ([]catalog.Unit, error)
	FAQs(projectID string) ([]catalog.FAQ, error)
	Filters() ([]assistant.QuickFilter, error)
}

type localSource struct {
	c *catalog.Catalog
}

func (l localSource) Projects() ([]catalog.Project, error) { return l.c.Projects, nil }

func (l localSource) Project(id string) (*catalog.Project, error) { return l.c.Project(id) }

func (l localSource) Units(projectID string) ([]catalog.Unit, error) {
	return l.c.UnitsForProject(projectID), nil
}

func (l localSource) FAQs(projectID string) ([]catalog.FAQ, error) {
	return l.c.FAQsForProject(projectID), nil
}

func (l localSource) Filters() ([]assistant.QuickFilter, error) {
	return assistant.FiltersFromTags(l.c.Filters), nil
}

// openSource returns the API client with --remote and the local catalog
// otherwise.
func openSource() (source, error) {
	if flagRemote {
		return newAPIClient(), nil
	}
	c, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	return localSource{c: c}, nil
}

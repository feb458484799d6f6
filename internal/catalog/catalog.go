package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var defaultCatalog []byte

// ErrProjectNotFound is returned when a project id is not in the catalog.
var ErrProjectNotFound = errors.New("project not found")

// Catalog holds the read-only project, unit, FAQ and filter records.
type Catalog struct {
	Projects []Project   `yaml:"projects" json:"projects"`
	Units    []Unit      `yaml:"units" json:"units"`
	FAQs     []FAQ       `yaml:"faqs" json:"faqs"`
	Filters  []FilterTag `yaml:"filters" json:"filters"`
}

// Default returns the catalog shipped with the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load returns the catalog at path, or the embedded catalog when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog document and validates it.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validating catalog: %w", err)
	}
	return &c, nil
}

// Validate checks id uniqueness, availability values and that every unit
// and FAQ references an existing project.
func (c *Catalog) Validate() error {
	projectIDs := make(map[string]bool, len(c.Projects))
	for _, p := range c.Projects {
		if p.ID == "" {
			return fmt.Errorf("project %q has no id", p.Name)
		}
		if projectIDs[p.ID] {
			return fmt.Errorf("duplicate project id %q", p.ID)
		}
		projectIDs[p.ID] = true
	}

	unitIDs := make(map[string]bool, len(c.Units))
	for _, u := range c.Units {
		if unitIDs[u.ID] {
			return fmt.Errorf("duplicate unit id %q", u.ID)
		}
		unitIDs[u.ID] = true
		if !projectIDs[u.ProjectID] {
			return fmt.Errorf("unit %q references unknown project %q", u.ID, u.ProjectID)
		}
		if !u.Availability.IsValid() {
			return fmt.Errorf("unit %q has invalid availability %q", u.ID, u.Availability)
		}
	}

	faqIDs := make(map[string]bool, len(c.FAQs))
	for _, f := range c.FAQs {
		if faqIDs[f.ID] {
			return fmt.Errorf("duplicate faq id %q", f.ID)
		}
		faqIDs[f.ID] = true
		if !projectIDs[f.ProjectID] {
			return fmt.Errorf("faq %q references unknown project %q", f.ID, f.ProjectID)
		}
	}

	for _, t := range c.Filters {
		if t.Label == "" || t.Query == "" {
			return fmt.Errorf("filter %q needs a label and a query", t.ID)
		}
	}

	return nil
}

// Project returns the project with the given id.
func (c *Catalog) Project(id string) (*Project, error) {
	for i := range c.Projects {
		if c.Projects[i].ID == id {
			return &c.Projects[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
}

// DefaultProject returns the first project, or nil for an empty catalog.
func (c *Catalog) DefaultProject() *Project {
	if len(c.Projects) == 0 {
		return nil
	}
	return &c.Projects[0]
}

// UnitsForProject returns the units belonging to a project, in catalog order.
func (c *Catalog) UnitsForProject(projectID string) []Unit {
	var units []Unit
	for _, u := range c.Units {
		if u.ProjectID == projectID {
			units = append(units, u)
		}
	}
	return units
}

// FAQsForProject returns the FAQs belonging to a project, in catalog order.
func (c *Catalog) FAQsForProject(projectID string) []FAQ {
	var faqs []FAQ
	for _, f := range c.FAQs {
		if f.ProjectID == projectID {
			faqs = append(faqs, f)
		}
	}
	return faqs
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

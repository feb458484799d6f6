package assistant

import (
	"errors"
	"reflect"
	"testing"

	"github.com/evcraddock/property-assistant/internal/catalog"
)

type recorder struct {
	queries []string
	err     error
}

func (r *recorder) Add(query string) error {
	r.queries = append(r.queries, query)
	return r.err
}

type panicking struct{}

func (panicking) Name() string            { return "panicking" }
func (panicking) Process(q Query) *Result { panic("boom") }

func TestAskRecordsHistory(t *testing.T) {
	c := loadCatalog(t)
	rec := &recorder{}
	svc := NewService(c, rec)

	if _, err := svc.Ask("  where is it?  ", "greenfield-shantigram"); err != nil {
		t.Fatalf("ask: %v", err)
	}
	if !reflect.DeepEqual(rec.queries, []string{"where is it?"}) {
		t.Errorf("recorded %v", rec.queries)
	}
}

func TestAskHistoryFailureStillAnswers(t *testing.T) {
	c := loadCatalog(t)
	svc := NewService(c, &recorder{err: errors.New("disk full")})

	r, err := svc.Ask("where is it?", "greenfield-shantigram")
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if r.Type != TypeProject {
		t.Errorf("type = %q, want project", r.Type)
	}
}

func TestAskErrors(t *testing.T) {
	c := loadCatalog(t)
	rec := &recorder{}
	svc := NewService(c, rec)

	if _, err := svc.Ask("   ", ""); !errors.Is(err, ErrEmptyQuery) {
		t.Errorf("blank query: err = %v, want ErrEmptyQuery", err)
	}
	if _, err := svc.Ask("price", "missing"); !errors.Is(err, catalog.ErrProjectNotFound) {
		t.Errorf("unknown project: err = %v, want ErrProjectNotFound", err)
	}
	if len(rec.queries) != 0 {
		t.Errorf("failed asks should not be recorded, got %v", rec.queries)
	}
}

func TestAskRecoversFromPanics(t *testing.T) {
	c := loadCatalog(t)
	svc := NewService(c, nil)
	svc.dispatcher = NewDispatcher(nil, panicking{})

	r, err := svc.Ask("anything", "")
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if r.Text != ErrorText || r.Type != TypeGeneral {
		t.Errorf("got %+v, want the error result", r)
	}
}

// Every record attached to an answer must belong to the selected project.
func TestAskRelatedItemsBelongToProject(t *testing.T) {
	c := loadCatalog(t)
	svc := NewService(c, nil)

	queries := []string{
		"under 2 crore", "under 5 crore", "3 BHK", "Penthouses", "vastu", "price",
		"what is the rera number", "amenities", "location", "Investment ROI", "east facing units",
	}
	for _, p := range c.Projects {
		for _, q := range queries {
			r, err := svc.Ask(q, p.ID)
			if err != nil {
				t.Fatalf("ask %q: %v", q, err)
			}
			for _, item := range r.RelatedItems {
				if item.OwnerID() != p.ID {
					t.Errorf("project %s, query %q: %s owned by %s", p.ID, q, item.Kind(), item.OwnerID())
				}
			}
		}
	}
}

func TestFilters(t *testing.T) {
	c := loadCatalog(t)
	svc := NewService(c, nil)

	filters := svc.Filters()
	if len(filters) != len(c.Filters) {
		t.Fatalf("got %d filters, want %d", len(filters), len(c.Filters))
	}
	if filters[0].Label != c.Filters[0].Label || filters[0].Query != c.Filters[0].Query {
		t.Errorf("first filter = %+v", filters[0])
	}
}

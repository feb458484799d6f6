package assistant

import (
	"reflect"
	"testing"

	"github.com/evcraddock/property-assistant/internal/catalog"
)

func TestMatchFAQ(t *testing.T) {
	c := loadCatalog(t)
	greenfield := mustProject(t, c, "greenfield-shantigram")
	gift := mustProject(t, c, "gift-city-tower")

	tests := []struct {
		name    string
		query   string
		project *catalog.Project
		wantID  string
	}{
		{"tag and words", "What is the RERA number?", greenfield, "gf-faq-01"},
		{"tag beats project name", "Tell me about Shivalik Greenfield amenities", greenfield, "gf-faq-06"},
		{"investment", "what kind of rental yield can I expect", greenfield, "gf-faq-09"},
		{"scoped to project", "what is the rera number", gift, ""},
		{"all projects", "price range for apartments", nil, "gift-faq-02"},
		{"no overlap", "hello", greenfield, ""},
		{"blank", "", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := MatchFAQ(NewQuery(tt.query, tt.project, c.Units, c.FAQs))
			if tt.wantID == "" {
				if r != nil {
					t.Fatalf("expected no match, got %+v", r.RelatedItems)
				}
				return
			}
			if r == nil {
				t.Fatal("expected a match")
			}
			if r.Type != TypeFAQ {
				t.Errorf("type = %q, want faq", r.Type)
			}
			f, ok := r.RelatedItems[0].(*catalog.FAQ)
			if !ok || f.ID != tt.wantID {
				t.Fatalf("related = %+v, want %s", r.RelatedItems, tt.wantID)
			}
			if r.Text != f.Answer {
				t.Errorf("text should be the FAQ answer, got %q", r.Text)
			}
		})
	}
}

func TestMatchFAQTieGoesToFirst(t *testing.T) {
	faqs := []catalog.FAQ{
		{ID: "first", ProjectID: "p1", Question: "Q?", Answer: "one", Tags: []string{"parking"}},
		{ID: "second", ProjectID: "p1", Question: "Q?", Answer: "two", Tags: []string{"parking"}},
	}

	r := MatchFAQ(NewQuery("parking", nil, nil, faqs))
	if r == nil || r.Text != "one" {
		t.Errorf("got %+v, want the first FAQ", r)
	}
}

func TestSignificantWords(t *testing.T) {
	got := significantWords("What is the RERA registration number for Shivalik Greenfield?")
	want := []string{"rera", "registration", "number", "shivalik", "greenfield"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

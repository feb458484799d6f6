package assistant

import (
	"strings"

	"github.com/evcraddock/property-assistant/internal/catalog"
)

// Query is one question with the records it may be answered from.
type Query struct {
	Text    string
	Lower   string
	Project *catalog.Project // nil when no project is selected
	Units   []catalog.Unit
	FAQs    []catalog.FAQ
}

// NewQuery builds a query over the given records.
func NewQuery(text string, project *catalog.Project, units []catalog.Unit, faqs []catalog.FAQ) Query {
	return Query{
		Text:    text,
		Lower:   strings.ToLower(text),
		Project: project,
		Units:   units,
		FAQs:    faqs,
	}
}

// Processor answers one category of question. Process returns nil when the
// query is not about its category.
type Processor interface {
	Name() string
	Process(q Query) *Result
}

// topic is a keyword-triggered processor.
type topic struct {
	name      string
	keywords  []string
	noProject string
	answer    func(q Query) *Result
	// otherwise runs when no keyword matched.
	otherwise func(q Query) *Result
}

func (t *topic) Name() string { return t.name }

// Matches reports whether any keyword appears in the lowercased text.
func (t *topic) Matches(lower string) bool {
	return containsAny(lower, t.keywords)
}

func (t *topic) Process(q Query) *Result {
	if !t.Matches(q.Lower) {
		if t.otherwise != nil {
			return t.otherwise(q)
		}
		return nil
	}
	if q.Project == nil {
		return generalResult(t.noProject)
	}
	return t.answer(q)
}

// DefaultProcessors returns the processors in the order they are consulted.
// Earlier processors win when a query mentions several categories.
func DefaultProcessors() []Processor {
	return []Processor{
		withLegacyTemplates(pricingProcessor(), legacyPricingTemplates),
		withLegacyTemplates(ecoProcessor(), legacyEcoTemplates),
		unitsProcessor(),
		locationProcessor(),
		amenitiesProcessor(),
		specificationsProcessor(),
		possessionProcessor(),
		overviewProcessor(),
	}
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

// projectUnits returns pointers to the units owned by the project.
func projectUnits(q Query) []*catalog.Unit {
	var units []*catalog.Unit
	for i := range q.Units {
		if q.Project != nil && q.Units[i].ProjectID == q.Project.ID {
			units = append(units, &q.Units[i])
		}
	}
	return units
}

// lines joins non-empty lines.
func lines(ls ...string) string {
	var out []string
	for _, l := range ls {
		if l != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}

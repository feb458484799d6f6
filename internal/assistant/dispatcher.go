package assistant

import (
	"fmt"
	"strings"

	"github.com/evcraddock/property-assistant/internal/catalog"
)

// suggestedCategories is how many categories the fallback answer names.
const suggestedCategories = 3

// Dispatcher routes a query through quick filters, FAQs and processors.
// It holds no per-query state and is safe for concurrent use.
type Dispatcher struct {
	filters    []QuickFilter
	processors []Processor
}

// NewDispatcher creates a dispatcher. With no processors given it uses
// DefaultProcessors.
func NewDispatcher(filters []QuickFilter, processors ...Processor) *Dispatcher {
	if len(processors) == 0 {
		processors = DefaultProcessors()
	}
	return &Dispatcher{filters: filters, processors: processors}
}

// Process answers query from the given records. project may be nil. It
// always returns a result.
func (d *Dispatcher) Process(query string, project *catalog.Project, units []catalog.Unit, faqs []catalog.FAQ) Result {
	lower := strings.ToLower(query)
	if f, ok := d.matchFilter(lower); ok {
		if r := d.match(NewQuery(f.Query, project, units, faqs)); r != nil {
			r.Text += f.Suffix()
			return *r
		}
	}
	if r := d.match(NewQuery(query, project, units, faqs)); r != nil {
		return *r
	}
	return fallback(project)
}

// Filters returns the quick filters in match order.
func (d *Dispatcher) Filters() []QuickFilter {
	return d.filters
}

func (d *Dispatcher) matchFilter(lower string) (QuickFilter, bool) {
	for _, f := range d.filters {
		if f.Matches(lower) {
			return f, true
		}
	}
	return QuickFilter{}, false
}

func (d *Dispatcher) match(q Query) *Result {
	if r := MatchFAQ(q); r != nil {
		return r
	}
	for _, p := range d.processors {
		if r := p.Process(q); r != nil {
			return r
		}
	}
	return nil
}

func fallback(project *catalog.Project) Result {
	name := "our properties"
	if project != nil {
		name = project.Name
	}
	return Result{
		Type: TypeGeneral,
		Text: fmt.Sprintf("I'm not sure about that specific question. Could you please rephrase your question about %s?\n\nYou can ask about: %s, and more.\n\nTry being more specific about what aspect you'd like to know about.",
			name, strings.Join(Categories[:suggestedCategories], ", ")),
	}
}

// Package assistant answers free-text property questions from the catalog
// using quick-filter rewrites, FAQ matching and keyword processors.
package assistant

import (
	"github.com/evcraddock/property-assistant/internal/catalog"
	"github.com/evcraddock/property-assistant/internal/formatter"
)

// ResultType tells a renderer how to present an answer.
type ResultType string

const (
	TypeGeneral ResultType = "general"
	TypeProject ResultType = "project"
	TypeUnit    ResultType = "unit"
	TypeFAQ     ResultType = "faq"
)

// ValidResultTypes is the set of result types the assistant produces.
var ValidResultTypes = []ResultType{TypeGeneral, TypeProject, TypeUnit, TypeFAQ}

// IsValid checks if a result type is recognized.
func (t ResultType) IsValid() bool {
	for _, v := range ValidResultTypes {
		if t == v {
			return true
		}
	}
	return false
}

// ErrorText is shown when answering a query fails unexpectedly.
const ErrorText = "Sorry, there was an error processing your query. Please try again."

// Result is the answer to one query.
type Result struct {
	Text         string           `json:"text"`
	Type         ResultType       `json:"type"`
	RelatedItems []catalog.Record `json:"relatedItems,omitempty"`
}

// Answer pairs a result with its parsed card for display.
type Answer struct {
	Result Result         `json:"result"`
	Card   formatter.Card `json:"card"`
}

// NewAnswer parses the result text into a card.
func NewAnswer(r Result) Answer {
	return Answer{Result: r, Card: formatter.Format(r.Text)}
}

// Units returns the related units of the result, in order.
func (r Result) Units() []catalog.Unit {
	var units []catalog.Unit
	for _, item := range r.RelatedItems {
		if u, ok := item.(*catalog.Unit); ok {
			units = append(units, *u)
		}
	}
	return units
}

func generalResult(text string) *Result {
	return &Result{Text: text, Type: TypeGeneral}
}

func projectResult(text string, p *catalog.Project) *Result {
	return &Result{Text: text, Type: TypeProject, RelatedItems: []catalog.Record{p}}
}

func unitResult(text string, units []*catalog.Unit) *Result {
	items := make([]catalog.Record, 0, len(units))
	for _, u := range units {
		items = append(items, u)
	}
	return &Result{Text: text, Type: TypeUnit, RelatedItems: items}
}

func faqResult(f *catalog.FAQ) *Result {
	return &Result{Text: f.Answer, Type: TypeFAQ, RelatedItems: []catalog.Record{f}}
}

func errorResult() Result {
	return Result{Text: ErrorText, Type: TypeGeneral}
}

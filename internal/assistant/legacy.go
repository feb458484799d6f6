package assistant

import (
	"strings"

	"github.com/evcraddock/property-assistant/internal/catalog"
	"github.com/evcraddock/property-assistant/internal/formatter"
)

// legacyTemplate renders a fixed answer for one named project.
type legacyTemplate func(p *catalog.Project) string

// legacyTemplates answers with a hand-written template when the selected
// project's name has one, and defers to the wrapped topic otherwise.
type legacyTemplates struct {
	*topic
	byName map[string]legacyTemplate
}

func withLegacyTemplates(t *topic, byName map[string]legacyTemplate) Processor {
	return &legacyTemplates{topic: t, byName: byName}
}

func (l *legacyTemplates) Process(q Query) *Result {
	if q.Project != nil && l.Matches(q.Lower) {
		if tmpl, ok := l.byName[q.Project.Name]; ok {
			return projectResult(tmpl(q.Project), q.Project)
		}
	}
	return l.topic.Process(q)
}

// No catalog project is named "Greenfield"; the template only fires for a
// catalog that adds one.
var legacyPricingTemplates = map[string]legacyTemplate{
	"Greenfield": func(p *catalog.Project) string {
		return "Greenfield offers 3 BHK apartments starting from ₹1.5 Cr and 4 BHK penthouses from ₹2.78 Cr. Flexible payment plans are available, and we can help facilitate home loans through our partner banks. The maintenance charges are approximately ₹2.5 per sq.ft per month. Please speak with our sales team for current offers and detailed pricing."
	},
}

var legacyEcoTemplates = map[string]legacyTemplate{
	"Shivalik Greenfield": func(p *catalog.Project) string {
		return strings.Join([]string{
			"Green Building Certification: " + p.Certification + " with exceptional environmental features",
			"",
			formatter.SectionMarker(3),
			formatter.Line(formatter.IconConstruction, "Sustainable Design", "70% open space design with 270° open views"),
			formatter.Line(formatter.IconGlobe, "Environmental Features", "Water conservation systems and waste management solutions"),
			formatter.Line(formatter.IconBulb, "Green Living", "Energy-efficient lighting and ventilation systems"),
			formatter.Line(formatter.IconHerb, "Eco-Location", "Located in Shantigram's eco-friendly zone near Adani Township"),
			"",
			formatter.SectionMarker(4),
			formatter.Line(formatter.IconConstruction, "Sustainable Design", "Premium eco-friendly construction using sustainable materials"),
			formatter.Line(formatter.IconGlobe, "Environmental Features", "Minimal environmental impact with only 2 apartments per wing"),
			formatter.Line(formatter.IconBulb, "Green Living", "Advanced energy-efficient systems and natural lighting"),
			formatter.Line(formatter.IconHerb, "Eco-Location", "Private terraces with green views and eco-friendly transportation connectivity"),
		}, "\n")
	},
}

package assistant

import (
	"fmt"
	"strings"

	"github.com/evcraddock/property-assistant/internal/catalog"
	"github.com/evcraddock/property-assistant/internal/formatter"
)

func ecoProcessor() *topic {
	return &topic{
		name:      "eco",
		keywords:  []string{"green building", "eco-friendly", "sustainable", "certification", "pre-certified", "environment", "open space"},
		noProject: "Please select a project to get specific information about green building features.",
		answer:    ecoAnswer,
	}
}

func ecoAnswer(q Query) *Result {
	p := q.Project
	if p.Certification == "" {
		return projectResult(fmt.Sprintf(
			"%s incorporates modern design principles with focus on natural light and ventilation. Please contact our sales team for specific information about eco-friendly features of this project.",
			p.Name), p)
	}
	return projectResult(lines(
		"Green Building Certification",
		formatter.Line(formatter.IconHerb, "Certification", p.Certification),
		optionalLine(formatter.IconTree, "Open Space", p.OpenSpace),
		formatter.Line(formatter.IconBulb, "Design", "Modern design with focus on natural light and ventilation"),
	), p)
}

func locationProcessor() *topic {
	return &topic{
		name:      "location",
		keywords:  []string{"location", "where", "connectivity", "distance", "nearby", "address", "how far", "airport", "highway"},
		noProject: "Please select a project to get location and connectivity details.",
		answer:    locationAnswer,
	}
}

func locationAnswer(q Query) *Result {
	p := q.Project
	out := []string{
		"Location & Connectivity",
		formatter.Line(formatter.IconPin, "Location", p.Location),
		optionalLine(formatter.IconBuilding, "Address", p.FullAddress),
	}
	if p.Transport != nil {
		if len(p.Transport.Roads) > 0 {
			out = append(out, formatter.Line(formatter.IconCar, "Major Roads", strings.Join(p.Transport.Roads, ", ")))
		}
		for _, d := range p.Transport.Distances {
			out = append(out, formatter.Line(placeIcon(d.Place), d.Place, d.Time))
		}
	}
	return projectResult(lines(out...), p)
}

func placeIcon(place string) string {
	lower := strings.ToLower(place)
	switch {
	case strings.Contains(lower, "hospital"):
		return formatter.IconHospital
	case strings.Contains(lower, "school"), strings.Contains(lower, "university"):
		return formatter.IconSchool
	default:
		return formatter.IconCar
	}
}

func specificationsProcessor() *topic {
	return &topic{
		name:      "specifications",
		keywords:  []string{"specification", "flooring", "material", "fittings", "wiring", "kitchen", "doors", "windows", "lifts", "elevator"},
		noProject: "Please select a project to see construction specifications.",
		answer:    specificationsAnswer,
	}
}

func specificationsAnswer(q Query) *Result {
	p := q.Project
	s := p.Specifications
	if s == nil {
		return projectResult(fmt.Sprintf("Please contact our sales team for detailed specifications of %s.", p.Name), p)
	}
	return projectResult(lines(
		"Construction Specifications",
		optionalLine(formatter.IconConstruction, "Flooring", joinLabeled(s.Flooring)),
		optionalLine(formatter.IconLock, "Doors", joinLabeled(s.Doors)),
		optionalLine(formatter.IconBuilding, "Windows", s.Windows),
		optionalLine(formatter.IconBolt, "Electrical", strings.Join(s.Electrical, ", ")),
		optionalLine(formatter.IconClipboard, "Toilets", strings.Join(s.Toilets, ", ")),
		optionalLine(formatter.IconTarget, "Kitchen", strings.Join(s.Kitchen, ", ")),
		optionalLine(formatter.IconConstruction, "Finish", joinLabeled(s.Color)),
		optionalLine(formatter.IconBuilding, "Lifts", p.Lifts),
	), p)
}

func possessionProcessor() *topic {
	return &topic{
		name:      "possession",
		keywords:  []string{"possession", "completion", "ready to move", "handover", "rera", "timeline", "registration"},
		noProject: "Please select a project to get possession and registration details.",
		answer:    possessionAnswer,
	}
}

func possessionAnswer(q Query) *Result {
	p := q.Project
	ready := ""
	if strings.Contains(q.Lower, "ready to move") {
		switch {
		case strings.EqualFold(p.Status, "Ready to Move"):
			ready = "Yes"
		case p.CompletionDate != "":
			ready = "No, possession expected " + p.CompletionDate
		default:
			ready = "No"
		}
	}
	return projectResult(lines(
		"Possession & Registration",
		optionalLine(formatter.IconBuilding, "Status", p.Status),
		optionalLine(formatter.IconTarget, "Ready to Move", ready),
		optionalLine(formatter.IconCalendar, "Possession", p.CompletionDate),
		optionalLine(formatter.IconClipboard, "RERA Number", p.ReraNumber),
		optionalLine(formatter.IconSearch, "Verify At", p.Website),
	), p)
}

func overviewProcessor() *topic {
	return &topic{
		name:      "overview",
		keywords:  []string{"overview", "about the project", "tell me about", "developer", "towers", "floors"},
		noProject: "Please select a project to get an overview.",
		answer:    overviewAnswer,
	}
}

func overviewAnswer(q Query) *Result {
	p := q.Project
	towers := ""
	if p.Towers > 0 {
		towers = fmt.Sprintf("%d towers, %d storeys", p.Towers, p.Storeys)
	}
	return projectResult(lines(
		p.Name,
		formatter.Line(formatter.IconPin, "Location", p.Location),
		optionalLine(formatter.IconBuilding, "Type", p.Type),
		optionalLine(formatter.IconConstruction, "Developer", p.Developer),
		optionalLine(formatter.IconCalendar, "Status", p.Status),
		optionalLine(formatter.IconNumbers, "Towers", towers),
		optionalLine(formatter.IconTree, "Land Area", p.LandArea),
		optionalLine(formatter.IconTree, "Open Space", p.OpenSpace),
		optionalLine(formatter.IconHerb, "Certification", p.Certification),
		optionalLine(formatter.IconClipboard, "About", p.Description),
	), p)
}

// optionalLine renders a data line, or "" when value is empty.
func optionalLine(icon, key, value string) string {
	if value == "" {
		return ""
	}
	return formatter.Line(icon, key, value)
}

func joinLabeled(values []catalog.LabeledValue) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, v.Label+" - "+v.Value)
	}
	return strings.Join(parts, ", ")
}

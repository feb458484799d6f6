package assistant

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/evcraddock/property-assistant/internal/catalog"
	"github.com/evcraddock/property-assistant/internal/formatter"
)

var bhkPattern = regexp.MustCompile(`(\d+)[\s-]*(?:bhk|bedroom)`)

func unitsProcessor() *topic {
	return &topic{
		name:      "units",
		keywords:  []string{"unit", "bhk", "bedroom", "apartment", "penthouse", "configuration", "floor plan", "layout", "vastu", "facing"},
		noProject: "Please select a project to see available units.",
		answer:    unitsAnswer,
	}
}

// unitFilter narrows a project's units by what the question asks for.
type unitFilter struct {
	bedrooms  int
	penthouse bool
	vastu     bool
	facing    string
}

func parseUnitFilter(lower string) unitFilter {
	var uf unitFilter
	if m := bhkPattern.FindStringSubmatch(lower); m != nil {
		uf.bedrooms, _ = strconv.Atoi(m[1])
	}
	uf.penthouse = strings.Contains(lower, "penthouse")
	uf.vastu = strings.Contains(lower, "vastu")
	for _, dir := range []string{"east", "west", "north", "south"} {
		if strings.Contains(lower, dir+" facing") || strings.Contains(lower, dir+"-facing") {
			uf.facing = dir
			break
		}
	}
	return uf
}

func (uf unitFilter) match(u *catalog.Unit) bool {
	if uf.bedrooms > 0 && u.Bedrooms != uf.bedrooms {
		return false
	}
	if uf.penthouse && !strings.Contains(strings.ToLower(u.Type), "penthouse") {
		return false
	}
	if uf.vastu && !u.HasFeature("Vastu Compliant") {
		return false
	}
	if uf.facing != "" && !u.HasFeature(uf.facing+" facing") {
		return false
	}
	return true
}

// describe names the active refinements, or "" when there are none.
func (uf unitFilter) describe() string {
	var parts []string
	if uf.bedrooms > 0 {
		parts = append(parts, fmt.Sprintf("%d bedroom", uf.bedrooms))
	}
	if uf.penthouse {
		parts = append(parts, "penthouse")
	}
	if uf.vastu {
		parts = append(parts, "Vastu compliant")
	}
	if uf.facing != "" {
		parts = append(parts, uf.facing+" facing")
	}
	return strings.Join(parts, ", ")
}

func unitsAnswer(q Query) *Result {
	p := q.Project
	all := projectUnits(q)
	if len(all) == 0 {
		return projectResult(fmt.Sprintf("Please contact our sales team for unit availability in %s.", p.Name), p)
	}

	uf := parseUnitFilter(q.Lower)
	var matched []*catalog.Unit
	for _, u := range all {
		if uf.match(u) {
			matched = append(matched, u)
		}
	}
	desc := uf.describe()
	if len(matched) == 0 {
		return generalResult(fmt.Sprintf("I couldn't find any %s units in %s. Please ask about another configuration or contact our sales team.", desc, p.Name))
	}

	out := []string{"Available Units at " + p.Name}
	if desc != "" {
		out = append(out, formatter.Line(formatter.IconSearch, "Matching", desc))
	}
	out = append(out, unitLines(matched)...)
	return unitResult(strings.Join(out, "\n"), matched)
}

// unitLines lists units grouped by bedroom count, smallest first. Groups
// without a section heading are listed without one.
func unitLines(units []*catalog.Unit) []string {
	var bedrooms []int
	groups := make(map[int][]*catalog.Unit)
	for _, u := range units {
		if _, ok := groups[u.Bedrooms]; !ok {
			bedrooms = append(bedrooms, u.Bedrooms)
		}
		groups[u.Bedrooms] = append(groups[u.Bedrooms], u)
	}
	slices.Sort(bedrooms)

	var out []string
	for _, b := range bedrooms {
		if marker := formatter.SectionMarker(b); marker != "" {
			out = append(out, "", marker)
		}
		for _, u := range groups[b] {
			out = append(out, formatter.Line(formatter.IconBed, unitLabel(u), unitSummary(u)))
		}
	}
	return out
}

func unitLabel(u *catalog.Unit) string {
	if u.UnitNumber == "" {
		return u.Type
	}
	return fmt.Sprintf("Unit %s (%s)", u.UnitNumber, u.Type)
}

func unitSummary(u *catalog.Unit) string {
	return fmt.Sprintf("%d sq ft, %s, %s", u.Area, catalog.FormatIndianPrice(u.Price), u.Availability.Label())
}

package assistant

import (
	"fmt"
	"strings"

	"github.com/evcraddock/property-assistant/internal/formatter"
)

func amenitiesProcessor() *topic {
	return &topic{
		name:      "amenities",
		keywords:  []string{"amenit", "facilit", "gym", "pool", "swimming", "clubhouse", "spa", "theatre", "library", "yoga", "play area", "sauna"},
		noProject: "Please select a project to see its amenities.",
		answer:    amenitiesAnswer,
	}
}

// amenityAlias maps the ways a question names an amenity to the spellings a
// catalog may list it under.
type amenityAlias struct {
	name     string
	triggers []string
	aliases  []string
}

// Checked in order; the first alias the question mentions is answered.
// Parking comes before spa so "parking space" asks about parking.
var amenityAliases = []amenityAlias{
	{"parking", []string{"parking"}, []string{"parking"}},
	{"swimming pool", []string{"pool", "swim"}, []string{"swimming pool", "pool"}},
	{"gym", []string{"gym", "fitness", "workout"}, []string{"gym", "gymnasium", "fitness"}},
	{"theatre", []string{"theatre", "theater", "cinema", "movie"}, []string{"theatre", "theater"}},
	{"spa", []string{"spa"}, []string{"spa"}},
	{"sauna", []string{"sauna", "steam"}, []string{"sauna", "steam"}},
	{"yoga room", []string{"yoga", "meditation"}, []string{"yoga"}},
	{"library", []string{"library", "reading"}, []string{"library"}},
	{"play area", []string{"play area", "playground", "kids"}, []string{"play area", "playground"}},
	{"clubhouse", []string{"clubhouse", "club house", "party hall"}, []string{"clubhouse", "club house", "multipurpose hall"}},
}

func (a amenityAlias) mentionedIn(lower string) bool {
	return containsAny(lower, a.triggers)
}

// find returns the listed amenities that match the alias.
func (a amenityAlias) find(amenities []string) []string {
	var found []string
	for _, am := range amenities {
		lower := strings.ToLower(am)
		for _, alias := range a.aliases {
			if strings.Contains(lower, alias) {
				found = append(found, am)
				break
			}
		}
	}
	return found
}

func amenitiesAnswer(q Query) *Result {
	p := q.Project
	all := p.Amenities.All()
	if len(all) == 0 {
		text := fmt.Sprintf("Detailed amenity information for %s is not available yet. Please contact our sales team.", p.Name)
		if len(p.Features) > 0 {
			text = fmt.Sprintf("Detailed amenity information for %s is not available yet. Highlights include %s.", p.Name, strings.Join(p.Features, ", "))
		}
		return projectResult(text, p)
	}

	for _, a := range amenityAliases {
		if !a.mentionedIn(q.Lower) {
			continue
		}
		if found := a.find(all); len(found) > 0 {
			return projectResult(fmt.Sprintf("Yes, %s has %s.", p.Name, strings.Join(found, ", ")), p)
		}
		return projectResult(fmt.Sprintf("%s does not list a %s among its amenities. Please contact our sales team for details.", p.Name, a.name), p)
	}

	am := p.Amenities
	return projectResult(lines(
		"Lifestyle Amenities at "+p.Name,
		optionalLine(formatter.IconBuilding, "Community", strings.Join(am.Community, ", ")),
		optionalLine(formatter.IconSwimmer, "Health & Fitness", strings.Join(am.Health, ", ")),
		optionalLine(formatter.IconTarget, "Recreation", strings.Join(am.Recreational, ", ")),
		optionalLine(formatter.IconLock, "Convenience", strings.Join(am.Convenience, ", ")),
	), p)
}

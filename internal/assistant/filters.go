package assistant

import (
	"strings"

	"github.com/evcraddock/property-assistant/internal/catalog"
)

// QuickFilter rewrites a short phrase into a canonical query.
type QuickFilter struct {
	Label       string `json:"label"`
	Query       string `json:"query"`
	Description string `json:"description,omitempty"`
}

// FiltersFromTags builds quick filters from catalog filter tags, in order.
func FiltersFromTags(tags []catalog.FilterTag) []QuickFilter {
	filters := make([]QuickFilter, 0, len(tags))
	for _, t := range tags {
		filters = append(filters, QuickFilter{Label: t.Label, Query: t.Query, Description: t.Description})
	}
	return filters
}

// Matches reports whether the lowercased query overlaps the filter: it
// contains the label or description, or the canonical query contains it.
func (f QuickFilter) Matches(lower string) bool {
	if strings.TrimSpace(lower) == "" {
		return false
	}
	if strings.Contains(lower, strings.ToLower(f.Label)) {
		return true
	}
	if strings.Contains(strings.ToLower(f.Query), lower) {
		return true
	}
	return f.Description != "" && strings.Contains(lower, strings.ToLower(f.Description))
}

// Suffix is appended to answers produced through the filter.
func (f QuickFilter) Suffix() string {
	if f.Description == "" {
		return "\n\nFilter: " + f.Label
	}
	return "\n\nFilter: " + f.Label + " - " + f.Description
}

// Categories are the FAQ topics offered when a question cannot be answered.
var Categories = []string{
	"Pricing & Payment Plans",
	"Unit Configurations",
	"Amenities & Lifestyle",
	"Location & Connectivity",
	"Green Building",
	"Possession & RERA",
}

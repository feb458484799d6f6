package assistant

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/evcraddock/property-assistant/internal/catalog"
)

const croreRupees = 10000000

var numberPattern = regexp.MustCompile(`\d+(\.\d+)?`)

func pricingProcessor() *topic {
	return &topic{
		name:      "pricing",
		keywords:  []string{"price", "cost", "payment", "loan", "discount", "maintenance", "charges"},
		noProject: "Please select a project to get specific pricing information.",
		answer:    priceRange,
		otherwise: priceThreshold,
	}
}

func priceRange(q Query) *Result {
	units := projectUnits(q)
	if len(units) == 0 {
		return projectResult(fmt.Sprintf(
			"Please contact our sales team for current pricing, payment plans, and any ongoing promotional offers for %s.",
			q.Project.Name), q.Project)
	}

	lo, hi := units[0].Price, units[0].Price
	for _, u := range units[1:] {
		lo = min(lo, u.Price)
		hi = max(hi, u.Price)
	}

	return projectResult(fmt.Sprintf(
		"%s offers units ranging from ₹%s Cr to ₹%s Cr. Flexible payment plans are available, and we can help facilitate loans through our partner banks. Please speak with our sales team for current offers and detailed pricing information.",
		q.Project.Name, crore(lo), crore(hi)), q.Project)
}

// priceThreshold answers "under N crore" questions from the units passed in.
func priceThreshold(q Query) *Result {
	if !strings.Contains(q.Lower, "under") || !containsAny(q.Lower, []string{"cr", "crore"}) {
		return nil
	}

	limit := parseCrore(q.Lower)
	where := "our portfolio"
	if q.Project != nil {
		where = q.Project.Name
	}
	amount := strconv.FormatFloat(limit/croreRupees, 'f', -1, 64)

	var matched []*catalog.Unit
	for i := range q.Units {
		if float64(q.Units[i].Price) < limit {
			matched = append(matched, &q.Units[i])
		}
	}
	if len(matched) == 0 {
		return generalResult(fmt.Sprintf("I couldn't find any properties under ₹%s crore in %s.", amount, where))
	}
	return unitResult(fmt.Sprintf("I found %d properties under ₹%s crore in %s.", len(matched), amount, where), matched)
}

// parseCrore returns the first number in s as rupees, or 0 when there is none.
func parseCrore(s string) float64 {
	m := numberPattern.FindString(s)
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return v * croreRupees
}

func crore(price int64) string {
	return fmt.Sprintf("%.2f", float64(price)/croreRupees)
}

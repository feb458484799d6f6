package assistant

import (
	"strings"

	"github.com/evcraddock/property-assistant/internal/catalog"
)

const tagWeight = 2

var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "from": true,
	"are": true, "was": true, "were": true, "been": true, "being": true,
	"have": true, "has": true, "had": true, "does": true, "did": true,
	"will": true, "would": true, "should": true, "could": true, "may": true,
	"might": true, "must": true, "can": true, "what": true, "which": true,
	"who": true, "where": true, "when": true, "why": true, "how": true,
	"about": true, "tell": true, "your": true, "our": true, "their": true,
	"this": true, "that": true, "these": true, "those": true, "its": true,
	"any": true, "there": true, "project": true, "available": true,
}

// MatchFAQ returns the FAQ that best overlaps the query, scoped to the
// selected project. Tags count double; ties go to the earlier FAQ.
func MatchFAQ(q Query) *Result {
	var best *catalog.FAQ
	bestScore := 0
	for i := range q.FAQs {
		f := &q.FAQs[i]
		if q.Project != nil && f.ProjectID != q.Project.ID {
			continue
		}
		if score := scoreFAQ(f, q.Lower); score > bestScore {
			best, bestScore = f, score
		}
	}
	if best == nil {
		return nil
	}
	return faqResult(best)
}

func scoreFAQ(f *catalog.FAQ, lower string) int {
	score := 0
	for _, tag := range f.Tags {
		if tag != "" && strings.Contains(lower, strings.ToLower(tag)) {
			score += tagWeight
		}
	}
	for _, w := range significantWords(f.Question) {
		if strings.Contains(lower, w) {
			score++
		}
	}
	return score
}

// significantWords returns the lowercased words of s that are at least
// three characters long and not stop words.
func significantWords(s string) []string {
	var words []string
	for _, w := range strings.Fields(strings.ToLower(s)) {
		w = strings.Trim(w, ".,!?;:()[]{}'\"")
		if len(w) >= 3 && !stopWords[w] {
			words = append(words, w)
		}
	}
	return words
}

package formatter

import (
	"strings"
	"unicode/utf8"
)

// maxTitleLength is the rune count a title line must stay under.
const maxTitleLength = 100

// Pair is one key/value row of a card.
type Pair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Icon  string `json:"icon,omitempty"`
}

// Section is a titled group of rows.
type Section struct {
	Title string `json:"title"`
	Data  []Pair `json:"data"`
}

// Card is the display form of an answer: sections when the text has
// section headings, otherwise a flat list of pairs.
type Card struct {
	Title    string    `json:"title,omitempty"`
	Sections []Section `json:"sections,omitempty"`
	Pairs    []Pair    `json:"pairs,omitempty"`
}

// IsEmpty reports whether the card has no structured rows, in which case
// the raw text should be shown instead.
func (c Card) IsEmpty() bool {
	return len(c.Sections) == 0 && len(c.Pairs) == 0
}

// Format parses text into a card.
func Format(text string) Card {
	var c Card
	if title, ok := ExtractTitle(text); ok {
		c.Title = title
	}
	if sections := FormatUnitSections(text); len(sections) > 0 {
		c.Sections = sections
		return c
	}
	c.Pairs = FormatStructured(text)
	return c
}

// FormatStructured parses every "Key: Value" line of text into a pair.
// Lines without a colon are dropped.
func FormatStructured(text string) []Pair {
	var pairs []Pair
	for _, line := range lines(stripMarkdown(text)) {
		if p, ok := parseLine(line); ok {
			pairs = append(pairs, p)
		}
	}
	return pairs
}

// FormatUnitSections groups data lines under the section headings found in
// text. Data lines before the first heading are dropped. Returns nil when
// text has no section markers.
func FormatUnitSections(text string) []Section {
	clean := stripMarkdown(text)
	if !hasSectionMarker(clean) {
		return nil
	}

	var sections []Section
	var current *Section
	for _, line := range lines(clean) {
		if title, ok := sectionTitle(line); ok {
			if current != nil {
				sections = append(sections, *current)
			}
			current = &Section{Title: title}
			continue
		}
		if current == nil {
			continue
		}
		if p, ok := parseLine(line); ok {
			current.Data = append(current.Data, p)
		}
	}
	if current != nil {
		sections = append(sections, *current)
	}

	return sections
}

// ExtractTitle returns the first line of text when it looks like a title:
// no colon and shorter than 100 characters.
func ExtractTitle(text string) (string, bool) {
	first, _, _ := strings.Cut(text, "\n")
	first = strings.TrimSpace(first)
	if first == "" || strings.Contains(first, ":") || utf8.RuneCountInString(first) >= maxTitleLength {
		return "", false
	}
	title := strings.TrimSpace(strings.NewReplacer("#", "", "*", "").Replace(first))
	if title == "" {
		return "", false
	}
	return title, true
}

// parseLine splits a data line at its first colon.
func parseLine(line string) (Pair, bool) {
	idx := strings.Index(line, ":")
	if idx <= 0 {
		return Pair{}, false
	}
	key := strings.TrimSpace(line[:idx])
	value := strings.TrimSpace(line[idx+1:])

	icon, key := splitIcon(key)
	if key == "" {
		return Pair{}, false
	}
	return Pair{Key: key, Value: value, Icon: icon}, true
}

// lines returns the non-blank lines of text.
func lines(text string) []string {
	var out []string
	for _, l := range strings.Split(text, "\n") {
		if strings.TrimSpace(l) != "" {
			out = append(out, strings.TrimSpace(l))
		}
	}
	return out
}

// Package formatter turns assistant answer text into key/value card data.
//
// Answers and cards share a small line grammar:
//
//	Title line             first line, no colon, under 100 characters
//	<marker> heading       a line containing a section marker and no colon
//	[icon] Key: Value      a data line, split at the first colon
//
// Processors emit text with Line and SectionMarker so the parser here can
// read it back. Bump GrammarVersion when either side changes shape.
package formatter

import (
	"regexp"
	"strconv"
	"strings"
)

// GrammarVersion identifies the line grammar shared with the answer writers.
const GrammarVersion = 1

// Icons that may prefix a data line.
const (
	IconBuilding     = "🏢"
	IconPin          = "📍"
	IconBed          = "🛏️"
	IconConstruction = "🏗️"
	IconNumbers      = "🔢"
	IconSearch       = "🔎"
	IconMoney        = "💰"
	IconCalendar     = "📅"
	IconTarget       = "🎯"
	IconBolt         = "⚡"
	IconCar          = "🚗"
	IconSwimmer      = "🏊‍♂️"
	IconYoga         = "🧘‍♀️"
	IconBooks        = "📚"
	IconHospital     = "🏥"
	IconSchool       = "🎓"
	IconTree         = "🌳"
	IconLock         = "🔒"
	IconClipboard    = "📋"
	IconBulb         = "💡"
	IconHerb         = "🌿"
	IconGlobe        = "🌍"
)

// icons is the whitelist of line markers, longest sequences first so that
// multi-codepoint emoji are not split.
var icons = []string{
	IconSwimmer,
	IconYoga,
	IconBed,
	IconConstruction,
	IconBuilding,
	IconPin,
	IconNumbers,
	IconSearch,
	IconMoney,
	IconCalendar,
	IconTarget,
	IconBolt,
	IconCar,
	IconBooks,
	IconHospital,
	IconSchool,
	IconTree,
	IconLock,
	IconClipboard,
	IconBulb,
	IconHerb,
	IconGlobe,
}

// sectionMarker maps a substring that opens a section to the section title.
type sectionMarker struct {
	marker string
	title  string
}

// sectionMarkers are checked in order; the first hit names the section.
var sectionMarkers = []sectionMarker{
	{"3 BHK", "3 BHK Apartments"},
	{"4 BHK", "4 BHK Penthouses"},
	{"2 BHK", "2 BHK Apartments"},
}

var (
	markdownReplacer = strings.NewReplacer("**", "", "##", "", "*", "", "`", "")
	headingPattern   = regexp.MustCompile(`#{1,6}\s`)
)

// SectionMarker returns the heading text processors write to open the
// section for units with the given bedroom count, or "" if none exists.
func SectionMarker(bedrooms int) string {
	marker := strconv.Itoa(bedrooms) + " BHK"
	for _, m := range sectionMarkers {
		if m.marker == marker {
			return m.title
		}
	}
	return ""
}

// Line renders one data line of the grammar.
func Line(icon, key, value string) string {
	if icon == "" {
		return key + ": " + value
	}
	return icon + " " + key + ": " + value
}

// stripMarkdown removes bold, italic, heading and code markers.
func stripMarkdown(text string) string {
	return headingPattern.ReplaceAllString(markdownReplacer.Replace(text), "")
}

// splitIcon splits a leading run of whitelisted icons off s.
func splitIcon(s string) (icon, rest string) {
	rest = s
	for {
		matched := false
		for _, ic := range icons {
			if strings.HasPrefix(rest, ic) {
				icon += ic
				rest = rest[len(ic):]
				matched = true
				break
			}
		}
		if !matched {
			return icon, strings.TrimSpace(rest)
		}
	}
}

// sectionTitle returns the title opened by line, if line is a section heading.
func sectionTitle(line string) (string, bool) {
	if strings.Contains(line, ":") {
		return "", false
	}
	for _, m := range sectionMarkers {
		if strings.Contains(line, m.marker) {
			return m.title, true
		}
	}
	return "", false
}

// hasSectionMarker reports whether any section marker appears in text.
func hasSectionMarker(text string) bool {
	for _, m := range sectionMarkers {
		if strings.Contains(text, m.marker) {
			return true
		}
	}
	return false
}

// Package normalize canonicalizes free-text property names, tenant
// names, unit references, towns and UK postcodes into comparable forms.
// All functions are pure; matching logic lives in pkg/match.
package normalize

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Words that are common in property names but not distinctive.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "of": {}, "at": {},
	"in": {}, "on": {}, "for": {},
	"site": {}, "park": {}, "estate": {}, "industrial": {}, "trading": {},
	"business": {}, "investment": {}, "fund": {}, "intro": {},
	"introduction": {}, "portfolio": {},
	"centre": {}, "center": {}, "works": {}, "unit": {}, "units": {},
	"road": {}, "street": {}, "lane": {}, "way": {}, "drive": {},
	"close": {}, "ltd": {}, "limited": {}, "plc": {},
	"son": {}, "sons": {},
	// Street type abbreviations
	"rd": {}, "st": {}, "ave": {}, "ct": {}, "pl": {}, "sq": {},
	// Common geographic/directional
	"north": {}, "south": {}, "east": {}, "west": {},
}

var (
	punctuationRe  = regexp.MustCompile(`[^\w\s]`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
	legalSuffixRe  = regexp.MustCompile(`\b(ltd|limited|plc|inc|llp|llc)\b`)
	leadingZerosRe = regexp.MustCompile(`\b0+(\d)`)
	unitPrefixRe   = regexp.MustCompile(`\bunit\b\s*`)
	plotPrefixRe   = regexp.MustCompile(`\bplot\b\s*`)
)

// Name lowercases, strips punctuation to spaces, and collapses
// whitespace.
func Name(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = punctuationRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// SignificantWords extracts the distinctive words from a property name:
// normalized tokens minus stop words and single-character tokens.
func SignificantWords(s string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range strings.Fields(Name(s)) {
		if len(w) <= 1 {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		words[w] = struct{}{}
	}
	return words
}

// SortedSignificant joins the significant words of s in sorted order.
// Used as the fuzzy-matching input for deal names so that shared
// property-type suffixes don't inflate the similarity ratio.
func SortedSignificant(s string) string {
	words := SignificantWords(s)
	if len(words) == 0 {
		return Name(s)
	}
	sorted := make([]string, 0, len(words))
	for w := range words {
		sorted = append(sorted, w)
	}
	sort.Strings(sorted)
	return strings.Join(sorted, " ")
}

// Tenant normalizes a tenant name for comparison: Name plus stripping
// legal-entity suffixes (Ltd, Limited, PLC, Inc, LLP, LLC) that vary
// between sources.
func Tenant(s string) string {
	n := legalSuffixRe.ReplaceAllString(Name(s), "")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(n, " "))
}

// Unit normalizes a unit reference: Name plus stripping "unit"/"plot"
// prefixes and leading zeros ("Unit 01" and "1" compare equal).
func Unit(s string) string {
	n := Name(s)
	n = leadingZerosRe.ReplaceAllString(n, "$1")
	n = unitPrefixRe.ReplaceAllString(n, "")
	n = plotPrefixRe.ReplaceAllString(n, "")
	return strings.TrimSpace(n)
}

var townCaser = cases.Title(language.BritishEnglish)

// DisplayTown canonicalizes the display casing of a town name for
// insertion ("west bromwich" and "WEST BROMWICH" both store as
// "West Bromwich"). Matching always goes through Name, so display
// casing never affects dedup.
func DisplayTown(s string) string {
	return townCaser.String(strings.ToLower(strings.TrimSpace(s)))
}

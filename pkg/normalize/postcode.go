package normalize

import (
	"regexp"
	"strings"
)

// UK postcode shape, outward + inward, with or without the space.
var postcodeRe = regexp.MustCompile(`(?i)\b[A-Z]{1,2}\d[A-Z\d]?\s*\d[A-Z]{2}\b`)

// Postcode extracts and canonicalizes a UK postcode: uppercase with a
// single space before the final three characters. Returns "" when the
// input contains nothing postcode-shaped.
func Postcode(s string) string {
	m := postcodeRe.FindString(s)
	if m == "" {
		return ""
	}
	compact := strings.ToUpper(strings.Join(strings.Fields(m), ""))
	return compact[:len(compact)-3] + " " + compact[len(compact)-3:]
}

// ExtractPostcode splits a postcode out of a free-text address. The
// remainder has the postcode and any dangling separators removed.
func ExtractPostcode(address string) (postcode, remainder string) {
	loc := postcodeRe.FindStringIndex(address)
	if loc == nil {
		return "", strings.TrimSpace(address)
	}
	postcode = Postcode(address[loc[0]:loc[1]])
	remainder = address[:loc[0]] + address[loc[1]:]
	remainder = strings.TrimSpace(remainder)
	remainder = strings.Trim(remainder, ",")
	return postcode, strings.TrimSpace(remainder)
}

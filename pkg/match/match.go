// Package match implements the tiered duplicate-detection rules for
// deal records, investment comparables, and occupational comparables.
// Each entry point returns a match decision plus a human-readable
// reason for run reports. Rules short-circuit on the first tier that
// fires; tiers are mutually exclusive trigger conditions, so order
// decides only which reason is reported.
package match

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/openfield/dealflow/pkg/normalize"
)

// ratio computes a Ratcliff/Obershelp similarity in [0,1] over the
// characters of two strings. The thresholds in this package were tuned
// against this algorithm's output scale; do not swap in Levenshtein.
func ratio(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	m := difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, ""))
	return m.Ratio()
}

// townMatch treats an empty town or a "multi"-prefixed town (multi-let
// portfolios span towns) as a wildcard; otherwise towns must be equal
// after normalization.
func townMatch(a, b string) bool {
	na, nb := normalize.Name(a), normalize.Name(b)
	if na == "" || nb == "" {
		return true
	}
	if strings.HasPrefix(na, "multi") || strings.HasPrefix(nb, "multi") {
		return true
	}
	return na == nb
}

// contained reports whether the shorter of two normalized strings is
// fully contained in the longer. The shorter side must carry at least
// two words so that a lone generic word can't pull in everything.
func contained(na, nb string) bool {
	shorter, longer := na, nb
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len(strings.Fields(shorter)) < 2 {
		return false
	}
	return strings.Contains(longer, shorter)
}

// wordOverlap counts shared significant words and the share of the
// smaller set they represent.
func wordOverlap(a, b map[string]struct{}) (int, float64) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0
	}
	shared := 0
	for w := range a {
		if _, ok := b[w]; ok {
			shared++
		}
	}
	smaller := len(a)
	if len(b) < smaller {
		smaller = len(b)
	}
	return shared, float64(shared) / float64(smaller)
}

// relDiff is the relative difference of two values against their mean.
func relDiff(a, b float64) float64 {
	avg := (a + b) / 2
	if avg == 0 {
		return 0
	}
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff / avg
}

func pct(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}

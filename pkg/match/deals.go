package match

import (
	"fmt"

	"github.com/openfield/dealflow/pkg/normalize"
	"github.com/openfield/dealflow/pkg/records"
)

// Similarity threshold for the fuzzy deal-name tier. Tuned against
// sorted significant-word strings, which strip the shared suffixes
// ("Industrial Estate", "Business Park") that would otherwise inflate
// the ratio.
const dealFuzzyThreshold = 0.65

// Deals decides whether two deal records describe the same asset.
// Five tiers, first hit wins. A record with no asset name never
// matches anything.
func Deals(a, b *records.DealRecord) (bool, string) {
	nameA := normalize.Name(a.AssetName)
	nameB := normalize.Name(b.AssetName)
	if nameA == "" || nameB == "" {
		return false, ""
	}

	// Tier 1: exact name in a compatible town.
	if nameA == nameB && townMatch(a.Town, b.Town) {
		return true, "exact name and town"
	}

	// Tier 2: same postcode identifies the same asset regardless of
	// what each source called it.
	pcA := normalize.Postcode(a.Postcode)
	pcB := normalize.Postcode(b.Postcode)
	if pcA != "" && pcA == pcB {
		return true, fmt.Sprintf("postcode %s", pcA)
	}

	// Tier 3: one name is a multi-word prefix/suffix of the other
	// ("Apex II" vs "Apex II Industrial Estate").
	if contained(nameA, nameB) {
		return true, "name containment"
	}

	// Tier 4: enough distinctive words in common.
	wordsA := normalize.SignificantWords(a.AssetName)
	wordsB := normalize.SignificantWords(b.AssetName)
	if shared, frac := wordOverlap(wordsA, wordsB); shared >= 2 && frac >= 0.6 {
		return true, fmt.Sprintf("significant-word overlap %d shared (%s)", shared, pct(frac))
	}

	// Tier 5: fuzzy name similarity, gated on town so near-identical
	// names in different towns stay separate assets.
	if townMatch(a.Town, b.Town) {
		r := ratio(normalize.SortedSignificant(a.AssetName), normalize.SortedSignificant(b.AssetName))
		if r >= dealFuzzyThreshold {
			return true, fmt.Sprintf("fuzzy name ratio %.2f", r)
		}
	}

	return false, ""
}

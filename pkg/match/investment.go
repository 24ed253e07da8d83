package match

import (
	"fmt"

	"github.com/openfield/dealflow/pkg/normalize"
	"github.com/openfield/dealflow/pkg/records"
)

const (
	// Transactions within 5% of each other's price.
	priceTolerance = 0.05
	// Addresses share generic suffixes, so the fuzzy bar is higher
	// than for deal names.
	addressFuzzyThreshold = 0.85
)

// InvestmentComps decides whether two investment comparables are the
// same transaction. Unlike deal matching this is conjunctive: price,
// quarter, and address checks must all hold. A comp without a price
// never matches.
func InvestmentComps(a, b *records.InvestmentComp) (bool, string) {
	if !a.HasIdentity() || !b.HasIdentity() {
		return false, ""
	}
	if relDiff(*a.Price, *b.Price) > priceTolerance {
		return false, ""
	}
	if !quartersCompatible(a.Quarter, b.Quarter) {
		return false, ""
	}
	ok, how := addressMatch(a.Address, b.Address)
	if !ok {
		return false, ""
	}
	return true, fmt.Sprintf("price within %s, address %s", pct(priceTolerance), how)
}

// InvestmentCompsSweep is the pairwise rule for the batch dedup sweep.
// Extracted rows always carry a price, but manually entered rows may
// not: two priceless rows are still the same transaction if quarter
// and address agree. A price present on only one side means the rows
// can't be confirmed as duplicates.
func InvestmentCompsSweep(a, b *records.InvestmentComp) (bool, string) {
	aPrice := records.Present(a.Price)
	bPrice := records.Present(b.Price)
	switch {
	case aPrice && bPrice:
		return InvestmentComps(a, b)
	case aPrice != bPrice:
		return false, ""
	}
	if !quartersCompatible(a.Quarter, b.Quarter) {
		return false, ""
	}
	ok, how := addressMatch(a.Address, b.Address)
	if !ok {
		return false, ""
	}
	return true, fmt.Sprintf("no price either side, address %s", how)
}

// quartersCompatible allows adjacent quarters: the same transaction is
// often reported in the quarter it exchanged and the quarter it
// completed. Absence of either quarter skips the check.
func quartersCompatible(a, b string) bool {
	qa, okA := records.ParseQuarter(a)
	qb, okB := records.ParseQuarter(b)
	if !okA || !okB {
		return true
	}
	diff := qa.Ordinal() - qb.Ordinal()
	if diff < 0 {
		diff = -diff
	}
	return diff <= 1
}

// addressMatch applies the address variant of the name rules: exact,
// containment, word overlap, or strict fuzzy ratio.
func addressMatch(a, b string) (bool, string) {
	na, nb := normalize.Name(a), normalize.Name(b)
	if na == "" || nb == "" {
		return false, ""
	}
	if na == nb {
		return true, "exact"
	}
	if contained(na, nb) {
		return true, "containment"
	}
	wa, wb := normalize.SignificantWords(a), normalize.SignificantWords(b)
	if shared, frac := wordOverlap(wa, wb); shared >= 2 && frac >= 0.6 {
		return true, fmt.Sprintf("word overlap %d shared", shared)
	}
	if r := ratio(na, nb); r >= addressFuzzyThreshold {
		return true, fmt.Sprintf("fuzzy ratio %.2f", r)
	}
	return false, ""
}

// Package merge combines a duplicate record into the record being
// kept. The policy is fill-only: a blank field on the kept side is
// copied in from the duplicate, a populated field is never touched.
// Both sides hold yields in the same percentage representation, so no
// unit conversion happens here; that lives at the storage boundary.
package merge

import (
	"strings"

	"github.com/openfield/dealflow/pkg/records"
)

func fillStr(dst *string, src string, filled *int) {
	if strings.TrimSpace(*dst) == "" && strings.TrimSpace(src) != "" {
		*dst = src
		*filled++
	}
}

func fillNum(dst **float64, src *float64, filled *int) {
	if !records.Present(*dst) && records.Present(src) {
		v := *src
		*dst = &v
		*filled++
	}
}

func fillInt(dst **int, src *int, filled *int) {
	if (*dst == nil || **dst == 0) && src != nil && *src != 0 {
		v := *src
		*dst = &v
		*filled++
	}
}

// Deals fills gaps in kept from dup and returns the number of fields
// filled. Zero fills still means the duplicate is discarded; the
// caller counts the pair as a duplicate either way.
func Deals(kept, dup *records.DealRecord) int {
	filled := 0
	fillStr(&kept.Town, dup.Town, &filled)
	fillStr(&kept.Postcode, dup.Postcode, &filled)
	fillStr(&kept.Country, dup.Country, &filled)
	fillStr(&kept.Address, dup.Address, &filled)
	fillStr(&kept.Classification, dup.Classification, &filled)
	fillNum(&kept.AreaAcres, dup.AreaAcres, &filled)
	fillNum(&kept.AreaSqft, dup.AreaSqft, &filled)
	fillNum(&kept.RentPA, dup.RentPA, &filled)
	fillNum(&kept.RentPSF, dup.RentPSF, &filled)
	fillNum(&kept.AskingPrice, dup.AskingPrice, &filled)
	fillNum(&kept.NetYieldPct, dup.NetYieldPct, &filled)
	fillNum(&kept.ReversionaryPct, dup.ReversionaryPct, &filled)
	fillNum(&kept.CapValPSF, dup.CapValPSF, &filled)
	fillStr(&kept.Date, dup.Date, &filled)
	fillStr(&kept.Agent, dup.Agent, &filled)
	if filled > 0 && dup.Source != "" && kept.Source != dup.Source {
		kept.Source = records.SourceMerged
	}
	return filled
}

// Investment fills gaps in kept from dup.
func Investment(kept, dup *records.InvestmentComp) int {
	filled := 0
	fillStr(&kept.Town, dup.Town, &filled)
	fillStr(&kept.Address, dup.Address, &filled)
	fillNum(&kept.Price, dup.Price, &filled)
	fillStr(&kept.Quarter, dup.Quarter, &filled)
	fillInt(&kept.Units, dup.Units, &filled)
	fillNum(&kept.AreaSqft, dup.AreaSqft, &filled)
	fillNum(&kept.RentPA, dup.RentPA, &filled)
	fillNum(&kept.RentPSF, dup.RentPSF, &filled)
	fillNum(&kept.AWULTC, dup.AWULTC, &filled)
	fillNum(&kept.YieldNIYPct, dup.YieldNIYPct, &filled)
	fillNum(&kept.ReversionaryPct, dup.ReversionaryPct, &filled)
	fillNum(&kept.CapValPSF, dup.CapValPSF, &filled)
	fillStr(&kept.Vendor, dup.Vendor, &filled)
	fillStr(&kept.Purchaser, dup.Purchaser, &filled)
	fillStr(&kept.Date, dup.Date, &filled)
	fillStr(&kept.Style, dup.Style, &filled)
	fillStr(&kept.Comment, dup.Comment, &filled)
	fillStr(&kept.SourceDeal, dup.SourceDeal, &filled)
	fillStr(&kept.SourceFilePath, dup.SourceFilePath, &filled)
	fillStr(&kept.Evidence, dup.Evidence, &filled)
	return filled
}

// Occupational fills gaps in kept from dup.
func Occupational(kept, dup *records.OccupationalComp) int {
	filled := 0
	fillStr(&kept.SourceDeal, dup.SourceDeal, &filled)
	fillStr(&kept.TenantName, dup.TenantName, &filled)
	fillStr(&kept.UnitName, dup.UnitName, &filled)
	fillStr(&kept.Address, dup.Address, &filled)
	fillStr(&kept.Town, dup.Town, &filled)
	fillStr(&kept.Postcode, dup.Postcode, &filled)
	fillNum(&kept.SizeSqft, dup.SizeSqft, &filled)
	fillNum(&kept.RentPA, dup.RentPA, &filled)
	fillNum(&kept.RentPSF, dup.RentPSF, &filled)
	fillStr(&kept.LeaseStart, dup.LeaseStart, &filled)
	fillStr(&kept.LeaseExpiry, dup.LeaseExpiry, &filled)
	fillStr(&kept.BreakDate, dup.BreakDate, &filled)
	fillStr(&kept.RentReviewDate, dup.RentReviewDate, &filled)
	fillNum(&kept.LeaseTermYears, dup.LeaseTermYears, &filled)
	fillStr(&kept.CompDate, dup.CompDate, &filled)
	fillStr(&kept.Notes, dup.Notes, &filled)
	fillStr(&kept.SourceFilePath, dup.SourceFilePath, &filled)
	fillStr(&kept.ExtractionDate, dup.ExtractionDate, &filled)
	return filled
}

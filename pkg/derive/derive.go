// Package derive fills missing numeric fields from known algebraic
// relationships. Each record kind has a fixed, ordered rule cascade; a
// rule fires only when its output is blank and all inputs are present
// and non-zero, so one pass is idempotent and a value derived by an
// earlier rule feeds later rules in the same pass.
package derive

import (
	"regexp"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/openfield/dealflow/pkg/records"
)

// Acquisition-cost loading applied when backing rent out of price and
// yield: stamp duty plus purchaser's fees.
const costLoading = 1.068

// Square feet per acre.
const sqftPerAcre = 43560

var acresRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*acres?\b`)

func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

func round0(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(0).Float64()
	return f
}

// set writes a derived value and bumps the fill counter. Zero results
// are not written; a zero denominator upstream would already have
// blocked the rule, so this only guards degenerate inputs.
func set(dst **float64, v float64, filled *int) {
	if v == 0 {
		return
	}
	*dst = &v
	*filled++
}

// Deal runs the cascade over a deal record and returns the number of
// cells filled.
func Deal(d *records.DealRecord) int {
	filled := 0

	// rent pa from price and yield.
	if !records.Present(d.RentPA) && records.Present(d.AskingPrice) && records.Present(d.NetYieldPct) {
		set(&d.RentPA, round0(*d.AskingPrice*costLoading*(*d.NetYieldPct/100)), &filled)
	}
	// rent pa from psf and area.
	if !records.Present(d.RentPA) && records.Present(d.RentPSF) && records.Present(d.AreaSqft) {
		set(&d.RentPA, round0(*d.RentPSF * *d.AreaSqft), &filled)
	}
	// rent psf from pa and area.
	if !records.Present(d.RentPSF) && records.Present(d.RentPA) && records.Present(d.AreaSqft) {
		set(&d.RentPSF, round2(*d.RentPA / *d.AreaSqft), &filled)
	}
	// area from pa and psf.
	if !records.Present(d.AreaSqft) && records.Present(d.RentPA) && records.Present(d.RentPSF) {
		set(&d.AreaSqft, round0(*d.RentPA / *d.RentPSF), &filled)
	}
	// capital value psf from price and area.
	if !records.Present(d.CapValPSF) && records.Present(d.AskingPrice) && records.Present(d.AreaSqft) {
		set(&d.CapValPSF, round2(*d.AskingPrice / *d.AreaSqft), &filled)
	}

	return filled
}

// Investment runs the cascade over an investment comparable.
func Investment(c *records.InvestmentComp) int {
	filled := 0

	// quarter from transaction date.
	if c.Quarter == "" && c.Date != "" {
		if q, ok := records.QuarterFromDate(c.Date); ok {
			c.Quarter = q.String()
			filled++
		}
	}
	if !records.Present(c.RentPA) && records.Present(c.Price) && records.Present(c.YieldNIYPct) {
		set(&c.RentPA, round0(*c.Price*costLoading*(*c.YieldNIYPct/100)), &filled)
	}
	if !records.Present(c.RentPA) && records.Present(c.RentPSF) && records.Present(c.AreaSqft) {
		set(&c.RentPA, round0(*c.RentPSF * *c.AreaSqft), &filled)
	}
	if !records.Present(c.RentPSF) && records.Present(c.RentPA) && records.Present(c.AreaSqft) {
		set(&c.RentPSF, round2(*c.RentPA / *c.AreaSqft), &filled)
	}
	if !records.Present(c.AreaSqft) && records.Present(c.RentPA) && records.Present(c.RentPSF) {
		set(&c.AreaSqft, round0(*c.RentPA / *c.RentPSF), &filled)
	}
	if !records.Present(c.CapValPSF) && records.Present(c.Price) && records.Present(c.AreaSqft) {
		set(&c.CapValPSF, round2(*c.Price / *c.AreaSqft), &filled)
	}

	return filled
}

// Occupational runs the cascade over an occupational comparable. The
// comp-date rule compares lease dates against now, which is injected
// for testability.
func Occupational(c *records.OccupationalComp, now time.Time) int {
	filled := 0

	// size from an acreage mentioned in free-text notes.
	if !records.Present(c.SizeSqft) {
		if acres, ok := acresFromNotes(c.Notes); ok {
			set(&c.SizeSqft, round0(acres*sqftPerAcre), &filled)
		}
	}
	if !records.Present(c.RentPA) && records.Present(c.RentPSF) && records.Present(c.SizeSqft) {
		set(&c.RentPA, round0(*c.RentPSF * *c.SizeSqft), &filled)
	}
	if !records.Present(c.RentPSF) && records.Present(c.RentPA) && records.Present(c.SizeSqft) {
		set(&c.RentPSF, round2(*c.RentPA / *c.SizeSqft), &filled)
	}
	if !records.Present(c.SizeSqft) && records.Present(c.RentPA) && records.Present(c.RentPSF) {
		set(&c.SizeSqft, round0(*c.RentPA / *c.RentPSF), &filled)
	}
	if c.CompDate == "" {
		if d, ok := compDateFromLease(c, now); ok {
			c.CompDate = d
			filled++
		}
	}

	return filled
}

func acresFromNotes(notes string) (float64, bool) {
	m := acresRe.FindStringSubmatch(notes)
	if m == nil {
		return 0, false
	}
	acres, err := strconv.ParseFloat(m[1], 64)
	if err != nil || acres == 0 {
		return 0, false
	}
	return acres, true
}

// compDateFromLease picks the date the rent was last set. A lease of
// five years or less, or one with a review date on record, is priced at
// lease start. Longer leases re-price at the first five-year review
// once that date has passed.
func compDateFromLease(c *records.OccupationalComp, now time.Time) (string, bool) {
	start, ok := records.ParseISODate(c.LeaseStart)
	if !ok {
		return "", false
	}
	if !records.Present(c.LeaseTermYears) || *c.LeaseTermYears <= 5 || c.RentReviewDate != "" {
		return start.Format("2006-01-02"), true
	}
	review := start.AddDate(5, 0, 0)
	if review.Before(now) {
		return review.Format("2006-01-02"), true
	}
	return start.Format("2006-01-02"), true
}

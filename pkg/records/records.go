// Package records defines the flat record types that flow through the
// reconciliation engine: deal introductions, investment comparables, and
// occupational comparables. Yields are held as percentages (0-100)
// throughout the domain layer; the storage binding converts them to
// decimals at the boundary.
package records

import (
	"fmt"
	"strings"
)

// Source identifies where a record was extracted from.
type Source string

// Source constants.
const (
	SourceEmail    Source = "email"
	SourceBrochure Source = "brochure"
	SourceMerged   Source = "merged"
	SourceStub     Source = "stub"
)

// IsValid checks if the source is one of the known values.
func (s Source) IsValid() bool {
	switch s {
	case SourceEmail, SourceBrochure, SourceMerged, SourceStub:
		return true
	default:
		return false
	}
}

// EntryType distinguishes tenancy-schedule rows from market comparables
// in the occupational table.
type EntryType string

// EntryType constants.
const (
	EntryTenancy    EntryType = "tenancy"
	EntryComparable EntryType = "comparable"
)

// DealRecord is a deal introduction extracted from an email or brochure.
type DealRecord struct {
	// Identity
	AssetName string `yaml:"asset_name"`
	Town      string `yaml:"town,omitempty"`
	Postcode  string `yaml:"postcode,omitempty"`

	// Extended identity carried from extraction
	Country        string `yaml:"country,omitempty"`
	Address        string `yaml:"address,omitempty"`
	Classification string `yaml:"classification,omitempty"`

	// Financials
	AreaAcres       *float64 `yaml:"area_acres,omitempty"`
	AreaSqft        *float64 `yaml:"area_sqft,omitempty"`
	RentPA          *float64 `yaml:"rent_pa,omitempty"`
	RentPSF         *float64 `yaml:"rent_psf,omitempty"`
	AskingPrice     *float64 `yaml:"asking_price,omitempty"`
	NetYieldPct     *float64 `yaml:"net_yield_pct,omitempty"`          // percentage, 0-100
	ReversionaryPct *float64 `yaml:"reversionary_yield_pct,omitempty"` // percentage, 0-100
	CapValPSF       *float64 `yaml:"capval_psf,omitempty"`

	// Provenance
	Date   string `yaml:"date,omitempty"` // DD/MM/YYYY as extracted
	Agent  string `yaml:"agent,omitempty"`
	Source Source `yaml:"source,omitempty"`
}

// HasIdentity reports whether the deal carries enough identity to be
// matched against existing rows. A deal with no asset name is always
// inserted as new.
func (d *DealRecord) HasIdentity() bool {
	return strings.TrimSpace(d.AssetName) != ""
}

// InvestmentComp is an investment-sale comparable.
type InvestmentComp struct {
	// Identity
	Town    string   `yaml:"town,omitempty"`
	Address string   `yaml:"address"`
	Price   *float64 `yaml:"price,omitempty"`
	Quarter string   `yaml:"quarter,omitempty"` // "2025 Q2"; derived from Date when blank

	// Financials
	Units           *int     `yaml:"units,omitempty"`
	AreaSqft        *float64 `yaml:"area_sqft,omitempty"`
	RentPA          *float64 `yaml:"rent_pa,omitempty"`
	RentPSF         *float64 `yaml:"rent_psf,omitempty"`
	AWULTC          *float64 `yaml:"awultc,omitempty"`                 // average weighted unexpired lease term
	YieldNIYPct     *float64 `yaml:"yield_niy_pct,omitempty"`          // net initial yield, percentage 0-100
	ReversionaryPct *float64 `yaml:"reversionary_yield_pct,omitempty"` // percentage 0-100
	CapValPSF       *float64 `yaml:"capval_psf,omitempty"`

	// Parties
	Vendor    string `yaml:"vendor,omitempty"`
	Purchaser string `yaml:"purchaser,omitempty"`

	// Provenance
	Date           string `yaml:"date,omitempty"`
	Style          string `yaml:"style,omitempty"`
	Comment        string `yaml:"comment,omitempty"`
	SourceDeal     string `yaml:"source_deal,omitempty"`
	SourceFilePath string `yaml:"source_file_path,omitempty"`
	Evidence       string `yaml:"evidence,omitempty"` // verbatim quote used for downstream verification
}

// HasIdentity reports whether the comp can be deduplicated. Price is
// the primary matching key: a comp without one never matches.
func (c *InvestmentComp) HasIdentity() bool {
	return c.Price != nil && *c.Price != 0
}

// OccupationalComp is a letting comparable or tenancy-schedule entry.
type OccupationalComp struct {
	SourceDeal string    `yaml:"source_deal,omitempty"`
	EntryType  EntryType `yaml:"entry_type,omitempty"`
	TenantName string    `yaml:"tenant_name"`
	UnitName   string    `yaml:"unit_name,omitempty"`
	Address    string    `yaml:"address,omitempty"`
	Town       string    `yaml:"town,omitempty"`
	Postcode   string    `yaml:"postcode,omitempty"`

	SizeSqft *float64 `yaml:"size_sqft,omitempty"`
	RentPA   *float64 `yaml:"rent_pa,omitempty"`
	RentPSF  *float64 `yaml:"rent_psf,omitempty"`

	// Lease dates, ISO YYYY-MM-DD once normalized
	LeaseStart     string   `yaml:"lease_start,omitempty"`
	LeaseExpiry    string   `yaml:"lease_expiry,omitempty"`
	BreakDate      string   `yaml:"break_date,omitempty"`
	RentReviewDate string   `yaml:"rent_review_date,omitempty"`
	LeaseTermYears *float64 `yaml:"lease_term_years,omitempty"`

	CompDate       string `yaml:"comp_date,omitempty"`
	Notes          string `yaml:"notes,omitempty"`
	SourceFilePath string `yaml:"source_file_path,omitempty"`
	ExtractionDate string `yaml:"extraction_date,omitempty"`
}

// Float64 returns a pointer to v. Convenience for building records.
func Float64(v float64) *float64 { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// Report summarises a batch reconciliation run. Per-record failures are
// captured here rather than propagated; only schema-class setup errors
// abort a run.
type Report struct {
	Scanned      int
	Inserted     int
	Merged       int
	Duplicates   int
	Skipped      int
	CellsFilled  int
	RowsRemoved  int
	Errors       int
	ErrorDetails []string
	Details      []string
}

// Add folds another report into this one.
func (r *Report) Add(other Report) {
	r.Scanned += other.Scanned
	r.Inserted += other.Inserted
	r.Merged += other.Merged
	r.Duplicates += other.Duplicates
	r.Skipped += other.Skipped
	r.CellsFilled += other.CellsFilled
	r.RowsRemoved += other.RowsRemoved
	r.Errors += other.Errors
	r.ErrorDetails = append(r.ErrorDetails, other.ErrorDetails...)
	r.Details = append(r.Details, other.Details...)
}

// Summary returns a formatted multi-line summary string.
func (r *Report) Summary() string {
	var b strings.Builder
	b.WriteString("Reconciliation Report\n")
	b.WriteString(strings.Repeat("=", 50) + "\n")
	fmt.Fprintf(&b, "  Records scanned:   %d\n", r.Scanned)
	fmt.Fprintf(&b, "  Rows inserted:     %d\n", r.Inserted)
	fmt.Fprintf(&b, "  Duplicates merged: %d\n", r.Merged)
	fmt.Fprintf(&b, "  Duplicates found:  %d\n", r.Duplicates)
	fmt.Fprintf(&b, "  Records skipped:   %d\n", r.Skipped)
	fmt.Fprintf(&b, "  Cells derived:     %d\n", r.CellsFilled)
	fmt.Fprintf(&b, "  Rows removed:      %d\n", r.RowsRemoved)
	fmt.Fprintf(&b, "  Errors:            %d\n", r.Errors)
	if len(r.ErrorDetails) > 0 {
		b.WriteString("\n  Error Details:\n")
		max := len(r.ErrorDetails)
		if max > 10 {
			max = 10
		}
		for _, detail := range r.ErrorDetails[:max] {
			fmt.Fprintf(&b, "    - %s\n", detail)
		}
		if len(r.ErrorDetails) > 10 {
			fmt.Fprintf(&b, "    ... and %d more\n", len(r.ErrorDetails)-10)
		}
	}
	return b.String()
}

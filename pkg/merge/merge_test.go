package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openfield/dealflow/pkg/records"
)

func TestDealsFillsBlanksOnly(t *testing.T) {
	kept := &records.DealRecord{
		AssetName: "Apex II",
		Town:      "Tipton",
		RentPA:    records.Float64(250_000),
		Source:    records.SourceEmail,
	}
	dup := &records.DealRecord{
		AssetName:   "Apex II Industrial Estate",
		Town:        "TIPTON",
		Postcode:    "DY4 7UF",
		RentPA:      records.Float64(999_999),
		AskingPrice: records.Float64(3_500_000),
		Agent:       "Savills",
		Source:      records.SourceBrochure,
	}

	filled := Deals(kept, dup)

	assert.Equal(t, 3, filled) // postcode, asking price, agent
	assert.Equal(t, "DY4 7UF", kept.Postcode)
	assert.Equal(t, 3_500_000.0, *kept.AskingPrice)
	assert.Equal(t, "Savills", kept.Agent)

	// Populated fields survive untouched.
	assert.Equal(t, "Tipton", kept.Town)
	assert.Equal(t, 250_000.0, *kept.RentPA)
	assert.Equal(t, "Apex II", kept.AssetName)

	// Cross-source merge marks provenance.
	assert.Equal(t, records.SourceMerged, kept.Source)
}

func TestDealsZeroFillStillDuplicate(t *testing.T) {
	kept := &records.DealRecord{AssetName: "Apex II", Town: "Tipton", Source: records.SourceEmail}
	dup := &records.DealRecord{AssetName: "Apex II", Source: records.SourceEmail}

	assert.Equal(t, 0, Deals(kept, dup))
	assert.Equal(t, records.SourceEmail, kept.Source)
}

func TestDealsTreatsZeroAsBlank(t *testing.T) {
	kept := &records.DealRecord{AssetName: "Apex II", AreaSqft: records.Float64(0)}
	dup := &records.DealRecord{AssetName: "Apex II", AreaSqft: records.Float64(48_000)}

	assert.Equal(t, 1, Deals(kept, dup))
	assert.Equal(t, 48_000.0, *kept.AreaSqft)
}

func TestInvestmentNeverDestroysData(t *testing.T) {
	kept := &records.InvestmentComp{
		Address: "Kelvin Way Industrial Estate",
		Price:   records.Float64(10_000_000),
		Quarter: "2025 Q2",
	}
	dup := &records.InvestmentComp{
		Address:     "Kelvin Way Ind Est",
		Price:       records.Float64(10_200_000),
		Quarter:     "2025 Q3",
		Vendor:      "Aberdeen",
		YieldNIYPct: records.Float64(6.5),
		Units:       records.Int(12),
	}

	before := *kept
	filled := Investment(kept, dup)

	assert.Equal(t, 3, filled) // vendor, yield, units
	assert.Equal(t, before.Address, kept.Address)
	assert.Equal(t, *before.Price, *kept.Price)
	assert.Equal(t, before.Quarter, kept.Quarter)
	assert.Equal(t, "Aberdeen", kept.Vendor)
	assert.Equal(t, 6.5, *kept.YieldNIYPct)
	assert.Equal(t, 12, *kept.Units)
}

func TestOccupationalFill(t *testing.T) {
	kept := &records.OccupationalComp{
		TenantName: "Planetbloom",
		RentPA:     records.Float64(178_875),
	}
	dup := &records.OccupationalComp{
		TenantName: "Planet Bloom",
		RentPA:     records.Float64(178_876),
		UnitName:   "Unit 4",
		LeaseStart: "2023-06-01",
		SizeSqft:   records.Float64(24_500),
	}

	filled := Occupational(kept, dup)

	assert.Equal(t, 3, filled)
	assert.Equal(t, "Unit 4", kept.UnitName)
	assert.Equal(t, "2023-06-01", kept.LeaseStart)
	assert.Equal(t, 24_500.0, *kept.SizeSqft)
	assert.Equal(t, 178_875.0, *kept.RentPA)
	assert.Equal(t, "Planetbloom", kept.TenantName)
}

// The duplicate's pointers must not be aliased into the kept record.
func TestFillCopiesValues(t *testing.T) {
	kept := &records.DealRecord{AssetName: "Apex II"}
	dup := &records.DealRecord{AssetName: "Apex II", RentPA: records.Float64(100_000)}

	Deals(kept, dup)
	*dup.RentPA = 1

	assert.Equal(t, 100_000.0, *kept.RentPA)
}

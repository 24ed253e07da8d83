package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openfield/dealflow/pkg/records"
)

func occ(tenant, unit string, rentPA float64) *records.OccupationalComp {
	c := &records.OccupationalComp{TenantName: tenant, UnitName: unit}
	if rentPA != 0 {
		c.RentPA = records.Float64(rentPA)
	}
	return c
}

func TestOccupationalTenantEquality(t *testing.T) {
	ok, reason := OccupationalComps(occ("Planetbloom Ltd", "", 100_000), occ("PLANETBLOOM LIMITED", "", 100_000))
	assert.True(t, ok)
	assert.Contains(t, reason, "tenant match")
}

func TestOccupationalUnitEquality(t *testing.T) {
	ok, reason := OccupationalComps(occ("Tenant A", "Unit 01", 100_000), occ("Occupier B", "1", 100_000))
	assert.True(t, ok)
	assert.Contains(t, reason, "unit match")
}

func TestOccupationalFuzzyTenant(t *testing.T) {
	// Spacing variance with rounding-level rent difference.
	ok, reason := OccupationalComps(occ("Planetbloom", "", 178_875), occ("Planet Bloom", "", 178_876))
	assert.True(t, ok)
	assert.Contains(t, reason, "fuzzy tenant")

	// Different tenants at the same rent stay separate.
	ok, _ = OccupationalComps(occ("Alpha Logistics", "", 100_000), occ("Delta Freight", "", 100_000))
	assert.False(t, ok)
}

func TestOccupationalRentGate(t *testing.T) {
	// Rent outside 0.5% blocks every phase.
	ok, _ := OccupationalComps(occ("Planetbloom", "", 100_000), occ("Planetbloom", "", 102_000))
	assert.False(t, ok)

	// One-sided rent pa gives no basis.
	ok, _ = OccupationalComps(occ("Planetbloom", "", 100_000), occ("Planetbloom", "", 0))
	assert.False(t, ok)
}

func TestOccupationalRentPSFFallback(t *testing.T) {
	a := occ("Planetbloom", "", 0)
	a.RentPSF = records.Float64(7.25)
	b := occ("Planetbloom", "", 0)
	b.RentPSF = records.Float64(7.25)
	ok, reason := OccupationalComps(a, b)
	assert.True(t, ok)
	assert.Contains(t, reason, "rent psf")

	// No rent on either basis: nothing to corroborate the match.
	ok, _ = OccupationalComps(occ("Planetbloom", "", 0), occ("Planetbloom", "", 0))
	assert.False(t, ok)
}

func TestOccupationalVacantSkipped(t *testing.T) {
	ok, _ := OccupationalComps(occ("Vacant", "", 100_000), occ("vacant", "", 100_000))
	assert.False(t, ok)

	ok, _ = OccupationalComps(occ("Vacant Under Offer", "", 100_000), occ("vacant under offer", "", 100_000))
	assert.False(t, ok)

	// Qualifier text after "vacant" doesn't make the unit a tenant.
	ok, _ = OccupationalComps(
		occ("Vacant - 12m rental guarantee", "", 50_000),
		occ("Vacant - 12m rental guarantee", "", 50_000))
	assert.False(t, ok)
}

func TestIsVacant(t *testing.T) {
	assert.True(t, IsVacant("Vacant"))
	assert.True(t, IsVacant("vacant under offer"))
	assert.True(t, IsVacant("Vacant - 12m rental guarantee"))
	assert.False(t, IsVacant(""))
	assert.False(t, IsVacant("Vacantia Ltd"))
}

func TestIsVacantRow(t *testing.T) {
	assert.True(t, IsVacantRow(&records.OccupationalComp{TenantName: "Vacant - 12m rental guarantee"}))
	assert.True(t, IsVacantRow(&records.OccupationalComp{TenantName: "", Notes: "unit currently vacant"}))
	assert.False(t, IsVacantRow(&records.OccupationalComp{TenantName: "Planetbloom"}))
	// "vacant" inside a word doesn't count.
	assert.False(t, IsVacantRow(&records.OccupationalComp{TenantName: "Vacantia Ltd"}))
}

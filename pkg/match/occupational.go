package match

import (
	"fmt"
	"regexp"

	"github.com/openfield/dealflow/pkg/normalize"
	"github.com/openfield/dealflow/pkg/records"
)

const (
	// Tenant names are near-identical across sources; 0.90 catches
	// spacing and punctuation variants without conflating tenants.
	tenantFuzzyThreshold = 0.90
	// The only expected rent variance between sources is rounding.
	rentTolerance = 0.005
)

// Word-boundary "vacant", any casing. Catches decorated names like
// "Vacant - 12m rental guarantee" as well as the bare word.
var vacantRe = regexp.MustCompile(`(?i)\bvacant\b`)

// IsVacant reports whether a tenant name denotes an empty unit rather
// than a comparable identity. An empty name is not vacant; it just
// carries no identity.
func IsVacant(tenant string) bool {
	return vacantRe.MatchString(tenant)
}

// IsVacantRow is the broader sweep test: a word-boundary "vacant"
// anywhere in the tenant name, or a blank tenant whose notes say
// vacant.
func IsVacantRow(c *records.OccupationalComp) bool {
	if vacantRe.MatchString(c.TenantName) {
		return true
	}
	return normalize.Name(c.TenantName) == "" && vacantRe.MatchString(c.Notes)
}

// OccupationalComps decides whether two occupational comparables are
// the same letting. Three phases, first hit wins; every phase also
// requires the rents to agree. Vacant rows never match.
func OccupationalComps(a, b *records.OccupationalComp) (bool, string) {
	if IsVacant(a.TenantName) || IsVacant(b.TenantName) {
		return false, ""
	}

	tenantA := normalize.Tenant(a.TenantName)
	tenantB := normalize.Tenant(b.TenantName)

	rentOK, rentHow := rentsAgree(a, b)
	if !rentOK {
		return false, ""
	}

	// Phase 1: same tenant.
	if tenantA != "" && tenantA == tenantB {
		return true, fmt.Sprintf("tenant match, %s", rentHow)
	}

	// Phase 2: same unit.
	unitA := normalize.Unit(a.UnitName)
	unitB := normalize.Unit(b.UnitName)
	if unitA != "" && unitA == unitB {
		return true, fmt.Sprintf("unit match, %s", rentHow)
	}

	// Phase 3: fuzzy tenant.
	if r := ratio(tenantA, tenantB); r >= tenantFuzzyThreshold {
		return true, fmt.Sprintf("fuzzy tenant ratio %.2f, %s", r, rentHow)
	}

	return false, ""
}

// rentsAgree compares rent per annum within the tolerance; when
// neither side carries a per-annum figure it falls back to rent per
// sqft. No usable rent on either basis means no match basis.
func rentsAgree(a, b *records.OccupationalComp) (bool, string) {
	if records.Present(a.RentPA) && records.Present(b.RentPA) {
		if relDiff(*a.RentPA, *b.RentPA) <= rentTolerance {
			return true, "rent pa within 0.5%"
		}
		return false, ""
	}
	if records.Present(a.RentPA) || records.Present(b.RentPA) {
		return false, ""
	}
	if records.Present(a.RentPSF) && records.Present(b.RentPSF) {
		if relDiff(*a.RentPSF, *b.RentPSF) <= rentTolerance {
			return true, "rent psf within 0.5%"
		}
	}
	return false, ""
}

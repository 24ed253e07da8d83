package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openfield/dealflow/pkg/records"
)

func deal(name, town, postcode string) *records.DealRecord {
	return &records.DealRecord{AssetName: name, Town: town, Postcode: postcode}
}

func TestDealsExactNameAndTown(t *testing.T) {
	ok, reason := Deals(deal("Apex Park", "Tipton", ""), deal("APEX PARK", "tipton", ""))
	assert.True(t, ok)
	assert.Equal(t, "exact name and town", reason)

	// Same name, incompatible towns.
	ok, _ = Deals(deal("Apex Park", "Tipton", ""), deal("Apex Park", "Leeds", ""))
	assert.False(t, ok)
}

func TestDealsTownWildcards(t *testing.T) {
	// Empty town acts as a wildcard.
	ok, _ := Deals(deal("Apex Park", "", ""), deal("Apex Park", "Leeds", ""))
	assert.True(t, ok)

	// "Multi-let" and variants act as wildcards.
	ok, _ = Deals(deal("Apex Park", "Multiple", ""), deal("Apex Park", "Leeds", ""))
	assert.True(t, ok)
}

func TestDealsPostcodeOverridesName(t *testing.T) {
	ok, reason := Deals(deal("Kelvin Way Trading Estate", "", "B70 6QY"), deal("West Bromwich Portfolio", "", "b706qy"))
	assert.True(t, ok)
	assert.Equal(t, "postcode B70 6QY", reason)

	// Empty postcodes never trigger the tier.
	ok, _ = Deals(deal("Alpha Works", "", ""), deal("Beta Works", "", ""))
	assert.False(t, ok)
}

func TestDealsContainment(t *testing.T) {
	ok, reason := Deals(deal("Apex II", "Tipton", ""), deal("Apex II Industrial Estate", "Tipton", ""))
	assert.True(t, ok)
	assert.Equal(t, "name containment", reason)

	// A single-word shorter side is too generic to contain.
	ok, _ = Deals(deal("Apex", "Tipton", ""), deal("Apex II Industrial Estate", "Leeds", ""))
	assert.False(t, ok)
}

func TestDealsSignificantWordOverlap(t *testing.T) {
	ok, reason := Deals(
		deal("Gravelly Point Birmingham", "Birmingham", ""),
		deal("Gravelly Point Trading Estate Birmingham", "", ""),
	)
	assert.True(t, ok)
	assert.Contains(t, reason, "overlap")
}

func TestDealsFuzzy(t *testing.T) {
	// Typo-level variance clears the 0.65 bar when towns agree.
	ok, reason := Deals(deal("Trident Point", "Tipton", ""), deal("Tridant Point", "Tipton", ""))
	assert.True(t, ok)
	assert.Contains(t, reason, "fuzzy name ratio")

	// Different towns block the fuzzy tier.
	ok, _ = Deals(deal("Trident Point", "Tipton", ""), deal("Tridant Point", "Leeds", ""))
	assert.False(t, ok)
}

func TestDealsEmptyNameNeverMatches(t *testing.T) {
	ok, _ := Deals(deal("", "Tipton", "B70 6QY"), deal("", "Tipton", "B70 6QY"))
	assert.False(t, ok)
}

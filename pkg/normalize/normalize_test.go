package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase and trim", "  Apex II  ", "apex ii"},
		{"punctuation to space", "St. Modwen's Park", "st modwen s park"},
		{"collapse whitespace", "Planet   Bloom\tWorks", "planet bloom works"},
		{"empty", "", ""},
		{"only punctuation", "---", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Name(tt.input))
		})
	}
}

func TestSignificantWords(t *testing.T) {
	words := SignificantWords("Apex II Industrial Estate")
	assert.Equal(t, map[string]struct{}{"apex": {}, "ii": {}}, words)

	// Stop words and single characters drop out entirely.
	assert.Empty(t, SignificantWords("The Park Estate"))
	assert.Empty(t, SignificantWords("a b c"))
}

func TestSortedSignificant(t *testing.T) {
	assert.Equal(t, "apex ii", SortedSignificant("Apex II Industrial Estate"))
	assert.Equal(t, "apex ii", SortedSignificant("II APEX"))

	// Falls back to the plain normalized name when everything was a
	// stop word, so the ratio comparison still has something to chew on.
	assert.Equal(t, "the park", SortedSignificant("The Park"))
}

func TestTenant(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Planetbloom Ltd", "planetbloom"},
		{"Planet Bloom Limited", "planet bloom"},
		{"Acme PLC", "acme"},
		{"Acme Holdings LLP", "acme holdings"},
		{"Acme", "acme"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Tenant(tt.input), "input %q", tt.input)
	}
}

func TestUnit(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Unit 01", "1"},
		{"unit 7", "7"},
		{"Plot 03", "3"},
		{"7", "7"},
		{"Unit A", "a"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Unit(tt.input), "input %q", tt.input)
	}
}

func TestPostcode(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"B70 6QY", "B70 6QY"},
		{"b706qy", "B70 6QY"},
		{"  B70  6QY  ", "B70 6QY"},
		{"SW1A 1AA", "SW1A 1AA"},
		{"sw1a1aa", "SW1A 1AA"},
		{"M1 1AE", "M1 1AE"},
		{"no postcode here", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Postcode(tt.input), "input %q", tt.input)
	}
}

// Canonicalization is idempotent: a canonical postcode maps to itself.
func TestPostcodeIdempotent(t *testing.T) {
	for _, raw := range []string{"b706qy", "SW1A1AA", "m1 1ae", "CV34 6RR"} {
		once := Postcode(raw)
		assert.Equal(t, once, Postcode(once))
	}
}

func TestExtractPostcode(t *testing.T) {
	pc, rest := ExtractPostcode("Kelvin Way, West Bromwich, B70 6QY")
	assert.Equal(t, "B70 6QY", pc)
	assert.Equal(t, "Kelvin Way, West Bromwich", rest)

	pc, rest = ExtractPostcode("Kelvin Way")
	assert.Equal(t, "", pc)
	assert.Equal(t, "Kelvin Way", rest)

	pc, rest = ExtractPostcode("B70 6QY")
	assert.Equal(t, "B70 6QY", pc)
	assert.Equal(t, "", rest)
}

func TestDisplayTown(t *testing.T) {
	assert.Equal(t, "West Bromwich", DisplayTown("WEST BROMWICH"))
	assert.Equal(t, "West Bromwich", DisplayTown("west bromwich"))
	assert.Equal(t, "Leeds", DisplayTown("  leeds "))
}

package records

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseQuarter(t *testing.T) {
	tests := []struct {
		input string
		want  Quarter
		ok    bool
	}{
		{"2025 Q2", Quarter{2025, 2}, true},
		{"2025Q2", Quarter{2025, 2}, true},
		{"Q2 2025", Quarter{2025, 2}, true},
		{"Q2-2025", Quarter{2025, 2}, true},
		{"q4/2024", Quarter{2024, 4}, true},
		{"Q5 2025", Quarter{}, false},
		{"2025", Quarter{}, false},
		{"", Quarter{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseQuarter(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestQuarterOrdinalAdjacency(t *testing.T) {
	q4 := Quarter{2024, 4}
	q1 := Quarter{2025, 1}
	assert.Equal(t, 1, q1.Ordinal()-q4.Ordinal())
	assert.Equal(t, "2024 Q4", q4.String())
}

func TestQuarterFromDate(t *testing.T) {
	q, ok := QuarterFromDate("15/05/2025")
	assert.True(t, ok)
	assert.Equal(t, Quarter{2025, 2}, q)

	q, ok = QuarterFromDate("12/2024")
	assert.True(t, ok)
	assert.Equal(t, Quarter{2024, 4}, q)

	q, ok = QuarterFromDate("2025 Q3")
	assert.True(t, ok)
	assert.Equal(t, Quarter{2025, 3}, q)

	// Out-of-range years are extraction noise, not dates.
	_, ok = QuarterFromDate("15/05/1825")
	assert.False(t, ok)

	_, ok = QuarterFromDate("not a date")
	assert.False(t, ok)
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2025-05-15", "2025-05-15"},
		{"15/05/2025", "2025-05-15"},
		{"15-05-2025", "2025-05-15"},
		{"05/2025", "2025-05-01"},
		{"May 2025", "2025-05-01"},
		{"january 2024", "2024-01-01"},
		{"Q2 2025", "2025-04-01"},
		{"2025", "2025-01-01"},
		// Impossible dates pass through untouched for a human to fix.
		{"31/02/2025", "31/02/2025"},
		{"tbc", "tbc"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeDate(tt.input), "input %q", tt.input)
	}
}

func TestParseISODate(t *testing.T) {
	d, ok := ParseISODate("2025-05-15")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC), d)

	_, ok = ParseISODate("15/05/2025")
	assert.False(t, ok)
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input string
		want  *float64
	}{
		{"178,875", Float64(178_875)},
		{"£3,500,000", Float64(3_500_000)},
		{"7.25", Float64(7.25)},
		{" 48 000 ", Float64(48_000)},
		{"0", nil},
		{"", nil},
		{"n/a", nil},
	}
	for _, tt := range tests {
		got := ParseNumber(tt.input)
		if tt.want == nil {
			assert.Nil(t, got, "input %q", tt.input)
		} else {
			assert.NotNil(t, got, "input %q", tt.input)
			assert.Equal(t, *tt.want, *got, "input %q", tt.input)
		}
	}
}

func TestReportAddAndSummary(t *testing.T) {
	r := Report{Scanned: 2, Inserted: 1}
	r.Add(Report{Scanned: 3, Merged: 2, ErrorDetails: []string{"row 7: bad date"}, Errors: 1})

	assert.Equal(t, 5, r.Scanned)
	assert.Equal(t, 1, r.Inserted)
	assert.Equal(t, 2, r.Merged)

	s := r.Summary()
	assert.Contains(t, s, "Records scanned:   5")
	assert.Contains(t, s, "row 7: bad date")
}

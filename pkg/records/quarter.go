package records

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Quarter is a calendar quarter, e.g. 2025 Q2.
type Quarter struct {
	Year int
	Q    int // 1-4
}

var (
	quarterYearFirst = regexp.MustCompile(`(?i)^(\d{4})\s*Q([1-4])$`)
	quarterYearLast  = regexp.MustCompile(`(?i)^Q([1-4])\s*[-/]?\s*(\d{4})$`)
)

// ParseQuarter parses "2025 Q2", "Q2 2025", "Q2-2025" or "Q2/2025".
// Returns the zero Quarter and false when the string is not a quarter.
func ParseQuarter(s string) (Quarter, bool) {
	s = strings.TrimSpace(s)
	if m := quarterYearFirst.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		q, _ := strconv.Atoi(m[2])
		return Quarter{Year: year, Q: q}, true
	}
	if m := quarterYearLast.FindStringSubmatch(s); m != nil {
		q, _ := strconv.Atoi(m[1])
		year, _ := strconv.Atoi(m[2])
		return Quarter{Year: year, Q: q}, true
	}
	return Quarter{}, false
}

// QuarterOfTime returns the quarter containing t.
func QuarterOfTime(t time.Time) Quarter {
	return Quarter{Year: t.Year(), Q: (int(t.Month())-1)/3 + 1}
}

// QuarterFromDate derives a quarter from a date-ish string. Accepts a
// quarter string itself (normalized), DD/MM/YYYY, and MM/YYYY. Returns
// false for anything else, including out-of-range years.
func QuarterFromDate(s string) (Quarter, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Quarter{}, false
	}

	if q, ok := ParseQuarter(s); ok {
		return q, true
	}

	parts := strings.Split(s, "/")
	switch len(parts) {
	case 3: // DD/MM/YYYY
		month, err1 := strconv.Atoi(strings.TrimSpace(parts[1]))
		year, err2 := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err1 == nil && err2 == nil && month >= 1 && month <= 12 && year >= 2000 && year <= 2100 {
			return Quarter{Year: year, Q: (month-1)/3 + 1}, true
		}
	case 2: // MM/YYYY
		month, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
		year, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err1 == nil && err2 == nil && month >= 1 && month <= 12 && year >= 2000 && year <= 2100 {
			return Quarter{Year: year, Q: (month-1)/3 + 1}, true
		}
	}

	return Quarter{}, false
}

// Ordinal returns year*4+quarter, used for proximity checks between
// quarters (adjacent quarters differ by one).
func (q Quarter) Ordinal() int {
	return q.Year*4 + q.Q
}

// String formats the quarter in the canonical "2025 Q2" form.
func (q Quarter) String() string {
	return fmt.Sprintf("%d Q%d", q.Year, q.Q)
}

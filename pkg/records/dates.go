package records

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Month names accepted by NormalizeDate.
var monthNames = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

// Quarter start months for quarter-string dates.
var quarterStartMonth = map[int]time.Month{
	1: time.January, 2: time.April, 3: time.July, 4: time.October,
}

var (
	isoDateRe   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dmyDateRe   = regexp.MustCompile(`^(\d{1,2})[/\-](\d{1,2})[/\-](\d{4})$`)
	myDateRe    = regexp.MustCompile(`^(\d{1,2})[/\-](\d{4})$`)
	monthYearRe = regexp.MustCompile(`^([A-Za-z]+)\s+(\d{4})$`)
	yearOnlyRe  = regexp.MustCompile(`^(\d{4})$`)
)

// NormalizeDate converts a free-form date string to ISO YYYY-MM-DD.
// Accepted inputs: ISO passthrough, DD/MM/YYYY (and dashed), MM/YYYY,
// "Jan 2025" / "January 2025", "Q2 2025" (quarter start month), and a
// bare year. Unparseable input is returned unchanged so the original
// value survives in the store and derivation rules simply skip it.
func NormalizeDate(value string) string {
	s := strings.TrimSpace(value)
	if s == "" {
		return ""
	}

	if isoDateRe.MatchString(s) {
		return s
	}

	if m := dmyDateRe.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if d, ok := civilDate(year, month, day); ok {
			return d
		}
		return s
	}

	if m := myDateRe.FindStringSubmatch(s); m != nil {
		month, _ := strconv.Atoi(m[1])
		year, _ := strconv.Atoi(m[2])
		if d, ok := civilDate(year, month, 1); ok {
			return d
		}
		return s
	}

	if m := monthYearRe.FindStringSubmatch(s); m != nil {
		if month, ok := monthNames[strings.ToLower(m[1])]; ok {
			year, _ := strconv.Atoi(m[2])
			return fmt.Sprintf("%04d-%02d-01", year, month)
		}
		return s
	}

	if q, ok := ParseQuarter(s); ok {
		return fmt.Sprintf("%04d-%02d-01", q.Year, quarterStartMonth[q.Q])
	}

	if m := yearOnlyRe.FindStringSubmatch(s); m != nil {
		return m[1] + "-01-01"
	}

	return s
}

// ParseISODate parses a YYYY-MM-DD prefix into a time. Returns false
// for anything that is not a valid ISO date.
func ParseISODate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 10 {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s[:10])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// civilDate validates day/month/year and formats as ISO.
func civilDate(year, month, day int) (string, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return "", false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (e.g. 31/02); reject if it moved
	if t.Day() != day || int(t.Month()) != month || t.Year() != year {
		return "", false
	}
	return t.Format("2006-01-02"), true
}

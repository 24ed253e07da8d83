package records

import (
	"strconv"
	"strings"
)

// ParseNumber converts a cell string to a number. Currency symbols,
// commas and spaces are stripped. Returns nil for blank, zero, or
// non-numeric input: derivation rules treat all three as "absent".
func ParseNumber(value string) *float64 {
	cleaned := strings.NewReplacer(",", "", "£", "", " ", "").Replace(strings.TrimSpace(value))
	if cleaned == "" {
		return nil
	}
	result, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || result == 0 {
		return nil
	}
	return &result
}

// NumberOrZero dereferences an optional number.
func NumberOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// Present reports whether an optional number carries a usable value.
// Zero counts as absent throughout the derivation rules.
func Present(v *float64) bool {
	return v != nil && *v != 0
}

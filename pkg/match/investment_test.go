package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openfield/dealflow/pkg/records"
)

func comp(address, quarter string, price float64) *records.InvestmentComp {
	c := &records.InvestmentComp{Address: address, Quarter: quarter}
	if price != 0 {
		c.Price = records.Float64(price)
	}
	return c
}

func TestInvestmentCompsSameTransaction(t *testing.T) {
	ok, reason := InvestmentComps(
		comp("Kelvin Way Industrial Estate", "2025 Q2", 10_000_000),
		comp("Kelvin Way Industrial Estate", "2025 Q2", 10_200_000),
	)
	assert.True(t, ok)
	assert.Contains(t, reason, "address exact")
}

func TestInvestmentCompsPriceGate(t *testing.T) {
	// 5% of the mean is the limit.
	ok, _ := InvestmentComps(comp("Kelvin Way", "2025 Q2", 10_000_000), comp("Kelvin Way", "2025 Q2", 11_000_000))
	assert.False(t, ok)

	// Missing price never matches.
	ok, _ = InvestmentComps(comp("Kelvin Way", "2025 Q2", 0), comp("Kelvin Way", "2025 Q2", 10_000_000))
	assert.False(t, ok)
}

func TestInvestmentCompsQuarterWindow(t *testing.T) {
	a := comp("Kelvin Way Estate", "2025 Q2", 10_000_000)

	// Adjacent quarter is the same transaction reported twice.
	ok, _ := InvestmentComps(a, comp("Kelvin Way Estate", "2025 Q3", 10_000_000))
	assert.True(t, ok)

	// Two quarters apart is a different transaction.
	ok, _ = InvestmentComps(a, comp("Kelvin Way Estate", "2025 Q4", 10_000_000))
	assert.False(t, ok)

	// Year boundary: Q4 to next Q1 is adjacent.
	ok, _ = InvestmentComps(comp("Kelvin Way Estate", "2024 Q4", 10_000_000), comp("Kelvin Way Estate", "2025 Q1", 10_000_000))
	assert.True(t, ok)

	// Missing quarter skips the check.
	ok, _ = InvestmentComps(a, comp("Kelvin Way Estate", "", 10_000_000))
	assert.True(t, ok)
}

func TestInvestmentCompsAddressVariants(t *testing.T) {
	a := comp("Premier Point, Witton", "2025 Q2", 5_000_000)

	// Containment.
	ok, _ := InvestmentComps(a, comp("Premier Point, Witton, Birmingham", "2025 Q2", 5_000_000))
	assert.True(t, ok)

	// Unrelated address.
	ok, _ = InvestmentComps(a, comp("Riverside Works, Leeds", "2025 Q2", 5_000_000))
	assert.False(t, ok)

	// Blank address on either side cannot confirm identity.
	ok, _ = InvestmentComps(a, comp("", "2025 Q2", 5_000_000))
	assert.False(t, ok)
}

func TestInvestmentCompsSweep(t *testing.T) {
	// Both sides priceless: address plus quarter is enough.
	ok, reason := InvestmentCompsSweep(comp("Premier Point, Witton", "2025 Q2", 0), comp("Premier Point, Witton", "2025 Q2", 0))
	assert.True(t, ok)
	assert.Contains(t, reason, "no price either side")

	// One-sided price can't be confirmed either way.
	ok, _ = InvestmentCompsSweep(comp("Premier Point, Witton", "2025 Q2", 0), comp("Premier Point, Witton", "2025 Q2", 5_000_000))
	assert.False(t, ok)

	// Both priced falls through to the standard rule.
	ok, _ = InvestmentCompsSweep(comp("Premier Point, Witton", "2025 Q2", 5_000_000), comp("Premier Point, Witton", "2025 Q2", 5_100_000))
	assert.True(t, ok)
}

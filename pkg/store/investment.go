package store

import (
	"strconv"

	"github.com/openfield/dealflow/pkg/records"
)

// Investment comps table layout.
const (
	InvestmentTable       = "Investment Comps"
	InvestmentIdentityCol = "Address"
	colInvTown            = "Town"
	colInvPrice           = "Price"
	colInvQuarter         = "Quarter"
	colInvUnits           = "Units"
	colInvSqft            = "Area (sq ft)"
	colInvRentPA          = "Rent pa"
	colInvRentPSF         = "Rent psf"
	colInvAWULTC          = "AWULTC"
	colInvNIY             = "NIY"
	colInvRevYield        = "Reversionary Yield"
	colInvCapVal          = "Cap Val psf"
	colInvVendor          = "Vendor"
	colInvPurchaser       = "Purchaser"
	colInvDate            = "Date"
	colInvStyle           = "Style"
	colInvComment         = "Comment"
	colInvSourceDeal      = "Source Deal"
	colInvSourceFile      = "Source File"
	colInvEvidence        = "Evidence"
)

// InvestmentHeader is the canonical column order for a fresh store.
var InvestmentHeader = []string{
	colInvTown, InvestmentIdentityCol, colInvPrice, colInvQuarter,
	colInvUnits, colInvSqft, colInvRentPA, colInvRentPSF, colInvAWULTC,
	colInvNIY, colInvRevYield, colInvCapVal, colInvVendor,
	colInvPurchaser, colInvDate, colInvStyle, colInvComment,
	colInvSourceDeal, colInvSourceFile, colInvEvidence,
}

// ReadInvestment decodes one row of the investment comps table.
func ReadInvestment(t *Table, row int) (*records.InvestmentComp, error) {
	cell := func(col string) string {
		v, _ := t.Cell(row, col)
		return v
	}
	if err := t.RequireColumns(InvestmentIdentityCol, colInvPrice); err != nil {
		return nil, err
	}
	c := &records.InvestmentComp{
		Town:            cell(colInvTown),
		Address:         cell(InvestmentIdentityCol),
		Price:           records.ParseNumber(cell(colInvPrice)),
		Quarter:         cell(colInvQuarter),
		AreaSqft:        records.ParseNumber(cell(colInvSqft)),
		RentPA:          records.ParseNumber(cell(colInvRentPA)),
		RentPSF:         records.ParseNumber(cell(colInvRentPSF)),
		AWULTC:          records.ParseNumber(cell(colInvAWULTC)),
		YieldNIYPct:     parsePct(cell(colInvNIY)),
		ReversionaryPct: parsePct(cell(colInvRevYield)),
		CapValPSF:       records.ParseNumber(cell(colInvCapVal)),
		Vendor:          cell(colInvVendor),
		Purchaser:       cell(colInvPurchaser),
		Date:            cell(colInvDate),
		Style:           cell(colInvStyle),
		Comment:         cell(colInvComment),
		SourceDeal:      cell(colInvSourceDeal),
		SourceFilePath:  cell(colInvSourceFile),
		Evidence:        cell(colInvEvidence),
	}
	if units := records.ParseNumber(cell(colInvUnits)); units != nil {
		u := int(*units)
		c.Units = &u
	}
	return c, nil
}

// WriteInvestment encodes an investment comp into a row.
func WriteInvestment(t *Table, row int, c *records.InvestmentComp) error {
	units := ""
	if c.Units != nil && *c.Units != 0 {
		units = strconv.Itoa(*c.Units)
	}
	cells := map[string]string{
		colInvTown:            c.Town,
		InvestmentIdentityCol: c.Address,
		colInvPrice:           formatNum(c.Price),
		colInvQuarter:         c.Quarter,
		colInvUnits:           units,
		colInvSqft:            formatNum(c.AreaSqft),
		colInvRentPA:          formatNum(c.RentPA),
		colInvRentPSF:         formatNum(c.RentPSF),
		colInvAWULTC:          formatNum(c.AWULTC),
		colInvNIY:             formatPct(c.YieldNIYPct),
		colInvRevYield:        formatPct(c.ReversionaryPct),
		colInvCapVal:          formatNum(c.CapValPSF),
		colInvVendor:          c.Vendor,
		colInvPurchaser:       c.Purchaser,
		colInvDate:            c.Date,
		colInvStyle:           c.Style,
		colInvComment:         c.Comment,
		colInvSourceDeal:      c.SourceDeal,
		colInvSourceFile:      c.SourceFilePath,
		colInvEvidence:        c.Evidence,
	}
	for col, v := range cells {
		if err := t.SetCell(row, col, v); err != nil {
			return err
		}
	}
	return nil
}

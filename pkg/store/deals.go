package store

import (
	"strconv"

	"github.com/openfield/dealflow/pkg/records"
)

// Deals table layout. Yields are stored as decimals (0-1) in the
// workbook and converted to percentages (0-100) on read.
const (
	DealsTable        = "Deals"
	DealsIdentityCol  = "Asset Name"
	colDealTown       = "Town"
	colDealPostcode   = "Postcode"
	colDealCountry    = "Country"
	colDealAddress    = "Address"
	colDealClass      = "Classification"
	colDealAcres      = "Area (acres)"
	colDealSqft       = "Area (sq ft)"
	colDealRentPA     = "Rent pa"
	colDealRentPSF    = "Rent psf"
	colDealPrice      = "Asking Price"
	colDealNetYield   = "Net Yield"
	colDealRevYield   = "Reversionary Yield"
	colDealCapVal     = "Cap Val psf"
	colDealDate       = "Date"
	colDealAgent      = "Agent"
	colDealSource     = "Source"
)

// DealsHeader is the canonical column order for a fresh store.
var DealsHeader = []string{
	DealsIdentityCol, colDealTown, colDealPostcode, colDealCountry,
	colDealAddress, colDealClass, colDealAcres, colDealSqft,
	colDealRentPA, colDealRentPSF, colDealPrice, colDealNetYield,
	colDealRevYield, colDealCapVal, colDealDate, colDealAgent,
	colDealSource,
}

// formatNum renders an optional number without trailing zeros; absent
// values render as blank cells.
func formatNum(v *float64) string {
	if !records.Present(v) {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// formatPct converts a domain percentage to the stored decimal form.
func formatPct(v *float64) string {
	if !records.Present(v) {
		return ""
	}
	return strconv.FormatFloat(*v/100, 'f', -1, 64)
}

// parsePct reads a stored decimal yield into domain percentage form.
func parsePct(cell string) *float64 {
	v := records.ParseNumber(cell)
	if v == nil {
		return nil
	}
	pct := *v * 100
	return &pct
}

// ReadDeal decodes one row of the deals table.
func ReadDeal(t *Table, row int) (*records.DealRecord, error) {
	cell := func(col string) string {
		v, _ := t.Cell(row, col)
		return v
	}
	if err := t.RequireColumns(DealsIdentityCol); err != nil {
		return nil, err
	}
	d := &records.DealRecord{
		AssetName:       cell(DealsIdentityCol),
		Town:            cell(colDealTown),
		Postcode:        cell(colDealPostcode),
		Country:         cell(colDealCountry),
		Address:         cell(colDealAddress),
		Classification:  cell(colDealClass),
		AreaAcres:       records.ParseNumber(cell(colDealAcres)),
		AreaSqft:        records.ParseNumber(cell(colDealSqft)),
		RentPA:          records.ParseNumber(cell(colDealRentPA)),
		RentPSF:         records.ParseNumber(cell(colDealRentPSF)),
		AskingPrice:     records.ParseNumber(cell(colDealPrice)),
		NetYieldPct:     parsePct(cell(colDealNetYield)),
		ReversionaryPct: parsePct(cell(colDealRevYield)),
		CapValPSF:       records.ParseNumber(cell(colDealCapVal)),
		Date:            cell(colDealDate),
		Agent:           cell(colDealAgent),
		Source:          records.Source(cell(colDealSource)),
	}
	return d, nil
}

// WriteDeal encodes a deal record into a row.
func WriteDeal(t *Table, row int, d *records.DealRecord) error {
	cells := map[string]string{
		DealsIdentityCol: d.AssetName,
		colDealTown:      d.Town,
		colDealPostcode:  d.Postcode,
		colDealCountry:   d.Country,
		colDealAddress:   d.Address,
		colDealClass:     d.Classification,
		colDealAcres:     formatNum(d.AreaAcres),
		colDealSqft:      formatNum(d.AreaSqft),
		colDealRentPA:    formatNum(d.RentPA),
		colDealRentPSF:   formatNum(d.RentPSF),
		colDealPrice:     formatNum(d.AskingPrice),
		colDealNetYield:  formatPct(d.NetYieldPct),
		colDealRevYield:  formatPct(d.ReversionaryPct),
		colDealCapVal:    formatNum(d.CapValPSF),
		colDealDate:      d.Date,
		colDealAgent:     d.Agent,
		colDealSource:    string(d.Source),
	}
	for col, v := range cells {
		if err := t.SetCell(row, col, v); err != nil {
			return err
		}
	}
	return nil
}

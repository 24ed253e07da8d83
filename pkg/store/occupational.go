package store

import (
	"github.com/openfield/dealflow/pkg/records"
)

// Occupational comps table layout.
const (
	OccupationalTable       = "Occupational Comps"
	OccupationalIdentityCol = "Source Deal"
	colOccEntryType         = "Entry Type"
	colOccTenant            = "Tenant"
	colOccUnit              = "Unit"
	colOccAddress           = "Address"
	colOccTown              = "Town"
	colOccPostcode          = "Postcode"
	colOccSizeSqft          = "Size (sq ft)"
	colOccRentPA            = "Rent pa"
	colOccRentPSF           = "Rent psf"
	colOccLeaseStart        = "Lease Start"
	colOccLeaseExpiry       = "Lease Expiry"
	colOccBreakDate         = "Break Date"
	colOccRentReview        = "Rent Review"
	colOccLeaseTerm         = "Lease Term (yrs)"
	colOccCompDate          = "Comp Date"
	colOccNotes             = "Notes"
	colOccSourceFile        = "Source File"
	colOccExtracted         = "Extraction Date"
)

// OccupationalHeader is the canonical column order for a fresh store.
var OccupationalHeader = []string{
	OccupationalIdentityCol, colOccEntryType, colOccTenant, colOccUnit,
	colOccAddress, colOccTown, colOccPostcode, colOccSizeSqft,
	colOccRentPA, colOccRentPSF, colOccLeaseStart, colOccLeaseExpiry,
	colOccBreakDate, colOccRentReview, colOccLeaseTerm, colOccCompDate,
	colOccNotes, colOccSourceFile, colOccExtracted,
}

// ReadOccupational decodes one row of the occupational comps table.
func ReadOccupational(t *Table, row int) (*records.OccupationalComp, error) {
	cell := func(col string) string {
		v, _ := t.Cell(row, col)
		return v
	}
	if err := t.RequireColumns(OccupationalIdentityCol, colOccTenant); err != nil {
		return nil, err
	}
	c := &records.OccupationalComp{
		SourceDeal:     cell(OccupationalIdentityCol),
		EntryType:      records.EntryType(cell(colOccEntryType)),
		TenantName:     cell(colOccTenant),
		UnitName:       cell(colOccUnit),
		Address:        cell(colOccAddress),
		Town:           cell(colOccTown),
		Postcode:       cell(colOccPostcode),
		SizeSqft:       records.ParseNumber(cell(colOccSizeSqft)),
		RentPA:         records.ParseNumber(cell(colOccRentPA)),
		RentPSF:        records.ParseNumber(cell(colOccRentPSF)),
		LeaseStart:     cell(colOccLeaseStart),
		LeaseExpiry:    cell(colOccLeaseExpiry),
		BreakDate:      cell(colOccBreakDate),
		RentReviewDate: cell(colOccRentReview),
		LeaseTermYears: records.ParseNumber(cell(colOccLeaseTerm)),
		CompDate:       cell(colOccCompDate),
		Notes:          cell(colOccNotes),
		SourceFilePath: cell(colOccSourceFile),
		ExtractionDate: cell(colOccExtracted),
	}
	return c, nil
}

// WriteOccupational encodes an occupational comp into a row.
func WriteOccupational(t *Table, row int, c *records.OccupationalComp) error {
	cells := map[string]string{
		OccupationalIdentityCol: c.SourceDeal,
		colOccEntryType:         string(c.EntryType),
		colOccTenant:            c.TenantName,
		colOccUnit:              c.UnitName,
		colOccAddress:           c.Address,
		colOccTown:              c.Town,
		colOccPostcode:          c.Postcode,
		colOccSizeSqft:          formatNum(c.SizeSqft),
		colOccRentPA:            formatNum(c.RentPA),
		colOccRentPSF:           formatNum(c.RentPSF),
		colOccLeaseStart:        c.LeaseStart,
		colOccLeaseExpiry:       c.LeaseExpiry,
		colOccBreakDate:         c.BreakDate,
		colOccRentReview:        c.RentReviewDate,
		colOccLeaseTerm:         formatNum(c.LeaseTermYears),
		colOccCompDate:          c.CompDate,
		colOccNotes:             c.Notes,
		colOccSourceFile:        c.SourceFilePath,
		colOccExtracted:         c.ExtractionDate,
	}
	for col, v := range cells {
		if err := t.SetCell(row, col, v); err != nil {
			return err
		}
	}
	return nil
}

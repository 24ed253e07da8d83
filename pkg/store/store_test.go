package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfield/dealflow/pkg/errors"
	"github.com/openfield/dealflow/pkg/records"
)

func TestTableLookupIsSchemaChecked(t *testing.T) {
	w := NewWorkbook("store.yaml")
	w.EnsureTable(DealsTable, DealsHeader)

	_, err := w.Table(DealsTable)
	assert.NoError(t, err)

	_, err = w.Table("No Such Table")
	assert.True(t, errors.IsSchemaMismatch(err))
}

func TestColumnLookup(t *testing.T) {
	tbl := &Table{Name: DealsTable, Header: []string{"Asset Name", "Town"}}

	i, err := tbl.Column("asset name")
	require.NoError(t, err)
	assert.Equal(t, 0, i)

	_, err = tbl.Column("Rent pa")
	assert.True(t, errors.IsSchemaMismatch(err))
}

func TestSetCellGrowsRows(t *testing.T) {
	tbl := &Table{Name: DealsTable, Header: []string{"Asset Name", "Town"}}

	require.NoError(t, tbl.SetCell(2, "Town", "Tipton"))
	assert.Equal(t, 3, tbl.RowCount())

	v, err := tbl.Cell(2, "Town")
	require.NoError(t, err)
	assert.Equal(t, "Tipton", v)

	// Reading past the data is blank, not an error.
	v, err = tbl.Cell(9, "Town")
	require.NoError(t, err)
	assert.Equal(t, "", v)
}

func TestNextEmptyRowReusesGaps(t *testing.T) {
	tbl := &Table{
		Name:   DealsTable,
		Header: []string{"Asset Name", "Town"},
		Rows: [][]string{
			{"Apex II", "Tipton"},
			{"", ""},
			{"Premier Point", "Witton"},
		},
	}

	assert.Equal(t, 1, tbl.NextEmptyRow())

	n, err := tbl.NonEmptyRows("Asset Name")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestDealRoundTripThroughRow(t *testing.T) {
	w := NewWorkbook("store.yaml")
	tbl := w.EnsureTable(DealsTable, DealsHeader)

	d := &records.DealRecord{
		AssetName:   "Apex II",
		Town:        "Tipton",
		Postcode:    "DY4 7UF",
		AreaSqft:    records.Float64(48_000),
		RentPA:      records.Float64(250_000),
		NetYieldPct: records.Float64(6.5),
		Source:      records.SourceEmail,
	}
	require.NoError(t, WriteDeal(tbl, 0, d))

	// The workbook cell holds the decimal form.
	yield, err := tbl.Cell(0, "Net Yield")
	require.NoError(t, err)
	assert.Equal(t, "0.065", yield)

	got, err := ReadDeal(tbl, 0)
	require.NoError(t, err)
	assert.Equal(t, "Apex II", got.AssetName)
	assert.Equal(t, 48_000.0, *got.AreaSqft)
	assert.Equal(t, 6.5, *got.NetYieldPct)
	assert.Equal(t, records.SourceEmail, got.Source)
	assert.Nil(t, got.AskingPrice)
}

func TestLoadMissingFileBootstraps(t *testing.T) {
	w, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Empty(t, w.Tables)
}

func TestMarshalLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.yaml")
	w := NewWorkbook(path)
	tbl := w.EnsureTable(InvestmentTable, InvestmentHeader)
	require.NoError(t, WriteInvestment(tbl, 0, &records.InvestmentComp{
		Address: "Kelvin Way Industrial Estate",
		Price:   records.Float64(10_000_000),
		Quarter: "2025 Q2",
	}))

	data, err := Marshal(w)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	loaded, err := Load(path)
	require.NoError(t, err)
	tbl2, err := loaded.Table(InvestmentTable)
	require.NoError(t, err)
	got, err := ReadInvestment(tbl2, 0)
	require.NoError(t, err)
	assert.Equal(t, "Kelvin Way Industrial Estate", got.Address)
	assert.Equal(t, 10_000_000.0, *got.Price)
	assert.Equal(t, "2025 Q2", got.Quarter)
}

func TestLoadBadYAMLIsParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tables: [not, a, workbook"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	var parseErr *errors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

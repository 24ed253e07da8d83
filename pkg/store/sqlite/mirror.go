// Package sqlite maintains a queryable mirror of the cleaned
// occupational comps. The workbook stays the source of truth; the
// mirror exists so downstream analysis can run SQL against the comps
// without parsing the workbook.
package sqlite

import (
	"context"
	"database/sql"

	_ "github.com/mattn/go-sqlite3"

	"github.com/openfield/dealflow/pkg/errors"
	"github.com/openfield/dealflow/pkg/logging"
	"github.com/openfield/dealflow/pkg/records"
)

const schema = `
CREATE TABLE IF NOT EXISTS occupational_comps (
	tenant_name      TEXT NOT NULL,
	address          TEXT NOT NULL DEFAULT '',
	comp_date        TEXT NOT NULL DEFAULT '',
	source_deal      TEXT,
	entry_type       TEXT,
	unit_name        TEXT,
	town             TEXT,
	postcode         TEXT,
	size_sqft        REAL,
	rent_pa          REAL,
	rent_psf         REAL,
	lease_start      TEXT,
	lease_expiry     TEXT,
	break_date       TEXT,
	rent_review_date TEXT,
	lease_term_years REAL,
	notes            TEXT,
	source_file_path TEXT,
	extraction_date  TEXT,
	PRIMARY KEY (tenant_name, address, comp_date)
);`

const upsertStmt = `
INSERT INTO occupational_comps (
	tenant_name, address, comp_date, source_deal, entry_type, unit_name,
	town, postcode, size_sqft, rent_pa, rent_psf, lease_start,
	lease_expiry, break_date, rent_review_date, lease_term_years, notes,
	source_file_path, extraction_date
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (tenant_name, address, comp_date) DO UPDATE SET
	source_deal      = excluded.source_deal,
	entry_type       = excluded.entry_type,
	unit_name        = excluded.unit_name,
	town             = excluded.town,
	postcode         = excluded.postcode,
	size_sqft        = excluded.size_sqft,
	rent_pa          = excluded.rent_pa,
	rent_psf         = excluded.rent_psf,
	lease_start      = excluded.lease_start,
	lease_expiry     = excluded.lease_expiry,
	break_date       = excluded.break_date,
	rent_review_date = excluded.rent_review_date,
	lease_term_years = excluded.lease_term_years,
	notes            = excluded.notes,
	source_file_path = excluded.source_file_path,
	extraction_date  = excluded.extraction_date;`

// Mirror wraps the sqlite database holding the comps mirror.
type Mirror struct {
	db *sql.DB
}

// Open opens (creating if needed) the mirror database and ensures the
// schema exists.
func Open(path string) (*Mirror, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.WrapIO("migrate", path, err)
	}
	return &Mirror{db: db}, nil
}

// Close releases the database handle.
func (m *Mirror) Close() error {
	return m.db.Close()
}

// Upsert writes the given comps into the mirror keyed on tenant,
// address, and comp date. Rows without a tenant name carry no key and
// are skipped. Returns the number of rows written.
func (m *Mirror) Upsert(ctx context.Context, comps []records.OccupationalComp) (int, error) {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, errors.WrapIO("begin", "", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, upsertStmt)
	if err != nil {
		return 0, errors.WrapIO("prepare", "", err)
	}
	defer stmt.Close()

	written := 0
	for i := range comps {
		c := &comps[i]
		if c.TenantName == "" {
			continue
		}
		_, err := stmt.ExecContext(ctx,
			c.TenantName, c.Address, c.CompDate, c.SourceDeal,
			string(c.EntryType), c.UnitName, c.Town, c.Postcode,
			nullFloat(c.SizeSqft), nullFloat(c.RentPA), nullFloat(c.RentPSF),
			c.LeaseStart, c.LeaseExpiry, c.BreakDate, c.RentReviewDate,
			nullFloat(c.LeaseTermYears), c.Notes, c.SourceFilePath,
			c.ExtractionDate,
		)
		if err != nil {
			return 0, errors.WrapIO("upsert", "", err)
		}
		written++
	}
	if err := tx.Commit(); err != nil {
		return 0, errors.WrapIO("commit", "", err)
	}
	logging.Debug().Int("rows", written).Msg("mirrored occupational comps")
	return written, nil
}

// Count returns the number of mirrored rows.
func (m *Mirror) Count(ctx context.Context) (int, error) {
	var n int
	err := m.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM occupational_comps").Scan(&n)
	if err != nil {
		return 0, errors.WrapIO("count", "", err)
	}
	return n, nil
}

func nullFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

package reconcile

import (
	"context"

	"github.com/openfield/dealflow/pkg/derive"
	"github.com/openfield/dealflow/pkg/logging"
	"github.com/openfield/dealflow/pkg/match"
	"github.com/openfield/dealflow/pkg/merge"
	"github.com/openfield/dealflow/pkg/normalize"
	"github.com/openfield/dealflow/pkg/records"
	"github.com/openfield/dealflow/pkg/store"
)

// Occupational reconciles a batch of occupational comparables. Vacant
// rows are inserted as-is (tenancy schedules legitimately carry them)
// but never participate in matching.
func (r *Reconciler) Occupational(ctx context.Context, path string, incoming []records.OccupationalComp) (records.Report, error) {
	var report records.Report
	_, err := r.apply(ctx, path, func(wb *store.Workbook) (bool, error) {
		return r.occupationalPass(wb, incoming, &report)
	})
	return report, err
}

// occupationalPass rebuilds the report from zero on every invocation,
// as the gateway re-runs the mutator on retries.
func (r *Reconciler) occupationalPass(wb *store.Workbook, incoming []records.OccupationalComp, report *records.Report) (bool, error) {
	*report = records.Report{}
	tbl := wb.EnsureTable(store.OccupationalTable, store.OccupationalHeader)
	changed := false
	now := r.clock()

	for i := range incoming {
		rec := incoming[i]
		report.Scanned++
		normalizeOccupational(&rec)

		matchRow, existing, err := findOccupationalMatch(tbl, &rec)
		if err != nil {
			return false, err
		}

		if matchRow < 0 {
			report.CellsFilled += derive.Occupational(&rec, now)
			if err := store.WriteOccupational(tbl, tbl.NextEmptyRow(), &rec); err != nil {
				return false, err
			}
			report.Inserted++
			changed = true
			continue
		}

		report.Duplicates++
		filled := merge.Occupational(existing, &rec)
		derived := derive.Occupational(existing, now)
		if filled > 0 {
			report.Merged++
		}
		report.CellsFilled += filled + derived
		if filled+derived > 0 {
			if err := store.WriteOccupational(tbl, matchRow, existing); err != nil {
				return false, err
			}
			changed = true
		}
	}

	return changed, nil
}

func normalizeOccupational(c *records.OccupationalComp) {
	if c.Postcode == "" && c.Address != "" {
		if pc, rest := normalize.ExtractPostcode(c.Address); pc != "" {
			c.Postcode = pc
			c.Address = rest
		}
	} else if c.Postcode != "" {
		if pc := normalize.Postcode(c.Postcode); pc != "" {
			c.Postcode = pc
		}
	}
	if c.Town != "" {
		c.Town = normalize.DisplayTown(c.Town)
	}
	for _, d := range []*string{&c.LeaseStart, &c.LeaseExpiry, &c.BreakDate, &c.RentReviewDate, &c.CompDate} {
		if *d != "" {
			*d = records.NormalizeDate(*d)
		}
	}
	if c.EntryType == "" {
		c.EntryType = records.EntryTenancy
	}
}

func findOccupationalMatch(tbl *store.Table, rec *records.OccupationalComp) (int, *records.OccupationalComp, error) {
	if match.IsVacant(rec.TenantName) {
		return -1, nil, nil
	}
	for row := 0; row < tbl.RowCount(); row++ {
		existing, err := store.ReadOccupational(tbl, row)
		if err != nil {
			return -1, nil, err
		}
		if existing.TenantName == "" && existing.UnitName == "" {
			continue
		}
		if ok, reason := match.OccupationalComps(existing, rec); ok {
			logging.Debug().Str("tenant", rec.TenantName).Str("reason", reason).Msg("duplicate occupational comp")
			return row, existing, nil
		}
	}
	return -1, nil, nil
}

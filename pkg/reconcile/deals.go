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

// Deals reconciles a batch of incoming deal records against the store.
// Duplicates merge into the kept row, everything else is appended, and
// derivation runs over each touched row before commit.
func (r *Reconciler) Deals(ctx context.Context, path string, incoming []records.DealRecord) (records.Report, error) {
	var report records.Report
	_, err := r.apply(ctx, path, func(wb *store.Workbook) (bool, error) {
		return r.dealsPass(wb, incoming, &report)
	})
	return report, err
}

// dealsPass is a single mutator invocation. The gateway re-invokes the
// mutator on lock retries and verification re-attempts, so the report
// is rebuilt from zero each time instead of accumulating across
// attempts.
func (r *Reconciler) dealsPass(wb *store.Workbook, incoming []records.DealRecord, report *records.Report) (bool, error) {
	*report = records.Report{}
	tbl := wb.EnsureTable(store.DealsTable, store.DealsHeader)
	changed := false

	for i := range incoming {
		rec := incoming[i]
		report.Scanned++
		normalizeDeal(&rec)

		matchRow, existing, err := findDealMatch(tbl, &rec)
		if err != nil {
			return false, err
		}

		if matchRow < 0 {
			if !rec.HasIdentity() {
				// Identity gap is a warning, not a failure:
				// the row goes in as new and a human resolves it.
				logging.Warn().Str("town", rec.Town).Msg("deal has no asset name, inserting as new")
				report.Details = append(report.Details, "inserted deal without asset name")
			}
			report.CellsFilled += derive.Deal(&rec)
			if err := store.WriteDeal(tbl, tbl.NextEmptyRow(), &rec); err != nil {
				return false, err
			}
			report.Inserted++
			changed = true
			continue
		}

		report.Duplicates++
		filled := merge.Deals(existing, &rec)
		derived := derive.Deal(existing)
		if filled > 0 {
			report.Merged++
		}
		report.CellsFilled += filled + derived
		if filled+derived > 0 {
			if err := store.WriteDeal(tbl, matchRow, existing); err != nil {
				return false, err
			}
			changed = true
		}
		logging.Debug().
			Str("asset", rec.AssetName).
			Int("row", matchRow).
			Int("filled", filled).
			Msg("deal matched existing row")
	}

	return changed, nil
}

// normalizeDeal canonicalizes identity fields before matching.
func normalizeDeal(d *records.DealRecord) {
	if d.Postcode != "" {
		if pc := normalize.Postcode(d.Postcode); pc != "" {
			d.Postcode = pc
		}
	}
	if d.Town != "" {
		d.Town = normalize.DisplayTown(d.Town)
	}
	if d.Date != "" {
		d.Date = records.NormalizeDate(d.Date)
	}
	if d.Source == "" {
		d.Source = records.SourceEmail
	}
}

// findDealMatch scans the table for the first row matching the
// candidate. Returns -1 when nothing matches.
func findDealMatch(tbl *store.Table, rec *records.DealRecord) (int, *records.DealRecord, error) {
	if !rec.HasIdentity() {
		return -1, nil, nil
	}
	for row := 0; row < tbl.RowCount(); row++ {
		existing, err := store.ReadDeal(tbl, row)
		if err != nil {
			return -1, nil, err
		}
		if !existing.HasIdentity() {
			continue
		}
		if ok, reason := match.Deals(existing, rec); ok {
			logging.Debug().Str("asset", rec.AssetName).Str("reason", reason).Msg("duplicate deal")
			return row, existing, nil
		}
	}
	return -1, nil, nil
}

package reconcile

import (
	"context"

	"github.com/openfield/dealflow/pkg/derive"
	"github.com/openfield/dealflow/pkg/records"
	"github.com/openfield/dealflow/pkg/store"
)

// Derive runs the derivation cascade over every row of every table
// present in the store and commits any cells filled. Safe to run any
// number of times.
func (r *Reconciler) Derive(ctx context.Context, path string) (records.Report, error) {
	var report records.Report
	_, err := r.apply(ctx, path, func(wb *store.Workbook) (bool, error) {
		return r.derivePass(wb, &report)
	})
	return report, err
}

// derivePass rebuilds the report from zero on every invocation, as the
// gateway re-runs the mutator on retries.
func (r *Reconciler) derivePass(wb *store.Workbook, report *records.Report) (bool, error) {
	*report = records.Report{}
	changed := false
	now := r.clock()

	if tbl, err := wb.Table(store.DealsTable); err == nil {
		for row := 0; row < tbl.RowCount(); row++ {
			rec, err := store.ReadDeal(tbl, row)
			if err != nil {
				return false, err
			}
			if !rec.HasIdentity() {
				continue
			}
			report.Scanned++
			if n := derive.Deal(rec); n > 0 {
				report.CellsFilled += n
				if err := store.WriteDeal(tbl, row, rec); err != nil {
					return false, err
				}
				changed = true
			}
		}
	}

	if tbl, err := wb.Table(store.InvestmentTable); err == nil {
		for row := 0; row < tbl.RowCount(); row++ {
			rec, err := store.ReadInvestment(tbl, row)
			if err != nil {
				return false, err
			}
			if rec.Address == "" && !records.Present(rec.Price) {
				continue
			}
			report.Scanned++
			if n := derive.Investment(rec); n > 0 {
				report.CellsFilled += n
				if err := store.WriteInvestment(tbl, row, rec); err != nil {
					return false, err
				}
				changed = true
			}
		}
	}

	if tbl, err := wb.Table(store.OccupationalTable); err == nil {
		for row := 0; row < tbl.RowCount(); row++ {
			rec, err := store.ReadOccupational(tbl, row)
			if err != nil {
				return false, err
			}
			if isBlankOccRow(rec) {
				continue
			}
			report.Scanned++
			if n := derive.Occupational(rec, now); n > 0 {
				report.CellsFilled += n
				if err := store.WriteOccupational(tbl, row, rec); err != nil {
					return false, err
				}
				changed = true
			}
		}
	}

	return changed, nil
}

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

// Investment reconciles a batch of investment comparables. A comp
// without a price cannot be deduplicated and goes straight in as a
// new row with a warning.
func (r *Reconciler) Investment(ctx context.Context, path string, incoming []records.InvestmentComp) (records.Report, error) {
	var report records.Report
	_, err := r.apply(ctx, path, func(wb *store.Workbook) (bool, error) {
		return r.investmentPass(wb, incoming, &report)
	})
	return report, err
}

// investmentPass rebuilds the report from zero on every invocation,
// as the gateway re-runs the mutator on retries.
func (r *Reconciler) investmentPass(wb *store.Workbook, incoming []records.InvestmentComp, report *records.Report) (bool, error) {
	*report = records.Report{}
	tbl := wb.EnsureTable(store.InvestmentTable, store.InvestmentHeader)
	changed := false

	for i := range incoming {
		rec := incoming[i]
		report.Scanned++
		normalizeInvestment(&rec)

		matchRow, existing, err := findInvestmentMatch(tbl, &rec)
		if err != nil {
			return false, err
		}

		if matchRow < 0 {
			if !rec.HasIdentity() {
				logging.Warn().Str("address", rec.Address).Msg("investment comp has no price, inserting unchecked")
				report.Details = append(report.Details, "inserted investment comp without price")
			}
			report.CellsFilled += derive.Investment(&rec)
			if err := store.WriteInvestment(tbl, tbl.NextEmptyRow(), &rec); err != nil {
				return false, err
			}
			report.Inserted++
			changed = true
			continue
		}

		report.Duplicates++
		filled := merge.Investment(existing, &rec)
		derived := derive.Investment(existing)
		if filled > 0 {
			report.Merged++
		}
		report.CellsFilled += filled + derived
		if filled+derived > 0 {
			if err := store.WriteInvestment(tbl, matchRow, existing); err != nil {
				return false, err
			}
			changed = true
		}
	}

	return changed, nil
}

func normalizeInvestment(c *records.InvestmentComp) {
	if c.Town != "" {
		c.Town = normalize.DisplayTown(c.Town)
	}
	if c.Date != "" {
		c.Date = records.NormalizeDate(c.Date)
	}
	if q, ok := records.ParseQuarter(c.Quarter); ok {
		c.Quarter = q.String()
	}
}

func findInvestmentMatch(tbl *store.Table, rec *records.InvestmentComp) (int, *records.InvestmentComp, error) {
	if !rec.HasIdentity() {
		return -1, nil, nil
	}
	for row := 0; row < tbl.RowCount(); row++ {
		existing, err := store.ReadInvestment(tbl, row)
		if err != nil {
			return -1, nil, err
		}
		if ok, reason := match.InvestmentComps(existing, rec); ok {
			logging.Debug().Str("address", rec.Address).Str("reason", reason).Msg("duplicate investment comp")
			return row, existing, nil
		}
	}
	return -1, nil, nil
}

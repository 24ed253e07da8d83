package reconcile

import (
	"context"
	"fmt"
	"regexp"
	"sort"

	"github.com/openfield/dealflow/pkg/derive"
	"github.com/openfield/dealflow/pkg/logging"
	"github.com/openfield/dealflow/pkg/match"
	"github.com/openfield/dealflow/pkg/merge"
	"github.com/openfield/dealflow/pkg/records"
	"github.com/openfield/dealflow/pkg/store"
)

// Investment-sale vocabulary in occupational notes flags a row that
// was extracted into the wrong table. "comp\w*" also covers the
// spelled-out "investment comparable".
var investmentVocabRe = regexp.MustCompile(`(?i)\b(yield|niy|cap\s?val|investment\s+comp\w*)\b`)

// SweepOccupational dedups and cleans the whole occupational table in
// place: derivation first, then removal of vacant rows, wrong-table
// contamination, and rows with no usable rent, then pairwise duplicate
// detection with merge-before-delete.
func (r *Reconciler) SweepOccupational(ctx context.Context, path string) (records.Report, error) {
	var report records.Report
	ctx = logging.WithTable(ctx, store.OccupationalTable)
	_, err := r.apply(ctx, path, func(wb *store.Workbook) (bool, error) {
		return r.sweepOccupationalPass(ctx, wb, &report)
	})
	return report, err
}

// sweepOccupationalPass rebuilds the report from zero on every
// invocation, as the gateway re-runs the mutator on retries.
func (r *Reconciler) sweepOccupationalPass(ctx context.Context, wb *store.Workbook, report *records.Report) (bool, error) {
	*report = records.Report{}
	log := logging.FromContext(ctx)
	now := r.clock()

	tbl, err := wb.Table(store.OccupationalTable)
	if err != nil {
		return false, err
	}

	recs := make([]*records.OccupationalComp, tbl.RowCount())
	for row := range recs {
		recs[row], err = store.ReadOccupational(tbl, row)
		if err != nil {
			return false, err
		}
	}

	changed := false
	removed := make(map[int]bool)
	dirty := make(map[int]bool)

	// Derivation may surface a rent that saves a row from the
	// no-rent removal rule below.
	for row, rec := range recs {
		if isBlankOccRow(rec) {
			continue
		}
		report.Scanned++
		if n := derive.Occupational(rec, now); n > 0 {
			report.CellsFilled += n
			dirty[row] = true
		}
	}

	// Removal-only rules.
	for row, rec := range recs {
		if isBlankOccRow(rec) || removed[row] {
			continue
		}
		switch {
		case match.IsVacantRow(rec):
			removed[row] = true
			report.Details = append(report.Details, fmt.Sprintf("removed vacant row %d (%s)", row, rec.TenantName))
		case investmentVocabRe.MatchString(rec.Notes):
			removed[row] = true
			report.Details = append(report.Details, fmt.Sprintf("removed row %d: investment vocabulary in notes", row))
		case !records.Present(rec.RentPA) && !records.Present(rec.RentPSF):
			removed[row] = true
			report.Details = append(report.Details, fmt.Sprintf("removed row %d: no usable rent", row))
		}
	}

	// Pairwise dedup. The earlier row is kept; the duplicate is
	// merged into it before removal so no data is lost.
	for i := 0; i < len(recs); i++ {
		if removed[i] || isBlankOccRow(recs[i]) {
			continue
		}
		for j := i + 1; j < len(recs); j++ {
			if removed[j] || isBlankOccRow(recs[j]) {
				continue
			}
			ok, reason := match.OccupationalComps(recs[i], recs[j])
			if !ok {
				continue
			}
			if merge.Occupational(recs[i], recs[j]) > 0 {
				dirty[i] = true
			}
			removed[j] = true
			report.Duplicates++
			log.Debug().
				Str("tenant", recs[i].TenantName).
				Str("reason", reason).
				Msg("sweep merged duplicate occupational comp")
		}
	}

	for row := range dirty {
		if removed[row] {
			continue
		}
		if err := store.WriteOccupational(tbl, row, recs[row]); err != nil {
			return false, err
		}
		changed = true
	}
	report.RowsRemoved = deleteRows(tbl, removed)
	if report.RowsRemoved > 0 {
		changed = true
	}

	return changed, nil
}

// SweepInvestment dedups the investment comps table pairwise. Priced
// pairs use the standard rule; priceless pairs can still collapse on
// address and quarter.
func (r *Reconciler) SweepInvestment(ctx context.Context, path string) (records.Report, error) {
	var report records.Report
	ctx = logging.WithTable(ctx, store.InvestmentTable)
	_, err := r.apply(ctx, path, func(wb *store.Workbook) (bool, error) {
		return r.sweepInvestmentPass(ctx, wb, &report)
	})
	return report, err
}

// sweepInvestmentPass rebuilds the report from zero on every
// invocation, as the gateway re-runs the mutator on retries.
func (r *Reconciler) sweepInvestmentPass(ctx context.Context, wb *store.Workbook, report *records.Report) (bool, error) {
	*report = records.Report{}
	log := logging.FromContext(ctx)

	tbl, err := wb.Table(store.InvestmentTable)
	if err != nil {
		return false, err
	}

	recs := make([]*records.InvestmentComp, tbl.RowCount())
	for row := range recs {
		recs[row], err = store.ReadInvestment(tbl, row)
		if err != nil {
			return false, err
		}
	}

	changed := false
	removed := make(map[int]bool)
	dirty := make(map[int]bool)

	for i := 0; i < len(recs); i++ {
		if removed[i] || recs[i].Address == "" {
			continue
		}
		report.Scanned++
		for j := i + 1; j < len(recs); j++ {
			if removed[j] || recs[j].Address == "" {
				continue
			}
			ok, reason := match.InvestmentCompsSweep(recs[i], recs[j])
			if !ok {
				continue
			}
			if merge.Investment(recs[i], recs[j]) > 0 {
				dirty[i] = true
			}
			removed[j] = true
			report.Duplicates++
			log.Debug().
				Str("address", recs[i].Address).
				Str("reason", reason).
				Msg("sweep merged duplicate investment comp")
		}
	}

	for row := range dirty {
		if removed[row] {
			continue
		}
		if err := store.WriteInvestment(tbl, row, recs[row]); err != nil {
			return false, err
		}
		changed = true
	}
	report.RowsRemoved = deleteRows(tbl, removed)
	if report.RowsRemoved > 0 {
		changed = true
	}

	return changed, nil
}

func isBlankOccRow(c *records.OccupationalComp) bool {
	return c.TenantName == "" && c.UnitName == "" && c.Notes == "" && c.SourceDeal == ""
}

// deleteRows removes the marked rows highest-first so earlier indexes
// stay valid.
func deleteRows(tbl *store.Table, removed map[int]bool) int {
	rows := make([]int, 0, len(removed))
	for row, gone := range removed {
		if gone {
			rows = append(rows, row)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(rows)))
	for _, row := range rows {
		tbl.DeleteRow(row)
	}
	return len(rows)
}

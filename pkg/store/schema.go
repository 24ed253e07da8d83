package store

import "strings"

// IdentityColumn returns the column that marks a row as occupied for
// this table. Unknown tables fall back to their first header column.
func (t *Table) IdentityColumn() string {
	switch {
	case strings.EqualFold(t.Name, DealsTable):
		return DealsIdentityCol
	case strings.EqualFold(t.Name, InvestmentTable):
		return InvestmentIdentityCol
	case strings.EqualFold(t.Name, OccupationalTable):
		return OccupationalIdentityCol
	}
	if len(t.Header) > 0 {
		return t.Header[0]
	}
	return ""
}

// RowCounts maps each table to its occupied-row count. The write
// verification compares these against a re-read of the live file.
func RowCounts(w *Workbook) map[string]int {
	counts := make(map[string]int, len(w.Tables))
	for _, t := range w.Tables {
		col := t.IdentityColumn()
		if col == "" {
			counts[t.Name] = t.RowCount()
			continue
		}
		if n, err := t.NonEmptyRows(col); err == nil {
			counts[t.Name] = n
		}
	}
	return counts
}

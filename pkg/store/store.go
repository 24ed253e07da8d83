// Package store implements the logical row/column model of the deal
// workbook and its YAML serialization. Tables are header-addressed
// grids of string cells; the typed bindings in this package convert
// rows to and from the record structs, including the percent/decimal
// yield conversion at this boundary.
package store

import (
	"strings"

	"github.com/openfield/dealflow/pkg/errors"
)

// Workbook is an in-memory copy of the store file.
type Workbook struct {
	Path   string   `yaml:"-"`
	Tables []*Table `yaml:"tables"`
}

// Table is a named grid with a header row. Cell addressing goes
// through column names so layout changes in the live file surface as
// schema errors instead of silent misreads.
type Table struct {
	Name   string     `yaml:"name"`
	Header []string   `yaml:"header"`
	Rows   [][]string `yaml:"rows"`

	index map[string]int `yaml:"-"`
}

// NewWorkbook creates an empty workbook for the given path.
func NewWorkbook(path string) *Workbook {
	return &Workbook{Path: path}
}

// Table returns the named table or a schema error.
func (w *Workbook) Table(name string) (*Table, error) {
	for _, t := range w.Tables {
		if strings.EqualFold(t.Name, name) {
			return t, nil
		}
	}
	return nil, errors.NewSchemaError(name, "", "not found in store")
}

// EnsureTable returns the named table, creating it with the given
// header when absent.
func (w *Workbook) EnsureTable(name string, header []string) *Table {
	if t, err := w.Table(name); err == nil {
		return t
	}
	t := &Table{Name: name, Header: append([]string(nil), header...)}
	w.Tables = append(w.Tables, t)
	return t
}

// Column resolves a header name to its index, case-insensitively.
func (t *Table) Column(name string) (int, error) {
	if t.index == nil {
		t.index = make(map[string]int, len(t.Header))
		for i, h := range t.Header {
			t.index[strings.ToLower(strings.TrimSpace(h))] = i
		}
	}
	if i, ok := t.index[strings.ToLower(strings.TrimSpace(name))]; ok {
		return i, nil
	}
	return 0, errors.NewSchemaError(t.Name, name, "not found")
}

// RequireColumns fails fast when any expected column is missing, so a
// reshaped live file aborts the run before any write is attempted.
func (t *Table) RequireColumns(names ...string) error {
	for _, n := range names {
		if _, err := t.Column(n); err != nil {
			return err
		}
	}
	return nil
}

// Cell returns the trimmed cell value at row/column name. Short rows
// read as blank.
func (t *Table) Cell(row int, column string) (string, error) {
	col, err := t.Column(column)
	if err != nil {
		return "", err
	}
	if row < 0 || row >= len(t.Rows) || col >= len(t.Rows[row]) {
		return "", nil
	}
	return strings.TrimSpace(t.Rows[row][col]), nil
}

// SetCell writes a cell, growing the row as needed.
func (t *Table) SetCell(row int, column, value string) error {
	col, err := t.Column(column)
	if err != nil {
		return err
	}
	for row >= len(t.Rows) {
		t.Rows = append(t.Rows, make([]string, len(t.Header)))
	}
	for col >= len(t.Rows[row]) {
		t.Rows[row] = append(t.Rows[row], "")
	}
	t.Rows[row][col] = value
	return nil
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// NextEmptyRow returns the index of the first fully blank row, or the
// append position past the last row. Rows blanked by earlier deletions
// get reused before the table grows.
func (t *Table) NextEmptyRow() int {
	for i, row := range t.Rows {
		empty := true
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				empty = false
				break
			}
		}
		if empty {
			return i
		}
	}
	return len(t.Rows)
}

// DeleteRow removes a data row.
func (t *Table) DeleteRow(row int) {
	if row < 0 || row >= len(t.Rows) {
		return
	}
	t.Rows = append(t.Rows[:row], t.Rows[row+1:]...)
}

// NonEmptyRows counts rows with a value in the identity column. The
// post-write verification compares this against the expected count.
func (t *Table) NonEmptyRows(identityColumn string) (int, error) {
	col, err := t.Column(identityColumn)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, row := range t.Rows {
		if col < len(row) && strings.TrimSpace(row[col]) != "" {
			n++
		}
	}
	return n, nil
}

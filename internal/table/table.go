// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package table

// Table is an ordered sequence of rows, each an ordered sequence of text
// cells. Columns are identified by zero-based position only.
type Table struct {
	Rows [][]string
}

// New wraps rows in a Table. The rows are not copied.
func New(rows [][]string) Table {
	return Table{Rows: rows}
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t.Rows)
}

// Width returns the widest row's cell count.
func (t Table) Width() int {
	w := 0
	for _, row := range t.Rows {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// Cell returns the value at row r, column c, or "" when the row is shorter
// than c.
func (t Table) Cell(r, c int) string {
	if r < 0 || r >= len(t.Rows) || c < 0 || c >= len(t.Rows[r]) {
		return ""
	}
	return t.Rows[r][c]
}

// Clone returns a deep copy.
func (t Table) Clone() Table {
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = append([]string(nil), row...)
	}
	return Table{Rows: rows}
}

// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import "strconv"

// StatusLabel is the label of the trailing status column.
const StatusLabel = "status"

// Column describes one output column.
type Column struct {
	// Index is the original column position, or -1 for the status column.
	Index int
	// Label names the column: the position for key columns ("0"), the
	// position with an "_after" suffix for compared columns ("3_after"), and
	// StatusLabel for the status column.
	Label  string
	Key    bool
	Status bool
}

// Layout returns the output columns for a joined schema of the given width:
// one per original position in ascending numeric order, then the status
// column. Output position i always carries original column i.
func Layout(keyCols []int, width int) []Column {
	isKey := make(map[int]bool, len(keyCols))
	for _, k := range keyCols {
		isKey[k] = true
	}

	cols := make([]Column, 0, width+1)
	for i := 0; i < width; i++ {
		if isKey[i] {
			cols = append(cols, Column{Index: i, Label: strconv.Itoa(i), Key: true})
			continue
		}
		cols = append(cols, Column{Index: i, Label: strconv.Itoa(i) + "_after"})
	}

	return append(cols, Column{Index: -1, Label: StatusLabel, Status: true})
}

// Row is one output row. Cells has one entry per non-status column.
type Row struct {
	Cells  []string
	Status Status
}

// Result is the formatted outcome of a comparison.
type Result struct {
	Columns []Column
	Rows    []Row
}

// Labels returns the column labels in order, status included.
func (r Result) Labels() []string {
	labels := make([]string, len(r.Columns))
	for i, c := range r.Columns {
		labels[i] = c.Label
	}
	return labels
}

// Records returns each row's cells followed by its status.
func (r Result) Records() [][]string {
	records := make([][]string, len(r.Rows))
	for i, row := range r.Rows {
		rec := make([]string, 0, len(row.Cells)+1)
		rec = append(rec, row.Cells...)
		records[i] = append(rec, string(row.Status))
	}
	return records
}

// Clone returns a deep copy.
func (r Result) Clone() Result {
	out := Result{
		Columns: append([]Column(nil), r.Columns...),
		Rows:    make([]Row, len(r.Rows)),
	}
	for i, row := range r.Rows {
		out.Rows[i] = Row{Cells: append([]string(nil), row.Cells...), Status: row.Status}
	}
	return out
}

// Format lays out the changes of j, dropping those with StatusNone.
func Format(j Joined, changes []Change) Result {
	res := Result{Columns: Layout(j.KeyCols, j.Width)}

	for _, ch := range changes {
		if ch.Status == StatusNone {
			continue
		}

		cells := make([]string, j.Width)
		for i, k := range j.KeyCols {
			cells[k] = ch.Key[i]
		}
		for _, p := range ch.Cells {
			cells[p.Index] = p.After
		}

		res.Rows = append(res.Rows, Row{Cells: cells, Status: ch.Status})
	}

	return res
}

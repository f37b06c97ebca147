// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

// Status is the row-level outcome of a comparison.
type Status string

const (
	StatusNone   Status = "none"
	StatusUpdate Status = "update"
	StatusAdd    Status = "add"
	StatusDelete Status = "delete"
)

// ColumnSet is a set of original column positions.
type ColumnSet map[int]struct{}

// NewColumnSet returns a set holding cols.
func NewColumnSet(cols ...int) ColumnSet {
	s := make(ColumnSet, len(cols))
	for _, c := range cols {
		s[c] = struct{}{}
	}
	return s
}

// Has reports whether c is in the set. A nil set is empty.
func (s ColumnSet) Has(c int) bool {
	_, ok := s[c]
	return ok
}

// Change is a classified joined row. Cells carries the after-side value of
// every non-key column, blanked where unchanged or excluded.
type Change struct {
	Key    []string
	Cells  []Pair
	Status Status
}

// Classify compares the pairs of row and decides its status. Excluded columns
// are blanked and never compared. Equal pairs are blanked. Any other pair
// keeps its after value and marks the row StatusUpdate, unless provenance
// makes the row an add or a delete, which always wins.
//
// Classify does not modify row.
func Classify(row JoinedRow, except ColumnSet) Change {
	status := StatusNone
	cells := make([]Pair, len(row.Pairs))

	for i, p := range row.Pairs {
		cells[i] = p
		switch {
		case except.Has(p.Index):
			cells[i].After = ""
		case p.Before == p.After:
			cells[i].After = ""
		default:
			status = StatusUpdate
		}
	}

	switch row.Provenance {
	case BeforeOnly:
		status = StatusDelete
	case AfterOnly:
		status = StatusAdd
	}

	return Change{Key: row.Key, Cells: cells, Status: status}
}

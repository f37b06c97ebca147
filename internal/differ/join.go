// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tfctl/csvdiff/internal/log"
	"github.com/tfctl/csvdiff/internal/table"
)

// Provenance records which input a joined row's key was found in.
type Provenance int

const (
	// Both means the key exists in the before and the after table.
	Both Provenance = iota
	// BeforeOnly means the key exists only in the before table.
	BeforeOnly
	// AfterOnly means the key exists only in the after table.
	AfterOnly
)

func (p Provenance) String() string {
	switch p {
	case Both:
		return "both"
	case BeforeOnly:
		return "before_only"
	case AfterOnly:
		return "after_only"
	default:
		return "unknown"
	}
}

// Pair holds the before and after value of one non-key column. Index is the
// column's position in the original tables. A side that is absent, either
// because the row itself is missing or because the row is too short, is "".
type Pair struct {
	Index  int
	Before string
	After  string
}

// JoinedRow is one row of the outer join.
type JoinedRow struct {
	// Key holds the key values in the order of Joined.KeyCols.
	Key        []string
	Pairs      []Pair
	Provenance Provenance
}

// Joined is the outcome of Join.
type Joined struct {
	KeyCols []int
	// Width is the number of original columns, the max row width seen in
	// either table (and at least one past the largest key column).
	Width int
	Rows  []JoinedRow
}

// Join performs a full outer join of before and after on keyCols. Key values
// are compared as raw text. A key shared by several rows on both sides
// produces every before/after combination.
//
// Rows come out in before-table order, a before row with several partners
// expanding in after-table order, followed by the after-only rows in
// after-table order.
//
// A key column missing from any row of either table is an ErrSchema.
func Join(before, after table.Table, keyCols []int) (Joined, error) {
	if err := checkKeys("before", before, keyCols); err != nil {
		return Joined{}, err
	}
	if err := checkKeys("after", after, keyCols); err != nil {
		return Joined{}, err
	}

	width := max(before.Width(), after.Width())
	for _, k := range keyCols {
		width = max(width, k+1)
	}

	isKey := make(map[int]bool, len(keyCols))
	for _, k := range keyCols {
		isKey[k] = true
	}

	// Index the after rows by key, preserving their order.
	afterByKey := make(map[string][]int, after.Len())
	for i, row := range after.Rows {
		k := indexKey(row, keyCols)
		afterByKey[k] = append(afterByKey[k], i)
	}

	joined := Joined{KeyCols: keyCols, Width: width}
	matched := make([]bool, after.Len())

	for _, brow := range before.Rows {
		partners := afterByKey[indexKey(brow, keyCols)]
		if len(partners) == 0 {
			joined.Rows = append(joined.Rows, joinRow(brow, nil, keyCols, isKey, width, BeforeOnly))
			continue
		}
		for _, j := range partners {
			matched[j] = true
			joined.Rows = append(joined.Rows, joinRow(brow, after.Rows[j], keyCols, isKey, width, Both))
		}
	}

	for j, arow := range after.Rows {
		if !matched[j] {
			joined.Rows = append(joined.Rows, joinRow(nil, arow, keyCols, isKey, width, AfterOnly))
		}
	}

	log.Debugf("joined: before=%d after=%d joined=%d width=%d", before.Len(), after.Len(), len(joined.Rows), width)

	return joined, nil
}

// checkKeys verifies every row of t reaches every key column.
func checkKeys(side string, t table.Table, keyCols []int) error {
	for i, row := range t.Rows {
		for _, k := range keyCols {
			if k >= len(row) {
				return fmt.Errorf("%w: %s row %d has %d columns, key column %d out of range",
					ErrSchema, side, i+1, len(row), k)
			}
		}
	}
	return nil
}

// joinRow builds a JoinedRow from one row of each side. Either may be nil.
func joinRow(brow, arow []string, keyCols []int, isKey map[int]bool, width int, p Provenance) JoinedRow {
	src := brow
	if p == AfterOnly {
		src = arow
	}

	key := make([]string, len(keyCols))
	for i, k := range keyCols {
		key[i] = src[k]
	}

	pairs := make([]Pair, 0, width-len(isKey))
	for c := 0; c < width; c++ {
		if isKey[c] {
			continue
		}
		pairs = append(pairs, Pair{Index: c, Before: cell(brow, c), After: cell(arow, c)})
	}

	return JoinedRow{Key: key, Pairs: pairs, Provenance: p}
}

// indexKey encodes the key tuple of row as a map key. Each value is length
// prefixed so that no choice of cell contents can collide.
func indexKey(row []string, keyCols []int) string {
	var b strings.Builder
	for _, k := range keyCols {
		v := row[k]
		b.WriteString(strconv.Itoa(len(v)))
		b.WriteByte(':')
		b.WriteString(v)
	}
	return b.String()
}

func cell(row []string, c int) string {
	if c < len(row) {
		return row[c]
	}
	return ""
}

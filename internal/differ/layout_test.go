// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package differ

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout(t *testing.T) {
	cols := Layout([]int{0, 2}, 4)

	assert.Equal(t, []Column{
		{Index: 0, Label: "0", Key: true},
		{Index: 1, Label: "1_after"},
		{Index: 2, Label: "2", Key: true},
		{Index: 3, Label: "3_after"},
		{Index: -1, Label: StatusLabel, Status: true},
	}, cols)
}

func TestLayoutNumericOrder(t *testing.T) {
	// Lexical ordering would put "10_after" before "2_after".
	cols := Layout([]int{0}, 13)
	require.Len(t, cols, 14)

	for i := 0; i < 13; i++ {
		assert.Equal(t, i, cols[i].Index)
	}
	assert.Equal(t, "2_after", cols[2].Label)
	assert.Equal(t, "10_after", cols[10].Label)
	assert.Equal(t, StatusLabel, cols[13].Label)
}

func TestFormatPlacement(t *testing.T) {
	// Twelve columns with every non-key cell changed: output position i must
	// carry the after value of original column i.
	width := 12
	brow := make([]string, width)
	arow := make([]string, width)
	var pairs []Pair
	for i := 1; i < width; i++ {
		brow[i] = "b" + strconv.Itoa(i)
		arow[i] = "a" + strconv.Itoa(i)
		pairs = append(pairs, Pair{Index: i, Before: brow[i], After: arow[i]})
	}

	j := Joined{KeyCols: []int{0}, Width: width}
	ch := Classify(JoinedRow{Key: []string{"k"}, Pairs: pairs}, nil)
	res := Format(j, []Change{ch})

	require.Len(t, res.Rows, 1)
	cells := res.Rows[0].Cells
	assert.Equal(t, "k", cells[0])
	for i := 1; i < width; i++ {
		assert.Equal(t, "a"+strconv.Itoa(i), cells[i], "column %d", i)
	}
}

func TestFormatDropsNone(t *testing.T) {
	j := Joined{KeyCols: []int{0}, Width: 2}
	res := Format(j, []Change{
		{Key: []string{"1"}, Cells: []Pair{{Index: 1}}, Status: StatusNone},
		{Key: []string{"2"}, Cells: []Pair{{Index: 1, After: "x"}}, Status: StatusAdd},
	})

	assert.Equal(t, [][]string{{"2", "x", "add"}}, res.Records())
	assert.Equal(t, []string{"0", "1_after", "status"}, res.Labels())
}

func TestResultClone(t *testing.T) {
	res := Result{
		Columns: Layout([]int{0}, 2),
		Rows:    []Row{{Cells: []string{"1", "x"}, Status: StatusUpdate}},
	}

	c := res.Clone()
	c.Rows[0].Cells[1] = "changed"
	c.Columns[0].Label = "changed"

	assert.Equal(t, "x", res.Rows[0].Cells[1])
	assert.Equal(t, "0", res.Columns[0].Label)
}

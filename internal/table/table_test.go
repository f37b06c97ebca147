// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableShape(t *testing.T) {
	tbl := New([][]string{
		{"1", "a"},
		{"2", "b", "c"},
	})

	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, 3, tbl.Width())
	assert.Equal(t, "c", tbl.Cell(1, 2))
	assert.Equal(t, "", tbl.Cell(0, 2))
	assert.Equal(t, "", tbl.Cell(5, 0))
	assert.Equal(t, "", tbl.Cell(0, -1))
	assert.Equal(t, 0, Table{}.Width())
}

func TestTableClone(t *testing.T) {
	tbl := New([][]string{{"1", "a"}})
	clone := tbl.Clone()
	clone.Rows[0][1] = "changed"

	assert.Equal(t, "a", tbl.Rows[0][1])
	assert.Equal(t, "changed", clone.Rows[0][1])
}

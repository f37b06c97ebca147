// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/tfctl/csvdiff/internal/differ"
	"github.com/tfctl/csvdiff/internal/filters"
	"github.com/tfctl/csvdiff/internal/table"
)

// sample is the result of keying 0 over a three column table.
func sample(t *testing.T) (differ.Result, differ.Summary) {
	t.Helper()

	before := table.New([][]string{
		{"1", "a", "x"},
		{"2", "b", "y"},
		{"10", "c", "z"},
	})
	after := table.New([][]string{
		{"1", "a", "X"},
		{"10", "C", "z"},
		{"3", "d", "w"},
	})

	res, err := differ.Compare(before, after, []int{0}, nil)
	require.NoError(t, err)

	return res, differ.Summary{Joined: 4, Updated: 2, Added: 1, Deleted: 1}
}

func TestSortDataset(t *testing.T) {
	records := []filters.Record{
		{"name": "zebra", "count": "3"},
		{"name": "Alpha", "count": "10"},
		{"name": "beta", "count": "2"},
	}

	tests := []struct {
		name      string
		spec      string
		wantOrder []string
	}{
		{"none", "", []string{"zebra", "Alpha", "beta"}},
		{"ascending by name", "name", []string{"Alpha", "beta", "zebra"}},
		{"descending by name", "-name", []string{"zebra", "beta", "Alpha"}},
		{"numeric by count", "count", []string{"beta", "zebra", "Alpha"}},
		{"descending by count", "-count", []string{"Alpha", "zebra", "beta"}},
		{"case sensitive", "!name", []string{"Alpha", "beta", "zebra"}},
		{"unknown field keeps order", "nope", []string{"zebra", "Alpha", "beta"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]filters.Record, len(records))
			copy(data, records)

			SortDataset(data, tt.spec)

			var got []string
			for _, r := range data {
				got = append(got, r["name"])
			}
			assert.Equal(t, tt.wantOrder, got)
		})
	}
}

func TestSortDatasetMultipleFields(t *testing.T) {
	data := []filters.Record{
		{"status": "update", "0": "2"},
		{"status": "add", "0": "9"},
		{"status": "update", "0": "1"},
	}

	SortDataset(data, "status,-0")

	assert.Equal(t, []string{"9", "2", "1"}, []string{data[0]["0"], data[1]["0"], data[2]["0"]})
}

func TestSliceDiceSpitCSV(t *testing.T) {
	res, sum := sample(t)

	tests := []struct {
		name string
		opts Options
		want string
	}{
		{
			name: "default",
			opts: Options{},
			want: "1,,X,update\n2,,,delete\n10,C,,update\n3,d,w,add\n",
		},
		{
			name: "titles",
			opts: Options{Format: "csv", Titles: true, Filter: "status=add"},
			want: "0,1_after,2_after,status\n3,d,w,add\n",
		},
		{
			name: "sorted",
			opts: Options{Sort: "-0"},
			want: "10,C,,update\n3,d,w,add\n2,,,delete\n1,,X,update\n",
		},
		{
			name: "filtered to nothing",
			opts: Options{Filter: "status=none"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, SliceDiceSpit(&buf, res, sum, tt.opts))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestSliceDiceSpitLeavesResult(t *testing.T) {
	res, sum := sample(t)
	before := res.Clone()

	var buf bytes.Buffer
	require.NoError(t, SliceDiceSpit(&buf, res, sum, Options{Filter: "status=add", Sort: "-0"}))

	assert.Equal(t, before, res)
}

func TestSliceDiceSpitJSON(t *testing.T) {
	res, sum := sample(t)

	var buf bytes.Buffer
	require.NoError(t, SliceDiceSpit(&buf, res, sum, Options{Format: "json", Filter: "status=delete"}))

	assert.JSONEq(t,
		`{"columns":["0","1_after","2_after","status"],"rows":[["2","","","delete"]]}`,
		buf.String())

	buf.Reset()
	require.NoError(t, SliceDiceSpit(&buf, res, sum, Options{Format: "json", Filter: "status=none"}))
	assert.JSONEq(t, `{"columns":["0","1_after","2_after","status"],"rows":[]}`, buf.String())
}

func TestSliceDiceSpitYAML(t *testing.T) {
	res, sum := sample(t)

	var buf bytes.Buffer
	require.NoError(t, SliceDiceSpit(&buf, res, sum, Options{Format: "yaml", Filter: "status=add"}))

	var doc document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, document{
		Columns: []string{"0", "1_after", "2_after", "status"},
		Rows:    [][]string{{"3", "d", "w", "add"}},
	}, doc)
}

func TestSliceDiceSpitText(t *testing.T) {
	res, sum := sample(t)

	var buf bytes.Buffer
	require.NoError(t, SliceDiceSpit(&buf, res, sum, Options{Format: "text", Titles: true, Padding: 2, Summary: true}))

	out := buf.String()
	assert.Contains(t, out, "1_after")
	assert.Contains(t, out, "status")
	assert.Contains(t, out, "delete")
	assert.Contains(t, out, "X")
	assert.True(t, strings.HasSuffix(out, Footer(sum)+"\n"))
}

func TestSliceDiceSpitUnknownFormat(t *testing.T) {
	res, sum := sample(t)
	assert.Error(t, SliceDiceSpit(&bytes.Buffer{}, res, sum, Options{Format: "xml"}))
}

func TestTableWriterEmpty(t *testing.T) {
	var buf bytes.Buffer
	TableWriter(&buf, []string{"0", "status"}, nil, Options{Titles: true})
	assert.Empty(t, buf.String())
}

func TestRecords(t *testing.T) {
	res, _ := sample(t)
	records := Records(res)

	require.Len(t, records, 4)
	assert.Equal(t, filters.Record{"0": "1", "1_after": "", "2_after": "X", "status": "update"}, records[0])
	assert.Equal(t, []string{"1", "", "X", "update"}, Cells(records[0], res.Labels()))
}

func TestFooter(t *testing.T) {
	assert.Equal(t,
		"1,234 changed (1,000 update, 200 add, 34 delete) of 5,000 joined rows",
		Footer(differ.Summary{Joined: 5000, Updated: 1000, Added: 200, Deleted: 34}))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}

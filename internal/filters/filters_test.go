// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildFilters(t *testing.T) {
	tests := []struct {
		name  string
		spec  string
		delim string
		want  []Filter
	}{
		{name: "empty", spec: "", want: nil},
		{
			name: "single",
			spec: "status=add",
			want: []Filter{{Key: "status", Operand: "=", Value: "add"}},
		},
		{
			name: "negated",
			spec: "status!=add",
			want: []Filter{{Key: "status", Negate: true, Operand: "=", Value: "add"}},
		},
		{
			name: "multiple",
			spec: "status=update, 3_after^foo ,0>10",
			want: []Filter{
				{Key: "status", Operand: "=", Value: "update"},
				{Key: "3_after", Operand: "^", Value: "foo"},
				{Key: "0", Operand: ">", Value: "10"},
			},
		},
		{
			name: "empty target",
			spec: "1_after=",
			want: []Filter{{Key: "1_after", Operand: "=", Value: ""}},
		},
		{
			name: "skips malformed",
			spec: "=x,status,,1_after@b",
			want: []Filter{{Key: "1_after", Operand: "@", Value: "b"}},
		},
		{
			name:  "custom delimiter",
			spec:  "1_after=a,b;status=add",
			delim: ";",
			want: []Filter{
				{Key: "1_after", Operand: "=", Value: "a,b"},
				{Key: "status", Operand: "=", Value: "add"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.delim != "" {
				t.Setenv("CSVDIFF_FILTER_DELIM", tt.delim)
			}
			assert.Equal(t, tt.want, BuildFilters(tt.spec))
		})
	}
}

func TestCheckStringOperand(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		filter Filter
		want   bool
	}{
		{"equal", "add", Filter{Operand: "=", Value: "add"}, true},
		{"not equal", "add", Filter{Operand: "=", Value: "add", Negate: true}, false},
		{"fold", "Tokyo", Filter{Operand: "~", Value: "tokyo"}, true},
		{"prefix", "foobar", Filter{Operand: "^", Value: "foo"}, true},
		{"not prefix", "foobar", Filter{Operand: "^", Value: "bar", Negate: true}, true},
		{"contains", "foobar", Filter{Operand: "@", Value: "oba"}, true},
		{"greater", "b", Filter{Operand: ">", Value: "a"}, true},
		{"less", "b", Filter{Operand: "<", Value: "a"}, false},
		{"regex", "x-42", Filter{Operand: "/", Value: `^x-\d+$`}, true},
		{"bad regex", "x", Filter{Operand: "/", Value: `(`}, false},
		{"unknown", "x", Filter{Operand: "?", Value: "x"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checkStringOperand(tt.value, tt.filter))
		})
	}
}

func TestCheckNumericOperand(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		filter Filter
		want   bool
	}{
		{"equal", 10, Filter{Operand: "=", Value: "10.0"}, true},
		{"not equal", 10, Filter{Operand: "=", Value: "10", Negate: true}, false},
		{"greater", 10, Filter{Operand: ">", Value: "9"}, true},
		{"less", 10, Filter{Operand: "<", Value: "9"}, false},
		{"not numeric", 10, Filter{Operand: "=", Value: "x"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checkNumericOperand(tt.value, tt.filter))
		})
	}
}

func TestToFloat64(t *testing.T) {
	f, ok := toFloat64(" 1.5 ")
	assert.True(t, ok)
	assert.InDelta(t, 1.5, f, 0)

	_, ok = toFloat64("")
	assert.False(t, ok)

	_, ok = toFloat64("abc")
	assert.False(t, ok)
}

func TestFilterRecords(t *testing.T) {
	keys := []string{"0", "1_after", "status"}
	records := []Record{
		{"0": "9", "1_after": "x", "status": "update"},
		{"0": "10", "1_after": "", "status": "delete"},
		{"0": "100", "1_after": "y", "status": "add"},
	}

	tests := []struct {
		name string
		spec string
		want []string
	}{
		{"none", "", []string{"9", "10", "100"}},
		{"status", "status=add", []string{"100"}},
		{"negated status", "status!=add", []string{"9", "10"}},
		{"numeric not lexical", "0>9", []string{"10", "100"}},
		{"numeric equal", "0=10.0", []string{"10"}},
		{"empty cell", "1_after=", []string{"10"}},
		{"anded", "status!=delete,0<50", []string{"9"}},
		{"unknown key skipped", "nope=1,status=update", []string{"9"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, r := range FilterRecords(records, keys, tt.spec) {
				got = append(got, r["0"])
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

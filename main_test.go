// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/csvdiff/internal/config"
	"github.com/tfctl/csvdiff/internal/version"
)

func useConfig(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "csvdiff.yaml")
	if content != "" {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	t.Setenv("CSVDIFF_CFG_FILE", path)
	t.Setenv("CSVDIFF_CACHE", "0")

	config.Config = config.Type{}
	t.Cleanup(func() { config.Config = config.Type{} })
}

func TestDeduplicateFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "empty args",
			args:     []string{},
			expected: []string{},
		},
		{
			name:     "only program and command",
			args:     []string{"csvdiff", "diff"},
			expected: []string{"csvdiff", "diff"},
		},
		{
			name:     "no duplicates",
			args:     []string{"csvdiff", "diff", "--output", "text", "--titles", "b.csv", "a.csv"},
			expected: []string{"csvdiff", "diff", "--output", "text", "--titles", "b.csv", "a.csv"},
		},
		{
			name:     "duplicate flag with value - last wins",
			args:     []string{"csvdiff", "diff", "--output", "json", "--titles", "--output", "text"},
			expected: []string{"csvdiff", "diff", "--titles", "--output", "text"},
		},
		{
			name:     "duplicate boolean flag keeps positional",
			args:     []string{"csvdiff", "diff", "--titles", "b.csv", "--titles", "a.csv"},
			expected: []string{"csvdiff", "diff", "b.csv", "--titles", "a.csv"},
		},
		{
			name:     "duplicate flag with equals syntax",
			args:     []string{"csvdiff", "diff", "--output=json", "--titles", "--output=text"},
			expected: []string{"csvdiff", "diff", "--titles", "--output=text"},
		},
		{
			name:     "mixed equals and space syntax",
			args:     []string{"csvdiff", "diff", "--output=json", "--output", "text"},
			expected: []string{"csvdiff", "diff", "--output", "text"},
		},
		{
			name:     "short flags",
			args:     []string{"csvdiff", "diff", "-k", "0", "-k", "0,2"},
			expected: []string{"csvdiff", "diff", "-k", "0,2"},
		},
		{
			name:     "value that looks like a flag",
			args:     []string{"csvdiff", "diff", "-s", "-0", "b.csv", "a.csv"},
			expected: []string{"csvdiff", "diff", "-s", "-0", "b.csv", "a.csv"},
		},
		{
			name:     "stdin positional",
			args:     []string{"csvdiff", "diff", "-", "a.csv"},
			expected: []string{"csvdiff", "diff", "-", "a.csv"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, deduplicateFlags(tt.args))
		})
	}
}

func TestProcessSetOnly(t *testing.T) {
	useConfig(t, `
diff:
  wide:
    - --output text
    - --titles
`)

	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "no set",
			args:     []string{"csvdiff", "diff", "b.csv", "a.csv"},
			expected: []string{"csvdiff", "diff", "b.csv", "a.csv"},
		},
		{
			name:     "set expanded in place",
			args:     []string{"csvdiff", "diff", "@wide", "b.csv", "a.csv"},
			expected: []string{"csvdiff", "diff", "--output", "text", "--titles", "b.csv", "a.csv"},
		},
		{
			name:     "unknown set removed",
			args:     []string{"csvdiff", "diff", "b.csv", "@nope", "a.csv"},
			expected: []string{"csvdiff", "diff", "b.csv", "a.csv"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, processSetOnly(tt.args))
		})
	}
}

func TestHandleNakedCommand(t *testing.T) {
	assert.Equal(t, []string{"csvdiff", "--help"}, handleNakedCommand([]string{"csvdiff"}))
	assert.Equal(t, []string{"csvdiff", "diff"}, handleNakedCommand([]string{"csvdiff", "diff"}))
}

func TestHandleVersion(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, handleVersion([]string{"csvdiff", "-v"}, &buf))
	assert.Equal(t, version.Version+"\n", buf.String())

	assert.False(t, handleVersion([]string{"csvdiff", "diff"}, &buf))
}

func TestRealMainExitCodes(t *testing.T) {
	useConfig(t, "")

	dir := t.TempDir()
	before := filepath.Join(dir, "b.csv")
	after := filepath.Join(dir, "a.csv")
	require.NoError(t, os.WriteFile(before, []byte("1,x,y\n2,a,b\n"), 0o600))
	require.NoError(t, os.WriteFile(after, []byte("1,x,z\n"), 0o600))

	var buf bytes.Buffer
	assert.Equal(t, 0, realMain([]string{"csvdiff", "diff", "-k", "1", "-k", "0", before, after}, &buf))
	assert.Equal(t, "1,,z,update\n2,,,delete\n", buf.String())

	buf.Reset()
	assert.Equal(t, 2, realMain([]string{"csvdiff", "diff", before}, &buf))
}

func TestRealMainBrokenConfig(t *testing.T) {
	useConfig(t, "key: [unterminated")

	var buf bytes.Buffer
	assert.Equal(t, 1, realMain([]string{"csvdiff", "diff", "b.csv", "a.csv"}, &buf))
}

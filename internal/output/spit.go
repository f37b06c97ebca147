// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	lgtable "github.com/charmbracelet/lipgloss/v2/table"
	"github.com/dustin/go-humanize"
	"golang.org/x/term"
	"gopkg.in/yaml.v2"

	"github.com/tfctl/csvdiff/internal/config"
	"github.com/tfctl/csvdiff/internal/differ"
	"github.com/tfctl/csvdiff/internal/filters"
	"github.com/tfctl/csvdiff/internal/log"
	"github.com/tfctl/csvdiff/internal/table"
)

// Formats lists the accepted --output values.
var Formats = []string{"csv", "text", "json", "yaml"}

// Options controls rendering.
type Options struct {
	// Format is one of Formats. Empty means csv.
	Format string
	// Filter and Sort are --filter and --sort specs over column labels.
	Filter string
	Sort   string
	// Titles adds a header row of column labels (csv and text).
	Titles bool
	// Color styles text output by row status.
	Color bool
	// Padding is the left padding of every text column after the first.
	Padding int
	// Summary appends a count footer to text output.
	Summary bool
}

// document is the json and yaml shape of a result.
type document struct {
	Columns []string   `json:"columns" yaml:"columns"`
	Rows    [][]string `json:"rows" yaml:"rows"`
}

// SliceDiceSpit filters, sorts and renders res to w. The result itself is
// not modified.
func SliceDiceSpit(w io.Writer, res differ.Result, sum differ.Summary, opts Options) error {
	if w == nil {
		w = os.Stdout
	}

	labels := res.Labels()
	records := Records(res)
	records = filters.FilterRecords(records, labels, opts.Filter)
	SortDataset(records, opts.Sort)

	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = Cells(r, labels)
	}

	switch opts.Format {
	case "", "csv":
		return writeCSV(w, labels, rows, opts.Titles)
	case "json":
		out, err := json.Marshal(document{Columns: labels, Rows: nonNil(rows)})
		if err != nil {
			return fmt.Errorf("failed to marshal json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case "yaml":
		out, err := yaml.Marshal(document{Columns: labels, Rows: nonNil(rows)})
		if err != nil {
			return fmt.Errorf("failed to marshal yaml: %w", err)
		}
		_, err = w.Write(out)
		return err
	case "text":
		TableWriter(w, labels, rows, opts)
		if opts.Summary {
			fmt.Fprintln(w, Footer(sum))
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", opts.Format)
	}
}

// Records converts res into label keyed records for filtering and sorting.
func Records(res differ.Result) []filters.Record {
	labels := res.Labels()
	out := make([]filters.Record, len(res.Rows))
	for i, row := range res.Rows {
		r := make(filters.Record, len(labels))
		for c, cell := range row.Cells {
			r[labels[c]] = cell
		}
		r[differ.StatusLabel] = string(row.Status)
		out[i] = r
	}
	return out
}

// Cells returns the values of r in label order.
func Cells(r filters.Record, labels []string) []string {
	cells := make([]string, len(labels))
	for i, l := range labels {
		cells[i] = r[l]
	}
	return cells
}

// Footer summarizes counts in a human readable line.
func Footer(sum differ.Summary) string {
	return fmt.Sprintf("%s changed (%s update, %s add, %s delete) of %s joined rows",
		humanize.Comma(int64(sum.Changed())),
		humanize.Comma(int64(sum.Updated)),
		humanize.Comma(int64(sum.Added)),
		humanize.Comma(int64(sum.Deleted)),
		humanize.Comma(int64(sum.Joined)))
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec
}

func writeCSV(w io.Writer, labels []string, rows [][]string, titles bool) error {
	codec, err := table.LookupEncoding(table.DefaultEncoding)
	if err != nil {
		return err
	}
	if titles {
		rows = append([][]string{labels}, rows...)
	}
	return table.Encode(w, table.New(rows), codec)
}

func nonNil(rows [][]string) [][]string {
	if rows == nil {
		return [][]string{}
	}
	return rows
}

// TableWriter renders rows as an aligned text table honoring the color,
// titles and padding options. The last cell of each row is its status.
func TableWriter(w io.Writer, labels []string, rows [][]string, opts Options) {
	if w == nil {
		w = os.Stdout
	}

	if len(rows) == 0 {
		return
	}

	var (
		headerStyle = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
		cellStyle   = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		rowStyles   = map[string]lipgloss.Style{}
	)

	if opts.Color {
		colors := getColors("colors")
		headerStyle = headerStyle.Foreground(colors["title"])
		for _, s := range []differ.Status{differ.StatusUpdate, differ.StatusAdd, differ.StatusDelete} {
			rowStyles[string(s)] = cellStyle.Foreground(colors[string(s)])
		}
	}

	t := lgtable.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := cellStyle
			switch {
			case row == lgtable.HeaderRow:
				style = headerStyle
			case row >= 0 && row < len(rows):
				if s, ok := rowStyles[rows[row][len(rows[row])-1]]; ok {
					style = s
				}
			}

			if col > 0 {
				style = style.PaddingLeft(opts.Padding)
			}

			return style
		}).
		Headers().
		Rows(rows...)

	if opts.Titles {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(labels...).BorderHeader(false)
	}

	fmt.Fprintln(w, t)
	log.Debugf("rendered text table: rows=%d cols=%d", len(rows), len(labels))
}

// getColors returns the configured colour per status plus "title". Missing
// keys fall back to defaults picked for the terminal background.
func getColors(key string) map[string]color.Color {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	resolveColor := func(key string, light string, dark string) color.Color {
		colorCfg, err := config.GetString(key)
		if err == nil && strings.TrimSpace(colorCfg) != "" {
			return lipgloss.Color(colorCfg)
		}

		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	return map[string]color.Color{
		"title":  resolveColor(key+".title", "#b08800", "#f6be00"),
		"update": resolveColor(key+".update", "#0088a0", "#00c8f0"),
		"add":    resolveColor(key+".add", "#22863a", "#85e89d"),
		"delete": resolveColor(key+".delete", "#b31d28", "#f97583"),
	}
}

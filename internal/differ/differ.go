// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"context"
	"errors"
	"fmt"

	"github.com/tfctl/csvdiff/internal/log"
	"github.com/tfctl/csvdiff/internal/table"
)

var (
	// ErrConfig is returned by New for invalid construction parameters.
	ErrConfig = errors.New("invalid comparison config")

	// ErrSchema is returned when a key column does not exist in an input.
	ErrSchema = errors.New("schema mismatch")
)

// DefaultKeyCols is the key used when none is given.
var DefaultKeyCols = []int{0}

// Loader reads a table from a path in an encoding.
type Loader interface {
	Load(ctx context.Context, path string, encoding string) (table.Table, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(ctx context.Context, path string, encoding string) (table.Table, error)

// Load calls f.
func (f LoaderFunc) Load(ctx context.Context, path string, encoding string) (table.Table, error) {
	return f(ctx, path, encoding)
}

// Summary counts the rows of a comparison.
type Summary struct {
	Joined  int
	Updated int
	Added   int
	Deleted int
}

// Changed returns the number of rows in the result.
func (s Summary) Changed() int {
	return s.Updated + s.Added + s.Deleted
}

// Comparison is a computed diff of two tables. It is immutable once New
// returns.
type Comparison struct {
	BeforePath string
	AfterPath  string
	KeyCols    []int
	ExceptCols []int
	Encoding   string

	loader  Loader
	result  Result
	summary Summary
}

// Option customizes a Comparison before it is computed.
type Option func(c *Comparison) error

// WithKeyCols sets the key column positions. Defaults to DefaultKeyCols.
func WithKeyCols(cols ...int) Option {
	return func(c *Comparison) error {
		c.KeyCols = append([]int(nil), cols...)
		return nil
	}
}

// WithExceptCols sets the column positions that are never compared.
func WithExceptCols(cols ...int) Option {
	return func(c *Comparison) error {
		c.ExceptCols = append([]int(nil), cols...)
		return nil
	}
}

// WithEncoding sets the text encoding of both inputs.
func WithEncoding(name string) Option {
	return func(c *Comparison) error {
		if name != "" {
			c.Encoding = name
		}
		return nil
	}
}

// WithLoader replaces the table loader, table.Load by default.
func WithLoader(l Loader) Option {
	return func(c *Comparison) error {
		if l == nil {
			return fmt.Errorf("%w: nil loader", ErrConfig)
		}
		c.loader = l
		return nil
	}
}

// New loads both tables and computes their differences. Parameters are
// validated before any I/O; invalid ones yield ErrConfig. Load errors are
// returned as they come from the loader.
func New(ctx context.Context, beforePath, afterPath string, options ...Option) (*Comparison, error) {
	c := &Comparison{
		BeforePath: beforePath,
		AfterPath:  afterPath,
		KeyCols:    append([]int(nil), DefaultKeyCols...),
		Encoding:   table.DefaultEncoding,
		loader:     LoaderFunc(table.Load),
	}

	for _, opt := range options {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	before, err := c.loader.Load(ctx, c.BeforePath, c.Encoding)
	if err != nil {
		return nil, err
	}
	after, err := c.loader.Load(ctx, c.AfterPath, c.Encoding)
	if err != nil {
		return nil, err
	}

	joined, err := Join(before, after, c.KeyCols)
	if err != nil {
		return nil, err
	}

	c.result, c.summary = compute(joined, NewColumnSet(c.ExceptCols...))
	log.Debugf("compared: before=%s after=%s joined=%d update=%d add=%d delete=%d",
		c.BeforePath, c.AfterPath, c.summary.Joined, c.summary.Updated, c.summary.Added, c.summary.Deleted)

	return c, nil
}

// Compare diffs two in-memory tables. It is the I/O free core of New and
// applies no defaults.
func Compare(before, after table.Table, keyCols []int, exceptCols []int) (Result, error) {
	if err := validateCols(keyCols, exceptCols); err != nil {
		return Result{}, err
	}

	joined, err := Join(before, after, keyCols)
	if err != nil {
		return Result{}, err
	}

	res, _ := compute(joined, NewColumnSet(exceptCols...))
	return res, nil
}

// compute classifies every joined row and formats the survivors.
func compute(joined Joined, except ColumnSet) (Result, Summary) {
	changes := make([]Change, len(joined.Rows))
	sum := Summary{Joined: len(joined.Rows)}

	for i, row := range joined.Rows {
		changes[i] = Classify(row, except)
		switch changes[i].Status {
		case StatusUpdate:
			sum.Updated++
		case StatusAdd:
			sum.Added++
		case StatusDelete:
			sum.Deleted++
		}
	}

	return Format(joined, changes), sum
}

func (c *Comparison) validate() error {
	if c.BeforePath == "" {
		return fmt.Errorf("%w: before path is required", ErrConfig)
	}
	if c.AfterPath == "" {
		return fmt.Errorf("%w: after path is required", ErrConfig)
	}
	if _, err := table.LookupEncoding(c.Encoding); err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return validateCols(c.KeyCols, c.ExceptCols)
}

func validateCols(keyCols []int, exceptCols []int) error {
	if len(keyCols) == 0 {
		return fmt.Errorf("%w: at least one key column is required", ErrConfig)
	}

	seen := make(map[int]bool, len(keyCols))
	for _, k := range keyCols {
		if k < 0 {
			return fmt.Errorf("%w: key column %d is negative", ErrConfig, k)
		}
		if seen[k] {
			return fmt.Errorf("%w: key column %d is repeated", ErrConfig, k)
		}
		seen[k] = true
	}

	for _, x := range exceptCols {
		if x < 0 {
			return fmt.Errorf("%w: except column %d is negative", ErrConfig, x)
		}
	}

	return nil
}

// Result returns a copy of the computed result.
func (c *Comparison) Result() Result {
	return c.result.Clone()
}

// Differences returns the result as a table: one row per change with the
// status as the last cell.
func (c *Comparison) Differences() table.Table {
	return table.New(c.result.Records())
}

// Summary returns the row counts of the comparison.
func (c *Comparison) Summary() Summary {
	return c.summary
}

// Export writes Differences to path as headerless csv in the named encoding.
func (c *Comparison) Export(ctx context.Context, path string, encoding string) error {
	if path == "" {
		return fmt.Errorf("%w: export path is required", ErrConfig)
	}
	return table.Write(ctx, path, encoding, c.Differences())
}

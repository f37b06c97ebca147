// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package table

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/tfctl/csvdiff/internal/log"
)

// ErrEmpty is returned when an input holds no rows at all.
var ErrEmpty = errors.New("no rows to parse")

// Load reads the headerless delimited text at path, decoding it with the named
// encoding. See the package doc for the accepted path forms.
func Load(ctx context.Context, path string, encodingName string) (Table, error) {
	codec, err := LookupEncoding(encodingName)
	if err != nil {
		return Table{}, err
	}

	raw, err := readSource(ctx, path)
	if err != nil {
		return Table{}, err
	}

	t, err := Parse(raw, codec)
	if err != nil {
		return Table{}, fmt.Errorf("failed to load %s: %w", path, err)
	}
	log.Debugf("loaded table: path=%s encoding=%s rows=%d width=%d", path, codec.Name, t.Len(), t.Width())

	return t, nil
}

// Read is Load for an already open reader.
func Read(r io.Reader, encodingName string) (Table, error) {
	codec, err := LookupEncoding(encodingName)
	if err != nil {
		return Table{}, err
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return Table{}, fmt.Errorf("failed to read input: %w", err)
	}

	return Parse(raw, codec)
}

// Parse decodes raw and splits it into rows. Quoting follows encoding/csv and
// blank lines are skipped. Every row must have the same number of fields as
// the first; the parser's *csv.ParseError is returned otherwise.
func Parse(raw []byte, codec Codec) (Table, error) {
	text, err := codec.Decode(raw)
	if err != nil {
		return Table{}, err
	}

	rows, err := csv.NewReader(bytes.NewReader(text)).ReadAll()
	if err != nil {
		return Table{}, err
	}
	if len(rows) == 0 {
		return Table{}, ErrEmpty
	}

	return New(rows), nil
}

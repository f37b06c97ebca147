// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package table

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/tfctl/csvdiff/internal/log"
)

// Write serializes t as headerless comma separated text, one row per line,
// encoded with the named encoding, and stores it at path.
func Write(ctx context.Context, path string, encodingName string, t Table) error {
	codec, err := LookupEncoding(encodingName)
	if err != nil {
		return err
	}

	data, err := Format(t, codec)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := writeSink(ctx, path, data); err != nil {
		return err
	}
	log.Debugf("wrote table: path=%s encoding=%s rows=%d bytes=%d", path, codec.Name, t.Len(), len(data))

	return nil
}

// Encode writes t to w in the given codec.
func Encode(w io.Writer, t Table, codec Codec) error {
	data, err := Format(t, codec)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Format renders t with encoding/csv defaults (comma, "\n", minimal quoting)
// and then encodes the text.
func Format(t Table, codec Codec) ([]byte, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.WriteAll(t.Rows); err != nil {
		return nil, err
	}

	return codec.Encode(buf.Bytes())
}

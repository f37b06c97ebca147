// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/csvdiff/internal/differ"
	"github.com/tfctl/csvdiff/internal/log"
	"github.com/tfctl/csvdiff/internal/meta"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// NewComparison builds a differ.Comparison from the command's BEFORE and
// AFTER arguments and its compare flags.
func NewComparison(ctx context.Context, cmd *cli.Command) (*differ.Comparison, error) {
	args := cmd.Args().Slice()
	if len(args) != 2 { //nolint:mnd
		return nil, fmt.Errorf("%w: expected BEFORE and AFTER, got %d argument(s)", differ.ErrConfig, len(args))
	}

	keyCols, err := ParseColumns(cmd.String("key"))
	if err != nil {
		return nil, err
	}
	exceptCols, err := ParseColumns(cmd.String("except"))
	if err != nil {
		return nil, err
	}

	log.Debugf("comparing: before=%s after=%s key=%v except=%v encoding=%s",
		args[0], args[1], keyCols, exceptCols, cmd.String("encoding"))

	return differ.New(ctx, args[0], args[1],
		differ.WithKeyCols(keyCols...),
		differ.WithExceptCols(exceptCols...),
		differ.WithEncoding(cmd.String("encoding")),
	)
}

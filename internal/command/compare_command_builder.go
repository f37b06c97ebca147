// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/csvdiff/internal/meta"
)

// CompareCommandBuilder constructs a cli.Command for subcommands that compare
// a BEFORE and an AFTER table (diff, export) using a consistent pattern. The
// builder wires metadata, applies the shared compare flags, and sets up
// validators.
type CompareCommandBuilder struct {
	Name      string
	Usage     string
	UsageText string
	Flags     []cli.Flag
	Action    func(context.Context, *cli.Command) error
	Meta      meta.Meta
	// ConfigFile is the config file backing flag values, empty for none.
	ConfigFile string
}

// Build returns a configured cli.Command from the builder.
func (ccb *CompareCommandBuilder) Build() *cli.Command {
	return &cli.Command{
		Name:      ccb.Name,
		Usage:     ccb.Usage,
		UsageText: ccb.UsageText,
		ArgsUsage: "BEFORE AFTER",
		Metadata: map[string]any{
			"meta": ccb.Meta,
		},
		Flags: append(ccb.Flags, NewCompareFlags(ccb.Name, ccb.ConfigFile)...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: ccb.Action,
	}
}

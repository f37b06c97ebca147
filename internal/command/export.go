// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/csvdiff/internal/log"
	"github.com/tfctl/csvdiff/internal/meta"
	"github.com/tfctl/csvdiff/internal/output"
)

func exportCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args)

	c, err := NewComparison(ctx, cmd)
	if err != nil {
		return err
	}

	out := cmd.String("out")
	if err := c.Export(ctx, out, cmd.String("out-encoding")); err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}

	sum := c.Summary()
	log.Infof("exported %s: update=%d add=%d delete=%d", out, sum.Updated, sum.Added, sum.Deleted)

	if cmd.Bool("summary") {
		fmt.Fprintln(cmd.Root().ErrWriter, output.Footer(sum))
	}

	return nil
}

func exportCommandBuilder(meta meta.Meta, cfgPath string) *cli.Command {
	return (&CompareCommandBuilder{
		Name:       "export",
		Usage:      "write the differences between two tables as csv",
		UsageText:  "csvdiff export [options] --out PATH BEFORE AFTER",
		Flags:      NewExportFlags("export", cfgPath),
		Action:     exportCommandAction,
		Meta:       meta,
		ConfigFile: cfgPath,
	}).Build()
}

// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/csvdiff/internal/log"
	"github.com/tfctl/csvdiff/internal/meta"
	"github.com/tfctl/csvdiff/internal/output"
)

func diffCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args)

	c, err := NewComparison(ctx, cmd)
	if err != nil {
		return err
	}

	w := cmd.Root().Writer
	opts := output.Options{
		Format:  cmd.String("output"),
		Filter:  cmd.String("filter"),
		Sort:    cmd.String("sort"),
		Titles:  cmd.Bool("titles"),
		Color:   cmd.Bool("color") && output.IsTerminal(w),
		Padding: cmd.Int("padding"),
		Summary: cmd.Bool("summary"),
	}

	return output.SliceDiceSpit(w, c.Result(), c.Summary(), opts)
}

func diffCommandBuilder(meta meta.Meta, cfgPath string) *cli.Command {
	return (&CompareCommandBuilder{
		Name:       "diff",
		Usage:      "print the differences between two tables",
		UsageText:  "csvdiff diff [options] BEFORE AFTER",
		Flags:      NewRenderFlags("diff", cfgPath),
		Action:     diffCommandAction,
		Meta:       meta,
		ConfigFile: cfgPath,
	}).Build()
}

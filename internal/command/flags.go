// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/csvdiff/internal/table"
)

// NewCompareFlags returns the flags shared by every comparing command. ns is
// the command name and cfgPath the config file, empty when there is none.
func NewCompareFlags(ns string, cfgPath string) []cli.Flag {
	return []cli.Flag{
		configSourced(ns, cfgPath, &cli.StringFlag{
			Name:    "key",
			Aliases: []string{"k"},
			Usage:   "comma-separated key column positions",
			Sources: cli.NewValueSourceChain(cli.EnvVar("CSVDIFF_KEY")),
			Value:   "0",
			Validator: func(value string) error {
				return FlagValidators(value, ColumnsValidator, RequiredValidator)
			},
		}),
		configSourced(ns, cfgPath, &cli.StringFlag{
			Name:    "except",
			Aliases: []string{"x"},
			Usage:   "comma-separated column positions to leave out of the comparison",
			Sources: cli.NewValueSourceChain(cli.EnvVar("CSVDIFF_EXCEPT")),
			Validator: func(value string) error {
				return FlagValidators(value, ColumnsValidator)
			},
		}),
		configSourced(ns, cfgPath, &cli.StringFlag{
			Name:    "encoding",
			Aliases: []string{"e"},
			Usage:   "text encoding of both inputs",
			Sources: cli.NewValueSourceChain(cli.EnvVar("CSVDIFF_ENCODING")),
			Value:   table.DefaultEncoding,
			Validator: func(value string) error {
				return FlagValidators(value, EncodingValidator)
			},
		}),
		configSourced(ns, cfgPath, &cli.BoolFlag{
			Name:  "summary",
			Usage: "show change counts",
			Value: false,
		}),
	}
}

// NewRenderFlags returns the flags controlling how the diff command prints.
func NewRenderFlags(ns string, cfgPath string) []cli.Flag {
	return []cli.Flag{
		configSourced(ns, cfgPath, &cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   false,
		}),
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "comma-separated list of filters to apply to results",
		},
		configSourced(ns, cfgPath, &cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Sources: cli.NewValueSourceChain(cli.EnvVar("CSVDIFF_OUTPUT")),
			Value:   "csv",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		}),
		configSourced(ns, cfgPath, &cli.IntFlag{
			Name:  "padding",
			Usage: "left padding of text output columns",
			Value: 2,
		}),
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "comma-separated list of columns to sort the results by",
		},
		configSourced(ns, cfgPath, &cli.BoolFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show column titles",
			Value:   false,
		}),
	}
}

// NewExportFlags returns the flags of the export command.
func NewExportFlags(ns string, cfgPath string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "out",
			Usage:    "destination path, - for stdout or s3://bucket/key",
			Required: true,
		},
		configSourced(ns, cfgPath, &cli.StringFlag{
			Name:  "out-encoding",
			Usage: "text encoding of the destination",
			Value: table.DefaultEncoding,
			Validator: func(value string) error {
				return FlagValidators(value, EncodingValidator)
			},
		}),
	}
}

// sourcedFlag is satisfied by the flag types whose Sources chain can carry
// config file values.
type sourcedFlag interface {
	*cli.StringFlag | *cli.BoolFlag | *cli.IntFlag
}

// configSourced appends namespaced and global config file sources to the
// flag's Sources chain, so "<ns>.<flag>" wins over "<flag>". It is a no-op
// without a config file.
func configSourced[F sourcedFlag](ns string, cfgPath string, flag F) F {
	if cfgPath == "" {
		return flag
	}

	var chain *cli.ValueSourceChain
	var name string
	switch f := any(flag).(type) {
	case *cli.StringFlag:
		chain, name = &f.Sources, f.Name
	case *cli.BoolFlag:
		chain, name = &f.Sources, f.Name
	case *cli.IntFlag:
		chain, name = &f.Sources, f.Name
	}

	if ns != "" {
		chain.Chain = append(chain.Chain, yaml.YAML(ns+"."+name, altsrc.StringSourcer(cfgPath)))
	}
	chain.Chain = append(chain.Chain, yaml.YAML(name, altsrc.StringSourcer(cfgPath)))

	return flag
}

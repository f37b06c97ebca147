// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/csvdiff/internal/differ"
	"github.com/tfctl/csvdiff/internal/output"
	"github.com/tfctl/csvdiff/internal/table"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// GlobalFlagsValidator checks flag combinations no single validator can see.
func GlobalFlagsValidator(ctx context.Context, c *cli.Command) error {
	if c.Int("padding") < 0 {
		return errors.New("--padding must not be negative")
	}
	return nil
}

func OutputValidator(value any) error {
	if !slices.Contains(output.Formats, value.(string)) {
		return fmt.Errorf("must be one of %v", output.Formats)
	}
	return nil
}

func ColumnsValidator(value any) error {
	_, err := ParseColumns(value.(string))
	return err
}

func RequiredValidator(value any) error {
	if strings.TrimSpace(value.(string)) == "" {
		return errors.New("must not be empty")
	}
	return nil
}

func EncodingValidator(value any) error {
	_, err := table.LookupEncoding(value.(string))
	return err
}

// ParseColumns parses a comma separated list of zero-based column positions.
// An empty spec yields nil.
func ParseColumns(spec string) ([]int, error) {
	//nolint:prealloc
	var cols []int
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: invalid column position %q", differ.ErrConfig, part)
		}
		cols = append(cols, n)
	}
	return cols, nil
}

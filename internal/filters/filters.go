// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"fmt"
	"os"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/tfctl/csvdiff/internal/log"
)

// filterRegex parses filter expressions into key, operator and target. The
// operator is one of = ^ ~ < > @ or /, optionally prefixed with '!'. Examples:
// "status" (key only), "status=add", "3_after=" (match empty).
var filterRegex = regexp.MustCompile(`^([^!=^~<>@/]*)(!?[=^~<>@/])?(.*)$`)

// Filter is a single parsed --filter expression.
type Filter struct {
	Key     string `yaml:"key" json:"Key"`
	Negate  bool   `yaml:"negate" json:"Negate"`
	Operand string `yaml:"operand" json:"Operand"`
	Value   string `yaml:"value" json:"Value"`
}

// Record is one rendered row, cell values keyed by column label.
type Record map[string]string

// BuildFilters parses a filter specification string into a slice of Filter.
// Malformed entries are logged and skipped.
func BuildFilters(spec string) []Filter {
	//nolint:prealloc
	var filters []Filter

	if spec == "" {
		return filters
	}

	// Allow a delimiter override for values that contain commas.
	delim := ","
	if d, ok := os.LookupEnv("CSVDIFF_FILTER_DELIM"); ok && d != "" {
		delim = d
	}

	for _, filterSpec := range strings.Split(spec, delim) {
		filterSpec = strings.TrimSpace(filterSpec)
		if filterSpec == "" {
			continue
		}

		parts := filterRegex.FindStringSubmatch(filterSpec)
		if parts == nil {
			log.Errorf("invalid filter: %s", filterSpec)
			continue
		}

		key := strings.TrimSpace(parts[1])
		operand := parts[2]
		target := parts[3]

		if key == "" {
			log.Errorf("invalid filter: empty key in %s", filterSpec)
			continue
		}
		if operand == "" {
			log.Errorf("invalid filter: no operator in %s", filterSpec)
			continue
		}

		negate := strings.HasPrefix(operand, "!")
		operand = strings.TrimPrefix(operand, "!")

		filters = append(filters, Filter{
			Key:     key,
			Negate:  negate,
			Operand: operand,
			Value:   target,
		})
	}

	return filters
}

// FilterRecords returns the records matching every filter in spec. keys lists
// the valid column labels; filters on any other key are reported once and
// ignored. The input slice is not modified.
func FilterRecords(records []Record, keys []string, spec string) []Record {
	filters := usable(BuildFilters(spec), keys)
	if len(filters) == 0 {
		return records
	}

	//nolint:prealloc
	var out []Record
	for _, r := range records {
		if applyFilters(r, filters) {
			out = append(out, r)
		}
	}

	log.Debugf("filtered records: in=%d out=%d filters=%d", len(records), len(out), len(filters))

	return out
}

// usable drops filters whose key is not a column.
func usable(filters []Filter, keys []string) []Filter {
	var out []Filter
	for _, f := range filters {
		if !slices.Contains(keys, f.Key) {
			msg := fmt.Sprintf("filter key not found: %s", f.Key)
			log.Errorf("%s", msg)
			fmt.Fprintf(os.Stderr, "warning: %s\n", msg)
			continue
		}
		out = append(out, f)
	}
	return out
}

// applyFilters reports whether r matches all filters.
func applyFilters(r Record, filters []Filter) bool {
	for _, filter := range filters {
		value := r[filter.Key]

		var ok bool
		if num, isNum := toFloat64(value); isNum && isNumericOperand(filter) {
			ok = checkNumericOperand(num, filter)
		} else {
			ok = checkStringOperand(value, filter)
		}

		if !ok {
			return false
		}
	}

	return true
}

// isNumericOperand reports whether filter compares numerically: its operand
// is one of = < > and its target parses as a number.
func isNumericOperand(filter Filter) bool {
	switch filter.Operand {
	case "=", "<", ">":
		_, ok := toFloat64(filter.Value)
		return ok
	default:
		return false
	}
}

// checkNumericOperand compares a numeric value against the filter value. A
// negated operand inverts the result.
func checkNumericOperand(value float64, filter Filter) bool {
	tgt, ok := toFloat64(filter.Value)
	if !ok {
		log.Errorf("invalid numeric value: %s", filter.Value)
		return false
	}

	switch filter.Operand {
	case "=":
		return (value == tgt) == !filter.Negate
	case ">":
		return (value > tgt) == !filter.Negate
	case "<":
		return (value < tgt) == !filter.Negate
	default:
		log.Errorf("unsupported numeric operand: %s", filter.Operand)
		return false
	}
}

// checkStringOperand evaluates a string comparison against value.
func checkStringOperand(value string, filter Filter) bool {
	switch filter.Operand {
	case "=":
		return value == filter.Value == !filter.Negate
	case "~":
		return strings.EqualFold(value, filter.Value) == !filter.Negate
	case "^":
		return strings.HasPrefix(value, filter.Value) == !filter.Negate
	case ">":
		return value > filter.Value == !filter.Negate
	case "<":
		return value < filter.Value == !filter.Negate
	case "@":
		return strings.Contains(value, filter.Value) == !filter.Negate
	case "/":
		matched, err := regexp.MatchString(filter.Value, value)
		if err != nil {
			log.Errorf("invalid regex: %s", filter.Value)
			return false
		}
		return matched == !filter.Negate
	default:
		log.Errorf("unsupported filtering operand: %s", filter.Operand)
		return false
	}
}

// toFloat64 parses s as a number. Empty and non-numeric text yield false.
func toFloat64(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

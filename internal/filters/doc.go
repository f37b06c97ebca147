// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters selects rows of a rendered diff.
//
// Filters are key-operator-target expressions joined by a delimiter (default
// comma, override with CSVDIFF_FILTER_DELIM). The key is an output column
// label such as "status", "0" or "3_after".
//
// Operators:
//
//   - = : exact match, numeric when both sides are numbers
//   - ^ : prefix match
//   - ~ : case-insensitive match
//   - < : less than, numeric when both sides are numbers
//   - > : greater than, numeric when both sides are numbers
//   - @ : contains substring
//   - / : regular expression match
//
// Any operator may be negated with a leading "!", for instance "status!=add".
//
// Examples:
//
//   - "status=update" : only updated rows
//   - "3_after^foo" : rows whose column 3 now starts with "foo"
//   - "0>100" : rows whose key is numerically above 100
//
// Expressions naming a key that is not a column are reported and skipped, so
// the remaining filters still apply.
package filters

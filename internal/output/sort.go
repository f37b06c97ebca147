// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"sort"
	"strconv"
	"strings"

	"github.com/tfctl/csvdiff/internal/filters"
)

// SortDataset orders records in place by the comma separated labels in spec.
// A "-" prefix sorts descending and a "!" prefix compares case sensitively.
// Values compare numerically when both parse as numbers. The sort is stable.
func SortDataset(records []filters.Record, spec string) {
	if strings.TrimSpace(spec) == "" {
		return
	}
	fields := strings.Split(spec, ",")

	sort.SliceStable(records, func(one, two int) bool {
		for _, field := range fields {
			field = strings.TrimSpace(field)

			ascending := true
			if strings.HasPrefix(field, "-") {
				field = strings.TrimPrefix(field, "-")
				ascending = false
			}

			caseSensitive := false
			if strings.HasPrefix(field, "!") {
				field = strings.TrimPrefix(field, "!")
				caseSensitive = true
			}

			oneValue := records[one][field]
			twoValue := records[two][field]

			oneNum, oneErr := strconv.ParseFloat(oneValue, 64)
			twoNum, twoErr := strconv.ParseFloat(twoValue, 64)
			if oneErr == nil && twoErr == nil {
				if oneNum != twoNum {
					if ascending {
						return oneNum < twoNum
					}
					return oneNum > twoNum
				}
				continue
			}

			if !caseSensitive {
				oneValue = strings.ToLower(oneValue)
				twoValue = strings.ToLower(twoValue)
			}

			if oneValue != twoValue {
				if ascending {
					return oneValue < twoValue
				}
				return oneValue > twoValue
			}
		}
		return false
	})
}

// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differ computes record-level differences between a "before" and an
// "after" snapshot of the same table.
//
// The work happens in three steps:
//
//   - Join performs a full outer join on the key columns and tags every joined
//     row with its provenance (before only, after only, or both).
//   - Classify compares each non-key before/after pair of a joined row,
//     blanks unchanged and excluded cells, and assigns a row Status.
//   - Layout and Format put the surviving rows back into the original column
//     order, with a trailing status column.
//
// Comparison wraps the three steps around the table loader and caches the
// result for its lifetime. Rows whose status is StatusNone never appear in a
// result.
package differ

// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package table holds the in-memory Table used on both sides of a comparison
// and the loader and writer that move tables to and from headerless delimited
// text.
//
// Every cell is kept as text. Nothing is inferred, so "007" stays "007" on a
// round trip.
//
// Paths:
//
//   - "-" : stdin when loading, stdout when writing
//   - "s3://bucket/key[?versionId=v]" : an S3 object
//   - anything else : a local file
//
// Encodings are looked up by name (WHATWG labels plus a few common aliases
// such as cp932 and latin-1) and applied with golang.org/x/text.
package table

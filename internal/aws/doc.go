// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package aws wraps AWS SDK v2 configuration loading and the small slice of
// the S3 API csvdiff needs to read and write tables addressed as
// s3://bucket/key URIs.
package aws

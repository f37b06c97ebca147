// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package table

import (
	"context"
	"fmt"
	"io"
	"os"

	awsx "github.com/tfctl/csvdiff/internal/aws"
	"github.com/tfctl/csvdiff/internal/cacheutil"
	"github.com/tfctl/csvdiff/internal/config"
	"github.com/tfctl/csvdiff/internal/log"
)

// StdioPath selects stdin for Load and stdout for Write.
const StdioPath = "-"

var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout

	// newObjectAPI builds the S3 client used for s3:// paths. Region, profile
	// and endpoint come from the s3.* config keys when present.
	newObjectAPI = func(ctx context.Context) (awsx.ObjectAPI, error) {
		var opts []awsx.Option
		if region, _ := config.GetString("s3.region", ""); region != "" {
			opts = append(opts, awsx.WithRegion(region))
		}
		if profile, _ := config.GetString("s3.profile", ""); profile != "" {
			opts = append(opts, awsx.WithProfile(profile))
		}

		cfg, err := awsx.LoadAWSConfig(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}

		endpoint, _ := config.GetString("s3.endpoint", "")
		return awsx.NewS3(cfg, awsx.WithS3Endpoint(endpoint)), nil
	}
)

// readSource returns the raw bytes addressed by path.
func readSource(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch {
	case path == StdioPath:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	case awsx.IsS3URI(path):
		return readS3(ctx, path)
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		log.Tracef("read local file: path=%s bytes=%d", path, len(data))
		return data, nil
	}
}

// writeSink stores data at path.
func writeSink(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch {
	case path == StdioPath:
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("failed to write stdout: %w", err)
		}
		return nil
	case awsx.IsS3URI(path):
		loc, err := awsx.ParseS3URI(path)
		if err != nil {
			return err
		}
		api, err := newObjectAPI(ctx)
		if err != nil {
			return err
		}
		return awsx.PutObjectBytes(ctx, api, loc, data)
	default:
		if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:mnd,gosec
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		return nil
	}
}

// readS3 fetches an S3 object. Version pinned reads are immutable, so they are
// served from and stored to the local cache.
func readS3(ctx context.Context, path string) ([]byte, error) {
	loc, err := awsx.ParseS3URI(path)
	if err != nil {
		return nil, err
	}

	sub := []string{"s3", loc.Bucket}
	cacheable := loc.VersionID != ""

	if cacheable {
		cleanHours, _ := config.GetInt("cache.clean", 0)
		if err := cacheutil.Purge(cleanHours); err != nil {
			log.WithError(err).Warn("failed to purge cache")
		}
		if entry, ok := cacheutil.Read(sub, loc.String()); ok {
			log.Tracef("cache hit: %s", loc)
			return entry.Data, nil
		}
	}

	api, err := newObjectAPI(ctx)
	if err != nil {
		return nil, err
	}

	data, err := awsx.GetObjectBytes(ctx, api, loc)
	if err != nil {
		return nil, err
	}

	if cacheable {
		if err := cacheutil.Write(sub, loc.String(), data); err != nil {
			log.WithError(err).Warn("failed to cache s3 object")
		}
	}

	return data, nil
}

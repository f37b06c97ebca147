// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/tfctl/csvdiff/internal/log"
)

// ErrInvalidURI is returned for s3 URIs lacking a bucket or key.
var ErrInvalidURI = errors.New("invalid s3 uri")

// ObjectAPI is the subset of the S3 client used to move table bytes. The
// concrete *s3.Client satisfies it.
type ObjectAPI interface {
	GetObject(ctx context.Context, params *s3v2.GetObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3v2.PutObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.PutObjectOutput, error)
}

// Location addresses a single S3 object, optionally pinned to a version.
type Location struct {
	Bucket    string
	Key       string
	VersionID string
}

// String renders the location back into s3://bucket/key[?versionId=v] form.
func (l Location) String() string {
	s := "s3://" + l.Bucket + "/" + l.Key
	if l.VersionID != "" {
		s += "?versionId=" + url.QueryEscape(l.VersionID)
	}
	return s
}

// IsS3URI reports whether path uses the s3:// scheme.
func IsS3URI(path string) bool {
	return strings.HasPrefix(strings.ToLower(path), "s3://")
}

// ParseS3URI splits an s3://bucket/key[?versionId=v] URI into a Location.
func ParseS3URI(raw string) (Location, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Location{}, fmt.Errorf("%w: %s: %v", ErrInvalidURI, raw, err)
	}
	if !strings.EqualFold(u.Scheme, "s3") {
		return Location{}, fmt.Errorf("%w: %s: scheme is not s3", ErrInvalidURI, raw)
	}

	loc := Location{
		Bucket:    u.Host,
		Key:       strings.TrimPrefix(u.Path, "/"),
		VersionID: u.Query().Get("versionId"),
	}
	if loc.Bucket == "" || loc.Key == "" {
		return Location{}, fmt.Errorf("%w: %s: bucket and key are required", ErrInvalidURI, raw)
	}

	return loc, nil
}

// GetObjectBytes downloads the object at loc.
func GetObjectBytes(ctx context.Context, api ObjectAPI, loc Location) ([]byte, error) {
	input := &s3v2.GetObjectInput{
		Bucket: awsv2.String(loc.Bucket),
		Key:    awsv2.String(loc.Key),
	}
	if loc.VersionID != "" {
		input.VersionId = awsv2.String(loc.VersionID)
	}

	result, err := api.GetObject(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get S3 object %s: %w", loc, err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read S3 object body %s: %w", loc, err)
	}
	log.Debugf("s3 get: uri=%s bytes=%d", loc, len(data))

	return data, nil
}

// PutObjectBytes uploads data to loc. A VersionID on loc is ignored since S3
// assigns versions on write.
func PutObjectBytes(ctx context.Context, api ObjectAPI, loc Location, data []byte) error {
	_, err := api.PutObject(ctx, &s3v2.PutObjectInput{
		Bucket:      awsv2.String(loc.Bucket),
		Key:         awsv2.String(loc.Key),
		Body:        bytes.NewReader(data),
		ContentType: awsv2.String("text/csv"),
	})
	if err != nil {
		return fmt.Errorf("failed to put S3 object %s: %w", loc, err)
	}
	log.Debugf("s3 put: uri=%s bytes=%d", loc, len(data))

	return nil
}

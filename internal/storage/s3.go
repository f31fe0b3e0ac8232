// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package storage keeps a JSON copy of every saved website in an
// S3-compatible bucket. It wraps the AWS SDK v2 with path-style access so
// CEPH, MinIO and Hetzner endpoints work unchanged.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// KeyPrefix is prepended to every archived object key.
const KeyPrefix = "websites/"

// Archive writes website snapshots to a single private bucket.
type Archive struct {
	s3     *s3.Client
	bucket string
}

// New creates an Archive for bucket at endpoint. Returns (nil, nil) if
// endpoint, credentials or bucket are empty so the populater runs without
// an archive.
func New(endpoint, region, accessKey, secretKey, bucket string) (*Archive, error) {
	if endpoint == "" || accessKey == "" || secretKey == "" || bucket == "" {
		return nil, nil
	}
	if region == "" {
		return nil, fmt.Errorf("s3 archive: region is required")
	}

	endpoint = strings.TrimRight(endpoint, "/")

	client := s3.New(s3.Options{
		Region:       region,
		BaseEndpoint: aws.String(endpoint),
		Credentials:  credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		UsePathStyle: true,
	})

	return &Archive{s3: client, bucket: bucket}, nil
}

// Key returns the object key for the website with the given id.
func Key(id string) string {
	return KeyPrefix + id + ".json"
}

// Put stores v as indented JSON under the key for id.
func (a *Archive) Put(ctx context.Context, id string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("s3 archive marshal: %w", err)
	}

	key := Key(id)
	_, err = a.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(a.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("s3 upload %s/%s: %w", a.bucket, key, err)
	}
	return nil
}

// Get returns the raw JSON archived for id.
func (a *Archive) Get(ctx context.Context, id string) ([]byte, error) {
	key := Key(id)
	output, err := a.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 download %s/%s: %w", a.bucket, key, err)
	}
	defer output.Body.Close()

	data, err := io.ReadAll(output.Body)
	if err != nil {
		return nil, fmt.Errorf("s3 read body %s/%s: %w", a.bucket, key, err)
	}
	return data, nil
}

// Bucket returns the name of the archive bucket.
func (a *Archive) Bucket() string {
	return a.bucket
}

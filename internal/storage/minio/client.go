// Package minio resolves product image object keys to presigned URLs.
package minio

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"

	"github.com/akarpov/storefront/internal/service"
)

// Internal adapter interface to enable mocking without a real MinIO server.
type minioAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PresignedGetObject(ctx context.Context, bucketName, objectName string, expires time.Duration, reqParams url.Values) (*url.URL, error)
}

// Wrapper to adapt *minio.Client to minioAPI.
type minioClientWrapper struct{ c *minio.Client }

func (w minioClientWrapper) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return w.c.BucketExists(ctx, bucketName)
}
func (w minioClientWrapper) MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
	return w.c.MakeBucket(ctx, bucketName, opts)
}
func (w minioClientWrapper) PresignedGetObject(ctx context.Context, bucketName, objectName string, expires time.Duration, reqParams url.Values) (*url.URL, error) {
	return w.c.PresignedGetObject(ctx, bucketName, objectName, expires, reqParams)
}

var _ service.ImageResolver = (*Client)(nil)

// Client implements service.ImageResolver against a MinIO bucket.
type Client struct {
	api    minioAPI
	bucket string
	urlTTL time.Duration
}

// NewClient creates a resolver for the given bucket, creating the bucket if
// it does not exist yet.
func NewClient(ctx context.Context, mc *minio.Client, bucket string, urlTTL time.Duration) (*Client, error) {
	return newClient(ctx, minioClientWrapper{c: mc}, bucket, urlTTL)
}

func newClient(ctx context.Context, api minioAPI, bucket string, urlTTL time.Duration) (*Client, error) {
	exists, err := api.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := api.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &Client{api: api, bucket: bucket, urlTTL: urlTTL}, nil
}

// ResolveURL returns a presigned GET URL for the stored object key.
func (c *Client) ResolveURL(ctx context.Context, key string) (string, error) {
	u, err := c.api.PresignedGetObject(ctx, c.bucket, key, c.urlTTL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to presign object url: %w", err)
	}

	return u.String(), nil
}

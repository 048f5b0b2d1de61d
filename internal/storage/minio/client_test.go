package minio

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	bucketExists bool
	existsErr    error
	makeErr      error
	presignErr   error

	madeBucket string
	presigned  []string
}

func (f *fakeAPI) BucketExists(_ context.Context, _ string) (bool, error) {
	return f.bucketExists, f.existsErr
}

func (f *fakeAPI) MakeBucket(_ context.Context, bucketName string, _ minio.MakeBucketOptions) error {
	f.madeBucket = bucketName
	return f.makeErr
}

func (f *fakeAPI) PresignedGetObject(_ context.Context, bucketName, objectName string, _ time.Duration, _ url.Values) (*url.URL, error) {
	if f.presignErr != nil {
		return nil, f.presignErr
	}
	f.presigned = append(f.presigned, objectName)
	return &url.URL{Scheme: "https", Host: "minio.local", Path: "/" + bucketName + "/" + objectName, RawQuery: "X-Amz-Signature=abc"}, nil
}

func TestNewClient_CreatesMissingBucket(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{bucketExists: false}

	_, err := newClient(ctx, api, "storefront-images", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "storefront-images", api.madeBucket)
}

func TestNewClient_ExistingBucket(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{bucketExists: true}

	_, err := newClient(ctx, api, "storefront-images", time.Hour)
	require.NoError(t, err)
	assert.Empty(t, api.madeBucket)
}

func TestNewClient_BucketCheckError(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{existsErr: errors.New("connection refused")}

	_, err := newClient(ctx, api, "storefront-images", time.Hour)
	assert.Error(t, err)
}

func TestClient_ResolveURL(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{bucketExists: true}

	c, err := newClient(ctx, api, "storefront-images", time.Hour)
	require.NoError(t, err)

	got, err := c.ResolveURL(ctx, "images/anvil.png")
	require.NoError(t, err)
	assert.Equal(t, "https://minio.local/storefront-images/images/anvil.png?X-Amz-Signature=abc", got)
	assert.Equal(t, []string{"images/anvil.png"}, api.presigned)
}

func TestClient_ResolveURL_Error(t *testing.T) {
	ctx := context.Background()
	api := &fakeAPI{bucketExists: true, presignErr: errors.New("access denied")}

	c, err := newClient(ctx, api, "storefront-images", time.Hour)
	require.NoError(t, err)

	_, err = c.ResolveURL(ctx, "images/anvil.png")
	assert.Error(t, err)
}

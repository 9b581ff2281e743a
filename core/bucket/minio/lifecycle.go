package minio

import (
	"context"
	"errors"

	"bucket-manager/core/storage"

	"github.com/minio/minio-go/v7"
)

// ErrBucketNotExists is returned by Get when the existence probe succeeds but
// reports the bucket as absent.
var ErrBucketNotExists = errors.New("bucket does not exist")

// Create creates the named bucket and returns a handle bound to it.
func Create(ctx context.Context, client storage.Client, name string, opts minio.MakeBucketOptions) (*Bucket, error) {
	if err := client.MakeBucket(ctx, name, opts); err != nil {
		return nil, err
	}
	return New(client, name), nil
}

// Get probes the named bucket and returns a handle bound to it. The probe is
// existence-only; contents are not inspected.
func Get(ctx context.Context, client storage.Client, name string) (*Bucket, error) {
	exists, err := client.BucketExists(ctx, name)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrBucketNotExists
	}
	return New(client, name), nil
}

// Has reports whether the named bucket exists. It never returns an error:
// probe failures of any kind collapse to false.
func Has(ctx context.Context, client storage.Client, name string) bool {
	exists, err := client.BucketExists(ctx, name)
	return err == nil && exists
}

// Remove deletes the named bucket.
func Remove(ctx context.Context, client storage.Client, name string) error {
	return client.RemoveBucket(ctx, name)
}

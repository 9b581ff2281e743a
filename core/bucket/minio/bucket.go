package minio

import (
	"context"
	"io"

	"bucket-manager/core/storage"

	"github.com/minio/minio-go/v7"
)

// Bucket is an immutable pairing of a storage client and a bucket name.
// Every method builds a fresh request from the bound name and its arguments;
// a handle is safe for concurrent use.
type Bucket struct {
	client storage.Client
	name   string
}

// New returns a handle bound to the given client and bucket name without
// touching the backend.
func New(client storage.Client, name string) *Bucket {
	return &Bucket{client: client, name: name}
}

// Name returns the bound bucket name.
func (b *Bucket) Name() string {
	return b.name
}

// Location returns the region the bound bucket was created in.
func (b *Bucket) Location(ctx context.Context) (string, error) {
	return b.client.GetBucketLocation(ctx, b.name)
}

// Get fetches the object at key as a stream.
func (b *Bucket) Get(ctx context.Context, key string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	return b.client.GetObject(ctx, b.name, key, opts)
}

// Has reports whether the object at key exists. It never returns an error;
// use Head when the cause matters.
func (b *Bucket) Has(ctx context.Context, key string, opts minio.StatObjectOptions) bool {
	_, err := b.client.StatObject(ctx, b.name, key, opts)
	return err == nil
}

// Head fetches the object's metadata without its payload.
func (b *Bucket) Head(ctx context.Context, key string, opts minio.StatObjectOptions) (minio.ObjectInfo, error) {
	return b.client.StatObject(ctx, b.name, key, opts)
}

// Put stores reader's content at key.
func (b *Bucket) Put(ctx context.Context, key string, reader io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	return b.client.PutObject(ctx, b.name, key, reader, size, opts)
}

// Remove deletes the object at key.
func (b *Bucket) Remove(ctx context.Context, key string, opts minio.RemoveObjectOptions) error {
	return b.client.RemoveObject(ctx, b.name, key, opts)
}

// Copy copies the object at source to target within the bound bucket.
// Cross-bucket targets are not exposed.
func (b *Bucket) Copy(ctx context.Context, source, target string) (minio.UploadInfo, error) {
	dst := minio.CopyDestOptions{Bucket: b.name, Object: target}
	src := minio.CopySrcOptions{Bucket: b.name, Object: source}
	return b.client.CopyObject(ctx, dst, src)
}

package bucket

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Bucket is an immutable pairing of an S3 client and a bucket name.
// It holds no other state; every method builds a fresh request from the bound
// name and its arguments, so a handle is safe for concurrent use.
type Bucket struct {
	api  S3API
	name string
}

// New returns a handle bound to the given client and bucket name.
// It performs no backend call; use Create or Get when existence matters.
func New(api S3API, name string) *Bucket {
	return &Bucket{api: api, name: name}
}

// Name returns the bound bucket name.
func (b *Bucket) Name() string {
	return b.name
}

// Location returns the region descriptor of the bound bucket.
func (b *Bucket) Location(ctx context.Context, opts ...func(*s3.GetBucketLocationInput)) (*s3.GetBucketLocationOutput, error) {
	in := &s3.GetBucketLocationInput{}
	for _, opt := range opts {
		opt(in)
	}
	in.Bucket = aws.String(b.name)

	return b.api.GetBucketLocation(ctx, in)
}

// Get fetches the object at key, payload and metadata included.
func (b *Bucket) Get(ctx context.Context, key string, opts ...func(*s3.GetObjectInput)) (*s3.GetObjectOutput, error) {
	in := &s3.GetObjectInput{}
	for _, opt := range opts {
		opt(in)
	}
	in.Bucket = aws.String(b.name)
	in.Key = aws.String(key)

	return b.api.GetObject(ctx, in)
}

// Has reports whether the object at key exists. It never returns an error:
// any probe failure collapses to false. Use Head when the cause matters.
func (b *Bucket) Has(ctx context.Context, key string, opts ...func(*s3.HeadObjectInput)) bool {
	in := &s3.HeadObjectInput{}
	for _, opt := range opts {
		opt(in)
	}
	in.Bucket = aws.String(b.name)
	in.Key = aws.String(key)

	out, err := b.api.HeadObject(ctx, in)
	return err == nil && out != nil
}

// Head fetches the object's metadata without its payload.
func (b *Bucket) Head(ctx context.Context, key string, opts ...func(*s3.HeadObjectInput)) (*s3.HeadObjectOutput, error) {
	in := &s3.HeadObjectInput{}
	for _, opt := range opts {
		opt(in)
	}
	in.Bucket = aws.String(b.name)
	in.Key = aws.String(key)

	return b.api.HeadObject(ctx, in)
}

// Put stores body at key. The body is handed to the SDK as-is; no size or
// content checks happen here.
func (b *Bucket) Put(ctx context.Context, key string, body io.Reader, opts ...func(*s3.PutObjectInput)) (*s3.PutObjectOutput, error) {
	in := &s3.PutObjectInput{}
	for _, opt := range opts {
		opt(in)
	}
	in.Bucket = aws.String(b.name)
	in.Key = aws.String(key)
	in.Body = body

	return b.api.PutObject(ctx, in)
}

// Remove deletes the object at key.
func (b *Bucket) Remove(ctx context.Context, key string, opts ...func(*s3.DeleteObjectInput)) error {
	in := &s3.DeleteObjectInput{}
	for _, opt := range opts {
		opt(in)
	}
	in.Bucket = aws.String(b.name)
	in.Key = aws.String(key)

	_, err := b.api.DeleteObject(ctx, in)
	return err
}

// Copy copies the object at source to target within the bound bucket.
// The copy source is "<bucket>/<source>"; cross-bucket targets are not exposed.
func (b *Bucket) Copy(ctx context.Context, source, target string, opts ...func(*s3.CopyObjectInput)) (*s3.CopyObjectOutput, error) {
	in := &s3.CopyObjectInput{}
	for _, opt := range opts {
		opt(in)
	}
	in.Bucket = aws.String(b.name)
	in.CopySource = aws.String(b.name + "/" + source)
	in.Key = aws.String(target)

	return b.api.CopyObject(ctx, in)
}

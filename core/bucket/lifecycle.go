package bucket

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Create creates the named bucket and returns a handle bound to it.
// The backend error is returned as-is if creation fails.
func Create(ctx context.Context, api S3API, name string, opts ...func(*s3.CreateBucketInput)) (*Bucket, error) {
	in := &s3.CreateBucketInput{}
	for _, opt := range opts {
		opt(in)
	}
	in.Bucket = aws.String(name)

	if _, err := api.CreateBucket(ctx, in); err != nil {
		return nil, err
	}
	return New(api, name), nil
}

// Get probes the named bucket and returns a handle bound to it.
// The probe is metadata-only: a handle for a bucket that disappears afterwards
// only fails at first use. The backend error is returned as-is.
func Get(ctx context.Context, api S3API, name string, opts ...func(*s3.HeadBucketInput)) (*Bucket, error) {
	in := &s3.HeadBucketInput{}
	for _, opt := range opts {
		opt(in)
	}
	in.Bucket = aws.String(name)

	if _, err := api.HeadBucket(ctx, in); err != nil {
		return nil, err
	}
	return New(api, name), nil
}

// Has reports whether the named bucket exists. It never returns an error:
// every probe failure (not found, access denied, network) collapses to false.
// Callers who need the cause must use Get instead.
func Has(ctx context.Context, api S3API, name string, opts ...func(*s3.HeadBucketInput)) bool {
	in := &s3.HeadBucketInput{}
	for _, opt := range opts {
		opt(in)
	}
	in.Bucket = aws.String(name)

	out, err := api.HeadBucket(ctx, in)
	return err == nil && out != nil
}

// Remove deletes the named bucket. The backend error is returned as-is.
func Remove(ctx context.Context, api S3API, name string, opts ...func(*s3.DeleteBucketInput)) error {
	in := &s3.DeleteBucketInput{}
	for _, opt := range opts {
		opt(in)
	}
	in.Bucket = aws.String(name)

	_, err := api.DeleteBucket(ctx, in)
	return err
}

package objects

import (
	"context"
	"errors"
	"io"
	"strings"

	"bucket-manager/core/bucket"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// S3Store adapts the S3 bucket facade to the ObjectStore contract.
type S3Store struct {
	api    bucket.S3API
	bucket *bucket.Bucket
}

// NewS3Store creates an S3-backed store bound to the named bucket.
func NewS3Store(api bucket.S3API, name string) *S3Store {
	return &S3Store{api: api, bucket: bucket.New(api, name)}
}

func (s *S3Store) Bucket() string {
	return s.bucket.Name()
}

func (s *S3Store) HasBucket(ctx context.Context) bool {
	return bucket.Has(ctx, s.api, s.bucket.Name())
}

func (s *S3Store) Location(ctx context.Context) (string, error) {
	out, err := s.bucket.Location(ctx)
	if err != nil {
		return "", mapS3Error(err)
	}
	// S3 reports us-east-1 as an empty location constraint.
	loc := string(out.LocationConstraint)
	if loc == "" {
		loc = "us-east-1"
	}
	return loc, nil
}

func (s *S3Store) Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	out, err := s.bucket.Get(ctx, key)
	if err != nil {
		return nil, ObjectInfo{}, mapS3Error(err)
	}
	info := ObjectInfo{
		Key:          key,
		Size:         aws.ToInt64(out.ContentLength),
		ETag:         strings.Trim(aws.ToString(out.ETag), `"`),
		ContentType:  aws.ToString(out.ContentType),
		LastModified: aws.ToTime(out.LastModified),
	}
	return out.Body, info, nil
}

func (s *S3Store) Head(ctx context.Context, key string) (ObjectInfo, error) {
	out, err := s.bucket.Head(ctx, key)
	if err != nil {
		return ObjectInfo{}, mapS3Error(err)
	}
	return ObjectInfo{
		Key:          key,
		Size:         aws.ToInt64(out.ContentLength),
		ETag:         strings.Trim(aws.ToString(out.ETag), `"`),
		ContentType:  aws.ToString(out.ContentType),
		LastModified: aws.ToTime(out.LastModified),
	}, nil
}

func (s *S3Store) Has(ctx context.Context, key string) bool {
	return s.bucket.Has(ctx, key)
}

func (s *S3Store) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (ObjectInfo, error) {
	out, err := s.bucket.Put(ctx, key, body, func(in *s3.PutObjectInput) {
		if contentType != "" {
			in.ContentType = aws.String(contentType)
		}
		if size >= 0 {
			in.ContentLength = aws.Int64(size)
		}
	})
	if err != nil {
		return ObjectInfo{}, mapS3Error(err)
	}
	return ObjectInfo{
		Key:         key,
		Size:        size,
		ETag:        strings.Trim(aws.ToString(out.ETag), `"`),
		ContentType: contentType,
	}, nil
}

func (s *S3Store) Remove(ctx context.Context, key string) error {
	return mapS3Error(s.bucket.Remove(ctx, key))
}

func (s *S3Store) Copy(ctx context.Context, source, target string) error {
	_, err := s.bucket.Copy(ctx, source, target)
	return mapS3Error(err)
}

// mapS3Error normalizes backend not-found responses to ErrNotFound.
func mapS3Error(err error) error {
	if err == nil {
		return nil
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NoSuchBucket", "NotFound":
			return ErrNotFound
		}
	}
	return err
}

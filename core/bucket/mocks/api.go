package mocks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/mock"
)

// S3API is a mock implementation of bucket.S3API
type S3API struct {
	mock.Mock
}

func (m *S3API) CreateBucket(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options)) (*s3.CreateBucketOutput, error) {
	args := m.Called(ctx, params)
	if out, ok := args.Get(0).(*s3.CreateBucketOutput); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *S3API) HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	args := m.Called(ctx, params)
	if out, ok := args.Get(0).(*s3.HeadBucketOutput); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *S3API) DeleteBucket(ctx context.Context, params *s3.DeleteBucketInput, optFns ...func(*s3.Options)) (*s3.DeleteBucketOutput, error) {
	args := m.Called(ctx, params)
	if out, ok := args.Get(0).(*s3.DeleteBucketOutput); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *S3API) GetBucketLocation(ctx context.Context, params *s3.GetBucketLocationInput, optFns ...func(*s3.Options)) (*s3.GetBucketLocationOutput, error) {
	args := m.Called(ctx, params)
	if out, ok := args.Get(0).(*s3.GetBucketLocationOutput); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *S3API) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	args := m.Called(ctx, params)
	if out, ok := args.Get(0).(*s3.GetObjectOutput); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *S3API) HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	args := m.Called(ctx, params)
	if out, ok := args.Get(0).(*s3.HeadObjectOutput); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *S3API) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params)
	if out, ok := args.Get(0).(*s3.PutObjectOutput); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *S3API) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	args := m.Called(ctx, params)
	if out, ok := args.Get(0).(*s3.DeleteObjectOutput); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *S3API) CopyObject(ctx context.Context, params *s3.CopyObjectInput, optFns ...func(*s3.Options)) (*s3.CopyObjectOutput, error) {
	args := m.Called(ctx, params)
	if out, ok := args.Get(0).(*s3.CopyObjectOutput); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

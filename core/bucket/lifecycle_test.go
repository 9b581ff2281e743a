package bucket_test

import (
	"context"
	"testing"

	"bucket-manager/core/bucket"
	"bucket-manager/core/bucket/mocks"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		api := new(mocks.S3API)
		api.On("CreateBucket", mock.Anything, mock.MatchedBy(func(in *s3.CreateBucketInput) bool {
			return aws.ToString(in.Bucket) == "my-bucket"
		})).Return(&s3.CreateBucketOutput{}, nil)

		b, err := bucket.Create(context.Background(), api, "my-bucket")
		require.NoError(t, err)
		assert.Equal(t, "my-bucket", b.Name())
		api.AssertExpectations(t)
	})

	t.Run("Failure", func(t *testing.T) {
		api := new(mocks.S3API)
		api.On("CreateBucket", mock.Anything, mock.Anything).Return(nil, assert.AnError)

		b, err := bucket.Create(context.Background(), api, "my-bucket")
		assert.Nil(t, b)
		// The backend error comes back untouched, no wrapping.
		assert.Equal(t, assert.AnError, err)
	})

	t.Run("OptionsCannotOverrideName", func(t *testing.T) {
		api := new(mocks.S3API)
		api.On("CreateBucket", mock.Anything, mock.MatchedBy(func(in *s3.CreateBucketInput) bool {
			return aws.ToString(in.Bucket) == "mine" && in.ACL == types.BucketCannedACLPrivate
		})).Return(&s3.CreateBucketOutput{}, nil)

		_, err := bucket.Create(context.Background(), api, "mine", func(in *s3.CreateBucketInput) {
			in.Bucket = aws.String("other")
			in.ACL = types.BucketCannedACLPrivate
		})
		require.NoError(t, err)
		api.AssertExpectations(t)
	})
}

func TestGet(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		api := new(mocks.S3API)
		api.On("HeadBucket", mock.Anything, mock.MatchedBy(func(in *s3.HeadBucketInput) bool {
			return aws.ToString(in.Bucket) == "my-bucket"
		})).Return(&s3.HeadBucketOutput{}, nil)

		b, err := bucket.Get(context.Background(), api, "my-bucket")
		require.NoError(t, err)
		assert.Equal(t, "my-bucket", b.Name())
	})

	t.Run("ProbeError", func(t *testing.T) {
		api := new(mocks.S3API)
		api.On("HeadBucket", mock.Anything, mock.Anything).Return(nil, assert.AnError)

		b, err := bucket.Get(context.Background(), api, "my-bucket")
		assert.Nil(t, b)
		assert.Equal(t, assert.AnError, err)
	})
}

func TestHas(t *testing.T) {
	t.Run("Exists", func(t *testing.T) {
		api := new(mocks.S3API)
		api.On("HeadBucket", mock.Anything, mock.Anything).Return(&s3.HeadBucketOutput{}, nil)

		assert.True(t, bucket.Has(context.Background(), api, "my-bucket"))
	})

	// Every backend failure maps to false, whatever its cause.
	t.Run("AnyErrorIsFalse", func(t *testing.T) {
		api := new(mocks.S3API)
		api.On("HeadBucket", mock.Anything, mock.Anything).Return(nil, assert.AnError)

		assert.False(t, bucket.Has(context.Background(), api, "my-bucket"))
	})
}

func TestRemove(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		api := new(mocks.S3API)
		api.On("DeleteBucket", mock.Anything, mock.MatchedBy(func(in *s3.DeleteBucketInput) bool {
			return aws.ToString(in.Bucket) == "my-bucket"
		})).Return(&s3.DeleteBucketOutput{}, nil)

		assert.NoError(t, bucket.Remove(context.Background(), api, "my-bucket"))
	})

	t.Run("Failure", func(t *testing.T) {
		api := new(mocks.S3API)
		api.On("DeleteBucket", mock.Anything, mock.Anything).Return(nil, assert.AnError)

		assert.Equal(t, assert.AnError, bucket.Remove(context.Background(), api, "my-bucket"))
	})
}

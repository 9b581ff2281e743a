package objects_test

import (
	"context"
	"io"
	"strings"
	"testing"

	bucketmocks "bucket-manager/core/bucket/mocks"
	"bucket-manager/feature/objects"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestS3StoreGet(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		api := new(bucketmocks.S3API)
		store := objects.NewS3Store(api, "mine")

		api.On("GetObject", mock.Anything, mock.MatchedBy(func(in *s3.GetObjectInput) bool {
			return aws.ToString(in.Bucket) == "mine" && aws.ToString(in.Key) == "hello.txt"
		})).Return(&s3.GetObjectOutput{
			Body:          io.NopCloser(strings.NewReader("Hello World!")),
			ContentLength: aws.Int64(12),
			ContentType:   aws.String("text/plain"),
			ETag:          aws.String(`"abc"`),
		}, nil)

		rc, info, err := store.Get(context.Background(), "hello.txt")
		require.NoError(t, err)
		assert.Equal(t, int64(12), info.Size)
		assert.Equal(t, "abc", info.ETag) // surrounding quotes stripped
		assert.Equal(t, "text/plain", info.ContentType)

		data, _ := io.ReadAll(rc)
		assert.Equal(t, "Hello World!", string(data))
	})

	t.Run("NoSuchKey", func(t *testing.T) {
		api := new(bucketmocks.S3API)
		store := objects.NewS3Store(api, "mine")

		api.On("GetObject", mock.Anything, mock.Anything).
			Return(nil, &smithy.GenericAPIError{Code: "NoSuchKey", Message: "The specified key does not exist."})

		_, _, err := store.Get(context.Background(), "missing.txt")
		assert.ErrorIs(t, err, objects.ErrNotFound)
	})

	t.Run("OtherErrorsPassThrough", func(t *testing.T) {
		api := new(bucketmocks.S3API)
		store := objects.NewS3Store(api, "mine")

		api.On("GetObject", mock.Anything, mock.Anything).Return(nil, assert.AnError)

		_, _, err := store.Get(context.Background(), "hello.txt")
		assert.Equal(t, assert.AnError, err)
	})
}

func TestS3StoreLocation(t *testing.T) {
	t.Run("Region", func(t *testing.T) {
		api := new(bucketmocks.S3API)
		store := objects.NewS3Store(api, "mine")

		api.On("GetBucketLocation", mock.Anything, mock.Anything).
			Return(&s3.GetBucketLocationOutput{LocationConstraint: "eu-west-1"}, nil)

		loc, err := store.Location(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "eu-west-1", loc)
	})

	t.Run("EmptyMeansUsEast1", func(t *testing.T) {
		api := new(bucketmocks.S3API)
		store := objects.NewS3Store(api, "mine")

		api.On("GetBucketLocation", mock.Anything, mock.Anything).
			Return(&s3.GetBucketLocationOutput{}, nil)

		loc, err := store.Location(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "us-east-1", loc)
	})
}

func TestS3StorePut(t *testing.T) {
	api := new(bucketmocks.S3API)
	store := objects.NewS3Store(api, "mine")

	api.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
		return aws.ToString(in.Bucket) == "mine" &&
			aws.ToString(in.Key) == "hello.txt" &&
			aws.ToString(in.ContentType) == "text/plain" &&
			aws.ToInt64(in.ContentLength) == 12
	})).Return(&s3.PutObjectOutput{ETag: aws.String(`"abc"`)}, nil)

	info, err := store.Put(context.Background(), "hello.txt", strings.NewReader("Hello World!"), 12, "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "abc", info.ETag)
	api.AssertExpectations(t)
}

func TestS3StoreHasBucket(t *testing.T) {
	t.Run("Exists", func(t *testing.T) {
		api := new(bucketmocks.S3API)
		store := objects.NewS3Store(api, "mine")

		api.On("HeadBucket", mock.Anything, mock.MatchedBy(func(in *s3.HeadBucketInput) bool {
			return aws.ToString(in.Bucket) == "mine"
		})).Return(&s3.HeadBucketOutput{}, nil)

		assert.True(t, store.HasBucket(context.Background()))
	})

	t.Run("ProbeFailure", func(t *testing.T) {
		api := new(bucketmocks.S3API)
		store := objects.NewS3Store(api, "mine")

		api.On("HeadBucket", mock.Anything, mock.Anything).
			Return(nil, &smithy.GenericAPIError{Code: "NotFound"})

		assert.False(t, store.HasBucket(context.Background()))
	})
}

func TestS3StoreCopy(t *testing.T) {
	api := new(bucketmocks.S3API)
	store := objects.NewS3Store(api, "mine")

	api.On("CopyObject", mock.Anything, mock.MatchedBy(func(in *s3.CopyObjectInput) bool {
		return aws.ToString(in.CopySource) == "mine/hello.txt" &&
			aws.ToString(in.Bucket) == "mine" &&
			aws.ToString(in.Key) == "copy.txt"
	})).Return(&s3.CopyObjectOutput{}, nil)

	require.NoError(t, store.Copy(context.Background(), "hello.txt", "copy.txt"))
	api.AssertExpectations(t)
}

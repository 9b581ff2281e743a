package minio_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	miniobucket "bucket-manager/core/bucket/minio"
	"bucket-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLifecycle(t *testing.T) {
	t.Run("Create", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("MakeBucket", mock.Anything, "my-bucket", mock.Anything).Return(nil)

		b, err := miniobucket.Create(context.Background(), client, "my-bucket", minio.MakeBucketOptions{Region: "us-east-1"})
		require.NoError(t, err)
		assert.Equal(t, "my-bucket", b.Name())
	})

	t.Run("CreateFailure", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("MakeBucket", mock.Anything, "my-bucket", mock.Anything).Return(assert.AnError)

		b, err := miniobucket.Create(context.Background(), client, "my-bucket", minio.MakeBucketOptions{})
		assert.Nil(t, b)
		assert.Equal(t, assert.AnError, err)
	})

	t.Run("Get", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "my-bucket").Return(true, nil)

		b, err := miniobucket.Get(context.Background(), client, "my-bucket")
		require.NoError(t, err)
		assert.Equal(t, "my-bucket", b.Name())
	})

	t.Run("GetAbsent", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "my-bucket").Return(false, nil)

		b, err := miniobucket.Get(context.Background(), client, "my-bucket")
		assert.Nil(t, b)
		assert.ErrorIs(t, err, miniobucket.ErrBucketNotExists)
	})

	t.Run("GetProbeError", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "my-bucket").Return(false, assert.AnError)

		_, err := miniobucket.Get(context.Background(), client, "my-bucket")
		assert.Equal(t, assert.AnError, err)
	})

	t.Run("Has", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "present").Return(true, nil)
		client.On("BucketExists", mock.Anything, "absent").Return(false, nil)
		client.On("BucketExists", mock.Anything, "broken").Return(false, assert.AnError)

		assert.True(t, miniobucket.Has(context.Background(), client, "present"))
		assert.False(t, miniobucket.Has(context.Background(), client, "absent"))
		assert.False(t, miniobucket.Has(context.Background(), client, "broken"))
	})

	t.Run("Remove", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("RemoveBucket", mock.Anything, "my-bucket").Return(nil)

		assert.NoError(t, miniobucket.Remove(context.Background(), client, "my-bucket"))
	})
}

func TestObjectOperations(t *testing.T) {
	newBucket := func() (*miniobucket.Bucket, *mocks.Client) {
		client := new(mocks.Client)
		return miniobucket.New(client, "mine"), client
	}

	t.Run("Location", func(t *testing.T) {
		b, client := newBucket()
		client.On("GetBucketLocation", mock.Anything, "mine").Return("eu-west-1", nil)

		loc, err := b.Location(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "eu-west-1", loc)
	})

	t.Run("Get", func(t *testing.T) {
		b, client := newBucket()
		client.On("GetObject", mock.Anything, "mine", "hello.txt", mock.Anything).
			Return(io.NopCloser(bytes.NewReader([]byte("Hello World!"))), nil)

		rc, err := b.Get(context.Background(), "hello.txt", minio.GetObjectOptions{})
		require.NoError(t, err)
		data, _ := io.ReadAll(rc)
		assert.Equal(t, "Hello World!", string(data))
	})

	t.Run("HasSwallowsErrors", func(t *testing.T) {
		b, client := newBucket()
		client.On("StatObject", mock.Anything, "mine", "missing.txt", mock.Anything).
			Return(minio.ObjectInfo{}, assert.AnError)

		assert.False(t, b.Has(context.Background(), "missing.txt", minio.StatObjectOptions{}))
	})

	t.Run("Head", func(t *testing.T) {
		b, client := newBucket()
		client.On("StatObject", mock.Anything, "mine", "hello.txt", mock.Anything).
			Return(minio.ObjectInfo{Key: "hello.txt", Size: 12, ETag: "abc"}, nil)

		info, err := b.Head(context.Background(), "hello.txt", minio.StatObjectOptions{})
		require.NoError(t, err)
		assert.Equal(t, "abc", info.ETag)
	})

	t.Run("Put", func(t *testing.T) {
		b, client := newBucket()
		body := bytes.NewReader([]byte("Hello World!"))
		client.On("PutObject", mock.Anything, "mine", "hello.txt", body, int64(12), mock.Anything).
			Return(minio.UploadInfo{ETag: "abc"}, nil)

		info, err := b.Put(context.Background(), "hello.txt", body, 12, minio.PutObjectOptions{})
		require.NoError(t, err)
		assert.Equal(t, "abc", info.ETag)
	})

	t.Run("Remove", func(t *testing.T) {
		b, client := newBucket()
		client.On("RemoveObject", mock.Anything, "mine", "x.txt", mock.Anything).Return(nil)

		assert.NoError(t, b.Remove(context.Background(), "x.txt", minio.RemoveObjectOptions{}))
	})

	t.Run("CopyStaysInBucket", func(t *testing.T) {
		b, client := newBucket()
		client.On("CopyObject", mock.Anything,
			minio.CopyDestOptions{Bucket: "mine", Object: "copy.txt"},
			minio.CopySrcOptions{Bucket: "mine", Object: "hello.txt"},
		).Return(minio.UploadInfo{ETag: "def"}, nil)

		info, err := b.Copy(context.Background(), "hello.txt", "copy.txt")
		require.NoError(t, err)
		assert.Equal(t, "def", info.ETag)
		client.AssertExpectations(t)
	})
}

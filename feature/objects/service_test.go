package objects_test

import (
	"bytes"
	"context"
	"testing"

	"bucket-manager/feature/objects"
	"bucket-manager/feature/objects/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestServiceBucketInfo(t *testing.T) {
	t.Run("Exists", func(t *testing.T) {
		store := new(mocks.ObjectStore)
		svc := objects.NewService(store, zap.NewNop())

		store.On("Bucket").Return("my-bucket")
		store.On("HasBucket", mock.Anything).Return(true)
		store.On("Location", mock.Anything).Return("eu-west-1", nil)

		info := svc.BucketInfo(context.Background())
		assert.Equal(t, objects.BucketInfo{Name: "my-bucket", Exists: true, Location: "eu-west-1"}, info)
	})

	t.Run("Absent", func(t *testing.T) {
		store := new(mocks.ObjectStore)
		svc := objects.NewService(store, zap.NewNop())

		store.On("Bucket").Return("my-bucket")
		store.On("HasBucket", mock.Anything).Return(false)

		info := svc.BucketInfo(context.Background())
		assert.False(t, info.Exists)
		assert.Empty(t, info.Location)
		store.AssertNotCalled(t, "Location", mock.Anything)
	})

	t.Run("LocationFailureIsNonFatal", func(t *testing.T) {
		store := new(mocks.ObjectStore)
		svc := objects.NewService(store, zap.NewNop())

		store.On("Bucket").Return("my-bucket")
		store.On("HasBucket", mock.Anything).Return(true)
		store.On("Location", mock.Anything).Return("", assert.AnError)

		info := svc.BucketInfo(context.Background())
		assert.True(t, info.Exists)
		assert.Empty(t, info.Location)
	})
}

func TestServicePut(t *testing.T) {
	store := new(mocks.ObjectStore)
	svc := objects.NewService(store, zap.NewNop())

	body := bytes.NewReader([]byte("Hello World!"))
	store.On("Put", mock.Anything, "hello.txt", body, int64(12), "text/plain").
		Return(objects.ObjectInfo{Key: "hello.txt", Size: 12, ETag: "abc"}, nil)

	info, err := svc.Put(context.Background(), "hello.txt", body, 12, "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "abc", info.ETag)
}

func TestServiceErrorsPassThrough(t *testing.T) {
	store := new(mocks.ObjectStore)
	svc := objects.NewService(store, zap.NewNop())

	store.On("Remove", mock.Anything, "x.txt").Return(assert.AnError)
	store.On("Copy", mock.Anything, "a.txt", "b.txt").Return(assert.AnError)

	assert.Equal(t, assert.AnError, svc.Remove(context.Background(), "x.txt"))
	assert.Equal(t, assert.AnError, svc.Copy(context.Background(), "a.txt", "b.txt"))
}

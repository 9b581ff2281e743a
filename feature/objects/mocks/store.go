package mocks

import (
	"context"
	"io"

	"bucket-manager/feature/objects"

	"github.com/stretchr/testify/mock"
)

// ObjectStore is a mock implementation of objects.ObjectStore
type ObjectStore struct {
	mock.Mock
}

func (m *ObjectStore) Bucket() string {
	args := m.Called()
	return args.String(0)
}

func (m *ObjectStore) HasBucket(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

func (m *ObjectStore) Location(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *ObjectStore) Get(ctx context.Context, key string) (io.ReadCloser, objects.ObjectInfo, error) {
	args := m.Called(ctx, key)
	rc, _ := args.Get(0).(io.ReadCloser)
	return rc, args.Get(1).(objects.ObjectInfo), args.Error(2)
}

func (m *ObjectStore) Head(ctx context.Context, key string) (objects.ObjectInfo, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(objects.ObjectInfo), args.Error(1)
}

func (m *ObjectStore) Has(ctx context.Context, key string) bool {
	args := m.Called(ctx, key)
	return args.Bool(0)
}

func (m *ObjectStore) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (objects.ObjectInfo, error) {
	args := m.Called(ctx, key, body, size, contentType)
	return args.Get(0).(objects.ObjectInfo), args.Error(1)
}

func (m *ObjectStore) Remove(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *ObjectStore) Copy(ctx context.Context, source, target string) error {
	args := m.Called(ctx, source, target)
	return args.Error(0)
}

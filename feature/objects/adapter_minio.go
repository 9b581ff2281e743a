package objects

import (
	"context"
	"io"

	miniobucket "bucket-manager/core/bucket/minio"
	"bucket-manager/core/storage"

	"github.com/minio/minio-go/v7"
)

// MinioStore adapts the MinIO bucket facade to the ObjectStore contract.
type MinioStore struct {
	client storage.Client
	bucket *miniobucket.Bucket
}

// NewMinioStore creates a MinIO-backed store bound to the named bucket.
func NewMinioStore(client storage.Client, name string) *MinioStore {
	return &MinioStore{client: client, bucket: miniobucket.New(client, name)}
}

func (s *MinioStore) Bucket() string {
	return s.bucket.Name()
}

func (s *MinioStore) HasBucket(ctx context.Context) bool {
	return miniobucket.Has(ctx, s.client, s.bucket.Name())
}

func (s *MinioStore) Location(ctx context.Context) (string, error) {
	loc, err := s.bucket.Location(ctx)
	return loc, mapMinioError(err)
}

func (s *MinioStore) Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	// Stat first: the minio client opens object streams lazily, so a missing
	// key would otherwise surface mid-download.
	stat, err := s.bucket.Head(ctx, key, minio.StatObjectOptions{})
	if err != nil {
		return nil, ObjectInfo{}, mapMinioError(err)
	}
	rc, err := s.bucket.Get(ctx, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, ObjectInfo{}, mapMinioError(err)
	}
	return rc, objectInfo(key, stat), nil
}

func (s *MinioStore) Head(ctx context.Context, key string) (ObjectInfo, error) {
	stat, err := s.bucket.Head(ctx, key, minio.StatObjectOptions{})
	if err != nil {
		return ObjectInfo{}, mapMinioError(err)
	}
	return objectInfo(key, stat), nil
}

func (s *MinioStore) Has(ctx context.Context, key string) bool {
	return s.bucket.Has(ctx, key, minio.StatObjectOptions{})
}

func (s *MinioStore) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (ObjectInfo, error) {
	info, err := s.bucket.Put(ctx, key, body, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return ObjectInfo{}, mapMinioError(err)
	}
	return ObjectInfo{
		Key:         key,
		Size:        info.Size,
		ETag:        info.ETag,
		ContentType: contentType,
	}, nil
}

func (s *MinioStore) Remove(ctx context.Context, key string) error {
	return mapMinioError(s.bucket.Remove(ctx, key, minio.RemoveObjectOptions{}))
}

func (s *MinioStore) Copy(ctx context.Context, source, target string) error {
	_, err := s.bucket.Copy(ctx, source, target)
	return mapMinioError(err)
}

func objectInfo(key string, stat minio.ObjectInfo) ObjectInfo {
	return ObjectInfo{
		Key:          key,
		Size:         stat.Size,
		ETag:         stat.ETag,
		ContentType:  stat.ContentType,
		LastModified: stat.LastModified,
	}
}

// mapMinioError normalizes backend not-found responses to ErrNotFound.
func mapMinioError(err error) error {
	if err == nil {
		return nil
	}
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchBucket":
		return ErrNotFound
	}
	return err
}

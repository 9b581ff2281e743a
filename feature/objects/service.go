package objects

import (
	"context"
	"io"

	"go.uber.org/zap"
)

// Service handles object operations against the bound bucket.
type Service struct {
	store  ObjectStore
	logger *zap.Logger
}

// NewService creates a new objects service.
func NewService(store ObjectStore, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// BucketInfo describes the bound bucket.
type BucketInfo struct {
	Name     string `json:"name"`
	Exists   bool   `json:"exists"`
	Location string `json:"location,omitempty"`
}

// BucketInfo reports name, existence and (when available) location of the
// bound bucket. Location failures are non-fatal: the probe already answered
// the existence question.
func (s *Service) BucketInfo(ctx context.Context) BucketInfo {
	info := BucketInfo{Name: s.store.Bucket()}
	info.Exists = s.store.HasBucket(ctx)
	if !info.Exists {
		return info
	}

	loc, err := s.store.Location(ctx)
	if err != nil {
		s.logger.Warn("Failed to resolve bucket location", zap.Error(err))
		return info
	}
	info.Location = loc
	return info
}

// Get streams the object at key.
func (s *Service) Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	return s.store.Get(ctx, key)
}

// Head fetches the object's metadata.
func (s *Service) Head(ctx context.Context, key string) (ObjectInfo, error) {
	return s.store.Head(ctx, key)
}

// Put stores body at key.
func (s *Service) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (ObjectInfo, error) {
	info, err := s.store.Put(ctx, key, body, size, contentType)
	if err != nil {
		return ObjectInfo{}, err
	}
	s.logger.Info("Object stored",
		zap.String("key", key),
		zap.Int64("size", size))
	return info, nil
}

// Remove deletes the object at key.
func (s *Service) Remove(ctx context.Context, key string) error {
	if err := s.store.Remove(ctx, key); err != nil {
		return err
	}
	s.logger.Info("Object removed", zap.String("key", key))
	return nil
}

// Copy copies source to target within the bound bucket.
func (s *Service) Copy(ctx context.Context, source, target string) error {
	if err := s.store.Copy(ctx, source, target); err != nil {
		return err
	}
	s.logger.Info("Object copied",
		zap.String("source", source),
		zap.String("target", target))
	return nil
}

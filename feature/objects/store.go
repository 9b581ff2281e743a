package objects

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrNotFound reports that the requested object or bucket does not exist.
var ErrNotFound = errors.New("object not found")

// ObjectInfo describes stored object metadata.
type ObjectInfo struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	ETag         string    `json:"etag,omitempty"`
	ContentType  string    `json:"content_type,omitempty"`
	LastModified time.Time `json:"last_modified,omitempty"`
}

// ObjectStore is the storage contract the gateway consumes. Adapters in this
// package implement it for every supported driver.
type ObjectStore interface {
	// Bucket returns the bound bucket name.
	Bucket() string
	// HasBucket reports whether the bound bucket exists; never errors.
	HasBucket(ctx context.Context) bool
	// Location returns the bucket's region descriptor.
	Location(ctx context.Context) (string, error)
	// Get streams the object at key along with its metadata.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Head fetches the object's metadata without the payload.
	Head(ctx context.Context, key string) (ObjectInfo, error)
	// Has reports whether the object at key exists; never errors.
	Has(ctx context.Context, key string) bool
	// Put stores body at key.
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (ObjectInfo, error)
	// Remove deletes the object at key.
	Remove(ctx context.Context, key string) error
	// Copy copies source to target within the bound bucket.
	Copy(ctx context.Context, source, target string) error
}

package storage

import (
	"context"
	"io"
	"time"
)

// PutOptions describes upload options for object storage.
type PutOptions struct {
	ContentType string
}

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	ObjectName string
	Size       int64
}

// Store abstracts object storage operations.
type Store interface {
	// EnsureBucket creates the bucket if it is missing. Safe to call
	// concurrently for the same bucket.
	EnsureBucket(ctx context.Context, bucket string) error
	PutObject(ctx context.Context, bucket, object string, reader io.Reader, size int64, opts PutOptions) error
	GetObject(ctx context.Context, bucket, object string) (io.ReadCloser, ObjectInfo, error)
	// RemoveObject deletes an object. Removing an object that no longer
	// exists is a success, so concurrent deletes of the same frame are
	// idempotent.
	RemoveObject(ctx context.Context, bucket, object string) error
	PresignedGetObject(ctx context.Context, bucket, object string, expiry time.Duration) (string, error)
}

// Default is the process-wide object store handle, set by InitMinio.
var Default Store
